package contracts

import (
	"context"
	"sensus-service/internal/pkg/dto/responses"
)

type TestimonialUsecase interface {
	Current(ctx context.Context, viewerID string) (*responses.Testimonial, error)
	Next(ctx context.Context, viewerID string) (*responses.Testimonial, error)
	Previous(ctx context.Context, viewerID string) (*responses.Testimonial, error)
}
