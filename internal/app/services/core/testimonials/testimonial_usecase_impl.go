package testimonials

import (
	"context"
	"sensus-service/internal/app/config"
	"sensus-service/internal/app/contracts"
	"sensus-service/internal/app/models"
	"sensus-service/internal/pkg/constvars"
	"sensus-service/internal/pkg/dto/responses"
	"sensus-service/internal/pkg/exceptions"
	"sensus-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type testimonialUsecase struct {
	Testimonials    []models.Testimonial
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

var (
	testimonialUsecaseInstance contracts.TestimonialUsecase
	onceTestimonialUsecase     sync.Once
)

func NewTestimonialUsecase(
	testimonials []models.Testimonial,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.TestimonialUsecase {
	onceTestimonialUsecase.Do(func() {
		testimonialUsecaseInstance = &testimonialUsecase{
			Testimonials:    testimonials,
			RedisRepository: redisRepository,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
	})
	return testimonialUsecaseInstance
}

func (uc *testimonialUsecase) Current(ctx context.Context, viewerID string) (*responses.Testimonial, error) {
	carousel, err := uc.load(ctx, "Current", viewerID)
	if err != nil {
		return nil, err
	}
	return uc.buildResponse(carousel), nil
}

func (uc *testimonialUsecase) Next(ctx context.Context, viewerID string) (*responses.Testimonial, error) {
	carousel, err := uc.load(ctx, "Next", viewerID)
	if err != nil {
		return nil, err
	}
	return uc.move(ctx, viewerID, carousel.Next())
}

func (uc *testimonialUsecase) Previous(ctx context.Context, viewerID string) (*responses.Testimonial, error) {
	carousel, err := uc.load(ctx, "Previous", viewerID)
	if err != nil {
		return nil, err
	}
	return uc.move(ctx, viewerID, carousel.Prev())
}

// load restores the viewer's carousel position. A missing or stale index
// starts from the first testimonial.
func (uc *testimonialUsecase) load(ctx context.Context, operation, viewerID string) (Carousel, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("testimonialUsecase."+operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingViewerIDKey, viewerID),
	)

	if viewerID == "" {
		return Carousel{}, exceptions.ErrMissingViewerID(nil)
	}

	var index int
	if _, err := uc.RedisRepository.Scan(ctx, carouselKey(viewerID), &index); err != nil {
		return Carousel{}, err
	}

	carousel, err := NewCarousel(uc.Testimonials, index)
	if err != nil {
		return Carousel{}, exceptions.ErrEmptyCarousel(err)
	}
	return carousel, nil
}

func (uc *testimonialUsecase) move(ctx context.Context, viewerID string, carousel Carousel) (*responses.Testimonial, error) {
	expiration := time.Duration(uc.InternalConfig.App.CarouselExpiredTimeInHours) * time.Hour
	if err := uc.RedisRepository.Set(ctx, carouselKey(viewerID), carousel.Index(), expiration); err != nil {
		uc.Log.Error("testimonialUsecase.move error storing carousel index",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("testimonialUsecase.move succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.Int(constvars.LoggingCarouselIndexKey, carousel.Index()),
	)
	return uc.buildResponse(carousel), nil
}

func (uc *testimonialUsecase) buildResponse(carousel Carousel) *responses.Testimonial {
	current := carousel.Current()
	return &responses.Testimonial{
		ID:                 current.ID,
		Author:             current.Author,
		Role:               current.Role,
		Quote:              current.Quote,
		Index:              carousel.Index(),
		Total:              carousel.Len(),
		AutoAdvanceSeconds: int(uc.InternalConfig.Testimonial.AutoAdvanceInterval / time.Second),
	}
}

func carouselKey(viewerID string) string {
	return constvars.RedisKeyCarouselPrefix + viewerID
}
