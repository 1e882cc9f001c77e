package controllers

import (
	"context"
	"net/http"
	"sensus-service/internal/app/contracts"
	"sensus-service/internal/pkg/constvars"
	"sensus-service/internal/pkg/dto/responses"
	"sensus-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type TestimonialController struct {
	Log                *zap.Logger
	TestimonialUsecase contracts.TestimonialUsecase
}

var (
	testimonialControllerInstance *TestimonialController
	onceTestimonialController     sync.Once
)

func NewTestimonialController(logger *zap.Logger, testimonialUsecase contracts.TestimonialUsecase) *TestimonialController {
	onceTestimonialController.Do(func() {
		testimonialControllerInstance = &TestimonialController{
			Log:                logger,
			TestimonialUsecase: testimonialUsecase,
		}
	})
	return testimonialControllerInstance
}

type testimonialMove func(ctx context.Context, viewerID string) (*responses.Testimonial, error)

func (ctrl *TestimonialController) Current(w http.ResponseWriter, r *http.Request) {
	ctrl.handle(w, r, "TestimonialController.Current", ctrl.TestimonialUsecase.Current)
}

func (ctrl *TestimonialController) Next(w http.ResponseWriter, r *http.Request) {
	ctrl.handle(w, r, "TestimonialController.Next", ctrl.TestimonialUsecase.Next)
}

func (ctrl *TestimonialController) Previous(w http.ResponseWriter, r *http.Request) {
	ctrl.handle(w, r, "TestimonialController.Previous", ctrl.TestimonialUsecase.Previous)
}

func (ctrl *TestimonialController) handle(w http.ResponseWriter, r *http.Request, handler string, move testimonialMove) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, handler)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	response, err := move(ctx, utils.GetViewerID(r.Context()))
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, handler, err)
		return
	}

	ctrl.Log.Info(handler+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCarouselIndexKey, response.Index),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindTestimonialSuccessMessage, response)
}
