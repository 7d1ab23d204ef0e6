package http

import (
	"errors"

	"github.com/szarydziennik/grayjournal/internal/constant"
	tracelog "github.com/szarydziennik/grayjournal/internal/middleware"
	"github.com/szarydziennik/grayjournal/internal/model"
	"github.com/szarydziennik/grayjournal/internal/usecase"
	"github.com/szarydziennik/grayjournal/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

type UploadController struct {
	UploadUsecase *usecase.UploadUsecase
	Log           *zap.Logger
	Config        *koanf.Koanf
}

func NewUploadController(uploadUsecase *usecase.UploadUsecase, zap *zap.Logger, koanf *koanf.Koanf) *UploadController {
	return &UploadController{
		UploadUsecase: uploadUsecase,
		Log:           zap,
		Config:        koanf,
	}
}

func (controller *UploadController) UploadImage(ctx *fiber.Ctx) error {
	var payload model.UploadRequest
	err := util.ReadRequestBody(ctx, &payload)
	if err != nil {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_INVALID_REQUEST_BODY_ERROR_CODE,
			Message: constant.ERR_INVALID_REQUEST_BODY_MESSAGE,
		})
	}

	var validationErr *model.ValidationError

	uploaded, err := controller.UploadUsecase.UploadImage(ctx.Context(), payload)
	if err != nil {
		if errors.As(err, &validationErr) {
			return util.SendErrorResponse(ctx, err)
		}

		return util.SendErrorResponseInternalServer(ctx, tracelog.GetLoggerFromContext(ctx), err)
	}

	return util.SendSuccessResponseWithData(ctx, uploaded)
}
