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

type NewsController struct {
	NewsUsecase *usecase.NewsUsecase
	Log         *zap.Logger
	Config      *koanf.Koanf
}

func NewNewsController(newsUsecase *usecase.NewsUsecase, zap *zap.Logger, koanf *koanf.Koanf) *NewsController {
	return &NewsController{
		NewsUsecase: newsUsecase,
		Log:         zap,
		Config:      koanf,
	}
}

func (controller *NewsController) GetNews(ctx *fiber.Ctx) error {
	news, err := controller.NewsUsecase.GetNews(ctx.Context())
	if err != nil {
		return util.SendErrorResponseInternalServer(ctx, tracelog.GetLoggerFromContext(ctx), err)
	}

	return util.SendSuccessResponseWithData(ctx, news)
}

func (controller *NewsController) GetFeed(ctx *fiber.Ctx) error {
	groups, err := controller.NewsUsecase.GetFeed(ctx.Context())
	if err != nil {
		return util.SendErrorResponseInternalServer(ctx, tracelog.GetLoggerFromContext(ctx), err)
	}

	return util.SendSuccessResponseWithData(ctx, groups)
}

func (controller *NewsController) CreateNews(ctx *fiber.Ctx) error {
	var payload model.NewsCreateRequest
	err := util.ReadRequestBody(ctx, &payload)
	if err != nil {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_INVALID_REQUEST_BODY_ERROR_CODE,
			Message: constant.ERR_INVALID_REQUEST_BODY_MESSAGE,
		})
	}

	var validationErr *model.ValidationError

	created, err := controller.NewsUsecase.CreateNews(ctx.Context(), payload)
	if err != nil {
		if errors.As(err, &validationErr) {
			return util.SendErrorResponse(ctx, err)
		}

		return util.SendErrorResponseInternalServer(ctx, tracelog.GetLoggerFromContext(ctx), err)
	}

	return util.SendCreatedResponse(ctx, created)
}
