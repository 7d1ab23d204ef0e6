package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/szarydziennik/grayjournal/internal/constant"
	"github.com/szarydziennik/grayjournal/internal/feed"
	"github.com/szarydziennik/grayjournal/internal/model"
	"github.com/szarydziennik/grayjournal/internal/repository"

	"github.com/google/uuid"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

type NewsUsecase struct {
	NewsStore repository.NewsStore
	Log       *zap.Logger
	Config    *koanf.Koanf
}

func NewNewsUsecase(newsStore repository.NewsStore, zap *zap.Logger, koanf *koanf.Koanf) *NewsUsecase {
	return &NewsUsecase{
		NewsStore: newsStore,
		Log:       zap,
		Config:    koanf,
	}
}

func (usecase *NewsUsecase) GetNews(ctx context.Context) ([]model.NewsResponse, error) {
	news, err := usecase.NewsStore.ListNews(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]model.NewsResponse, 0, len(news))
	for _, item := range news {
		responses = append(responses, toNewsResponse(item))
	}

	return responses, nil
}

func (usecase *NewsUsecase) GetFeed(ctx context.Context) ([]feed.DateGroup, error) {
	news, err := usecase.GetNews(ctx)
	if err != nil {
		return nil, err
	}

	return feed.GroupByDate(news, usecase.location()), nil
}

func (usecase *NewsUsecase) CreateNews(ctx context.Context, payload model.NewsCreateRequest) (model.NewsResponse, error) {
	var response model.NewsResponse

	// Validation happens before any mutation; a violation means no insert
	// at all.
	if payload.Title == "" {
		return response, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "Title is required",
			Param:   "title",
		}
	}

	if payload.Description == "" {
		return response, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "Description is required",
			Param:   "description",
		}
	}

	if len(payload.Images) == 0 {
		return response, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "At least one image is required",
			Param:   "images",
		}
	}

	for i, image := range payload.Images {
		if image.Url == "" {
			return response, &model.ValidationError{
				Code:    constant.ERR_VALIDATION_CODE,
				Message: fmt.Sprintf("Image %d is missing its url", i),
				Param:   "images",
			}
		}
	}

	createdAt := time.Now().UTC()
	if payload.CreatedAt != nil && !payload.CreatedAt.IsZero() {
		createdAt = payload.CreatedAt.UTC()
	}

	news := model.News{
		Id:          uuid.New(),
		Title:       payload.Title,
		Description: payload.Description,
		CreatedAt:   createdAt,
		Images:      payload.Images,
	}

	err := usecase.NewsStore.InsertNews(ctx, news)
	if err != nil {
		return response, err
	}

	return toNewsResponse(news), nil
}

func (usecase *NewsUsecase) location() *time.Location {
	name := usecase.Config.String("FEED_TIMEZONE")
	if name == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		usecase.Log.Warn("invalid FEED_TIMEZONE, falling back to UTC", zap.String("timezone", name))
		return time.UTC
	}

	return loc
}

func toNewsResponse(news model.News) model.NewsResponse {
	images := news.Images
	if images == nil {
		images = []model.NewsImage{}
	}

	return model.NewsResponse{
		Id:          news.Id,
		Title:       news.Title,
		Description: news.Description,
		CreatedAt:   news.CreatedAt,
		Images:      images,
	}
}
