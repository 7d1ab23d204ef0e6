package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/szarydziennik/grayjournal/internal/model"
	"github.com/szarydziennik/grayjournal/internal/repository"

	"github.com/google/uuid"
	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUsecase(t *testing.T) *NewsUsecase {
	t.Helper()

	store := repository.NewFileNewsRepository(zap.NewNop(), filepath.Join(t.TempDir(), "news.json"))
	return NewNewsUsecase(store, zap.NewNop(), koanf.New("."))
}

func validRequest() model.NewsCreateRequest {
	return model.NewsCreateRequest{
		Title:       "Harbor at dawn",
		Description: "Sunrise over the shipyard",
		Images: []model.NewsImage{
			{Url: "https://cdn.test/a.jpg", Description: "A"},
			{Url: "https://cdn.test/b.jpg", Description: "B"},
		},
	}
}

func TestCreateNews(t *testing.T) {
	usecase := newTestUsecase(t)
	ctx := context.Background()

	created, err := usecase.CreateNews(ctx, validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.Id)
	assert.Equal(t, "Harbor at dawn", created.Title)
	assert.WithinDuration(t, time.Now().UTC(), created.CreatedAt, 5*time.Second)

	require.Len(t, created.Images, 2)
	assert.Equal(t, "A", created.Images[0].Description)
	assert.Equal(t, "B", created.Images[1].Description)

	news, err := usecase.GetNews(ctx)
	require.NoError(t, err)
	require.Len(t, news, 1)
	assert.Equal(t, created.Id, news[0].Id)
}

func TestCreateNewsHonorsExplicitTimestamp(t *testing.T) {
	usecase := newTestUsecase(t)

	backdate := time.Date(2023, 11, 20, 9, 30, 0, 0, time.UTC)
	payload := validRequest()
	payload.CreatedAt = &backdate

	created, err := usecase.CreateNews(context.Background(), payload)
	require.NoError(t, err)
	assert.True(t, created.CreatedAt.Equal(backdate))
}

func TestCreateNewsValidation(t *testing.T) {
	usecase := newTestUsecase(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*model.NewsCreateRequest)
		param  string
	}{
		{"missing title", func(r *model.NewsCreateRequest) { r.Title = "" }, "title"},
		{"missing description", func(r *model.NewsCreateRequest) { r.Description = "" }, "description"},
		{"no images", func(r *model.NewsCreateRequest) { r.Images = nil }, "images"},
		{"empty images", func(r *model.NewsCreateRequest) { r.Images = []model.NewsImage{} }, "images"},
		{"image without url", func(r *model.NewsCreateRequest) { r.Images[1].Url = "" }, "images"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := validRequest()
			tc.mutate(&payload)

			_, err := usecase.CreateNews(ctx, payload)
			require.Error(t, err)

			var validationErr *model.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tc.param, validationErr.Param)
		})
	}

	// A rejected request leaves the store untouched.
	news, err := usecase.GetNews(ctx)
	require.NoError(t, err)
	assert.Empty(t, news)
}

func TestGetNewsNewestFirst(t *testing.T) {
	usecase := newTestUsecase(t)
	ctx := context.Background()

	older := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC)

	first := validRequest()
	first.Title = "older"
	first.CreatedAt = &older
	_, err := usecase.CreateNews(ctx, first)
	require.NoError(t, err)

	second := validRequest()
	second.Title = "newer"
	second.CreatedAt = &newer
	_, err = usecase.CreateNews(ctx, second)
	require.NoError(t, err)

	news, err := usecase.GetNews(ctx)
	require.NoError(t, err)
	require.Len(t, news, 2)
	assert.Equal(t, "newer", news[0].Title)
	assert.Equal(t, "older", news[1].Title)
}

func TestGetFeedGroupsByDay(t *testing.T) {
	usecase := newTestUsecase(t)
	ctx := context.Background()

	morning := time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 3, 5, 20, 0, 0, 0, time.UTC)
	dayBefore := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)

	for _, created := range []time.Time{morning, evening, dayBefore} {
		payload := validRequest()
		payload.CreatedAt = &created
		_, err := usecase.CreateNews(ctx, payload)
		require.NoError(t, err)
	}

	groups, err := usecase.GetFeed(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "5 March 2024", groups[0].Date)
	require.Len(t, groups[0].Posts, 2)
	// Two images per post, two posts on the day.
	assert.Len(t, groups[0].Images, 4)
	assert.Equal(t, "4 March 2024", groups[1].Date)
}
