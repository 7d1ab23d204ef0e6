package client

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/szarydziennik/grayjournal/internal/model"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrimsTrailingSlash(t *testing.T) {
	c := New("http://localhost:8080/")
	assert.Equal(t, "http://localhost:8080", c.BaseURL)
}

func TestListNews(t *testing.T) {
	want := []model.NewsResponse{
		{
			Id:        uuid.New(),
			Title:     "Opening day",
			CreatedAt: time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
			Images:    []model.NewsImage{{Url: "https://cdn.test/a.jpg", Description: "front door"}},
		},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/news", r.URL.Path)

		b, _ := sonic.Marshal(want)
		_, _ = w.Write(b)
	}))
	defer server.Close()

	got, err := New(server.URL).ListNews(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, want[0].Id, got[0].Id)
	assert.Equal(t, "front door", got[0].Images[0].Description)
}

func TestGetFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/news/feed", r.URL.Path)
		_, _ = w.Write([]byte(`[{"date":"5 March 2024","posts":[],"images":[{"url":"a.jpg","description":"","location":""}]}]`))
	}))
	defer server.Close()

	groups, err := New(server.URL).GetFeed(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "5 March 2024", groups[0].Date)
	require.Len(t, groups[0].Images, 1)
	assert.Equal(t, "a.jpg", groups[0].Images[0].Url)
}

func TestCreateNews(t *testing.T) {
	id := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/news", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload model.NewsCreateRequest
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, sonic.Unmarshal(raw, &payload))
		assert.Equal(t, "Opening day", payload.Title)
		require.Len(t, payload.Images, 1)

		w.WriteHeader(http.StatusCreated)
		b, _ := sonic.Marshal(model.NewsResponse{
			Id:          id,
			Title:       payload.Title,
			Description: payload.Description,
			Images:      payload.Images,
		})
		_, _ = w.Write(b)
	}))
	defer server.Close()

	created, err := New(server.URL).CreateNews(context.Background(), model.NewsCreateRequest{
		Title:       "Opening day",
		Description: "We are open",
		Images:      []model.NewsImage{{Url: "https://cdn.test/a.jpg"}},
	})
	require.NoError(t, err)
	assert.Equal(t, id, created.Id)
}

func TestCreateNewsValidationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":"VALIDATION_ERROR","message":"Title is required","param":"title"}}`))
	}))
	defer server.Close()

	_, err := New(server.URL).CreateNews(context.Background(), model.NewsCreateRequest{})
	require.Error(t, err)

	var validationErr *model.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "Title is required", validationErr.Message)
	assert.Equal(t, "title", validationErr.Param)
}

func TestUploadImageSendsDataURI(t *testing.T) {
	raw := []byte{0xff, 0xd8, 0xff, 0xe0, 0x01, 0x02}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/upload", r.URL.Path)

		var payload model.UploadRequest
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, sonic.Unmarshal(body, &payload))

		assert.Equal(t, "photo.jpg", payload.Filename)
		require.True(t, strings.HasPrefix(payload.Image, "data:image/jpeg;base64,"))

		decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(payload.Image, "data:image/jpeg;base64,"))
		require.NoError(t, err)
		assert.Equal(t, raw, decoded)

		_, _ = w.Write([]byte(`{"url":"https://cdn.test/123-photo.jpg"}`))
	}))
	defer server.Close()

	url, err := New(server.URL).UploadImage(context.Background(), "photo.jpg", raw)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/123-photo.jpg", url)
}

func TestDecodeErrorFallsBackToStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))
	defer server.Close()

	_, err := New(server.URL).ListNews(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 502")
}
