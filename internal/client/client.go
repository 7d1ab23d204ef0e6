// Package client is the Go counterpart of the browser's fetch calls: a thin
// HTTP client for the news, feed and upload endpoints. The composer drives it
// for submissions; the CLI uses it directly for reads.
package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/szarydziennik/grayjournal/internal/feed"
	"github.com/szarydziennik/grayjournal/internal/model"

	"github.com/bytedance/sonic"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		// No client-side timeout: submissions carry whole image payloads
		// and cancellation belongs to the caller's context.
		HTTP: &http.Client{},
	}
}

func (c *Client) ListNews(ctx context.Context) ([]model.NewsResponse, error) {
	news := []model.NewsResponse{}
	err := c.do(ctx, http.MethodGet, "/api/news", nil, &news, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return news, nil
}

func (c *Client) GetFeed(ctx context.Context) ([]feed.DateGroup, error) {
	groups := []feed.DateGroup{}
	err := c.do(ctx, http.MethodGet, "/api/news/feed", nil, &groups, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return groups, nil
}

func (c *Client) CreateNews(ctx context.Context, payload model.NewsCreateRequest) (model.NewsResponse, error) {
	var created model.NewsResponse
	err := c.do(ctx, http.MethodPost, "/api/news", payload, &created, http.StatusCreated)
	if err != nil {
		return model.NewsResponse{}, err
	}
	return created, nil
}

// UploadImage relays one raw image to the server and returns the public URL
// of the stored object. The payload travels as a base64 data URI, matching
// what the upload endpoint strips off before decoding.
func (c *Client) UploadImage(ctx context.Context, filename string, data []byte) (string, error) {
	payload := model.UploadRequest{
		Image:    "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data),
		Filename: filename,
	}

	var uploaded model.UploadResponse
	err := c.do(ctx, http.MethodPost, "/api/upload", payload, &uploaded, http.StatusOK)
	if err != nil {
		return "", err
	}

	return uploaded.Url, nil
}

type errorEnvelope struct {
	Err model.ValidationError `json:"error"`
}

func (c *Client) do(ctx context.Context, method string, path string, body interface{}, out interface{}, want int) error {
	var reader io.Reader
	if body != nil {
		b, err := sonic.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != want {
		return decodeError(resp.StatusCode, raw)
	}

	if out != nil {
		return sonic.Unmarshal(raw, out)
	}

	return nil
}

func decodeError(status int, raw []byte) error {
	var envelope errorEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err == nil && envelope.Err.Message != "" {
		return &envelope.Err
	}

	return fmt.Errorf("unexpected status %d", status)
}
