package setup

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// ResetState truncates the news table and flushes the redis list cache so
// every test starts from an empty feed.
func ResetState(t *testing.T, db *pgxpool.Pool, cache *redis.Client, ctx context.Context) {
	t.Log("Resetting database and cache state...")

	_, err := db.Exec(ctx, "TRUNCATE TABLE news")
	require.NoError(t, err, "failed to truncate news table")

	err = cache.FlushDB(ctx).Err()
	require.NoError(t, err, "failed to flush redis")
}

// CreateTestJPEG encodes a small solid-color JPEG. Dimensions are kept tiny
// so the payload stays well under the recompression threshold.
func CreateTestJPEG(t *testing.T, width, height int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 120, G: 120, B: 120, A: 255})
		}
	}

	buf := &bytes.Buffer{}
	err := jpeg.Encode(buf, img, &jpeg.Options{Quality: 90})
	require.NoError(t, err, "failed to encode test jpeg")

	return buf.Bytes()
}

// CreateJSONRequest creates a test request with JSON body
func CreateJSONRequest(method, url string, jsonBody []byte) *http.Request {
	req := httptest.NewRequest(method, url, bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// ParseJSONResponse helper to parse JSON response body into a map
func ParseJSONResponse(t *testing.T, resp *http.Response) map[string]interface{} {
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")
	require.NotEmpty(t, body, "response body should not be empty")

	var result map[string]interface{}
	err = json.Unmarshal(body, &result)
	require.NoError(t, err, "failed to parse JSON response")

	return result
}

// ParseJSONArrayResponse helper to parse a JSON array response body
func ParseJSONArrayResponse(t *testing.T, resp *http.Response) []interface{} {
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")
	require.NotEmpty(t, body, "response body should not be empty")

	var result []interface{}
	err = json.Unmarshal(body, &result)
	require.NoError(t, err, "failed to parse JSON array response")

	return result
}

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Param   string `json:"param,omitempty"` // Param is only set for validation errors
}

// ParseErrorResponse parses an error response into an ErrorResponse struct
func ParseErrorResponse(t *testing.T, result map[string]interface{}) ErrorResponse {
	require.Contains(t, result, "error", "response should contain error field")

	errObj, ok := result["error"].(map[string]interface{})
	require.True(t, ok, "error field should be an object")

	errResp := ErrorResponse{}

	if code, ok := errObj["code"].(string); ok {
		errResp.Code = code
	}
	if message, ok := errObj["message"].(string); ok {
		errResp.Message = message
	}
	if param, ok := errObj["param"].(string); ok {
		errResp.Param = param
	}

	return errResp
}
