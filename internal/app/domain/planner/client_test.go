package planner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/models"
)

type recordedRequest struct {
	Path   string
	APIKey string
	Body   map[string]any
}

type fakeGemini struct {
	*httptest.Server
	mu       sync.Mutex
	requests []recordedRequest
}

func newFakeGemini(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) *fakeGemini {
	t.Helper()
	f := &fakeGemini{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		f.requests = append(f.requests, recordedRequest{Path: r.URL.Path, APIKey: r.Header.Get("x-goog-api-key"), Body: body})
		f.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(f.Close)
	return f
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func newTestClient(t *testing.T, baseURL string, timeout time.Duration) *GeminiClient {
	t.Helper()
	client, err := NewGeminiClient(context.Background(), GeminiClientConfig{
		APIKey:  "test-key",
		Model:   "gemini-test",
		BaseURL: baseURL,
		Timeout: timeout,
	}, nil)
	require.NoError(t, err)
	return client
}

func TestGeminiClientGenerateContent(t *testing.T) {
	t.Run("returns the first candidate text", func(t *testing.T) {
		srv := newFakeGemini(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, `{"candidates":[{"content":{"role":"model","parts":[{"text":"# Madurai"},{"text":"ignored"}]}},{"content":{"parts":[{"text":"second"}]}}]}`)
		})
		client := newTestClient(t, srv.URL, time.Second)

		images := []models.Image{{Data: []byte{0x89, 'P', 'N', 'G'}, MIMEType: "image/png"}}
		text, err := client.GenerateContent(context.Background(), BuildParts("plan please", images))
		require.NoError(t, err)
		assert.Equal(t, "# Madurai", text)

		require.Len(t, srv.requests, 1)
		req := srv.requests[0]
		assert.True(t, strings.HasSuffix(req.Path, "models/gemini-test:generateContent"), req.Path)
		assert.Equal(t, "test-key", req.APIKey)

		contents, ok := req.Body["contents"].([]any)
		require.True(t, ok)
		require.Len(t, contents, 1)
		parts := contents[0].(map[string]any)["parts"].([]any)
		require.Len(t, parts, 2)
		assert.Equal(t, "plan please", parts[0].(map[string]any)["text"])
		assert.Contains(t, parts[1], "inlineData")
	})

	t.Run("API error message is surfaced", func(t *testing.T) {
		srv := newFakeGemini(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusBadRequest, `{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`)
		})
		client := newTestClient(t, srv.URL, time.Second)

		_, err := client.GenerateContent(context.Background(), BuildParts("x", nil))
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrUpstream)
		assert.Contains(t, err.Error(), "API key not valid")
	})

	t.Run("no candidates is an empty response", func(t *testing.T) {
		srv := newFakeGemini(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, `{"candidates":[]}`)
		})
		client := newTestClient(t, srv.URL, time.Second)

		_, err := client.GenerateContent(context.Background(), BuildParts("x", nil))
		assert.ErrorIs(t, err, models.ErrEmptyResponse)
	})

	t.Run("candidate without text is an empty response", func(t *testing.T) {
		srv := newFakeGemini(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, `{"candidates":[{"content":{"role":"model","parts":[]}}]}`)
		})
		client := newTestClient(t, srv.URL, time.Second)

		_, err := client.GenerateContent(context.Background(), BuildParts("x", nil))
		assert.ErrorIs(t, err, models.ErrEmptyResponse)
	})

	t.Run("timeout is an upstream failure", func(t *testing.T) {
		srv := newFakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		})
		client := newTestClient(t, srv.URL, 50*time.Millisecond)

		_, err := client.GenerateContent(context.Background(), BuildParts("x", nil))
		assert.ErrorIs(t, err, models.ErrUpstream)
	})
}

func TestNewGeminiClientRequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), GeminiClientConfig{}, nil)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestFakeGenerator(t *testing.T) {
	req := models.TripRequest{Destination: "Ooty", Duration: 2, Budget: models.BudgetBudget, Travelers: 1}
	text, err := FakeGenerator{}.GenerateContent(context.Background(), BuildParts(BuildTripPrompt(req, ""), nil))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "# 2 Days in Ooty"))
	assert.Contains(t, text, "## Day 2")
	assert.NotContains(t, text, "## Day 3")

	answer, err := FakeGenerator{}.GenerateContent(context.Background(), BuildParts(BuildChatPrompt("hi", ""), nil))
	require.NoError(t, err)
	assert.NotEmpty(t, answer)
}
