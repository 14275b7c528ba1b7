package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigured(t *testing.T) {
	assert.False(t, NewService("", "", "").Configured())
	assert.True(t, NewService("sk-test", "", "").Configured())
}

func TestChatCompletionNotConfigured(t *testing.T) {
	service := NewService("", "", "")
	_, err := service.ChatCompletion(context.Background(), &ChatRequest{})
	assert.True(t, errors.Is(err, ErrNotConfigured))
}

func TestChatCompletion(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "gpt-3.5-turbo", payload["model"])
		assert.Equal(t, 0.7, payload["temperature"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":    "chatcmpl-123",
			"model": "gpt-3.5-turbo",
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "Hello there"}},
			},
			"usage": map[string]int{
				"prompt_tokens":     10,
				"completion_tokens": 5,
				"total_tokens":      15,
			},
		})
	}))
	defer upstream.Close()

	service := NewService("sk-test", upstream.URL, "")
	response, err := service.ChatCompletion(context.Background(), &ChatRequest{
		Messages: []Message{{Role: "user", Content: "Hello"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "chatcmpl-123", response.ID)
	assert.Equal(t, "Hello there", response.Message)
	require.NotNil(t, response.Usage)
	assert.Equal(t, 15, response.Usage.TotalTokens)
}

func TestChatCompletionUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "rate limited"}`, http.StatusTooManyRequests)
	}))
	defer upstream.Close()

	service := NewService("sk-test", upstream.URL, "")
	_, err := service.ChatCompletion(context.Background(), &ChatRequest{
		Messages: []Message{{Role: "user", Content: "Hello"}},
	})
	assert.True(t, errors.Is(err, ErrUpstream))
}

func TestAnalyzeCode(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "gpt-4", payload["model"])
		assert.Equal(t, 0.3, payload["temperature"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":    "chatcmpl-456",
			"model": "gpt-4",
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "Looks safe"}},
			},
		})
	}))
	defer upstream.Close()

	service := NewService("sk-test", upstream.URL, "")
	analysis, err := service.AnalyzeCode(context.Background(), "void loop() {}", "c")
	require.NoError(t, err)
	assert.Equal(t, "Looks safe", analysis.Analysis)
	assert.NotNil(t, analysis.Suggestions)
}

func TestEmbeddings(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/embeddings", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{
				{"embedding": []float64{0.1, 0.2, 0.3}},
			},
		})
	}))
	defer upstream.Close()

	service := NewService("sk-test", upstream.URL, "")
	embedding, err := service.Embeddings(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, embedding)
}

func TestEmbeddingsEmptyResponse(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"data": []interface{}{}})
	}))
	defer upstream.Close()

	service := NewService("sk-test", upstream.URL, "")
	_, err := service.Embeddings(context.Background(), "hello")
	assert.True(t, errors.Is(err, ErrUpstream))
}

func TestModels(t *testing.T) {
	models := NewService("", "", "").Models()
	require.Len(t, models, 3)
	assert.Equal(t, "gpt-3.5-turbo", models[0].ID)
}
