package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNotConfigured is returned when no API key is set
var ErrNotConfigured = errors.New("ai service not configured")

// ErrUpstream is returned when the provider rejects or fails a request
var ErrUpstream = errors.New("ai provider error")

const (
	defaultChatModel      = "gpt-3.5-turbo"
	defaultAnalysisModel  = "gpt-4"
	defaultEmbeddingModel = "text-embedding-ada-002"
)

// Service proxies requests to an OpenAI-compatible API
type Service struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewService creates a Service. An empty apiKey leaves the service
// unconfigured; calls then fail with ErrNotConfigured.
func NewService(apiKey, baseURL, model string) *Service {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if model == "" {
		model = defaultChatModel
	}
	return &Service{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// Configured reports whether an API key is set.
func (s *Service) Configured() bool {
	return s.apiKey != ""
}

// Message is a single chat turn
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is a chat completion request
type ChatRequest struct {
	Messages    []Message `json:"messages"`
	Model       string    `json:"model,omitempty"`
	Temperature *float64  `json:"temperature,omitempty"`
	MaxTokens   *int      `json:"max_tokens,omitempty"`
}

// Usage reports token consumption for a completion
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ChatResponse is the assistant's reply
type ChatResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Model   string `json:"model"`
	Usage   *Usage `json:"usage,omitempty"`
}

type upstreamChatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage *Usage `json:"usage"`
}

// ChatCompletion sends a chat request to the provider.
func (s *Service) ChatCompletion(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}

	model := req.Model
	if model == "" {
		model = s.model
	}
	temperature := 0.7
	if req.Temperature != nil {
		temperature = *req.Temperature
	}
	maxTokens := 1000
	if req.MaxTokens != nil {
		maxTokens = *req.MaxTokens
	}

	payload := map[string]interface{}{
		"model":       model,
		"messages":    req.Messages,
		"temperature": temperature,
		"max_tokens":  maxTokens,
	}

	var upstream upstreamChatResponse
	if err := s.post(ctx, "/chat/completions", payload, &upstream); err != nil {
		return nil, err
	}

	response := &ChatResponse{
		ID:    upstream.ID,
		Model: upstream.Model,
		Usage: upstream.Usage,
	}
	if len(upstream.Choices) > 0 {
		response.Message = upstream.Choices[0].Message.Content
	}
	return response, nil
}

// CodeAnalysis holds the result of a robotics code review
type CodeAnalysis struct {
	Analysis         string   `json:"analysis"`
	Suggestions      []string `json:"suggestions"`
	SafetyConcerns   []string `json:"safety_concerns"`
	OptimizationTips []string `json:"optimization_tips"`
}

// AnalyzeCode asks the provider to review robotics code.
func (s *Service) AnalyzeCode(ctx context.Context, code, language string) (*CodeAnalysis, error) {
	temperature := 0.3
	maxTokens := 2000
	req := &ChatRequest{
		Messages: []Message{
			{
				Role:    "system",
				Content: "You are an expert robotics and embedded systems engineer. Analyze the provided code for potential issues, optimizations, and safety concerns.",
			},
			{
				Role:    "user",
				Content: fmt.Sprintf("Analyze this %s code for a robotics application:\n\n```%s\n%s\n```", language, language, code),
			},
		},
		Model:       defaultAnalysisModel,
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	}

	response, err := s.ChatCompletion(ctx, req)
	if err != nil {
		return nil, err
	}

	return &CodeAnalysis{
		Analysis:         response.Message,
		Suggestions:      []string{},
		SafetyConcerns:   []string{},
		OptimizationTips: []string{},
	}, nil
}

type upstreamEmbeddingResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
}

// Embeddings generates a vector embedding for the text.
func (s *Service) Embeddings(ctx context.Context, text string) ([]float64, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}

	payload := map[string]interface{}{
		"model": defaultEmbeddingModel,
		"input": text,
	}

	var upstream upstreamEmbeddingResponse
	if err := s.post(ctx, "/embeddings", payload, &upstream); err != nil {
		return nil, err
	}
	if len(upstream.Data) == 0 {
		return nil, fmt.Errorf("%w: no embedding returned", ErrUpstream)
	}
	return upstream.Data[0].Embedding, nil
}

// ModelInfo describes an offered model
type ModelInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Models lists the models the platform offers.
func (s *Service) Models() []ModelInfo {
	return []ModelInfo{
		{ID: "gpt-3.5-turbo", Name: "GPT-3.5 Turbo", Description: "Fast and efficient for most tasks"},
		{ID: "gpt-4", Name: "GPT-4", Description: "Most capable model for complex tasks"},
		{ID: "text-embedding-ada-002", Name: "Embedding Ada", Description: "Text embedding model"},
	}
}

func (s *Service) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: request failed: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errorText, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, errorText)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to parse response: %v", ErrUpstream, err)
	}
	return nil
}
