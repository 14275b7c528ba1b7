package endpoints

import (
	"errors"
	"net/http"

	"github.com/robohub/robohub/pkg/ai"
	"github.com/robohub/robohub/pkg/server"
	"github.com/robohub/robohub/pkg/server/apierror"
)

// ChatCompletionRequest is the body for assistant chat
type ChatCompletionRequest struct {
	Messages    []ai.Message `json:"messages"`
	Model       string       `json:"model,omitempty"`
	Temperature *float64     `json:"temperature,omitempty"`
	MaxTokens   *int         `json:"max_tokens,omitempty"`
}

// CodeAnalysisRequest is the body for robotics code review
type CodeAnalysisRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

// EmbeddingRequest is the body for embedding generation
type EmbeddingRequest struct {
	Text string `json:"text"`
}

// AssistantResponse is the assistant's reply to the client
type AssistantResponse struct {
	Message    string `json:"message"`
	Model      string `json:"model"`
	TokensUsed *int   `json:"tokens_used,omitempty"`
}

// RegisterAIEndpoints registers the AI proxy endpoints
func RegisterAIEndpoints(s *server.Server) {
	service := s.AI

	r := s.Router.PathPrefix("/api/ai").Subrouter()
	r.HandleFunc("/health", handleAIHealth(service)).Methods("GET")
	r.HandleFunc("/models", handleModels(service)).Methods("GET")

	protected := r.NewRoute().Subrouter()
	protected.Use(s.Auth.Required)
	protected.HandleFunc("/chat", handleChat(service)).Methods("POST")
	protected.HandleFunc("/analyze", handleAnalyzeCode(service)).Methods("POST")
	protected.HandleFunc("/embeddings", handleEmbeddings(service)).Methods("POST")
}

func handleChat(service *ai.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body ChatCompletionRequest
		if err := decodeJSON(r, &body); err != nil {
			respondWithError(w, err)
			return
		}
		if len(body.Messages) == 0 {
			respondWithError(w, apierror.New(apierror.ValidationError, "messages are required"))
			return
		}

		response, err := service.ChatCompletion(r.Context(), &ai.ChatRequest{
			Messages:    body.Messages,
			Model:       body.Model,
			Temperature: body.Temperature,
			MaxTokens:   body.MaxTokens,
		})
		if err != nil {
			respondWithError(w, aiServiceError(err))
			return
		}

		result := AssistantResponse{
			Message: response.Message,
			Model:   response.Model,
		}
		if response.Usage != nil {
			result.TokensUsed = &response.Usage.TotalTokens
		}
		respondWithData(w, result)
	}
}

func handleAnalyzeCode(service *ai.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body CodeAnalysisRequest
		if err := decodeJSON(r, &body); err != nil {
			respondWithError(w, err)
			return
		}
		if body.Code == "" {
			respondWithError(w, apierror.New(apierror.ValidationError, "code is required"))
			return
		}

		analysis, err := service.AnalyzeCode(r.Context(), body.Code, body.Language)
		if err != nil {
			respondWithError(w, aiServiceError(err))
			return
		}
		respondWithData(w, analysis)
	}
}

func handleEmbeddings(service *ai.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body EmbeddingRequest
		if err := decodeJSON(r, &body); err != nil {
			respondWithError(w, err)
			return
		}
		if body.Text == "" {
			respondWithError(w, apierror.New(apierror.ValidationError, "text is required"))
			return
		}

		embedding, err := service.Embeddings(r.Context(), body.Text)
		if err != nil {
			respondWithError(w, aiServiceError(err))
			return
		}
		respondWithData(w, map[string]interface{}{
			"embeddings": embedding,
			"dimensions": len(embedding),
		})
	}
}

func handleModels(service *ai.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithData(w, map[string]interface{}{
			"available": service.Configured(),
			"models":    service.Models(),
		})
	}
}

func handleAIHealth(service *ai.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := "available"
		if !service.Configured() {
			status = "not_configured"
		}
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"service": "ai",
			"status":  status,
			"features": map[string]bool{
				"chat":          service.Configured(),
				"embeddings":    service.Configured(),
				"code_analysis": service.Configured(),
			},
		})
	}
}

func aiServiceError(err error) error {
	if errors.Is(err, ai.ErrNotConfigured) {
		return apierror.New(apierror.ServiceUnavailable, "AI service not configured")
	}
	return apierror.New(apierror.ExternalService, err.Error())
}
