package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Canned responses served when the provider is unavailable. The chat
// endpoint never surfaces provider failures to the caller.
const (
	OfflineResponse   = "System Error: AI Neural Link Offline (Missing OpenAI API Key)."
	DisruptedResponse = "Communications Disrupted. Solar flare interference detected."
)

const systemPromptTemplate = `You are "Cosmic AI", an advanced asteroid tracking assistant for the Cosmic Watch platform.
Your tone is futuristic, precise, yet helpful. You analyze astronomical data.

Context Data about current asteroids: %s

Answer the user briefly and accurately. Use space-themed terminology where appropriate.`

type Service struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewService(apiKey, baseURL string) *Service {
	if apiKey == "" {
		log.Println("[AI] OPENAI_API_KEY missing, chat will serve the offline response")
	}
	return &Service{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// GetChatResponse forwards a user message plus free-text context to the
// chat-completions endpoint and returns the model's reply. Provider
// failures degrade to a fixed fallback string.
func (s *Service) GetChatResponse(ctx context.Context, message, contextData string) string {
	if s.apiKey == "" {
		return OfflineResponse
	}

	payload := map[string]any{
		"model": "gpt-4o",
		"messages": []map[string]string{
			{"role": "system", "content": fmt.Sprintf(systemPromptTemplate, contextData)},
			{"role": "user", "content": message},
		},
		"max_tokens": 150,
	}

	body, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("[AI] error creating request: %v", err)
		return DisruptedResponse
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.http.Do(req)
	if err != nil {
		log.Printf("[AI] OpenAI request failed: %v", err)
		return DisruptedResponse
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		log.Printf("[AI] OpenAI API error: %s", string(respBody))
		return DisruptedResponse
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		log.Printf("[AI] error decoding OpenAI response: %v", err)
		return DisruptedResponse
	}

	if len(result.Choices) == 0 {
		log.Println("[AI] OpenAI returned no choices")
		return DisruptedResponse
	}
	return result.Choices[0].Message.Content
}
