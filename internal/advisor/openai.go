package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/example/studycoach/internal/errors"
	"github.com/example/studycoach/internal/logger"
)

const (
	chatCompletionsPath = "/v1/chat/completions"
	systemPrompt        = "You are an expert AI/ML career coach."

	maxTokens   = 800
	temperature = 0.7
)

// OpenAI calls the chat completions API and returns the first choice.
type OpenAI struct {
	httpClient *http.Client
	apiKey     string
	model      string
	baseURL    string
	log        *logger.Logger
}

// NewOpenAI returns a client for the given key and model. baseURL is the API
// root without a trailing slash, e.g. "https://api.openai.com".
func NewOpenAI(apiKey, model, baseURL string) *OpenAI {
	return &OpenAI{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		apiKey:     apiKey,
		model:      model,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		log:        logger.Default().WithPrefix("advisor"),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContext(ctx).WithPrefix("advisor").WithField("model", c.model)

	request := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}
	payload, err := json.Marshal(request)
	if err != nil {
		return "", errors.NewInternalError(err)
	}

	url := c.baseURL + chatCompletionsPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		log.Error("failed to create request: %v", err)
		return "", errors.NewInternalError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	log.Debug("requesting completion, prompt length=%d", len(prompt))
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("completion request failed: %v", err)
		return "", errors.NewInternalError(err)
	}
	defer resp.Body.Close()

	log.Debug("completion response received in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Error("completion request failed: status=%d, body=%s", resp.StatusCode, string(body))
		return "", errors.NewInternalError(fmt.Errorf("completion status %d: %s", resp.StatusCode, string(body)))
	}

	var response chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		log.Error("failed to decode completion response: %v", err)
		return "", errors.NewInternalError(err)
	}
	if response.Error != nil {
		return "", errors.NewInternalError(fmt.Errorf("completion error: %s", response.Error.Message))
	}
	if len(response.Choices) == 0 {
		return "", errors.NewInternalError(fmt.Errorf("no completion choices returned"))
	}

	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}
