// internal/common/genai/client.go
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"trip-planner/internal/common/errors"
	"trip-planner/internal/common/httpclient"
	"trip-planner/internal/common/logger"
)

// Generator produces text completions for the drafting stages.
type Generator interface {
	Generate(ctx context.Context, systemContext, prompt string, maxTurns int) (string, error)
}

type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	Timeout     time.Duration
	MaxRetries  int
}

// Client talks to an OpenAI-compatible chat completion endpoint.
type Client struct {
	config *Config
	client *httpclient.Client
	logger logger.Logger
}

func NewClient(config *Config, log logger.Logger) *Client {
	return &Client{
		config: config,
		client: httpclient.NewClient(config.Timeout),
		logger: log,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
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

// Generate runs up to maxTurns completion rounds, feeding each answer back
// as assistant context. Retries transient failures with backoff inside the
// caller's deadline.
func (c *Client) Generate(ctx context.Context, systemContext, prompt string, maxTurns int) (string, error) {
	if maxTurns < 1 {
		maxTurns = 1
	}

	messages := []chatMessage{
		{Role: "system", Content: systemContext},
		{Role: "user", Content: prompt},
	}

	var final string
	for turn := 0; turn < maxTurns; turn++ {
		content, err := c.complete(ctx, messages)
		if err != nil {
			return "", err
		}
		final = content
		if strings.Contains(content, "TERMINATE") {
			break
		}
		messages = append(messages,
			chatMessage{Role: "assistant", Content: content},
			chatMessage{Role: "user", Content: "Continue refining the answer. Reply TERMINATE when done."},
		)
	}

	final = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(final), "TERMINATE"))
	if final == "" {
		return "", errors.NewLLMFailedError(fmt.Errorf("model returned an empty completion"))
	}
	return final, nil
}

func (c *Client) complete(ctx context.Context, messages []chatMessage) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt) * 500 * time.Millisecond
			c.logger.Warn("completion attempt failed, retrying", map[string]interface{}{
				"attempt": attempt,
				"backoff": backoff.String(),
			})
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", errors.NewLLMTimeoutError()
			}
		}

		content, err := c.completeOnce(ctx, messages)
		if err == nil {
			return content, nil
		}
		if ctx.Err() != nil {
			return "", errors.NewLLMTimeoutError()
		}
		lastErr = err
	}
	return "", errors.NewLLMFailedError(lastErr)
}

func (c *Client) completeOnce(ctx context.Context, messages []chatMessage) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.config.Model,
		Messages:    messages,
		Temperature: c.config.Temperature,
	})
	if err != nil {
		return "", err
	}

	url := strings.TrimSuffix(c.config.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return "", fmt.Errorf("completion API returned %d: %s", resp.StatusCode, parsed.Error.Message)
		}
		return "", fmt.Errorf("completion API returned %d", resp.StatusCode)
	}

	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("completion API returned no content")
	}
	return parsed.Choices[0].Message.Content, nil
}
