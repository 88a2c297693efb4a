// Package gemini wraps the Google GenAI client behind the domain's
// TextGenerator boundary. Every provider failure is returned as a plain
// error; callers decide how to degrade.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-jobportal-backend/internal/domain"

	"google.golang.org/genai"
)

const (
	defaultModel = "gemini-1.5-flash"

	// Ceiling for chat replies. Fixed, not user-configurable.
	maxChatOutputTokens = 500
)

// Client provides prompt and chat interactions against the Gemini API.
type Client struct {
	client    *genai.Client
	modelName string
}

// NewClient creates a new Client configured for the Gemini API backend.
// Fails when no API key is supplied; the caller may then run without a
// generator and rely on local fallbacks.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	return &Client{client: client, modelName: model}, nil
}

// GenerateText sends the prompt to Gemini and returns the combined textual
// response of the first candidates.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	if c == nil || c.client == nil {
		return "", errors.New("gemini client is not initialized")
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.modelName, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	return collectText(resp)
}

// ChatReply opens a stateless chat session seeded with the supplied history,
// sends the message and returns the reply. The session lives only for this
// call; all context is caller-supplied.
func (c *Client) ChatReply(ctx context.Context, history []domain.ChatTurn, message string) (string, error) {
	if c == nil || c.client == nil {
		return "", errors.New("gemini client is not initialized")
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return "", errors.New("message must not be empty")
	}

	contents := make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		role := genai.RoleUser
		if turn.Role == domain.ChatRoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: turn.Text}},
		})
	}

	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: maxChatOutputTokens,
	}

	chat, err := c.client.Chats.Create(ctx, c.modelName, cfg, contents)
	if err != nil {
		return "", fmt.Errorf("create chat session: %w", err)
	}

	resp, err := chat.SendMessage(ctx, genai.Part{Text: message})
	if err != nil {
		return "", fmt.Errorf("send message: %w", err)
	}

	return collectText(resp)
}

// Model returns the configured model name.
func (c *Client) Model() string {
	if c == nil {
		return ""
	}
	return c.modelName
}

func collectText(resp *genai.GenerateContentResponse) (string, error) {
	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", errors.New("gemini api returned empty response")
	}

	return output, nil
}
