// Package gemini implements the domain.ChatClient port on the Google
// GenAI API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	backoff "github.com/cenkalti/backoff/v4"
	"google.golang.org/genai"

	"github.com/careerpath-labs/career-compass/internal/config"
	"github.com/careerpath-labs/career-compass/internal/domain"
)

const defaultModel = "gemini-2.5-flash"

// systemPrompt frames the model as a career counselor for every chat call.
const systemPrompt = `You are CareerGPT, an expert AI career counselor and advisor. You specialize in:
- Career guidance and planning
- Resume review and optimization
- Interview preparation
- Job search strategies
- Skill development recommendations
- Industry insights and job market trends
- Salary negotiation advice
- Work-life balance and career transitions
- Professional networking
- Personal branding

Your tone is professional, encouraging, and practical. Provide specific, actionable advice tailored to the user's situation. When discussing career paths, consider the user's background, skills, and interests. Ask clarifying questions when needed. Maintain context across the conversation for personalized recommendations.`

// Client wraps the GenAI client behind the ChatClient port. A nil Client
// or one constructed without an API key reports unavailable.
type Client struct {
	cfg    config.Config
	client *genai.Client
	model  string
}

// New constructs a Gemini chat client. When the API key is empty the
// returned client is valid but reports unavailable, so callers can fall
// back to the rule-based assistant.
func New(ctx context.Context, cfg config.Config) (*Client, error) {
	model := strings.TrimSpace(cfg.GeminiModel)
	if model == "" {
		model = defaultModel
	}
	c := &Client{cfg: cfg, model: model}
	apiKey := strings.TrimSpace(cfg.GeminiAPIKey)
	if apiKey == "" {
		slog.Warn("gemini api key not set; AI chat disabled")
		return c, nil
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	c.client = gc
	return c, nil
}

// Available reports whether the client can reach the Gemini API.
func (c *Client) Available() bool { return c != nil && c.client != nil }

// Reply sends message with prior history and returns the model's text.
// Transient failures are retried with exponential backoff; the final error
// is classified into the domain taxonomy.
func (c *Client) Reply(ctx domain.Context, message string, history []domain.Message) (string, error) {
	if !c.Available() {
		return "", fmt.Errorf("%w: gemini client not configured", domain.ErrUnavailable)
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return "", fmt.Errorf("%w: empty message", domain.ErrInvalidArgument)
	}

	contents := make([]*genai.Content, 0, len(history)+1)
	for _, m := range history {
		role := genai.RoleUser
		if m.Role == domain.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: m.Content}},
		})
	}
	contents = append(contents, &genai.Content{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{{Text: message}},
	})

	genCfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemPrompt}}},
	}

	var out string
	op := func() error {
		resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, genCfg)
		if err != nil {
			if !retryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		text := collectText(resp)
		if text == "" {
			return backoff.Permanent(errors.New("gemini returned empty response"))
		}
		out = text
		return nil
	}

	expo := backoff.NewExponentialBackOff()
	maxElapsed, initial, maxInterval, multiplier := c.cfg.GetAIBackoffConfig()
	expo.MaxElapsedTime = maxElapsed
	expo.InitialInterval = initial
	expo.MaxInterval = maxInterval
	expo.Multiplier = multiplier

	if err := backoff.Retry(op, backoff.WithContext(expo, ctx)); err != nil {
		return "", classify(err)
	}
	return out, nil
}

func collectText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(text)
		}
	}
	return strings.TrimSpace(b.String())
}

func retryable(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "rate limit") || strings.Contains(s, "quota") ||
		strings.Contains(s, "429") || strings.Contains(s, "503") ||
		strings.Contains(s, "timeout") || strings.Contains(s, "deadline exceeded")
}

// classify maps an upstream failure into the domain error taxonomy.
func classify(err error) error {
	s := strings.ToLower(err.Error())
	switch {
	case strings.Contains(s, "api key"), strings.Contains(s, "api_key"), strings.Contains(s, "unauthorized"), strings.Contains(s, "401"):
		return fmt.Errorf("%w: gemini auth: %v", domain.ErrUnavailable, err)
	case strings.Contains(s, "rate limit"), strings.Contains(s, "quota"), strings.Contains(s, "429"):
		return fmt.Errorf("%w: gemini: %v", domain.ErrUpstreamRateLimit, err)
	case strings.Contains(s, "timeout"), strings.Contains(s, "deadline exceeded"):
		return fmt.Errorf("%w: gemini: %v", domain.ErrUpstreamTimeout, err)
	default:
		return fmt.Errorf("%w: gemini: %v", domain.ErrInternal, err)
	}
}
