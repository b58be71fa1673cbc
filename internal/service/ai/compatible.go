package ai

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// CompatibleProvider implements Provider for OpenAI-compatible APIs such as
// OpenRouter, Azure OpenAI or Ollama.
type CompatibleProvider struct {
	client          openai.Client
	model           string
	thinking        bool
	thinkingBudget  int
	reasoningEffort string
}

func NewCompatibleProvider(apiKey, baseURL, model string, thinking bool, thinkingBudget int, reasoningEffort string, opts ...option.RequestOption) (*CompatibleProvider, error) {
	all := append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
	}, opts...)
	return &CompatibleProvider{
		client:          openai.NewClient(all...),
		model:           model,
		thinking:        thinking,
		thinkingBudget:  thinkingBudget,
		reasoningEffort: reasoningEffort,
	}, nil
}

func (p *CompatibleProvider) Name() string {
	return ProviderCompatible
}

func (p *CompatibleProvider) Model() string {
	return p.model
}

// Test sends a test message and returns the response.
func (p *CompatibleProvider) Test(ctx context.Context) (string, error) {
	return p.Complete(ctx, CompletionRequest{
		Messages:  []Message{{Role: RoleUser, Content: "Hello world"}},
		MaxTokens: 50,
	})
}

func (p *CompatibleProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(modelOrDefault(req.Model, p.model)),
		Messages: toOpenAIMessages(req.Messages),
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	resp, err := p.client.Chat.Completions.New(ctx, params, p.reasoningOption())
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// reasoningOption sets the OpenRouter-style reasoning object: effort for
// o-series and Grok models, max_tokens for Anthropic and Gemini models.
func (p *CompatibleProvider) reasoningOption() option.RequestOption {
	if !p.thinking {
		return option.WithJSONSet("reasoning", map[string]interface{}{"enabled": false})
	}
	reasoning := map[string]interface{}{"enabled": true}
	if p.reasoningEffort != "" {
		reasoning["effort"] = p.reasoningEffort
	} else if p.thinkingBudget > 0 {
		reasoning["max_tokens"] = p.thinkingBudget
	}
	return option.WithJSONSet("reasoning", reasoning)
}
