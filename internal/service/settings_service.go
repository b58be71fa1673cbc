package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"quill/backend/internal/config"
	"quill/backend/internal/model"
	"quill/backend/internal/repository"
	"quill/backend/internal/service/ai"
)

// AISettings holds the generation provider configuration.
type AISettings struct {
	Provider        string `json:"provider"`
	APIKey          string `json:"apiKey"`
	BaseURL         string `json:"baseUrl"`
	Model           string `json:"model"`
	Thinking        bool   `json:"thinking"`
	ThinkingBudget  int    `json:"thinkingBudget"`
	ReasoningEffort string `json:"reasoningEffort"`
	Language        string `json:"language"`
	RateLimit       int    `json:"rateLimit"`
}

// Setting keys
const (
	keyAIPrefix          = "ai."
	keyAIProvider        = "ai.provider"
	keyAIAPIKey          = "ai.api_key"
	keyAIBaseURL         = "ai.base_url"
	keyAIModel           = "ai.model"
	keyAIThinking        = "ai.thinking"
	keyAIThinkingBudget  = "ai.thinking_budget"
	keyAIReasoningEffort = "ai.reasoning_effort"
	keyAILanguage        = "ai.language"
	keyAIRateLimit       = "ai.rate_limit"
)

const defaultThinkingBudget = 10000

// SettingsService provides settings management.
type SettingsService interface {
	// GetAISettings returns the AI configuration with a masked API key.
	GetAISettings(ctx context.Context) (*AISettings, error)
	// SetAISettings updates the AI configuration.
	// An empty or masked API key keeps the stored one.
	SetAISettings(ctx context.Context, settings *AISettings) error
	// TestAI tests the AI connection with the given configuration.
	TestAI(ctx context.Context, provider, apiKey, baseURL, model string, thinking bool, thinkingBudget int, reasoningEffort string) (string, error)
	// AIConfig resolves the unmasked provider configuration and target
	// language. Stored values win over the environment defaults.
	AIConfig(ctx context.Context) (ai.Config, string, error)

	GetPublishingSettings(ctx context.Context) (model.PublishingSettings, error)
	UpdatePublishingSettings(ctx context.Context, settings model.PublishingSettings) (model.PublishingSettings, error)
}

type settingsService struct {
	repo        repository.SettingsRepository
	publishing  repository.PublishingSettingsRepository
	defaults    config.AIDefaults
	rateLimiter *ai.RateLimiter
}

// NewSettingsService creates a new settings service.
func NewSettingsService(repo repository.SettingsRepository, publishing repository.PublishingSettingsRepository, defaults config.AIDefaults, rateLimiter *ai.RateLimiter) SettingsService {
	return &settingsService{
		repo:        repo,
		publishing:  publishing,
		defaults:    defaults,
		rateLimiter: rateLimiter,
	}
}

func (s *settingsService) GetAISettings(ctx context.Context) (*AISettings, error) {
	settings, err := s.resolve(ctx)
	if err != nil {
		return nil, err
	}
	settings.APIKey = maskAPIKey(settings.APIKey)
	return settings, nil
}

func (s *settingsService) SetAISettings(ctx context.Context, settings *AISettings) error {
	if settings.Provider != "" {
		switch settings.Provider {
		case ai.ProviderOpenAI, ai.ProviderAnthropic, ai.ProviderCompatible:
		default:
			return fmt.Errorf("%w: provider %q", ErrInvalid, settings.Provider)
		}
		if err := s.repo.Set(ctx, keyAIProvider, settings.Provider); err != nil {
			return fmt.Errorf("set provider: %w", err)
		}
	}
	if settings.ThinkingBudget < 0 || settings.RateLimit < 0 {
		return fmt.Errorf("%w: negative limit", ErrInvalid)
	}
	if err := s.setAPIKey(ctx, keyAIAPIKey, settings.APIKey); err != nil {
		return fmt.Errorf("set api key: %w", err)
	}

	values := []struct {
		key   string
		value string
	}{
		{keyAIBaseURL, settings.BaseURL},
		{keyAIModel, settings.Model},
		{keyAIThinking, strconv.FormatBool(settings.Thinking)},
		{keyAIThinkingBudget, strconv.Itoa(settings.ThinkingBudget)},
		{keyAIReasoningEffort, settings.ReasoningEffort},
		{keyAILanguage, settings.Language},
		{keyAIRateLimit, strconv.Itoa(settings.RateLimit)},
	}
	for _, v := range values {
		if err := s.repo.Set(ctx, v.key, v.value); err != nil {
			return fmt.Errorf("set %s: %w", v.key, err)
		}
	}

	if s.rateLimiter != nil && settings.RateLimit > 0 {
		s.rateLimiter.SetLimit(settings.RateLimit)
	}
	return nil
}

func (s *settingsService) AIConfig(ctx context.Context) (ai.Config, string, error) {
	settings, err := s.resolve(ctx)
	if err != nil {
		return ai.Config{}, "", err
	}
	if settings.APIKey == "" || settings.Model == "" {
		return ai.Config{}, "", ErrProviderNotConfigured
	}
	return ai.Config{
		Provider:        settings.Provider,
		APIKey:          settings.APIKey,
		BaseURL:         settings.BaseURL,
		Model:           settings.Model,
		Thinking:        settings.Thinking,
		ThinkingBudget:  settings.ThinkingBudget,
		ReasoningEffort: settings.ReasoningEffort,
	}, settings.Language, nil
}

// resolve merges the stored ai.* rows over the configured defaults.
func (s *settingsService) resolve(ctx context.Context) (*AISettings, error) {
	rows, err := s.repo.GetByPrefix(ctx, keyAIPrefix)
	if err != nil {
		return nil, fmt.Errorf("get AI settings: %w", err)
	}
	stored := make(map[string]string, len(rows))
	for _, row := range rows {
		stored[row.Key] = row.Value
	}

	settings := &AISettings{
		Provider:        firstNonEmpty(stored[keyAIProvider], s.defaults.Provider, ai.ProviderOpenAI),
		APIKey:          firstNonEmpty(stored[keyAIAPIKey], s.defaults.APIKey),
		BaseURL:         firstNonEmpty(stored[keyAIBaseURL], s.defaults.BaseURL),
		Model:           firstNonEmpty(stored[keyAIModel], s.defaults.Model),
		Thinking:        stored[keyAIThinking] == "true",
		ThinkingBudget:  defaultThinkingBudget,
		ReasoningEffort: "medium",
		Language:        firstNonEmpty(stored[keyAILanguage], s.defaults.Language, "en-US"),
		RateLimit:       s.defaults.QPS,
	}
	if budget, err := strconv.Atoi(stored[keyAIThinkingBudget]); err == nil && budget > 0 {
		settings.ThinkingBudget = budget
	}
	// An explicitly stored empty effort overrides the default.
	if effort, ok := stored[keyAIReasoningEffort]; ok {
		settings.ReasoningEffort = effort
	}
	if qps, err := strconv.Atoi(stored[keyAIRateLimit]); err == nil && qps > 0 {
		settings.RateLimit = qps
	}
	if settings.RateLimit <= 0 {
		settings.RateLimit = ai.DefaultRateLimit
	}
	return settings, nil
}

func (s *settingsService) GetPublishingSettings(ctx context.Context) (model.PublishingSettings, error) {
	return s.publishing.GetOrCreate(ctx)
}

func (s *settingsService) UpdatePublishingSettings(ctx context.Context, settings model.PublishingSettings) (model.PublishingSettings, error) {
	if settings.DailyQuota < 0 {
		return model.PublishingSettings{}, fmt.Errorf("%w: daily quota must not be negative", ErrInvalid)
	}
	if settings.DefaultAuthorID != nil && *settings.DefaultAuthorID <= 0 {
		return model.PublishingSettings{}, fmt.Errorf("%w: default author id", ErrInvalid)
	}
	if settings.DefaultCategoryID != nil && *settings.DefaultCategoryID <= 0 {
		return model.PublishingSettings{}, fmt.Errorf("%w: default category id", ErrInvalid)
	}
	return s.publishing.Update(ctx, settings)
}

// maskAPIKey returns a masked version of the API key for display.
func maskAPIKey(apiKey string) string {
	if apiKey == "" {
		return ""
	}
	if len(apiKey) <= 8 {
		return "***"
	}
	// Keep a short vendor prefix such as "sk-".
	prefixEnd := 0
	for i, c := range apiKey {
		if c == '-' {
			prefixEnd = i + 1
			break
		}
		if i >= 4 {
			break
		}
	}
	return apiKey[:prefixEnd] + "***" + apiKey[len(apiKey)-3:]
}

// isMaskedKey checks if a string looks like a masked API key.
func isMaskedKey(key string) bool {
	return key != "" && len(key) < 20 && strings.Contains(key, "***")
}

// TestAI tests the AI connection with the given configuration.
func (s *settingsService) TestAI(ctx context.Context, provider, apiKey, baseURL, model string, thinking bool, thinkingBudget int, reasoningEffort string) (string, error) {
	// A masked key means the caller wants the stored one.
	if isMaskedKey(apiKey) || apiKey == "" {
		current, err := s.resolve(ctx)
		if err != nil {
			return "", fmt.Errorf("get stored api key: %w", err)
		}
		apiKey = current.APIKey
	}

	p, err := ai.NewProvider(ai.Config{
		Provider:        provider,
		APIKey:          apiKey,
		BaseURL:         baseURL,
		Model:           model,
		Thinking:        thinking,
		ThinkingBudget:  thinkingBudget,
		ReasoningEffort: reasoningEffort,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if s.rateLimiter != nil {
		if err := s.rateLimiter.Wait(ctx); err != nil {
			return "", err
		}
	}
	return p.Test(ctx)
}

// setAPIKey sets an API key.
// If the value is empty or looks like a masked key, it keeps the existing key.
func (s *settingsService) setAPIKey(ctx context.Context, key, value string) error {
	if value == "" || isMaskedKey(value) {
		return nil
	}
	return s.repo.Set(ctx, key, value)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
