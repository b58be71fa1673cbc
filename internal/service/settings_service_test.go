package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"quill/backend/internal/config"
	"quill/backend/internal/model"
	"quill/backend/internal/repository"
	"quill/backend/internal/repository/mock"
	"quill/backend/internal/repository/testutil"
	"quill/backend/internal/service"
	"quill/backend/internal/service/ai"
)

func newSettingsFixture(t *testing.T, defaults config.AIDefaults) (service.SettingsService, repository.Repositories, *ai.RateLimiter) {
	t.Helper()
	db := testutil.NewTestDB(t)
	repos := repository.NewRepositories(db)
	limiter := ai.NewRateLimiter(1)
	return service.NewSettingsService(repos.Settings, repos.Publishing, defaults, limiter), repos, limiter
}

func TestSettingsService_AIConfigFallsBackToDefaults(t *testing.T) {
	svc, _, _ := newSettingsFixture(t, config.AIDefaults{
		Provider: ai.ProviderAnthropic,
		APIKey:   "sk-ant-default-key",
		Model:    "claude-default",
		Language: "de-DE",
	})

	cfg, language, err := svc.AIConfig(context.Background())
	require.NoError(t, err)
	require.Equal(t, ai.ProviderAnthropic, cfg.Provider)
	require.Equal(t, "sk-ant-default-key", cfg.APIKey)
	require.Equal(t, "claude-default", cfg.Model)
	require.Equal(t, "de-DE", language)
}

func TestSettingsService_StoredValuesWin(t *testing.T) {
	svc, _, limiter := newSettingsFixture(t, config.AIDefaults{Provider: ai.ProviderOpenAI, APIKey: "sk-env-key-000", Model: "env-model"})
	ctx := context.Background()

	err := svc.SetAISettings(ctx, &service.AISettings{
		Provider:  ai.ProviderCompatible,
		APIKey:    "sk-stored-key-12345",
		BaseURL:   "https://llm.example.com/v1",
		Model:     "stored-model",
		Language:  "fr-FR",
		RateLimit: 5,
	})
	require.NoError(t, err)
	require.Equal(t, 5, limiter.GetLimit())

	cfg, language, err := svc.AIConfig(ctx)
	require.NoError(t, err)
	require.Equal(t, ai.ProviderCompatible, cfg.Provider)
	require.Equal(t, "sk-stored-key-12345", cfg.APIKey)
	require.Equal(t, "https://llm.example.com/v1", cfg.BaseURL)
	require.Equal(t, "stored-model", cfg.Model)
	require.Equal(t, "fr-FR", language)

	masked, err := svc.GetAISettings(ctx)
	require.NoError(t, err)
	require.Equal(t, "sk-***345", masked.APIKey)

	// Saving the masked key back keeps the stored one.
	masked.Model = "next-model"
	require.NoError(t, svc.SetAISettings(ctx, masked))
	cfg, _, err = svc.AIConfig(ctx)
	require.NoError(t, err)
	require.Equal(t, "sk-stored-key-12345", cfg.APIKey)
	require.Equal(t, "next-model", cfg.Model)
}

func TestSettingsService_AIConfigNotConfigured(t *testing.T) {
	svc, _, _ := newSettingsFixture(t, config.AIDefaults{Provider: ai.ProviderOpenAI, Model: "gpt-4o-mini"})

	_, _, err := svc.AIConfig(context.Background())
	require.ErrorIs(t, err, service.ErrProviderNotConfigured)
}

func TestSettingsService_SetAISettingsRejectsUnknownProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	settingsRepo := mock.NewMockSettingsRepository(ctrl)
	svc := service.NewSettingsService(settingsRepo, mock.NewMockPublishingSettingsRepository(ctrl), config.AIDefaults{}, nil)

	err := svc.SetAISettings(context.Background(), &service.AISettings{Provider: "gemini"})
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestSettingsService_TestAIValidatesConfig(t *testing.T) {
	svc, _, _ := newSettingsFixture(t, config.AIDefaults{})

	_, err := svc.TestAI(context.Background(), ai.ProviderCompatible, "sk-some-key-12345", "", "m", false, 0, "")
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestSettingsService_PublishingSettings(t *testing.T) {
	svc, _, _ := newSettingsFixture(t, config.AIDefaults{})
	ctx := context.Background()

	current, err := svc.GetPublishingSettings(ctx)
	require.NoError(t, err)
	require.False(t, current.AutoPublish)
	require.Zero(t, current.DailyQuota)

	updated, err := svc.UpdatePublishingSettings(ctx, model.PublishingSettings{
		AutoPublish:       true,
		DailyQuota:        4,
		DefaultAuthorID:   testutil.Ptr(int64(2)),
		DefaultCategoryID: testutil.Ptr(int64(8)),
	})
	require.NoError(t, err)
	require.True(t, updated.HasDefaults())

	current, err = svc.GetPublishingSettings(ctx)
	require.NoError(t, err)
	require.True(t, current.AutoPublish)
	require.Equal(t, 4, current.DailyQuota)

	_, err = svc.UpdatePublishingSettings(ctx, model.PublishingSettings{DailyQuota: -1})
	require.ErrorIs(t, err, service.ErrInvalid)
	_, err = svc.UpdatePublishingSettings(ctx, model.PublishingSettings{DefaultAuthorID: testutil.Ptr(int64(0))})
	require.ErrorIs(t, err, service.ErrInvalid)
}
