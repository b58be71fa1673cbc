package config_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"quill/backend/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("QUILL_DATA_DIR", "")
	t.Setenv("QUILL_DB_PATH", "")
	t.Setenv("QUILL_FETCH_INTERVAL", "")

	cfg := config.Load()
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, filepath.Join("data", "quill.db"), cfg.DBPath)
	require.Equal(t, time.Hour, cfg.FetchSchedule.Interval)
	require.Equal(t, 6*time.Hour, cfg.GenerateSchedule.Interval)
	require.Equal(t, 30*time.Minute, cfg.PublishSchedule.Offset)
	require.Equal(t, config.QuotaWindowInvocation, cfg.PublishQuotaWindow)
	require.Equal(t, time.Second, cfg.FetchHostInterval)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("QUILL_DATA_DIR", "/var/lib/quill")
	t.Setenv("QUILL_FETCH_INTERVAL", "30m")
	t.Setenv("QUILL_FETCH_TIMEOUT", "45")
	t.Setenv("QUILL_PUBLISH_QUOTA_WINDOW", "ROLLING")
	t.Setenv("QUILL_AI_MODEL", "gpt-4o-mini")

	cfg := config.Load()
	require.Equal(t, "/var/lib/quill/quill.db", cfg.DBPath)
	require.Equal(t, 30*time.Minute, cfg.FetchSchedule.Interval)
	require.Equal(t, 45*time.Second, cfg.FetchTimeout)
	require.Equal(t, config.QuotaWindowRolling, cfg.PublishQuotaWindow)
	require.Equal(t, "gpt-4o-mini", cfg.AI.Model)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("QUILL_FETCH_CONCURRENCY", "many")
	t.Setenv("QUILL_GENERATE_INTERVAL", "soon")

	cfg := config.Load()
	require.Equal(t, 4, cfg.FetchConcurrency)
	require.Equal(t, 6*time.Hour, cfg.GenerateSchedule.Interval)
}

func TestValidate(t *testing.T) {
	base := config.Load()

	cases := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{"zero interval", func(c *config.Config) { c.PublishSchedule.Interval = 0 }},
		{"negative offset", func(c *config.Config) { c.GenerateSchedule.Offset = -time.Second }},
		{"zero timeout", func(c *config.Config) { c.FetchTimeout = 0 }},
		{"zero workers", func(c *config.Config) { c.GenerationWorkers = 0 }},
		{"negative host interval", func(c *config.Config) { c.FetchHostInterval = -time.Second }},
		{"zero batch", func(c *config.Config) { c.GenerationBatch = 0 }},
		{"unknown window", func(c *config.Config) { c.PublishQuotaWindow = "weekly" }},
		{"node id", func(c *config.Config) { c.NodeID = 4096 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
