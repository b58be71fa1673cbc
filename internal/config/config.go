package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	AppName    = "Quill"
	AppVersion = "1.0.0"
	AppRepo    = "https://github.com/quill-press/quill"
)

// QuillUserAgent identifies feed requests made by Quill.
var QuillUserAgent = "Mozilla/5.0 (compatible; " + AppName + "/" + AppVersion + "; +" + AppRepo + ")"

// Chrome headers for the fingerprinted fallback session (must match azuretls Chrome profile version)
const (
	ChromeUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/135.0.0.0 Safari/537.36"
	ChromeSecChUa   = `"Google Chrome";v="135", "Chromium";v="135", "Not-A.Brand";v="8"`
)

// Quota windows for the auto-publish policy.
const (
	QuotaWindowInvocation = "invocation"
	QuotaWindowRolling    = "rolling"
)

// AIDefaults seeds the provider configuration when nothing is stored in the settings table.
type AIDefaults struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
	Language string
	QPS      int
}

// Schedule holds the cadence of one recurring job.
type Schedule struct {
	Interval time.Duration
	Offset   time.Duration
	Timeout  time.Duration
}

type Config struct {
	Addr      string
	DBPath    string
	DataDir   string
	LogLevel  string
	LogFormat string
	NodeID    int64

	ProxyURL string
	RedisURL string

	AI AIDefaults

	FetchTimeout       time.Duration
	FetchConcurrency   int
	FetchHostInterval  time.Duration
	GenerationTimeout  time.Duration
	GenerationWorkers  int
	GenerationBatch    int
	PublishQuotaWindow string

	FetchSchedule    Schedule
	GenerateSchedule Schedule
	PublishSchedule  Schedule
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present.
func Load() Config {
	_ = godotenv.Load()

	dataDir := getEnv("QUILL_DATA_DIR", "./data")
	path := getEnv("QUILL_DB_PATH", filepath.Join(dataDir, "quill.db"))

	return Config{
		Addr:      getEnv("QUILL_ADDR", ":8080"),
		DBPath:    filepath.Clean(path),
		DataDir:   filepath.Clean(dataDir),
		LogLevel:  getEnv("QUILL_LOG_LEVEL", "info"),
		LogFormat: getEnv("QUILL_LOG_FORMAT", "text"),
		NodeID:    int64(getInt("QUILL_NODE_ID", 1)),

		ProxyURL: getEnv("QUILL_PROXY_URL", ""),
		RedisURL: getEnv("QUILL_REDIS_URL", ""),

		AI: AIDefaults{
			Provider: getEnv("QUILL_AI_PROVIDER", "openai"),
			APIKey:   getEnv("QUILL_AI_API_KEY", ""),
			BaseURL:  getEnv("QUILL_AI_BASE_URL", ""),
			Model:    getEnv("QUILL_AI_MODEL", ""),
			Language: getEnv("QUILL_AI_LANGUAGE", "en-US"),
			QPS:      getInt("QUILL_AI_QPS", 2),
		},

		FetchTimeout:       getDuration("QUILL_FETCH_TIMEOUT", 20*time.Second),
		FetchConcurrency:   getInt("QUILL_FETCH_CONCURRENCY", 4),
		FetchHostInterval:  getDuration("QUILL_FETCH_HOST_INTERVAL", time.Second),
		GenerationTimeout:  getDuration("QUILL_GENERATION_TIMEOUT", 120*time.Second),
		GenerationWorkers:  getInt("QUILL_GENERATION_WORKERS", 1),
		GenerationBatch:    getInt("QUILL_GENERATION_BATCH", 5),
		PublishQuotaWindow: strings.ToLower(getEnv("QUILL_PUBLISH_QUOTA_WINDOW", QuotaWindowInvocation)),

		FetchSchedule: Schedule{
			Interval: getDuration("QUILL_FETCH_INTERVAL", time.Hour),
			Offset:   getDuration("QUILL_FETCH_OFFSET", 0),
			Timeout:  getDuration("QUILL_FETCH_RUN_TIMEOUT", 30*time.Minute),
		},
		GenerateSchedule: Schedule{
			Interval: getDuration("QUILL_GENERATE_INTERVAL", 6*time.Hour),
			Offset:   getDuration("QUILL_GENERATE_OFFSET", 15*time.Minute),
			Timeout:  getDuration("QUILL_GENERATE_RUN_TIMEOUT", 45*time.Minute),
		},
		PublishSchedule: Schedule{
			Interval: getDuration("QUILL_PUBLISH_INTERVAL", time.Hour),
			Offset:   getDuration("QUILL_PUBLISH_OFFSET", 30*time.Minute),
			Timeout:  getDuration("QUILL_PUBLISH_RUN_TIMEOUT", 10*time.Minute),
		},
	}
}

// Validate reports the first setting that cannot drive the pipeline.
func (c Config) Validate() error {
	schedules := map[string]Schedule{
		"fetch":       c.FetchSchedule,
		"generate":    c.GenerateSchedule,
		"autopublish": c.PublishSchedule,
	}
	for name, s := range schedules {
		if s.Interval <= 0 {
			return fmt.Errorf("%s interval must be positive", name)
		}
		if s.Offset < 0 {
			return fmt.Errorf("%s offset must not be negative", name)
		}
	}
	if c.FetchTimeout <= 0 || c.GenerationTimeout <= 0 {
		return errors.New("fetch and generation timeouts must be positive")
	}
	if c.FetchConcurrency <= 0 || c.GenerationWorkers <= 0 {
		return errors.New("concurrency must be positive")
	}
	if c.FetchHostInterval < 0 {
		return errors.New("fetch host interval must not be negative")
	}
	if c.GenerationBatch <= 0 {
		return errors.New("generation batch must be positive")
	}
	switch c.PublishQuotaWindow {
	case QuotaWindowInvocation, QuotaWindowRolling:
	default:
		return fmt.Errorf("unknown publish quota window %q", c.PublishQuotaWindow)
	}
	if c.NodeID < 0 || c.NodeID > 1023 {
		return errors.New("node id must be within 0-1023")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// getDuration accepts Go duration strings ("90s", "1h") or plain seconds.
func getDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
