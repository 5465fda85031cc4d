package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/hermes-backend/internal/clients/redis"
	"github.com/yungbote/hermes-backend/internal/data/db"
	"github.com/yungbote/hermes-backend/internal/modules/hermes/guidance"
	"github.com/yungbote/hermes-backend/internal/platform/envutil"
	"github.com/yungbote/hermes-backend/internal/platform/locale"
	"github.com/yungbote/hermes-backend/internal/platform/logger"
	"github.com/yungbote/hermes-backend/internal/platform/openai"
	"github.com/yungbote/hermes-backend/internal/services"
)

type Config struct {
	LogMode         string
	Port            string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string

	JWTSecretKey string
	JWTIssuer    string

	DB     db.Config
	Redis  redis.Config
	OpenAI openai.Config

	GuidanceCacheSize int
	GuidanceCacheTTL  time.Duration
	HistoryLimit      int
	DefaultLocale     string
	RandomSeed        uint64
	Locales           map[string]locale.Entry
}

// PersonaFile is the optional YAML file at PERSONA_CONFIG_PATH. Set fields
// override the environment.
type PersonaFile struct {
	DefaultLocale string                  `yaml:"default_locale"`
	HistoryLimit  int                     `yaml:"history_limit"`
	Locales       map[string]locale.Entry `yaml:"locales"`
}

func LoadConfig(log *logger.Logger) (Config, error) {
	cfg := Config{
		LogMode:           envutil.String("LOG_MODE", "development"),
		Port:              envutil.String("PORT", "8080"),
		ShutdownTimeout:   envutil.Seconds("SHUTDOWN_TIMEOUT_SECONDS", 15*time.Second),
		AllowedOrigins:    splitList(envutil.String("CORS_ALLOWED_ORIGINS", "")),
		JWTSecretKey:      envutil.String("JWT_SECRET_KEY", ""),
		JWTIssuer:         envutil.String("JWT_ISSUER", ""),
		DB:                db.ConfigFromEnv(),
		OpenAI:            openai.ConfigFromEnv(),
		GuidanceCacheSize: envutil.Int("GUIDANCE_CACHE_SIZE", guidance.DefaultCacheSize),
		GuidanceCacheTTL:  envutil.Seconds("GUIDANCE_CACHE_TTL_SECONDS", guidance.DefaultRemoteTTL),
		HistoryLimit:      envutil.Int("HISTORY_LIMIT", services.DefaultHistoryLimit),
		DefaultLocale:     envutil.String("DEFAULT_LOCALE", locale.DefaultCode),
		RandomSeed:        uint64(envutil.Int64("PERSONA_RANDOM_SEED", 0)),
		Redis: redis.Config{
			Addr:     envutil.String("REDIS_ADDR", ""),
			Password: envutil.String("REDIS_PASSWORD", ""),
			DB:       envutil.Int("REDIS_DB", 0),
		},
	}

	if path := envutil.String("PERSONA_CONFIG_PATH", ""); path != "" {
		pf, err := LoadPersonaFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg.applyPersonaFile(pf)
		log.Info("persona config loaded", "path", path, "locales", len(pf.Locales))
	}

	if strings.TrimSpace(cfg.JWTSecretKey) == "" {
		return Config{}, fmt.Errorf("missing JWT_SECRET_KEY")
	}
	if cfg.HistoryLimit <= 0 || cfg.HistoryLimit > services.MaxHistoryLimit {
		return Config{}, fmt.Errorf("HISTORY_LIMIT must be in 1..%d, got %d", services.MaxHistoryLimit, cfg.HistoryLimit)
	}
	return cfg, nil
}

func LoadPersonaFile(path string) (PersonaFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return PersonaFile{}, fmt.Errorf("read persona config: %w", err)
	}
	var pf PersonaFile
	if err := yaml.Unmarshal(raw, &pf); err != nil {
		return PersonaFile{}, fmt.Errorf("parse persona config %s: %w", path, err)
	}
	return pf, nil
}

func (c *Config) applyPersonaFile(pf PersonaFile) {
	if s := strings.TrimSpace(pf.DefaultLocale); s != "" {
		c.DefaultLocale = s
	}
	if pf.HistoryLimit != 0 {
		c.HistoryLimit = pf.HistoryLimit
	}
	if len(pf.Locales) > 0 {
		c.Locales = pf.Locales
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}
