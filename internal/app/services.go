package app

import (
	"fmt"
	"math/rand/v2"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/yungbote/hermes-backend/internal/clients/redis"
	"github.com/yungbote/hermes-backend/internal/modules/hermes"
	"github.com/yungbote/hermes-backend/internal/modules/hermes/guidance"
	"github.com/yungbote/hermes-backend/internal/observability"
	"github.com/yungbote/hermes-backend/internal/platform/locale"
	"github.com/yungbote/hermes-backend/internal/platform/logger"
	"github.com/yungbote/hermes-backend/internal/services"
)

type Services struct {
	Auth     services.AuthService
	Persona  services.PersonaService
	Engine   *hermes.Engine
	Guidance *guidance.Cache
	Locales  *locale.Provider
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos, clients Clients, metrics *observability.Metrics) (Services, error) {
	log.Info("Wiring services...")

	auth, err := services.NewAuthService(log, cfg.JWTSecretKey, cfg.JWTIssuer)
	if err != nil {
		return Services{}, fmt.Errorf("init auth service: %w", err)
	}

	locales := locale.New(cfg.Locales)

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	engine, err := hermes.NewEngine(locales, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
	if err != nil {
		return Services{}, fmt.Errorf("init persona engine: %w", err)
	}

	cacheOpts := []guidance.Option{
		guidance.WithLogger(log),
		guidance.WithObserver(metrics.IncGuidanceLookup),
	}
	if clients.Redis != nil {
		var rdb goredis.UniversalClient = clients.Redis
		cacheOpts = append(cacheOpts, guidance.WithRemote(redis.NewGuidanceStore(log, rdb), cfg.GuidanceCacheTTL))
	}
	cache, err := guidance.NewCache(cfg.GuidanceCacheSize, cacheOpts...)
	if err != nil {
		return Services{}, err
	}

	var generator services.TextGenerator
	if clients.OpenAI != nil {
		generator = clients.OpenAI
	}

	persona := services.NewPersonaService(
		db,
		log,
		engine,
		cache,
		generator,
		locales,
		repos.Profile,
		repos.Milestone,
		repos.Activity,
		repos.ChatThread,
		repos.ChatMsg,
		services.PersonaConfig{
			HistoryLimit:  cfg.HistoryLimit,
			DefaultLocale: cfg.DefaultLocale,
		},
	)

	return Services{
		Auth:     auth,
		Persona:  persona,
		Engine:   engine,
		Guidance: cache,
		Locales:  locales,
	}, nil
}
