package app

import (
	"context"
	"fmt"
	"strings"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/hermes-backend/internal/clients/redis"
	"github.com/yungbote/hermes-backend/internal/platform/logger"
	"github.com/yungbote/hermes-backend/internal/platform/openai"
)

// Clients are the optional external collaborators. A nil field means the
// feature it backs runs without it.
type Clients struct {
	Redis  *goredis.Client
	OpenAI openai.Client
}

func wireClients(ctx context.Context, log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")
	var out Clients

	// Redis
	if strings.TrimSpace(cfg.Redis.Addr) != "" {
		rdb, err := redis.NewClient(ctx, log, cfg.Redis)
		if err != nil {
			return Clients{}, fmt.Errorf("init redis: %w", err)
		}
		out.Redis = rdb
	} else {
		log.Info("REDIS_ADDR not set; guidance cache is process-local")
	}

	// Openai
	if strings.TrimSpace(cfg.OpenAI.APIKey) != "" {
		oc, err := openai.NewClient(log, cfg.OpenAI)
		if err != nil {
			out.Close()
			return Clients{}, fmt.Errorf("init openai client: %w", err)
		}
		out.OpenAI = oc
	} else {
		log.Warn("OPENAI_API_KEY not set; /api/persona/respond will return 503")
	}

	return out, nil
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
}
