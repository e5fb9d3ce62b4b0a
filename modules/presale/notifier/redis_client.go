package notifier

import (
	"context"
	"time"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/presale-ledger/pkg/logger"
	"github.com/gaze-network/presale-ledger/pkg/logger/slogx"
	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Addr     string `mapstructure:"addr"` // Default is localhost:6379
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Channel  string `mapstructure:"channel"` // Default is presale:events
}

const (
	DefaultRedisAddr   = "localhost:6379"
	redisConnectTimeout = 5 * time.Second
)

// NewRedisClient connects to Redis and checks the connection.
func NewRedisClient(ctx context.Context, conf RedisConfig) (*redis.Client, error) {
	addr := utils.Default(conf.Addr, DefaultRedisAddr)
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: conf.Password,
		DB:       conf.DB,

		PoolSize:     10,
		MinIdleConns: 2,

		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisConnectTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errors.Wrapf(err, "can't connect to redis at %q", addr)
	}

	logger.InfoContext(ctx, "Connected to Redis", slogx.String("addr", addr), slogx.Int("db", conf.DB))
	return rdb, nil
}
