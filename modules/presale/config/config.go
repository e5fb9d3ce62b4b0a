package config

import (
	"time"

	"github.com/gaze-network/presale-ledger/internal/postgres"
	"github.com/gaze-network/presale-ledger/modules/presale/notifier"
	"github.com/gaze-network/presale-ledger/modules/presale/pricefeed"
	"github.com/gaze-network/presale-ledger/modules/presale/snapshot"
)

type Config struct {
	// Address is the custody holder of the presale. Owner and Treasury are the two admin roles.
	Address  string `mapstructure:"address"`
	Owner    string `mapstructure:"owner"`
	Treasury string `mapstructure:"treasury"`

	StableA Currency `mapstructure:"stable_a"`
	StableB Currency `mapstructure:"stable_b"`

	PriceFeed      PriceFeed      `mapstructure:"price_feed"`
	StageExtension StageExtension `mapstructure:"stage_extension"`

	Custody  Custody  `mapstructure:"custody"`
	EventLog EventLog `mapstructure:"event_log"`
	Snapshot Snapshot `mapstructure:"snapshot"`
	API      API      `mapstructure:"api"`
}

// API controls the presale HTTP routes. Write routes act as the caller named by http_server.caller.
type API struct {
	EnableWrites bool `mapstructure:"enable_writes"`
}

type Currency struct {
	Token  string `mapstructure:"token"`
	Symbol string `mapstructure:"symbol"`
}

type PriceFeed struct {
	// Type is "static" or "http".
	Type string `mapstructure:"type"`
	// StaticPrice is the native price in units of account, e.g. "3500.25". Used by the static feed.
	StaticPrice string               `mapstructure:"static_price"`
	HTTP        pricefeed.HTTPConfig `mapstructure:"http"`
	// MaxAge is the oldest accepted quote. Zero disables the staleness check.
	MaxAge *time.Duration `mapstructure:"max_age"`
}

type StageExtension struct {
	Strict bool `mapstructure:"strict"`
}

// Custody seeds the in-process vault for local runs.
type Custody struct {
	Balances []Balance `mapstructure:"balances"`
}

type Balance struct {
	Token  string `mapstructure:"token"` // empty for native
	Holder string `mapstructure:"holder"`
	Amount string `mapstructure:"amount"` // fixed-point integer
}

type EventLog struct {
	Postgres PostgresSink `mapstructure:"postgres"`
	Redis    RedisSink    `mapstructure:"redis"`
}

type PostgresSink struct {
	Enabled bool            `mapstructure:"enabled"`
	Config  postgres.Config `mapstructure:",squash"`
}

type RedisSink struct {
	Enabled bool                 `mapstructure:"enabled"`
	Config  notifier.RedisConfig `mapstructure:",squash"`
}

type Snapshot struct {
	Enabled bool `mapstructure:"enabled"`
	// Interval between scheduled exports. Zero exports only at shutdown.
	Interval time.Duration     `mapstructure:"interval"`
	S3       snapshot.S3Config `mapstructure:"s3"`
}
