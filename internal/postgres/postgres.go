package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/presale-ledger/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	pgxslog "github.com/mcosta74/pgx-slog"
)

const (
	DefaultHost            = "127.0.0.1"
	DefaultPort            = "5432"
	DefaultDBName          = "postgres"
	DefaultSSLMode         = "prefer"
	DefaultMaxConns        = 8
	DefaultMaxConnLifetime = time.Hour
	DefaultLogLevel        = tracelog.LogLevelError
)

// DB executes queries and opens transactions. *pgxpool.Pool and *pgx.Conn satisfy it.
type DB interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
	Begin(context.Context) (pgx.Tx, error)
}

var (
	_ DB = (*pgxpool.Pool)(nil)
	_ DB = (*pgx.Conn)(nil)
)

// Config of the event log database. URL, when set, overrides the individual fields.
type Config struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"db_name"`
	SSLMode  string `mapstructure:"ssl_mode"`
	URL      string `mapstructure:"url"`

	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`

	Debug bool `mapstructure:"debug"`
}

// NewPool opens a connection pool and checks it with a ping.
func NewPool(ctx context.Context, conf Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(conf.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse config to create a new connection pool")
	}
	poolConfig.MaxConns = utils.Default(conf.MaxConns, DefaultMaxConns)
	poolConfig.MinConns = conf.MinConns
	poolConfig.MaxConnLifetime = utils.Default(conf.MaxConnLifetime, DefaultMaxConnLifetime)
	poolConfig.ConnConfig.Tracer = conf.QueryTracer()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create a new connection pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "failed to connect to the database")
	}
	return pool, nil
}

// String returns the connection string, either URL or keyword/value DSN.
func (conf Config) String() string {
	if conf.URL != "" {
		return conf.URL
	}
	parts := []string{
		"host=" + utils.Default(conf.Host, DefaultHost),
		"port=" + utils.Default(conf.Port, DefaultPort),
		"dbname=" + utils.Default(conf.DBName, DefaultDBName),
		"sslmode=" + utils.Default(conf.SSLMode, DefaultSSLMode),
	}
	if conf.User != "" {
		parts = append(parts, "user="+conf.User)
	}
	if conf.Password != "" {
		parts = append(parts, fmt.Sprintf("password='%s'", strings.ReplaceAll(conf.Password, "'", `\'`)))
	}
	return strings.Join(parts, " ")
}

func (conf Config) QueryTracer() pgx.QueryTracer {
	level := DefaultLogLevel
	if conf.Debug {
		level = tracelog.LogLevelTrace
	}
	return &tracelog.TraceLog{
		Logger:   pgxslog.NewLogger(logger.With("package", "postgres")),
		LogLevel: level,
	}
}
