package requestcontext

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/presale-ledger/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

const (
	DefaultCallerHeader       = "X-Presale-Caller"
	DefaultCallerSecretHeader = "X-Presale-Secret"
)

type callerKey struct{}

type WithCallerConfig struct {
	// Header carries the wallet address authenticated by the host in front of this server.
	Header string `mapstructure:"header"`

	// SecretHeader carries Secret. Requests naming a caller without it are answered 401.
	SecretHeader string `mapstructure:"secret_header"`

	// Secret is shared with the authenticating host. An empty secret trusts Header as is.
	Secret string `mapstructure:"secret"`
}

// WithCaller stores the caller wallet asserted by the authenticating host in the context.
// Requests without the caller header pass through anonymously.
func WithCaller(config WithCallerConfig) Option {
	if config.Header == "" {
		config.Header = DefaultCallerHeader
	}
	if config.SecretHeader == "" {
		config.SecretHeader = DefaultCallerSecretHeader
	}

	return func(ctx context.Context, c *fiber.Ctx) (context.Context, error) {
		raw := c.Get(config.Header)
		if raw == "" {
			return ctx, nil
		}

		if config.Secret != "" && subtle.ConstantTimeCompare([]byte(c.Get(config.SecretHeader)), []byte(config.Secret)) != 1 {
			logger.WarnContext(ctx, "Caller header without valid host secret, returning 401 Unauthorized",
				slog.String("module", "requestcontext"),
				slog.String("ip", c.IP()),
			)
			return nil, rejection{status: fiber.StatusUnauthorized, message: "caller is not authenticated"}
		}
		if !common.IsHexAddress(raw) {
			return nil, rejection{status: fiber.StatusBadRequest, message: "invalid caller address"}
		}

		caller := common.HexToAddress(raw)
		ctx = context.WithValue(ctx, callerKey{}, caller)
		return logger.WithContext(ctx, "caller", caller.Hex()), nil
	}
}

// GetCaller returns the caller stored by [WithCaller]. ok is false for anonymous requests.
func GetCaller(ctx context.Context) (caller common.Address, ok bool) {
	caller, ok = ctx.Value(callerKey{}).(common.Address)
	return caller, ok
}
