package requestcontext

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/presale-ledger/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Error string `json:"error"`
}

// Option derives the request context. A rejection aborts the request with its status.
type Option func(ctx context.Context, c *fiber.Ctx) (context.Context, error)

// rejection is returned by an Option to answer the client directly.
type rejection struct {
	status  int
	message string
}

func (r rejection) Error() string {
	return r.message
}

// New runs opts in order and stores the resulting context as the fiber user context.
func New(opts ...Option) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		for i, opt := range opts {
			next, err := opt(ctx, c)
			if err != nil {
				var rej rejection
				if errors.As(err, &rej) {
					return errors.WithStack(c.Status(rej.status).JSON(Response{Error: rej.message}))
				}
				logger.ErrorContext(ctx, "Failed to extract request context", err,
					slog.String("module", "requestcontext"),
					slog.Int("option", i),
				)
				return errors.WithStack(c.Status(http.StatusInternalServerError).JSON(Response{Error: "internal server error"}))
			}
			ctx = next
		}
		c.SetUserContext(ctx)
		return c.Next()
	}
}
