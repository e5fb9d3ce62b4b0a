package errorhandler

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/presale-ledger/common/errs"
	"github.com/gaze-network/presale-ledger/pkg/logger"
	"github.com/gaze-network/presale-ledger/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
)

// KindStatus maps a ledger error kind to the HTTP status it is reported with.
// It returns 0 for errors without a client-facing kind.
func KindStatus(err error) int {
	switch {
	case errors.Is(err, errs.Rejected), errors.Is(err, errs.InvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, errs.Unauthorized):
		return http.StatusForbidden
	case errors.Is(err, errs.NotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.Reentrancy):
		return http.StatusConflict
	}
	return 0
}

// KindMessage is the client-facing message of a kinded error. Marked rejections report their own
// message; errors wrapping a bare kind report the whole chain.
func KindMessage(err error) string {
	cause := errors.UnwrapAll(err)
	if _, isKind := cause.(errs.ErrorKind); cause == nil || isKind {
		return err.Error()
	}
	return cause.Error()
}

func NewHTTPErrorHandler() func(ctx *fiber.Ctx, err error) error {
	return func(ctx *fiber.Ctx, err error) error {
		if e := new(errs.PublicError); errors.As(err, &e) {
			return errors.WithStack(ctx.Status(http.StatusBadRequest).JSON(map[string]any{
				"error": e.Message(),
			}))
		}
		if status := KindStatus(err); status != 0 {
			return errors.WithStack(ctx.Status(status).JSON(map[string]any{
				"error": KindMessage(err),
			}))
		}
		if e := new(fiber.Error); errors.As(err, &e) {
			return errors.WithStack(ctx.Status(e.Code).SendString(e.Error()))
		}

		logger.ErrorContext(ctx.UserContext(), "Something went wrong, unhandled api error", err,
			slogx.String("event", "api_unhandled_error"),
		)

		return errors.WithStack(ctx.Status(http.StatusInternalServerError).JSON(map[string]any{
			"error": "Internal Server Error",
		}))
	}
}
