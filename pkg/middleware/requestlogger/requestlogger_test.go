package requestlogger

import (
	"net/http"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/presale-ledger/common/errs"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusOf(errs.NewPublicError("invalid address")))
	assert.Equal(t, http.StatusForbidden, statusOf(errors.Mark(errors.New("Caller is not the owner"), errs.Unauthorized)))
	assert.Equal(t, http.StatusNotImplemented, statusOf(fiber.NewError(http.StatusNotImplemented)))
	assert.Equal(t, http.StatusInternalServerError, statusOf(errors.New("boom")))
}
