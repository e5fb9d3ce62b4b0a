package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/presale-ledger/common/errs"
	"github.com/gofiber/fiber/v2"
	"github.com/holiman/uint256"
)

type quoteRequest struct {
	Stage int    `query:"stage"`
	Value string `query:"value"`
}

// quoteHandler prices a unit-of-account value (raw, 6 decimals) at a stage.
func (h *handler) quoteHandler(ctx *fiber.Ctx) error {
	var request quoteRequest
	err := ctx.QueryParser(&request)
	if err != nil {
		return errs.NewPublicError("invalid quote query")
	}
	value, err := uint256.FromDecimal(request.Value)
	if err != nil {
		return errs.NewPublicError("value must be a non-negative integer")
	}

	asset, err := h.ledger.Quote(ctx.UserContext(), request.Stage, value)
	if err != nil {
		return errors.Wrap(err, "can't quote")
	}

	err = ctx.JSON(quoteResponse{
		Stage:       request.Stage,
		Value:       newAmount(value, unitDecimals),
		AssetAmount: newAmount(asset, assetDecimals),
	})
	if err != nil {
		return errors.Wrap(err, "Go fiber cannot parse JSON")
	}
	return nil
}
