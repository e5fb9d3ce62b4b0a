package httphandler

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/presale-ledger/common/errs"
	"github.com/gaze-network/presale-ledger/pkg/middleware/requestcontext"
	"github.com/gofiber/fiber/v2"
	"github.com/holiman/uint256"
)

type purchaseRequest struct {
	Stage    int    `json:"stage"`
	Currency string `json:"currency"`
	Referrer string `json:"referrer"`
	Amount   string `json:"amount"`
}

func callerOf(ctx *fiber.Ctx) (common.Address, error) {
	caller, ok := requestcontext.GetCaller(ctx.UserContext())
	if !ok {
		return common.Address{}, fiber.NewError(http.StatusUnauthorized, "caller is required")
	}
	return caller, nil
}

func parseOptionalAddress(s string) (common.Address, error) {
	if s == "" {
		return common.Address{}, nil
	}
	return parseAddress(s)
}

// parseRawAmount reads a raw fixed-point integer in the smallest unit of its currency.
func parseRawAmount(s, field string) (*uint256.Int, error) {
	if s == "" {
		return nil, errs.NewPublicError(field + " is required")
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, errs.NewPublicError(field + " must be a non-negative integer")
	}
	return v, nil
}

func parsePurchase(ctx *fiber.Ctx) (purchaseRequest, common.Address, *uint256.Int, error) {
	var request purchaseRequest
	if err := ctx.BodyParser(&request); err != nil {
		return request, common.Address{}, nil, errs.NewPublicError("invalid purchase body")
	}
	referrer, err := parseOptionalAddress(request.Referrer)
	if err != nil {
		return request, common.Address{}, nil, errors.WithStack(err)
	}
	value, err := parseRawAmount(request.Amount, "amount")
	if err != nil {
		return request, common.Address{}, nil, errors.WithStack(err)
	}
	return request, referrer, value, nil
}

// nativePurchaseHandler buys with native currency already held by the caller in the vault.
func (h *handler) nativePurchaseHandler(ctx *fiber.Ctx) error {
	buyer, err := callerOf(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	request, referrer, value, err := parsePurchase(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	purchase, err := h.operator.BuyWithNative(ctx.UserContext(), buyer, request.Stage, referrer, value)
	if err != nil {
		return errors.Wrap(err, "can't buy with native currency")
	}

	err = ctx.Status(http.StatusCreated).JSON(mapPurchase(purchase))
	if err != nil {
		return errors.Wrap(err, "Go fiber cannot parse JSON")
	}
	return nil
}

func (h *handler) stablePurchaseHandler(ctx *fiber.Ctx) error {
	buyer, err := callerOf(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	request, referrer, value, err := parsePurchase(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	currency, err := parseAddress(request.Currency)
	if err != nil {
		return errors.WithStack(err)
	}

	purchase, err := h.operator.BuyWithStable(ctx.UserContext(), buyer, currency, request.Stage, referrer, value)
	if err != nil {
		return errors.Wrap(err, "can't buy with stable currency")
	}

	err = ctx.Status(http.StatusCreated).JSON(mapPurchase(purchase))
	if err != nil {
		return errors.Wrap(err, "Go fiber cannot parse JSON")
	}
	return nil
}

func (h *handler) claimHandler(ctx *fiber.Ctx) error {
	caller, err := callerOf(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	claimed, err := h.operator.Claim(ctx.UserContext(), caller)
	if err != nil {
		return errors.Wrap(err, "can't claim")
	}

	err = ctx.JSON(transferResponse{Amount: newAmount(claimed, assetDecimals)})
	if err != nil {
		return errors.Wrap(err, "Go fiber cannot parse JSON")
	}
	return nil
}
