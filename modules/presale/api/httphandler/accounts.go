package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/presale-ledger/common/errs"
	"github.com/gofiber/fiber/v2"
)

type accountRequest struct {
	Address string `params:"address"`
}

func parseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, errs.NewPublicError("invalid address")
	}
	return common.HexToAddress(s), nil
}

func (h *handler) accountHandler(ctx *fiber.Ctx) error {
	var request accountRequest
	if err := ctx.ParamsParser(&request); err != nil {
		return errors.Wrap(err, "cannot parse params")
	}
	addr, err := parseAddress(request.Address)
	if err != nil {
		return errors.WithStack(err)
	}

	acc := h.ledger.Account(ctx.UserContext(), addr)

	err = ctx.JSON(accountResponse{
		Address:                 addr.Hex(),
		AssetBalance:            newAmount(&acc.AssetBalance, assetDecimals),
		TotalValueInvested:      newAmount(&acc.TotalValueInvested, unitDecimals),
		ReferralRewardsEarned:   newAmount(&acc.ReferralRewardsEarned, unitDecimals),
		ReferralCount:           acc.ReferralCount,
		CumulativeValueReferred: newAmount(&acc.CumulativeValueReferred, unitDecimals),
	})
	if err != nil {
		return errors.Wrap(err, "Go fiber cannot parse JSON")
	}
	return nil
}
