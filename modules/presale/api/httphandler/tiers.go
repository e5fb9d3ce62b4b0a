package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/presale-ledger/modules/presale/internal/entity"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

func (h *handler) tiersHandler(ctx *fiber.Ctx) error {
	tiers := h.ledger.ReferralTiers(ctx.UserContext())

	res := lo.Map(tiers, func(tier entity.ReferralTier, i int) tierResponse {
		return tierResponse{
			Index:           i,
			AmountThreshold: tier.AmountThreshold.Dec(),
			BonusPercentage: tier.BonusPercentage,
		}
	})

	err := ctx.JSON(res)
	if err != nil {
		return errors.Wrap(err, "Go fiber cannot parse JSON")
	}
	return nil
}
