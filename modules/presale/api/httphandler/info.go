package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/presale-ledger/common/errs"
	"github.com/gaze-network/presale-ledger/modules/presale/internal/entity"
	"github.com/gofiber/fiber/v2"
)

const (
	unitDecimals   = 6
	assetDecimals  = 18
	nativeDecimals = 18
)

func (h *handler) infoHandler(ctx *fiber.Ctx) error {
	status := h.ledger.Status(ctx.UserContext())
	totals := h.ledger.Totals(ctx.UserContext())

	var current *int
	stage, err := h.ledger.CurrentStage(ctx.UserContext())
	switch {
	case err == nil:
		current = &stage.Index
	case !errors.Is(err, errs.NotFound):
		return errors.Wrap(err, "can't get current stage")
	}

	res := infoResponse{
		Owner:            status.Owner.Hex(),
		Treasury:         status.Treasury.Hex(),
		Finalized:        status.Finalized,
		ClaimStart:       optionalTime(status.ClaimStart),
		CurrentStage:     current,
		TotalAssetSold:   newAmount(&totals.TotalAssetSold, assetDecimals),
		TotalValueRaised: newAmount(&totals.TotalValueRaised, unitDecimals),
		ServerTime:       h.ledger.Now(),
	}
	if status.Finalized {
		res.Asset = status.Asset.Hex()
	}

	err = ctx.JSON(res)
	if err != nil {
		return errors.Wrap(err, "Go fiber cannot parse JSON")
	}
	return nil
}

func (h *handler) mapStages(stages []entity.Stage) []stageResponse {
	now := h.ledger.Now()
	res := make([]stageResponse, len(stages))
	for i, stage := range stages {
		res[i] = mapStage(stage, now, unitDecimals, assetDecimals)
	}
	return res
}
