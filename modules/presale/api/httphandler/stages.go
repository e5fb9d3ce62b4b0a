package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/presale-ledger/common/errs"
	"github.com/gofiber/fiber/v2"
)

type stageRequest struct {
	Index int `params:"index"`
}

func (h *handler) stagesHandler(ctx *fiber.Ctx) error {
	stages := h.ledger.Stages(ctx.UserContext())

	err := ctx.JSON(h.mapStages(stages))
	if err != nil {
		return errors.Wrap(err, "Go fiber cannot parse JSON")
	}
	return nil
}

func (h *handler) stageHandler(ctx *fiber.Ctx) error {
	var request stageRequest
	if err := ctx.ParamsParser(&request); err != nil {
		return errs.NewPublicError("stage index must be an integer")
	}

	stage, err := h.ledger.Stage(ctx.UserContext(), request.Index)
	if err != nil {
		return errors.Wrap(err, "can't get stage")
	}

	err = ctx.JSON(mapStage(stage, h.ledger.Now(), unitDecimals, assetDecimals))
	if err != nil {
		return errors.Wrap(err, "Go fiber cannot parse JSON")
	}
	return nil
}

func (h *handler) currentStageHandler(ctx *fiber.Ctx) error {
	stage, err := h.ledger.CurrentStage(ctx.UserContext())
	if err != nil {
		return errors.Wrap(err, "can't get current stage")
	}

	err = ctx.JSON(mapStage(stage, h.ledger.Now(), unitDecimals, assetDecimals))
	if err != nil {
		return errors.Wrap(err, "Go fiber cannot parse JSON")
	}
	return nil
}
