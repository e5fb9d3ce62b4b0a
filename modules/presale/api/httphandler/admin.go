package httphandler

import (
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/presale-ledger/common/errs"
	"github.com/gofiber/fiber/v2"
)

type finalizeRequest struct {
	ClaimStart time.Time `json:"claimStart"`
	Asset      string    `json:"asset"`
}

type extendStageRequest struct {
	EndTime time.Time `json:"endTime"`
}

type treasuryRequest struct {
	Treasury string `json:"treasury"`
}

type tierUpdateRequest struct {
	Threshold       string `json:"threshold"`
	BonusPercentage uint64 `json:"bonusPercentage"`
}

type withdrawStableRequest struct {
	Token string `json:"token"`
}

func (h *handler) finalizeHandler(ctx *fiber.Ctx) error {
	caller, err := callerOf(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	var request finalizeRequest
	if err := ctx.BodyParser(&request); err != nil {
		return errs.NewPublicError("invalid finalize body")
	}
	asset, err := parseAddress(request.Asset)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.operator.Finalize(ctx.UserContext(), caller, request.ClaimStart, asset); err != nil {
		return errors.Wrap(err, "can't finalize")
	}
	return errors.WithStack(ctx.SendStatus(http.StatusNoContent))
}

func (h *handler) concludeStageHandler(ctx *fiber.Ctx) error {
	caller, err := callerOf(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	var params stageRequest
	if err := ctx.ParamsParser(&params); err != nil {
		return errs.NewPublicError("stage index must be an integer")
	}

	if err := h.operator.ConcludeStage(ctx.UserContext(), caller, params.Index); err != nil {
		return errors.Wrap(err, "can't conclude stage")
	}
	return errors.WithStack(ctx.SendStatus(http.StatusNoContent))
}

func (h *handler) extendStageHandler(ctx *fiber.Ctx) error {
	caller, err := callerOf(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	var params stageRequest
	if err := ctx.ParamsParser(&params); err != nil {
		return errs.NewPublicError("stage index must be an integer")
	}
	var request extendStageRequest
	if err := ctx.BodyParser(&request); err != nil {
		return errs.NewPublicError("invalid extend body")
	}

	if err := h.operator.ExtendStage(ctx.UserContext(), caller, params.Index, request.EndTime); err != nil {
		return errors.Wrap(err, "can't extend stage")
	}
	return errors.WithStack(ctx.SendStatus(http.StatusNoContent))
}

func (h *handler) treasuryHandler(ctx *fiber.Ctx) error {
	caller, err := callerOf(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	var request treasuryRequest
	if err := ctx.BodyParser(&request); err != nil {
		return errs.NewPublicError("invalid treasury body")
	}
	treasury, err := parseAddress(request.Treasury)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.operator.UpdateTreasury(ctx.UserContext(), caller, treasury); err != nil {
		return errors.Wrap(err, "can't update treasury")
	}
	return errors.WithStack(ctx.SendStatus(http.StatusNoContent))
}

func (h *handler) tierHandler(ctx *fiber.Ctx) error {
	caller, err := callerOf(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	var params stageRequest
	if err := ctx.ParamsParser(&params); err != nil {
		return errs.NewPublicError("tier index must be an integer")
	}
	var request tierUpdateRequest
	if err := ctx.BodyParser(&request); err != nil {
		return errs.NewPublicError("invalid tier body")
	}
	threshold, err := parseRawAmount(request.Threshold, "threshold")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.operator.UpdateReferralTier(ctx.UserContext(), caller, params.Index, threshold, request.BonusPercentage); err != nil {
		return errors.Wrap(err, "can't update referral tier")
	}
	return errors.WithStack(ctx.SendStatus(http.StatusNoContent))
}

func (h *handler) withdrawNativeHandler(ctx *fiber.Ctx) error {
	caller, err := callerOf(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	withdrawn, err := h.operator.WithdrawNative(ctx.UserContext(), caller)
	if err != nil {
		return errors.Wrap(err, "can't withdraw native currency")
	}

	err = ctx.JSON(transferResponse{Amount: newAmount(withdrawn, nativeDecimals)})
	if err != nil {
		return errors.Wrap(err, "Go fiber cannot parse JSON")
	}
	return nil
}

func (h *handler) withdrawStableHandler(ctx *fiber.Ctx) error {
	caller, err := callerOf(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	var request withdrawStableRequest
	if err := ctx.BodyParser(&request); err != nil {
		return errs.NewPublicError("invalid withdraw body")
	}
	token, err := parseAddress(request.Token)
	if err != nil {
		return errors.WithStack(err)
	}

	withdrawn, err := h.operator.WithdrawStable(ctx.UserContext(), caller, token)
	if err != nil {
		return errors.Wrap(err, "can't withdraw stable currency")
	}

	err = ctx.JSON(transferResponse{Amount: newAmount(withdrawn, unitDecimals)})
	if err != nil {
		return errors.Wrap(err, "Go fiber cannot parse JSON")
	}
	return nil
}
