package httphandler

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/presale-ledger/modules/presale/datagateway"
	"github.com/gaze-network/presale-ledger/modules/presale/internal/entity"
	"github.com/gofiber/fiber/v2"
)

const (
	defaultEventsLimit = 100
	maxEventsLimit     = 1000
)

type eventRequest struct {
	Wallet string `query:"wallet"`
	Kind   string `query:"kind"`
	Limit  int32  `query:"limit"`
	Offset int32  `query:"offset"`
}

func (h *handler) eventsHandler(ctx *fiber.Ctx) error {
	if h.presaleDg == nil {
		return fiber.NewError(http.StatusNotImplemented, "event log is not enabled")
	}

	var request eventRequest
	err := ctx.QueryParser(&request)
	if err != nil {
		return errors.Wrap(err, "cannot parse query")
	}

	var events []entity.EventRecord
	if request.Wallet != "" {
		wallet, err := parseAddress(request.Wallet)
		if err != nil {
			return errors.WithStack(err)
		}
		events, err = h.presaleDg.GetEventsByWallet(ctx.UserContext(), wallet)
		if err != nil {
			return errors.Wrap(err, "Can't get events from db")
		}
	} else {
		limit := request.Limit
		if limit <= 0 {
			limit = defaultEventsLimit
		}
		events, err = h.presaleDg.GetEvents(ctx.UserContext(), datagateway.GetEventsParams{
			Kind:   entity.EventKind(request.Kind),
			Limit:  min(limit, maxEventsLimit),
			Offset: max(request.Offset, 0),
		})
		if err != nil {
			return errors.Wrap(err, "Can't get events from db")
		}
	}

	responses := make([]eventResponse, len(events))
	for i, event := range events {
		responses[i].ID = event.ID
		responses[i].Kind = string(event.Kind)
		responses[i].Wallet = event.Wallet.Hex()
		responses[i].StageIndex = event.StageIndex
		responses[i].Amount = event.Amount.Dec()
		responses[i].Payload = event.Payload
		responses[i].CreatedAt = event.CreatedAt
	}

	err = ctx.JSON(responses)
	if err != nil {
		return errors.Wrap(err, "Go fiber cannot parse JSON")
	}
	return nil
}
