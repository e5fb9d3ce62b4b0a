package datagateway

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/presale-ledger/modules/presale/internal/entity"
)

type PresaleDataGateway interface {
	BeginPresaleTx(ctx context.Context) (PresaleDataGatewayWithTx, error)
	CreateEvent(ctx context.Context, arg entity.Event) error
	GetEvents(ctx context.Context, arg GetEventsParams) ([]entity.EventRecord, error)
	GetEventsByWallet(ctx context.Context, wallet common.Address) ([]entity.EventRecord, error)
}

type PresaleDataGatewayWithTx interface {
	PresaleDataGateway
	Tx
}

type GetEventsParams struct {
	// Kind filters by event kind when not empty.
	Kind   entity.EventKind
	Limit  int32
	Offset int32
}
