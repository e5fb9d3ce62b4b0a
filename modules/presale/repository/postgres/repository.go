package postgres

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/presale-ledger/internal/postgres"
	"github.com/gaze-network/presale-ledger/modules/presale/datagateway"
	"github.com/gaze-network/presale-ledger/modules/presale/internal/entity"
	"github.com/gaze-network/presale-ledger/modules/presale/repository/postgres/gen"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var _ datagateway.PresaleDataGatewayWithTx = (*Repository)(nil)

type Repository struct {
	db      postgres.DB
	queries *gen.Queries
	tx      pgx.Tx
}

func NewRepository(db postgres.DB) *Repository {
	return &Repository{
		db:      db,
		queries: gen.New(db),
	}
}

func (repo *Repository) CreateEvent(ctx context.Context, arg entity.Event) error {
	payload := []byte("{}")
	if arg.Payload != nil {
		var err error
		payload, err = json.Marshal(arg.Payload)
		if err != nil {
			return errors.Wrap(err, "failed to marshal event payload")
		}
	}
	err := repo.queries.CreateEvent(ctx, gen.CreateEventParams{
		Kind:       string(arg.Kind),
		Wallet:     mapAddress(arg.Wallet),
		StageIndex: int32(arg.StageIndex),
		Amount:     mapNumeric(&arg.Amount),
		Payload:    payload,
		CreatedAt:  pgtype.Timestamp{Time: arg.Timestamp.UTC(), Valid: true},
	})
	if err != nil {
		return errors.Wrap(err, "Cannot add event")
	}
	return nil
}

func (repo *Repository) GetEvents(ctx context.Context, arg datagateway.GetEventsParams) ([]entity.EventRecord, error) {
	events, err := repo.queries.GetEvents(ctx, gen.GetEventsParams{
		Kind:   string(arg.Kind),
		Limit:  arg.Limit,
		Offset: arg.Offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "cannot get events")
	}
	records, err := mapEventRecords(events)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return records, nil
}

func (repo *Repository) GetEventsByWallet(ctx context.Context, wallet common.Address) ([]entity.EventRecord, error) {
	events, err := repo.queries.GetEventsByWallet(ctx, mapAddress(wallet))
	if err != nil {
		return nil, errors.Wrap(err, "cannot get events by wallet")
	}
	records, err := mapEventRecords(events)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return records, nil
}
