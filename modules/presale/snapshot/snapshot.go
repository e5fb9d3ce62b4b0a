// Package snapshot exports the per-account ledger as parquet files, for airdrop tooling and audits.
package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/presale-ledger/modules/presale/internal/entity"
	"github.com/gaze-network/presale-ledger/pkg/logger"
	"github.com/gaze-network/presale-ledger/pkg/logger/slogx"
	"github.com/gaze-network/presale-ledger/pkg/parquetutils"
	"github.com/samber/lo"
)

// AccountRow is one account in a snapshot file. Amounts are decimal strings of fixed-point integers.
type AccountRow struct {
	Address                 string `parquet:"name=address, type=BYTE_ARRAY, convertedtype=UTF8"`
	AssetBalance            string `parquet:"name=asset_balance, type=BYTE_ARRAY, convertedtype=UTF8"`
	TotalValueInvested      string `parquet:"name=total_value_invested, type=BYTE_ARRAY, convertedtype=UTF8"`
	ReferralRewardsEarned   string `parquet:"name=referral_rewards_earned, type=BYTE_ARRAY, convertedtype=UTF8"`
	ReferralCount           int64  `parquet:"name=referral_count, type=INT64"`
	CumulativeValueReferred string `parquet:"name=cumulative_value_referred, type=BYTE_ARRAY, convertedtype=UTF8"`
	TakenAt                 int64  `parquet:"name=taken_at, type=INT64, convertedtype=TIMESTAMP_MILLIS"`
}

// AccountSource lists every account with ledger state.
type AccountSource interface {
	Accounts(ctx context.Context) []entity.Account
	Now() time.Time
}

// Store persists encoded snapshot files.
type Store interface {
	Put(ctx context.Context, key string, body []byte) error
}

func NewAccountRows(accounts []entity.Account, takenAt time.Time) []AccountRow {
	return lo.Map(accounts, func(acc entity.Account, _ int) AccountRow {
		return AccountRow{
			Address:                 acc.Address.Hex(),
			AssetBalance:            acc.AssetBalance.Dec(),
			TotalValueInvested:      acc.TotalValueInvested.Dec(),
			ReferralRewardsEarned:   acc.ReferralRewardsEarned.Dec(),
			ReferralCount:           int64(acc.ReferralCount),
			CumulativeValueReferred: acc.CumulativeValueReferred.Dec(),
			TakenAt:                 takenAt.UnixMilli(),
		}
	})
}

func Encode(rows []AccountRow) ([]byte, error) {
	data, err := parquetutils.WriteAll(rows)
	return data, errors.WithStack(err)
}

func Decode(data []byte) ([]AccountRow, error) {
	rows, err := parquetutils.ReadAll[AccountRow](parquetutils.NewBufferFile(data))
	return rows, errors.WithStack(err)
}

type Exporter struct {
	source AccountSource
	store  Store
	prefix string
}

func NewExporter(source AccountSource, store Store, prefix string) *Exporter {
	return &Exporter{
		source: source,
		store:  store,
		prefix: prefix,
	}
}

// Key is the object key of a snapshot taken at t.
func (e *Exporter) Key(t time.Time) string {
	return fmt.Sprintf("%saccounts/date=%s/accounts-%d.parquet", e.prefix, t.UTC().Format(time.DateOnly), t.Unix())
}

// Export writes one snapshot of every account and returns its key.
func (e *Exporter) Export(ctx context.Context) (string, error) {
	takenAt := e.source.Now()
	accounts := e.source.Accounts(ctx)

	data, err := Encode(NewAccountRows(accounts, takenAt))
	if err != nil {
		return "", errors.Wrap(err, "failed to encode account snapshot")
	}
	key := e.Key(takenAt)
	if err := e.store.Put(ctx, key, data); err != nil {
		return "", errors.Wrapf(err, "failed to store account snapshot %q", key)
	}

	logger.InfoContext(ctx, "Account snapshot exported",
		slogx.String("key", key),
		slogx.Int("accounts", len(accounts)),
		slogx.Int("bytes", len(data)),
	)
	return key, nil
}
