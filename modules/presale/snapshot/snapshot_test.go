package snapshot

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/presale-ledger/modules/presale/internal/entity"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var takenAt = time.Date(2024, 6, 10, 8, 30, 0, 0, time.UTC)

type staticSource []entity.Account

func (s staticSource) Accounts(context.Context) []entity.Account { return s }
func (staticSource) Now() time.Time                             { return takenAt }

type memoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	err     error
}

func (m *memoryStore) Put(_ context.Context, key string, body []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if m.objects == nil {
		m.objects = make(map[string][]byte)
	}
	m.objects[key] = body
	return nil
}

func testAccounts() staticSource {
	a := entity.Account{Address: common.HexToAddress("0xb000000000000000000000000000000000000001")}
	a.AssetBalance.SetFromDecimal("25000000000000000000000")
	a.TotalValueInvested.SetUint64(100_000_000)

	b := entity.Account{Address: common.HexToAddress("0xc000000000000000000000000000000000000001"), ReferralCount: 3}
	b.ReferralRewardsEarned.SetUint64(55_070_000)
	b.CumulativeValueReferred = *uint256.NewInt(1_001_000_000)
	return staticSource{a, b}
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	store := &memoryStore{}
	exporter := NewExporter(testAccounts(), store, "presale/")

	key, err := exporter.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, "presale/accounts/date=2024-06-10/accounts-1718008200.parquet", key)

	rows, err := Decode(store.objects[key])
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, common.HexToAddress("0xb000000000000000000000000000000000000001"), common.HexToAddress(rows[0].Address))
	assert.Equal(t, "25000000000000000000000", rows[0].AssetBalance)
	assert.Equal(t, "100000000", rows[0].TotalValueInvested)
	assert.Equal(t, int64(3), rows[1].ReferralCount)
	assert.Equal(t, "1001000000", rows[1].CumulativeValueReferred)
	assert.Equal(t, takenAt.UnixMilli(), rows[1].TakenAt)
}

func TestExportEmpty(t *testing.T) {
	store := &memoryStore{}
	key, err := NewExporter(staticSource{}, store, "").Export(context.Background())
	require.NoError(t, err)

	rows, err := Decode(store.objects[key])
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestExportStoreFailure(t *testing.T) {
	store := &memoryStore{err: errors.New("bucket not found")}
	_, err := NewExporter(testAccounts(), store, "").Export(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket not found")
}
