package presale

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/presale-ledger/common/errs"
	"github.com/gaze-network/presale-ledger/modules/presale/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcludeStage(t *testing.T) {
	f := newFixture(t)
	f.vault.Mint(usdt, buyer, units(1000))

	requireKind(t, f.p.ConcludeStage(f.ctx, owner, 0), errs.Unauthorized)
	require.ErrorIs(t, f.p.ConcludeStage(f.ctx, treasury, StageCount-1), ErrCannotConcludeLast)
	require.ErrorIs(t, f.p.ConcludeStage(f.ctx, treasury, StageCount), ErrInvalidStageIndex)

	f.clock.Advance(time.Hour)
	now := f.clock.Now()
	f.sink.reset()
	require.NoError(t, f.p.ConcludeStage(f.ctx, treasury, 0))

	stages := f.p.Stages(f.ctx)
	assert.Equal(t, now, stages[0].EndTime)
	assert.True(t, stages[0].SoldOut)
	assert.Equal(t, now.Add(time.Second), stages[1].StartTime)
	assert.Equal(t, now.Add(StageDuration), stages[1].EndTime)
	assert.Equal(t, entity.StageSoldOut, stages[0].Status(now))
	assert.Equal(t, entity.StagePending, stages[1].Status(now))

	ev := f.sink.last()
	assert.Equal(t, entity.EventNextStageActivated, ev.Kind)
	assert.Equal(t, 1, ev.StageIndex)

	_, err := f.p.BuyWithStable(f.ctx, buyer, usdt, 0, common.Address{}, units(100))
	require.ErrorIs(t, err, ErrStageSoldOut)
	_, err = f.p.BuyWithStable(f.ctx, buyer, usdt, 1, common.Address{}, units(100))
	require.ErrorIs(t, err, ErrStageNotActive)

	f.clock.Advance(time.Second)
	purchase, err := f.p.BuyWithStable(f.ctx, buyer, usdt, 1, common.Address{}, units(120))
	require.NoError(t, err)
	// 120 at 0.006 per asset
	assert.Equal(t, *dec("20000000000000000000000"), purchase.AssetAmount)

	current, err := f.p.CurrentStage(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, current.Index)
	f.requireConsistent(t)
}

func TestConcludeStageRestartsNext(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.p.ConcludeStage(f.ctx, treasury, 0))
	f.clock.Advance(time.Minute)
	// concluding an earlier stage again reopens its successor from now
	require.NoError(t, f.p.ConcludeStage(f.ctx, treasury, 0))

	stage, err := f.p.Stage(f.ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, f.clock.Now().Add(time.Second), stage.StartTime)
}

func TestExtendStage(t *testing.T) {
	f := newFixture(t)

	newEnd := genesis.Add(60 * 24 * time.Hour)
	requireKind(t, f.p.ExtendStage(f.ctx, owner, 0, newEnd), errs.Unauthorized)
	require.ErrorIs(t, f.p.ExtendStage(f.ctx, treasury, -1, newEnd), ErrInvalidStageIndex)

	f.sink.reset()
	require.NoError(t, f.p.ExtendStage(f.ctx, treasury, 0, newEnd.Add(500*time.Millisecond)))
	stage, err := f.p.Stage(f.ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, newEnd, stage.EndTime, "sub-second precision is dropped")

	payload := f.sink.last().Payload.(*entity.StageExtendedPayload)
	assert.Equal(t, genesis.Add(StageDuration), payload.OldEndTime)
	assert.Equal(t, newEnd, payload.NewEndTime)

	// lenient mode accepts an end in the past, closing the stage
	require.NoError(t, f.p.ExtendStage(f.ctx, treasury, 0, genesis.Add(-time.Hour)))
	_, err = f.p.CurrentStage(f.ctx)
	requireKind(t, err, errs.NotFound)
}

func TestExtendStageStrict(t *testing.T) {
	f := newFixture(t, WithStrictStageExtension(true))
	f.clock.Advance(time.Hour)

	require.ErrorIs(t, f.p.ExtendStage(f.ctx, treasury, 0, f.clock.Now()), ErrInvalidEndTime)
	require.ErrorIs(t, f.p.ExtendStage(f.ctx, treasury, 0, genesis), ErrInvalidEndTime)
	require.NoError(t, f.p.ExtendStage(f.ctx, treasury, 0, f.clock.Now().Add(time.Second)))
}

func TestFindCurrentStageIndex(t *testing.T) {
	stages := []entity.Stage{
		{Index: 0, StartTime: genesis, EndTime: genesis.Add(time.Hour)},
		{Index: 1},
		{Index: 2, StartTime: genesis.Add(2 * time.Hour), EndTime: genesis.Add(3 * time.Hour)},
	}
	assert.Equal(t, -1, FindCurrentStageIndex(stages, genesis.Add(-time.Second)))
	assert.Equal(t, 0, FindCurrentStageIndex(stages, genesis))
	assert.Equal(t, 0, FindCurrentStageIndex(stages, genesis.Add(time.Hour)))
	assert.Equal(t, -1, FindCurrentStageIndex(stages, genesis.Add(90*time.Minute)))
	assert.Equal(t, 2, FindCurrentStageIndex(stages, genesis.Add(3*time.Hour)))
	assert.Equal(t, -1, FindCurrentStageIndex(nil, genesis))
}
