package presale

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/presale-ledger/modules/presale/internal/entity"
	"github.com/gaze-network/presale-ledger/pkg/logger"
	"github.com/gaze-network/presale-ledger/pkg/logger/slogx"
)

func (p *Presale) initializeStages(tx *stateTx) {
	if p.stagesInitialized {
		return
	}
	p.stages = make([]entity.Stage, 0, len(schedule))
	for i, s := range schedule {
		stage := entity.Stage{Index: i}
		stage.Price.SetUint64(s.price)
		stage.NextStagePrice.SetUint64(s.nextStagePrice)
		stage.MinContribution.SetUint64(s.minContribution)
		p.stages = append(p.stages, stage)

		tx.emit(entity.Event{
			Kind:       entity.EventStageCreated,
			StageIndex: i,
			Payload: &entity.StageCreatedPayload{
				Index:           i,
				Price:           stage.Price,
				NextStagePrice:  stage.NextStagePrice,
				MinContribution: stage.MinContribution,
			},
		})
	}
	p.stagesInitialized = true
}

// activateFirstStage opens stage 0 for StageDuration. It is legal only while stage 0 has never started.
func (p *Presale) activateFirstStage(tx *stateTx, now time.Time) error {
	if len(p.stages) == 0 {
		return errors.WithStack(ErrInvalidStageIndex)
	}
	first := &p.stages[0]
	if first.Started() {
		return errors.Wrap(ErrStageNotActive, "first stage already activated")
	}
	first.StartTime = now
	first.EndTime = now.Add(StageDuration)

	tx.emit(entity.Event{
		Kind:       entity.EventSaleStarted,
		StageIndex: 0,
		Payload: &entity.SaleStartedPayload{
			StageIndex: 0,
			StartTime:  first.StartTime,
			EndTime:    first.EndTime,
		},
	})
	return nil
}

// FindCurrentStageIndex returns the first stage whose window contains now, or -1.
func FindCurrentStageIndex(stages []entity.Stage, now time.Time) int {
	for i := range stages {
		if stages[i].InWindow(now) {
			return i
		}
	}
	return -1
}

// ConcludeStage ends stage idx now, marks it sold out and opens the next stage one second later.
// Treasury only. The last stage cannot be concluded.
func (p *Presale) ConcludeStage(ctx context.Context, caller common.Address, idx int) error {
	ctx, release, err := p.enter(ctx)
	if err != nil {
		return err
	}
	defer release()

	if err := p.onlyTreasury(caller); err != nil {
		return err
	}
	if idx < 0 || idx >= len(p.stages) {
		return errors.WithStack(ErrInvalidStageIndex)
	}
	if idx == len(p.stages)-1 {
		return errors.WithStack(ErrCannotConcludeLast)
	}

	tx := p.begin(ctx)
	defer tx.rollback()

	now := p.now()
	current := &p.stages[idx]
	current.EndTime = now
	current.SoldOut = true

	next := &p.stages[idx+1]
	next.StartTime = now.Add(time.Second)
	next.EndTime = now.Add(StageDuration)

	tx.emit(entity.Event{
		Kind:       entity.EventNextStageActivated,
		Timestamp:  now,
		StageIndex: idx + 1,
		Payload: &entity.NextStageActivatedPayload{
			ConcludedIndex: idx,
			StageIndex:     idx + 1,
			StartTime:      next.StartTime,
			EndTime:        next.EndTime,
		},
	})
	tx.commit()

	logger.InfoContext(ctx, "Stage concluded",
		slogx.Int("stage", idx),
		slogx.Int("nextStage", idx+1),
		slogx.Time("nextStart", next.StartTime),
		slogx.Time("nextEnd", next.EndTime),
	)
	return nil
}

// ExtendStage overwrites the end time of stage idx. Treasury only.
// With strict extension the new end must lie in the future and not before the stage start.
func (p *Presale) ExtendStage(ctx context.Context, caller common.Address, idx int, newEnd time.Time) error {
	ctx, release, err := p.enter(ctx)
	if err != nil {
		return err
	}
	defer release()

	if err := p.onlyTreasury(caller); err != nil {
		return err
	}
	if idx < 0 || idx >= len(p.stages) {
		return errors.WithStack(ErrInvalidStageIndex)
	}

	now := p.now()
	newEnd = newEnd.UTC().Truncate(time.Second)
	stage := &p.stages[idx]
	if p.strictExtension && (!newEnd.After(now) || newEnd.Before(stage.StartTime)) {
		return errors.WithStack(ErrInvalidEndTime)
	}

	tx := p.begin(ctx)
	defer tx.rollback()

	oldEnd := stage.EndTime
	stage.EndTime = newEnd

	tx.emit(entity.Event{
		Kind:       entity.EventStageExtended,
		Timestamp:  now,
		StageIndex: idx,
		Payload: &entity.StageExtendedPayload{
			StageIndex: idx,
			OldEndTime: oldEnd,
			NewEndTime: newEnd,
		},
	})
	tx.commit()

	logger.InfoContext(ctx, "Stage extended",
		slogx.Int("stage", idx),
		slogx.Time("oldEnd", oldEnd),
		slogx.Time("newEnd", newEnd),
	)
	return nil
}
