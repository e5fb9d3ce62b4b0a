package notifier

import (
	"context"

	"github.com/gaze-network/presale-ledger/modules/presale/internal/entity"
	"github.com/gaze-network/presale-ledger/pkg/logger"
	"github.com/gaze-network/presale-ledger/pkg/logger/slogx"
)

// LogSink writes every event to the structured log.
type LogSink struct{}

func (LogSink) Publish(ctx context.Context, events []entity.Event) error {
	for _, ev := range events {
		logger.InfoContext(ctx, "Presale event",
			slogx.String("kind", string(ev.Kind)),
			slogx.Address("wallet", ev.Wallet),
			slogx.Int("stage", ev.StageIndex),
			slogx.Uint256("amount", &ev.Amount),
			slogx.Any("payload", ev.Payload),
		)
	}
	return nil
}
