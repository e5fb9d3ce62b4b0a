package notifier

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/presale-ledger/modules/presale/internal/entity"
	"github.com/holiman/uint256"
)

// Message is the wire form of an event on external channels.
type Message struct {
	Kind       entity.EventKind `json:"kind"`
	Timestamp  time.Time        `json:"timestamp"`
	Wallet     *common.Address  `json:"wallet,omitempty"`
	StageIndex int              `json:"stageIndex"`
	Amount     *uint256.Int     `json:"amount"`
	Payload    json.RawMessage  `json:"payload,omitempty"`
}

func NewMessage(ev entity.Event) (Message, error) {
	msg := Message{
		Kind:       ev.Kind,
		Timestamp:  ev.Timestamp,
		StageIndex: ev.StageIndex,
		Amount:     new(uint256.Int).Set(&ev.Amount),
	}
	if ev.Wallet != (common.Address{}) {
		wallet := ev.Wallet
		msg.Wallet = &wallet
	}
	if ev.Payload != nil {
		payload, err := json.Marshal(ev.Payload)
		if err != nil {
			return Message{}, errors.Wrapf(err, "failed to marshal %s payload", ev.Kind)
		}
		msg.Payload = payload
	}
	return msg, nil
}
