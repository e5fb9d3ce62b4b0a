package entity

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

type EventKind string

const (
	EventStageCreated        EventKind = "StageCreated"
	EventSaleStarted         EventKind = "SaleStarted"
	EventTokensPurchased     EventKind = "TokensPurchased"
	EventNextStageActivated  EventKind = "NextStageActivated"
	EventStageExtended       EventKind = "StageExtended"
	EventPresaleFinalized    EventKind = "PresaleFinalized"
	EventTokensClaimed       EventKind = "TokensClaimed"
	EventTreasuryUpdated     EventKind = "TreasuryUpdated"
	EventReferralTierUpdated EventKind = "ReferralTierUpdated"
	EventFundsWithdrawn      EventKind = "FundsWithdrawn"
)

// Event is a notification emitted by a committed ledger operation.
// Payload is always a pointer to one of the *Payload types below.
type Event struct {
	Kind      EventKind
	Timestamp time.Time
	// Wallet is the address the event is about, zero for sale-wide events.
	Wallet     common.Address
	StageIndex int
	Amount     uint256.Int
	Payload    any
}

type StageCreatedPayload struct {
	Index           int         `json:"index"`
	Price           uint256.Int `json:"price"`
	NextStagePrice  uint256.Int `json:"nextStagePrice"`
	MinContribution uint256.Int `json:"minContribution"`
}

type SaleStartedPayload struct {
	StageIndex int       `json:"stageIndex"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
}

// Purchase is the receipt of a purchase and the payload of TokensPurchased.
// PaidAmount and ReferralBonus are in the payment currency, ValueAmount in unit of account.
type Purchase struct {
	Buyer         common.Address `json:"buyer"`
	StageIndex    int            `json:"stageIndex"`
	Currency      common.Address `json:"currency"`
	PaidAmount    uint256.Int    `json:"paidAmount"`
	ValueAmount   uint256.Int    `json:"valueAmount"`
	AssetAmount   uint256.Int    `json:"assetAmount"`
	Referrer      common.Address `json:"referrer"`
	ReferralBonus uint256.Int    `json:"referralBonus"`
}

type NextStageActivatedPayload struct {
	ConcludedIndex int       `json:"concludedIndex"`
	StageIndex     int       `json:"stageIndex"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
}

type StageExtendedPayload struct {
	StageIndex int       `json:"stageIndex"`
	OldEndTime time.Time `json:"oldEndTime"`
	NewEndTime time.Time `json:"newEndTime"`
}

type PresaleFinalizedPayload struct {
	ClaimStart     time.Time      `json:"claimStart"`
	Asset          common.Address `json:"asset"`
	TotalAssetSold uint256.Int    `json:"totalAssetSold"`
}

type TokensClaimedPayload struct {
	Account common.Address `json:"account"`
	Amount  uint256.Int    `json:"amount"`
}

type TreasuryUpdatedPayload struct {
	OldTreasury common.Address `json:"oldTreasury"`
	NewTreasury common.Address `json:"newTreasury"`
}

type ReferralTierUpdatedPayload struct {
	Index           int         `json:"index"`
	AmountThreshold uint256.Int `json:"amountThreshold"`
	BonusPercentage uint64      `json:"bonusPercentage"`
	Appended        bool        `json:"appended"`
}

type FundsWithdrawnPayload struct {
	Token  common.Address `json:"token"`
	To     common.Address `json:"to"`
	Amount uint256.Int    `json:"amount"`
}

// EventRecord is an event as persisted in the event log.
type EventRecord struct {
	ID         int64
	Kind       EventKind
	Wallet     common.Address
	StageIndex int
	Amount     uint256.Int
	Payload    []byte
	CreatedAt  time.Time
}
