package entity

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

type StageStatus int

const (
	StagePending StageStatus = iota
	StageActive
	StageSoldOut
	StageConcluded
)

func (s StageStatus) String() string {
	switch s {
	case StagePending:
		return "pending"
	case StageActive:
		return "active"
	case StageSoldOut:
		return "sold_out"
	case StageConcluded:
		return "concluded"
	}
	return "unknown"
}

// Stage is a time-boxed sale phase. StartTime and EndTime stay zero until the stage is opened.
type Stage struct {
	Index int

	StartTime time.Time
	EndTime   time.Time

	// Price is the unit-of-account price of one whole asset.
	Price          uint256.Int
	NextStagePrice uint256.Int

	TotalAssetSold   uint256.Int
	TotalValueRaised uint256.Int
	MinContribution  uint256.Int
	SoldOut          bool
}

// Started reports whether the stage has ever been opened.
func (s Stage) Started() bool {
	return !s.StartTime.IsZero()
}

// InWindow reports whether now falls inside [StartTime, EndTime] of a started stage.
func (s Stage) InWindow(now time.Time) bool {
	return s.Started() && !now.Before(s.StartTime) && !now.After(s.EndTime)
}

func (s Stage) Status(now time.Time) StageStatus {
	switch {
	case !s.Started():
		return StagePending
	case s.SoldOut:
		return StageSoldOut
	case now.After(s.EndTime):
		return StageConcluded
	case now.Before(s.StartTime):
		return StagePending
	}
	return StageActive
}

// ReferralTier grants BonusPercentage once a referrer's lifetime referred value reaches AmountThreshold
// whole units of account.
type ReferralTier struct {
	AmountThreshold uint256.Int
	BonusPercentage uint64
}

// Account is the per-address ledger state.
type Account struct {
	Address            common.Address
	AssetBalance       uint256.Int
	TotalValueInvested uint256.Int
	// ReferralRewardsEarned is in unit of account for every purchase. A native purchase pays the
	// referrer in native currency, so this counter is the unit-of-account value of those payouts
	// and does not equal the native amount transferred.
	ReferralRewardsEarned   uint256.Int
	ReferralCount           uint64
	CumulativeValueReferred uint256.Int
}

func (a Account) IsEmpty() bool {
	return a.AssetBalance.IsZero() &&
		a.TotalValueInvested.IsZero() &&
		a.ReferralRewardsEarned.IsZero() &&
		a.ReferralCount == 0 &&
		a.CumulativeValueReferred.IsZero()
}

// Totals are the sale-wide counters. They always equal the sum of the per-stage counters.
type Totals struct {
	TotalAssetSold   uint256.Int
	TotalValueRaised uint256.Int
}

// Status is the sale lifecycle.
type Status struct {
	Owner             common.Address
	Treasury          common.Address
	StagesInitialized bool
	Finalized         bool
	ClaimStart        time.Time
	Asset             common.Address
}

// Price is a quote of unit of account per native currency unit, as a signed fixed-point number with Decimals
// fractional digits.
type Price struct {
	Answer    *big.Int
	Decimals  uint8
	UpdatedAt time.Time
}

// Currency identifies a settlement currency and its fixed-point scale.
type Currency struct {
	Token    common.Address
	Symbol   string
	Decimals uint8
}
