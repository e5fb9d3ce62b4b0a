package presale

import (
	"time"

	"github.com/gaze-network/presale-ledger/pkg/decimals"
	"github.com/holiman/uint256"
)

const (
	Version = "v0.1.0"

	// UnitDecimals is the fixed-point scale of the unit of account. Both stable settlement currencies use it.
	UnitDecimals uint8 = 6
	// NativeDecimals is the fixed-point scale of the native currency.
	NativeDecimals uint8 = 18
	// FeedDecimals is the scale of native/unit quotes returned by the price feed.
	FeedDecimals uint8 = 8
	// AssetDecimals is the scale of the asset sold. One whole asset is 10^AssetDecimals indivisible units.
	AssetDecimals uint8 = 18

	// StageDuration is the window given to a stage when it is opened.
	StageDuration = 40 * 24 * time.Hour

	// DefaultPriceMaxAge is the oldest quote accepted from the price feed.
	DefaultPriceMaxAge = time.Hour

	maxBonusPercentage = 100
)

// nativeScaleDecimals is the divisor exponent turning native*price into unit of account.
// The constant expression fails to compile if the scales ever make it negative.
const nativeScaleDecimals = NativeDecimals + FeedDecimals - UnitDecimals

type stageSchedule struct {
	price           uint64
	nextStagePrice  uint64
	minContribution uint64
}

// schedule is the literal 8-stage table. Prices and minimums are in unit of account smallest units.
var schedule = [...]stageSchedule{
	{price: 4000, nextStagePrice: 6000, minContribution: 100_000_000},
	{price: 6000, nextStagePrice: 8000, minContribution: 100_000_000},
	{price: 8000, nextStagePrice: 10000, minContribution: 200_000_000},
	{price: 10000, nextStagePrice: 15000, minContribution: 200_000_000},
	{price: 15000, nextStagePrice: 17500, minContribution: 250_000_000},
	{price: 17500, nextStagePrice: 18000, minContribution: 250_000_000},
	{price: 18000, nextStagePrice: 20000, minContribution: 300_000_000},
	{price: 20000, nextStagePrice: 20000, minContribution: 300_000_000},
}

// StageCount is the number of stages in the schedule.
const StageCount = len(schedule)

type tierSchedule struct {
	threshold  uint64
	percentage uint64
}

// defaultTiers thresholds are whole units of account.
var defaultTiers = [...]tierSchedule{
	{threshold: 500, percentage: 5},
	{threshold: 1001, percentage: 7},
	{threshold: 5001, percentage: 10},
	{threshold: 10001, percentage: 12},
	{threshold: 25001, percentage: 13},
	{threshold: 50001, percentage: 14},
	{threshold: 100001, percentage: 15},
}

var (
	assetScale  = decimals.PowerOfTen(AssetDecimals)
	unitScale   = decimals.PowerOfTen(UnitDecimals)
	nativeScale = decimals.PowerOfTen(nativeScaleDecimals)
	hundred     = uint256.NewInt(100)
)
