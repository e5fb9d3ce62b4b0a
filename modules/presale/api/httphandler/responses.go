package httphandler

import (
	"encoding/json"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/presale-ledger/modules/presale/internal/entity"
	"github.com/gaze-network/presale-ledger/pkg/decimals"
	"github.com/holiman/uint256"
)

// Amounts are rendered twice: the raw fixed-point integer and a human decimal.
type amount struct {
	Raw     string `json:"raw"`
	Decimal string `json:"decimal"`
}

func newAmount(v *uint256.Int, scale uint8) amount {
	return amount{
		Raw:     v.Dec(),
		Decimal: decimals.ToDecimal(v, scale).String(),
	}
}

type infoResponse struct {
	Owner            string     `json:"owner"`
	Treasury         string     `json:"treasury"`
	Finalized        bool       `json:"finalized"`
	ClaimStart       *time.Time `json:"claimStart,omitempty"`
	Asset            string     `json:"asset,omitempty"`
	CurrentStage     *int       `json:"currentStage"`
	TotalAssetSold   amount     `json:"totalAssetSold"`
	TotalValueRaised amount     `json:"totalValueRaised"`
	ServerTime       time.Time  `json:"serverTime"`
}

type stageResponse struct {
	Index            int        `json:"index"`
	Status           string     `json:"status"`
	StartTime        *time.Time `json:"startTime"`
	EndTime          *time.Time `json:"endTime"`
	Price            amount     `json:"price"`
	NextStagePrice   amount     `json:"nextStagePrice"`
	MinContribution  amount     `json:"minContribution"`
	TotalAssetSold   amount     `json:"totalAssetSold"`
	TotalValueRaised amount     `json:"totalValueRaised"`
	SoldOut          bool       `json:"soldOut"`
}

type tierResponse struct {
	Index           int    `json:"index"`
	AmountThreshold string `json:"amountThreshold"`
	BonusPercentage uint64 `json:"bonusPercentage"`
}

type accountResponse struct {
	Address                 string `json:"address"`
	AssetBalance            amount `json:"assetBalance"`
	TotalValueInvested      amount `json:"totalValueInvested"`
	ReferralRewardsEarned   amount `json:"referralRewardsEarned"`
	ReferralCount           uint64 `json:"referralCount"`
	CumulativeValueReferred amount `json:"cumulativeValueReferred"`
}

type eventResponse struct {
	ID         int64           `json:"id"`
	Kind       string          `json:"kind"`
	Wallet     string          `json:"wallet"`
	StageIndex int             `json:"stageIndex"`
	Amount     string          `json:"amount"`
	Payload    json.RawMessage `json:"payload"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type quoteResponse struct {
	Stage       int    `json:"stage"`
	Value       amount `json:"value"`
	AssetAmount amount `json:"assetAmount"`
}

type purchaseResponse struct {
	Buyer         string `json:"buyer"`
	StageIndex    int    `json:"stageIndex"`
	Currency      string `json:"currency"`
	PaidAmount    amount `json:"paidAmount"`
	ValueAmount   amount `json:"valueAmount"`
	AssetAmount   amount `json:"assetAmount"`
	Referrer      string `json:"referrer,omitempty"`
	ReferralBonus amount `json:"referralBonus"`
}

type transferResponse struct {
	Amount amount `json:"amount"`
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func mapStage(stage entity.Stage, now time.Time, unitDecimals, assetDecimals uint8) stageResponse {
	return stageResponse{
		Index:            stage.Index,
		Status:           stage.Status(now).String(),
		StartTime:        optionalTime(stage.StartTime),
		EndTime:          optionalTime(stage.EndTime),
		Price:            newAmount(&stage.Price, unitDecimals),
		NextStagePrice:   newAmount(&stage.NextStagePrice, unitDecimals),
		MinContribution:  newAmount(&stage.MinContribution, unitDecimals),
		TotalAssetSold:   newAmount(&stage.TotalAssetSold, assetDecimals),
		TotalValueRaised: newAmount(&stage.TotalValueRaised, unitDecimals),
		SoldOut:          stage.SoldOut,
	}
}

// Paid amounts and referral bonuses are in the purchase currency. The zero address is native currency.
func mapPurchase(p entity.Purchase) purchaseResponse {
	scale := uint8(unitDecimals)
	if p.Currency == (common.Address{}) {
		scale = nativeDecimals
	}
	res := purchaseResponse{
		Buyer:         p.Buyer.Hex(),
		StageIndex:    p.StageIndex,
		Currency:      p.Currency.Hex(),
		PaidAmount:    newAmount(&p.PaidAmount, scale),
		ValueAmount:   newAmount(&p.ValueAmount, unitDecimals),
		AssetAmount:   newAmount(&p.AssetAmount, assetDecimals),
		ReferralBonus: newAmount(&p.ReferralBonus, scale),
	}
	if p.Referrer != (common.Address{}) {
		res.Referrer = p.Referrer.Hex()
	}
	return res
}
