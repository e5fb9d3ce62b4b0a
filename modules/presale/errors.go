package presale

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/presale-ledger/common/errs"
)

// Rejections. Error() of each is the exact message callers may match on.
var (
	ErrInvalidStageIndex    = rejection("Invalid stage index")
	ErrSelfReferral         = rejection("Can't refer self")
	ErrStageNotActive       = rejection("Presale stage not active")
	ErrStageSoldOut         = rejection("Sold out already! Wait for the next stage")
	ErrBelowMinContribution = rejection("Buy more than or equal to the minimum amount")
	ErrUnsupportedCurrency  = rejection("Unsupported payment token")
	ErrCannotConcludeLast   = rejection("Cannot conclude the last stage")
	ErrInvalidEndTime       = rejection("Invalid end time")
	ErrAlreadyFinalized     = rejection("Presale already finalized")
	ErrInvalidTokenAddress  = rejection("Invalid token address")
	ErrLastStageActive      = rejection("Last stage still active")
	ErrClaimStartNotFuture  = rejection("Claim start must be in the future")
	ErrNotFinalized         = rejection("Presale not finalized")
	ErrClaimNotStarted      = rejection("Claim period not started")
	ErrNoTokensToClaim      = rejection("No tokens to claim")
	ErrInvalidTierIndex     = rejection("Invalid tier index")
	ErrInvalidBonusPercent  = rejection("Invalid bonus percentage")
	ErrInvalidTreasury      = rejection("Invalid treasury address")
	ErrNothingToWithdraw    = rejection("Nothing to withdraw")
	ErrCannotWithdrawAsset  = rejection("Cannot withdraw the sale asset")
	ErrInvalidPrice         = rejection("Invalid price")
	ErrStalePrice           = rejection("Stale price")
	ErrAmountOverflow       = rejection("Amount overflow")
)

var (
	ErrNotOwner    = errors.Mark(errors.New("Caller is not the owner"), errs.Unauthorized)
	ErrNotTreasury = errors.Mark(errors.New("Caller is not the treasury"), errs.Unauthorized)

	// ErrInsufficientCustody means custody holds less of the asset than bookkeeping promises.
	ErrInsufficientCustody = errors.Mark(errors.New("Insufficient tokens in contract"), errs.IntegrityViolation)

	ErrReentrant = errors.Mark(errors.New("ReentrancyGuard: reentrant call"), errs.Reentrancy)
)

func rejection(msg string) error {
	return errors.Mark(errors.New(msg), errs.Rejected)
}

// transferFailed tags a vault error so callers can tell it apart from rejections.
func transferFailed(err error, what string) error {
	return errors.Mark(errors.Wrap(err, what), errs.TransferFailed)
}
