package postgres

import (
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/presale-ledger/modules/presale/internal/entity"
	"github.com/gaze-network/presale-ledger/modules/presale/repository/postgres/gen"
	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5/pgtype"
)

// mapAddress stores addresses as lowercase hex so lookups do not depend on checksum casing.
func mapAddress(addr common.Address) string {
	return common.Bytes2Hex(addr.Bytes())
}

func mapNumeric(v *uint256.Int) pgtype.Numeric {
	return pgtype.Numeric{Int: v.ToBig(), Exp: 0, Valid: true}
}

func mapUint256(n pgtype.Numeric) (uint256.Int, error) {
	var out uint256.Int
	if !n.Valid || n.Int == nil {
		return out, nil
	}
	v := new(big.Int).Set(n.Int)
	switch {
	case n.Exp > 0:
		v.Mul(v, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n.Exp)), nil))
	case n.Exp < 0:
		v.Quo(v, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-n.Exp)), nil))
	}
	if v.Sign() < 0 {
		return out, errors.Newf("negative amount %s", v.String())
	}
	if out.SetFromBig(v) {
		return out, errors.Newf("amount %s overflows 256 bits", v.String())
	}
	return out, nil
}

func mapEventRecords(events []gen.PresaleEvent) ([]entity.EventRecord, error) {
	records := make([]entity.EventRecord, 0, len(events))
	for _, item := range events {
		amount, err := mapUint256(item.Amount)
		if err != nil {
			return nil, errors.Wrapf(err, "event %d", item.ID)
		}
		records = append(records, entity.EventRecord{
			ID:         item.ID,
			Kind:       entity.EventKind(item.Kind),
			Wallet:     common.HexToAddress(item.Wallet),
			StageIndex: int(item.StageIndex),
			Amount:     amount,
			Payload:    item.Payload,
			CreatedAt:  item.CreatedAt.Time,
		})
	}
	return records, nil
}
