package finance

import (
	"bookkeeper/internal/domain/money"

	"github.com/shopspring/decimal"
)

const percentScale int32 = 2

var hundred = decimal.NewFromInt(100)

// Percentage returns part / whole * 100 rounded to two places, or zero when whole is zero.
func Percentage(part, whole money.Amount) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}

	return part.Decimal().Mul(hundred).DivRound(whole.Decimal(), percentScale)
}

// GrowthRate is the percentage change from previous to current, measured against
// |previous| so that moving from a loss toward profit reads as growth. With no
// previous value it reports 100 when current is positive and 0 otherwise.
func GrowthRate(current, previous money.Amount) decimal.Decimal {
	if previous.IsZero() {
		if current.IsPositive() {
			return hundred
		}

		return decimal.Zero
	}

	return Percentage(current.Sub(previous), previous.Abs())
}

// ceilDiv returns ceil(a / b) for positive b.
func ceilDiv(a, b decimal.Decimal) int64 {
	if a.Sign() <= 0 {
		return 0
	}

	q, r := a.QuoRem(b, 0)
	if r.Sign() > 0 {
		q = q.Add(decimal.NewFromInt(1))
	}

	return q.IntPart()
}
