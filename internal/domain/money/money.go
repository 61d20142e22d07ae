// Package money provides a fixed-scale decimal amount used for every monetary
// value in the ledger.
package money

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"strings"

	"bookkeeper/internal/errors"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits an Amount carries.
const Scale int32 = 2

// ErrInvalidAmount is returned when a textual amount cannot be parsed.
var ErrInvalidAmount = errors.New("invalid monetary amount")

// ErrTooPrecise is returned when an amount carries more than Scale fractional digits.
var ErrTooPrecise = errors.New("monetary amount has more than 2 fractional digits")

// ErrOutOfRange is returned when an amount does not fit the numeric(15,2) store column.
var ErrOutOfRange = errors.New("monetary amount is out of range")

// MaxAmount is the largest magnitude a stored amount can hold.
var MaxAmount = Amount{d: decimal.RequireFromString("9999999999999.99")}

// Amount is an exact decimal monetary value with two fractional digits.
// The zero value is 0.00.
type Amount struct {
	d decimal.Decimal
}

// Zero is 0.00.
var Zero = Amount{}

// FromInt returns a whole-unit amount.
func FromInt(units int64) Amount {
	return Amount{d: decimal.NewFromInt(units)}
}

// FromDecimal converts a decimal, rounding half-up to Scale places.
func FromDecimal(d decimal.Decimal) Amount {
	return Amount{d: d.Round(Scale)}
}

// Parse reads a decimal string such as "125000" or "12.50" without loss.
// Values beyond MaxAmount are rejected with ErrOutOfRange.
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, errors.WithStack(ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, errors.Wrapf(ErrInvalidAmount, "failed to parse %q", s)
	}

	if !d.Equal(d.Round(Scale)) {
		return Zero, errors.Wrapf(ErrTooPrecise, "failed to parse %q", s)
	}

	if d.Abs().GreaterThan(MaxAmount.d) {
		return Zero, errors.Wrapf(ErrOutOfRange, "failed to parse %q", s)
	}

	return Amount{d: d}, nil
}

// MustParse is Parse for constants and tests; it panics on malformed input.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return a
}

// Decimal exposes the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return a.d
}

// Add returns a + b.
func (a Amount) Add(b Amount) Amount {
	return Amount{d: a.d.Add(b.d)}
}

// Sub returns a - b.
func (a Amount) Sub(b Amount) Amount {
	return Amount{d: a.d.Sub(b.d)}
}

// MulInt returns a * n.
func (a Amount) MulInt(n int64) Amount {
	return Amount{d: a.d.Mul(decimal.NewFromInt(n))}
}

// DivInt divides by n and rounds half-up to Scale places. n must not be zero.
func (a Amount) DivInt(n int64) Amount {
	return Amount{d: a.d.DivRound(decimal.NewFromInt(n), Scale)}
}

// Neg returns -a.
func (a Amount) Neg() Amount {
	return Amount{d: a.d.Neg()}
}

// Abs returns |a|.
func (a Amount) Abs() Amount {
	return Amount{d: a.d.Abs()}
}

// Cmp compares a and b and returns -1, 0 or +1.
func (a Amount) Cmp(b Amount) int {
	return a.d.Cmp(b.d)
}

// Equal reports whether a and b are numerically equal.
func (a Amount) Equal(b Amount) bool {
	return a.d.Equal(b.d)
}

// IsZero reports whether a is 0.
func (a Amount) IsZero() bool {
	return a.d.IsZero()
}

// IsNegative reports whether a < 0.
func (a Amount) IsNegative() bool {
	return a.d.IsNegative()
}

// IsPositive reports whether a > 0.
func (a Amount) IsPositive() bool {
	return a.d.IsPositive()
}

// InRange reports whether |a| fits the store column, at most MaxAmount.
func (a Amount) InRange() bool {
	return a.d.Abs().LessThanOrEqual(MaxAmount.d)
}

// String renders the amount with exactly two fractional digits.
func (a Amount) String() string {
	return a.d.StringFixed(Scale)
}

// Float64 is for presentation layers that cannot carry decimals, such as spreadsheet cells.
func (a Amount) Float64() float64 {
	f, _ := a.d.Float64()

	return f
}

// MarshalJSON encodes the amount as a decimal string.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts either a decimal string or a bare JSON number.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = Zero

		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return errors.Wrap(err, "failed to decode amount")
		}
	}

	parsed, err := Parse(raw)
	if err != nil {
		return err
	}

	*a = parsed

	return nil
}

// Value implements driver.Valuer so amounts are stored as NUMERIC text.
// Amounts the column cannot hold fail here instead of being stored altered.
func (a Amount) Value() (driver.Value, error) {
	if !a.InRange() {
		return nil, errors.Wrapf(ErrOutOfRange, "cannot store %s", a.String())
	}

	return a.String(), nil
}

// Scan implements sql.Scanner.
func (a *Amount) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*a = Zero
	case int64:
		*a = FromInt(v)
	case float64:
		*a = FromDecimal(decimal.NewFromFloat(v))
	case []byte:
		return a.scanString(string(v))
	case string:
		return a.scanString(v)
	default:
		return errors.Errorf("cannot scan %T into money.Amount", src)
	}

	return nil
}

func (a *Amount) scanString(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return errors.Wrap(err, "failed to scan amount")
	}

	*a = FromDecimal(d)

	return nil
}

// Sum adds amounts together.
func Sum(amounts ...Amount) Amount {
	total := Zero
	for _, a := range amounts {
		total = total.Add(a)
	}

	return total
}
