// Package money implements exact, currency-tagged amounts at a fixed scale
// of two decimal places.
package money

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Scale is the number of decimal places every amount is kept at.
const Scale = 2

var (
	two  = decimal.NewFromInt(2)
	unit = decimal.New(1, -Scale)
)

// Money is an immutable amount in a supported currency.
//
// The zero value is not a valid Money, use one of the constructors.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// New returns a Money for the amount, rounded half-to-even to Scale.
func New(amount decimal.Decimal, c Currency) (Money, error) {
	if err := c.Validate(); err != nil {
		return Money{}, err
	}

	return Money{amount: amount.RoundBank(Scale), currency: c}, nil
}

// NewFromString parses a decimal string such as "123.455".
func NewFromString(amount string, c Currency) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("%w: '%s'", ErrInvalidAmount, amount)
	}

	return New(d, c)
}

// NewFromFloat uses the shortest decimal representation of f before rounding,
// so 123.455 is treated as exactly 123.455.
func NewFromFloat(f float64, c Currency) (Money, error) {
	return New(decimal.NewFromFloat(f), c)
}

// Zero returns 0.00 in the currency.
func Zero(c Currency) (Money, error) {
	return New(decimal.Zero, c)
}

// Amount returns the amount at Scale.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) Currency() Currency {
	return m.currency
}

// IsZero reports if the amount is 0.00.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative reports if the amount is below 0.00.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

func (m Money) Add(o Money) (Money, error) {
	if err := m.sameCurrency(o); err != nil {
		return Money{}, err
	}

	return Money{amount: m.amount.Add(o.amount).RoundBank(Scale), currency: m.currency}, nil
}

func (m Money) Subtract(o Money) (Money, error) {
	if err := m.sameCurrency(o); err != nil {
		return Money{}, err
	}

	return Money{amount: m.amount.Sub(o.amount).RoundBank(Scale), currency: m.currency}, nil
}

// Multiply returns m * factor, rounded half-to-even.
func (m Money) Multiply(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor).RoundBank(Scale), currency: m.currency}
}

// Divide returns m / divisor, rounded half-to-even on the exact quotient.
func (m Money) Divide(divisor decimal.Decimal) (Money, error) {
	if divisor.IsZero() {
		return Money{}, ErrDivisionByZero
	}

	// q is truncated towards zero, r carries the sign of the dividend
	q, r := m.amount.QuoRem(divisor, Scale)

	// Compare the remainder to half of one unit of the divisor
	cmp := r.Abs().Mul(two).Cmp(divisor.Abs().Mul(unit))
	if cmp > 0 || (cmp == 0 && !q.Shift(Scale).Mod(two).IsZero()) {
		if m.amount.Sign()*divisor.Sign() < 0 {
			q = q.Sub(unit)
		} else {
			q = q.Add(unit)
		}
	}

	return Money{amount: q.Round(Scale), currency: m.currency}, nil
}

// Negate returns -m.
func (m Money) Negate() Money {
	return Money{amount: m.amount.Neg(), currency: m.currency}
}

func (m Money) IsGreaterThan(o Money) (bool, error) {
	if err := m.sameCurrency(o); err != nil {
		return false, err
	}

	return m.amount.GreaterThan(o.amount), nil
}

func (m Money) IsLessThan(o Money) (bool, error) {
	if err := m.sameCurrency(o); err != nil {
		return false, err
	}

	return m.amount.LessThan(o.amount), nil
}

func (m Money) IsEqualTo(o Money) (bool, error) {
	if err := m.sameCurrency(o); err != nil {
		return false, err
	}

	return m.amount.Equal(o.amount), nil
}

// Equal reports if both the amount and the currency are the same.
// Unlike IsEqualTo, different currencies are not an error.
func (m Money) Equal(o Money) bool {
	return m.currency == o.currency && m.amount.Equal(o.amount)
}

// String returns the canonical form, e.g. "GBP 500.00". Two Money values
// are Equal exactly when their String values are identical.
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.currency, m.amount.StringFixed(Scale))
}

func (m Money) sameCurrency(o Money) error {
	if m.currency != o.currency {
		return fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.currency, o.currency)
	}

	return nil
}

type jsonMoney struct {
	Amount   string   `json:"amount" example:"500.00"`
	Currency Currency `json:"currency" example:"GBP"`
}

// MarshalJSON implements the json.Marshaler interface.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonMoney{
		Amount:   m.amount.StringFixed(Scale),
		Currency: m.currency,
	})
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (m *Money) UnmarshalJSON(data []byte) error {
	var raw jsonMoney
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := NewFromString(raw.Amount, raw.Currency)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}
