package money

import "errors"

var (
	ErrUnsupportedCurrency = errors.New("the currency is not supported")
	ErrCurrencyMismatch    = errors.New("amounts in different currencies cannot be combined")
	ErrDivisionByZero      = errors.New("division by zero")
	ErrInvalidAmount       = errors.New("the amount is not a valid decimal number")
)
