package money

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
)

// Currency is an ISO 4217 currency code supported by the tracker.
//
// swagger:enum Currency
type Currency string

const (
	GBP Currency = "GBP"
)

// supported is the allow-list of currencies. Adding a currency here is the
// only way to make it usable for Money values.
var supported = map[Currency]currency.Unit{
	GBP: currency.GBP,
}

// ParseCurrency returns the Currency for an ISO 4217 code. The code is
// matched case-insensitively.
func ParseCurrency(code string) (Currency, error) {
	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return "", fmt.Errorf("%w: '%s'", ErrUnsupportedCurrency, code)
	}

	c := Currency(unit.String())
	if err := c.Validate(); err != nil {
		return "", err
	}

	return c, nil
}

// Validate checks that the currency is a member of the supported set.
func (c Currency) Validate() error {
	if _, ok := supported[c]; !ok {
		return fmt.Errorf("%w: '%s'", ErrUnsupportedCurrency, c)
	}

	return nil
}

// Unit returns the x/text currency unit for c.
func (c Currency) Unit() (currency.Unit, error) {
	unit, ok := supported[c]
	if !ok {
		return currency.Unit{}, fmt.Errorf("%w: '%s'", ErrUnsupportedCurrency, c)
	}

	return unit, nil
}

// Supported returns all supported currencies.
func Supported() []Currency {
	currencies := make([]Currency, 0, len(supported))
	for c := range supported {
		currencies = append(currencies, c)
	}

	return currencies
}

func (c Currency) String() string {
	return string(c)
}
