package models

import (
	"github.com/envelope-zero/finance-tracker/internal/money"
	"github.com/envelope-zero/finance-tracker/internal/types"
)

// Entry is a record that counts towards the budget of its month.
type Entry interface {
	Money() (money.Money, error)
	MonthKey() types.Month
}

// Posting holds the fields shared by incomes and expenses.
type Posting struct {
	Amount   Amount         `json:"amount" gorm:"not null" example:"1000.00"`
	Currency money.Currency `json:"currency" gorm:"not null" example:"GBP" default:"GBP"`
	Month    types.Month    `json:"month" gorm:"index;not null" example:"2024-01"`
}

func (p Posting) Money() (money.Money, error) {
	return money.New(p.Amount.Decimal, p.Currency)
}

func (p Posting) MonthKey() types.Month {
	return p.Month
}

// normalize defaults the currency, validates it and rounds the amount.
// The month is kept as it is, the zero Month is the valid key 0001-01.
func (p *Posting) normalize() error {
	if p.Currency == "" {
		p.Currency = money.GBP
	}

	m, err := p.Money()
	if err != nil {
		return err
	}

	p.Amount = NewAmount(m.Amount())
	return nil
}
