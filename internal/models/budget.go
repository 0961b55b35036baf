package models

import (
	"fmt"

	"github.com/envelope-zero/finance-tracker/internal/money"
	"github.com/envelope-zero/finance-tracker/internal/types"
	"github.com/shopspring/decimal"
)

// Budget is the aggregate of all incomes and expenses of one month.
//
// There is exactly one Budget per month. Savings is always TotalIncome
// minus TotalExpense.
type Budget struct {
	DefaultModel
	Month        types.Month    `json:"month" gorm:"uniqueIndex;not null" example:"2024-01"` // The month the budget aggregates
	Currency     money.Currency `json:"currency" gorm:"not null" example:"GBP"`              // Currency of all totals
	TotalIncome  Amount         `json:"totalIncome" gorm:"not null" example:"1000.00"`        // Sum of all incomes of the month
	TotalExpense Amount         `json:"totalExpense" gorm:"not null" example:"750.00"`        // Sum of all expenses of the month
	Savings      Amount         `json:"savings" gorm:"not null" example:"250.00"`             // TotalIncome - TotalExpense
}

func (Budget) Self() string {
	return "Budget"
}

// NewBudget returns a Budget for the month with all totals at zero.
func NewBudget(month types.Month, currency money.Currency) (Budget, error) {
	if err := currency.Validate(); err != nil {
		return Budget{}, err
	}

	zero := NewAmount(decimal.New(0, -money.Scale))
	return Budget{
		Month:        month,
		Currency:     currency,
		TotalIncome:  zero,
		TotalExpense: zero,
		Savings:      zero,
	}, nil
}

// Income returns the total income.
func (b Budget) Income() (money.Money, error) {
	return money.New(b.TotalIncome.Decimal, b.Currency)
}

// Expense returns the total expense.
func (b Budget) Expense() (money.Money, error) {
	return money.New(b.TotalExpense.Decimal, b.Currency)
}

// Saved returns the savings.
func (b Budget) Saved() (money.Money, error) {
	return money.New(b.Savings.Decimal, b.Currency)
}

func (b *Budget) AddIncome(amount money.Money) error {
	return b.change(&b.TotalIncome, amount, money.Money.Add)
}

func (b *Budget) SubtractIncome(amount money.Money) error {
	return b.change(&b.TotalIncome, amount, money.Money.Subtract)
}

func (b *Budget) AddExpense(amount money.Money) error {
	return b.change(&b.TotalExpense, amount, money.Money.Add)
}

func (b *Budget) SubtractExpense(amount money.Money) error {
	return b.change(&b.TotalExpense, amount, money.Money.Subtract)
}

// change applies op to one of the totals and recomputes the savings.
// The Budget is left untouched when an error occurs.
func (b *Budget) change(total *Amount, amount money.Money, op func(money.Money, money.Money) (money.Money, error)) error {
	if amount.Currency() != b.Currency {
		return fmt.Errorf("%w: budget for %s is in %s, amount is in %s", money.ErrCurrencyMismatch, b.Month, b.Currency, amount.Currency())
	}

	current, err := money.New(total.Decimal, b.Currency)
	if err != nil {
		return err
	}

	updated, err := op(current, amount)
	if err != nil {
		return err
	}

	previous := *total
	*total = NewAmount(updated.Amount())

	// Savings are derived from the stored totals, not adjusted by the delta
	savings, err := b.savings()
	if err != nil {
		*total = previous
		return err
	}

	b.Savings = NewAmount(savings.Amount())
	return nil
}

func (b Budget) savings() (money.Money, error) {
	income, err := b.Income()
	if err != nil {
		return money.Money{}, err
	}

	expense, err := b.Expense()
	if err != nil {
		return money.Money{}, err
	}

	return income.Subtract(expense)
}
