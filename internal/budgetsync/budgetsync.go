// Package budgetsync keeps the budget of a month consistent with the incomes
// and expenses recorded for it.
//
// Apply is the only operation that creates budgets. Reapply and Retract
// expect the budget of the original month to exist and fail with
// models.ErrBudgetNotFound otherwise. No operation ever deletes a budget.
package budgetsync

import (
	"context"
	"fmt"

	"github.com/envelope-zero/finance-tracker/internal/models"
	"github.com/envelope-zero/finance-tracker/internal/money"
	"github.com/envelope-zero/finance-tracker/internal/store"
)

// mutation changes one of the totals of a budget.
type mutation func(*models.Budget, money.Money) error

// Synchronizer applies entries of type E to their budgets.
type Synchronizer[E models.Entry] struct {
	store    store.Store
	add      mutation
	subtract mutation
}

type (
	IncomeSynchronizer  = Synchronizer[models.Income]
	ExpenseSynchronizer = Synchronizer[models.Expense]
)

// NewIncomeSynchronizer returns a Synchronizer that updates the total income.
func NewIncomeSynchronizer(s store.Store) IncomeSynchronizer {
	return IncomeSynchronizer{
		store:    s,
		add:      (*models.Budget).AddIncome,
		subtract: (*models.Budget).SubtractIncome,
	}
}

// NewExpenseSynchronizer returns a Synchronizer that updates the total expense.
func NewExpenseSynchronizer(s store.Store) ExpenseSynchronizer {
	return ExpenseSynchronizer{
		store:    s,
		add:      (*models.Budget).AddExpense,
		subtract: (*models.Budget).SubtractExpense,
	}
}

// Apply adds the entry to the budget of its month. If there is no budget
// for the month yet, one is created in the currency of the entry.
//
// Applying the same entry twice counts it twice.
func (s Synchronizer[E]) Apply(ctx context.Context, entry E) (models.Budget, error) {
	var budget models.Budget
	err := s.store.Transaction(ctx, func(budgets store.Budgets) (err error) {
		budget, err = s.change(ctx, budgets, entry, lookupOrCreate, s.add)
		return err
	})
	if err != nil {
		return models.Budget{}, err
	}

	return budget, nil
}

// Reapply moves the effect of an edited entry from the original to the
// updated state. Both steps are one unit of work: if any of them fails,
// no budget is changed.
//
// When the months of original and updated are the same, both steps operate
// on the same budget.
func (s Synchronizer[E]) Reapply(ctx context.Context, original, updated E) error {
	return s.store.Transaction(ctx, func(budgets store.Budgets) error {
		if _, err := s.change(ctx, budgets, original, lookupOrFail, s.subtract); err != nil {
			return err
		}

		_, err := s.change(ctx, budgets, updated, lookupOrCreate, s.add)
		return err
	})
}

// Retract removes the effect of a deleted entry from the budget of its month.
// The budget is kept even when all totals are zero afterwards.
func (s Synchronizer[E]) Retract(ctx context.Context, entry E) (models.Budget, error) {
	var budget models.Budget
	err := s.store.Transaction(ctx, func(budgets store.Budgets) (err error) {
		budget, err = s.change(ctx, budgets, entry, lookupOrFail, s.subtract)
		return err
	})
	if err != nil {
		return models.Budget{}, err
	}

	return budget, nil
}

// change resolves the budget of the entry's month with lookup, applies
// the mutation and saves the budget.
func (s Synchronizer[E]) change(ctx context.Context, budgets store.Budgets, entry E, lookup lookupFunc, m mutation) (models.Budget, error) {
	amount, err := entry.Money()
	if err != nil {
		return models.Budget{}, err
	}

	budget, err := lookup(ctx, budgets, entry, amount.Currency())
	if err != nil {
		return models.Budget{}, err
	}

	if err := m(&budget, amount); err != nil {
		return models.Budget{}, err
	}

	if err := budgets.Save(ctx, &budget); err != nil {
		return models.Budget{}, err
	}

	return budget, nil
}

type lookupFunc func(context.Context, store.Budgets, models.Entry, money.Currency) (models.Budget, error)

func lookupOrCreate(ctx context.Context, budgets store.Budgets, entry models.Entry, currency money.Currency) (models.Budget, error) {
	budget, ok, err := budgets.FindByMonth(ctx, entry.MonthKey())
	if err != nil {
		return models.Budget{}, err
	}

	if ok {
		return budget, nil
	}

	return models.NewBudget(entry.MonthKey(), currency)
}

func lookupOrFail(ctx context.Context, budgets store.Budgets, entry models.Entry, _ money.Currency) (models.Budget, error) {
	budget, ok, err := budgets.FindByMonth(ctx, entry.MonthKey())
	if err != nil {
		return models.Budget{}, err
	}

	if !ok {
		return models.Budget{}, fmt.Errorf("%w for %s", models.ErrBudgetNotFound, entry.MonthKey())
	}

	return budget, nil
}
