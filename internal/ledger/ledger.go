// Package ledger records incomes and expenses and keeps the budgets of their
// months up to date.
//
// Every change to a record and the matching budget update run in one
// database transaction.
package ledger

import (
	"context"
	"fmt"

	"github.com/envelope-zero/finance-tracker/internal/budgetsync"
	"github.com/envelope-zero/finance-tracker/internal/models"
	"github.com/envelope-zero/finance-tracker/internal/store"
	"github.com/envelope-zero/finance-tracker/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ledger is the entry point for changes to incomes, expenses and budgets.
type Ledger struct {
	db *gorm.DB
}

// New returns a Ledger working on db.
func New(db *gorm.DB) Ledger {
	return Ledger{db: db}
}

// CreateIncome saves the income and adds it to the budget of its month.
func (l Ledger) CreateIncome(ctx context.Context, income models.Income) (models.Income, error) {
	return create(ctx, l.db, income, budgetsync.NewIncomeSynchronizer)
}

// UpdateIncome applies change to the income with the ID and moves its
// effect on the budgets accordingly.
func (l Ledger) UpdateIncome(ctx context.Context, id uuid.UUID, change func(*models.Income)) (models.Income, error) {
	return update(ctx, l.db, id, func(income *models.Income) {
		change(income)
		income.ID = id
	}, budgetsync.NewIncomeSynchronizer)
}

// DeleteIncome deletes the income and subtracts it from its budget.
func (l Ledger) DeleteIncome(ctx context.Context, id uuid.UUID) error {
	return remove(ctx, l.db, id, budgetsync.NewIncomeSynchronizer)
}

// CreateExpense saves the expense and adds it to the budget of its month.
func (l Ledger) CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	return create(ctx, l.db, expense, budgetsync.NewExpenseSynchronizer)
}

// UpdateExpense applies change to the expense with the ID and moves its
// effect on the budgets accordingly.
func (l Ledger) UpdateExpense(ctx context.Context, id uuid.UUID, change func(*models.Expense)) (models.Expense, error) {
	return update(ctx, l.db, id, func(expense *models.Expense) {
		change(expense)
		expense.ID = id
	}, budgetsync.NewExpenseSynchronizer)
}

// DeleteExpense deletes the expense and subtracts it from its budget.
func (l Ledger) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	return remove(ctx, l.db, id, budgetsync.NewExpenseSynchronizer)
}

// BudgetByMonth returns the budget for a month in YYYY-MM format. An empty
// month means the current month.
func (l Ledger) BudgetByMonth(ctx context.Context, month string) (models.Budget, error) {
	m, err := types.ParseMonthOrCurrent(month)
	if err != nil {
		return models.Budget{}, err
	}

	budget, ok, err := store.NewGorm(l.db).FindByMonth(ctx, m)
	if err != nil {
		return models.Budget{}, err
	}

	if !ok {
		return models.Budget{}, fmt.Errorf("%w for %s", models.ErrBudgetNotFound, m)
	}

	return budget, nil
}

// BudgetByID returns the budget with the ID.
func (l Ledger) BudgetByID(ctx context.Context, id uuid.UUID) (models.Budget, error) {
	budget, ok, err := store.NewGorm(l.db).FindByID(ctx, id)
	if err != nil {
		return models.Budget{}, err
	}

	if !ok {
		return models.Budget{}, fmt.Errorf("%w with ID %s", models.ErrBudgetNotFound, id)
	}

	return budget, nil
}

// DeleteBudget deletes the budget with the ID. Incomes and expenses of the
// month are kept.
func (l Ledger) DeleteBudget(ctx context.Context, id uuid.UUID) error {
	deleted, err := store.NewGorm(l.db).DeleteByID(ctx, id)
	if err != nil {
		return err
	}

	if !deleted {
		return fmt.Errorf("%w with ID %s", models.ErrBudgetNotFound, id)
	}

	return nil
}

type record interface {
	models.Income | models.Expense
	models.Entry
}

func create[R record](ctx context.Context, db *gorm.DB, r R, sync func(store.Store) budgetsync.Synchronizer[R]) (R, error) {
	err := transaction(ctx, db, func(tx *gorm.DB) error {
		if err := tx.Create(&r).Error; err != nil {
			return err
		}

		_, err := sync(store.NewGorm(tx)).Apply(ctx, r)
		return err
	})
	if err != nil {
		var zero R
		return zero, err
	}

	return r, nil
}

func update[R record](ctx context.Context, db *gorm.DB, id uuid.UUID, change func(*R), sync func(store.Store) budgetsync.Synchronizer[R]) (R, error) {
	var updated R
	err := transaction(ctx, db, func(tx *gorm.DB) error {
		var original R
		if err := tx.First(&original, "id = ?", id).Error; err != nil {
			return err
		}

		updated = original
		change(&updated)

		if err := tx.Save(&updated).Error; err != nil {
			return err
		}

		return sync(store.NewGorm(tx)).Reapply(ctx, original, updated)
	})
	if err != nil {
		var zero R
		return zero, err
	}

	return updated, nil
}

func remove[R record](ctx context.Context, db *gorm.DB, id uuid.UUID, sync func(store.Store) budgetsync.Synchronizer[R]) error {
	return transaction(ctx, db, func(tx *gorm.DB) error {
		var r R
		if err := tx.First(&r, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Delete(&r).Error; err != nil {
			return err
		}

		_, err := sync(store.NewGorm(tx)).Retract(ctx, r)
		return err
	})
}

// transaction runs fn in a database transaction. Errors from beginning or
// committing the transaction do not pass the gorm callbacks and are
// translated here.
func transaction(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return models.TranslateError(db.WithContext(ctx).Transaction(fn))
}
