package budgetsync_test

import (
	"context"
	"errors"

	"github.com/envelope-zero/finance-tracker/internal/models"
	"github.com/envelope-zero/finance-tracker/internal/store"
	"github.com/envelope-zero/finance-tracker/internal/types"
	"github.com/google/uuid"
)

var errFault = errors.New("injected storage fault")

// faultyStore wraps a store and fails the nth call to Save.
type faultyStore struct {
	store.Store
	failAt int
	saves  *int
}

func newFaultyStore(s store.Store, failAt int) faultyStore {
	return faultyStore{Store: s, failAt: failAt, saves: new(int)}
}

func (f faultyStore) Save(ctx context.Context, b *models.Budget) error {
	*f.saves++
	if *f.saves == f.failAt {
		return errFault
	}
	return f.Store.Save(ctx, b)
}

func (f faultyStore) Transaction(ctx context.Context, fn func(store.Budgets) error) error {
	return f.Store.Transaction(ctx, func(budgets store.Budgets) error {
		return fn(faultyBudgets{Budgets: budgets, parent: f})
	})
}

type faultyBudgets struct {
	store.Budgets
	parent faultyStore
}

func (f faultyBudgets) Save(ctx context.Context, b *models.Budget) error {
	*f.parent.saves++
	if *f.parent.saves == f.parent.failAt {
		return errFault
	}
	return f.Budgets.Save(ctx, b)
}

// failingStore fails every lookup with err.
type failingStore struct {
	err error
}

func (f failingStore) FindByMonth(context.Context, types.Month) (models.Budget, bool, error) {
	return models.Budget{}, false, f.err
}

func (f failingStore) FindByID(context.Context, uuid.UUID) (models.Budget, bool, error) {
	return models.Budget{}, false, f.err
}

func (f failingStore) Save(context.Context, *models.Budget) error {
	return f.err
}

func (f failingStore) DeleteByID(context.Context, uuid.UUID) (bool, error) {
	return false, f.err
}

func (f failingStore) Transaction(_ context.Context, fn func(store.Budgets) error) error {
	return fn(f)
}
