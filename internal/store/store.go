// Package store persists budgets.
package store

import (
	"context"

	"github.com/envelope-zero/finance-tracker/internal/models"
	"github.com/envelope-zero/finance-tracker/internal/types"
	"github.com/google/uuid"
)

// Budgets finds and persists budgets.
//
// The bool return values report if a budget exists. Storage errors
// are returned unchanged.
type Budgets interface {
	FindByMonth(ctx context.Context, month types.Month) (models.Budget, bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (models.Budget, bool, error)

	// Save creates the budget if it has no ID yet and updates it otherwise.
	Save(ctx context.Context, budget *models.Budget) error
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
}

// Store is a Budgets that can run a unit of work.
//
// All calls on the Budgets passed to fn are part of one transaction. When fn
// returns an error, none of its changes are persisted.
type Store interface {
	Budgets
	Transaction(ctx context.Context, fn func(Budgets) error) error
}
