package store

import (
	"context"
	"errors"

	"github.com/envelope-zero/finance-tracker/internal/models"
	"github.com/envelope-zero/finance-tracker/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Gorm stores budgets in a gorm database.
type Gorm struct {
	db *gorm.DB
}

var _ Store = Gorm{}

// NewGorm returns a Gorm using db. db can be a transaction handle.
func NewGorm(db *gorm.DB) Gorm {
	return Gorm{db: db}
}

// DB returns the gorm database the store uses. Inside a transaction, this is
// the transaction handle.
func (g Gorm) DB() *gorm.DB {
	return g.db
}

func (g Gorm) FindByMonth(ctx context.Context, month types.Month) (models.Budget, bool, error) {
	query := g.db.WithContext(ctx)

	// Lock the row for the read-modify-write of the transaction. SQLite
	// does not support row locks, but serializes all writers anyway.
	if g.inTransaction() && g.db.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	var budgets []models.Budget
	err := query.Where("month = ?", month).Limit(1).Find(&budgets).Error
	if err != nil {
		return models.Budget{}, false, err
	}

	if len(budgets) == 0 {
		return models.Budget{}, false, nil
	}

	return budgets[0], true, nil
}

func (g Gorm) FindByID(ctx context.Context, id uuid.UUID) (models.Budget, bool, error) {
	var budget models.Budget
	err := g.db.WithContext(ctx).First(&budget, "id = ?", id).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return models.Budget{}, false, nil
	} else if err != nil {
		return models.Budget{}, false, err
	}

	return budget, true, nil
}

func (g Gorm) Save(ctx context.Context, budget *models.Budget) error {
	return g.db.WithContext(ctx).Save(budget).Error
}

func (g Gorm) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	result := g.db.WithContext(ctx).Delete(&models.Budget{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// Transaction runs fn in a database transaction. When called on a Gorm
// that is already in a transaction, a savepoint is used.
func (g Gorm) Transaction(ctx context.Context, fn func(Budgets) error) error {
	return models.TranslateError(g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(Gorm{db: tx})
	}))
}

func (g Gorm) inTransaction() bool {
	_, ok := g.db.Statement.ConnPool.(gorm.TxCommitter)
	return ok
}
