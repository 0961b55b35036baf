package models

import (
	"database/sql/driver"

	"github.com/envelope-zero/finance-tracker/internal/money"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Amount is a decimal amount as it is persisted.
//
// sqlite converts text in NUMERIC columns to REAL, which keeps only 15
// significant digits. Amounts are therefore stored as TEXT there and as
// DECIMAL(20,2) on all other databases. The stored value is always
// formatted with two decimal places.
type Amount struct {
	decimal.Decimal
}

// NewAmount returns the Amount for d.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// GormDBDataType returns the column type for the database in use.
func (Amount) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "sqlite" {
		return "TEXT"
	}

	return "DECIMAL(20,2)"
}

// Value returns the amount with two decimal places.
func (a Amount) Value() (driver.Value, error) {
	return a.StringFixed(money.Scale), nil
}

// Scan reads the amount from the database.
func (a *Amount) Scan(value interface{}) error {
	return a.Decimal.Scan(value)
}
