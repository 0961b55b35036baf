package models

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type ExpenseType string

const (
	ExpenseTypeFixed    ExpenseType = "FIXED"
	ExpenseTypeVariable ExpenseType = "VARIABLE"
)

func (t ExpenseType) Validate() error {
	switch t {
	case ExpenseTypeFixed, ExpenseTypeVariable:
		return nil
	default:
		return fmt.Errorf("%w, got '%s'", ErrExpenseTypeInvalid, t)
	}
}

// Expense is money spent in a month.
type Expense struct {
	DefaultModel
	Name     string      `json:"name" example:"Rent" default:""`
	Category string      `json:"category" example:"Housing" default:""`
	Type     ExpenseType `json:"type" example:"FIXED" default:"VARIABLE"`
	Posting
}

func (Expense) Self() string {
	return "Expense"
}

// BeforeSave
//   - trims whitespace from string fields
//   - defaults the type to VARIABLE
//   - normalizes the posting
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Name = strings.TrimSpace(e.Name)
	e.Category = strings.TrimSpace(e.Category)

	e.Type = ExpenseType(strings.ToUpper(strings.TrimSpace(string(e.Type))))
	if e.Type == "" {
		e.Type = ExpenseTypeVariable
	}

	if err := e.Type.Validate(); err != nil {
		return err
	}

	return e.Posting.normalize()
}
