package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral              = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound     = errors.New("there is no")
	ErrBudgetNotFound       = fmt.Errorf("%w budget", ErrResourceNotFound)
	ErrBudgetMonthNotUnique = errors.New("there already is a budget for this month")
	ErrExpenseTypeInvalid   = errors.New("the expense type must be one of FIXED or VARIABLE")
)
