package v1

import (
	"fmt"

	"github.com/envelope-zero/finance-tracker/internal/models"
	"github.com/envelope-zero/finance-tracker/internal/money"
	"github.com/envelope-zero/finance-tracker/internal/types"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// ExpenseEditable represents all user configurable parameters
type ExpenseEditable struct {
	Name     string             `json:"name" example:"Rent" default:""`                                 // Name of the expense
	Category string             `json:"category" example:"Housing" default:""`                          // Category of the expense
	Type     models.ExpenseType `json:"type" example:"FIXED" default:"VARIABLE" enums:"FIXED,VARIABLE"` // FIXED for recurring expenses, VARIABLE otherwise
	Amount   money.Money        `json:"amount"`                                                         // The amount spent
	Month    *types.Month       `json:"month" swaggertype:"string" example:"2024-01" default:"current"` // The month the expense counts towards. Defaults to the current month.
}

// month returns the month of the expense or the current month if none is set.
func (editable ExpenseEditable) month() types.Month {
	if editable.Month == nil {
		return types.Current()
	}
	return *editable.Month
}

func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		Name:     editable.Name,
		Category: editable.Category,
		Type:     editable.Type,
		Posting: models.Posting{
			Amount:   models.NewAmount(editable.Amount.Amount()),
			Currency: editable.Amount.Currency(),
			Month:    editable.month(),
		},
	}
}

// apply sets the fields of the expense that are set in the request body.
func (editable ExpenseEditable) apply(expense *models.Expense, fields []string) {
	if slices.Contains(fields, "Name") {
		expense.Name = editable.Name
	}

	if slices.Contains(fields, "Category") {
		expense.Category = editable.Category
	}

	if slices.Contains(fields, "Type") {
		expense.Type = editable.Type
	}

	if slices.Contains(fields, "Amount") {
		expense.Amount = models.NewAmount(editable.Amount.Amount())
		expense.Currency = editable.Amount.Currency()
	}

	if slices.Contains(fields, "Month") && editable.Month != nil {
		expense.Month = *editable.Month
	}
}

type ExpenseLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/expenses/0f2dbdd6-d438-4419-882a-2fc91d71772f"` // The expense itself
	Budget string `json:"budget" example:"https://example.com/api/v1/months?month=2024-01"`                       // The budget of the month of the expense
}

// Expense is money spent in a month.
type Expense struct {
	models.DefaultModel
	ExpenseEditable
	Links ExpenseLinks `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) (Expense, error) {
	url := c.GetString(string(models.DBContextURL))

	amount, err := model.Money()
	if err != nil {
		return Expense{}, err
	}

	return Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			Name:     model.Name,
			Category: model.Category,
			Type:     model.Type,
			Amount:   amount,
			Month:    &model.Month,
		},
		Links: ExpenseLinks{
			Self:   fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
			Budget: fmt.Sprintf("%s/v1/months?month=%s", url, model.Month),
		},
	}, nil
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                          // List of expenses
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ExpenseCreateResponse struct {
	Data  []ExpenseResponse `json:"data"`                                                          // List of the created expenses or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (i *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	i.Data = append(i.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                          // Data for the expense
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseQueryFilter struct {
	Month    types.Month        `form:"month"`                      // By month
	Name     string             `form:"name" filterField:"false"`   // By name, "*" matches any text
	Category string             `form:"category"`                   // By category
	Type     models.ExpenseType `form:"type"`                       // By type
	Offset   uint               `form:"offset" filterField:"false"` // The offset of the first expense returned. Defaults to 0.
	Limit    int                `form:"limit" filterField:"false"`  // Maximum number of expenses to return. Defaults to 50.
}
