package v1

import (
	"fmt"

	"github.com/envelope-zero/finance-tracker/internal/models"
	"github.com/envelope-zero/finance-tracker/internal/money"
	"github.com/envelope-zero/finance-tracker/internal/types"
	"github.com/gin-gonic/gin"
)

type BudgetLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // The budget itself
	Month    string `json:"month" example:"https://example.com/api/v1/months?month=2024-01"`                       // The budget by its month
	Incomes  string `json:"incomes" example:"https://example.com/api/v1/incomes?month=2024-01"`                    // Incomes of the month
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses?month=2024-01"`                  // Expenses of the month
}

// Budget is the aggregate of all incomes and expenses of a month.
type Budget struct {
	models.DefaultModel
	Month        types.Month    `json:"month" swaggertype:"string" example:"2024-01"` // The month of the budget
	Currency     money.Currency `json:"currency" example:"GBP"`                       // The currency of all totals
	TotalIncome  money.Money    `json:"totalIncome"`                                  // Sum of all incomes
	TotalExpense money.Money    `json:"totalExpense"`                                 // Sum of all expenses
	Savings      money.Money    `json:"savings"`                                      // Total income minus total expense
	Links        BudgetLinks    `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) (Budget, error) {
	url := c.GetString(string(models.DBContextURL))

	income, err := model.Income()
	if err != nil {
		return Budget{}, err
	}

	expense, err := model.Expense()
	if err != nil {
		return Budget{}, err
	}

	savings, err := model.Saved()
	if err != nil {
		return Budget{}, err
	}

	return Budget{
		DefaultModel: model.DefaultModel,
		Month:        model.Month,
		Currency:     model.Currency,
		TotalIncome:  income,
		TotalExpense: expense,
		Savings:      savings,
		Links: BudgetLinks{
			Self:     fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Month:    fmt.Sprintf("%s/v1/months?month=%s", url, model.Month),
			Incomes:  fmt.Sprintf("%s/v1/incomes?month=%s", url, model.Month),
			Expenses: fmt.Sprintf("%s/v1/expenses?month=%s", url, model.Month),
		},
	}, nil
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // Data for the budget
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetQueryFilter struct {
	Currency string `form:"currency"`                   // By currency
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first budget returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of budgets to return. Defaults to 50.
}
