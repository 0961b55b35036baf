package v1

import (
	"fmt"

	"github.com/envelope-zero/finance-tracker/internal/models"
	"github.com/envelope-zero/finance-tracker/internal/money"
	"github.com/envelope-zero/finance-tracker/internal/types"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// IncomeEditable represents all user configurable parameters
type IncomeEditable struct {
	Name   string       `json:"name" example:"Salary" default:""`                             // Name of the income
	Source string       `json:"source" example:"Employer Ltd." default:""`                    // Where the money comes from
	Amount money.Money  `json:"amount"`                                                       // The amount received
	Month  *types.Month `json:"month" swaggertype:"string" example:"2024-01" default:"current"` // The month the income counts towards. Defaults to the current month.
}

// month returns the month of the income or the current month if none is set.
func (editable IncomeEditable) month() types.Month {
	if editable.Month == nil {
		return types.Current()
	}
	return *editable.Month
}

func (editable IncomeEditable) model() models.Income {
	return models.Income{
		Name:   editable.Name,
		Source: editable.Source,
		Posting: models.Posting{
			Amount:   models.NewAmount(editable.Amount.Amount()),
			Currency: editable.Amount.Currency(),
			Month:    editable.month(),
		},
	}
}

// apply sets the fields of the income that are set in the request body.
func (editable IncomeEditable) apply(income *models.Income, fields []string) {
	if slices.Contains(fields, "Name") {
		income.Name = editable.Name
	}

	if slices.Contains(fields, "Source") {
		income.Source = editable.Source
	}

	if slices.Contains(fields, "Amount") {
		income.Amount = models.NewAmount(editable.Amount.Amount())
		income.Currency = editable.Amount.Currency()
	}

	if slices.Contains(fields, "Month") && editable.Month != nil {
		income.Month = *editable.Month
	}
}

type IncomeLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/incomes/3b1ea324-d438-4419-882a-2fc91d71772f"` // The income itself
	Budget string `json:"budget" example:"https://example.com/api/v1/months?month=2024-01"`                       // The budget of the month of the income
}

// Income is money received in a month.
type Income struct {
	models.DefaultModel
	IncomeEditable
	Links IncomeLinks `json:"links"`
}

func newIncome(c *gin.Context, model models.Income) (Income, error) {
	url := c.GetString(string(models.DBContextURL))

	amount, err := model.Money()
	if err != nil {
		return Income{}, err
	}

	return Income{
		DefaultModel: model.DefaultModel,
		IncomeEditable: IncomeEditable{
			Name:   model.Name,
			Source: model.Source,
			Amount: amount,
			Month:  &model.Month,
		},
		Links: IncomeLinks{
			Self:   fmt.Sprintf("%s/v1/incomes/%s", url, model.ID),
			Budget: fmt.Sprintf("%s/v1/months?month=%s", url, model.Month),
		},
	}, nil
}

type IncomeListResponse struct {
	Data       []Income    `json:"data"`                                                          // List of incomes
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type IncomeCreateResponse struct {
	Data  []IncomeResponse `json:"data"`                                                          // List of the created incomes or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (i *IncomeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	i.Data = append(i.Data, IncomeResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type IncomeResponse struct {
	Data  *Income `json:"data"`                                                          // Data for the income
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type IncomeQueryFilter struct {
	Month  types.Month `form:"month"`                      // By month
	Name   string      `form:"name" filterField:"false"`   // By name, "*" matches any text
	Source string      `form:"source"`                     // By source
	Offset uint        `form:"offset" filterField:"false"` // The offset of the first income returned. Defaults to 0.
	Limit  int         `form:"limit" filterField:"false"`  // Maximum number of incomes to return. Defaults to 50.
}
