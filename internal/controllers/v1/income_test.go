package v1_test

import (
	"net/http"
	"strings"
	"testing"

	v1 "github.com/envelope-zero/finance-tracker/internal/controllers/v1"
	"github.com/envelope-zero/finance-tracker/internal/models"
	"github.com/envelope-zero/finance-tracker/internal/types"
	"github.com/envelope-zero/finance-tracker/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestIncomesCreate() {
	income := suite.createTestIncome(map[string]any{
		"name":   "Salary",
		"source": "Employer Ltd.",
		"amount": money("1500.005"),
		"month":  "2024-01",
	})

	suite.Require().Nil(income.Error)
	suite.Assert().Equal("Salary", income.Data.Name)
	suite.Assert().Equal("2024-01", income.Data.Month.String())
	suite.Assert().Equal("1500.00", income.Data.Amount.Amount().StringFixed(2), "amounts are rounded half to even")
	suite.Assert().Equal("http://example.com/v1/months?month=2024-01", income.Data.Links.Budget)
	suite.Assert().Equal("http://example.com/v1/incomes/"+income.Data.ID.String(), income.Data.Links.Self)

	budget := suite.month("2024-01")
	suite.assertTotals(budget.Data, "1500.00", "0.00", "1500.00")
}

func (suite *TestSuiteStandard) TestIncomesCreateDefaultsToCurrentMonth() {
	income := suite.createTestIncome(map[string]any{
		"name":   "Gift",
		"amount": money("20"),
	})

	suite.Assert().Equal(types.Current().String(), income.Data.Month.String())

	budget := suite.month("")
	suite.assertTotals(budget.Data, "20.00", "0.00", "20.00")
}

func (suite *TestSuiteStandard) TestIncomesCreateBadRequest() {
	tests := []struct {
		name string
		body any
	}{
		{"Broken JSON", `[{ "name": 2 `},
		{"Unsupported currency", []map[string]any{{"amount": map[string]string{"amount": "10", "currency": "USD"}}}},
		{"Invalid amount", []map[string]any{{"amount": money("ten")}}},
		{"Invalid month", []map[string]any{{"amount": money("10"), "month": "2024-13"}}},
		{"Empty month", []map[string]any{{"amount": money("10"), "month": ""}}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/incomes", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}

	var res v1.BudgetListResponse
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &res)
	suite.Assert().Len(res.Data, 0, "failed requests must not create budgets")
}

func (suite *TestSuiteStandard) TestIncomesCreateMultiple() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/incomes", []map[string]any{
		{"name": "Salary", "amount": money("1000"), "month": "2024-02"},
		{"name": "Bonus", "amount": money("250.50"), "month": "2024-02"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var res v1.IncomeCreateResponse
	test.DecodeResponse(suite.T(), &r, &res)
	suite.Assert().Len(res.Data, 2)

	budget := suite.month("2024-02")
	suite.assertTotals(budget.Data, "1250.50", "0.00", "1250.50")
}

func (suite *TestSuiteStandard) TestIncomesGet() {
	income := suite.createTestIncome(map[string]any{"name": "Salary", "amount": money("10"), "month": "2024-01"})

	r := test.Request(suite.T(), http.MethodGet, income.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var res v1.IncomeResponse
	test.DecodeResponse(suite.T(), &r, &res)
	suite.Assert().Equal(income.Data.ID, res.Data.ID)
	suite.Assert().True(income.Data.Amount.Equal(res.Data.Amount))
}

func (suite *TestSuiteStandard) TestIncomesGetErrors() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/incomes/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/incomes/dcf520f8-0a1b-4ba0-b38d-4f3c4a2d9bd5", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var res v1.IncomeResponse
	test.DecodeResponse(suite.T(), &r, &res)
	suite.Require().NotNil(res.Error)
	suite.Assert().True(strings.HasPrefix(*res.Error, models.ErrResourceNotFound.Error()))
}

func (suite *TestSuiteStandard) TestIncomesList() {
	suite.createTestIncome(map[string]any{"name": "Salary", "source": "Employer", "amount": money("1000"), "month": "2024-02"})
	suite.createTestIncome(map[string]any{"name": "Salary", "source": "Employer", "amount": money("1000"), "month": "2024-01"})
	suite.createTestIncome(map[string]any{"name": "Side project", "source": "Client", "amount": money("300"), "month": "2024-01"})

	tests := []struct {
		query string
		len   int
		total int64
	}{
		{"", 3, 3},
		{"month=2024-01", 2, 2},
		{"source=Client", 1, 1},
		{"name=Sal*", 2, 2},
		{"name=Side%20project&month=2024-02", 0, 0},
		{"offset=1&limit=1", 1, 3},
		{"name=Sal*&offset=1", 1, 2},
		{"month=2024-01&limit=1", 1, 2},
		{"limit=-1", 3, 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/incomes?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var res v1.IncomeListResponse
			test.DecodeResponse(t, &r, &res)
			assert.Len(t, res.Data, tt.len)
			assert.Equal(t, tt.total, res.Pagination.Total)
		})
	}

	var res v1.IncomeListResponse
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/incomes", "")
	test.DecodeResponse(suite.T(), &r, &res)
	suite.Assert().Equal("2024-01", res.Data[0].Month.String(), "incomes are ordered by month")

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/incomes?month=January", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestIncomesUpdateAmount() {
	income := suite.createTestIncome(map[string]any{"name": "Salary", "amount": money("1000"), "month": "2024-01"})

	r := test.Request(suite.T(), http.MethodPatch, income.Data.Links.Self, map[string]any{"amount": money("1200.25")})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var res v1.IncomeResponse
	test.DecodeResponse(suite.T(), &r, &res)
	suite.Assert().Equal("1200.25", res.Data.Amount.Amount().StringFixed(2))
	suite.Assert().Equal("Salary", res.Data.Name, "fields that are not sent must be kept")

	budget := suite.month("2024-01")
	suite.assertTotals(budget.Data, "1200.25", "0.00", "1200.25")
}

func (suite *TestSuiteStandard) TestIncomesUpdateMonth() {
	income := suite.createTestIncome(map[string]any{"name": "Salary", "amount": money("1000"), "month": "2024-01"})

	r := test.Request(suite.T(), http.MethodPatch, income.Data.Links.Self, map[string]any{"month": "2024-03"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	january := suite.month("2024-01")
	suite.assertTotals(january.Data, "0.00", "0.00", "0.00")

	march := suite.month("2024-03")
	suite.assertTotals(march.Data, "1000.00", "0.00", "1000.00")
}

func (suite *TestSuiteStandard) TestIncomesUpdateErrors() {
	income := suite.createTestIncome(map[string]any{"name": "Salary", "amount": money("1000"), "month": "2024-01"})

	r := test.Request(suite.T(), http.MethodPatch, income.Data.Links.Self, `{ "name": 2 }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPatch, income.Data.Links.Self, map[string]any{"amount": map[string]string{"amount": "1", "currency": "EUR"}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/incomes/not-a-uuid", map[string]any{"name": "Other"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/incomes/dcf520f8-0a1b-4ba0-b38d-4f3c4a2d9bd5", map[string]any{"name": "Other"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	budget := suite.month("2024-01")
	suite.assertTotals(budget.Data, "1000.00", "0.00", "1000.00")
}

func (suite *TestSuiteStandard) TestIncomesDelete() {
	income := suite.createTestIncome(map[string]any{"name": "Salary", "amount": money("1000"), "month": "2024-01"})
	suite.createTestIncome(map[string]any{"name": "Bonus", "amount": money("100"), "month": "2024-01"})

	r := test.Request(suite.T(), http.MethodDelete, income.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	budget := suite.month("2024-01")
	suite.assertTotals(budget.Data, "100.00", "0.00", "100.00")

	r = test.Request(suite.T(), http.MethodDelete, income.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	budget = suite.month("2024-01")
	suite.assertTotals(budget.Data, "100.00", "0.00", "100.00")
}

func (suite *TestSuiteStandard) TestIncomesOptions() {
	income := suite.createTestIncome(map[string]any{"amount": money("1")})

	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/incomes", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, income.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/incomes/dcf520f8-0a1b-4ba0-b38d-4f3c4a2d9bd5", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/incomes/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestIncomesDatabaseError() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/incomes", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/incomes", []map[string]any{{"amount": money("1")}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var res v1.IncomeCreateResponse
	test.DecodeResponse(suite.T(), &r, &res)
	suite.Require().Len(res.Data, 1)
	suite.Assert().Equal(models.ErrGeneral.Error(), *res.Data[0].Error)
}

func (suite *TestSuiteStandard) TestIncomesFirstMonthOfYearOne() {
	income := suite.createTestIncome(map[string]any{"name": "Old money", "amount": money("7"), "month": "0001-01"})
	suite.Assert().Equal("0001-01", income.Data.Month.String())

	budget := suite.month("0001-01")
	suite.assertTotals(budget.Data, "7.00", "0.00", "7.00")

	suite.month(types.Current().String(), http.StatusNotFound)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/incomes?month=0001-01", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var res v1.IncomeListResponse
	test.DecodeResponse(suite.T(), &r, &res)
	suite.Assert().Len(res.Data, 1)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/incomes?month=", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestIncomesUpdateMonthNull() {
	income := suite.createTestIncome(map[string]any{"name": "Salary", "amount": money("10"), "month": "2024-01"})

	r := test.Request(suite.T(), http.MethodPatch, income.Data.Links.Self, `{ "month": null, "name": "Wage" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var res v1.IncomeResponse
	test.DecodeResponse(suite.T(), &r, &res)
	suite.Assert().Equal("Wage", res.Data.Name)
	suite.Assert().Equal("2024-01", res.Data.Month.String())
}
