package v1_test

import (
	"net/http"

	"github.com/envelope-zero/finance-tracker/test"
)

// TestMonthLifecycle follows one month through incomes and expenses
// being recorded, changed and removed.
func (suite *TestSuiteStandard) TestMonthLifecycle() {
	expense := suite.createTestExpense(map[string]any{"name": "Rent", "amount": money("500.00"), "month": "2000-01"})
	budget := suite.month("2000-01")
	suite.assertTotals(budget.Data, "0.00", "500.00", "-500.00")

	income := suite.createTestIncome(map[string]any{"name": "Salary", "amount": money("1000.00"), "month": "2000-01"})
	budget = suite.month("2000-01")
	suite.assertTotals(budget.Data, "1000.00", "500.00", "500.00")

	r := test.Request(suite.T(), http.MethodPatch, expense.Data.Links.Self, map[string]any{"amount": money("750.00")})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	budget = suite.month("2000-01")
	suite.assertTotals(budget.Data, "1000.00", "750.00", "250.00")

	r = test.Request(suite.T(), http.MethodDelete, income.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	budget = suite.month("2000-01")
	suite.assertTotals(budget.Data, "0.00", "750.00", "-750.00")

	suite.Assert().Equal("GBP", string(budget.Data.Currency))
	suite.Assert().Equal("http://example.com/v1/incomes?month=2000-01", budget.Data.Links.Incomes)
	suite.Assert().Equal("http://example.com/v1/expenses?month=2000-01", budget.Data.Links.Expenses)
}

func (suite *TestSuiteStandard) TestMonthErrors() {
	res := suite.month("2024-05", http.StatusNotFound)
	suite.Require().NotNil(res.Error)

	suite.month("2024-5", http.StatusBadRequest)
	suite.month("May", http.StatusBadRequest)

	suite.CloseDB()
	suite.month("2024-05", http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestMonthOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/months", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/months", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusMethodNotAllowed)
}
