package v1_test

import (
	"net/http"

	v1 "github.com/envelope-zero/finance-tracker/internal/controllers/v1"
	"github.com/envelope-zero/finance-tracker/test"
)

func money(amount string) map[string]string {
	return map[string]string{"amount": amount, "currency": "GBP"}
}

func (suite *TestSuiteStandard) createTestIncome(body map[string]any, expectedStatus ...int) v1.IncomeResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = []int{http.StatusCreated}
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/incomes", []map[string]any{body})
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus...)

	var res v1.IncomeCreateResponse
	test.DecodeResponse(suite.T(), &r, &res)

	suite.Require().Len(res.Data, 1)
	return res.Data[0]
}

func (suite *TestSuiteStandard) createTestExpense(body map[string]any, expectedStatus ...int) v1.ExpenseResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = []int{http.StatusCreated}
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", []map[string]any{body})
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus...)

	var res v1.ExpenseCreateResponse
	test.DecodeResponse(suite.T(), &r, &res)

	suite.Require().Len(res.Data, 1)
	return res.Data[0]
}

// month returns the budget of a month.
func (suite *TestSuiteStandard) month(month string, expectedStatus ...int) v1.BudgetResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = []int{http.StatusOK}
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months?month="+month, "")
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus...)

	var res v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &res)
	return res
}

// assertTotals checks income, expense and savings of a budget.
func (suite *TestSuiteStandard) assertTotals(budget *v1.Budget, income, expense, savings string) {
	suite.Require().NotNil(budget)
	suite.Assert().Equal(income, budget.TotalIncome.Amount().StringFixed(2), "total income")
	suite.Assert().Equal(expense, budget.TotalExpense.Amount().StringFixed(2), "total expense")
	suite.Assert().Equal(savings, budget.Savings.Amount().StringFixed(2), "savings")
}
