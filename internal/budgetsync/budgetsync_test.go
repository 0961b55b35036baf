package budgetsync_test

import (
	"context"

	"github.com/envelope-zero/finance-tracker/internal/budgetsync"
	"github.com/envelope-zero/finance-tracker/internal/models"
	"github.com/envelope-zero/finance-tracker/internal/money"
	"github.com/envelope-zero/finance-tracker/internal/types"
	"github.com/shopspring/decimal"
)

var (
	january  = types.NewMonth(2000, 1)
	february = types.NewMonth(2000, 2)
)

func (suite *TestSuiteStandard) TestScenario() {
	ctx := context.Background()
	incomes := budgetsync.NewIncomeSynchronizer(suite.store)
	expenses := budgetsync.NewExpenseSynchronizer(suite.store)

	rent := expense("500.00", january)
	b, err := expenses.Apply(ctx, rent)
	suite.Require().Nil(err)
	suite.assertTotals(b, "0.00", "500.00", "-500.00")

	salary := income("1000.00", january)
	b, err = incomes.Apply(ctx, salary)
	suite.Require().Nil(err)
	suite.assertTotals(b, "1000.00", "500.00", "500.00")

	suite.Require().Nil(expenses.Reapply(ctx, rent, expense("750.00", january)))
	suite.assertTotals(suite.budget(january), "1000.00", "750.00", "250.00")

	b, err = incomes.Retract(ctx, salary)
	suite.Require().Nil(err)
	suite.assertTotals(b, "0.00", "750.00", "-750.00")
	suite.assertTotals(suite.budget(january), "0.00", "750.00", "-750.00")

	suite.Assert().Equal(int64(1), suite.countBudgets())
}

func (suite *TestSuiteStandard) TestApplyCreatesBudget() {
	b, err := budgetsync.NewIncomeSynchronizer(suite.store).Apply(context.Background(), income("12.34", january))
	suite.Require().Nil(err)
	suite.Assert().Equal(money.GBP, b.Currency)
	suite.assertTotals(b, "12.34", "0.00", "12.34")
	suite.assertTotals(suite.budget(january), "12.34", "0.00", "12.34")
}

func (suite *TestSuiteStandard) TestApplyIsAdditive() {
	ctx := context.Background()
	expenses := budgetsync.NewExpenseSynchronizer(suite.store)
	groceries := expense("33.33", january)

	_, err := expenses.Apply(ctx, groceries)
	suite.Require().Nil(err)
	_, err = expenses.Apply(ctx, groceries)
	suite.Require().Nil(err)

	suite.assertTotals(suite.budget(january), "0.00", "66.66", "-66.66")
	suite.Assert().Equal(int64(1), suite.countBudgets())
}

func (suite *TestSuiteStandard) TestReapplyUnchangedIsNoop() {
	ctx := context.Background()
	incomes := budgetsync.NewIncomeSynchronizer(suite.store)
	salary := income("1000.00", january)

	_, err := incomes.Apply(ctx, salary)
	suite.Require().Nil(err)
	_, err = budgetsync.NewExpenseSynchronizer(suite.store).Apply(ctx, expense("1.99", january))
	suite.Require().Nil(err)

	before := suite.budget(january)
	suite.Require().Nil(incomes.Reapply(ctx, salary, salary))
	after := suite.budget(january)

	suite.Assert().Equal(before.ID, after.ID)
	suite.assertTotals(after, before.TotalIncome.StringFixed(2), before.TotalExpense.StringFixed(2), before.Savings.StringFixed(2))
}

func (suite *TestSuiteStandard) TestReapplyAcrossMonths() {
	ctx := context.Background()
	expenses := budgetsync.NewExpenseSynchronizer(suite.store)
	original := expense("500.00", january)

	_, err := expenses.Apply(ctx, original)
	suite.Require().Nil(err)

	suite.Require().Nil(expenses.Reapply(ctx, original, expense("420.00", february)))

	suite.assertTotals(suite.budget(january), "0.00", "0.00", "0.00")
	suite.assertTotals(suite.budget(february), "0.00", "420.00", "-420.00")
	suite.Assert().Equal(int64(2), suite.countBudgets())

	// The months are independent afterwards
	_, err = expenses.Apply(ctx, expense("1.00", january))
	suite.Require().Nil(err)
	suite.assertTotals(suite.budget(january), "0.00", "1.00", "-1.00")
	suite.assertTotals(suite.budget(february), "0.00", "420.00", "-420.00")
}

func (suite *TestSuiteStandard) TestReapplyWithoutBudget() {
	err := budgetsync.NewIncomeSynchronizer(suite.store).Reapply(context.Background(), income("1", january), income("2", february))
	suite.Assert().ErrorIs(err, models.ErrBudgetNotFound)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	// The destination budget is not created
	suite.Assert().Equal(int64(0), suite.countBudgets())
}

func (suite *TestSuiteStandard) TestRetractWithoutBudget() {
	ctx := context.Background()
	incomes := budgetsync.NewIncomeSynchronizer(suite.store)
	salary := income("1000.00", january)

	_, err := incomes.Retract(ctx, salary)
	suite.Assert().ErrorIs(err, models.ErrBudgetNotFound)
	suite.Assert().Equal(int64(0), suite.countBudgets())

	b, err := incomes.Apply(ctx, salary)
	suite.Require().Nil(err)
	suite.assertTotals(b, "1000.00", "0.00", "1000.00")
}

func (suite *TestSuiteStandard) TestRetractKeepsBudget() {
	ctx := context.Background()
	expenses := budgetsync.NewExpenseSynchronizer(suite.store)
	rent := expense("500.00", january)

	_, err := expenses.Apply(ctx, rent)
	suite.Require().Nil(err)

	b, err := expenses.Retract(ctx, rent)
	suite.Require().Nil(err)
	suite.assertTotals(b, "0.00", "0.00", "0.00")

	// Retracting again drives the total negative, the budget still exists
	b, err = expenses.Retract(ctx, rent)
	suite.Require().Nil(err)
	suite.assertTotals(b, "0.00", "-500.00", "500.00")
	suite.Assert().Equal(int64(1), suite.countBudgets())
}

func (suite *TestSuiteStandard) TestReapplyIsAtomic() {
	ctx := context.Background()
	original := income("1000.00", january)

	_, err := budgetsync.NewIncomeSynchronizer(suite.store).Apply(ctx, original)
	suite.Require().Nil(err)

	// The first save is the subtraction from the original month,
	// the second one the addition to the destination month
	for _, failAt := range []int{1, 2} {
		faulty := newFaultyStore(suite.store, failAt)
		err = budgetsync.NewIncomeSynchronizer(faulty).Reapply(ctx, original, income("900.00", february))
		suite.Assert().ErrorIs(err, errFault, "save %d", failAt)

		suite.assertTotals(suite.budget(january), "1000.00", "0.00", "1000.00")
		suite.Assert().Equal(int64(1), suite.countBudgets(), "save %d", failAt)
	}

	// Same month, fault on the second save
	faulty := newFaultyStore(suite.store, 2)
	err = budgetsync.NewIncomeSynchronizer(faulty).Reapply(ctx, original, income("1.00", january))
	suite.Assert().ErrorIs(err, errFault)
	suite.assertTotals(suite.budget(january), "1000.00", "0.00", "1000.00")
}

func (suite *TestSuiteStandard) TestCurrencyMismatch() {
	ctx := context.Background()
	_, err := budgetsync.NewIncomeSynchronizer(suite.store).Apply(ctx, income("10", january))
	suite.Require().Nil(err)

	// Stored budgets in other currencies are rejected instead of mixed
	suite.Require().Nil(models.DB.Model(&models.Budget{}).Where("month = ?", january).Update("currency", "EUR").Error)

	_, err = budgetsync.NewExpenseSynchronizer(suite.store).Apply(ctx, expense("1", january))
	suite.Assert().ErrorIs(err, money.ErrCurrencyMismatch)
}

func (suite *TestSuiteStandard) TestUnsupportedCurrency() {
	e := expense("1", january)
	e.Currency = "USD"

	_, err := budgetsync.NewExpenseSynchronizer(suite.store).Apply(context.Background(), e)
	suite.Assert().ErrorIs(err, money.ErrUnsupportedCurrency)
	suite.Assert().Equal(int64(0), suite.countBudgets())
}

func (suite *TestSuiteStandard) TestStorageErrorsPassThrough() {
	ctx := context.Background()
	incomes := budgetsync.NewIncomeSynchronizer(failingStore{err: errFault})
	salary := income("1", january)

	_, err := incomes.Apply(ctx, salary)
	suite.Assert().ErrorIs(err, errFault)

	suite.Assert().ErrorIs(incomes.Reapply(ctx, salary, salary), errFault)

	_, err = incomes.Retract(ctx, salary)
	suite.Assert().ErrorIs(err, errFault)
}

func (suite *TestSuiteStandard) TestDatabaseClosed() {
	suite.CloseDB()

	_, err := budgetsync.NewIncomeSynchronizer(suite.store).Apply(context.Background(), income("1", january))
	suite.Assert().NotNil(err)
}

func (suite *TestSuiteStandard) TestRoundingDrift() {
	ctx := context.Background()
	incomes := budgetsync.NewIncomeSynchronizer(suite.store)
	expenses := budgetsync.NewExpenseSynchronizer(suite.store)

	for i := 0; i < 10; i++ {
		_, err := incomes.Apply(ctx, income("0.10", january))
		suite.Require().Nil(err)
		_, err = expenses.Apply(ctx, expense("0.03", january))
		suite.Require().Nil(err)
	}

	b := suite.budget(january)
	suite.assertTotals(b, "1.00", "0.30", "0.70")
	suite.Assert().True(b.Savings.Equal(b.TotalIncome.Sub(b.TotalExpense.Decimal)))
	suite.Assert().True(b.TotalIncome.Equal(decimal.NewFromInt(1)))
}
