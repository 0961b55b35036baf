package store_test

import (
	"context"
	"errors"

	"github.com/envelope-zero/finance-tracker/internal/models"
	"github.com/envelope-zero/finance-tracker/internal/money"
	"github.com/envelope-zero/finance-tracker/internal/store"
	"github.com/envelope-zero/finance-tracker/internal/types"
	"github.com/google/uuid"
)

var errAbort = errors.New("abort")

func (suite *TestSuiteStandard) newBudget(month types.Month, income string) models.Budget {
	b, err := models.NewBudget(month, money.GBP)
	suite.Require().Nil(err)

	m, err := money.NewFromString(income, money.GBP)
	suite.Require().Nil(err)
	suite.Require().Nil(b.AddIncome(m))

	return b
}

func (suite *TestSuiteStandard) TestSaveAndFind() {
	ctx := context.Background()
	month := types.NewMonth(2024, 5)

	_, ok, err := suite.store.FindByMonth(ctx, month)
	suite.Require().Nil(err)
	suite.Assert().False(ok, "Budget found before it was created")

	b := suite.newBudget(month, "100")
	suite.Require().Nil(suite.store.Save(ctx, &b))
	suite.Assert().NotEqual(uuid.Nil, b.ID)

	found, ok, err := suite.store.FindByMonth(ctx, month)
	suite.Require().Nil(err)
	suite.Require().True(ok)
	suite.Assert().Equal(b.ID, found.ID)
	suite.Assert().Equal("100.00", found.TotalIncome.StringFixed(2))

	byID, ok, err := suite.store.FindByID(ctx, b.ID)
	suite.Require().Nil(err)
	suite.Require().True(ok)
	suite.Assert().True(byID.Month.Equal(month))

	_, ok, err = suite.store.FindByID(ctx, uuid.New())
	suite.Require().Nil(err)
	suite.Assert().False(ok)
}

func (suite *TestSuiteStandard) TestSaveUpdates() {
	ctx := context.Background()
	month := types.NewMonth(2024, 5)

	b := suite.newBudget(month, "100")
	suite.Require().Nil(suite.store.Save(ctx, &b))

	m, _ := money.NewFromString("50", money.GBP)
	suite.Require().Nil(b.AddExpense(m))
	suite.Require().Nil(suite.store.Save(ctx, &b))

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Budget{}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)

	found, _, err := suite.store.FindByMonth(ctx, month)
	suite.Require().Nil(err)
	suite.Assert().Equal("50.00", found.TotalExpense.StringFixed(2))
	suite.Assert().Equal("50.00", found.Savings.StringFixed(2))
}

func (suite *TestSuiteStandard) TestSaveDuplicateMonth() {
	ctx := context.Background()
	month := types.NewMonth(2024, 5)

	first := suite.newBudget(month, "1")
	suite.Require().Nil(suite.store.Save(ctx, &first))

	second := suite.newBudget(month, "2")
	suite.Assert().ErrorIs(suite.store.Save(ctx, &second), models.ErrBudgetMonthNotUnique)
}

func (suite *TestSuiteStandard) TestDeleteByID() {
	ctx := context.Background()
	b := suite.newBudget(types.NewMonth(2024, 5), "1")
	suite.Require().Nil(suite.store.Save(ctx, &b))

	deleted, err := suite.store.DeleteByID(ctx, b.ID)
	suite.Require().Nil(err)
	suite.Assert().True(deleted)

	deleted, err = suite.store.DeleteByID(ctx, b.ID)
	suite.Require().Nil(err)
	suite.Assert().False(deleted)

	// The month can be used again after the budget has been deleted
	again := suite.newBudget(types.NewMonth(2024, 5), "1")
	suite.Assert().Nil(suite.store.Save(ctx, &again))
}

func (suite *TestSuiteStandard) TestTransactionCommit() {
	ctx := context.Background()
	month := types.NewMonth(2024, 6)

	err := suite.store.Transaction(ctx, func(budgets store.Budgets) error {
		b := suite.newBudget(month, "10")
		return budgets.Save(ctx, &b)
	})
	suite.Require().Nil(err)

	_, ok, err := suite.store.FindByMonth(ctx, month)
	suite.Require().Nil(err)
	suite.Assert().True(ok)
}

func (suite *TestSuiteStandard) TestTransactionRollback() {
	ctx := context.Background()
	month := types.NewMonth(2024, 6)

	err := suite.store.Transaction(ctx, func(budgets store.Budgets) error {
		b := suite.newBudget(month, "10")
		if err := budgets.Save(ctx, &b); err != nil {
			return err
		}

		// The budget is visible inside the transaction
		_, ok, err := budgets.FindByMonth(ctx, month)
		suite.Require().Nil(err)
		suite.Assert().True(ok)

		return errAbort
	})
	suite.Assert().ErrorIs(err, errAbort)

	_, ok, err := suite.store.FindByMonth(ctx, month)
	suite.Require().Nil(err)
	suite.Assert().False(ok, "Budget was persisted even though the transaction was rolled back")
}

func (suite *TestSuiteStandard) TestNestedTransactionRollback() {
	ctx := context.Background()
	outer := types.NewMonth(2024, 6)
	inner := types.NewMonth(2024, 7)

	err := suite.store.Transaction(ctx, func(budgets store.Budgets) error {
		b := suite.newBudget(outer, "10")
		if err := budgets.Save(ctx, &b); err != nil {
			return err
		}

		err := budgets.(store.Store).Transaction(ctx, func(nested store.Budgets) error {
			b := suite.newBudget(inner, "10")
			if err := nested.Save(ctx, &b); err != nil {
				return err
			}
			return errAbort
		})
		suite.Assert().ErrorIs(err, errAbort)

		return nil
	})
	suite.Require().Nil(err)

	_, ok, err := suite.store.FindByMonth(ctx, outer)
	suite.Require().Nil(err)
	suite.Assert().True(ok, "Outer transaction was not committed")

	_, ok, err = suite.store.FindByMonth(ctx, inner)
	suite.Require().Nil(err)
	suite.Assert().False(ok, "Savepoint was not rolled back")
}

func (suite *TestSuiteStandard) TestDatabaseErrors() {
	ctx := context.Background()
	suite.CloseDB()

	_, _, err := suite.store.FindByMonth(ctx, types.NewMonth(2024, 6))
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	_, _, err = suite.store.FindByID(ctx, uuid.New())
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	b := suite.newBudget(types.NewMonth(2024, 6), "1")
	suite.Assert().ErrorIs(suite.store.Save(ctx, &b), models.ErrGeneral)

	_, err = suite.store.DeleteByID(ctx, uuid.New())
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
