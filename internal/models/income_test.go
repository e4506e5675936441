package models_test

import (
	"github.com/pocketdiary/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestIncomeBeforeSaveDefaults() {
	income := suite.createTestIncome(models.Income{
		Category: " Salary ",
		Amount:   decimal.NewFromInt(2800),
	})

	assert.Equal(suite.T(), "Salary", income.Category)
	assert.Equal(suite.T(), "Salary", income.Description, "description does not default to the category")
	assert.False(suite.T(), income.Date.IsZero(), "date does not default to today")
}

func (suite *TestSuiteStandard) TestIncomeBeforeSaveValidation() {
	err := models.DB.Create(&models.Income{Amount: decimal.NewFromInt(-1)}).Error
	assert.ErrorIs(suite.T(), err, models.ErrIncomeAmountNegative)
}

// An expense moved to the other side of the ledger keeps its ID, so the
// conversion must be able to create an income with a preset ID.
func (suite *TestSuiteStandard) TestConversionKeepsID() {
	expense := suite.createTestExpense(models.Expense{
		Description: "Entered on the wrong side",
		Amount:      decimal.NewFromInt(100),
	})

	income := models.Income{
		DefaultModel: models.DefaultModel{ID: expense.ID},
		Description:  expense.Description,
		Amount:       expense.Amount,
		Date:         expense.Date,
	}

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(&expense).Error; err != nil {
			return err
		}

		return tx.Create(&income).Error
	})

	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), expense.ID, income.ID)

	var reloaded models.Income
	err = models.DB.First(&reloaded, "id = ?", expense.ID).Error
	assert.Nil(suite.T(), err)

	err = models.DB.First(&models.Expense{}, "id = ?", expense.ID).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}
