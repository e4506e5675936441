package models_test

import (
	"github.com/pocketdiary/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestQueryErrorMessage() {
	err := models.DB.First(&models.Expense{}, "id = ?", "65392deb-5e92-4268-b114-297faad6cdce").Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no expense matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestGeneralErrorOnClosedDB() {
	suite.CloseDB()

	err := models.DB.Find(&[]models.Expense{}).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestModelBeforeCreate() {
	expense := suite.createTestExpense(models.Expense{})
	assert.NotEmpty(suite.T(), expense.ID, "a UUID must be generated on create")
}
