package models_test

import "github.com/budgetwise/backend/pkg/models"

func (suite *TestSuiteStandard) TestUserEmailUnique() {
	suite.Require().Nil(models.DB.Create(&models.User{Email: " Jane@Example.com", Name: "Jane"}).Error)

	err := models.DB.Create(&models.User{Email: "jane@example.com", Name: "Jane again"}).Error
	suite.Assert().ErrorIs(err, models.ErrUserEmailNotUnique)
}
