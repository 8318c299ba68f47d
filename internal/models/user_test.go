package models_test

import (
	"github.com/fairshare-aid/backend/internal/models"
)

func (suite *TestSuiteStandard) TestUserPassword() {
	u := suite.createTestUser(models.User{})

	suite.Assert().NotEqual("correct horse battery staple", u.PasswordHash)
	suite.Assert().True(u.CheckPassword("correct horse battery staple"))
	suite.Assert().False(u.CheckPassword("wrong"))
}

func (suite *TestSuiteStandard) TestUserPasswordTooShort() {
	var u models.User
	suite.Assert().ErrorIs(u.SetPassword("12345"), models.ErrUserPasswordTooShort)
}

func (suite *TestSuiteStandard) TestUserDefaults() {
	u := suite.createTestUser(models.User{Email: "  Staff@Example.COM "})

	suite.Assert().Equal("staff@example.com", u.Email)
	suite.Assert().Equal(models.RoleVolunteer, u.Role)
	suite.Assert().Equal(models.UserActive, u.Status)
}

func (suite *TestSuiteStandard) TestUserEmailUnique() {
	_ = suite.createTestUser(models.User{Email: "staff@example.com"})

	u := models.User{Name: "Other", Email: "STAFF@example.com"}
	suite.Require().Nil(u.SetPassword("secret-password"))

	err := models.DB.Create(&u).Error
	suite.Assert().ErrorIs(err, models.ErrEmailNotUnique)
}

func (suite *TestSuiteStandard) TestUserValidation() {
	tests := []struct {
		name string
		user models.User
		err  error
	}{
		{"No name", models.User{Email: "a@example.com", PasswordHash: "x"}, models.ErrUserNameEmpty},
		{"Bad email", models.User{Name: "A", Email: "not-an-email", PasswordHash: "x"}, models.ErrUserEmailInvalid},
		{"No password", models.User{Name: "A", Email: "a@example.com"}, models.ErrUserPasswordTooShort},
		{"Bad role", models.User{Name: "A", Email: "a@example.com", PasswordHash: "x", Role: "root"}, models.ErrUserRoleInvalid},
		{"Bad status", models.User{Name: "A", Email: "a@example.com", PasswordHash: "x", Status: "gone"}, models.ErrUserStatusInvalid},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := models.DB.Create(&tt.user).Error
			suite.Assert().ErrorIs(err, tt.err)
		})
	}
}
