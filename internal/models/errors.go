package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Conflicts
var (
	ErrSKUNotUnique   = errors.New("the SKU must be unique, another material already uses it")
	ErrEmailNotUnique = errors.New("the email address is already in use")
)

// Validation
var (
	ErrMaterialNameEmpty        = errors.New("the material name must not be empty")
	ErrMaterialSKUEmpty         = errors.New("the material SKU must not be empty")
	ErrMaterialCategoryInvalid  = errors.New("the material category is invalid")
	ErrMaterialUnitInvalid      = errors.New("the material unit is invalid")
	ErrMaterialQuantityNegative = errors.New("the current quantity of a material must not be negative")
	ErrMaterialNeedNegative     = errors.New("the average monthly need of a material must not be negative")
	ErrFamilyNameEmpty          = errors.New("the family name must not be empty")
	ErrFamilyAreaEmpty          = errors.New("the family area must not be empty")
	ErrFamilySizeInvalid        = errors.New("the family size must be at least 1")
	ErrDonationQuantityInvalid  = errors.New("the donation quantity must be a positive number")
	ErrDistributionQuantity     = errors.New("the distribution quantity must not be negative")
	ErrNotificationTypeInvalid  = errors.New("the notification type is invalid")
	ErrUserNameEmpty            = errors.New("the user name must not be empty")
	ErrUserEmailInvalid         = errors.New("the email address is invalid")
	ErrUserPasswordTooShort     = errors.New("the password must be at least 6 characters long")
	ErrUserRoleInvalid          = errors.New("the user role must be one of admin, volunteer")
	ErrUserStatusInvalid        = errors.New("the user status must be one of active, inactive")
)

var validationErrors = []error{
	ErrMaterialNameEmpty,
	ErrMaterialSKUEmpty,
	ErrMaterialCategoryInvalid,
	ErrMaterialUnitInvalid,
	ErrMaterialQuantityNegative,
	ErrMaterialNeedNegative,
	ErrFamilyNameEmpty,
	ErrFamilyAreaEmpty,
	ErrFamilySizeInvalid,
	ErrDonationQuantityInvalid,
	ErrDistributionQuantity,
	ErrNotificationTypeInvalid,
	ErrUserNameEmpty,
	ErrUserEmailInvalid,
	ErrUserPasswordTooShort,
	ErrUserRoleInvalid,
	ErrUserStatusInvalid,
}

// IsKnown reports if err is one of the errors defined in this package.
// Everything else is an unexpected error from the database layer.
func IsKnown(err error) bool {
	for _, known := range append([]error{ErrGeneral, ErrResourceNotFound, ErrSKUNotUnique, ErrEmailNotUnique}, validationErrors...) {
		if errors.Is(err, known) {
			return true
		}
	}
	return false
}
