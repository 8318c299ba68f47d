package notify

import (
	"context"

	"github.com/fairshare-aid/backend/internal/models"
	"gorm.io/gorm"
)

// RecipientResolver returns the users that receive stock alerts.
type RecipientResolver interface {
	Recipients(ctx context.Context) ([]models.User, error)
}

// AllUsers resolves to every user in the directory.
type AllUsers struct {
	DB *gorm.DB
}

func (a AllUsers) Recipients(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := a.DB.WithContext(ctx).Order("created_at ASC").Find(&users).Error
	if err != nil {
		return nil, err
	}

	return users, nil
}

// ActiveUsers resolves to all users with status active.
type ActiveUsers struct {
	DB *gorm.DB
}

func (a ActiveUsers) Recipients(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := a.DB.WithContext(ctx).Where(&models.User{Status: models.UserActive}).Order("created_at ASC").Find(&users).Error
	if err != nil {
		return nil, err
	}

	return users, nil
}
