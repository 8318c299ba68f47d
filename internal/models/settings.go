package models

import (
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Settings holds the application wide configuration. There is only ever
// one row.
type Settings struct {
	DefaultModel
	AutomaticAlerts   bool `gorm:"default:true"`
	AIRecommendations bool `gorm:"default:true"`
	DonationReminders bool `gorm:"default:false"`
	ExpirationAlerts  bool `gorm:"default:true"`
	MaterialNeeds     datatypes.JSONMap
}

func (s Settings) Self() string {
	return "Settings"
}

// LoadSettings returns the settings, creating them with the defaults
// if they do not exist yet.
func LoadSettings(db *gorm.DB) (Settings, error) {
	var settings Settings
	err := db.Order("created_at ASC").First(&settings).Error
	if err == nil {
		return settings, nil
	}

	if !errors.Is(err, ErrResourceNotFound) {
		return Settings{}, err
	}

	settings = Settings{
		AutomaticAlerts:   true,
		AIRecommendations: true,
		ExpirationAlerts:  true,
		MaterialNeeds:     datatypes.JSONMap{},
	}

	err = db.Create(&settings).Error
	if err != nil {
		return Settings{}, fmt.Errorf("could not create default settings: %w", err)
	}

	return settings, nil
}
