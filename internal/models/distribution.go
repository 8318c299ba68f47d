package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Distribution is a committed transfer of a material to a family.
type Distribution struct {
	DefaultModel
	MaterialID      uuid.UUID
	Material        Material `json:"-"`
	BeneficiaryID   uuid.UUID
	Beneficiary     Family          `json:"-"`
	Quantity        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Unit            Unit            `gorm:"type:varchar(8)"`
	Date            time.Time
	DistributedByID uuid.UUID
	DistributedBy   User `json:"-"`
	Reason          string
}

func (d Distribution) Self() string {
	return "Distribution"
}

// AfterFind updates the timestamps to use UTC as timezone.
func (d *Distribution) AfterFind(tx *gorm.DB) (err error) {
	err = d.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	d.Date = d.Date.In(time.UTC)
	return nil
}

func (d *Distribution) BeforeSave(_ *gorm.DB) error {
	d.Reason = strings.TrimSpace(d.Reason)

	if d.Date.IsZero() {
		d.Date = time.Now().In(time.UTC)
	} else {
		d.Date = d.Date.In(time.UTC)
	}

	if d.Quantity.IsNegative() {
		return ErrDistributionQuantity
	}

	return nil
}
