package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AnonymousDonor is used when a donation has no donor.
const AnonymousDonor = "Anonymous"

// Donation is an incoming contribution of a material.
type Donation struct {
	DefaultModel
	MaterialID  uuid.UUID
	Material    Material        `json:"-"`
	Quantity    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Unit        Unit            `gorm:"type:varchar(8)"` // Copied from the material on creation
	Date        time.Time
	Donor       string
	CreatedByID uuid.UUID
	CreatedBy   User `json:"-"`
}

func (d Donation) Self() string {
	return "Donation"
}

// AfterFind updates the timestamps to use UTC as timezone.
func (d *Donation) AfterFind(tx *gorm.DB) (err error) {
	err = d.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	d.Date = d.Date.In(time.UTC)
	return nil
}

// BeforeSave
//   - defaults the donor to "Anonymous" when it is blank
//   - sets the date to now when it is unset and to UTC otherwise
//   - ensures the quantity is positive
func (d *Donation) BeforeSave(_ *gorm.DB) error {
	d.Donor = strings.TrimSpace(d.Donor)
	if d.Donor == "" {
		d.Donor = AnonymousDonor
	}

	if d.Date.IsZero() {
		d.Date = time.Now().In(time.UTC)
	} else {
		d.Date = d.Date.In(time.UTC)
	}

	if !d.Quantity.IsPositive() {
		return ErrDonationQuantityInvalid
	}

	return nil
}
