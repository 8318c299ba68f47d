package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/fairshare-aid/backend/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DistributionReason is the reason recorded for executed distributions.
const DistributionReason = "Smart Distribution"

// Ledger is the only place where the current quantity of a material changes.
//
// Every operation runs in a database transaction. If any write fails, the
// stock change is rolled back together with it.
type Ledger struct {
	db *gorm.DB
}

func NewLedger(db *gorm.DB) Ledger {
	return Ledger{db: db}
}

type DonationInput struct {
	MaterialID uuid.UUID
	Quantity   decimal.Decimal
	Date       time.Time // Defaults to now
	Donor      string    // Defaults to "Anonymous"
}

// DonationUpdate contains the fields of a donation that can be edited.
// nil fields keep their value.
type DonationUpdate struct {
	Quantity *decimal.Decimal
	Donor    *string
	Date     *time.Time
}

type DistributionEntry struct {
	FamilyID uuid.UUID
	Quantity decimal.Decimal
}

type DistributionInput struct {
	MaterialID uuid.UUID
	Entries    []DistributionEntry
	Date       time.Time // Defaults to now
}

type DistributionResult struct {
	Total         decimal.Decimal
	Distributions []models.Distribution
}

// MaterialUpdate contains the fields of a material that can be edited.
// nil fields keep their value. An ExpiringAt pointing to the zero time
// removes the expiry date.
type MaterialUpdate struct {
	Name               *string
	Category           *models.MaterialCategory
	SKU                *string
	Unit               *models.Unit
	CurrentQuantity    *decimal.Decimal
	AverageMonthlyNeed *decimal.Decimal
	ExpiringAt         *time.Time
}

// transaction runs fn in a database transaction and rolls it back when
// fn returns an error.
func (l Ledger) transaction(ctx context.Context, operation string, fn func(tx *gorm.DB) error) error {
	tx := l.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return wrap(tx.Error)
	}

	err := fn(tx)
	if err != nil {
		tx.Rollback()
		rollbacks.WithLabelValues(operation).Inc()
		log.Debug().Str("operation", operation).Err(err).Msg("Inventory")
		return wrap(err)
	}

	err = tx.Commit().Error
	if err != nil {
		return wrap(err)
	}

	stockChanges.WithLabelValues(operation).Inc()
	return nil
}

// changeStock adds delta to the current quantity of the material and
// saves it. The result is never below zero.
func changeStock(tx *gorm.DB, material *models.Material, delta decimal.Decimal) error {
	material.CurrentQuantity = clamp(material.CurrentQuantity.Add(delta))
	return tx.Omit(clause.Associations).Save(material).Error
}

func clamp(q decimal.Decimal) decimal.Decimal {
	if q.IsNegative() {
		return decimal.Zero
	}
	return q
}

func (l Ledger) CreateMaterial(ctx context.Context, material models.Material) (models.Material, error) {
	if material.CurrentQuantity.IsNegative() {
		return models.Material{}, models.ErrMaterialQuantityNegative
	}

	err := l.transaction(ctx, "create_material", func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(&material).Error
	})
	if err != nil {
		return models.Material{}, err
	}

	return material, nil
}

// AdjustMaterial applies a manual edit to a material. The current quantity
// is set directly and must not be negative.
func (l Ledger) AdjustMaterial(ctx context.Context, id uuid.UUID, update MaterialUpdate) (models.Material, error) {
	if update.CurrentQuantity != nil && update.CurrentQuantity.IsNegative() {
		return models.Material{}, models.ErrMaterialQuantityNegative
	}

	var material models.Material
	err := l.transaction(ctx, "adjust_material", func(tx *gorm.DB) error {
		err := tx.First(&material, "id = ?", id).Error
		if err != nil {
			return err
		}

		if update.Name != nil {
			material.Name = *update.Name
		}
		if update.Category != nil {
			material.Category = *update.Category
		}
		if update.SKU != nil {
			material.SKU = *update.SKU
		}
		if update.Unit != nil {
			material.Unit = *update.Unit
		}
		if update.CurrentQuantity != nil {
			material.CurrentQuantity = *update.CurrentQuantity
		}
		if update.AverageMonthlyNeed != nil {
			material.AverageMonthlyNeed = *update.AverageMonthlyNeed
		}
		if update.ExpiringAt != nil {
			if update.ExpiringAt.IsZero() {
				material.ExpiringAt = nil
			} else {
				material.ExpiringAt = update.ExpiringAt
			}
		}

		return tx.Omit(clause.Associations).Save(&material).Error
	})
	if err != nil {
		return models.Material{}, err
	}

	return material, nil
}

// RecordDonation increases the stock of the material and records the donation.
func (l Ledger) RecordDonation(ctx context.Context, input DonationInput, actor models.User) (models.Donation, error) {
	if !input.Quantity.IsPositive() {
		return models.Donation{}, ErrInvalidQuantity
	}

	var donation models.Donation
	err := l.transaction(ctx, "record_donation", func(tx *gorm.DB) error {
		var material models.Material
		err := tx.First(&material, "id = ?", input.MaterialID).Error
		if err != nil {
			return err
		}

		err = changeStock(tx, &material, input.Quantity)
		if err != nil {
			return err
		}

		donation = models.Donation{
			MaterialID:  material.ID,
			Quantity:    input.Quantity,
			Unit:        material.Unit,
			Date:        input.Date,
			Donor:       input.Donor,
			CreatedByID: actor.ID,
		}

		return tx.Omit(clause.Associations).Create(&donation).Error
	})
	if err != nil {
		return models.Donation{}, err
	}

	return donation, nil
}

// EditDonation replaces the quantity of a donation in the stock of its
// material and updates the donation.
func (l Ledger) EditDonation(ctx context.Context, id uuid.UUID, update DonationUpdate) (models.Donation, error) {
	if update.Quantity != nil && !update.Quantity.IsPositive() {
		return models.Donation{}, ErrInvalidQuantity
	}

	var donation models.Donation
	err := l.transaction(ctx, "edit_donation", func(tx *gorm.DB) error {
		err := tx.First(&donation, "id = ?", id).Error
		if err != nil {
			return err
		}

		var material models.Material
		err = tx.First(&material, "id = ?", donation.MaterialID).Error
		if err != nil {
			return err
		}

		quantity := donation.Quantity
		if update.Quantity != nil {
			quantity = *update.Quantity
		}

		// The old quantity is reversed and the new one applied in one step,
		// the result is clamped once.
		err = changeStock(tx, &material, quantity.Sub(donation.Quantity))
		if err != nil {
			return err
		}

		donation.Quantity = quantity
		donation.Unit = material.Unit
		if update.Donor != nil {
			donation.Donor = *update.Donor
		}
		if update.Date != nil {
			donation.Date = *update.Date
		}

		return tx.Omit(clause.Associations).Save(&donation).Error
	})
	if err != nil {
		return models.Donation{}, err
	}

	return donation, nil
}

// DeleteDonation removes the quantity of the donation from the stock of its
// material and deletes the donation. It returns the ID of the material so
// that callers can check its status.
//
// If the material does not exist anymore, only the donation is deleted.
func (l Ledger) DeleteDonation(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	var donation models.Donation
	err := l.transaction(ctx, "delete_donation", func(tx *gorm.DB) error {
		err := tx.First(&donation, "id = ?", id).Error
		if err != nil {
			return err
		}

		var material models.Material
		err = tx.First(&material, "id = ?", donation.MaterialID).Error
		if err != nil && !errors.Is(err, models.ErrResourceNotFound) {
			return err
		}

		if err == nil {
			err = changeStock(tx, &material, donation.Quantity.Neg())
			if err != nil {
				return err
			}
		}

		return tx.Delete(&donation).Error
	})
	if err != nil {
		return uuid.Nil, err
	}

	return donation.MaterialID, nil
}

// ExecuteDistribution records a distribution for every entry and removes
// the total from the stock of the material.
//
// Entries for families that do not exist and entries with a quantity
// that is not positive are skipped.
func (l Ledger) ExecuteDistribution(ctx context.Context, input DistributionInput, actor models.User) (DistributionResult, error) {
	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}
	date = date.In(time.UTC)

	result := DistributionResult{
		Total:         decimal.Zero,
		Distributions: []models.Distribution{},
	}

	err := l.transaction(ctx, "execute_distribution", func(tx *gorm.DB) error {
		var material models.Material
		err := tx.First(&material, "id = ?", input.MaterialID).Error
		if err != nil {
			return err
		}

		for _, entry := range input.Entries {
			if !entry.Quantity.IsPositive() {
				continue
			}

			var family models.Family
			err := tx.First(&family, "id = ?", entry.FamilyID).Error
			if errors.Is(err, models.ErrResourceNotFound) {
				continue
			} else if err != nil {
				return err
			}

			distribution := models.Distribution{
				MaterialID:      material.ID,
				BeneficiaryID:   family.ID,
				Quantity:        entry.Quantity,
				Unit:            material.Unit,
				Date:            date,
				DistributedByID: actor.ID,
				Reason:          DistributionReason,
			}

			err = tx.Omit(clause.Associations).Create(&distribution).Error
			if err != nil {
				return err
			}

			family.LastDistributionAt = &date
			err = tx.Omit(clause.Associations).Save(&family).Error
			if err != nil {
				return err
			}

			result.Total = result.Total.Add(entry.Quantity)
			result.Distributions = append(result.Distributions, distribution)
		}

		return changeStock(tx, &material, result.Total.Neg())
	})
	if err != nil {
		return DistributionResult{}, err
	}

	return result, nil
}

// SuggestDistribution loads the material and all families and suggests
// how to split the current stock between them.
func (l Ledger) SuggestDistribution(ctx context.Context, materialID uuid.UUID, strategy Strategy) (models.Material, []Suggestion, error) {
	db := l.db.WithContext(ctx)

	var material models.Material
	err := db.First(&material, "id = ?", materialID).Error
	if err != nil {
		return models.Material{}, nil, wrap(err)
	}

	var families []models.Family
	err = db.Order("created_at ASC").Find(&families).Error
	if err != nil {
		return models.Material{}, nil, wrap(err)
	}

	suggestions, err := Suggest(material, families, strategy)
	if err != nil {
		return models.Material{}, nil, err
	}

	return material, suggestions, nil
}
