package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MaterialCategory string

const (
	CategoryStapleFood     MaterialCategory = "Staple Food"
	CategoryPerishable     MaterialCategory = "Perishable"
	CategorySpecialItems   MaterialCategory = "Special Items"
	CategoryReliefSupplies MaterialCategory = "Relief Supplies"
	CategoryOthers         MaterialCategory = "Others"
)

// MaterialCategories lists all valid categories in display order.
var MaterialCategories = []MaterialCategory{
	CategoryStapleFood,
	CategoryPerishable,
	CategorySpecialItems,
	CategoryReliefSupplies,
	CategoryOthers,
}

type Unit string

const (
	UnitKilogram Unit = "kg"
	UnitLiter    Unit = "L"
	UnitUnits    Unit = "units"
	UnitBoxes    Unit = "boxes"
)

var Units = []Unit{UnitKilogram, UnitLiter, UnitUnits, UnitBoxes}

// Material is a trackable inventory item.
type Material struct {
	DefaultModel
	Name               string
	Category           MaterialCategory
	SKU                string          `gorm:"uniqueIndex"`
	Unit               Unit            `gorm:"type:varchar(8)"`
	CurrentQuantity    decimal.Decimal `gorm:"type:DECIMAL(20,8);not null;default:0"`
	AverageMonthlyNeed decimal.Decimal `gorm:"type:DECIMAL(20,8);not null;default:0"`
	ExpiringAt         *time.Time
}

func (m Material) Self() string {
	return "Material"
}

// BeforeSave normalizes and validates the material.
func (m *Material) BeforeSave(_ *gorm.DB) error {
	m.Name = strings.TrimSpace(m.Name)
	m.SKU = strings.ToUpper(strings.TrimSpace(m.SKU))

	if m.Name == "" {
		return ErrMaterialNameEmpty
	}

	if m.SKU == "" {
		return ErrMaterialSKUEmpty
	}

	if !validCategory(m.Category) {
		return ErrMaterialCategoryInvalid
	}

	if !validUnit(m.Unit) {
		return ErrMaterialUnitInvalid
	}

	if m.CurrentQuantity.IsNegative() {
		return ErrMaterialQuantityNegative
	}

	if m.AverageMonthlyNeed.IsNegative() {
		return ErrMaterialNeedNegative
	}

	if m.ExpiringAt != nil {
		t := m.ExpiringAt.In(time.UTC)
		m.ExpiringAt = &t
	}

	return nil
}

func validCategory(c MaterialCategory) bool {
	for _, v := range MaterialCategories {
		if v == c {
			return true
		}
	}
	return false
}

func validUnit(u Unit) bool {
	for _, v := range Units {
		if v == u {
			return true
		}
	}
	return false
}
