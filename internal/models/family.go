package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Family is a registered beneficiary household.
type Family struct {
	DefaultModel
	Name               string
	FamilySize         int
	Area               string
	SpecialNeeds       datatypes.JSONSlice[string]
	Vulnerability      int // Derived from FamilySize and SpecialNeeds on every save
	LastDistributionAt *time.Time
}

func (f Family) Self() string {
	return "Family"
}

// BeforeSave validates the family, flattens the special needs and
// recomputes the vulnerability score.
//
// When only some columns are updated, the hook still sees the full
// struct since updates are always done with a loaded model.
func (f *Family) BeforeSave(_ *gorm.DB) error {
	f.Name = strings.TrimSpace(f.Name)
	f.Area = strings.TrimSpace(f.Area)

	if f.Name == "" {
		return ErrFamilyNameEmpty
	}

	if f.Area == "" {
		return ErrFamilyAreaEmpty
	}

	if f.FamilySize < 1 {
		return ErrFamilySizeInvalid
	}

	f.SpecialNeeds = SplitSpecialNeeds(f.SpecialNeeds)
	f.Vulnerability = ScoreVulnerability(f.FamilySize, f.SpecialNeeds)

	if f.LastDistributionAt != nil {
		t := f.LastDistributionAt.In(time.UTC)
		f.LastDistributionAt = &t
	}

	return nil
}
