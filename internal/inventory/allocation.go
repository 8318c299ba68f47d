package inventory

import (
	"github.com/fairshare-aid/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Strategy string

const (
	StrategyEqual    Strategy = "equal"
	StrategyPriority Strategy = "priority"
)

// Suggestion is the proposed quantity of a material for one family.
type Suggestion struct {
	FamilyID      uuid.UUID       `json:"familyId" example:"9a0f7ea5-0b4e-4b33-9a4a-9d2f6ea3a6b1"`
	FamilyName    string          `json:"familyName" example:"Haddad"`
	Quantity      decimal.Decimal `json:"quantity" example:"33"`
	FamilySize    int             `json:"familySize" example:"5"`
	Vulnerability int             `json:"vulnerability" example:"3"`
	SpecialNeeds  []string        `json:"specialNeeds"`
}

// Suggest splits the current quantity of the material between the families.
//
// Quantities are always rounded down, the remainder stays in stock. The
// order of the suggestions is the order of the families passed in.
// Nothing is persisted.
func Suggest(material models.Material, families []models.Family, strategy Strategy) ([]Suggestion, error) {
	if len(families) == 0 {
		return nil, ErrNoFamilies
	}

	var quantity func(f models.Family) decimal.Decimal

	switch strategy {
	case StrategyEqual:
		share, _ := material.CurrentQuantity.QuoRem(decimal.NewFromInt(int64(len(families))), 0)
		quantity = func(models.Family) decimal.Decimal {
			return share
		}

	case StrategyPriority:
		total := decimal.Zero
		for _, f := range families {
			total = total.Add(weight(f))
		}

		quantity = func(f models.Family) decimal.Decimal {
			if !total.IsPositive() {
				return decimal.Zero
			}

			share, _ := weight(f).Mul(material.CurrentQuantity).QuoRem(total, 0)
			return share
		}

	default:
		return nil, ErrInvalidStrategy
	}

	suggestions := make([]Suggestion, 0, len(families))
	for _, f := range families {
		needs := []string(f.SpecialNeeds)
		if needs == nil {
			needs = []string{}
		}

		suggestions = append(suggestions, Suggestion{
			FamilyID:      f.ID,
			FamilyName:    f.Name,
			Quantity:      quantity(f),
			FamilySize:    f.FamilySize,
			Vulnerability: f.Vulnerability,
			SpecialNeeds:  needs,
		})
	}

	return suggestions, nil
}

// weight is the priority weight of a family.
func weight(f models.Family) decimal.Decimal {
	return decimal.NewFromInt(int64(f.FamilySize + f.Vulnerability))
}
