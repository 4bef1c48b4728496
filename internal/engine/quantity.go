package engine

import (
	"math"

	"hotel_standards_backend/internal/models"
)

// ResolveQuantity computes the total required quantity of an item for one
// rating and unit mix. The result is always >= 0.
//
// The not-required marker in the rating's requirement descriptor wins over
// every rule. Otherwise the first numeric token of the descriptor (default 1)
// is multiplied by the rule's unit-mix-derived count, and fractional totals
// are rounded up because items are discrete equipment.
//
// Unknown calculation rules fall back to per_unit rather than failing, so a
// partially authored catalog never breaks the aggregation pass.
func ResolveQuantity(item *models.StandardItem, rating models.Rating, mix models.UnitMix, cfg Config) int {
	raw := item.Requirement(rating)
	if IsNotRequired(raw) {
		return 0
	}
	base := ExtractMultiplier(raw)

	var total float64
	switch item.CalcRule {
	case models.RuleFixed:
		total = base
	case models.RulePerStandard:
		total = base * float64(mix.StandardRooms())
	case models.RulePerSingleBed:
		total = base * float64(mix.SingleBeds())
	case models.RulePerKingBed:
		total = base * float64(mix.KingBeds())
	case models.RulePerGuest:
		total = base * float64(mix.GuestCapacity())
	case models.RulePerSuiteVip:
		total = base * float64(mix.SuiteVip())
	case models.RulePerBathroom:
		bathrooms := mix.TotalUnits()
		if cfg.ExtraSuiteBathroom {
			bathrooms += mix.SuiteVip()
		}
		total = base * float64(bathrooms)
	case models.RulePerStaff:
		units := mix.TotalUnits()
		if units == 0 {
			return 0
		}
		staff := math.Ceil(float64(units) / float64(cfg.staffDivisor()))
		total = base * staff
	case models.RulePerUnit, models.RulePerBedroom:
		total = base * float64(mix.TotalUnits())
	default:
		total = base * float64(mix.TotalUnits())
	}

	if total <= 0 {
		return 0
	}
	return int(math.Ceil(total))
}
