package models

// Rating is a hotel star rating, 1 through 5. It is the single selector
// driving requirement lookup and quality/cost scaling.
type Rating int

const (
	MinRating Rating = 1
	MaxRating Rating = 5
)

// IsValid reports whether r is within the supported 1..5 range.
func (r Rating) IsValid() bool {
	return r >= MinRating && r <= MaxRating
}

// AllRatings lists the supported star ratings in ascending order.
func AllRatings() []Rating {
	return []Rating{1, 2, 3, 4, 5}
}

// Category is the coarse grouping of a classification requirement.
type Category string

const (
	CategoryBuilding     Category = "building"
	CategoryReception    Category = "reception"
	CategoryRoom         Category = "room"
	CategoryKitchen      Category = "kitchen"
	CategoryBath         Category = "bath"
	CategoryFoodBeverage Category = "food_beverage"
	CategoryConferences  Category = "conferences"
	CategoryRecreation   Category = "recreation"
	CategoryServices     Category = "services"
	CategorySafety       Category = "safety"
	CategoryQuality      Category = "quality"
)

// AllCategories lists every known category in display order.
func AllCategories() []Category {
	return []Category{
		CategoryBuilding, CategoryReception, CategoryRoom, CategoryKitchen,
		CategoryBath, CategoryFoodBeverage, CategoryConferences,
		CategoryRecreation, CategoryServices, CategorySafety, CategoryQuality,
	}
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// CalculationRule selects how the total required quantity of an item is
// derived from the unit mix.
type CalculationRule string

const (
	RuleFixed         CalculationRule = "fixed"             // one-off/central asset
	RulePerUnit       CalculationRule = "per_unit"          // every unit gets one
	RulePerStandard   CalculationRule = "per_standard_room" // single/double/twin only
	RulePerSingleBed  CalculationRule = "per_single_bed"    // single-bed topology (twin has two)
	RulePerKingBed    CalculationRule = "per_king_bed"      // double/suite/vip
	RulePerGuest      CalculationRule = "per_guest_capacity"
	RulePerBedroom    CalculationRule = "per_bedroom"
	RulePerBathroom   CalculationRule = "per_bathroom"
	RulePerSuiteVip   CalculationRule = "per_suite_vip"
	RulePerStaff      CalculationRule = "per_staff"
)

// Asset classes for BoQ items.
const (
	ItemTypeFFE      = "ffe"      // Furniture, Fixtures & Equipment
	ItemTypeOSE      = "ose"      // Operating Supplies & Equipment
	ItemTypeServices = "services" // service charges, not physical goods
)

// LocalizedText carries the Arabic and English variants of a display string.
type LocalizedText struct {
	AR string `json:"ar"`
	EN string `json:"en"`
}

// In returns the variant for the given language code, defaulting to English.
func (t LocalizedText) In(lang string) string {
	if lang == "ar" {
		return t.AR
	}
	return t.EN
}

// StandardItem is a single classification requirement/equipment line.
// The engine treats it as immutable input; the localized text fields are the
// only parts the presentation layer may edit, and they never affect any
// quantity or cost arithmetic.
type StandardItem struct {
	ID          string        `json:"id" db:"id"`
	Category    Category      `json:"category" db:"category"`
	SubCategory string        `json:"sub_category,omitempty" db:"sub_category"`
	Title       LocalizedText `json:"title"`
	Description LocalizedText `json:"description"`
	Citation    string        `json:"citation" db:"citation"`

	// MandatoryFor is the set of ratings at which the item is a compliance
	// requirement rather than optional/bonus. Expanded from a single
	// minimum-rating threshold at catalog construction time.
	MandatoryFor []Rating `json:"mandatory_for"`
	Points       int      `json:"points" db:"points"`

	// RequirementByRating holds the per-rating requirement descriptor,
	// positional: index 0 = 1-star .. index 4 = 5-star. Free text, possibly
	// with a leading numeric quantity ("3 sets"), or a not-required marker
	// ("", "-", "0"-prefixed).
	RequirementByRating [5]string `json:"requirement_by_rating"`

	HasCost  bool    `json:"has_cost" db:"has_cost"`
	BaseCost float64 `json:"base_cost" db:"base_cost"`

	CalcRule CalculationRule `json:"calc_rule" db:"calc_rule"`
	ItemType string          `json:"item_type" db:"item_type"`

	// SpecsByRating is display-only material/spec text per rating.
	SpecsByRating map[Rating]LocalizedText `json:"specs_by_rating,omitempty"`
}

// Requirement returns the raw requirement descriptor for the given rating,
// or the empty string (the not-required marker) for an out-of-range rating.
func (i *StandardItem) Requirement(r Rating) string {
	if !r.IsValid() {
		return ""
	}
	return i.RequirementByRating[r-1]
}

// Spec returns the material/spec text for the given rating, if any.
func (i *StandardItem) Spec(r Rating) (LocalizedText, bool) {
	spec, ok := i.SpecsByRating[r]
	return spec, ok
}

// IsMandatoryAt reports whether the item is a compliance requirement at r.
func (i *StandardItem) IsMandatoryAt(r Rating) bool {
	for _, m := range i.MandatoryFor {
		if m == r {
			return true
		}
	}
	return false
}

// ExpandMandatory turns a minimum mandatory-rating threshold into the full
// set of ratings the item is mandatory for. A threshold of 0 means the item
// is never mandatory (bonus only).
func ExpandMandatory(minRating int) []Rating {
	if minRating <= 0 {
		return nil
	}
	var out []Rating
	for _, r := range AllRatings() {
		if int(r) >= minRating {
			out = append(out, r)
		}
	}
	return out
}

// UnitMix is the hotel's room configuration: counts per room archetype.
// Counts are clamped to be non-negative at every mutation boundary, so the
// engine may assume they are.
type UnitMix struct {
	Single int `json:"single"` // 1 single bed
	Double int `json:"double"` // 1 king bed
	Twin   int `json:"twin"`   // 2 single beds
	Suite  int `json:"suite"`  // 1 king bed + living area
	Vip    int `json:"vip"`    // 1 king bed + upgraded amenities
}

// Clamped returns a copy of the mix with every negative count raised to 0.
func (m UnitMix) Clamped() UnitMix {
	clamp := func(n int) int {
		if n < 0 {
			return 0
		}
		return n
	}
	return UnitMix{
		Single: clamp(m.Single),
		Double: clamp(m.Double),
		Twin:   clamp(m.Twin),
		Suite:  clamp(m.Suite),
		Vip:    clamp(m.Vip),
	}
}

// TotalUnits is the derived total key count. Never stored independently.
func (m UnitMix) TotalUnits() int {
	return m.Single + m.Double + m.Twin + m.Suite + m.Vip
}

// StandardRooms counts non-suite units (single/double/twin).
func (m UnitMix) StandardRooms() int {
	return m.Single + m.Double + m.Twin
}

// SingleBeds counts beds with single topology; a twin room has two.
func (m UnitMix) SingleBeds() int {
	return m.Single + 2*m.Twin
}

// KingBeds counts king-bed units (double/suite/vip).
func (m UnitMix) KingBeds() int {
	return m.Double + m.Suite + m.Vip
}

// GuestCapacity is total sleeping capacity; every archetype except single
// sleeps two guests.
func (m UnitMix) GuestCapacity() int {
	return m.Single + 2*(m.Double+m.Twin+m.Suite+m.Vip)
}

// SuiteVip counts the premium units.
func (m UnitMix) SuiteVip() int {
	return m.Suite + m.Vip
}
