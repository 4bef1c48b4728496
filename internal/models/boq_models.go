package models

// SectionKey identifies one named section of the bill of quantities.
// Sections refine categories: most categories map to a single section, while
// kitchen and food_beverage are split by sub-category.
type SectionKey string

const (
	SectionBuilding       SectionKey = "building"
	SectionReception      SectionKey = "reception"
	SectionRoom           SectionKey = "room"
	SectionCentralKitchen SectionKey = "central_kitchen"
	SectionUnitKitchen    SectionKey = "unit_kitchen"
	SectionBath           SectionKey = "bath"
	SectionRestaurant     SectionKey = "restaurant"
	SectionCoffeeShop     SectionKey = "coffee_shop"
	SectionRoomService    SectionKey = "room_service"
	SectionConferences    SectionKey = "conferences"
	SectionRecreation     SectionKey = "recreation"
	SectionServices       SectionKey = "services"
	SectionSafety         SectionKey = "safety"
	SectionQuality        SectionKey = "quality"
)

// BoQLine is one priced line of the bill of quantities.
type BoQLine struct {
	Item        *StandardItem `json:"item"`
	Requirement string        `json:"requirement"` // raw per-rating descriptor, for the "basis" column
	Quantity    int           `json:"quantity"`
	UnitPrice   float64       `json:"unit_price"`
	LineCost    float64       `json:"line_cost"`
}

// BoQSection groups priced lines under one section with its subtotal.
type BoQSection struct {
	SectionKey SectionKey    `json:"section_key"`
	Label      LocalizedText `json:"label"`
	Items      []BoQLine     `json:"items"`
	Subtotal   float64       `json:"subtotal"`
}

// BoQ is the full bill-of-quantities view model for one (catalog, rating,
// unit mix) computation. It is freshly constructed on every call and holds
// no references back into engine state.
type BoQ struct {
	Rating     Rating       `json:"rating"`
	UnitMix    UnitMix      `json:"unit_mix"`
	TotalUnits int          `json:"total_units"`
	Sections   []BoQSection `json:"sections"`
	GrandTotal float64      `json:"grand_total"`
	// CostPerKey is GrandTotal / TotalUnits, and 0 when TotalUnits is 0.
	CostPerKey float64 `json:"cost_per_key"`
}
