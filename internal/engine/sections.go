package engine

import (
	"fmt"
	"strings"

	"hotel_standards_backend/internal/models"
)

// sectionOrder fixes the display order of BoQ sections. Aggregation output
// follows this order regardless of catalog layout, so results are stable
// across runs.
var sectionOrder = []models.SectionKey{
	models.SectionReception,
	models.SectionRoom,
	models.SectionCentralKitchen,
	models.SectionUnitKitchen,
	models.SectionBath,
	models.SectionRestaurant,
	models.SectionCoffeeShop,
	models.SectionRoomService,
	models.SectionConferences,
	models.SectionRecreation,
	models.SectionBuilding,
	models.SectionSafety,
	models.SectionServices,
	models.SectionQuality,
}

// sectionLabels holds the localized display label of each section.
var sectionLabels = map[models.SectionKey]models.LocalizedText{
	models.SectionReception:      {AR: "الاستقبال والبهو", EN: "Reception & Lobby"},
	models.SectionRoom:           {AR: "تجهيزات الغرف (FF&E/OS&E)", EN: "Room Equipment"},
	models.SectionCentralKitchen: {AR: "المطبخ المركزي", EN: "Central Kitchen"},
	models.SectionUnitKitchen:    {AR: "مطابخ الوحدات", EN: "In-Unit Kitchenettes"},
	models.SectionBath:           {AR: "الحمامات والمستلزمات", EN: "Bath & Amenities"},
	models.SectionRestaurant:     {AR: "المطعم الرئيسي", EN: "Main Restaurant"},
	models.SectionCoffeeShop:     {AR: "المقهى", EN: "Coffee Shop"},
	models.SectionRoomService:    {AR: "خدمة الغرف", EN: "Room Service"},
	models.SectionConferences:    {AR: "المؤتمرات والاجتماعات", EN: "Conferences & Meetings"},
	models.SectionRecreation:     {AR: "الترفيه والصحة", EN: "Recreation & Health"},
	models.SectionBuilding:       {AR: "تجهيزات المبنى والمصاعد", EN: "Building & Elevators"},
	models.SectionSafety:         {AR: "الأنظمة والأمن", EN: "Systems & Security"},
	models.SectionServices:       {AR: "الخدمات", EN: "Services"},
	models.SectionQuality:        {AR: "الجودة", EN: "Quality"},
}

// sectionRouting maps (category, subCategory) to exactly one section. The
// empty sub-category key is the category's default bucket; named keys split
// the category. Because the table is exhaustive per category, an item can
// never land in two sections, which is what previously required
// filter-then-subtract exclusion lists.
var sectionRouting = map[models.Category]map[string]models.SectionKey{
	models.CategoryBuilding:  {"": models.SectionBuilding},
	models.CategoryReception: {"": models.SectionReception},
	models.CategoryRoom:      {"": models.SectionRoom},
	models.CategoryKitchen: {
		"":                models.SectionCentralKitchen,
		"central_kitchen": models.SectionCentralKitchen,
		"unit_kitchen":    models.SectionUnitKitchen,
	},
	models.CategoryBath: {"": models.SectionBath},
	models.CategoryFoodBeverage: {
		"":             models.SectionRestaurant,
		"restaurant":   models.SectionRestaurant,
		"coffee_shop":  models.SectionCoffeeShop,
		"room_service": models.SectionRoomService,
	},
	models.CategoryConferences: {"": models.SectionConferences},
	models.CategoryRecreation:  {"": models.SectionRecreation},
	models.CategoryServices:    {"": models.SectionServices},
	models.CategorySafety:      {"": models.SectionSafety},
	models.CategoryQuality:     {"": models.SectionQuality},
}

// SectionFor resolves the section an item belongs to. A sub-category without
// a named entry falls back to the category's default bucket. The second
// return value is false only for an unknown category.
func SectionFor(category models.Category, subCategory string) (models.SectionKey, bool) {
	routes, ok := sectionRouting[category]
	if !ok {
		return "", false
	}
	if key, ok := routes[subCategory]; ok {
		return key, true
	}
	return routes[""], true
}

// SectionLabel returns the localized label of a section.
func SectionLabel(key models.SectionKey) models.LocalizedText {
	return sectionLabels[key]
}

// ValidateRouting checks that every catalog item resolves to a section.
// Run it at startup and in tests so a catalog authoring mistake fails loudly
// instead of silently dropping items into a generic bucket.
func ValidateRouting(catalog []models.StandardItem) error {
	var bad []string
	for i := range catalog {
		if _, ok := SectionFor(catalog[i].Category, catalog[i].SubCategory); !ok {
			bad = append(bad, fmt.Sprintf("%s (category %q)", catalog[i].ID, catalog[i].Category))
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("catalog items map to no BoQ section: %s", strings.Join(bad, ", "))
	}
	return nil
}
