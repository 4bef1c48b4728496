package engine_test

import (
	"testing"

	"hotel_standards_backend/internal/engine"
	"hotel_standards_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sameRequirement(req string) [5]string {
	return [5]string{req, req, req, req, req}
}

func testCatalog() []models.StandardItem {
	return []models.StandardItem{
		{
			ID: "rec-sofa", Category: models.CategoryReception,
			CalcRule: models.RuleFixed, HasCost: true, BaseCost: 15000,
			RequirementByRating: sameRequirement("1 set"),
		},
		{
			ID: "r-bed", Category: models.CategoryRoom,
			CalcRule: models.RulePerKingBed, HasCost: true, BaseCost: 2500,
			RequirementByRating: sameRequirement("1"),
		},
		{
			ID: "r-kettle", Category: models.CategoryRoom,
			CalcRule: models.RulePerUnit, HasCost: true, BaseCost: 80,
			RequirementByRating: [5]string{"0", "0", "1", "1", "1"},
		},
		{
			ID: "k-oven", Category: models.CategoryKitchen, SubCategory: "central_kitchen",
			CalcRule: models.RuleFixed, HasCost: true, BaseCost: 40000,
			RequirementByRating: sameRequirement("1"),
		},
		{
			ID: "k-fridge", Category: models.CategoryKitchen, SubCategory: "unit_kitchen",
			CalcRule: models.RulePerSuiteVip, HasCost: true, BaseCost: 1200,
			RequirementByRating: sameRequirement("1"),
		},
		{
			ID: "fb-espresso", Category: models.CategoryFoodBeverage, SubCategory: "coffee_shop",
			CalcRule: models.RuleFixed, HasCost: true, BaseCost: 9000,
			RequirementByRating: [5]string{"-", "-", "-", "1", "1"},
		},
		{
			// Compliance-only line: participates in classification, never in
			// cost aggregation.
			ID: "q-policy", Category: models.CategoryQuality,
			CalcRule: models.RuleFixed, HasCost: false,
			RequirementByRating: sameRequirement("Standard"),
		},
	}
}

func TestBuildBoQ_Additivity(t *testing.T) {
	cfg := engine.DefaultConfig()
	mix := models.UnitMix{Single: 10, Double: 30, Twin: 15, Suite: 5, Vip: 2}
	boq := engine.BuildBoQ(testCatalog(), 4, mix, cfg)

	var sectionSum float64
	for _, section := range boq.Sections {
		var lineSum float64
		for _, line := range section.Items {
			lineSum += line.LineCost
			assert.InDelta(t, line.UnitPrice*float64(line.Quantity), line.LineCost, 1e-9)
		}
		assert.InDelta(t, lineSum, section.Subtotal, 1e-9, "section %s", section.SectionKey)
		sectionSum += section.Subtotal
	}
	assert.InDelta(t, sectionSum, boq.GrandTotal, 1e-9)
	assert.InDelta(t, boq.GrandTotal/float64(mix.TotalUnits()), boq.CostPerKey, 1e-9)
}

func TestBuildBoQ_KingBedScenario(t *testing.T) {
	// 35 king beds at base cost 2500 with a 1.3 multiplier at 3 stars.
	cfg := engine.DefaultConfig()
	cfg.QualityMultipliers = [5]float64{1.0, 1.1, 1.3, 1.8, 2.5}

	catalog := []models.StandardItem{{
		ID: "r-bed", Category: models.CategoryRoom,
		CalcRule: models.RulePerKingBed, HasCost: true, BaseCost: 2500,
		RequirementByRating: sameRequirement("1"),
	}}
	mix := models.UnitMix{Double: 30, Twin: 15, Suite: 5}

	boq := engine.BuildBoQ(catalog, 3, mix, cfg)
	require.Len(t, boq.Sections, 1)
	require.Len(t, boq.Sections[0].Items, 1)

	line := boq.Sections[0].Items[0]
	assert.Equal(t, 35, line.Quantity)
	assert.InDelta(t, 113750, line.LineCost, 1e-9)
	assert.InDelta(t, 113750, boq.GrandTotal, 1e-9)
}

func TestBuildBoQ_ZeroRequirementExcludesItem(t *testing.T) {
	cfg := engine.DefaultConfig()
	mix := models.UnitMix{Single: 50}

	atTwoStars := engine.BuildBoQ(testCatalog(), 2, mix, cfg)
	for _, section := range atTwoStars.Sections {
		for _, line := range section.Items {
			assert.NotEqual(t, "r-kettle", line.Item.ID, "kettle is not required below 3 stars")
		}
	}

	atThreeStars := engine.BuildBoQ(testCatalog(), 3, mix, cfg)
	var kettle *models.BoQLine
	for si := range atThreeStars.Sections {
		for li := range atThreeStars.Sections[si].Items {
			if atThreeStars.Sections[si].Items[li].Item.ID == "r-kettle" {
				kettle = &atThreeStars.Sections[si].Items[li]
			}
		}
	}
	require.NotNil(t, kettle)
	assert.Equal(t, 50, kettle.Quantity)
}

func TestBuildBoQ_EmptyHotel(t *testing.T) {
	cfg := engine.DefaultConfig()
	boq := engine.BuildBoQ(testCatalog(), 3, models.UnitMix{}, cfg)

	assert.Zero(t, boq.TotalUnits)
	assert.Zero(t, boq.CostPerKey, "cost per key must not divide by zero")
	assert.Greater(t, boq.GrandTotal, 0.0, "fixed central assets still cost money")
	for _, section := range boq.Sections {
		for _, line := range section.Items {
			assert.Equal(t, models.RuleFixed, line.Item.CalcRule)
		}
	}
}

func TestBuildBoQ_EmptySectionsOmitted(t *testing.T) {
	cfg := engine.DefaultConfig()
	// No suites/vip: the unit-kitchen section has no qualifying lines and the
	// coffee shop is not required at 3 stars.
	boq := engine.BuildBoQ(testCatalog(), 3, models.UnitMix{Single: 20}, cfg)
	for _, section := range boq.Sections {
		assert.NotEmpty(t, section.Items, "section %s rendered empty", section.SectionKey)
		assert.NotEqual(t, models.SectionUnitKitchen, section.SectionKey)
		assert.NotEqual(t, models.SectionCoffeeShop, section.SectionKey)
	}
}

func TestBuildBoQ_NoCostItemExcluded(t *testing.T) {
	cfg := engine.DefaultConfig()
	boq := engine.BuildBoQ(testCatalog(), 5, models.UnitMix{Single: 20}, cfg)
	for _, section := range boq.Sections {
		assert.NotEqual(t, models.SectionQuality, section.SectionKey)
		for _, line := range section.Items {
			assert.True(t, line.Item.HasCost)
		}
	}
}

func TestBuildBoQ_Deterministic(t *testing.T) {
	cfg := engine.DefaultConfig()
	mix := models.UnitMix{Single: 10, Double: 30, Twin: 15, Suite: 5, Vip: 2}

	first := engine.BuildBoQ(testCatalog(), 4, mix, cfg)
	second := engine.BuildBoQ(testCatalog(), 4, mix, cfg)
	assert.Equal(t, first, second)
}

func TestBuildBoQ_NegativeCountsClamped(t *testing.T) {
	cfg := engine.DefaultConfig()
	boq := engine.BuildBoQ(testCatalog(), 3, models.UnitMix{Single: -5, Double: 10}, cfg)
	assert.Equal(t, 10, boq.TotalUnits)
}
