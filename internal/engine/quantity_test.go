package engine_test

import (
	"fmt"
	"testing"

	"hotel_standards_backend/internal/engine"
	"hotel_standards_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

// itemWithRule builds a costed item requiring the same descriptor at every
// rating.
func itemWithRule(rule models.CalculationRule, requirement string) *models.StandardItem {
	return &models.StandardItem{
		ID:       fmt.Sprintf("test-%s", rule),
		Category: models.CategoryRoom,
		CalcRule: rule,
		HasCost:  true,
		BaseCost: 100,
		RequirementByRating: [5]string{
			requirement, requirement, requirement, requirement, requirement,
		},
	}
}

var testMix = models.UnitMix{Single: 10, Double: 30, Twin: 15, Suite: 5, Vip: 2}

func TestResolveQuantity_Rules(t *testing.T) {
	cfg := engine.DefaultConfig()
	// testMix: totalUnits=62, standard=55, singleBeds=10+30=40, kingBeds=37,
	// guests=10+2*52=114, suiteVip=7.
	cases := []struct {
		rule models.CalculationRule
		req  string
		want int
	}{
		{models.RuleFixed, "2 units", 2},
		{models.RulePerUnit, "1", 62},
		{models.RulePerStandard, "1", 55},
		{models.RulePerSingleBed, "1", 40},
		{models.RulePerKingBed, "1", 37},
		{models.RulePerGuest, "1", 114},
		{models.RulePerBedroom, "1", 62},
		{models.RulePerBathroom, "1", 62},
		{models.RulePerSuiteVip, "1", 7},
		{models.RulePerStaff, "1", 5}, // ceil(62/14) = 5
		{"made_up_rule", "1", 62},     // unknown rule falls back to per_unit
	}
	for _, tc := range cases {
		got := engine.ResolveQuantity(itemWithRule(tc.rule, tc.req), 3, testMix, cfg)
		assert.Equal(t, tc.want, got, "rule=%s", tc.rule)
	}
}

func TestResolveQuantity_NotRequiredOverridesRule(t *testing.T) {
	cfg := engine.DefaultConfig()
	for _, rule := range []models.CalculationRule{
		models.RuleFixed, models.RulePerUnit, models.RulePerGuest, models.RulePerStaff,
	} {
		for _, marker := range []string{"", "-", "0"} {
			got := engine.ResolveQuantity(itemWithRule(rule, marker), 3, testMix, cfg)
			assert.Zero(t, got, "rule=%s marker=%q", rule, marker)
		}
	}
}

func TestResolveQuantity_EmptyHotel(t *testing.T) {
	cfg := engine.DefaultConfig()
	empty := models.UnitMix{}

	// Only fixed assets survive a zero unit mix.
	assert.Equal(t, 1, engine.ResolveQuantity(itemWithRule(models.RuleFixed, "1 unit"), 3, empty, cfg))
	for _, rule := range []models.CalculationRule{
		models.RulePerUnit, models.RulePerStandard, models.RulePerSingleBed,
		models.RulePerKingBed, models.RulePerGuest, models.RulePerBedroom,
		models.RulePerBathroom, models.RulePerSuiteVip, models.RulePerStaff,
	} {
		assert.Zero(t, engine.ResolveQuantity(itemWithRule(rule, "1"), 3, empty, cfg), "rule=%s", rule)
	}
}

func TestResolveQuantity_BedTypePartition(t *testing.T) {
	cfg := engine.DefaultConfig()
	singleBedItem := itemWithRule(models.RulePerSingleBed, "1")
	kingBedItem := itemWithRule(models.RulePerKingBed, "1")

	onlyDoubles := models.UnitMix{Double: 20}
	assert.Zero(t, engine.ResolveQuantity(singleBedItem, 3, onlyDoubles, cfg))
	assert.Equal(t, 20, engine.ResolveQuantity(kingBedItem, 3, onlyDoubles, cfg))

	onlyTwins := models.UnitMix{Twin: 8}
	assert.Equal(t, 16, engine.ResolveQuantity(singleBedItem, 3, onlyTwins, cfg))
	assert.Zero(t, engine.ResolveQuantity(kingBedItem, 3, onlyTwins, cfg))
}

func TestResolveQuantity_FractionalMultiplierRoundsUp(t *testing.T) {
	cfg := engine.DefaultConfig()
	item := itemWithRule(models.RulePerUnit, "1.5 sets")
	got := engine.ResolveQuantity(item, 3, models.UnitMix{Single: 3}, cfg)
	assert.Equal(t, 5, got) // 1.5 * 3 = 4.5, discrete equipment rounds up
}

func TestResolveQuantity_StaffRatio(t *testing.T) {
	cfg := engine.DefaultConfig()
	item := itemWithRule(models.RulePerStaff, "1")

	// Any non-empty hotel needs at least one staffing unit.
	assert.Equal(t, 1, engine.ResolveQuantity(item, 3, models.UnitMix{Single: 1}, cfg))
	assert.Equal(t, 1, engine.ResolveQuantity(item, 3, models.UnitMix{Single: 14}, cfg))
	assert.Equal(t, 2, engine.ResolveQuantity(item, 3, models.UnitMix{Single: 15}, cfg))

	cfg.StaffRatioDivisor = 10
	assert.Equal(t, 2, engine.ResolveQuantity(item, 3, models.UnitMix{Single: 15}, cfg))
}

func TestResolveQuantity_BathroomVariant(t *testing.T) {
	item := itemWithRule(models.RulePerBathroom, "1")
	mix := models.UnitMix{Double: 10, Suite: 3, Vip: 2}

	cfg := engine.DefaultConfig()
	assert.Equal(t, 15, engine.ResolveQuantity(item, 3, mix, cfg))

	cfg.ExtraSuiteBathroom = true
	assert.Equal(t, 20, engine.ResolveQuantity(item, 3, mix, cfg))
}

func TestResolveQuantity_RatingSwitchesRequirement(t *testing.T) {
	cfg := engine.DefaultConfig()
	item := &models.StandardItem{
		ID:                  "r-kettle",
		Category:            models.CategoryRoom,
		CalcRule:            models.RulePerUnit,
		HasCost:             true,
		BaseCost:            80,
		RequirementByRating: [5]string{"0", "0", "1", "1", "1"},
	}
	mix := models.UnitMix{Single: 50}

	assert.Zero(t, engine.ResolveQuantity(item, 2, mix, cfg))
	assert.Equal(t, 50, engine.ResolveQuantity(item, 3, mix, cfg))
}
