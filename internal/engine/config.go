// Package engine implements the BoQ calculation pipeline: quantity
// resolution, rating-dependent pricing, section aggregation, and the score
// threshold lookup. Every exported function is pure and total over its
// documented input domain: no I/O, no shared state, and no error returns —
// malformed catalog data degrades to documented fallbacks instead of failing
// mid-aggregation.
package engine

import "hotel_standards_backend/internal/models"

// DefaultStaffRatioDivisor is the assumed number of keys served per staffing
// unit (trolleys, uniforms). Historical datasets used values between 14 and
// 15; this is a tunable, not a business rule.
const DefaultStaffRatioDivisor = 14

// defaultQualityMultipliers is the default quality/cost curve per star
// rating, index 0 = 1-star. Strictly increasing: luxury material grades get
// significantly more expensive at the top tiers.
var defaultQualityMultipliers = [5]float64{1.0, 1.2, 1.5, 2.2, 3.5}

// Config carries the tunable constants of the engine. The zero value is not
// usable directly; obtain one from DefaultConfig and override fields as
// needed.
type Config struct {
	// QualityMultipliers scales base cost per rating, index 0 = 1-star.
	// Values must be positive and non-decreasing for monotonic pricing.
	QualityMultipliers [5]float64

	// StaffRatioDivisor is the keys-per-staffing-unit ratio used by the
	// per_staff rule.
	StaffRatioDivisor int

	// ExtraSuiteBathroom switches per_bathroom from one bathroom per unit to
	// one per unit plus one extra per suite/vip unit.
	ExtraSuiteBathroom bool
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		QualityMultipliers: defaultQualityMultipliers,
		StaffRatioDivisor:  DefaultStaffRatioDivisor,
	}
}

// Multiplier returns the quality multiplier for the given rating, falling
// back to the 1-star multiplier for out-of-range ratings.
func (c Config) Multiplier(r models.Rating) float64 {
	if !r.IsValid() {
		return c.QualityMultipliers[0]
	}
	return c.QualityMultipliers[r-1]
}

// staffDivisor guards against zero/negative configuration.
func (c Config) staffDivisor() int {
	if c.StaffRatioDivisor <= 0 {
		return DefaultStaffRatioDivisor
	}
	return c.StaffRatioDivisor
}
