package models

import "time"

// BoQEstimate is a persisted snapshot of one BoQ computation: the inputs, the
// headline figures, and the full result for later retrieval. Snapshots are
// immutable once saved; recomputing with the same inputs against an edited
// catalog may legitimately differ from the stored result.
type BoQEstimate struct {
	ID         string    `json:"id" db:"id"`
	Name       *string   `json:"name,omitempty" db:"name"`
	Rating     Rating    `json:"rating" db:"rating"`
	UnitMix    UnitMix   `json:"unit_mix"`
	GrandTotal float64   `json:"grand_total" db:"grand_total"`
	CostPerKey float64   `json:"cost_per_key" db:"cost_per_key"`
	Result     *BoQ      `json:"result,omitempty"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
