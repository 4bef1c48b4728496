package engine

import "hotel_standards_backend/internal/models"

// BuildBoQ runs the full pipeline over a catalog: resolve quantities, price
// every line, group lines into sections, and sum subtotals into the grand
// total and cost per key.
//
// A line is included iff the item participates in costing (hasCost) and its
// resolved quantity is positive; sections that end up with no qualifying
// lines are omitted entirely. Output ordering is fixed (section order, then
// catalog declaration order within a section), so identical inputs always
// produce structurally identical output.
func BuildBoQ(catalog []models.StandardItem, rating models.Rating, mix models.UnitMix, cfg Config) models.BoQ {
	mix = mix.Clamped()

	lines := make(map[models.SectionKey][]models.BoQLine)
	for i := range catalog {
		item := &catalog[i]
		if !item.HasCost {
			continue
		}
		quantity := ResolveQuantity(item, rating, mix, cfg)
		if quantity == 0 {
			continue
		}
		key, ok := SectionFor(item.Category, item.SubCategory)
		if !ok {
			// Unroutable items are a catalog authoring error surfaced by
			// ValidateRouting; skipping here keeps the pass total.
			continue
		}
		unitPrice := UnitPrice(item, rating, cfg)
		lines[key] = append(lines[key], models.BoQLine{
			Item:        item,
			Requirement: item.Requirement(rating),
			Quantity:    quantity,
			UnitPrice:   unitPrice,
			LineCost:    unitPrice * float64(quantity),
		})
	}

	boq := models.BoQ{
		Rating:     rating,
		UnitMix:    mix,
		TotalUnits: mix.TotalUnits(),
		Sections:   []models.BoQSection{},
	}
	for _, key := range sectionOrder {
		sectionLines := lines[key]
		if len(sectionLines) == 0 {
			continue
		}
		var subtotal float64
		for _, line := range sectionLines {
			subtotal += line.LineCost
		}
		boq.Sections = append(boq.Sections, models.BoQSection{
			SectionKey: key,
			Label:      SectionLabel(key),
			Items:      sectionLines,
			Subtotal:   subtotal,
		})
		boq.GrandTotal += subtotal
	}

	if boq.TotalUnits > 0 {
		boq.CostPerKey = boq.GrandTotal / float64(boq.TotalUnits)
	}
	return boq
}
