package engine

import "hotel_standards_backend/internal/models"

// MinimumPoints is the minimum point threshold a property must reach for a
// star rating: 1=50, 2=150, 3=250, 4=350, 5=450. Used for the radial score
// display; independent of the catalog.
func MinimumPoints(rating models.Rating) int {
	return int(rating)*100 - 50
}
