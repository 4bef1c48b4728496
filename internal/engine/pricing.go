package engine

import "hotel_standards_backend/internal/models"

// UnitPrice is the rating-adjusted price of one unit of an item: the 1-star
// base cost scaled by the quality multiplier. Items flagged hasCost=false
// contribute nothing to any cost column.
func UnitPrice(item *models.StandardItem, rating models.Rating, cfg Config) float64 {
	if !item.HasCost || item.BaseCost <= 0 {
		return 0
	}
	return item.BaseCost * cfg.Multiplier(rating)
}

// LineCost is the total cost of one BoQ line: unit price times quantity.
func LineCost(item *models.StandardItem, rating models.Rating, quantity int, cfg Config) float64 {
	if quantity <= 0 {
		return 0
	}
	return UnitPrice(item, rating, cfg) * float64(quantity)
}
