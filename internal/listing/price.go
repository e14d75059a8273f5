package listing

import "github.com/wheelmarket/wheelmarket/internal/models"

// bestPriceRatio: a listing is "best price" at or below this share of the
// comparable mean.
const bestPriceRatio = 0.9

// IsBestPrice reports whether v undercuts its market segment: priced at no
// more than 90% of the mean of active same-make/same-model listings within
// ±2 model years, excluding v itself. An empty comparison set yields false.
func IsBestPrice(v models.VehicleRecord, all []models.VehicleRecord) bool {
	var sum float64
	var n int

	for _, other := range all {
		if other.ID == v.ID {
			continue
		}
		if other.ListingStatus != models.StatusActive {
			continue
		}
		if other.Make != v.Make || other.Model != v.Model {
			continue
		}
		if other.Year < v.Year-2 || other.Year > v.Year+2 {
			continue
		}
		sum += other.Price
		n++
	}

	if n == 0 {
		return false
	}
	return v.Price <= sum/float64(n)*bestPriceRatio
}
