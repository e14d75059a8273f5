package listing

import "github.com/wheelmarket/wheelmarket/internal/models"

// AuditSellerReferences returns the ids of listings whose sellerEmail does
// not resolve to any known account. Referential integrity between the two
// collections is checked, not enforced; callers decide what to do with the
// dangling ids. Listings without a seller email are skipped.
func AuditSellerReferences(vehicles []models.VehicleRecord, users []models.UserRecord) []int64 {
	known := make(map[string]struct{}, len(users))
	for _, u := range users {
		known[models.EmailKey(u.Email)] = struct{}{}
	}

	var dangling []int64
	for _, v := range vehicles {
		if v.SellerEmail == "" {
			continue
		}
		if _, ok := known[models.EmailKey(v.SellerEmail)]; !ok {
			dangling = append(dangling, v.ID)
		}
	}
	return dangling
}
