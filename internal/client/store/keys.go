package store

import "strings"

// Conceptual cache keys. All access goes through the Store/DataService
// accessors; nothing else should touch these.
const (
	KeySession      = "currentUser"
	KeyVehicles     = "vehicles"
	KeyUsers        = "users"
	KeyTaxonomy     = "vehicleData"
	KeyComparison   = "comparisonList"
	KeyPriceHistory = "priceHistory"
	KeyPhoneViews   = "phoneViewCounts"
	KeyShareCounts  = "shareCounts"

	// KeyPendingSync tracks which collections have local-only modifications
	// awaiting reconciliation.
	KeyPendingSync = "pendingSync"

	wishlistPrefix    = "wishlist:"
	savedSearchPrefix = "savedSearches:"
)

// WishlistKey returns the per-user wishlist cache key.
func WishlistKey(email string) string {
	return wishlistPrefix + strings.ToLower(email)
}

// SavedSearchesKey returns the per-user saved-searches cache key.
func SavedSearchesKey(email string) string {
	return savedSearchPrefix + strings.ToLower(email)
}

// essential keys survive quota pruning: losing the session, a wishlist, or
// the comparison list is user-visible; losing a collection cache is not (it
// re-seeds or re-fetches).
func essential(key string) bool {
	if key == KeySession || key == KeyComparison {
		return true
	}
	return strings.HasPrefix(key, wishlistPrefix)
}
