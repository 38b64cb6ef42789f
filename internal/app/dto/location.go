package dto

import "github.com/ijalalfrz/tequila-client/pkg/tequila"

// LocationResponse is the Tequila result plus whether it was served from the
// cache.
type LocationResponse struct {
	tequila.LocationQueryResult
	CacheHit bool `json:"cache_hit"`
}
