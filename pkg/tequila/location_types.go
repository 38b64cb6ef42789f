package tequila

import "encoding/json"

// LocationOptions are the output options shared by every Locations API call.
type LocationOptions struct {
	// Locale of the names in the output; en-US is used for unknown locales.
	Locale LanguageCode `json:"locale,omitempty" url:"locale,omitempty"`
	// Limit defaults to 10 remotely.
	Limit *int `json:"limit,omitempty" url:"limit,omitempty" validate:"omitempty,gte=1"`
	// ActiveOnly defaults to true remotely.
	ActiveOnly *bool `json:"active_only,omitempty" url:"active_only,omitempty"`
	// Sort is "name" for A->Z and "-name" for Z->A.
	Sort string `json:"sort,omitempty" url:"sort,omitempty"`
}

// SearchByQueryParams is used mainly for suggestions based on incomplete names.
type SearchByQueryParams struct {
	// Term expects a full IATA code; otherwise id, name and code are matched.
	Term          string         `json:"term" url:"term" validate:"required"`
	LocationTypes []LocationType `json:"location_types,omitempty" url:"location_types,omitempty"`
	LocationOptions
}

// SearchByRadiusParams searches around coordinates or around a location
// identified by Term. Coordinates and Term cannot be combined.
type SearchByRadiusParams struct {
	Lat  string `json:"lat,omitempty" url:"lat,omitempty"`
	Lon  string `json:"lon,omitempty" url:"lon,omitempty"`
	Term string `json:"term,omitempty" url:"term,omitempty"`
	// Radius in km, 250 when omitted.
	Radius        *int           `json:"radius,omitempty" url:"radius,omitempty" validate:"omitempty,gte=1"`
	LocationTypes []LocationType `json:"location_types,omitempty" url:"location_types,omitempty"`
	LocationOptions
}

// SearchByBoxParams searches within a box given by its south-west (low) and
// north-east (high) corners.
type SearchByBoxParams struct {
	LowLat        string         `json:"low_lat" url:"low_lat" validate:"required"`
	LowLon        string         `json:"low_lon" url:"low_lon" validate:"required"`
	HighLat       string         `json:"high_lat" url:"high_lat" validate:"required"`
	HighLon       string         `json:"high_lon" url:"high_lon" validate:"required"`
	LocationTypes []LocationType `json:"location_types,omitempty" url:"location_types,omitempty"`
	LocationOptions
}

// SearchByIDParams looks up exact IATA or ISO 3166 codes. Every id is sent
// as a separate id parameter.
type SearchByIDParams struct {
	ID []string `json:"id" url:"id" validate:"required,min=1"`
	LocationOptions
}

// GetDumpParams pages through the whole location dataset.
//
// The first request is sent without SearchAfter. Each response carries a
// search_after cursor; pass it back verbatim to get the next page. Sorting by
// id keeps the pages consistent.
type GetDumpParams struct {
	SearchAfter []string `json:"search_after,omitempty" url:"search_after,omitempty"`
	LocationOptions
}

// TopDestinationsParams lists destinations most searched, clicked or booked
// from Term.
type TopDestinationsParams struct {
	Term             []string         `json:"term" url:"term" validate:"required,min=1"`
	SourcePopularity PopularitySource `json:"source_popularity,omitempty" url:"source_popularity,omitempty"`
	LocationOptions
}

// SearchByHashtagParams lists locations tagged with Hashtag, optionally
// inside the location Term and valid in the given months.
type SearchByHashtagParams struct {
	Hashtag          string           `json:"hashtag" url:"hashtag" validate:"required"`
	Term             string           `json:"term,omitempty" url:"term,omitempty"`
	Month            []int            `json:"month,omitempty" url:"month,omitempty" validate:"omitempty,dive,min=1,max=12"`
	SourcePopularity PopularitySource `json:"source_popularity,omitempty" url:"source_popularity,omitempty"`
	LocationOptions
}

// TopHashtagsParams lists hashtags of the destinations popular from Term.
type TopHashtagsParams struct {
	Term               []string         `json:"term" url:"term" validate:"required,min=1"`
	SourcePopularity   PopularitySource `json:"source_popularity,omitempty" url:"source_popularity,omitempty"`
	FallbackPopularity PopularitySource `json:"fallback_popularity,omitempty" url:"fallback_popularity,omitempty"`
	LocationOptions
}

// SearchBySlugParams looks up a location by its exact slug,
// e.g. "albany-new-york-united-states".
type SearchBySlugParams struct {
	Term string `json:"term" url:"term" validate:"required"`
	LocationOptions
}

// LocationQueryResult is returned by every Locations API call.
type LocationQueryResult struct {
	Locations        []Location   `json:"locations"`
	Meta             LocationMeta `json:"meta"`
	LastRefresh      int64        `json:"last_refresh"`
	ResultsRetrieved int          `json:"results_retrieved"`
	// SearchAfter is the cursor of the next dump page.
	SearchAfter []string `json:"search_after,omitempty"`
}

type LocationMeta struct {
	Locale struct {
		Code   string `json:"code"`
		Status string `json:"status"`
	} `json:"locale"`
}

type Location struct {
	ID                         string           `json:"id"`
	IntID                      int64            `json:"int_id"`
	AirportIntID               int64            `json:"airport_int_id"`
	Active                     bool             `json:"active"`
	Code                       string           `json:"code"`
	ICAO                       string           `json:"icao"`
	Name                       string           `json:"name"`
	Slug                       string           `json:"slug"`
	SlugEn                     string           `json:"slug_en"`
	AlternativeNames           []string         `json:"alternative_names"`
	Rank                       int              `json:"rank"`
	GlobalRankDst              int              `json:"global_rank_dst"`
	DstPopularityScore         float64          `json:"dst_popularity_score"`
	Timezone                   string           `json:"timezone"`
	City                       *LocationCity    `json:"city,omitempty"`
	Location                   Coordinates      `json:"location"`
	AlternativeDeparturePoints []DeparturePoint `json:"alternative_departure_points"`
	Tags                       []LocationTag    `json:"tags"`
	Providers                  []int            `json:"providers"`
	Special                    []Area           `json:"special"`
	TouristRegion              []Area           `json:"tourist_region"`
	CarRentals                 []CarRental      `json:"car_rentals"`
	NewGround                  bool             `json:"new_ground"`
	RoutingPriority            int              `json:"routing_priority"`
	Type                       LocationType     `json:"type"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type LocationCity struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Slug        string    `json:"slug"`
	Subdivision *CodeArea `json:"subdivision,omitempty"`
	// AutonomousTerritory and NearbyCountry are null, a code or an area
	// depending on the location.
	AutonomousTerritory json.RawMessage `json:"autonomous_territory,omitempty"`
	Continent           CodeArea        `json:"continent"`
	Country             CodeArea        `json:"country"`
	NearbyCountry       json.RawMessage `json:"nearby_country,omitempty"`
	Region              Area            `json:"region"`
}

// Area is a named region such as a tourist region or a special place.
type Area struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CodeArea is an Area that also has a code, e.g. a country.
type CodeArea struct {
	Area
	Code string `json:"code"`
}

type DeparturePoint struct {
	ID       string  `json:"id"`
	Distance float64 `json:"distance"`
	Duration float64 `json:"duration"`
}

type LocationTag struct {
	Tag       string `json:"tag"`
	MonthTo   int    `json:"month_to"`
	MonthFrom int    `json:"month_from"`
}

type CarRental struct {
	ProviderID         int      `json:"provider_id"`
	ProvidersLocations []string `json:"providers_locations"`
}
