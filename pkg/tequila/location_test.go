package tequila

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationService_Paths(t *testing.T) {
	f := newFakeTequila(t, http.StatusOK, `{"locations":[]}`)
	locations := newTestClient(t, f, "").Location()
	ctx := context.Background()

	pathRequest := func(call func() error, wantPath string) func(t *testing.T) {
		return func(t *testing.T) {
			require.NoError(t, call())

			got := f.lastRequest(t)
			assert.Equal(t, http.MethodGet, got.Method)
			assert.Equal(t, wantPath, got.Path)
			assert.Empty(t, got.Body)
		}
	}

	t.Run("query", pathRequest(func() error {
		_, err := locations.SearchByQuery(ctx, SearchByQueryParams{Term: "PRG"})
		return err
	}, "locations/query"))

	t.Run("radius", pathRequest(func() error {
		_, err := locations.SearchByRadius(ctx, SearchByRadiusParams{Term: "PRG"})
		return err
	}, "locations/radius"))

	t.Run("box", pathRequest(func() error {
		_, err := locations.SearchByBox(ctx, SearchByBoxParams{LowLat: "1", LowLon: "2", HighLat: "3", HighLon: "4"})
		return err
	}, "locations/box"))

	t.Run("id", pathRequest(func() error {
		_, err := locations.SearchByID(ctx, SearchByIDParams{ID: []string{"PRG"}})
		return err
	}, "locations/id"))

	t.Run("dump", pathRequest(func() error {
		_, err := locations.GetDump(ctx, GetDumpParams{})
		return err
	}, "locations/dump"))

	t.Run("top_destinations", pathRequest(func() error {
		_, err := locations.SearchTopDestinations(ctx, TopDestinationsParams{Term: []string{"prague_cz"}})
		return err
	}, "locations/topdestinations"))

	t.Run("hashtag", pathRequest(func() error {
		_, err := locations.SearchByHashtag(ctx, SearchByHashtagParams{Hashtag: "beach"})
		return err
	}, "locations/hashtag"))

	t.Run("top_hashtags", pathRequest(func() error {
		_, err := locations.SearchTopHashtags(ctx, TopHashtagsParams{Term: []string{"prague_cz"}})
		return err
	}, "locations/tophashtags"))

	t.Run("slug", pathRequest(func() error {
		_, err := locations.SearchBySlug(ctx, SearchBySlugParams{Term: "prague-czechia"})
		return err
	}, "locations/slug"))
}

func TestLocationService_Query(t *testing.T) {
	f := newFakeTequila(t, http.StatusOK, `{"locations":[]}`)
	locations := newTestClient(t, f, "").Location()
	ctx := context.Background()

	queryRequest := func(call func() error, want url.Values) func(t *testing.T) {
		return func(t *testing.T) {
			require.NoError(t, call())

			if diff := cmp.Diff(want, f.lastRequest(t).Query); diff != "" {
				t.Fatalf("query mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("only_set_fields", queryRequest(func() error {
		_, err := locations.SearchByQuery(ctx, SearchByQueryParams{Term: "PRG"})
		return err
	}, url.Values{"term": {"PRG"}}))

	t.Run("options_and_types", queryRequest(func() error {
		_, err := locations.SearchByQuery(ctx, SearchByQueryParams{
			Term:          "PRG",
			LocationTypes: []LocationType{LocationTypeAirport, LocationTypeCity},
			LocationOptions: LocationOptions{
				Locale:     "en-US",
				Limit:      Int(5),
				ActiveOnly: Bool(false),
				Sort:       "-name",
			},
		})
		return err
	}, url.Values{
		"term":           {"PRG"},
		"location_types": {"airport", "city"},
		"locale":         {"en-US"},
		"limit":          {"5"},
		"active_only":    {"false"},
		"sort":           {"-name"},
	}))

	t.Run("repeated_ids", queryRequest(func() error {
		_, err := locations.SearchByID(ctx, SearchByIDParams{ID: []string{"PRG", "BRQ"}})
		return err
	}, url.Values{"id": {"PRG", "BRQ"}}))

	t.Run("dump_cursor", queryRequest(func() error {
		_, err := locations.GetDump(ctx, GetDumpParams{
			SearchAfter:     []string{"prague_cz", "12"},
			LocationOptions: LocationOptions{Sort: "id"},
		})
		return err
	}, url.Values{"search_after": {"prague_cz", "12"}, "sort": {"id"}}))

	t.Run("radius_coordinates", queryRequest(func() error {
		_, err := locations.SearchByRadius(ctx, SearchByRadiusParams{Lat: "50.08", Lon: "14.44", Radius: Int(50)})
		return err
	}, url.Values{"lat": {"50.08"}, "lon": {"14.44"}, "radius": {"50"}}))

	t.Run("hashtag_months", queryRequest(func() error {
		_, err := locations.SearchByHashtag(ctx, SearchByHashtagParams{
			Hashtag:          "beach",
			Month:            []int{6, 7},
			SourcePopularity: PopularitySearches,
		})
		return err
	}, url.Values{"hashtag": {"beach"}, "month": {"6", "7"}, "source_popularity": {"searches"}}))
}

func TestLocationService_Decode(t *testing.T) {
	body := `{
		"locations": [{
			"id": "PRG",
			"int_id": 9000,
			"airport_int_id": 9000,
			"active": true,
			"code": "PRG",
			"icao": "LKPR",
			"name": "Václav Havel Airport Prague",
			"slug": "vaclav-havel-airport-prague-prague-czechia",
			"alternative_names": ["Ruzyne"],
			"rank": 1,
			"timezone": "Europe/Prague",
			"city": {
				"id": "prague_cz",
				"name": "Prague",
				"code": "PRG",
				"slug": "prague-czechia",
				"subdivision": null,
				"autonomous_territory": null,
				"continent": {"id": "europe", "name": "Europe", "slug": "europe", "code": "EU"},
				"country": {"id": "CZ", "name": "Czechia", "slug": "czechia", "code": "CZ"},
				"nearby_country": "SK",
				"region": {"id": "central-europe", "name": "Central Europe", "slug": "central-europe"}
			},
			"location": {"lat": 50.1008, "lon": 14.26},
			"alternative_departure_points": [{"id": "BRQ", "distance": 190.5, "duration": 120}],
			"tags": [{"tag": "history", "month_to": -1, "month_from": -1}],
			"providers": [1, 2],
			"special": [{"id": "bohemia", "name": "Bohemia", "slug": "bohemia"}],
			"car_rentals": [{"provider_id": 3, "providers_locations": ["PRG01"]}],
			"type": "airport"
		}],
		"meta": {"locale": {"code": "en-US", "status": "Locale not specified, using default."}},
		"last_refresh": 1700000000,
		"results_retrieved": 1,
		"search_after": ["PRG"]
	}`
	f := newFakeTequila(t, http.StatusOK, body)

	got, err := newTestClient(t, f, "").Location().GetDump(context.Background(), GetDumpParams{})
	require.NoError(t, err)

	want := LocationQueryResult{
		Locations: []Location{{
			ID:               "PRG",
			IntID:            9000,
			AirportIntID:     9000,
			Active:           true,
			Code:             "PRG",
			ICAO:             "LKPR",
			Name:             "Václav Havel Airport Prague",
			Slug:             "vaclav-havel-airport-prague-prague-czechia",
			AlternativeNames: []string{"Ruzyne"},
			Rank:             1,
			Timezone:         "Europe/Prague",
			City: &LocationCity{
				ID:                  "prague_cz",
				Name:                "Prague",
				Code:                "PRG",
				Slug:                "prague-czechia",
				AutonomousTerritory: json.RawMessage(`null`),
				Continent:           CodeArea{Area: Area{ID: "europe", Name: "Europe", Slug: "europe"}, Code: "EU"},
				Country:             CodeArea{Area: Area{ID: "CZ", Name: "Czechia", Slug: "czechia"}, Code: "CZ"},
				NearbyCountry:       json.RawMessage(`"SK"`),
				Region:              Area{ID: "central-europe", Name: "Central Europe", Slug: "central-europe"},
			},
			Location:                   Coordinates{Lat: 50.1008, Lon: 14.26},
			AlternativeDeparturePoints: []DeparturePoint{{ID: "BRQ", Distance: 190.5, Duration: 120}},
			Tags:                       []LocationTag{{Tag: "history", MonthTo: -1, MonthFrom: -1}},
			Providers:                  []int{1, 2},
			Special:                    []Area{{ID: "bohemia", Name: "Bohemia", Slug: "bohemia"}},
			CarRentals:                 []CarRental{{ProviderID: 3, ProvidersLocations: []string{"PRG01"}}},
			Type:                       LocationTypeAirport,
		}},
		LastRefresh:      1700000000,
		ResultsRetrieved: 1,
		SearchAfter:      []string{"PRG"},
	}
	want.Meta.Locale.Code = "en-US"
	want.Meta.Locale.Status = "Locale not specified, using default."

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("decoded locations mismatch (-want +got):\n%s", diff)
	}
}
