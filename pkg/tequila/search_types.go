package tequila

// SearchFlightsParams is the query of the Search API. Dates are dd/mm/yyyy,
// times are whole hours such as "11:00".
type SearchFlightsParams struct {
	// FlyFrom accepts comma separated Kiwi ids: airports, cities, countries,
	// "city:DUS" / "airport:DUS" prefixes or a "lat-lon-xkm" radius.
	FlyFrom string `json:"fly_from" url:"fly_from" validate:"required"`
	// FlyTo omitted aggregates results over destinations relevant to FlyFrom.
	FlyTo    string `json:"fly_to,omitempty" url:"fly_to,omitempty"`
	DateFrom string `json:"date_from" url:"date_from" validate:"required"`
	DateTo   string `json:"date_to" url:"date_to" validate:"required"`

	// Return range. Omit both return and nights params for one-way trips.
	ReturnFrom      string `json:"return_from,omitempty" url:"return_from,omitempty"`
	ReturnTo        string `json:"return_to,omitempty" url:"return_to,omitempty"`
	NightsInDstFrom *int   `json:"nights_in_dst_from,omitempty" url:"nights_in_dst_from,omitempty" validate:"omitempty,gte=0"`
	NightsInDstTo   *int   `json:"nights_in_dst_to,omitempty" url:"nights_in_dst_to,omitempty" validate:"omitempty,gte=0"`

	MaxFlyDuration  *int  `json:"max_fly_duration,omitempty" url:"max_fly_duration,omitempty" validate:"omitempty,gte=0"`
	RetFromDiffCity *bool `json:"ret_from_diff_city,omitempty" url:"ret_from_diff_city,omitempty"`
	RetToDiffCity   *bool `json:"ret_to_diff_city,omitempty" url:"ret_to_diff_city,omitempty"`
	// OneForCity and OnePerDate only work on one-way requests.
	OneForCity *int `json:"one_for_city,omitempty" url:"one_for_city,omitempty"`
	OnePerDate *int `json:"one_per_date,omitempty" url:"one_per_date,omitempty"`

	// Adults, Children and Infants together cannot exceed 9.
	Adults   *int `json:"adults,omitempty" url:"adults,omitempty" validate:"omitempty,gte=0,lte=9"`
	Children *int `json:"children,omitempty" url:"children,omitempty" validate:"omitempty,gte=0,lte=9"`
	Infants  *int `json:"infants,omitempty" url:"infants,omitempty" validate:"omitempty,gte=0,lte=9"`

	SelectedCabins CabinClass `json:"selected_cabins,omitempty" url:"selected_cabins,omitempty" validate:"omitempty,oneof=M W C F"`
	MixWithCabins  CabinClass `json:"mix_with_cabins,omitempty" url:"mix_with_cabins,omitempty" validate:"omitempty,oneof=M W C F"`

	// Bag counts per passenger, comma separated, e.g. "1,0".
	AdultHoldBag string `json:"adult_hold_bag,omitempty" url:"adult_hold_bag,omitempty"`
	AdultHandBag string `json:"adult_hand_bag,omitempty" url:"adult_hand_bag,omitempty"`
	ChildHoldBag string `json:"child_hold_bag,omitempty" url:"child_hold_bag,omitempty"`
	ChildHandBag string `json:"child_hand_bag,omitempty" url:"child_hand_bag,omitempty"`

	// FlyDays are week days, 0 is Sunday. Sent as repeated parameters.
	FlyDays         []int       `json:"fly_days,omitempty" url:"fly_days,omitempty" validate:"omitempty,dive,min=0,max=6"`
	FlyDaysType     FlyDaysType `json:"fly_days_type,omitempty" url:"fly_days_type,omitempty"`
	RetFlyDays      []int       `json:"ret_fly_days,omitempty" url:"ret_fly_days,omitempty" validate:"omitempty,dive,min=0,max=6"`
	RetFlyDaysType  FlyDaysType `json:"ret_fly_days_type,omitempty" url:"ret_fly_days_type,omitempty"`
	OnlyWorkingDays *bool       `json:"only_working_days,omitempty" url:"only_working_days,omitempty"`
	OnlyWeekends    *bool       `json:"only_weekends,omitempty" url:"only_weekends,omitempty"`

	// PartnerMarket is an ISO 3166-1 alpha-2 country code.
	PartnerMarket string       `json:"partner_market,omitempty" url:"partner_market,omitempty"`
	Curr          Currency     `json:"curr,omitempty" url:"curr,omitempty"`
	Locale        LanguageCode `json:"locale,omitempty" url:"locale,omitempty"`

	PriceFrom    *float64 `json:"price_from,omitempty" url:"price_from,omitempty" validate:"omitempty,gte=0"`
	PriceTo      *float64 `json:"price_to,omitempty" url:"price_to,omitempty" validate:"omitempty,gte=0"`
	DtimeFrom    string   `json:"dtime_from,omitempty" url:"dtime_from,omitempty"`
	DtimeTo      string   `json:"dtime_to,omitempty" url:"dtime_to,omitempty"`
	AtimeFrom    string   `json:"atime_from,omitempty" url:"atime_from,omitempty"`
	AtimeTo      string   `json:"atime_to,omitempty" url:"atime_to,omitempty"`
	RetDtimeFrom string   `json:"ret_dtime_from,omitempty" url:"ret_dtime_from,omitempty"`
	RetDtimeTo   string   `json:"ret_dtime_to,omitempty" url:"ret_dtime_to,omitempty"`
	RetAtimeFrom string   `json:"ret_atime_from,omitempty" url:"ret_atime_from,omitempty"`
	RetAtimeTo   string   `json:"ret_atime_to,omitempty" url:"ret_atime_to,omitempty"`
	// Stopover length as hours:minutes, "48:00" is two days.
	StopoverFrom string `json:"stopover_from,omitempty" url:"stopover_from,omitempty"`
	StopoverTo   string `json:"stopover_to,omitempty" url:"stopover_to,omitempty"`

	// MaxStopovers of 0 returns direct flights only.
	MaxStopovers       *int `json:"max_stopovers,omitempty" url:"max_stopovers,omitempty" validate:"omitempty,gte=0"`
	MaxSectorStopovers *int `json:"max_sector_stopovers,omitempty" url:"max_sector_stopovers,omitempty" validate:"omitempty,gte=0"`
	ConnOnDiffAirport  *int `json:"conn_on_diff_airport,omitempty" url:"conn_on_diff_airport,omitempty" validate:"omitempty,oneof=0 1"`
	RetFromDiffAirport *int `json:"ret_from_diff_airport,omitempty" url:"ret_from_diff_airport,omitempty" validate:"omitempty,oneof=0 1"`
	RetToDiffAirport   *int `json:"ret_to_diff_airport,omitempty" url:"ret_to_diff_airport,omitempty" validate:"omitempty,oneof=0 1"`

	// SelectAirlines are IATA codes, comma joined on the wire. They are
	// included, or excluded when SelectAirlinesExclude is true.
	SelectAirlines           []string `json:"select_airlines,omitempty" url:"select_airlines,omitempty,comma"`
	SelectAirlinesExclude    *bool    `json:"select_airlines_exclude,omitempty" url:"select_airlines_exclude,omitempty"`
	SelectStopAirport        string   `json:"select_stop_airport,omitempty" url:"select_stop_airport,omitempty"`
	SelectStopAirportExclude *bool    `json:"select_stop_airport_exclude,omitempty" url:"select_stop_airport_exclude,omitempty"`

	VehicleType VehicleType `json:"vehicle_type,omitempty" url:"vehicle_type,omitempty"`
	// EnableVI set to false drops virtually interlined itineraries.
	EnableVI *bool `json:"enable_vi,omitempty" url:"enable_vi,omitempty"`
	// Sort is one of quality, price (default), date or duration.
	Sort string `json:"sort,omitempty" url:"sort,omitempty"`
	// Limit defaults to 200, max 1000.
	Limit *int `json:"limit,omitempty" url:"limit,omitempty" validate:"omitempty,gte=1,lte=1000"`
}

// SearchFlightsResult is the Search API response.
type SearchFlightsResult struct {
	SearchID string      `json:"search_id"`
	Currency string      `json:"currency"`
	FxRate   float64     `json:"fx_rate"`
	Data     []Itinerary `json:"data"`
	Results  int         `json:"_results"`
}

// Itinerary is one priced search result. BookingToken identifies it in the
// booking calls for 30 minutes.
type Itinerary struct {
	ID             string    `json:"id"`
	FlyFrom        string    `json:"flyFrom"`
	FlyTo          string    `json:"flyTo"`
	CityFrom       string    `json:"cityFrom"`
	CityCodeFrom   string    `json:"cityCodeFrom"`
	CityTo         string    `json:"cityTo"`
	CityCodeTo     string    `json:"cityCodeTo"`
	CountryFrom    NamedCode `json:"countryFrom"`
	CountryTo      NamedCode `json:"countryTo"`
	LocalDeparture string    `json:"local_departure"`
	UTCDeparture   string    `json:"utc_departure"`
	LocalArrival   string    `json:"local_arrival"`
	UTCArrival     string    `json:"utc_arrival"`
	// NightsInDest is null for one-way itineraries.
	NightsInDest  *int               `json:"nightsInDest"`
	Quality       float64            `json:"quality"`
	Distance      float64            `json:"distance"`
	Duration      TripDuration       `json:"duration"`
	Price         float64            `json:"price"`
	Conversion    map[string]float64 `json:"conversion"`
	Fare          PassengerFare      `json:"fare"`
	PriceDropdown PriceDropdown      `json:"price_dropdown"`
	BagsPrice     SearchBagsPrice    `json:"bags_price"`
	BagLimit      BagLimit           `json:"baglimit"`
	Availability  Availability       `json:"availability"`
	Airlines      []string           `json:"airlines"`
	Route         []RouteSegment     `json:"route"`
	BookingToken  string             `json:"booking_token"`

	FacilitatedBookingAvailable bool `json:"facilitated_booking_available"`
	PNRCount                    int  `json:"pnr_count"`
	HasAirportChange            bool `json:"has_airport_change"`
	TechnicalStops              int  `json:"technical_stops"`
	ThrowAwayTicketing          bool `json:"throw_away_ticketing"`
	HiddenCityTicketing         bool `json:"hidden_city_ticketing"`
	VirtualInterlining          bool `json:"virtual_interlining"`
}

type NamedCode struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// TripDuration is in seconds.
type TripDuration struct {
	Departure int `json:"departure"`
	Return    int `json:"return"`
	Total     int `json:"total"`
}

type PassengerFare struct {
	Adults   float64 `json:"adults"`
	Children float64 `json:"children"`
	Infants  float64 `json:"infants"`
}

type PriceDropdown struct {
	BaseFare float64 `json:"base_fare"`
	Fees     float64 `json:"fees"`
}

// SearchBagsPrice maps the number of hold bags to their price.
type SearchBagsPrice struct {
	One  *float64 `json:"1,omitempty"`
	Two  *float64 `json:"2,omitempty"`
	Hand *float64 `json:"hand,omitempty"`
}

type BagLimit struct {
	HandHeight         float64  `json:"hand_height"`
	HandLength         float64  `json:"hand_length"`
	HandWeight         float64  `json:"hand_weight"`
	HandWidth          float64  `json:"hand_width"`
	HoldDimensionsSum  float64  `json:"hold_dimensions_sum"`
	HoldHeight         float64  `json:"hold_height"`
	HoldLength         float64  `json:"hold_length"`
	HoldWeight         float64  `json:"hold_weight"`
	HoldWidth          float64  `json:"hold_width"`
	PersonalItemHeight *float64 `json:"personal_item_height,omitempty"`
	PersonalItemLength *float64 `json:"personal_item_length,omitempty"`
	PersonalItemWeight *float64 `json:"personal_item_weight,omitempty"`
	PersonalItemWidth  *float64 `json:"personal_item_width,omitempty"`
}

type Availability struct {
	Seats *int `json:"seats"`
}

// RouteSegment is a single flight (or ground leg) of an itinerary.
// Return is 1 for segments of the inbound journey.
type RouteSegment struct {
	ID                  string  `json:"id"`
	CombinationID       string  `json:"combination_id"`
	FlyFrom             string  `json:"flyFrom"`
	FlyTo               string  `json:"flyTo"`
	CityFrom            string  `json:"cityFrom"`
	CityCodeFrom        string  `json:"cityCodeFrom"`
	CityTo              string  `json:"cityTo"`
	CityCodeTo          string  `json:"cityCodeTo"`
	LocalDeparture      string  `json:"local_departure"`
	UTCDeparture        string  `json:"utc_departure"`
	LocalArrival        string  `json:"local_arrival"`
	UTCArrival          string  `json:"utc_arrival"`
	Airline             string  `json:"airline"`
	FlightNo            int     `json:"flight_no"`
	OperatingCarrier    string  `json:"operating_carrier"`
	OperatingFlightNo   string  `json:"operating_flight_no"`
	FareBasis           string  `json:"fare_basis"`
	FareCategory        string  `json:"fare_category"`
	FareClasses         string  `json:"fare_classes"`
	Return              int     `json:"return"`
	BagsRecheckRequired bool    `json:"bags_recheck_required"`
	VIConnection        bool    `json:"vi_connection"`
	Guarantee           bool    `json:"guarantee"`
	Equipment           *string `json:"equipment"`
	VehicleType         string  `json:"vehicle_type"`
}
