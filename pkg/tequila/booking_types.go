package tequila

import "encoding/json"

// CheckFlightsParams is the query of booking/check_flights.
type CheckFlightsParams struct {
	// BookingToken comes from the search response and expires after 30 minutes.
	BookingToken string `json:"booking_token" url:"booking_token" validate:"required"`
	// Bnum is the number of bags for the whole booking, free ones included.
	Bnum     int `json:"bnum" url:"bnum" validate:"gte=0"`
	Adults   int `json:"adults" url:"adults" validate:"gte=1"`
	Children int `json:"children" url:"children" validate:"gte=0"`
	Infants  int `json:"infants" url:"infants" validate:"gte=0"`
	// SessionID is returned by the first check_flights call and must be sent
	// on every following call of the session.
	SessionID string `json:"session_id" url:"session_id"`
	// Currency of the conversion block; totals are always EUR.
	Currency      Currency `json:"currency,omitempty" url:"currency,omitempty"`
	VisitorUniqID string   `json:"visitor_uniqid,omitempty" url:"visitor_uniqid,omitempty"`
}

// SaveBookingParams is the order sent to booking/save_booking.
//
// VisitorUniqID travels in the query string, everything else in the JSON body.
type SaveBookingParams struct {
	VisitorUniqID string `json:"-" url:"visitor_uniqid,omitempty"`

	// HealthDeclarationChecked confirms the passengers meet airline health
	// requirements where an airline asks for it.
	HealthDeclarationChecked bool `json:"health_declaration_checked"`
	// Lang is ISO 639-1, lowercase.
	Lang         string                 `json:"lang" validate:"required"`
	Passengers   []SaveBookingPassenger `json:"passengers" validate:"required,min=1,dive"`
	Locale       Locale                 `json:"locale"`
	BookingToken string                 `json:"booking_token" validate:"required"`
	SessionID    string                 `json:"session_id" validate:"required"`
	// Baggage must list a combination for every passenger even when no bag
	// is ordered.
	Baggage []BaggageSelection `json:"baggage" validate:"dive"`
	// PaymentGateway is "payu" for Zooz card payments.
	PaymentGateway     string              `json:"payment_gateway,omitempty"`
	AdditionalServices *AdditionalServices `json:"additional_services,omitempty"`
}

type SaveBookingPassenger struct {
	// Birthday is YYYY-MM-DD.
	Birthday string `json:"birthday" validate:"required"`
	// CardNo is the travel document number, up to 20 characters.
	CardNo   string            `json:"cardno" validate:"max=20"`
	Category PassengerCategory `json:"category" validate:"required,oneof=adult child infant"`
	Email    string            `json:"email" validate:"required,email"`
	// Expiration of the travel document, YYYY-MM-DD.
	Expiration string `json:"expiration"`
	Title      string `json:"title" validate:"required,oneof=Mr Mrs Ms"`
	// Name may carry a middle name as "first|middle".
	Name    string `json:"name" validate:"required"`
	Surname string `json:"surname" validate:"required"`
	// Nationality is ISO 3166-1 alpha-2.
	Nationality string `json:"nationality" validate:"required,len=2"`
	Phone       string `json:"phone" validate:"required"`
	// Currency only applies to the Zooz card flow.
	Currency Currency `json:"currency,omitempty"`
}

type BaggageSelection struct {
	Combination BaggageCombination `json:"combination"`
	Passengers  []int              `json:"passengers"`
}

type BaggageCombination struct {
	Indices    []int             `json:"indices"`
	Category   string            `json:"category"`
	Conditions BaggageConditions `json:"conditions"`
	Price      Price             `json:"price"`
}

type AdditionalServices struct {
	Seating []SeatingSelection `json:"seating"`
}

type SeatingSelection struct {
	SegmentCode string          `json:"segment_code"`
	Option      string          `json:"option"`
	Price       *StringPrice    `json:"price,omitempty"`
	Seats       []SeatSelection `json:"seats,omitempty"`
}

type SeatSelection struct {
	Seat         string      `json:"seat"`
	PassengerIdx int         `json:"passenger_idx"`
	Price        StringPrice `json:"price"`
}

// ConfirmPaymentParams references the booking and transaction returned by
// save_booking.
type ConfirmPaymentParams struct {
	BookingID     string `json:"booking_id" validate:"required"`
	TransactionID string `json:"transaction_id" validate:"required"`
}

// ConfirmPaymentResult reports the payment outcome. A failed or timed out
// payment is a regular result, not an error.
type ConfirmPaymentResult struct {
	Status PaymentStatus `json:"status"`
	Msg    string        `json:"msg,omitempty"`
}

// Succeeded reports whether the BID was created.
func (r ConfirmPaymentResult) Succeeded() bool {
	return r.Status == PaymentSuccess
}

// AncillariesOffersParams asks for ancillary offers of an itinerary being
// booked.
type AncillariesOffersParams struct {
	Ancillaries  []string               `json:"ancillaries" validate:"required,min=1"`
	BookingToken string                 `json:"booking_token" validate:"required"`
	Currency     Currency               `json:"currency,omitempty"`
	Passengers   []SaveBookingPassenger `json:"passengers" validate:"dive"`
	SessionID    string                 `json:"session_id" validate:"required"`
}

// BookingFlight is the booking state returned by check_flights and
// save_booking. Callers must inspect FlightsChecked, FlightsInvalid and
// PriceChange; none of them is reported as an error.
type BookingFlight struct {
	SessionID          string           `json:"session_id"`
	ServerTime         int64            `json:"server_time"`
	Pnum               int              `json:"pnum"`
	Flights            []BookingSegment `json:"flights"`
	FlightsChecked     bool             `json:"flights_checked"`
	FlightsToCheck     bool             `json:"flights_to_check"`
	FlightsRealChecked bool             `json:"flights_real_checked"`
	FlightsInvalid     bool             `json:"flights_invalid"`
	MaxPassengers      int              `json:"max_passengers"`
	DocumentOptions    DocumentOptions  `json:"document_options"`
	// The upstream field name is misspelled.
	VisasAgreementRequired bool `json:"visas_agreement_requiered"`

	Transfers       []json.RawMessage `json:"transfers"`
	Route           []string          `json:"route"`
	BookFee         float64           `json:"book_fee"`
	FeeAirline      float64           `json:"fee_airline"`
	ExtraFee        float64           `json:"extra_fee"`
	FlightsPrice    float64           `json:"flights_price"`
	PassengerChange bool              `json:"passenger_change"`
	PriceChange     bool              `json:"price_change"`
	// Total is the amount that will be charged.
	Total           float64 `json:"total"`
	OrigPriceUsage  bool    `json:"orig_price_usage"`
	SpFee           float64 `json:"sp_fee"`
	FlightRealPrice float64 `json:"flight_real_price"`
	OnePassenger    float64 `json:"one_passenger"`
	CreditsPrice    float64 `json:"credits_price"`
	TicketsPrice    float64 `json:"tickets_price"`
	OrigPrice       float64 `json:"orig_price"`
	AdultsPrice     float64 `json:"adults_price"`
	ChildrenPrice   float64 `json:"children_price"`
	InfantsPrice    float64 `json:"infants_price"`
	BookingToken    string  `json:"booking_token"`

	InfantsConditions     InfantsConditions     `json:"infants_conditions"`
	BagsPrice             BagsPrice             `json:"bags_price"`
	Luggage               []json.RawMessage     `json:"luggage"`
	Segments              []json.RawMessage     `json:"segments"`
	Currency              string                `json:"currency"`
	Conversion            BookingConversion     `json:"conversion"`
	AdultThreshold        int                   `json:"adult_threshold"`
	AgeCategoryThresholds AgeCategoryThresholds `json:"age_category_thresholds"`
	InsurancePrice        InsurancePrice        `json:"insurance_price"`
	AdditionalServices    json.RawMessage       `json:"additional_services"`
	MarginStateID         string                `json:"margin_state_id"`
	Baggage               BookingBaggage        `json:"baggage"`
	MandatoryAncillaries  bool                  `json:"mandatory_ancillaries"`
	EURPaymentPrice       float64               `json:"eur_payment_price"`

	// Set by save_booking.
	BookingID     json.Number `json:"booking_id,omitempty"`
	TransactionID string      `json:"transaction_id,omitempty"`
	Status        string      `json:"status,omitempty"`
}

type DocumentOptions struct {
	DocumentNeed        int     `json:"document_need"`
	CheckinDate         int64   `json:"checkin_date"`
	AirportCheckinPrice float64 `json:"airport_checkin_price"`
}

type InfantsConditions struct {
	Trolley    bool    `json:"trolley"`
	HandWeight float64 `json:"hand_weight"`
}

// BagsPrice maps the number of hold bags to their price.
type BagsPrice struct {
	One float64 `json:"1"`
	Two float64 `json:"2"`
}

type BookingConversion struct {
	Currency      string    `json:"currency"`
	Amount        float64   `json:"amount"`
	BagsPrice     BagsPrice `json:"bags_price"`
	AdultsPrice   float64   `json:"adults_price"`
	ChildrenPrice float64   `json:"children_price"`
	InfantsPrice  float64   `json:"infants_price"`
}

type AgeCategoryThresholds struct {
	Adult float64 `json:"adult"`
	Child float64 `json:"child"`
}

type InsurancePrice struct {
	TravelBasic float64 `json:"travel_basic"`
	TravelPlus  float64 `json:"travel_plus"`
}

// BookingSegment is one flight of the itinerary being booked.
type BookingSegment struct {
	ID                 string           `json:"id"`
	CombinationTripID  string           `json:"combination_trip_id"`
	OriginalTripID     string           `json:"original_trip_id"`
	Dst                string           `json:"dst"`
	Src                string           `json:"src"`
	FlightNo           string           `json:"flight_no"`
	OperatingFlightNo  string           `json:"operating_flight_no"`
	CarrierSegmentCode string           `json:"carrier_segment_code"`
	Airline            Airline          `json:"airline"`
	OperatingAirline   OperatingAirline `json:"operating_airline"`
	ScrapingStart      int64            `json:"scraping_start"`
	Extras             string           `json:"extras"`
	Vehicle            struct {
		Type string `json:"type"`
	} `json:"vehicle"`
	SrcTerminal json.RawMessage `json:"src_terminal"`
	DstTerminal json.RawMessage `json:"dst_terminal"`
	// PassengersFlightCheck is keyed by passenger category.
	PassengersFlightCheck map[string]PassengerFlightCheck `json:"passengers_flight_check"`

	Price             float64            `json:"price"`
	EURChildren       float64            `json:"eur_children"`
	EURInfants        float64            `json:"eur_infants"`
	EUR               float64            `json:"eur"`
	FoundOn           string             `json:"found_on"`
	Invalid           int                `json:"invalid"`
	Timestamp         string             `json:"timestamp"`
	Refreshed         string             `json:"refreshed"`
	RefreshTTL        int                `json:"refresh_ttl"`
	RefreshPeriod     int                `json:"refresh_period"`
	FareBasis         string             `json:"fare_basis"`
	FareCategory      string             `json:"fare_category"`
	FareRestriction   json.RawMessage    `json:"fare_restriction"`
	FareClass         json.RawMessage    `json:"fare_class"`
	BaggageFare       string             `json:"baggage_fare"`
	Source            string             `json:"source"`
	CombinationPrices []CombinationPrice `json:"combination_prices"`
	PriceID           string             `json:"price_id"`
	Seats             int                `json:"seats"`
	SourceName        string             `json:"source_name"`
	SourceURL         string             `json:"source_url"`
	Checkin           string             `json:"checkin"`
	SrcCountry        string             `json:"src_country"`
	DstCountry        string             `json:"dst_country"`
	SrcStation        string             `json:"src_station"`
	DstStation        string             `json:"dst_station"`

	InfantsConditions      InfantsConditions `json:"infants_conditions"`
	MaxPassengersForPrice  int               `json:"max_passengers_for_price"`
	SrcName                string            `json:"src_name"`
	DstName                string            `json:"dst_name"`
	HidingReason           json.RawMessage   `json:"hiding_reason"`
	Return                 int               `json:"return"`
	IsSelfTransfer         bool              `json:"is_self_transfer"`
	BagsRecheckRequired    bool              `json:"bags_recheck_required"`
	BagsRecheckDisclaimer  string            `json:"bags_recheck_disclaimer"`
	SegmentPricing         SegmentPricing    `json:"segment_pricing"`
	Sector                 int               `json:"sector"`
	ForcedPriorityBoarding bool              `json:"forced_priority_boarding"`
	LocalArrival           string            `json:"local_arrival"`
	UTCArrival             string            `json:"utc_arrival"`
	LocalDeparture         string            `json:"local_departure"`
	UTCDeparture           string            `json:"utc_departure"`
}

type OperatingAirline struct {
	IATA       string `json:"iata"`
	Name       string `json:"name"`
	PublicCode string `json:"public_code"`
	HideName   bool   `json:"hide_name"`
}

type PassengerFlightCheck struct {
	EUR         float64 `json:"eur"`
	Invalid     bool    `json:"invalid"`
	LastChecked int64   `json:"last_checked"`
}

type CombinationPrice struct {
	SegmentIncludedBags []IncludedBags `json:"segment_included_bags"`
	Price               float64        `json:"price"`
}

type IncludedBags struct {
	Amount  int    `json:"amount"`
	Concept string `json:"concept"`
}

type SegmentPricing struct {
	Adult  StringPrice `json:"adult"`
	Child  StringPrice `json:"child"`
	Infant StringPrice `json:"infant"`
}

// Airline is the carrier metadata attached to a booking segment. Nullable or
// loosely typed upstream fields are kept raw.
type Airline struct {
	ID                       int64           `json:"id"`
	Code                     string          `json:"code"`
	IATACode                 string          `json:"iata_code"`
	ICAOCode                 string          `json:"icao_code"`
	CodePublic               string          `json:"code_public"`
	Name                     string          `json:"name"`
	Alliance                 json.RawMessage `json:"alliance"`
	URL                      string          `json:"url"`
	Checkin                  int             `json:"checkin"`
	CloseBookingHours        int             `json:"close_booking_hours"`
	BookingDocNeeded         int             `json:"booking_doc_needed"`
	AirportCheckin           int             `json:"airport_checkin"`
	PassengersInSearch       int             `json:"passengers_in_search"`
	DoingOnlineCheckin       int             `json:"doing_online_checkin"`
	MaximumPassengers        int             `json:"maximum_passengers"`
	Grade                    string          `json:"grade"`
	VirtualCardReq           bool            `json:"virtual_card_req"`
	Country                  string          `json:"country"`
	CarrierType              string          `json:"carrier_type"`
	ParentCarrier            json.RawMessage `json:"parent_carrier"`
	CheckinClosure           int             `json:"checkin_closure"`
	ShorterStopoversAllowed  int             `json:"shorter_stopovers_allowed"`
	AllowedBookingWindow     json.RawMessage `json:"allowed_booking_window"`
	Deprecated               bool            `json:"deprecated"`
	BookFee                  float64         `json:"book_fee"`
	FeeAirline               float64         `json:"fee_airline"`
	SearchPriority           int             `json:"search_priority"`
	FeeInstead               float64         `json:"fee_instead"`
	FeePercent               float64         `json:"fee_percent"`
	FlightChangeFee          float64         `json:"flight_change_fee"`
	FeeReason                string          `json:"fee_reason"`
	ThresholdChild           float64         `json:"threshold_child"`
	ThresholdTeen            float64         `json:"threshold_teen"`
	ThresholdAdult           float64         `json:"threshold_adult"`
	FeesPerSource            json.RawMessage `json:"fees_per_source"`
	AffilURL                 json.RawMessage `json:"affil_url"`
	TemporaryDisabled        json.RawMessage `json:"temporary_disabled"`
	NonActiveReason          string          `json:"non_active_reason"`
	LCC                      json.RawMessage `json:"lcc"`
	Active                   int             `json:"active"`
	IATACodeLegacy           string          `json:"iatacode"`
	IsPassengerCardholder    json.RawMessage `json:"is_passenger_cardholder"`
	IsPrivateFaresAllowed    json.RawMessage `json:"is_private_fares_allowed"`
	LuggageOnlyDuringCheckin json.RawMessage `json:"luggage_only_during_checkin_airlines"`
	LuggageOnlyOnWeb         json.RawMessage `json:"luggage_only_on_web"`
	MMBLink                  string          `json:"mmb_link"`
	PaymentCardCopyRequired  bool            `json:"payment_card_copy_eticket_requirement"`
	SkipSubairlineMerge      json.RawMessage `json:"skip_subairline_merge"`
	DisplayName              string          `json:"Name"`
	IATA                     string          `json:"iata"`
	HideName                 bool            `json:"hide_name"`
	HandLength               json.RawMessage `json:"hand_length"`
	HandWidth                json.RawMessage `json:"hand_width"`
	HandHeight               json.RawMessage `json:"hand_height"`
	HandWeight               json.RawMessage `json:"hand_weight"`
	HoldWeight               float64         `json:"hold_weight"`
	HoldLength               float64         `json:"hold_length"`
	HoldWidth                float64         `json:"hold_width"`
	HoldHeight               float64         `json:"hold_height"`
	Hand2Length              float64         `json:"hand2_length"`
	Hand2Width               float64         `json:"hand2_width"`
	Hand2Height              float64         `json:"hand2_height"`
	Hand2Weight              float64         `json:"hand2_weight"`
	Hand2Note                string          `json:"hand2_note"`
	HandNote                 string          `json:"hand_note"`
	HoldNote                 string          `json:"hold_note"`
}

// Price is a numeric price breakdown.
type Price struct {
	Currency    string  `json:"currency"`
	Amount      float64 `json:"amount"`
	Base        float64 `json:"base"`
	Service     float64 `json:"service"`
	ServiceFlat float64 `json:"service_flat"`
	Merchant    float64 `json:"merchant"`
}

// StringPrice is a price breakdown whose amounts are decimal strings, as
// used by segment pricing and seating offers.
type StringPrice struct {
	Currency    string `json:"currency"`
	Amount      string `json:"amount"`
	Base        string `json:"base"`
	Service     string `json:"service"`
	ServiceFlat string `json:"service_flat"`
	Merchant    string `json:"merchant"`
}

// BookingBaggage describes the bags that can be ordered. Definitions lists
// single bags, Combinations the allowed bundles referenced by save_booking.
type BookingBaggage struct {
	Definitions  BaggageDefinition `json:"definitions"`
	Combinations BaggageDefinition `json:"combinations"`
	Notices      json.RawMessage   `json:"notices"`
}

type BaggageDefinition struct {
	HoldBag []Bag `json:"hold_bag"`
	HandBag []Bag `json:"hand_bag"`
}

type Bag struct {
	Price        Price             `json:"price"`
	Conditions   BaggageConditions `json:"conditions"`
	IsHold       bool              `json:"is_hold"`
	Category     string            `json:"category"`
	Restrictions BagRestrictions   `json:"restrictions"`
	// Indices is set on combinations only.
	Indices []int `json:"indices,omitempty"`
}

type BaggageConditions struct {
	PassengerGroups []string `json:"passenger_groups"`
	IsPriority      []string `json:"is_priority,omitempty"`
}

type BagRestrictions struct {
	DimensionsSum float64 `json:"dimensions_sum"`
	Weight        float64 `json:"weight"`
	Length        float64 `json:"length"`
	Height        float64 `json:"height"`
	Width         float64 `json:"width"`
}

// AncillariesOffersResult carries the seating offers per segment.
type AncillariesOffersResult struct {
	Seating   SeatingOffers `json:"seating"`
	SessionID string        `json:"session_id"`
}

type SeatingOffers struct {
	Offers []SeatingOffer `json:"offers"`
	Status string         `json:"status"`
	TTL    int            `json:"ttl"`
}

type SeatingOffer struct {
	IsFinal      bool          `json:"is_final"`
	QuickOptions []QuickOption `json:"quick_options"`
	SeatMap      SeatMap       `json:"seatmap"`
	SegmentCode  string        `json:"segment_code"`
}

type QuickOption struct {
	Option string      `json:"option"`
	Price  StringPrice `json:"price"`
}

type SeatMap struct {
	Sections []SeatMapSection `json:"sections"`
}

type SeatMapSection struct {
	Deck         string       `json:"deck"`
	Rows         []SeatMapRow `json:"rows"`
	SectionClass string       `json:"section_class"`
}

// SeatMapRow groups seats between aisles.
type SeatMapRow struct {
	RowNumber  int      `json:"row_number"`
	SeatGroups [][]Seat `json:"seat_groups"`
}

type Seat struct {
	Column    string      `json:"column"`
	Features  []string    `json:"features"`
	Name      string      `json:"name"`
	Price     StringPrice `json:"price"`
	SeatClass string      `json:"seat_class"`
	State     string      `json:"state"`
	Type      string      `json:"type"`
}
