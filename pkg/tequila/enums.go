package tequila

// LocationType is a kind of place known to the Locations API.
type LocationType string

const (
	LocationTypeAirport             LocationType = "airport"
	LocationTypeBusStation          LocationType = "bus_station"
	LocationTypeStation             LocationType = "station"
	LocationTypeCity                LocationType = "city"
	LocationTypeAutonomousTerritory LocationType = "autonomous_territory"
	LocationTypeSubdivision         LocationType = "subdivision"
	LocationTypeCountry             LocationType = "country"
	LocationTypeRegion              LocationType = "region"
	LocationTypeContinent           LocationType = "continent"
	LocationTypeSpecial             LocationType = "special"
)

// LanguageCode selects the language of location names, e.g. "en-US".
type LanguageCode string

const (
	LanguageEnglishUS  LanguageCode = "en-US"
	LanguageEnglishGB  LanguageCode = "en-GB"
	LanguageGerman     LanguageCode = "de-DE"
	LanguageFrench     LanguageCode = "fr-FR"
	LanguageSpanish    LanguageCode = "es-ES"
	LanguageCzech      LanguageCode = "cs-CZ"
	LanguageVietnamese LanguageCode = "vi-VN"
)

// Locale is a language-country pair as used by save_booking, e.g. "en-US".
type Locale string

// PopularitySource ranks top destinations and hashtags.
type PopularitySource string

const (
	PopularitySearches PopularitySource = "searches"
	PopularityBookings PopularitySource = "bookings"
	PopularityClicks   PopularitySource = "clicks"
)

// CabinClass is one of M (economy), W (economy premium), C (business) or F (first).
type CabinClass string

const (
	CabinEconomy        CabinClass = "M"
	CabinEconomyPremium CabinClass = "W"
	CabinBusiness       CabinClass = "C"
	CabinFirst          CabinClass = "F"
)

// FlyDaysType tells whether fly_days apply to departures or arrivals.
type FlyDaysType string

const (
	FlyDaysDeparture FlyDaysType = "departure"
	FlyDaysArrival   FlyDaysType = "arrival"
)

// VehicleType restricts search results to a transport mode.
type VehicleType string

const (
	VehicleAircraft VehicleType = "aircraft"
	VehicleBus      VehicleType = "bus"
	VehicleTrain    VehicleType = "train"
)

// Currency is an ISO 4217 code. Prices in booking responses are always EUR.
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
	CurrencyCZK Currency = "CZK"
	CurrencyVND Currency = "VND"
)

// PassengerCategory must follow age_category_thresholds from check_flights.
type PassengerCategory string

const (
	PassengerAdult  PassengerCategory = "adult"
	PassengerChild  PassengerCategory = "child"
	PassengerInfant PassengerCategory = "infant"
)

// RefundState is reported by manage/refunds as-is.
type RefundState string

// PaymentStatus is the status field of confirm_payment.
type PaymentStatus int

const (
	PaymentTimeout PaymentStatus = -1
	PaymentSuccess PaymentStatus = 0
	PaymentFailed  PaymentStatus = 1
)
