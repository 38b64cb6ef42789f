package tequila

// AuthToken is valid for 30 minutes. Request a new one afterwards and build
// a new client with it, see Client.WithAuthToken.
type AuthToken struct {
	AuthorizationToken string `json:"authorization_token"`
}

// RefundRequest asks for a refund of a booking, optionally limited to some
// passengers.
type RefundRequest struct {
	BookingID    int64   `json:"booking_id" validate:"required"`
	PassengerIDs []int64 `json:"passenger_ids,omitempty"`
	Reason       string  `json:"reason,omitempty"`
}

// Refund is the refund state created for one RefundRequest.
type Refund struct {
	BookingID   int64       `json:"booking_id"`
	CreatedAt   string      `json:"created_at"`
	ID          int64       `json:"id"`
	RefundState RefundState `json:"refund_state"`
}

type BookingPassengers struct {
	Passengers []BookingPassenger `json:"passengers"`
}

type BookingPassenger struct {
	BirthDate          string            `json:"birth_date"`
	Category           PassengerCategory `json:"category"`
	DocumentExpiry     string            `json:"document_expiry"`
	DocumentNumber     string            `json:"document_number"`
	FirstName          string            `json:"first_name"`
	ID                 int64             `json:"id"`
	IsContactPassenger bool              `json:"is_contact_passenger"`
	LastName           string            `json:"last_name"`
	MiddleName         string            `json:"middle_name"`
	Nationality        string            `json:"nationality"`
	Title              string            `json:"title"`
}

// PassportDetails updates the travel document of a single passenger. Only
// the set fields are sent.
type PassportDetails struct {
	ID             int64  `json:"id" validate:"required"`
	DocumentNumber string `json:"document_number,omitempty" validate:"omitempty,max=20"`
	DocumentExpiry string `json:"document_expiry,omitempty"`
	Nationality    string `json:"nationality,omitempty" validate:"omitempty,len=2"`
	BirthDate      string `json:"birth_date,omitempty"`
}
