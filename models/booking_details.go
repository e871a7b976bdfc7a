package models

// FlightDetails is the type-specific payload of a flight_hotel booking.
// Price is per person for the whole flight leg (or round trip).
type FlightDetails struct {
	Airline       string  `json:"airline"`
	From          string  `json:"from"`
	To            string  `json:"to"`
	DepartureTime string  `json:"departure_time,omitempty"`
	ReturnTime    string  `json:"return_time,omitempty"`
	Price         float64 `json:"price"`
}

type HotelDetails struct {
	Name          string  `json:"name"`
	RoomType      string  `json:"room_type,omitempty"`
	PricePerNight float64 `json:"price_per_night"`
}

// Activity is one itinerary entry with a one-time per-person price.
type Activity struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// StagedChanges is an edit to an existing booking awaiting admin confirmation.
type StagedChanges struct {
	StartDate     string        `json:"start_date,omitempty"`
	EndDate       string        `json:"end_date,omitempty"`
	Persons       int           `json:"persons,omitempty"`
	InsuranceType InsuranceTier `json:"insurance_type,omitempty"`
}
