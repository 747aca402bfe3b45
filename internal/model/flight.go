package model

import (
	"time"
)

type PassengerDetails struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

type Flight struct {
	ID               int               `json:"id"`
	FlightNumber     string            `json:"flight_number"`
	Airline          string            `json:"airline"`
	DepartureAirport string            `json:"departure_airport"`
	ArrivalAirport   string            `json:"arrival_airport"`
	DepartureTime    string            `json:"departure_time"`
	ArrivalTime      string            `json:"arrival_time"`
	FlightType       FlightType        `json:"flight_type,omitempty"`
	TotalSeats       int               `json:"total_seats"`
	AvailableSeats   int               `json:"available_seats"`
	PassengerDetails *PassengerDetails `json:"passenger_details,omitempty"`
	Price            Decimal           `json:"price,omitempty"`
	TravelClass      TravelClass       `json:"travel_class,omitempty"`
	Image            string            `json:"image,omitempty"`
	Status           FlightStatus      `json:"status"`
	CreatedAt        string            `json:"created_at"`
	UpdatedAt        string            `json:"updated_at"`
}

func (f Flight) Key() int {
	return f.ID
}

func (f Flight) Validate() error {
	ve := newValidationError()
	if f.TotalSeats < 0 {
		ve.add("total_seats", "must not be negative")
	}
	if f.AvailableSeats < 0 {
		ve.add("available_seats", "must not be negative")
	}
	if f.AvailableSeats > f.TotalSeats {
		ve.add("available_seats", "must not exceed total_seats")
	}
	if !f.Status.Valid() {
		ve.add("status", "must be one of scheduled, delayed, cancelled")
	}
	if f.FlightType != "" && !f.FlightType.Valid() {
		ve.add("flight_type", "must be oneway or rounded")
	}
	if f.TravelClass != "" && !f.TravelClass.Valid() {
		ve.add("travel_class", "unknown travel class")
	}
	if p := f.PassengerDetails; p != nil && (p.Adults < 0 || p.Children < 0 || p.Infants < 0) {
		ve.add("passenger_details", "counts must not be negative")
	}
	return ve.orNil()
}

// Departure parses DepartureTime, which the API sends in more than one layout.
func (f Flight) Departure() (time.Time, error) {
	return ParseTimestamp(f.DepartureTime)
}
