package model

import (
	"github.com/google/uuid"
	catalog "github.com/meetupaws/travel_catalog/internal/model"
)

// QueueMsgStatusChanged is published when a synced flight moves to a disrupted status.
type QueueMsgStatusChanged struct {
	EventID          string               `json:"event_id"`
	FlightID         int                  `json:"flight_id"`
	FlightNumber     string               `json:"flight_number"`
	Airline          string               `json:"airline"`
	DepartureAirport string               `json:"departure_airport"`
	ArrivalAirport   string               `json:"arrival_airport"`
	DepartureTime    string               `json:"departure_time"`
	PreviousStatus   catalog.FlightStatus `json:"previous_status,omitempty"`
	Status           catalog.FlightStatus `json:"status"`
}

func NewQueueMsgStatusChanged(previous catalog.FlightStatus, f catalog.Flight) QueueMsgStatusChanged {
	return QueueMsgStatusChanged{
		EventID:          uuid.New().String(),
		FlightID:         f.ID,
		FlightNumber:     f.FlightNumber,
		Airline:          f.Airline,
		DepartureAirport: f.DepartureAirport,
		ArrivalAirport:   f.ArrivalAirport,
		DepartureTime:    f.DepartureTime,
		PreviousStatus:   previous,
		Status:           f.Status,
	}
}
