package model

import (
	"encoding/json"

	"github.com/pkg/errors"
)

var (
	ErrInvalidFlightStatus = errors.New("invalid_flight_status")
	ErrInvalidFlightType   = errors.New("invalid_flight_type")
	ErrInvalidTravelClass  = errors.New("invalid_travel_class")
)

type FlightStatus string

const (
	FlightStatusScheduled FlightStatus = "scheduled"
	FlightStatusDelayed   FlightStatus = "delayed"
	FlightStatusCancelled FlightStatus = "cancelled"
)

func (s FlightStatus) Valid() bool {
	switch s {
	case FlightStatusScheduled, FlightStatusDelayed, FlightStatusCancelled:
		return true
	}
	return false
}

// Disrupted reports whether travellers should be told about this status.
func (s FlightStatus) Disrupted() bool {
	return s == FlightStatusDelayed || s == FlightStatusCancelled
}

func (s *FlightStatus) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return errors.Wrap(ErrInvalidFlightStatus, err.Error())
	}
	if !FlightStatus(v).Valid() {
		return errors.Wrapf(ErrInvalidFlightStatus, "%q", v)
	}
	*s = FlightStatus(v)
	return nil
}

type FlightType string

const (
	FlightTypeOneWay  FlightType = "oneway"
	FlightTypeRounded FlightType = "rounded"
)

func (t FlightType) Valid() bool {
	return t == FlightTypeOneWay || t == FlightTypeRounded
}

func (t *FlightType) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return errors.Wrap(ErrInvalidFlightType, err.Error())
	}
	if !FlightType(v).Valid() {
		return errors.Wrapf(ErrInvalidFlightType, "%q", v)
	}
	*t = FlightType(v)
	return nil
}

// TravelClass is the cabin tier of a flight offering.
type TravelClass string

const (
	TravelClassEconomy         TravelClass = "Economy"
	TravelClassPremiumEconomy  TravelClass = "PremiumEconomy"
	TravelClassBusiness        TravelClass = "Business"
	TravelClassPremiumBusiness TravelClass = "PremiumBusiness"
	TravelClassFirst           TravelClass = "First"
	TravelClassPremiumFirst    TravelClass = "PremiumFirst"
)

var travelClasses = []TravelClass{
	TravelClassEconomy,
	TravelClassPremiumEconomy,
	TravelClassBusiness,
	TravelClassPremiumBusiness,
	TravelClassFirst,
	TravelClassPremiumFirst,
}

func (c TravelClass) Valid() bool {
	for _, tc := range travelClasses {
		if c == tc {
			return true
		}
	}
	return false
}

func (c *TravelClass) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return errors.Wrap(ErrInvalidTravelClass, err.Error())
	}
	if !TravelClass(v).Valid() {
		return errors.Wrapf(ErrInvalidTravelClass, "%q", v)
	}
	*c = TravelClass(v)
	return nil
}
