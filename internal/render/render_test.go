package render

import (
	"bytes"
	"testing"

	"github.com/meetupaws/travel_catalog/internal/model"
	"github.com/stretchr/testify/require"
)

func TestHotels(t *testing.T) {
	r := model.HotelResponse{
		Data: model.Page[model.Hotel]{
			CurrentPage: 1,
			LastPage:    4,
			Total:       7,
			Data: []model.Hotel{
				{ID: 1, Name: "Overlook", Location: "Colorado", TotalRooms: 40, RemainingRooms: 3, Rating: "3.10"},
			},
		},
	}

	buf := &bytes.Buffer{}
	require.NoError(t, Hotels(buf, r))
	want := "" +
		"ID  NAME      LOCATION  ROOMS LEFT  PRICE  RATING\n" +
		"1   Overlook  Colorado  3/40        -      3.10\n" +
		"page 1 of 4, 7 total\n"
	require.Equal(t, want, buf.String())
}

func TestFlights(t *testing.T) {
	r := model.FlightResponse{
		Data: model.Page[model.Flight]{
			CurrentPage: 1,
			LastPage:    1,
			Total:       1,
			Data: []model.Flight{
				{
					ID:               10,
					FlightNumber:     "BA117",
					Airline:          "BA",
					DepartureAirport: "LHR",
					ArrivalAirport:   "JFK",
					DepartureTime:    "2024-12-01 08:30:00",
					TotalSeats:       200,
					AvailableSeats:   12,
					TravelClass:      model.TravelClassBusiness,
					Price:            "640.50",
					Status:           model.FlightStatusCancelled,
				},
			},
		},
	}

	buf := &bytes.Buffer{}
	require.NoError(t, Flights(buf, r))
	require.Contains(t, buf.String(), "LHR-JFK")
	require.Contains(t, buf.String(), "12/200")
	require.Contains(t, buf.String(), "CANCELLED")
	require.Contains(t, buf.String(), "page 1 of 1, 1 total\n")
}

func TestEmptyPages(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Hotels(buf, model.HotelResponse{}))
	require.Equal(t, "No hotels found.\n", buf.String())

	buf.Reset()
	require.NoError(t, Flights(buf, model.FlightResponse{Data: model.Page[model.Flight]{CurrentPage: 1, LastPage: 1, Data: []model.Flight{}}}))
	require.Equal(t, "No flights found.\n", buf.String())
}
