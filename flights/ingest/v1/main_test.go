package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/go-cmp/cmp"
	queuemsg "github.com/meetupaws/travel_catalog/flights/internal/model"
	"github.com/meetupaws/travel_catalog/flights/internal/repository"
	"github.com/meetupaws/travel_catalog/internal"
	"github.com/meetupaws/travel_catalog/internal/model"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type FlightsRepositoryMock struct {
	mock.Mock
}

func (m *FlightsRepositoryMock) Find(id int) (model.Flight, error) {
	ret := m.Called(id)
	return ret.Get(0).(model.Flight), ret.Error(1)
}

func (m *FlightsRepositoryMock) Save(f model.Flight) (model.Flight, error) {
	ret := m.Called(f)
	return ret.Get(0).(model.Flight), ret.Error(1)
}

type EnqueuerMock struct {
	mock.Mock
}

func (m *EnqueuerMock) SendMsg(msg interface{}, queue string) error {
	ret := m.Called(msg, queue)
	return ret.Error(0)
}

func body(status string, availableSeats string) string {
	return `{
		"message": "Flights retrieved successfully",
		"data": {
			"current_page": 1,
			"from": 1,
			"last_page": 1,
			"next_page_url": null,
			"prev_page_url": null,
			"total": 1,
			"data": [{
				"id": 7,
				"flight_number": "LH400",
				"airline": "Lufthansa",
				"departure_airport": "FRA",
				"arrival_airport": "JFK",
				"departure_time": "2024-12-01 10:00:00",
				"arrival_time": "2024-12-01 13:00:00",
				"total_seats": 300,
				"available_seats": ` + availableSeats + `,
				"price": 710,
				"image": "https://cdn.dummyjson.com/flights/7.png",
				"status": "` + status + `",
				"created_at": "2024-11-02T10:00:00.000000Z",
				"updated_at": "2024-11-02T10:00:00.000000Z"
			}]
		},
		"links": [],
		"meta": {"last_page": 1, "per_page": 15, "total": 1}
	}`
}

var storedFlight = model.Flight{
	ID:               7,
	FlightNumber:     "LH400",
	Airline:          "Lufthansa",
	DepartureAirport: "FRA",
	ArrivalAirport:   "JFK",
	DepartureTime:    "2024-12-01 10:00:00",
	ArrivalTime:      "2024-12-01 13:00:00",
	TotalSeats:       300,
	AvailableSeats:   45,
	Price:            "710",
	Image:            "https://cdn.dummyjson.com/flights/7.png",
	Status:           model.FlightStatusScheduled,
	CreatedAt:        "2024-11-02T10:00:00.000000Z",
	UpdatedAt:        "2024-11-02T10:00:00.000000Z",
}

func TestAdapter(t *testing.T) {

	type mocks struct {
		flightsRepo *FlightsRepositoryMock
		enqueuer    *EnqueuerMock
	}

	cancelledFlight := storedFlight
	cancelledFlight.Status = model.FlightStatusCancelled

	tests := []struct {
		name             string
		mocks            mocks
		req              events.APIGatewayProxyRequest
		want             events.APIGatewayProxyResponse
		wantBodyContains string
		mocker           func(m mocks)
	}{
		{
			name: "Return a 200 status code after storing a pushed page",
			req: events.APIGatewayProxyRequest{
				Body: body("scheduled", "45"),
			},
			mocks: mocks{
				flightsRepo: &FlightsRepositoryMock{},
				enqueuer:    &EnqueuerMock{},
			},
			want: internal.Respond(http.StatusOK, `{"saved":1}`),
			mocker: func(m mocks) {
				m.flightsRepo.On("Find", 7).Return(model.Flight{}, repository.ErrNoFlightsFound).Once()
				m.flightsRepo.On("Save", storedFlight).Return(storedFlight, nil).Once()
			},
		},
		{
			name: "Return a 200 status code after alerting on a pushed cancellation",
			req: events.APIGatewayProxyRequest{
				Body: body("cancelled", "45"),
			},
			mocks: mocks{
				flightsRepo: &FlightsRepositoryMock{},
				enqueuer:    &EnqueuerMock{},
			},
			want: internal.Respond(http.StatusOK, `{"saved":1,"alerts":1}`),
			mocker: func(m mocks) {
				m.flightsRepo.On("Find", 7).Return(storedFlight, nil).Once()
				m.enqueuer.On("SendMsg", mock.MatchedBy(func(msg queuemsg.QueueMsgStatusChanged) bool {
					return msg.FlightID == 7 &&
						msg.PreviousStatus == model.FlightStatusScheduled &&
						msg.Status == model.FlightStatusCancelled
				}), "flight-status").Return(nil).Once()
				m.flightsRepo.On("Save", cancelledFlight).Return(cancelledFlight, nil).Once()
			},
		},
		{
			name: "Return a 500 status code without saving when the alert cannot be enqueued",
			req: events.APIGatewayProxyRequest{
				Body: body("cancelled", "45"),
			},
			mocks: mocks{
				flightsRepo: &FlightsRepositoryMock{},
				enqueuer:    &EnqueuerMock{},
			},
			want: internal.Respond(
				http.StatusInternalServerError,
				`{"errors":["enqueuing status change of flight 7: queue down"]}`,
			),
			mocker: func(m mocks) {
				m.flightsRepo.On("Find", 7).Return(storedFlight, nil).Once()
				m.enqueuer.On("SendMsg", mock.Anything, "flight-status").Return(errors.New("queue down")).Once()
			},
		},
		{
			name: "Return a 200 status code with nothing saved for an empty page",
			req: events.APIGatewayProxyRequest{
				Body: internal.TrimLines(`{
					"message": "Flights retrieved successfully",
					"data": {
						"current_page": 1,
						"from": null,
						"last_page": 1,
						"next_page_url": null,
						"prev_page_url": null,
						"total": 0,
						"data": []
					},
					"links": [],
					"meta": {"last_page": 1, "per_page": 15, "total": 0}
				}`),
			},
			mocks: mocks{
				flightsRepo: &FlightsRepositoryMock{},
				enqueuer:    &EnqueuerMock{},
			},
			want:   internal.Respond(http.StatusOK, `{"saved":0}`),
			mocker: func(m mocks) {},
		},
		{
			name: "Return a 400 status code because the body is not JSON",
			req: events.APIGatewayProxyRequest{
				Body: `{"data":`,
			},
			mocks: mocks{
				flightsRepo: &FlightsRepositoryMock{},
				enqueuer:    &EnqueuerMock{},
			},
			want:   internal.Respond(http.StatusBadRequest, `{"errors":["malformed_payload"]}`),
			mocker: func(m mocks) {},
		},
		{
			name: "Return a 422 status code because the status is unknown",
			req: events.APIGatewayProxyRequest{
				Body: body("boarding", "45"),
			},
			mocks: mocks{
				flightsRepo: &FlightsRepositoryMock{},
				enqueuer:    &EnqueuerMock{},
			},
			want:             internal.Respond(http.StatusUnprocessableEntity, ""),
			wantBodyContains: "data.data.0.status must be one of the following",
			mocker:           func(m mocks) {},
		},
		{
			name: "Return a 422 status code because more seats are available than exist",
			req: events.APIGatewayProxyRequest{
				Body: body("scheduled", "301"),
			},
			mocks: mocks{
				flightsRepo: &FlightsRepositoryMock{},
				enqueuer:    &EnqueuerMock{},
			},
			want: internal.Respond(
				http.StatusUnprocessableEntity,
				`{"errors":["flight[7].available_seats: must not exceed total_seats"]}`,
			),
			mocker: func(m mocks) {},
		},
		{
			name: "Return a 422 status code because an integer field carries a fraction",
			req: events.APIGatewayProxyRequest{
				Body: body("scheduled", "45.0"),
			},
			mocks: mocks{
				flightsRepo: &FlightsRepositoryMock{},
				enqueuer:    &EnqueuerMock{},
			},
			want:             internal.Respond(http.StatusUnprocessableEntity, ""),
			wantBodyContains: "type_mismatch",
			mocker:           func(m mocks) {},
		},
		{
			name: "Return a 500 status code after an error with the repository",
			req: events.APIGatewayProxyRequest{
				Body: body("scheduled", "45"),
			},
			mocks: mocks{
				flightsRepo: &FlightsRepositoryMock{},
				enqueuer:    &EnqueuerMock{},
			},
			want: internal.Respond(http.StatusInternalServerError, `{"errors":["Some error"]}`),
			mocker: func(m mocks) {
				m.flightsRepo.On("Find", 7).Return(model.Flight{}, repository.ErrNoFlightsFound).Once()
				m.flightsRepo.On("Save", storedFlight).Return(model.Flight{}, errors.New("Some error")).Once()
			},
		},
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			tt.mocker(tt.mocks)

			// Act
			handler := Adapter(
				tt.mocks.flightsRepo,
				tt.mocks.enqueuer,
				"flight-status",
				model.NewImagePolicy(model.DefaultImageDomain),
				logger,
			)
			got, err := handler(context.Background(), tt.req)

			// Assert
			require.NoError(t, err)
			if tt.wantBodyContains != "" {
				require.Contains(t, got.Body, tt.wantBodyContains)
				got.Body = ""
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Differences: (-want,+got)\n%s", diff)
			}

			tt.mocks.flightsRepo.AssertExpectations(t)
			tt.mocks.enqueuer.AssertExpectations(t)
		})
	}

}
