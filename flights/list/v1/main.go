package main

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/meetupaws/travel_catalog/flights/internal/repository"
	"github.com/meetupaws/travel_catalog/internal"
	"github.com/meetupaws/travel_catalog/internal/model"
	"github.com/pkg/errors"
)

type Handler func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

type Response []ResponseFlight

type ResponseFlight struct {
	ID               int    `json:"id"`
	FlightNumber     string `json:"flight_number"`
	Airline          string `json:"airline"`
	DepartureAirport string `json:"departure_airport"`
	ArrivalAirport   string `json:"arrival_airport"`
	DepartureTime    string `json:"departure_time"`
	AvailableSeats   int    `json:"available_seats"`
	Status           string `json:"status"`
}

type FlightsRepository interface {
	ListByStatus(status model.FlightStatus) ([]model.Flight, error)
}

var ErrUnknownStatus = errors.New("unknown_status")

func Adapter(flightsRepo FlightsRepository) Handler {
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		// Get request parameters
		status := model.FlightStatus(req.PathParameters["status"])
		if !status.Valid() {
			return internal.Error(http.StatusBadRequest, ErrUnknownStatus), nil
		}

		// Look for flights
		flights, err := flightsRepo.ListByStatus(status)
		if err == repository.ErrNoFlightsFound {
			return internal.Error(http.StatusNotFound, err), nil
		}
		if err != nil {
			return internal.Error(http.StatusInternalServerError, err), nil
		}

		// Prepare response
		response := make(Response, len(flights))
		for i, f := range flights {
			response[i] = ResponseFlight{
				ID:               f.ID,
				FlightNumber:     f.FlightNumber,
				Airline:          f.Airline,
				DepartureAirport: f.DepartureAirport,
				ArrivalAirport:   f.ArrivalAirport,
				DepartureTime:    f.DepartureTime,
				AvailableSeats:   f.AvailableSeats,
				Status:           string(f.Status),
			}
		}

		// Respond
		return internal.RespondJSON(http.StatusOK, response), nil
	}
}

func main() {
	flightsTable := internal.MustEnv("DYNAMODB_FLIGHTS")
	session := session.Must(session.NewSession())
	dynamodbClient := dynamodb.New(session)
	flightsRepo := repository.NewFlightsRepository(dynamodbClient, flightsTable)
	lambda.Start(Adapter(flightsRepo))
}
