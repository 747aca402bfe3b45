package main

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/meetupaws/travel_catalog/flights/internal/mirror"
	"github.com/meetupaws/travel_catalog/flights/internal/repository"
	"github.com/meetupaws/travel_catalog/internal"
	"github.com/meetupaws/travel_catalog/internal/model"
	"github.com/meetupaws/travel_catalog/internal/schema"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Handler func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

type FlightsRepository interface {
	Find(id int) (model.Flight, error)
	Save(m model.Flight) (model.Flight, error)
}

type Enqueuer interface {
	SendMsg(msg interface{}, queue string) error
}

type Response struct {
	Saved  int `json:"saved"`
	Alerts int `json:"alerts,omitempty"`
}

func Adapter(
	flightsRepo FlightsRepository,
	enqueuer Enqueuer,
	statusQueue string,
	images model.ImagePolicy,
	logger logrus.FieldLogger,
) Handler {
	writer := mirror.NewWriter(flightsRepo, enqueuer, statusQueue)
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		logger := logger.WithField("request_id", req.RequestContext.RequestID)

		// Decode and validate the pushed page
		page, err := schema.DecodeFlightResponse([]byte(req.Body))
		if schemaErr := schema.IsError(err); schemaErr != nil {
			return internal.SchemaErrors(http.StatusUnprocessableEntity, schemaErr.Errors), nil
		}
		if errors.Is(err, schema.ErrMalformedPayload) {
			return internal.Error(http.StatusBadRequest, errors.Cause(err)), nil
		}
		if model.IsValidationError(err) != nil || errors.Is(err, schema.ErrTypeMismatch) {
			return internal.Error(http.StatusUnprocessableEntity, err), nil
		}
		if err != nil {
			return internal.Error(http.StatusInternalServerError, err), nil
		}

		// Store every record
		response := Response{}
		for _, f := range page.Items() {
			f, _ = images.SanitizeFlight(f)
			outcome, err := writer.Store(f)
			if err != nil {
				logger.WithError(err).WithField("flight_id", f.ID).Error("storing pushed flight failed")
				return internal.Error(http.StatusInternalServerError, err), nil
			}
			response.Saved++
			if outcome.AlertEnqueued {
				response.Alerts++
			}
		}

		logger.WithFields(logrus.Fields{
			"page":   page.Data.CurrentPage,
			"saved":  response.Saved,
			"alerts": response.Alerts,
		}).Info("flights page ingested")
		return internal.RespondJSON(http.StatusOK, response), nil
	}
}

func main() {
	logger := internal.NewLogger()
	flightsTable := internal.MustEnv("DYNAMODB_FLIGHTS")
	statusQueue := internal.MustEnv("SQS_STATUS_QUEUE")
	images := model.NewImagePolicy(internal.SplitList(internal.EnvOr("IMAGE_DOMAINS", model.DefaultImageDomain))...)

	session := session.Must(session.NewSession())
	flightsRepo := repository.NewFlightsRepository(dynamodb.New(session), flightsTable)
	enqueuer := internal.NewEnqueuer(sqs.New(session))
	lambda.Start(Adapter(flightsRepo, enqueuer, statusQueue, images, logger))
}
