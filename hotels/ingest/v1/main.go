package main

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/meetupaws/travel_catalog/hotels/internal/repository"
	"github.com/meetupaws/travel_catalog/internal"
	"github.com/meetupaws/travel_catalog/internal/model"
	"github.com/meetupaws/travel_catalog/internal/schema"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Handler func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

type HotelsRepository interface {
	Save(h model.Hotel) (model.Hotel, error)
}

type Response struct {
	Saved int `json:"saved"`
}

func Adapter(hotelsRepo HotelsRepository, images model.ImagePolicy, logger logrus.FieldLogger) Handler {
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		page, err := schema.DecodeHotelResponse([]byte(req.Body))
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

		response := Response{}
		for _, h := range page.Items() {
			h, _ = images.SanitizeHotel(h)
			if _, err := hotelsRepo.Save(h); err != nil {
				logger.WithError(err).WithField("hotel_id", h.ID).Error("storing pushed hotel failed")
				return internal.Error(http.StatusInternalServerError, err), nil
			}
			response.Saved++
		}

		logger.WithFields(logrus.Fields{
			"request_id": req.RequestContext.RequestID,
			"page":       page.Data.CurrentPage,
			"saved":      response.Saved,
		}).Info("hotels page ingested")
		return internal.RespondJSON(http.StatusOK, response), nil
	}
}

func main() {
	logger := internal.NewLogger()
	hotelsTable := internal.MustEnv("DYNAMODB_HOTELS")
	images := model.NewImagePolicy(internal.SplitList(internal.EnvOr("IMAGE_DOMAINS", model.DefaultImageDomain))...)

	session := session.Must(session.NewSession())
	hotelsRepo := repository.NewHotelsRepository(dynamodb.New(session), hotelsTable)
	lambda.Start(Adapter(hotelsRepo, images, logger))
}
