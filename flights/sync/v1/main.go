package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/meetupaws/travel_catalog/flights/internal/mirror"
	"github.com/meetupaws/travel_catalog/flights/internal/repository"
	"github.com/meetupaws/travel_catalog/internal"
	"github.com/meetupaws/travel_catalog/internal/apiclient"
	"github.com/meetupaws/travel_catalog/internal/model"
	"github.com/sirupsen/logrus"
)

type Handler func(ctx context.Context, event events.CloudWatchEvent) error

type Catalog interface {
	WalkFlights(ctx context.Context, fn func(model.FlightResponse) error) error
}

type FlightsRepository interface {
	Find(id int) (model.Flight, error)
	Save(m model.Flight) (model.Flight, error)
}

type Enqueuer interface {
	SendMsg(msg interface{}, queue string) error
}

type summary struct {
	Pages          int
	Saved          int
	ImagesDropped  int
	StatusChanges  int
	AlertsEnqueued int
}

func Adapter(
	catalog Catalog,
	flightsRepo FlightsRepository,
	enqueuer Enqueuer,
	statusQueue string,
	images model.ImagePolicy,
	logger logrus.FieldLogger,
) Handler {
	return func(ctx context.Context, event events.CloudWatchEvent) error {
		logger := logger.WithField("event_id", event.ID)
		writer := mirror.NewWriter(flightsRepo, enqueuer, statusQueue)
		s := summary{}

		err := catalog.WalkFlights(ctx, func(page model.FlightResponse) error {
			s.Pages++
			for _, f := range page.Items() {
				f, dropped := images.SanitizeFlight(f)
				if dropped {
					s.ImagesDropped++
					logger.WithField("flight_id", f.ID).Warn("image outside allowed domains dropped")
				}

				outcome, err := writer.Store(f)
				if err != nil {
					return err
				}
				s.Saved++
				if outcome.StatusChanged {
					s.StatusChanges++
				}
				if outcome.AlertEnqueued {
					s.AlertsEnqueued++
				}
			}
			return nil
		})

		fields := logrus.Fields{
			"pages":           s.Pages,
			"saved":           s.Saved,
			"images_dropped":  s.ImagesDropped,
			"status_changes":  s.StatusChanges,
			"alerts_enqueued": s.AlertsEnqueued,
		}
		if err != nil {
			logger.WithFields(fields).WithError(err).Error("flights sync failed")
			return err
		}
		if s.Saved == 0 {
			logger.WithFields(fields).Info("flights catalog is empty")
			return nil
		}
		logger.WithFields(fields).Info("flights synced")
		return nil
	}
}

func main() {
	logger := internal.NewLogger()
	flightsTable := internal.MustEnv("DYNAMODB_FLIGHTS")
	statusQueue := internal.MustEnv("SQS_STATUS_QUEUE")
	images := model.NewImagePolicy(internal.SplitList(internal.EnvOr("IMAGE_DOMAINS", model.DefaultImageDomain))...)

	session := session.Must(session.NewSession())
	catalog := apiclient.New(apiclient.ConfigFromEnv(), logger)
	flightsRepo := repository.NewFlightsRepository(dynamodb.New(session), flightsTable)
	enqueuer := internal.NewEnqueuer(sqs.New(session))
	lambda.Start(Adapter(catalog, flightsRepo, enqueuer, statusQueue, images, logger))
}
