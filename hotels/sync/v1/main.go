package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/meetupaws/travel_catalog/hotels/internal/repository"
	"github.com/meetupaws/travel_catalog/internal"
	"github.com/meetupaws/travel_catalog/internal/apiclient"
	"github.com/meetupaws/travel_catalog/internal/model"
	"github.com/sirupsen/logrus"
)

type Handler func(ctx context.Context, event events.CloudWatchEvent) error

type Catalog interface {
	WalkHotels(ctx context.Context, fn func(model.HotelResponse) error) error
}

type HotelsRepository interface {
	Save(h model.Hotel) (model.Hotel, error)
}

func Adapter(catalog Catalog, hotelsRepo HotelsRepository, images model.ImagePolicy, logger logrus.FieldLogger) Handler {
	return func(ctx context.Context, event events.CloudWatchEvent) error {
		logger := logger.WithField("event_id", event.ID)
		pages, saved, soldOut, imagesDropped := 0, 0, 0, 0

		err := catalog.WalkHotels(ctx, func(page model.HotelResponse) error {
			pages++
			for _, h := range page.Items() {
				h, dropped := images.SanitizeHotel(h)
				if dropped {
					imagesDropped++
					logger.WithField("hotel_id", h.ID).Warn("image outside allowed domains dropped")
				}
				if _, err := hotelsRepo.Save(h); err != nil {
					return err
				}
				saved++
				if h.SoldOut() {
					soldOut++
				}
			}
			return nil
		})

		logger = logger.WithFields(logrus.Fields{
			"pages":          pages,
			"saved":          saved,
			"sold_out":       soldOut,
			"images_dropped": imagesDropped,
		})
		if err != nil {
			logger.WithError(err).Error("hotels sync failed")
			return err
		}
		if saved == 0 {
			logger.Info("hotels catalog is empty")
			return nil
		}
		logger.Info("hotels synced")
		return nil
	}
}

func main() {
	logger := internal.NewLogger()
	hotelsTable := internal.MustEnv("DYNAMODB_HOTELS")
	images := model.NewImagePolicy(internal.SplitList(internal.EnvOr("IMAGE_DOMAINS", model.DefaultImageDomain))...)

	session := session.Must(session.NewSession())
	catalog := apiclient.New(apiclient.ConfigFromEnv(), logger)
	hotelsRepo := repository.NewHotelsRepository(dynamodb.New(session), hotelsTable)
	lambda.Start(Adapter(catalog, hotelsRepo, images, logger))
}
