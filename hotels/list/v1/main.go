package main

import (
	"context"
	"net/http"
	"strconv"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/meetupaws/travel_catalog/hotels/internal/repository"
	"github.com/meetupaws/travel_catalog/internal"
	"github.com/meetupaws/travel_catalog/internal/model"
	"github.com/pkg/errors"
)

type Handler func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

type ResponseHotel struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Location       string `json:"location"`
	RemainingRooms int    `json:"remaining_rooms"`
	SoldOut        bool   `json:"sold_out"`
	Price          string `json:"price,omitempty"`
	Rating         string `json:"rating"`
	Image          string `json:"image,omitempty"`
}

type HotelsRepository interface {
	Find(id int) (model.Hotel, error)
	List() ([]model.Hotel, error)
}

var ErrInvalidHotelID = errors.New("invalid_hotel_id")

func toResponse(h model.Hotel) ResponseHotel {
	return ResponseHotel{
		ID:             h.ID,
		Name:           h.Name,
		Location:       h.Location,
		RemainingRooms: h.RemainingRooms,
		SoldOut:        h.SoldOut(),
		Price:          h.Price.String(),
		Rating:         h.Rating.String(),
		Image:          h.Image,
	}
}

// Adapter serves GET /hotels and GET /hotels/{id} from the mirror.
func Adapter(hotelsRepo HotelsRepository) Handler {
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		// Single hotel
		if rawID, ok := req.PathParameters["id"]; ok {
			id, err := strconv.Atoi(rawID)
			if err != nil || id < 1 {
				return internal.Error(http.StatusBadRequest, ErrInvalidHotelID), nil
			}

			hotel, err := hotelsRepo.Find(id)
			if err == repository.ErrNoHotelsFound {
				return internal.Error(http.StatusNotFound, err), nil
			}
			if err != nil {
				return internal.Error(http.StatusInternalServerError, err), nil
			}
			return internal.RespondJSON(http.StatusOK, toResponse(hotel)), nil
		}

		// Every hotel
		hotels, err := hotelsRepo.List()
		if err == repository.ErrNoHotelsFound {
			return internal.Error(http.StatusNotFound, err), nil
		}
		if err != nil {
			return internal.Error(http.StatusInternalServerError, err), nil
		}

		response := make([]ResponseHotel, len(hotels))
		for i, h := range hotels {
			response[i] = toResponse(h)
		}
		return internal.RespondJSON(http.StatusOK, response), nil
	}
}

func main() {
	hotelsTable := internal.MustEnv("DYNAMODB_HOTELS")
	session := session.Must(session.NewSession())
	hotelsRepo := repository.NewHotelsRepository(dynamodb.New(session), hotelsTable)
	lambda.Start(Adapter(hotelsRepo))
}
