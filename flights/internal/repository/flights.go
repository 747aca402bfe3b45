package repository

import (
	"sort"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/meetupaws/travel_catalog/internal"
	"github.com/meetupaws/travel_catalog/internal/model"
	"github.com/pkg/errors"
)

const statusIndex = "by_status"

var ErrNoFlightsFound = errors.New("no_flights_found")

type FlightsRepository struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

func (r *FlightsRepository) Save(m model.Flight) (model.Flight, error) {
	item := map[string]*dynamodb.AttributeValue{}
	internal.PutInt(item, "id", m.ID)
	internal.PutString(item, "flight_number", m.FlightNumber)
	internal.PutString(item, "airline", m.Airline)
	internal.PutString(item, "departure_airport", m.DepartureAirport)
	internal.PutString(item, "arrival_airport", m.ArrivalAirport)
	internal.PutString(item, "departure_time", m.DepartureTime)
	internal.PutString(item, "arrival_time", m.ArrivalTime)
	internal.PutString(item, "flight_type", string(m.FlightType))
	internal.PutInt(item, "total_seats", m.TotalSeats)
	internal.PutInt(item, "available_seats", m.AvailableSeats)
	internal.PutString(item, "price", m.Price.String())
	internal.PutString(item, "travel_class", string(m.TravelClass))
	internal.PutString(item, "image", m.Image)
	internal.PutString(item, "status", string(m.Status))
	internal.PutString(item, "created_at", m.CreatedAt)
	internal.PutString(item, "updated_at", m.UpdatedAt)

	if p := m.PassengerDetails; p != nil {
		item["passenger_details"] = &dynamodb.AttributeValue{
			M: map[string]*dynamodb.AttributeValue{
				"adults":   internal.IntAttr(p.Adults),
				"children": internal.IntAttr(p.Children),
				"infants":  internal.IntAttr(p.Infants),
			},
		}
	}

	_, err := r.client.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return model.Flight{}, errors.Wrapf(err, "saving flight %d", m.ID)
	}

	return m, nil
}

func (r *FlightsRepository) Find(id int) (model.Flight, error) {
	out, err := r.client.GetItem(&dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]*dynamodb.AttributeValue{
			"id": internal.IntAttr(id),
		},
	})
	if err != nil {
		return model.Flight{}, errors.Wrapf(err, "finding flight %d", id)
	}

	if len(out.Item) == 0 {
		return model.Flight{}, ErrNoFlightsFound
	}

	flights, err := r.hydrate([]map[string]*dynamodb.AttributeValue{out.Item})
	if err != nil {
		return model.Flight{}, err
	}
	return flights[0], nil
}

// ListByStatus returns the stored flights with the given status ordered by departure time.
func (r *FlightsRepository) ListByStatus(status model.FlightStatus) ([]model.Flight, error) {
	flights := []model.Flight{}
	var hydrateErr error
	err := r.client.QueryPages(&dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		IndexName:              aws.String(statusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]*string{
			"#status": aws.String("status"),
		},
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":status": {
				S: aws.String(string(status)),
			},
		},
	}, func(out *dynamodb.QueryOutput, lastPage bool) bool {
		page, err := r.hydrate(out.Items)
		if err != nil {
			hydrateErr = err
			return false
		}
		flights = append(flights, page...)
		return true
	})
	if err == nil {
		err = hydrateErr
	}
	if err != nil {
		return []model.Flight{}, errors.Wrapf(err, "listing %s flights", status)
	}

	if len(flights) == 0 {
		return []model.Flight{}, ErrNoFlightsFound
	}

	sort.SliceStable(flights, func(i, j int) bool {
		return departsBefore(flights[i], flights[j])
	})
	return flights, nil
}

// departsBefore orders by parsed departure time. Unparseable times sort last.
func departsBefore(a, b model.Flight) bool {
	ta, errA := a.Departure()
	tb, errB := b.Departure()
	switch {
	case errA != nil && errB != nil:
		return a.DepartureTime < b.DepartureTime
	case errA != nil:
		return false
	case errB != nil:
		return true
	}
	return ta.Before(tb)
}

func (r *FlightsRepository) hydrate(items []map[string]*dynamodb.AttributeValue) ([]model.Flight, error) {

	flights := make([]model.Flight, len(items))
	for i, item := range items {
		var err error
		if flights[i].ID, err = internal.GetInt(item, "id"); err != nil {
			return []model.Flight{}, err
		}
		if flights[i].TotalSeats, err = internal.GetInt(item, "total_seats"); err != nil {
			return []model.Flight{}, err
		}
		if flights[i].AvailableSeats, err = internal.GetInt(item, "available_seats"); err != nil {
			return []model.Flight{}, err
		}
		flights[i].FlightNumber = internal.GetString(item, "flight_number")
		flights[i].Airline = internal.GetString(item, "airline")
		flights[i].DepartureAirport = internal.GetString(item, "departure_airport")
		flights[i].ArrivalAirport = internal.GetString(item, "arrival_airport")
		flights[i].DepartureTime = internal.GetString(item, "departure_time")
		flights[i].ArrivalTime = internal.GetString(item, "arrival_time")
		flights[i].FlightType = model.FlightType(internal.GetString(item, "flight_type"))
		flights[i].Price = model.Decimal(internal.GetString(item, "price"))
		flights[i].TravelClass = model.TravelClass(internal.GetString(item, "travel_class"))
		flights[i].Image = internal.GetString(item, "image")
		flights[i].Status = model.FlightStatus(internal.GetString(item, "status"))
		flights[i].CreatedAt = internal.GetString(item, "created_at")
		flights[i].UpdatedAt = internal.GetString(item, "updated_at")

		if v, ok := item["passenger_details"]; ok && v.M != nil {
			details, err := r.hydratePassengerDetails(v.M)
			if err != nil {
				return []model.Flight{}, err
			}
			flights[i].PassengerDetails = &details
		}
	}
	return flights, nil

}

func (r *FlightsRepository) hydratePassengerDetails(m map[string]*dynamodb.AttributeValue) (model.PassengerDetails, error) {
	details := model.PassengerDetails{}
	var err error
	if details.Adults, err = internal.GetInt(m, "adults"); err != nil {
		return model.PassengerDetails{}, err
	}
	if details.Children, err = internal.GetInt(m, "children"); err != nil {
		return model.PassengerDetails{}, err
	}
	if details.Infants, err = internal.GetInt(m, "infants"); err != nil {
		return model.PassengerDetails{}, err
	}
	return details, nil
}

func NewFlightsRepository(client dynamodbiface.DynamoDBAPI, table string) *FlightsRepository {
	return &FlightsRepository{
		client: client,
		table:  table,
	}
}
