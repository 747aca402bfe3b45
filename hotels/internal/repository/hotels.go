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

var ErrNoHotelsFound = errors.New("no_hotels_found")

// HotelsRepository keeps the last seen copy of every hotel listed by the API.
type HotelsRepository struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

func (r *HotelsRepository) Save(h model.Hotel) (model.Hotel, error) {
	item := map[string]*dynamodb.AttributeValue{}
	internal.PutInt(item, "id", h.ID)
	internal.PutString(item, "name", h.Name)
	internal.PutString(item, "location", h.Location)
	internal.PutInt(item, "total_rooms", h.TotalRooms)
	internal.PutInt(item, "remaining_rooms", h.RemainingRooms)
	internal.PutString(item, "image", h.Image)
	internal.PutString(item, "price", h.Price.String())
	internal.PutString(item, "rating", h.Rating.String())
	internal.PutString(item, "created_at", h.CreatedAt)
	internal.PutString(item, "updated_at", h.UpdatedAt)

	_, err := r.client.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return model.Hotel{}, errors.Wrapf(err, "saving hotel %d", h.ID)
	}

	return h, nil
}

func (r *HotelsRepository) Find(id int) (model.Hotel, error) {
	out, err := r.client.GetItem(&dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]*dynamodb.AttributeValue{
			"id": internal.IntAttr(id),
		},
	})
	if err != nil {
		return model.Hotel{}, errors.Wrapf(err, "finding hotel %d", id)
	}

	if len(out.Item) == 0 {
		return model.Hotel{}, ErrNoHotelsFound
	}

	hotels, err := r.hydrate([]map[string]*dynamodb.AttributeValue{out.Item})
	if err != nil {
		return model.Hotel{}, err
	}
	return hotels[0], nil
}

// List returns every stored hotel ordered by id.
func (r *HotelsRepository) List() ([]model.Hotel, error) {
	hotels := []model.Hotel{}
	var hydrateErr error
	err := r.client.ScanPages(&dynamodb.ScanInput{
		TableName: aws.String(r.table),
	}, func(out *dynamodb.ScanOutput, lastPage bool) bool {
		page, err := r.hydrate(out.Items)
		if err != nil {
			hydrateErr = err
			return false
		}
		hotels = append(hotels, page...)
		return true
	})
	if err == nil {
		err = hydrateErr
	}
	if err != nil {
		return []model.Hotel{}, errors.Wrap(err, "listing hotels")
	}

	if len(hotels) == 0 {
		return []model.Hotel{}, ErrNoHotelsFound
	}

	sort.Slice(hotels, func(i, j int) bool { return hotels[i].ID < hotels[j].ID })
	return hotels, nil
}

func (r *HotelsRepository) hydrate(items []map[string]*dynamodb.AttributeValue) ([]model.Hotel, error) {
	hotels := make([]model.Hotel, len(items))
	for i, item := range items {
		var err error
		if hotels[i].ID, err = internal.GetInt(item, "id"); err != nil {
			return []model.Hotel{}, err
		}
		if hotels[i].TotalRooms, err = internal.GetInt(item, "total_rooms"); err != nil {
			return []model.Hotel{}, err
		}
		if hotels[i].RemainingRooms, err = internal.GetInt(item, "remaining_rooms"); err != nil {
			return []model.Hotel{}, err
		}
		hotels[i].Name = internal.GetString(item, "name")
		hotels[i].Location = internal.GetString(item, "location")
		hotels[i].Image = internal.GetString(item, "image")
		hotels[i].Price = model.Decimal(internal.GetString(item, "price"))
		hotels[i].Rating = model.Decimal(internal.GetString(item, "rating"))
		hotels[i].CreatedAt = internal.GetString(item, "created_at")
		hotels[i].UpdatedAt = internal.GetString(item, "updated_at")
	}
	return hotels, nil
}

func NewHotelsRepository(client dynamodbiface.DynamoDBAPI, table string) *HotelsRepository {
	return &HotelsRepository{
		client: client,
		table:  table,
	}
}
