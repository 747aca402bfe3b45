package main

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/meetupaws/travel_catalog/internal/model"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type CatalogMock struct {
	mock.Mock
}

func (m *CatalogMock) WalkHotels(ctx context.Context, fn func(model.HotelResponse) error) error {
	ret := m.Called()
	for _, p := range ret.Get(0).([]model.HotelResponse) {
		if err := fn(p); err != nil {
			return err
		}
	}
	return ret.Error(1)
}

type HotelsRepositoryMock struct {
	mock.Mock
}

func (m *HotelsRepositoryMock) Save(h model.Hotel) (model.Hotel, error) {
	ret := m.Called(h)
	return ret.Get(0).(model.Hotel), ret.Error(1)
}

func page(current, last int, hotels ...model.Hotel) model.HotelResponse {
	return model.HotelResponse{
		Data: model.Page[model.Hotel]{CurrentPage: current, LastPage: last, Data: hotels},
	}
}

func TestAdapter(t *testing.T) {

	type mocks struct {
		catalog    *CatalogMock
		hotelsRepo *HotelsRepositoryMock
	}

	overlook := model.Hotel{ID: 1, Name: "Overlook", TotalRooms: 40, RemainingRooms: 0, Rating: "3.10"}
	budapest := model.Hotel{ID: 2, Name: "Grand Budapest", TotalRooms: 120, RemainingRooms: 14, Rating: "4.70",
		Image: "https://cdn.dummyjson.com/hotels/2.png"}
	foreign := model.Hotel{ID: 3, Name: "Bates Motel", TotalRooms: 12, RemainingRooms: 12, Rating: "1.20",
		Image: "https://images.example.com/3.png"}
	foreignStripped := foreign
	foreignStripped.Image = ""

	tests := []struct {
		name        string
		mocks       mocks
		wantErr     error
		wantMessage string
		mocker      func(m mocks)
	}{
		{
			name: "Store every hotel of every page",
			mocks: mocks{
				catalog:    &CatalogMock{},
				hotelsRepo: &HotelsRepositoryMock{},
			},
			wantMessage: "hotels synced",
			mocker: func(m mocks) {
				m.catalog.On("WalkHotels").Return([]model.HotelResponse{
					page(1, 2, overlook),
					page(2, 2, budapest, foreign),
				}, nil).Once()
				m.hotelsRepo.On("Save", overlook).Return(overlook, nil).Once()
				m.hotelsRepo.On("Save", budapest).Return(budapest, nil).Once()
				m.hotelsRepo.On("Save", foreignStripped).Return(foreignStripped, nil).Once()
			},
		},
		{
			name: "Report an empty catalog",
			mocks: mocks{
				catalog:    &CatalogMock{},
				hotelsRepo: &HotelsRepositoryMock{},
			},
			wantMessage: "hotels catalog is empty",
			mocker: func(m mocks) {
				m.catalog.On("WalkHotels").Return([]model.HotelResponse{page(1, 1)}, nil).Once()
			},
		},
		{
			name: "Stop at the first repository error",
			mocks: mocks{
				catalog:    &CatalogMock{},
				hotelsRepo: &HotelsRepositoryMock{},
			},
			wantErr:     errors.New("Some error"),
			wantMessage: "hotels sync failed",
			mocker: func(m mocks) {
				m.catalog.On("WalkHotels").Return([]model.HotelResponse{page(1, 1, overlook, budapest)}, nil).Once()
				m.hotelsRepo.On("Save", overlook).Return(model.Hotel{}, errors.New("Some error")).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			tt.mocker(tt.mocks)
			logger, hook := test.NewNullLogger()
			logger.SetLevel(logrus.DebugLevel)

			// Act
			handler := Adapter(tt.mocks.catalog, tt.mocks.hotelsRepo, model.NewImagePolicy(model.DefaultImageDomain), logger)
			err := handler(context.Background(), events.CloudWatchEvent{ID: "evt-1"})

			// Assert
			require.Equal(t, tt.wantErr, err)
			require.NotNil(t, hook.LastEntry())
			require.Equal(t, tt.wantMessage, hook.LastEntry().Message)
			require.Equal(t, "evt-1", hook.LastEntry().Data["event_id"])
			tt.mocks.catalog.AssertExpectations(t)
			tt.mocks.hotelsRepo.AssertExpectations(t)
		})
	}

}
