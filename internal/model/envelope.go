package model

import (
	"encoding/json"
	"fmt"
)

// Entity is a record carried by a list envelope.
type Entity interface {
	Key() int
	Validate() error
}

// ListResponse is the paginated envelope returned by the catalog API.
type ListResponse[T Entity] struct {
	Message string  `json:"message"`
	Data    Page[T] `json:"data"`
	Links   []Link  `json:"links"`
	Meta    Meta    `json:"meta"`
}

// Page is one page of records. CurrentPage and LastPage count from 1, so the
// zero Page is not a page the API would send.
type Page[T Entity] struct {
	CurrentPage int     `json:"current_page"`
	From        int     `json:"from"`
	LastPage    int     `json:"last_page"`
	NextPageURL *string `json:"next_page_url"`
	PrevPageURL *string `json:"prev_page_url"`
	Total       int     `json:"total"`
	Data        []T     `json:"data"`
}

type Link struct {
	Label  string  `json:"label"`
	URL    *string `json:"url"`
	Active bool    `json:"active"`
}

type Meta struct {
	LastPage int `json:"last_page"`
	PerPage  int `json:"per_page"`
	Total    int `json:"total"`
}

type (
	HotelResponse  = ListResponse[Hotel]
	FlightResponse = ListResponse[Flight]
)

type rawListResponse[T Entity] ListResponse[T]

// MarshalJSON writes nil record and link lists as [] so the encoded envelope
// still matches the schema.
func (r ListResponse[T]) MarshalJSON() ([]byte, error) {
	if r.Data.Data == nil {
		r.Data.Data = []T{}
	}
	if r.Links == nil {
		r.Links = []Link{}
	}
	return json.Marshal(rawListResponse[T](r))
}

func (r ListResponse[T]) Items() []T {
	return r.Data.Data
}

// IsEmpty reports the empty-result state: no records on this page.
func (r ListResponse[T]) IsEmpty() bool {
	return len(r.Data.Data) == 0
}

func (r ListResponse[T]) HasNextPage() bool {
	return r.Data.NextPageURL != nil || r.Data.CurrentPage < r.Data.LastPage
}

// NextPage returns the number of the following page, if there is one.
func (r ListResponse[T]) NextPage() (int, bool) {
	if r.IsEmpty() || !r.HasNextPage() {
		return 0, false
	}
	return r.Data.CurrentPage + 1, true
}

// Validate checks every record and reports all failures at once.
func (r ListResponse[T]) Validate() error {
	ve := newValidationError()
	for _, item := range r.Data.Data {
		err := item.Validate()
		if err == nil {
			continue
		}
		prefix := fmt.Sprintf("%s[%d]", kindOf(item), item.Key())
		if itemErr := IsValidationError(err); itemErr != nil {
			ve.merge(prefix, itemErr)
			continue
		}
		ve.add(prefix, err.Error())
	}
	return ve.orNil()
}

func kindOf(e Entity) string {
	switch e.(type) {
	case Hotel:
		return "hotel"
	case Flight:
		return "flight"
	}
	return "record"
}
