// Package schema checks catalog API payloads against the JSON Schema of each
// list envelope before they are decoded into the model types.
package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/meetupaws/travel_catalog/internal/model"
	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

var (
	//go:embed hotel_response.json
	hotelResponseSchema []byte
	//go:embed flight_response.json
	flightResponseSchema []byte

	hotelSchema  = mustLoad("hotel_response", hotelResponseSchema)
	flightSchema = mustLoad("flight_response", flightResponseSchema)
)

var (
	ErrMalformedPayload = errors.New("malformed_payload")
	// ErrTypeMismatch reports a value the schema accepts but the model type
	// cannot hold, such as 1.0 for an integer id.
	ErrTypeMismatch = errors.New("type_mismatch")
)

// Error is returned when a payload is well-formed JSON but does not match the schema.
type Error struct {
	Document string
	Errors   []gojsonschema.ResultError
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, re := range e.Errors {
		msgs = append(msgs, re.String())
	}
	return fmt.Sprintf("%s does not match schema: %s", e.Document, strings.Join(msgs, "; "))
}

func IsError(err error) *Error {
	var schemaErr *Error
	if errors.As(err, &schemaErr) {
		return schemaErr
	}
	return nil
}

func mustLoad(name string, doc []byte) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		panic(fmt.Sprintf("loading %s schema: %v", name, err))
	}
	return s
}

func validate(name string, s *gojsonschema.Schema, body []byte) error {
	if !json.Valid(body) {
		return errors.Wrapf(ErrMalformedPayload, "%s", name)
	}

	result, err := s.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return errors.Wrap(ErrMalformedPayload, err.Error())
	}
	if !result.Valid() {
		return &Error{Document: name, Errors: result.Errors()}
	}
	return nil
}

func unmarshal(body []byte, v interface{}) error {
	err := json.Unmarshal(body, v)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return errors.Wrapf(ErrTypeMismatch, "%s", typeErr.Field)
	}
	return errors.Wrap(ErrMalformedPayload, err.Error())
}

func ValidateHotelResponse(body []byte) error {
	return validate("hotel_response", hotelSchema, body)
}

func ValidateFlightResponse(body []byte) error {
	return validate("flight_response", flightSchema, body)
}

// DecodeHotelResponse validates body against the schema, decodes it and checks
// the record invariants.
func DecodeHotelResponse(body []byte) (model.HotelResponse, error) {
	r := model.HotelResponse{}
	if err := ValidateHotelResponse(body); err != nil {
		return r, err
	}
	if err := unmarshal(body, &r); err != nil {
		return model.HotelResponse{}, err
	}
	if err := r.Validate(); err != nil {
		return model.HotelResponse{}, err
	}
	return r, nil
}

// DecodeFlightResponse is DecodeHotelResponse for flights.
func DecodeFlightResponse(body []byte) (model.FlightResponse, error) {
	r := model.FlightResponse{}
	if err := ValidateFlightResponse(body); err != nil {
		return r, err
	}
	if err := unmarshal(body, &r); err != nil {
		return model.FlightResponse{}, err
	}
	if err := r.Validate(); err != nil {
		return model.FlightResponse{}, err
	}
	return r, nil
}
