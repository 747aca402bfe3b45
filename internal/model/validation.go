package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ValidationError collects invariant violations per field. Envelope validation
// prefixes fields with the record id, e.g. "hotel[7].remaining_rooms".
type ValidationError struct {
	fields map[string][]string
}

func newValidationError() *ValidationError {
	return &ValidationError{
		fields: make(map[string][]string),
	}
}

func IsValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}

	var validationError *ValidationError
	if errors.As(err, &validationError) {
		return validationError
	}

	return nil
}

func (ve *ValidationError) add(field, msg string) {
	ve.fields[field] = append(ve.fields[field], msg)
}

func (ve *ValidationError) merge(prefix string, other *ValidationError) {
	for field, msgs := range other.fields {
		for _, msg := range msgs {
			ve.add(prefix+"."+field, msg)
		}
	}
}

func (ve *ValidationError) orNil() error {
	if len(ve.fields) == 0 {
		return nil
	}
	return ve
}

func (ve *ValidationError) Fields() map[string][]string {
	return ve.fields
}

func (ve *ValidationError) Error() string {
	keys := make([]string, 0, len(ve.fields))
	for k := range ve.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(ve.fields[k], ", ")))
	}
	return strings.Join(parts, "; ")
}
