package model

import (
	"time"

	"github.com/pkg/errors"
)

var ErrInvalidTimestamp = errors.New("invalid_timestamp")

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// ParseTimestamp reads the textual timestamps sent by the API.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Wrapf(ErrInvalidTimestamp, "%q", s)
}
