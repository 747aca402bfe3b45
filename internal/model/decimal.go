package model

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

var ErrInvalidDecimal = errors.New("invalid_decimal")

// Decimal is a decimal value carried as text, e.g. "129.99".
// It decodes from either a JSON string or a JSON number and always encodes as a string.
type Decimal string

func (d Decimal) String() string {
	return string(d)
}

func (d Decimal) Float64() (float64, error) {
	f, err := strconv.ParseFloat(string(d), 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidDecimal, "%q", string(d))
	}
	return f, nil
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(d))
}

func (d *Decimal) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*d = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*d = Decimal(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.Wrapf(ErrInvalidDecimal, "%s", b)
	}
	*d = Decimal(n.String())
	return nil
}
