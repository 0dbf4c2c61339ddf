package fares

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Quote is a single fare returned by the fare API.
type Quote struct {
	Fare        string // decimal text as sent, e.g. "199.99"
	Airline     string
	AirportCode string
	AirportName string
}

// Config configures a Client. Zero values fall back to the package defaults.
type Config struct {
	BaseURL            string
	Timeout            time.Duration
	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration
}

// destinationResponse is the body of GET /destination/{city}.
// An unknown city is answered with 200 and only Error set.
type destinationResponse struct {
	Fare        flexString `json:"fare"`
	Airline     string     `json:"airline"`
	AirportCode string     `json:"airportCode"`
	AirportName string     `json:"airportName"`
	Error       string     `json:"error"`
}

// flexString accepts a JSON string or number. Numbers are kept in plain
// decimal form.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("fare is neither string nor number: %w", err)
	}
	// Plain decimal text: 1e3 becomes 1000.
	v, err := strconv.ParseFloat(n.String(), 64)
	if err != nil {
		return fmt.Errorf("fare %s: %w", n, err)
	}
	*f = flexString(strconv.FormatFloat(v, 'f', -1, 64))
	return nil
}
