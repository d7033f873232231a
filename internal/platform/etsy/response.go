package etsy

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrMalformedResponse is returned when a response carries no results array
// and no error message either.
var ErrMalformedResponse = errors.New("response has no results")

// APIError is an application-level error returned by the Etsy API.
type APIError struct {
	Message string
}

// Error returns the error message extracted from the response.
func (e *APIError) Error() string {
	return fmt.Sprintf("etsy api error: %s", e.Message)
}

// envelope is the common shape of Etsy API responses.
type envelope struct {
	Count    int             `json:"count"`
	Results  json.RawMessage `json:"results"`
	ErrorMsg string          `json:"error_msg"`
}

// decodeResponse decides the response variant once: results, api error or malformed.
// When results is not nil, the results array is unmarshalled into it.
func decodeResponse(body []byte, results any) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		// Etsy replies to some malformed requests with a bare error string.
		if msg := strings.TrimSpace(string(body)); msg != "" && utf8.ValidString(msg) {
			return &APIError{Message: msg}
		}
		return ErrMalformedResponse
	}

	if env.Results == nil {
		if env.ErrorMsg != "" {
			return &APIError{Message: env.ErrorMsg}
		}
		return ErrMalformedResponse
	}

	if results == nil {
		return nil
	}

	if err := json.Unmarshal(env.Results, results); err != nil {
		return fmt.Errorf("can't decode results: %w", err)
	}

	return nil
}
