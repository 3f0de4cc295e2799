package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// ErrInvalidQueryParam is returned by the query helpers when a parameter is
// present but not a valid integer.
var ErrInvalidQueryParam = errors.New("invalid query parameter")

// WriteJSON serializes data to JSON, sets "Content-Type: application/json"
// and writes statusCode followed by the body.
//
// If marshaling fails it responds with 500 Internal Server Error and returns
// a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.Health{Status: "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// QueryInt64 reads an integer query parameter. present is false when the
// parameter is absent or empty.
func QueryInt64(r *http.Request, name string) (value int64, present bool, err error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false, nil
	}

	value, err = strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, true, fmt.Errorf("%w %q: %w", ErrInvalidQueryParam, name, err)
	}

	return value, true, nil
}

// QueryInt is [QueryInt64] for int-sized parameters such as page numbers.
func QueryInt(r *http.Request, name string) (int, bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, true, fmt.Errorf("%w %q: %w", ErrInvalidQueryParam, name, err)
	}

	return value, true, nil
}
