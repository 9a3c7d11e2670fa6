package app

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/metinatakli/content-catalog/internal/jsonutil"
)

func (app *Application) writeJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	return jsonutil.WriteJSON(w, status, data, headers)
}

// readInt returns the integer value of key, or nil if it is missing or malformed.
func readInt(qs url.Values, key string) *int {
	v, err := strconv.Atoi(qs.Get(key))
	if err != nil {
		return nil
	}

	return &v
}

func readFloat(qs url.Values, key string) *float64 {
	v, err := strconv.ParseFloat(qs.Get(key), 64)
	if err != nil {
		return nil
	}

	return &v
}

func readIntOr(qs url.Values, key string, def int) int {
	if v := readInt(qs, key); v != nil {
		return *v
	}

	return def
}
