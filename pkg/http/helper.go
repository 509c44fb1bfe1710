package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	apperrors "radar/pkg/errors"
)

// DecodeJSON decodes the request body into dst. An empty body leaves dst
// untouched and reports false, so callers can fall back to defaults.
func DecodeJSON(r *http.Request, dst any) (bool, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return false, nil
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return false, apperrors.TooLarge(maxErr.Limit)
		}
		return false, apperrors.BadRequest("Invalid JSON body: "+err.Error(), err)
	}

	if decoder.More() {
		return false, apperrors.InvalidInput("Request body must contain a single JSON object")
	}
	return true, nil
}

// QueryParam returns the trimmed value of a query parameter.
func QueryParam(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}
