package middleware

import (
	"net/http"

	apperrors "radar/pkg/errors"
	httputil "radar/pkg/http"
)

// MaxRequestSize caps request bodies at limit bytes. Declared oversize
// bodies are rejected up front; the rest are cut off while decoding.
func MaxRequestSize(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				httputil.WriteError(w, apperrors.TooLarge(limit))
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
