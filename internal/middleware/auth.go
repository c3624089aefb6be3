// internal/middleware/auth.go
// Middleware untuk cek API key (X-API-Key)

package middleware

import (
	"crypto/subtle"
	"net/http"

	"weather-dashboard/internal/util"
)

// APIKey menolak request tanpa X-API-Key yang cocok. expected kosong = tidak ada proteksi.
func APIKey(expected string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if expected == "" || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}
			got := r.Header.Get("X-API-Key")
			if subtle.ConstantTimeCompare([]byte(got), []byte(expected)) != 1 {
				util.WriteError(w, util.Unauthorized("missing or invalid X-API-Key"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
