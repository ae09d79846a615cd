package httputil

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows any origin except on the restricted paths, which only accept
// allowedOrigin. Preflights are answered before routing.
func CORS(allowedOrigin string, restricted ...string) func(http.Handler) http.Handler {
	locked := make(map[string]bool, len(restricted))
	for _, p := range restricted {
		locked[p] = true
	}
	return cors.Handler(cors.Options{
		AllowOriginFunc: func(r *http.Request, origin string) bool {
			if locked[r.URL.Path] {
				return origin == allowedOrigin
			}
			return true
		},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	})
}
