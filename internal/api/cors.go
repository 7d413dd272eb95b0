package api

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS returns the cross-origin policy for browser clients of the RPC
// endpoint. A "*" origin allows any site without credentials.
func CORS(origins []string) *cors.Cors {
	allowAll := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
	}
	if allowAll {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedOrigins:   origins,
		AllowCredentials: !allowAll,
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		MaxAge:           600,
	})
}
