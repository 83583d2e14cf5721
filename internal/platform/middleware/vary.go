package middleware

import "net/http"

// Vary returns middleware that adds Accept to the Vary header on all responses.
// Error responses are negotiated between JSON and CBOR problem documents, so
// caches must key on Accept. CORS adds Origin separately.
func Vary() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Accept")
			next.ServeHTTP(w, r)
		})
	}
}
