package middleware

import "net/http"

// Middleware is a single link in the router's middleware chain.
//
// It must either call next or write a response itself.
type Middleware func(w http.ResponseWriter, r *http.Request, next http.Handler)

// Wrap binds m to next, producing a plain handler.
func Wrap(m Middleware, next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m(w, r, next)
	}
}

// FromHandler adapts a conventional func(http.Handler) http.Handler
// middleware to Middleware.
func FromHandler(wrap func(http.Handler) http.Handler) Middleware {
	return func(w http.ResponseWriter, r *http.Request, next http.Handler) {
		wrap(next).ServeHTTP(w, r)
	}
}
