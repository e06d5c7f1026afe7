package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws so the first one is outermost: Chain(a, b)(h) is
// a(b(h)). Nil entries are skipped.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] != nil {
				final = mws[i](final)
			}
		}
		return final
	}
}

// Then wraps h, for applying a chain to a whole mux.
func (m Middleware) Then(h http.Handler) http.Handler {
	if m == nil {
		return h
	}
	return m(h)
}

// ThenFunc wraps a handler function, for per-route middleware.
func (m Middleware) ThenFunc(fn http.HandlerFunc) http.Handler {
	return m.Then(fn)
}
