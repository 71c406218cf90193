package server

import (
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
)

// NewRouter mounts handlers on a ServeMux and wraps it with the given
// middlewares, the first one being the outermost. Panics are reported
// to sentry and re-raised to net/http.
func NewRouter(handlers []*HttpHandler, middlewares []Middleware) http.Handler {
	mux := http.NewServeMux()

	for _, handler := range handlers {
		mux.Handle(handler.Pattern, handler.Handler)
	}

	var handler http.Handler = mux
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}

	sentryHandler := sentryhttp.New(sentryhttp.Options{
		Repanic: true,
	})

	return sentryHandler.Handle(handler)
}
