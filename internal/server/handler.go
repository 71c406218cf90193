package server

import (
	"net/http"

	"go.uber.org/fx"
)

// HttpHandler is a handler mounted on the router under Pattern.
// Pattern follows http.ServeMux syntax, e.g. "POST /log".
type HttpHandler struct {
	Pattern string
	Handler http.Handler
}

type HttpHandlerResult struct {
	fx.Out

	Handler *HttpHandler `group:"handlers"`
}

func AsHttpHandler(
	pattern string,
	handler http.Handler,
) HttpHandlerResult {
	return HttpHandlerResult{
		Handler: &HttpHandler{
			Pattern: pattern,
			Handler: handler,
		},
	}
}

// Middleware wraps the router.
type Middleware func(http.Handler) http.Handler

type MiddlewareResult struct {
	fx.Out

	Middleware Middleware `group:"middlewares"`
}

func AsMiddleware(middleware Middleware) MiddlewareResult {
	return MiddlewareResult{
		Middleware: middleware,
	}
}
