package handler

import (
	"net/http"

	"github.com/lambda-feedback/clicklog/internal/server"
)

// ClickPattern is the route click events are posted to. Other methods
// on the same path fall through to the static route.
const ClickPattern = http.MethodPost + " /log"

func NewClickRoute(handler *ClickHandler) server.HttpHandlerResult {
	return server.AsHttpHandler(ClickPattern, handler)
}

func NewStaticRoute(handler *StaticHandler) server.HttpHandlerResult {
	return server.AsHttpHandler("/", handler)
}
