package handler

import (
	"io"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/clicklog/internal/metrics"
)

const (
	// ClickMessage is logged once per click event.
	ClickMessage = "Button clicked!"

	// ClickResponse is the body returned for a click event.
	ClickResponse = "Clicked!"
)

type ClickHandlerParams struct {
	fx.In

	Metrics *metrics.Metrics
	Log     *zap.Logger
}

func NewClickHandler(params ClickHandlerParams) *ClickHandler {
	return &ClickHandler{
		clicks: params.Metrics.Clicks,
		log:    params.Log,
	}
}

// ClickHandler logs a click event. The request body is ignored.
type ClickHandler struct {
	clicks prometheus.Counter
	log    *zap.Logger
}

func (h *ClickHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.log.Info(ClickMessage)
	h.clicks.Inc()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if _, err := io.WriteString(w, ClickResponse); err != nil {
		h.log.Debug("failed to write response",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
}
