package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bagdasarian/time-worked-alert/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("GET /healthz", h.Health)
	mux.HandleFunc("POST /check", h.Check)
	mux.Handle("GET /metrics", promhttp.Handler())
}
