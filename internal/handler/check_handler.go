package handler

import (
	"net/http"
	"strconv"

	"github.com/bagdasarian/time-worked-alert/internal/domain"
	"github.com/bagdasarian/time-worked-alert/internal/service"
)

// Check запускает один проход. dry_run=true только считает решения, без отправки.
// Без параметров действуют настройки сервера (DRY_RUN, INCLUDE_WEEKENDS).
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	opts := service.RunOptions{
		DryRun:          h.dryRun,
		IncludeWeekends: h.includeWeekends,
	}

	if raw := r.URL.Query().Get("dry_run"); raw != "" {
		dryRun, err := strconv.ParseBool(raw)
		if err != nil {
			h.handleError(w, &domain.DomainError{Code: "BAD_REQUEST", Message: "dry_run must be a boolean"})
			return
		}
		opts.DryRun = dryRun
	}
	if raw := r.URL.Query().Get("include_weekends"); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			h.handleError(w, &domain.DomainError{Code: "BAD_REQUEST", Message: "include_weekends must be a boolean"})
			return
		}
		opts.IncludeWeekends = include
	}

	h.runMu.Lock()
	result, err := h.overworkService.Run(r.Context(), h.now(), opts)
	h.runMu.Unlock()
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, runResultToHTTP(result))
}
