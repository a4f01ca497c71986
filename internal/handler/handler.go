package handler

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/bagdasarian/time-worked-alert/internal/service"
)

type Handler struct {
	overworkService service.OverworkService
	includeWeekends bool
	dryRun          bool
	now             func() time.Time
	logger          *zap.Logger

	// один проход за раз
	runMu sync.Mutex
}

func NewHandler(
	logger *zap.Logger,
	overworkService service.OverworkService,
	includeWeekends bool,
	dryRun bool,
) *Handler {
	return &Handler{
		overworkService: overworkService,
		includeWeekends: includeWeekends,
		dryRun:          dryRun,
		now:             time.Now,
		logger:          logger.Named("http"),
	}
}
