package controllers

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/multierr"

	"github.com/tanish-jain-225/hotel-management-system/api/responses"
	pkgerrors "github.com/tanish-jain-225/hotel-management-system/pkg/errors"
	"github.com/tanish-jain-225/hotel-management-system/pkg/logger"
)

// Pinger is a dependency that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	logg  *logger.Logger
	store Pinger
	cache Pinger
}

func NewHealthController(logg *logger.Logger, store, cache Pinger) *HealthController {
	return &HealthController{logg: logg, store: store, cache: cache}
}

func (h *HealthController) Live(w http.ResponseWriter, r *http.Request) {
	responses.WriteSuccess(w, map[string]string{"status": "ok"})
}

// Ready reports whether the service can serve traffic: both the document
// store and redis must answer. Failures are combined so one probe shows
// every unreachable dependency at once.
func (h *HealthController) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var err error
	if pingErr := h.store.Ping(ctx); pingErr != nil {
		err = multierr.Append(err, fmt.Errorf("store: %w", pingErr))
	}
	if h.cache != nil {
		if pingErr := h.cache.Ping(ctx); pingErr != nil {
			err = multierr.Append(err, fmt.Errorf("redis: %w", pingErr))
		}
	}

	if err != nil {
		responses.WriteError(ctx, h.logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "service not ready"))
		return
	}

	responses.WriteSuccess(w, map[string]string{"status": "ready"})
}
