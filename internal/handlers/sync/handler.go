package sync

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/judgehub-2025.net/internal/core/ports/primary"
	"gitlab.com/judgehub-2025.net/internal/core/services/update"
	"gitlab.com/judgehub-2025.net/internal/domain"
	"gitlab.com/judgehub-2025.net/internal/handlers/response"
)

// SyncHandler handles manual sync trigger requests. The scheduled
// loop covers normal operation; these endpoints exist for operators.
type SyncHandler struct {
	updateService update.IUpdateService
	logger        primary.Logger
}

func NewSyncHandler(updateService update.IUpdateService, logger primary.Logger) *SyncHandler {
	return &SyncHandler{
		updateService: updateService,
		logger:        logger,
	}
}

// RegisterRoutes registers the API routes for SyncHandler. Triggers
// mutate state, so they sit behind the JWT middleware.
func (h *SyncHandler) RegisterRoutes(router *mux.Router, authorize func(http.Handler) http.Handler) {
	router.Handle("/api/sync", authorize(http.HandlerFunc(h.SyncAll))).Methods("POST")
	router.Handle("/api/sync/{platform}", authorize(http.HandlerFunc(h.SyncPlatform))).Methods("POST")
	router.HandleFunc("/api/sync/{platform}/status", h.SyncStatus).Methods("GET")
}

// SyncAll handles full sync trigger requests
func (h *SyncHandler) SyncAll(w http.ResponseWriter, r *http.Request) {
	if err := h.updateService.SyncAll(r.Context()); err != nil {
		h.logger.Error("Manual sync failed", "error", err)
		response.WriteError(w, response.ErrorMessage{
			Message:    err.Error(),
			StatusCode: http.StatusInternalServerError,
		})
		return
	}

	response.WriteSuccess(w, map[string]string{"status": "ok"})
}

// SyncPlatform handles single platform sync trigger requests
func (h *SyncHandler) SyncPlatform(w http.ResponseWriter, r *http.Request) {
	platform, ok := platformFromPath(w, r)
	if !ok {
		return
	}

	if err := h.updateService.SyncPlatform(r.Context(), platform); err != nil {
		if errors.Is(err, update.ErrSyncInProgress) {
			response.WriteError(w, response.ErrorMessage{
				Message:    "sync already in progress",
				StatusCode: http.StatusConflict,
			})
			return
		}
		h.logger.Error("Manual platform sync failed", "platform", platform, "error", err)
		response.WriteError(w, response.ErrorMessage{
			Message:    err.Error(),
			StatusCode: http.StatusInternalServerError,
		})
		return
	}

	response.WriteSuccess(w, map[string]string{"status": "ok"})
}

// SyncStatus handles sync status retrieval requests
func (h *SyncHandler) SyncStatus(w http.ResponseWriter, r *http.Request) {
	platform, ok := platformFromPath(w, r)
	if !ok {
		return
	}

	lastRun, err := h.updateService.LastRun(r.Context(), platform)
	if err != nil {
		h.logger.Error("Failed to get sync status", "platform", platform, "error", err)
		response.WriteError(w, response.ErrorMessage{
			Message:    "failed to get sync status",
			StatusCode: http.StatusInternalServerError,
		})
		return
	}

	response.WriteSuccess(w, map[string]string{
		"platform": platform.String(),
		"last_run": lastRun,
	})
}

func platformFromPath(w http.ResponseWriter, r *http.Request) (domain.Platform, bool) {
	vars := mux.Vars(r)
	platform := domain.ParsePlatform(vars["platform"])
	if !platform.IsKnown() {
		response.WriteError(w, response.ErrorMessage{
			Message:    "invalid platform: " + vars["platform"],
			StatusCode: http.StatusBadRequest,
		})
		return platform, false
	}
	return platform, true
}
