package contests

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"gitlab.com/judgehub-2025.net/internal/core/ports/primary"
	"gitlab.com/judgehub-2025.net/internal/core/ports/secondary"
	"gitlab.com/judgehub-2025.net/internal/core/services/contest"
	"gitlab.com/judgehub-2025.net/internal/domain"
	"gitlab.com/judgehub-2025.net/internal/handlers/response"
)

// ContestHandler handles contest API requests
type ContestHandler struct {
	contestService contest.IContestService
	logger         primary.Logger
}

func NewContestHandler(contestService contest.IContestService, logger primary.Logger) *ContestHandler {
	return &ContestHandler{
		contestService: contestService,
		logger:         logger,
	}
}

// RegisterRoutes registers the API routes for ContestHandler
func (h *ContestHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/contests", h.GetContests).Methods("GET")
	router.HandleFunc("/api/contests/{contestId}", h.GetContest).Methods("GET")
	router.HandleFunc("/api/platforms/{platform}/categories", h.GetCategories).Methods("GET")
}

// GetContests handles filtered contest listing requests
func (h *ContestHandler) GetContests(w http.ResponseWriter, r *http.Request) {
	var cond secondary.ContestCondition
	query := r.URL.Query()

	if value := query.Get("platform"); value != "" {
		platform := domain.ParsePlatform(value)
		if !platform.IsKnown() {
			response.WriteError(w, response.ErrorMessage{
				Message:    "invalid platform: " + value,
				StatusCode: http.StatusBadRequest,
			})
			return
		}
		cond.Platform = &platform
	}
	if value := query.Get("category"); value != "" {
		cond.Category = &value
	}
	if value := query.Get("page"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			response.WriteError(w, response.ErrorMessage{
				Message:    "invalid page: " + value,
				StatusCode: http.StatusBadRequest,
			})
			return
		}
		cond.Page = parsed
	}
	if value := query.Get("per_page"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			response.WriteError(w, response.ErrorMessage{
				Message:    "invalid per_page: " + value,
				StatusCode: http.StatusBadRequest,
			})
			return
		}
		cond.PerPage = parsed
	}

	contests, err := h.contestService.ListContests(r.Context(), cond)
	if err != nil {
		h.logger.Error("Failed to list contests", "error", err)
		response.WriteError(w, response.ErrorMessage{
			Message:    "failed to list contests",
			StatusCode: http.StatusInternalServerError,
		})
		return
	}

	response.WriteSuccess(w, map[string][]domain.Contest{"contests": contests})
}

// GetContest handles single contest retrieval requests
func (h *ContestHandler) GetContest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	contestID := vars["contestId"]

	cont, err := h.contestService.GetContest(r.Context(), contestID)
	if err != nil {
		h.logger.Error("Failed to get contest", "contestId", contestID, "error", err)
		response.WriteError(w, response.ErrorMessage{
			Message:    "failed to get contest",
			StatusCode: http.StatusInternalServerError,
		})
		return
	}
	if cont == nil {
		response.WriteError(w, response.ErrorMessage{
			Message:    "contest not found",
			StatusCode: http.StatusNotFound,
		})
		return
	}

	response.WriteSuccess(w, cont)
}

// GetCategories handles per-platform category listing requests
func (h *ContestHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	platform := domain.ParsePlatform(vars["platform"])
	if !platform.IsKnown() {
		response.WriteError(w, response.ErrorMessage{
			Message:    "invalid platform: " + vars["platform"],
			StatusCode: http.StatusBadRequest,
		})
		return
	}

	categories, err := h.contestService.ListCategories(r.Context(), platform)
	if err != nil {
		h.logger.Error("Failed to list categories", "platform", platform, "error", err)
		response.WriteError(w, response.ErrorMessage{
			Message:    "failed to list categories",
			StatusCode: http.StatusInternalServerError,
		})
		return
	}

	response.WriteSuccess(w, map[string][]string{"categories": categories})
}
