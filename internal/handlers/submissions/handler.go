package submissions

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"gitlab.com/judgehub-2025.net/internal/core/ports/primary"
	"gitlab.com/judgehub-2025.net/internal/core/ports/secondary"
	"gitlab.com/judgehub-2025.net/internal/core/services/submission"
	"gitlab.com/judgehub-2025.net/internal/domain"
	"gitlab.com/judgehub-2025.net/internal/handlers/response"
)

// SubmissionHandler handles submission API requests. Responses come
// straight from the platform APIs, nothing is served from storage.
type SubmissionHandler struct {
	submissionService submission.ISubmissionService
	logger            primary.Logger
}

func NewSubmissionHandler(submissionService submission.ISubmissionService, logger primary.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
		logger:            logger,
	}
}

// RegisterRoutes registers the API routes for SubmissionHandler
func (h *SubmissionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/platforms/{platform}/submissions/recent", h.GetRecentSubmissions).Methods("GET")
	router.HandleFunc("/api/platforms/{platform}/users/{userId}/submissions", h.GetUserSubmissions).Methods("GET")
}

// GetRecentSubmissions handles recent submission retrieval requests
func (h *SubmissionHandler) GetRecentSubmissions(w http.ResponseWriter, r *http.Request) {
	platform, ok := platformFromPath(w, r)
	if !ok {
		return
	}

	submissions, err := h.submissionService.GetRecentSubmissions(r.Context(), platform)
	if err != nil {
		h.writeSubmissionError(w, platform, err)
		return
	}

	response.WriteSuccess(w, map[string][]domain.Submission{"submissions": submissions})
}

// GetUserSubmissions handles user submission retrieval requests
func (h *SubmissionHandler) GetUserSubmissions(w http.ResponseWriter, r *http.Request) {
	platform, ok := platformFromPath(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	cond := secondary.SubmissionCondition{
		UserID: vars["userId"],
	}

	query := r.URL.Query()
	if value := query.Get("from_second"); value != "" {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			response.WriteError(w, response.ErrorMessage{
				Message:    "invalid from_second: " + value,
				StatusCode: http.StatusBadRequest,
			})
			return
		}
		cond.FromSecond = parsed
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

	submissions, err := h.submissionService.GetUserSubmissions(r.Context(), platform, cond)
	if err != nil {
		h.writeSubmissionError(w, platform, err)
		return
	}

	response.WriteSuccess(w, map[string][]domain.Submission{"submissions": submissions})
}

func (h *SubmissionHandler) writeSubmissionError(w http.ResponseWriter, platform domain.Platform, err error) {
	if errors.Is(err, domain.ErrUnsupportedOperation) {
		response.WriteError(w, response.ErrorMessage{
			Message:    "submissions are not available for " + platform.String(),
			StatusCode: http.StatusNotImplemented,
		})
		return
	}

	h.logger.Error("Failed to fetch submissions", "platform", platform, "error", err)
	response.WriteError(w, response.ErrorMessage{
		Message:    "failed to fetch submissions",
		StatusCode: http.StatusBadGateway,
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
