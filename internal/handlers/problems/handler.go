package problems

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"gitlab.com/judgehub-2025.net/internal/core/ports/primary"
	"gitlab.com/judgehub-2025.net/internal/core/ports/secondary"
	"gitlab.com/judgehub-2025.net/internal/core/services/problem"
	"gitlab.com/judgehub-2025.net/internal/domain"
	"gitlab.com/judgehub-2025.net/internal/handlers/response"
)

// ProblemHandler handles problem API requests
type ProblemHandler struct {
	problemService problem.IProblemService
	logger         primary.Logger
}

func NewProblemHandler(problemService problem.IProblemService, logger primary.Logger) *ProblemHandler {
	return &ProblemHandler{
		problemService: problemService,
		logger:         logger,
	}
}

// RegisterRoutes registers the API routes for ProblemHandler
func (h *ProblemHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/problems", h.GetProblems).Methods("GET")
	router.HandleFunc("/api/problems/{problemId}", h.GetProblem).Methods("GET")
	router.HandleFunc("/api/tags", h.GetTags).Methods("GET")
}

// GetProblems handles filtered problem listing requests
func (h *ProblemHandler) GetProblems(w http.ResponseWriter, r *http.Request) {
	cond, err := conditionFromQuery(r)
	if err != nil {
		response.WriteError(w, response.ErrorMessage{
			Message:    err.Error(),
			StatusCode: http.StatusBadRequest,
		})
		return
	}

	problems, err := h.problemService.ListProblems(r.Context(), cond)
	if err != nil {
		h.logger.Error("Failed to list problems", "error", err)
		response.WriteError(w, response.ErrorMessage{
			Message:    "failed to list problems",
			StatusCode: http.StatusInternalServerError,
		})
		return
	}

	response.WriteSuccess(w, map[string][]domain.Problem{"problems": problems})
}

// GetProblem handles single problem retrieval requests
func (h *ProblemHandler) GetProblem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	problemID := vars["problemId"]

	prob, err := h.problemService.GetProblem(r.Context(), problemID)
	if err != nil {
		h.logger.Error("Failed to get problem", "problemId", problemID, "error", err)
		response.WriteError(w, response.ErrorMessage{
			Message:    "failed to get problem",
			StatusCode: http.StatusInternalServerError,
		})
		return
	}
	if prob == nil {
		response.WriteError(w, response.ErrorMessage{
			Message:    "problem not found",
			StatusCode: http.StatusNotFound,
		})
		return
	}

	response.WriteSuccess(w, prob)
}

// GetTags handles tag dictionary retrieval requests
func (h *ProblemHandler) GetTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.problemService.ListTags(r.Context())
	if err != nil {
		h.logger.Error("Failed to list tags", "error", err)
		response.WriteError(w, response.ErrorMessage{
			Message:    "failed to list tags",
			StatusCode: http.StatusInternalServerError,
		})
		return
	}

	response.WriteSuccess(w, map[string][]domain.TechnicalTag{"tags": tags})
}

func conditionFromQuery(r *http.Request) (secondary.ProblemCondition, error) {
	var cond secondary.ProblemCondition
	query := r.URL.Query()

	if value := query.Get("platform"); value != "" {
		platform := domain.ParsePlatform(value)
		if !platform.IsKnown() {
			return cond, errInvalidParam("platform", value)
		}
		cond.Platform = &platform
	}
	if value := query.Get("category"); value != "" {
		cond.Category = &value
	}
	if value := query.Get("difficulty_from"); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return cond, errInvalidParam("difficulty_from", value)
		}
		cond.DifficultyFrom = &parsed
	}
	if value := query.Get("difficulty_to"); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return cond, errInvalidParam("difficulty_to", value)
		}
		cond.DifficultyTo = &parsed
	}
	if value := query.Get("tags"); value != "" {
		for _, raw := range strings.Split(value, ",") {
			tagID, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
			if err != nil {
				return cond, errInvalidParam("tags", value)
			}
			cond.TagIDs = append(cond.TagIDs, tagID)
		}
	}
	if value := query.Get("page"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return cond, errInvalidParam("page", value)
		}
		cond.Page = parsed
	}
	if value := query.Get("per_page"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return cond, errInvalidParam("per_page", value)
		}
		cond.PerPage = parsed
	}

	return cond, nil
}

type invalidParamError struct {
	name  string
	value string
}

func (e invalidParamError) Error() string {
	return "invalid " + e.name + ": " + e.value
}

func errInvalidParam(name, value string) error {
	return invalidParamError{name: name, value: value}
}
