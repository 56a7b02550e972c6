package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/coursehub/lesson-service/internal/middleware"
	"github.com/coursehub/lesson-service/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CompletionRequest is the optional body of a completion update
type CompletionRequest struct {
	StudentID string `json:"studentId,omitempty" validate:"omitempty,max=64" example:"s1"`
}

// CompletionStatusResponse reports whether a lesson is completed
type CompletionStatusResponse struct {
	Completed bool `json:"completed"`
}

// LessonAPIHandler handles JSON requests for lessons
type LessonAPIHandler struct {
	BaseHandler
	pageService       LessonPageService
	completionService LessonCompletionService
}

// NewLessonAPIHandler creates a new lesson API handler
func NewLessonAPIHandler(pageService LessonPageService, completionService LessonCompletionService, logger *zap.Logger) *LessonAPIHandler {
	return &LessonAPIHandler{
		BaseHandler:       BaseHandler{Logger: logger},
		pageService:       pageService,
		completionService: completionService,
	}
}

// RegisterRoutes registers all lesson API routes
func (h *LessonAPIHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/courses/{courseId}/lessons/{lessonId}", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", h.GetLesson)
		r.Get("/completion", h.GetCompletion)
		r.Put("/completion", h.Complete)
		r.Delete("/completion", h.Uncomplete)
	})
}

// GetLesson handles GET /courses/{courseId}/lessons/{lessonId}
// @Summary Get lesson view
// @Description Get the lesson with its completion state for an enrolled student
// @Tags lessons
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "Course ID"
// @Param lessonId path string true "Lesson ID"
// @Success 200 {object} models.LessonView "Lesson view"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not enrolled"
// @Failure 404 {object} map[string]string "Lesson or student not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{courseId}/lessons/{lessonId} [get]
func (h *LessonAPIHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseId")
	lessonID := chi.URLParam(r, "lessonId")

	result, err := h.pageService.RenderLessonPage(r.Context(), middleware.GetIdentity(r.Context()), courseID, lessonID)
	if err != nil {
		h.Logger.Error("failed to get lesson view", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to get lesson")
		return
	}

	switch result.Outcome {
	case services.OutcomeUnauthenticated:
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
	case services.OutcomeNotEnrolled:
		h.RespondError(w, http.StatusForbidden, "not enrolled in course")
	case services.OutcomeMissingData:
		h.RespondError(w, http.StatusNotFound, "lesson not found")
	default:
		h.RespondJSON(w, http.StatusOK, result.View)
	}
}

// GetCompletion handles GET /courses/{courseId}/lessons/{lessonId}/completion
// @Summary Get lesson completion status
// @Tags lessons
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "Course ID"
// @Param lessonId path string true "Lesson ID"
// @Success 200 {object} CompletionStatusResponse "Completion status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not enrolled"
// @Failure 404 {object} map[string]string "Lesson or student not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{courseId}/lessons/{lessonId}/completion [get]
func (h *LessonAPIHandler) GetCompletion(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())
	if identity == nil {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	completed, err := h.completionService.GetCompletionStatus(r.Context(), *identity, chi.URLParam(r, "courseId"), chi.URLParam(r, "lessonId"))
	if err != nil {
		h.respondServiceError(w, "failed to get completion status", err)
		return
	}

	h.RespondJSON(w, http.StatusOK, CompletionStatusResponse{Completed: completed})
}

// Complete handles PUT /courses/{courseId}/lessons/{lessonId}/completion
// @Summary Complete a lesson
// @Tags lessons
// @Accept json
// @Security ApiKeyAuth
// @Param courseId path string true "Course ID"
// @Param lessonId path string true "Lesson ID"
// @Param request body CompletionRequest false "Student the caller acts as"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Lesson or student not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{courseId}/lessons/{lessonId}/completion [put]
func (h *LessonAPIHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.updateCompletion(w, r, true)
}

// Uncomplete handles DELETE /courses/{courseId}/lessons/{lessonId}/completion
// @Summary Uncomplete a lesson
// @Tags lessons
// @Accept json
// @Security ApiKeyAuth
// @Param courseId path string true "Course ID"
// @Param lessonId path string true "Lesson ID"
// @Param request body CompletionRequest false "Student the caller acts as"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Lesson or student not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{courseId}/lessons/{lessonId}/completion [delete]
func (h *LessonAPIHandler) Uncomplete(w http.ResponseWriter, r *http.Request) {
	h.updateCompletion(w, r, false)
}

func (h *LessonAPIHandler) updateCompletion(w http.ResponseWriter, r *http.Request, completed bool) {
	identity := middleware.GetIdentity(r.Context())
	if identity == nil {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req CompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid student id")
		return
	}

	courseID := chi.URLParam(r, "courseId")
	lessonID := chi.URLParam(r, "lessonId")

	var err error
	if completed {
		err = h.completionService.CompleteLesson(r.Context(), *identity, courseID, lessonID, req.StudentID)
	} else {
		err = h.completionService.UncompleteLesson(r.Context(), *identity, courseID, lessonID, req.StudentID)
	}
	if err != nil {
		h.respondServiceError(w, "failed to update lesson completion", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// respondServiceError logs unexpected failures and answers with the status matching the error
func (h *LessonAPIHandler) respondServiceError(w http.ResponseWriter, message string, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		h.Logger.Error(message, zap.Error(err))
		h.RespondError(w, status, message)
		return
	}
	h.RespondError(w, status, err.Error())
}
