package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/coursehub/lesson-service/internal/models"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError sends an error JSON response
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, map[string]string{"error": message})
}

// statusForError maps domain errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrForbidden), errors.Is(err, models.ErrNotEnrolled):
		return http.StatusForbidden
	case errors.Is(err, models.ErrLessonNotFound), errors.Is(err, models.ErrStudentNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
