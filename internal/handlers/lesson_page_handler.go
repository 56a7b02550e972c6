package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/coursehub/lesson-service/internal/middleware"
	"github.com/coursehub/lesson-service/internal/models"
	"github.com/coursehub/lesson-service/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// LessonPageService is the interface that wraps the lesson page assembly
type LessonPageService interface {
	// RenderLessonPage decides whether the caller may see a lesson and assembles its view
	//
	// "ctx" is the context for the request.
	// "identity" is the caller identity, nil when the caller is not logged in.
	// "courseID" is the ID of the course.
	// "lessonID" is the ID of the lesson.
	//
	// Returns a redirect or a lesson view, and an error if any data source failed.
	RenderLessonPage(ctx context.Context, identity *models.Identity, courseID, lessonID string) (*services.LessonPageResult, error)
}

// LessonCompletionService is the interface that wraps methods for lesson completion
type LessonCompletionService interface {
	// CompleteLesson marks a lesson as completed
	//
	// "ctx" is the context for the request.
	// "identity" is the caller identity.
	// "courseID" is the ID of the course.
	// "lessonID" is the ID of the lesson.
	// "studentID" is the student the caller acts as, empty for the caller's own record.
	//
	// Returns an error if any.
	CompleteLesson(ctx context.Context, identity models.Identity, courseID, lessonID, studentID string) error
	// UncompleteLesson removes the completion of a lesson
	//
	// Parameters are the same as for CompleteLesson.
	//
	// Returns an error if any.
	UncompleteLesson(ctx context.Context, identity models.Identity, courseID, lessonID, studentID string) error
	// GetCompletionStatus reports whether the caller completed a lesson
	//
	// "ctx" is the context for the request.
	// "identity" is the caller identity.
	// "courseID" is the ID of the course.
	// "lessonID" is the ID of the lesson.
	//
	// Returns the completion status and an error if any.
	GetCompletionStatus(ctx context.Context, identity models.Identity, courseID, lessonID string) (bool, error)
}

// PageRenderer renders HTML pages
type PageRenderer interface {
	RenderLesson(w io.Writer, view *models.LessonView, completionAction string) error
	RenderError(w io.Writer, title, message string) error
}

// LessonPageHandler handles the server-rendered lesson pages
type LessonPageHandler struct {
	BaseHandler
	pageService       LessonPageService
	completionService LessonCompletionService
	renderer          PageRenderer
}

// NewLessonPageHandler creates a new lesson page handler
func NewLessonPageHandler(pageService LessonPageService, completionService LessonCompletionService, renderer PageRenderer, logger *zap.Logger) *LessonPageHandler {
	return &LessonPageHandler{
		BaseHandler:       BaseHandler{Logger: logger},
		pageService:       pageService,
		completionService: completionService,
		renderer:          renderer,
	}
}

// RegisterRoutes registers all lesson page routes behind the given middlewares,
// typically identity resolution and the same-origin guard for the completion form
func (h *LessonPageHandler) RegisterRoutes(r chi.Router, middlewares ...func(http.Handler) http.Handler) {
	r.Route("/dashboard/courses/{courseId}/lessons/{lessonId}", func(r chi.Router) {
		r.Use(middlewares...)
		r.Get("/", h.ShowLesson)
		r.Post("/completion", h.SubmitCompletion)
	})
}

// completionPath returns the URL the completion control of a lesson page submits to
func completionPath(courseID, lessonID string) string {
	return services.LessonPagePath(courseID, lessonID) + "/completion"
}

// ShowLesson handles GET /dashboard/courses/{courseId}/lessons/{lessonId}
func (h *LessonPageHandler) ShowLesson(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseId")
	lessonID := chi.URLParam(r, "lessonId")

	result, err := h.pageService.RenderLessonPage(r.Context(), middleware.GetIdentity(r.Context()), courseID, lessonID)
	if err != nil {
		h.Logger.Error("failed to render lesson page",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.String("course_id", courseID),
			zap.String("lesson_id", lessonID),
			zap.Error(err),
		)
		h.respondErrorPage(w, http.StatusInternalServerError, "Something went wrong", "The lesson could not be loaded. Please try again later.")
		return
	}

	if result.IsRedirect() {
		h.Logger.Debug("lesson page redirect",
			zap.String("outcome", result.Outcome.String()),
			zap.String("redirect_to", result.RedirectTo),
		)
		http.Redirect(w, r, result.RedirectTo, http.StatusTemporaryRedirect)
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.RenderLesson(&buf, result.View, completionPath(courseID, lessonID)); err != nil {
		h.Logger.Error("failed to render lesson template", zap.Error(err))
		h.respondErrorPage(w, http.StatusInternalServerError, "Something went wrong", "The lesson could not be displayed.")
		return
	}

	h.writeHTML(w, http.StatusOK, buf.Bytes())
}

// SubmitCompletion handles POST /dashboard/courses/{courseId}/lessons/{lessonId}/completion
func (h *LessonPageHandler) SubmitCompletion(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseId")
	lessonID := chi.URLParam(r, "lessonId")

	identity := middleware.GetIdentity(r.Context())
	if identity == nil {
		http.Redirect(w, r, services.RootPath, http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.respondErrorPage(w, http.StatusBadRequest, "Bad request", "The form could not be read.")
		return
	}
	completed, err := strconv.ParseBool(r.PostForm.Get("completed"))
	if err != nil {
		h.respondErrorPage(w, http.StatusBadRequest, "Bad request", "The completion state is invalid.")
		return
	}
	req := CompletionRequest{StudentID: r.PostForm.Get("studentId")}
	if err := validate.Struct(req); err != nil {
		h.respondErrorPage(w, http.StatusBadRequest, "Bad request", "The student is invalid.")
		return
	}

	if completed {
		err = h.completionService.CompleteLesson(r.Context(), *identity, courseID, lessonID, req.StudentID)
	} else {
		err = h.completionService.UncompleteLesson(r.Context(), *identity, courseID, lessonID, req.StudentID)
	}

	switch {
	case err == nil:
		http.Redirect(w, r, services.LessonPagePath(courseID, lessonID), http.StatusSeeOther)
	case errors.Is(err, models.ErrNotEnrolled):
		http.Redirect(w, r, services.CoursePagePath(courseID), http.StatusSeeOther)
	case errors.Is(err, models.ErrLessonNotFound), errors.Is(err, models.ErrStudentNotFound):
		http.Redirect(w, r, services.CourseDashboardPath(courseID), http.StatusSeeOther)
	case errors.Is(err, models.ErrForbidden):
		h.respondErrorPage(w, http.StatusForbidden, "Forbidden", "You cannot change the progress of another student.")
	default:
		h.Logger.Error("failed to update lesson completion",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.String("course_id", courseID),
			zap.String("lesson_id", lessonID),
			zap.Error(err),
		)
		h.respondErrorPage(w, http.StatusInternalServerError, "Something went wrong", "Your progress could not be saved. Please try again later.")
	}
}

// respondErrorPage renders the error page with the given status
func (h *LessonPageHandler) respondErrorPage(w http.ResponseWriter, status int, title, message string) {
	var buf bytes.Buffer
	if err := h.renderer.RenderError(&buf, title, message); err != nil {
		h.Logger.Error("failed to render error page", zap.Error(err))
		http.Error(w, message, status)
		return
	}
	h.writeHTML(w, status, buf.Bytes())
}

func (h *LessonPageHandler) writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		h.Logger.Error("failed to write HTML response", zap.Error(err))
	}
}
