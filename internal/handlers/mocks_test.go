package handlers

import (
	"context"
	"errors"
	"io"

	"github.com/coursehub/lesson-service/internal/models"
	"github.com/coursehub/lesson-service/internal/services"
)

// mockLessonPageService is a mock implementation of LessonPageService
type mockLessonPageService struct {
	result       *services.LessonPageResult
	err          error
	lastIdentity *models.Identity
	lastCourseID string
	lastLessonID string
}

func (m *mockLessonPageService) RenderLessonPage(ctx context.Context, identity *models.Identity, courseID, lessonID string) (*services.LessonPageResult, error) {
	m.lastIdentity = identity
	m.lastCourseID = courseID
	m.lastLessonID = lessonID
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

// mockLessonCompletionService is a mock implementation of LessonCompletionService
type mockLessonCompletionService struct {
	err           error
	completed     bool
	completeCalls int
	uncomplete    int
	lastStudentID string
	lastIdentity  models.Identity
}

func (m *mockLessonCompletionService) CompleteLesson(ctx context.Context, identity models.Identity, courseID, lessonID, studentID string) error {
	m.completeCalls++
	m.lastIdentity = identity
	m.lastStudentID = studentID
	return m.err
}

func (m *mockLessonCompletionService) UncompleteLesson(ctx context.Context, identity models.Identity, courseID, lessonID, studentID string) error {
	m.uncomplete++
	m.lastIdentity = identity
	m.lastStudentID = studentID
	return m.err
}

func (m *mockLessonCompletionService) GetCompletionStatus(ctx context.Context, identity models.Identity, courseID, lessonID string) (bool, error) {
	m.lastIdentity = identity
	if m.err != nil {
		return false, m.err
	}
	return m.completed, nil
}

// failingRenderer fails to render lessons but still renders error pages
type failingRenderer struct{}

func (failingRenderer) RenderLesson(w io.Writer, view *models.LessonView, completionAction string) error {
	return errors.New("template error")
}

func (failingRenderer) RenderError(w io.Writer, title, message string) error {
	_, err := io.WriteString(w, title)
	return err
}

// stubValidator accepts tokens equal to the identity they carry
type stubValidator struct{}

func (stubValidator) ValidateAccessToken(token string) (models.Identity, error) {
	if token == "" || token == "invalid" {
		return "", errors.New("invalid token")
	}
	return models.Identity(token), nil
}

func strPtr(s string) *string { return &s }
