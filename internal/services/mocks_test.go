package services

import (
	"context"
	"sync/atomic"

	"github.com/coursehub/lesson-service/internal/models"
)

// mockEnrollmentRepository is a mock implementation of EnrollmentRepository
type mockEnrollmentRepository struct {
	enrolled bool
	err      error
	calls    atomic.Int32
}

func (m *mockEnrollmentRepository) IsEnrolled(ctx context.Context, identity models.Identity, courseID string) (bool, error) {
	m.calls.Add(1)
	if m.err != nil {
		return false, m.err
	}
	return m.enrolled, nil
}

// mockLessonRepository is a mock implementation of LessonRepository
type mockLessonRepository struct {
	lesson *models.Lesson
	err    error
	hook   func(ctx context.Context) error
	calls  atomic.Int32
}

func (m *mockLessonRepository) GetByID(ctx context.Context, id string) (*models.Lesson, error) {
	m.calls.Add(1)
	if m.hook != nil {
		if err := m.hook(ctx); err != nil {
			return nil, err
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.lesson, nil
}

// mockStudentRepository is a mock implementation of StudentRepository
type mockStudentRepository struct {
	student *models.Student
	err     error
	hook    func(ctx context.Context) error
	calls   atomic.Int32
}

func (m *mockStudentRepository) GetByIdentity(ctx context.Context, identity models.Identity) (*models.Student, error) {
	m.calls.Add(1)
	if m.hook != nil {
		if err := m.hook(ctx); err != nil {
			return nil, err
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.student, nil
}

// mockLessonCompletionRepository is a mock implementation of LessonCompletionRepository
type mockLessonCompletionRepository struct {
	completions *models.LessonCompletions
	err         error
	hook        func(ctx context.Context) error
	calls       atomic.Int32

	exists     bool
	existsErr  error
	createErr  error
	deleteErr  error
	created    *models.LessonCompletion
	deleteArgs []string
}

func (m *mockLessonCompletionRepository) GetByCourse(ctx context.Context, identity models.Identity, courseID string) (*models.LessonCompletions, error) {
	m.calls.Add(1)
	if m.hook != nil {
		if err := m.hook(ctx); err != nil {
			return nil, err
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.completions, nil
}

func (m *mockLessonCompletionRepository) Exists(ctx context.Context, studentID, lessonID string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	return m.exists, nil
}

func (m *mockLessonCompletionRepository) Create(ctx context.Context, completion *models.LessonCompletion) error {
	m.created = completion
	return m.createErr
}

func (m *mockLessonCompletionRepository) Delete(ctx context.Context, studentID, lessonID string) (bool, error) {
	m.deleteArgs = []string{studentID, lessonID}
	if m.deleteErr != nil {
		return false, m.deleteErr
	}
	return m.exists, nil
}

func strPtr(s string) *string { return &s }

func identityPtr(s string) *models.Identity {
	identity := models.Identity(s)
	return &identity
}
