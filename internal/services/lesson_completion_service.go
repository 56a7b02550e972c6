package services

import (
	"context"
	"fmt"
	"time"

	"github.com/coursehub/lesson-service/internal/models"
	"github.com/google/uuid"
)

type lessonCompletionService struct {
	enrollmentRepo EnrollmentRepository
	lessonRepo     LessonRepository
	studentRepo    StudentRepository
	completionRepo LessonCompletionRepository
}

// NewLessonCompletionService creates a new lesson completion service
func NewLessonCompletionService(
	enrollmentRepo EnrollmentRepository,
	lessonRepo LessonRepository,
	studentRepo StudentRepository,
	completionRepo LessonCompletionRepository,
) *lessonCompletionService {
	return &lessonCompletionService{
		enrollmentRepo: enrollmentRepo,
		lessonRepo:     lessonRepo,
		studentRepo:    studentRepo,
		completionRepo: completionRepo,
	}
}

// CompleteLesson marks a lesson as completed for the caller.
// studentID is optional; when set it must belong to the caller.
// Completing an already completed lesson is a no-op.
func (s *lessonCompletionService) CompleteLesson(ctx context.Context, identity models.Identity, courseID, lessonID, studentID string) error {
	student, err := s.authorize(ctx, identity, courseID, lessonID, studentID)
	if err != nil {
		return err
	}

	exists, err := s.completionRepo.Exists(ctx, student.ID, lessonID)
	if err != nil {
		return fmt.Errorf("failed to check completion existence: %w", err)
	}
	if exists {
		return nil
	}

	completion := &models.LessonCompletion{
		ID:          uuid.New().String(),
		StudentID:   student.ID,
		CourseID:    courseID,
		Lesson:      models.LessonRef{ID: lessonID},
		CompletedAt: time.Now().UTC(),
	}
	if err := s.completionRepo.Create(ctx, completion); err != nil {
		return fmt.Errorf("failed to create completion record: %w", err)
	}

	return nil
}

// UncompleteLesson removes the completion of a lesson for the caller.
// Removing a completion that does not exist is a no-op.
func (s *lessonCompletionService) UncompleteLesson(ctx context.Context, identity models.Identity, courseID, lessonID, studentID string) error {
	student, err := s.authorize(ctx, identity, courseID, lessonID, studentID)
	if err != nil {
		return err
	}

	if _, err := s.completionRepo.Delete(ctx, student.ID, lessonID); err != nil {
		return fmt.Errorf("failed to delete completion record: %w", err)
	}

	return nil
}

// GetCompletionStatus reports whether the caller completed a lesson
func (s *lessonCompletionService) GetCompletionStatus(ctx context.Context, identity models.Identity, courseID, lessonID string) (bool, error) {
	student, err := s.authorize(ctx, identity, courseID, lessonID, "")
	if err != nil {
		return false, err
	}

	completed, err := s.completionRepo.Exists(ctx, student.ID, lessonID)
	if err != nil {
		return false, fmt.Errorf("failed to check completion existence: %w", err)
	}

	return completed, nil
}

// authorize resolves the caller's student record and checks that it may act on the lesson
func (s *lessonCompletionService) authorize(ctx context.Context, identity models.Identity, courseID, lessonID, studentID string) (*models.Student, error) {
	student, err := s.studentRepo.GetByIdentity(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	if student == nil {
		return nil, models.ErrStudentNotFound
	}
	if studentID != "" && studentID != student.ID {
		return nil, models.ErrForbidden
	}

	enrolled, err := s.enrollmentRepo.IsEnrolled(ctx, identity, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to check enrollment: %w", err)
	}
	if !enrolled {
		return nil, models.ErrNotEnrolled
	}

	lesson, err := s.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson: %w", err)
	}
	if lesson == nil || lesson.CourseID != courseID {
		return nil, models.ErrLessonNotFound
	}

	return student, nil
}
