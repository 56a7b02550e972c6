package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/coursehub/lesson-service/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// EnrollmentRepository defines methods for enrollment data access
type EnrollmentRepository interface {
	// IsEnrolled checks whether an identity is enrolled in a course
	//
	// "ctx" is the context for the request.
	// "identity" is the authenticated caller.
	// "courseID" is the ID of the course.
	//
	// Returns a boolean and an error if any.
	IsEnrolled(ctx context.Context, identity models.Identity, courseID string) (bool, error)
}

// LessonRepository defines methods for lesson data access
type LessonRepository interface {
	// GetByID retrieves a lesson by ID
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the lesson.
	//
	// Returns the lesson, or nil if it does not exist, and an error if any.
	GetByID(ctx context.Context, id string) (*models.Lesson, error)
}

// StudentRepository defines methods for student data access
type StudentRepository interface {
	// GetByIdentity retrieves the student record of an identity
	//
	// "ctx" is the context for the request.
	// "identity" is the authenticated caller.
	//
	// Returns the student, or nil if it does not exist, and an error if any.
	GetByIdentity(ctx context.Context, identity models.Identity) (*models.Student, error)
}

// LessonCompletionRepository defines methods for lesson completion data access
type LessonCompletionRepository interface {
	// GetByCourse retrieves the completed lessons of an identity within a course
	//
	// "ctx" is the context for the request.
	// "identity" is the authenticated caller.
	// "courseID" is the ID of the course.
	//
	// Returns the completions and an error if any.
	GetByCourse(ctx context.Context, identity models.Identity, courseID string) (*models.LessonCompletions, error)
	// Exists checks if a completion record exists
	//
	// "ctx" is the context for the request.
	// "studentID" is the ID of the student.
	// "lessonID" is the ID of the lesson.
	//
	// Returns a boolean and an error if any.
	Exists(ctx context.Context, studentID, lessonID string) (bool, error)
	// Create creates a new completion record
	//
	// "ctx" is the context for the request.
	// "completion" is the completion record to create.
	//
	// Returns an error if any.
	Create(ctx context.Context, completion *models.LessonCompletion) error
	// Delete deletes a completion record
	//
	// "ctx" is the context for the request.
	// "studentID" is the ID of the student.
	// "lessonID" is the ID of the lesson.
	//
	// Returns whether a record was removed and an error if any.
	Delete(ctx context.Context, studentID, lessonID string) (bool, error)
}

// PageOutcome tells how a lesson page request was resolved
type PageOutcome int

const (
	// OutcomeView means the lesson view was assembled
	OutcomeView PageOutcome = iota
	// OutcomeUnauthenticated means no caller identity was present
	OutcomeUnauthenticated
	// OutcomeNotEnrolled means the caller is not enrolled in the course
	OutcomeNotEnrolled
	// OutcomeMissingData means the lesson or the caller's student record is absent
	OutcomeMissingData
)

// String returns a readable outcome name for logs
func (o PageOutcome) String() string {
	switch o {
	case OutcomeView:
		return "view"
	case OutcomeUnauthenticated:
		return "unauthenticated"
	case OutcomeNotEnrolled:
		return "not_enrolled"
	case OutcomeMissingData:
		return "missing_data"
	default:
		return "unknown"
	}
}

// LessonPageResult is either a redirect target or an assembled lesson view
type LessonPageResult struct {
	Outcome    PageOutcome
	RedirectTo string
	View       *models.LessonView
}

// IsRedirect reports whether the caller must be sent elsewhere
func (r *LessonPageResult) IsRedirect() bool {
	return r.Outcome != OutcomeView
}

// RootPath is where unauthenticated callers are sent
const RootPath = "/"

// CoursePagePath returns the public page of a course
func CoursePagePath(courseID string) string {
	return "/courses/" + url.PathEscape(courseID)
}

// CourseDashboardPath returns the dashboard page of a course
func CourseDashboardPath(courseID string) string {
	return "/dashboard/courses/" + url.PathEscape(courseID)
}

// LessonPagePath returns the dashboard page of a lesson
func LessonPagePath(courseID, lessonID string) string {
	return CourseDashboardPath(courseID) + "/lessons/" + url.PathEscape(lessonID)
}

type lessonPageService struct {
	enrollmentRepo EnrollmentRepository
	lessonRepo     LessonRepository
	studentRepo    StudentRepository
	completionRepo LessonCompletionRepository
	logger         *zap.Logger
}

// NewLessonPageService creates a new lesson page service
func NewLessonPageService(
	enrollmentRepo EnrollmentRepository,
	lessonRepo LessonRepository,
	studentRepo StudentRepository,
	completionRepo LessonCompletionRepository,
	logger *zap.Logger,
) *lessonPageService {
	return &lessonPageService{
		enrollmentRepo: enrollmentRepo,
		lessonRepo:     lessonRepo,
		studentRepo:    studentRepo,
		completionRepo: completionRepo,
		logger:         logger,
	}
}

// RenderLessonPage decides whether the caller may see a lesson and assembles its view.
// A nil identity means the caller is not logged in.
// Errors from the data sources are returned as is; absent records lead to a redirect.
func (s *lessonPageService) RenderLessonPage(ctx context.Context, identity *models.Identity, courseID, lessonID string) (*LessonPageResult, error) {
	if identity == nil || *identity == "" {
		return &LessonPageResult{Outcome: OutcomeUnauthenticated, RedirectTo: RootPath}, nil
	}

	enrolled, err := s.enrollmentRepo.IsEnrolled(ctx, *identity, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to check enrollment: %w", err)
	}
	if !enrolled {
		return &LessonPageResult{Outcome: OutcomeNotEnrolled, RedirectTo: CoursePagePath(courseID)}, nil
	}

	var (
		lesson      *models.Lesson
		student     *models.Student
		completions *models.LessonCompletions
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		l, err := s.lessonRepo.GetByID(gctx, lessonID)
		if err != nil {
			return fmt.Errorf("failed to get lesson: %w", err)
		}
		lesson = l
		return nil
	})
	g.Go(func() error {
		st, err := s.studentRepo.GetByIdentity(gctx, *identity)
		if err != nil {
			return fmt.Errorf("failed to get student: %w", err)
		}
		student = st
		return nil
	})
	g.Go(func() error {
		c, err := s.completionRepo.GetByCourse(gctx, *identity, courseID)
		if err != nil {
			return fmt.Errorf("failed to get lesson completions: %w", err)
		}
		completions = c
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// A lesson of another course counts as missing: enrollment was checked against courseID only.
	lessonMissing := lesson == nil || lesson.CourseID != courseID
	if lessonMissing || student == nil {
		s.logger.Debug("lesson page data missing",
			zap.String("course_id", courseID),
			zap.String("lesson_id", lessonID),
			zap.Bool("lesson_missing", lessonMissing),
			zap.Bool("student_missing", student == nil),
		)
		return &LessonPageResult{Outcome: OutcomeMissingData, RedirectTo: CourseDashboardPath(courseID)}, nil
	}

	isCompleted := completions.Contains(lessonID)

	return &LessonPageResult{
		Outcome: OutcomeView,
		View:    models.NewLessonView(lesson, student, courseID, isCompleted),
	}, nil
}
