package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/coursehub/lesson-service/internal/models"
)

type enrollmentRepository struct {
	db *sql.DB
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *sql.DB) *enrollmentRepository {
	return &enrollmentRepository{
		db: db,
	}
}

// IsEnrolled checks whether the student behind an identity is enrolled in a course
func (r *enrollmentRepository) IsEnrolled(ctx context.Context, identity models.Identity, courseID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM enrollments e JOIN students s ON s.id = e.student_id WHERE s.identity = ? AND e.course_id = ?)`

	var enrolled bool
	err := r.db.QueryRowContext(ctx, query, identity.String(), courseID).Scan(&enrolled)
	if err != nil {
		return false, fmt.Errorf("failed to check enrollment: %w", err)
	}

	return enrolled, nil
}
