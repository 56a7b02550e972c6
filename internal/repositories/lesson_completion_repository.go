package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/coursehub/lesson-service/internal/models"
)

type lessonCompletionRepository struct {
	db *sql.DB
}

// NewLessonCompletionRepository creates a new lesson completion repository
func NewLessonCompletionRepository(db *sql.DB) *lessonCompletionRepository {
	return &lessonCompletionRepository{
		db: db,
	}
}

// GetByCourse retrieves the completed lessons of an identity within a course
// together with the share of the course's lessons that are completed.
func (r *lessonCompletionRepository) GetByCourse(ctx context.Context, identity models.Identity, courseID string) (*models.LessonCompletions, error) {
	query := `
		SELECT lc.id, lc.student_id, lc.course_id, lc.lesson_id, lc.completed_at
		FROM lesson_completions lc
		JOIN students s ON s.id = lc.student_id
		WHERE s.identity = ? AND lc.course_id = ?
		ORDER BY lc.completed_at
	`

	rows, err := r.db.QueryContext(ctx, query, identity.String(), courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lesson completions: %w", err)
	}
	defer rows.Close()

	completions := &models.LessonCompletions{
		CompletedLessons: []models.LessonCompletion{},
	}
	for rows.Next() {
		var completion models.LessonCompletion
		err := rows.Scan(
			&completion.ID,
			&completion.StudentID,
			&completion.CourseID,
			&completion.Lesson.ID,
			&completion.CompletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lesson completion: %w", err)
		}
		completions.CompletedLessons = append(completions.CompletedLessons, completion)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	if len(completions.CompletedLessons) == 0 {
		return completions, nil
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM lessons WHERE course_id = ?`
	if err := r.db.QueryRowContext(ctx, countQuery, courseID).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count course lessons: %w", err)
	}

	if total > 0 {
		completions.CourseProgress = float64(len(completions.CompletedLessons)) / float64(total) * 100
	}

	return completions, nil
}

// Exists checks if a completion record exists for a student and lesson
func (r *lessonCompletionRepository) Exists(ctx context.Context, studentID, lessonID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM lesson_completions WHERE student_id = ? AND lesson_id = ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, studentID, lessonID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check completion existence: %w", err)
	}

	return exists, nil
}

// Create creates a new completion record.
// An existing record for the same student and lesson is kept as is.
func (r *lessonCompletionRepository) Create(ctx context.Context, completion *models.LessonCompletion) error {
	query := `
		INSERT INTO lesson_completions (id, student_id, course_id, lesson_id, completed_at)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE id = id
	`

	_, err := r.db.ExecContext(ctx, query,
		completion.ID,
		completion.StudentID,
		completion.CourseID,
		completion.Lesson.ID,
		completion.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create completion record: %w", err)
	}

	return nil
}

// Delete deletes the completion record of a student for a lesson.
// Returns whether a record was removed.
func (r *lessonCompletionRepository) Delete(ctx context.Context, studentID, lessonID string) (bool, error) {
	query := `
		DELETE FROM lesson_completions
		WHERE student_id = ? AND lesson_id = ?
	`

	result, err := r.db.ExecContext(ctx, query, studentID, lessonID)
	if err != nil {
		return false, fmt.Errorf("failed to delete completion record: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}
