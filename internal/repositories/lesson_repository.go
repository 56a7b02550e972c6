package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/coursehub/lesson-service/internal/models"
)

type lessonRepository struct {
	db *sql.DB
}

// NewLessonRepository creates a new lesson repository
func NewLessonRepository(db *sql.DB) *lessonRepository {
	return &lessonRepository{
		db: db,
	}
}

// GetByID retrieves a lesson by its ID.
// Returns nil without an error when the lesson does not exist.
func (r *lessonRepository) GetByID(ctx context.Context, id string) (*models.Lesson, error) {
	query := `
		SELECT id, course_id, title, description, video_url, loom_url, content
		FROM lessons
		WHERE id = ?
		LIMIT 1
	`

	var lesson models.Lesson
	var description, videoURL, loomURL sql.NullString
	var content []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&lesson.ID,
		&lesson.CourseID,
		&lesson.Title,
		&description,
		&videoURL,
		&loomURL,
		&content,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson by id: %w", err)
	}

	lesson.Description = nullStringPtr(description)
	lesson.VideoURL = nullStringPtr(videoURL)
	lesson.LoomURL = nullStringPtr(loomURL)

	if len(content) > 0 {
		if err := json.Unmarshal(content, &lesson.Content); err != nil {
			return nil, fmt.Errorf("failed to decode lesson content: %w", err)
		}
	}

	return &lesson, nil
}

// nullStringPtr converts a nullable column to an optional value
func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
