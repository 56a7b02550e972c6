package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/coursehub/lesson-service/internal/models"
)

type studentRepository struct {
	db *sql.DB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *sql.DB) *studentRepository {
	return &studentRepository{
		db: db,
	}
}

// GetByIdentity retrieves the student record of an authenticated identity.
// Returns nil without an error when no student is registered for the identity.
func (r *studentRepository) GetByIdentity(ctx context.Context, identity models.Identity) (*models.Student, error) {
	query := `
		SELECT id, identity, first_name, last_name, email
		FROM students
		WHERE identity = ?
		LIMIT 1
	`

	var student models.Student
	var firstName, lastName, email sql.NullString
	err := r.db.QueryRowContext(ctx, query, identity.String()).Scan(
		&student.ID,
		&student.Identity,
		&firstName,
		&lastName,
		&email,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get student by identity: %w", err)
	}

	student.FirstName = firstName.String
	student.LastName = lastName.String
	student.Email = email.String
	return &student, nil
}
