package models

import "errors"

var (
	// ErrLessonNotFound is returned when a lesson does not exist in the requested course
	ErrLessonNotFound = errors.New("lesson not found")
	// ErrStudentNotFound is returned when no student record exists for an identity
	ErrStudentNotFound = errors.New("student not found")
	// ErrNotEnrolled is returned when an identity is not enrolled in the course
	ErrNotEnrolled = errors.New("not enrolled in course")
	// ErrForbidden is returned when the caller acts on behalf of another student
	ErrForbidden = errors.New("forbidden")
)
