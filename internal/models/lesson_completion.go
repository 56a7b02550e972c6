package models

import (
	"slices"
	"time"
)

// LessonRef references a lesson from a completion record
type LessonRef struct {
	ID string `json:"id"`
}

// LessonCompletion represents a fact that a student finished a lesson in a course
type LessonCompletion struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"studentId"`
	CourseID    string    `json:"courseId"`
	Lesson      LessonRef `json:"lesson"`
	CompletedAt time.Time `json:"completedAt"`
}

// LessonCompletions is the completion state of a student within one course
type LessonCompletions struct {
	CompletedLessons []LessonCompletion `json:"completedLessons"`
	CourseProgress   float64            `json:"courseProgress"`
}

// Contains reports whether the lesson with the given ID is among the completed lessons
func (c *LessonCompletions) Contains(lessonID string) bool {
	if c == nil {
		return false
	}
	return slices.ContainsFunc(c.CompletedLessons, func(completion LessonCompletion) bool {
		return completion.Lesson.ID == lessonID
	})
}
