package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestLessonCompletions_Contains(t *testing.T) {
	completions := &LessonCompletions{
		CompletedLessons: []LessonCompletion{
			{Lesson: LessonRef{ID: "L1"}},
			{Lesson: LessonRef{ID: "L2"}},
		},
	}

	tests := []struct {
		name        string
		completions *LessonCompletions
		lessonID    string
		expected    bool
	}{
		{name: "completed lesson", completions: completions, lessonID: "L2", expected: true},
		{name: "not completed lesson", completions: completions, lessonID: "L3", expected: false},
		{name: "empty completions", completions: &LessonCompletions{}, lessonID: "L1", expected: false},
		{name: "nil completions", completions: nil, lessonID: "L1", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.completions.Contains(tt.lessonID))
		})
	}
}

func TestNewLessonView(t *testing.T) {
	t.Run("optional fields absent", func(t *testing.T) {
		lesson := &Lesson{ID: "l1", Title: "Intro", VideoURL: strPtr("v.mp4"), Description: strPtr("")}
		student := &Student{ID: "s1"}

		view := NewLessonView(lesson, student, "c1", false)

		assert.Equal(t, "Intro", view.Title)
		assert.Equal(t, "c1", view.CourseID)
		assert.Nil(t, view.Description)
		assert.Equal(t, "v.mp4", *view.VideoURL)
		assert.Nil(t, view.LoomURL)
		assert.Nil(t, view.Content)
		assert.Equal(t, CompletionControl{LessonID: "l1", StudentID: "s1", IsCompleted: false}, view.Completion)
	})

	t.Run("all fields present", func(t *testing.T) {
		lesson := &Lesson{
			ID:          "l2",
			Title:       "Deep dive",
			Description: strPtr("details"),
			VideoURL:    strPtr("https://cdn.example.com/v.mp4"),
			LoomURL:     strPtr("https://www.loom.com/share/abc"),
			Content:     []ContentBlock{{Type: ContentTypeBlock, Children: []Span{{Type: ContentTypeSpan, Text: "hi"}}}},
		}

		view := NewLessonView(lesson, &Student{ID: "s2"}, "c2", true)

		assert.Equal(t, "details", *view.Description)
		assert.Equal(t, "https://www.loom.com/share/abc", *view.LoomURL)
		assert.Len(t, view.Content, 1)
		assert.True(t, view.Completion.IsCompleted)
	})
}
