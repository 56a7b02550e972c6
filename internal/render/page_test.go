package render

import (
	"bytes"
	"testing"

	"github.com/coursehub/lesson-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newTestRenderer(t *testing.T) *PageRenderer {
	t.Helper()
	renderer, err := NewPageRenderer()
	require.NoError(t, err)
	return renderer
}

func TestPageRenderer_RenderLesson_Minimal(t *testing.T) {
	renderer := newTestRenderer(t)
	view := &models.LessonView{
		CourseID:   "c1",
		Title:      "Intro",
		VideoURL:   strPtr("v.mp4"),
		Completion: models.CompletionControl{LessonID: "l1", StudentID: "s1", IsCompleted: false},
	}

	var buf bytes.Buffer
	err := renderer.RenderLesson(&buf, view, "/dashboard/courses/c1/lessons/l1/completion")
	require.NoError(t, err)
	html := buf.String()

	assert.Contains(t, html, `<h1 class="lesson-title">Intro</h1>`)
	assert.Contains(t, html, `<video controls preload="metadata" src="v.mp4"></video>`)
	assert.NotContains(t, html, "lesson-loom")
	assert.NotContains(t, html, "Lesson Notes")
	assert.NotContains(t, html, "lesson-description")
	assert.Contains(t, html, `action="/dashboard/courses/c1/lessons/l1/completion"`)
	assert.Contains(t, html, `data-lesson-id="l1"`)
	assert.Contains(t, html, `data-completed="false"`)
	assert.Contains(t, html, `name="studentId" value="s1"`)
	assert.Contains(t, html, `name="completed" value="true"`)
	assert.Contains(t, html, "Mark as Complete")
}

func TestPageRenderer_RenderLesson_Full(t *testing.T) {
	renderer := newTestRenderer(t)
	view := &models.LessonView{
		Title:       "Deep <dive>",
		Description: strPtr("What we cover"),
		LoomURL:     strPtr("https://www.loom.com/share/xyz"),
		Content: []models.ContentBlock{{
			Type:     models.ContentTypeBlock,
			Style:    models.StyleNormal,
			Children: []models.Span{{Type: models.ContentTypeSpan, Text: "Notes here"}},
		}},
		Completion: models.CompletionControl{LessonID: "l2", StudentID: "s1", IsCompleted: true},
	}

	var buf bytes.Buffer
	require.NoError(t, renderer.RenderLesson(&buf, view, "/complete"))
	html := buf.String()

	assert.Contains(t, html, "Deep &lt;dive&gt;")
	assert.Contains(t, html, `<p class="lesson-description">What we cover</p>`)
	assert.NotContains(t, html, "<video")
	assert.Contains(t, html, `<iframe src="https://www.loom.com/embed/xyz"`)
	assert.Contains(t, html, "Lesson Notes")
	assert.Contains(t, html, "<p>Notes here</p>")
	assert.Contains(t, html, `data-completed="true"`)
	assert.Contains(t, html, `name="completed" value="false"`)
	assert.Contains(t, html, "Mark as Not Complete")
}

func TestPageRenderer_RenderLesson_NonLoomURLIsNotEmbedded(t *testing.T) {
	renderer := newTestRenderer(t)
	view := &models.LessonView{Title: "x", LoomURL: strPtr("https://evil.example/share/xyz")}

	var buf bytes.Buffer
	require.NoError(t, renderer.RenderLesson(&buf, view, "/complete"))

	assert.NotContains(t, buf.String(), "<iframe")
}

func TestPageRenderer_RenderError(t *testing.T) {
	renderer := newTestRenderer(t)

	var buf bytes.Buffer
	require.NoError(t, renderer.RenderError(&buf, "Something went wrong", "Please try again later."))

	assert.Contains(t, buf.String(), "<h1>Something went wrong</h1>")
	assert.Contains(t, buf.String(), "Please try again later.")
}

func TestPageRenderer_RenderLesson_NotesFollowContentPresence(t *testing.T) {
	renderer := newTestRenderer(t)
	view := &models.LessonView{
		Title:      "Widgets",
		Content:    []models.ContentBlock{{Type: "unknownWidget"}},
		Completion: models.CompletionControl{LessonID: "l3", StudentID: "s1"},
	}

	var buf bytes.Buffer
	err := renderer.RenderLesson(&buf, view, "/dashboard/courses/c1/lessons/l3/completion")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Lesson Notes")
	assert.Contains(t, buf.String(), `<div class="prose"></div>`)
}
