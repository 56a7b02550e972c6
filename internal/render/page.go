// Package render turns lesson view models into server-rendered HTML pages
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/coursehub/lesson-service/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageRenderer renders the HTML pages of the service
type PageRenderer struct {
	templates *template.Template
}

// lessonPage is the template data of the lesson page
type lessonPage struct {
	Title            string
	Description      string
	VideoURL         string
	LoomEmbedURL     string
	HasNotes         bool
	ContentHTML      template.HTML
	CompletionAction string
	LessonID         string
	StudentID        string
	IsCompleted      bool
}

// errorPage is the template data of the error page
type errorPage struct {
	Title   string
	Message string
}

// NewPageRenderer parses the embedded page templates
func NewPageRenderer() (*PageRenderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &PageRenderer{templates: tmpl}, nil
}

// RenderLesson renders the lesson page.
// completionAction is the URL the completion control submits to.
func (p *PageRenderer) RenderLesson(w io.Writer, view *models.LessonView, completionAction string) error {
	page := lessonPage{
		Title:            view.Title,
		CompletionAction: completionAction,
		LessonID:         view.Completion.LessonID,
		StudentID:        view.Completion.StudentID,
		IsCompleted:      view.Completion.IsCompleted,
	}
	if view.Description != nil {
		page.Description = *view.Description
	}
	if view.VideoURL != nil {
		page.VideoURL = *view.VideoURL
	}
	if view.LoomURL != nil {
		if embedURL, ok := LoomEmbedURL(*view.LoomURL); ok {
			page.LoomEmbedURL = embedURL
		}
	}
	// The notes section follows content presence even when no block renders.
	if len(view.Content) > 0 {
		page.HasNotes = true
		page.ContentHTML = RenderContent(view.Content)
	}

	if err := p.templates.ExecuteTemplate(w, "lesson.html", page); err != nil {
		return fmt.Errorf("failed to render lesson page: %w", err)
	}
	return nil
}

// RenderError renders a generic error page
func (p *PageRenderer) RenderError(w io.Writer, title, message string) error {
	if err := p.templates.ExecuteTemplate(w, "error.html", errorPage{Title: title, Message: message}); err != nil {
		return fmt.Errorf("failed to render error page: %w", err)
	}
	return nil
}
