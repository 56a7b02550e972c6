package models

// Lesson represents a lesson record as stored for a course.
// Description, VideoURL, LoomURL and Content are optional and nil when absent.
type Lesson struct {
	ID          string         `json:"id"`
	CourseID    string         `json:"courseId"`
	Title       string         `json:"title"`
	Description *string        `json:"description,omitempty"`
	VideoURL    *string        `json:"videoUrl,omitempty"`
	LoomURL     *string        `json:"loomUrl,omitempty"`
	Content     []ContentBlock `json:"content,omitempty"`
}

// HasDescription reports whether the lesson has a non-empty description
func (l *Lesson) HasDescription() bool {
	return l.Description != nil && *l.Description != ""
}

// HasVideo reports whether the lesson has a direct video URL
func (l *Lesson) HasVideo() bool {
	return l.VideoURL != nil && *l.VideoURL != ""
}

// HasLoom reports whether the lesson has an embedded video share URL
func (l *Lesson) HasLoom() bool {
	return l.LoomURL != nil && *l.LoomURL != ""
}

// HasContent reports whether the lesson has rich content
func (l *Lesson) HasContent() bool {
	return len(l.Content) > 0
}
