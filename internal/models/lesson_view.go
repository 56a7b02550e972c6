package models

// CompletionControl parametrizes the lesson completion toggle
type CompletionControl struct {
	LessonID    string `json:"lessonId"`
	StudentID   string `json:"studentId"`
	IsCompleted bool   `json:"isCompleted"`
}

// LessonView is the assembled view model of a lesson page
type LessonView struct {
	CourseID    string            `json:"courseId"`
	Title       string            `json:"title"`
	Description *string           `json:"description,omitempty"`
	VideoURL    *string           `json:"videoUrl,omitempty"`
	LoomURL     *string           `json:"loomUrl,omitempty"`
	Content     []ContentBlock    `json:"content,omitempty"`
	Completion  CompletionControl `json:"completion"`
}

// NewLessonView builds a view of the lesson for the given student and completion state
func NewLessonView(lesson *Lesson, student *Student, courseID string, isCompleted bool) *LessonView {
	view := &LessonView{
		CourseID: courseID,
		Title:    lesson.Title,
		Completion: CompletionControl{
			LessonID:    lesson.ID,
			StudentID:   student.ID,
			IsCompleted: isCompleted,
		},
	}
	if lesson.HasDescription() {
		view.Description = lesson.Description
	}
	if lesson.HasVideo() {
		view.VideoURL = lesson.VideoURL
	}
	if lesson.HasLoom() {
		view.LoomURL = lesson.LoomURL
	}
	if lesson.HasContent() {
		view.Content = lesson.Content
	}
	return view
}
