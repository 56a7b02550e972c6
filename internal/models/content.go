package models

// Content block types
const (
	ContentTypeBlock = "block"
	ContentTypeImage = "image"
	ContentTypeCode  = "code"
	ContentTypeSpan  = "span"
)

// Block styles
const (
	StyleNormal     = "normal"
	StyleH1         = "h1"
	StyleH2         = "h2"
	StyleH3         = "h3"
	StyleH4         = "h4"
	StyleBlockquote = "blockquote"
)

// List item kinds
const (
	ListItemBullet = "bullet"
	ListItemNumber = "number"
)

// Span decorators
const (
	MarkStrong        = "strong"
	MarkEm            = "em"
	MarkCode          = "code"
	MarkUnderline     = "underline"
	MarkStrikeThrough = "strike-through"
)

// MarkDefTypeLink is the annotation type for hyperlinks
const MarkDefTypeLink = "link"

// ContentBlock is a node of the rich content tree stored with a lesson.
// Only the fields relevant to Type are populated.
type ContentBlock struct {
	Key      string    `json:"_key,omitempty"`
	Type     string    `json:"_type"`
	Style    string    `json:"style,omitempty"`
	ListItem string    `json:"listItem,omitempty"`
	Level    int       `json:"level,omitempty"`
	Children []Span    `json:"children,omitempty"`
	MarkDefs []MarkDef `json:"markDefs,omitempty"`

	// image blocks
	URL string `json:"url,omitempty"`
	Alt string `json:"alt,omitempty"`

	// code blocks
	Code     string `json:"code,omitempty"`
	Language string `json:"language,omitempty"`
}

// Span is an inline run of text within a block
type Span struct {
	Key   string   `json:"_key,omitempty"`
	Type  string   `json:"_type"`
	Text  string   `json:"text"`
	Marks []string `json:"marks,omitempty"`
}

// MarkDef defines an annotation referenced from span marks by Key
type MarkDef struct {
	Key  string `json:"_key"`
	Type string `json:"_type"`
	Href string `json:"href,omitempty"`
}
