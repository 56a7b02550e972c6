package render

import (
	"html/template"
	"net/url"
	"strings"

	"github.com/coursehub/lesson-service/internal/models"
)

var blockStyleTags = map[string]string{
	models.StyleNormal:     "p",
	models.StyleH1:         "h1",
	models.StyleH2:         "h2",
	models.StyleH3:         "h3",
	models.StyleH4:         "h4",
	models.StyleBlockquote: "blockquote",
}

var decoratorTags = map[string]string{
	models.MarkStrong:        "strong",
	models.MarkEm:            "em",
	models.MarkCode:          "code",
	models.MarkUnderline:     "u",
	models.MarkStrikeThrough: "s",
}

// RenderContent renders a rich content tree to HTML.
// Text is always escaped; unknown block and mark types are skipped.
func RenderContent(blocks []models.ContentBlock) template.HTML {
	var b strings.Builder
	lists := &listState{}

	for _, block := range blocks {
		if block.Type == models.ContentTypeBlock && block.ListItem != "" {
			lists.item(&b, listTag(block.ListItem), max(block.Level, 1), renderSpans(block))
			continue
		}
		lists.closeAll(&b)

		switch block.Type {
		case models.ContentTypeBlock:
			tag, ok := blockStyleTags[block.Style]
			if !ok {
				tag = "p"
			}
			b.WriteString("<" + tag + ">" + renderSpans(block) + "</" + tag + ">")
		case models.ContentTypeImage:
			if !isSafeURL(block.URL, false) {
				continue
			}
			b.WriteString(`<figure><img src="` + template.HTMLEscapeString(block.URL) +
				`" alt="` + template.HTMLEscapeString(block.Alt) + `"></figure>`)
		case models.ContentTypeCode:
			b.WriteString("<pre><code")
			if block.Language != "" {
				b.WriteString(` class="language-` + template.HTMLEscapeString(block.Language) + `"`)
			}
			b.WriteString(">" + template.HTMLEscapeString(block.Code) + "</code></pre>")
		}
	}
	lists.closeAll(&b)

	return template.HTML(b.String())
}

// listState tracks the lists opened for consecutive list item blocks, one per nesting level
type listState struct {
	tags []string
}

func (ls *listState) item(b *strings.Builder, tag string, level int, content string) {
	for len(ls.tags) > level {
		ls.pop(b)
	}
	if len(ls.tags) == level && ls.tags[level-1] != tag {
		ls.pop(b)
	}
	if len(ls.tags) == level {
		b.WriteString("</li>")
	}
	for len(ls.tags) < level {
		b.WriteString("<" + tag + ">")
		ls.tags = append(ls.tags, tag)
	}
	b.WriteString("<li>" + content)
}

func (ls *listState) pop(b *strings.Builder) {
	top := ls.tags[len(ls.tags)-1]
	b.WriteString("</li></" + top + ">")
	ls.tags = ls.tags[:len(ls.tags)-1]
}

func (ls *listState) closeAll(b *strings.Builder) {
	for len(ls.tags) > 0 {
		ls.pop(b)
	}
}

func listTag(listItem string) string {
	if listItem == models.ListItemNumber {
		return "ol"
	}
	return "ul"
}

// renderSpans renders the children of a block applying decorators and link annotations
func renderSpans(block models.ContentBlock) string {
	defs := make(map[string]models.MarkDef, len(block.MarkDefs))
	for _, def := range block.MarkDefs {
		defs[def.Key] = def
	}

	var b strings.Builder
	for _, span := range block.Children {
		if span.Type != models.ContentTypeSpan {
			continue
		}
		text := strings.ReplaceAll(template.HTMLEscapeString(span.Text), "\n", "<br>")
		for _, mark := range span.Marks {
			if tag, ok := decoratorTags[mark]; ok {
				text = "<" + tag + ">" + text + "</" + tag + ">"
				continue
			}
			def, ok := defs[mark]
			if ok && def.Type == models.MarkDefTypeLink && isSafeURL(def.Href, true) {
				text = `<a href="` + template.HTMLEscapeString(def.Href) + `" rel="noopener noreferrer">` + text + "</a>"
			}
		}
		b.WriteString(text)
	}
	return b.String()
}

// isSafeURL accepts relative and http(s) URLs, and mailto links when allowMailto is set
func isSafeURL(raw string, allowMailto bool) bool {
	if strings.TrimSpace(raw) == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https":
		return true
	case "mailto":
		return allowMailto
	default:
		return false
	}
}
