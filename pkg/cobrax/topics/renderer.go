package topics

import (
	"strings"

	"github.com/arthur-debert/phint/pkg/paths"
)

// Renderer turns a topic into the text printed for it
type Renderer interface {
	Render(topic *Topic) string
}

// PlainRenderer prints topics as they are stored
type PlainRenderer struct{}

// Render returns the topic content unchanged
func (r *PlainRenderer) Render(topic *Topic) string {
	return topic.Content
}

// Markdown reports whether the topic file is markdown, judged by its
// extension ("md" or "markdown", any case)
func (t *Topic) Markdown() bool {
	ext := strings.ToLower(paths.Extension(t.FilePath))
	return ext == "md" || ext == "markdown"
}
