package topics

import (
	"os"

	"github.com/arthur-debert/phint/pkg/ui"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

const (
	styleAuto  = "auto"
	styleNoTTY = "notty"
)

// GlamourRenderer renders markdown topics with glamour. Other topics are
// printed as they are.
type GlamourRenderer struct {
	// Style is a glamour style name or path; "auto" follows the output format
	Style string
	// Width wraps output; 0 keeps glamour's default
	Width int
	// Format reports the output format once flags are parsed. nil is
	// treated as ui.FormatAuto.
	Format func() ui.Format
}

// NewGlamourRenderer creates a markdown renderer following format
func NewGlamourRenderer(format func() ui.Format) *GlamourRenderer {
	return &GlamourRenderer{
		Style:  styleAuto,
		Format: format,
	}
}

// Render renders markdown topics, falling back to the raw content when
// glamour fails
func (r *GlamourRenderer) Render(topic *Topic) string {
	if !topic.Markdown() {
		return topic.Content
	}

	plain := r.plain()
	options := []glamour.TermRendererOption{r.styleOption(plain)}
	if plain {
		options = append(options, glamour.WithColorProfile(termenv.Ascii))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return topic.Content
	}
	rendered, err := renderer.Render(topic.Content)
	if err != nil {
		return topic.Content
	}
	return rendered
}

// plain reports whether output must carry no colours or styling: any
// format but the terminal one, or NO_COLOR while the format is undecided
func (r *GlamourRenderer) plain() bool {
	format := ui.FormatAuto
	if r.Format != nil {
		format = r.Format()
	}

	switch format {
	case ui.FormatTerminal:
		return false
	case ui.FormatAuto:
		return os.Getenv("NO_COLOR") != ""
	default:
		return true
	}
}

func (r *GlamourRenderer) styleOption(plain bool) glamour.TermRendererOption {
	switch {
	case plain:
		return glamour.WithStylePath(styleNoTTY)
	case r.Style != "" && r.Style != styleAuto:
		return glamour.WithStylePath(r.Style)
	default:
		return glamour.WithAutoStyle()
	}
}
