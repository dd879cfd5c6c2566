// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/phint/pkg/errors"
	"github.com/arthur-debert/phint/pkg/ui/styles"
	"github.com/arthur-debert/phint/pkg/ui/text"
)

// Renderer provides styled terminal output
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders results like the text renderer, with booleans
// colored and list items styled as paths
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case bool:
		style := "Error"
		if v {
			style = "Success"
		}
		return r.println(styles.Render(style, fmt.Sprint(v)))
	case []string:
		for _, item := range v {
			if err := r.println(styles.Render("FilePath", item)); err != nil {
				return err
			}
		}
		return nil
	}

	lines, err := text.Lines(result)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if err := r.println(line); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error with its code when it has one
func (r *Renderer) RenderError(err error) error {
	line := styles.Render("Error", "Error:") + " " + err.Error()
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		line += styles.Render("ErrorCode", "["+string(code)+"]")
	}
	return r.println(line)
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.println(styles.Render("Info", msg))
}

func (r *Renderer) println(line string) error {
	_, err := fmt.Fprintln(r.output, line)
	return err
}
