// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/phint/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult writes strings as lines, lists one item per line, and any
// other value as YAML
func (r *Renderer) RenderResult(result interface{}) error {
	lines, err := Lines(result)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// Lines flattens a result into output lines
func Lines(result interface{}) ([]string, error) {
	switch v := result.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{v}, nil
	case []string:
		return v, nil
	case bool:
		return []string{strconv.FormatBool(v)}, nil
	case fmt.Stringer:
		return []string{v.String()}, nil
	}

	data, err := yaml.Marshal(result)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot render result")
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n"), nil
}
