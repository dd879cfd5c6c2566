// Package json provides machine-readable JSON output
package json

import (
	"io"

	"github.com/arthur-debert/phint/pkg/errors"
	"github.com/arthur-debert/phint/pkg/jsonc"
)

// Renderer provides JSON output for machine consumption, one document per
// call
type Renderer struct {
	output io.Writer
}

// New creates a new JSON renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as JSON
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encode(result)
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	errorObj := map[string]interface{}{
		"error": err.Error(),
		"code":  errors.GetErrorCode(err),
	}
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		errorObj["details"] = details
	}
	return r.encode(errorObj)
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	return r.encode(map[string]string{"message": msg})
}

func (r *Renderer) encode(v interface{}) error {
	data, err := jsonc.Encode(v)
	if err != nil {
		return err
	}
	_, err = r.output.Write(append(data, '\n'))
	return err
}
