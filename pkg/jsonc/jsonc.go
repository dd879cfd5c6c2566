// Package jsonc decodes JSON that may carry comments and trailing commas,
// and encodes values as indented JSON for files meant to be read by people.
package jsonc

import (
	"bytes"
	"encoding/json"

	"github.com/arthur-debert/phint/pkg/errors"
	"github.com/tailscale/hujson"
)

// Indent is the indentation used by Encode
const Indent = "    "

// Decode standardizes data (stripping // and /* */ comments and trailing
// commas) and unmarshals it into v.
func Decode(data []byte, v any) error {
	std, err := hujson.Standardize(data)
	if err != nil {
		return errors.Wrap(err, errors.ErrJSONDecode, "invalid json")
	}
	if err := json.Unmarshal(std, v); err != nil {
		return errors.Wrap(err, errors.ErrJSONDecode, "invalid json")
	}
	return nil
}

// DecodeValue decodes data into generic Go values: objects become
// map[string]any, arrays []any, numbers float64.
func DecodeValue(data []byte) (any, error) {
	var v any
	if err := Decode(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Encode renders v as indented JSON without HTML escaping and without a
// trailing newline.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(v); err != nil {
		return nil, errors.Wrap(err, errors.ErrJSONEncode, "cannot encode json")
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
