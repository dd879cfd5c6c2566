package jsonc

import (
	"testing"

	"github.com/arthur-debert/phint/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  any
	}{
		{
			name:  "plain object",
			input: `{"k": 1}`,
			want:  map[string]any{"k": float64(1)},
		},
		{
			name: "line and block comments",
			input: `{
				// the package name
				"name": "adhocore/phint", /* vendor/project */
				"keywords": ["cli"]
			}`,
			want: map[string]any{
				"name":     "adhocore/phint",
				"keywords": []any{"cli"},
			},
		},
		{
			name:  "trailing comma",
			input: `[1, 2, 3,]`,
			want:  []any{float64(1), float64(2), float64(3)},
		},
		{
			name:  "null literal",
			input: `null`,
			want:  nil,
		},
		{
			name:  "comment markers inside strings are kept",
			input: `{"url": "https://example.com/*x*/"}`,
			want:  map[string]any{"url": "https://example.com/*x*/"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeValue([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	_, err := DecodeValue([]byte(`{"k": }`))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrJSONDecode))
}

func TestDecodeIntoStruct(t *testing.T) {
	var cfg struct {
		Type string `json:"type"`
		Bin  []string
	}
	err := Decode([]byte(`{"type": "library", /* bins */ "bin": ["run"]}`), &cfg)
	require.NoError(t, err)
	assert.Equal(t, "library", cfg.Type)
	assert.Equal(t, []string{"run"}, cfg.Bin)
}

func TestEncode(t *testing.T) {
	out, err := Encode(map[string]any{"path": "src/Util", "tag": "<?php"})
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"path\": \"src/Util\",\n    \"tag\": \"<?php\"\n}", string(out))
}

func TestEncodeUnsupported(t *testing.T) {
	_, err := Encode(make(chan int))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrJSONEncode))
}
