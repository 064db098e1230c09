package cachecontrol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMimeTypeFromString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected MimeType
	}{
		{
			name:     "css",
			input:    "text/css",
			expected: MimeTypeCSS,
		},
		{
			name:     "css with charset parameter",
			input:    "text/css; charset=utf-8",
			expected: MimeTypeCSS,
		},
		{
			name:     "html",
			input:    "text/html",
			expected: MimeTypeHTML,
		},
		{
			name:     "html with charset parameter",
			input:    "text/html; charset=utf-8",
			expected: MimeTypeHTML,
		},
		{
			name:     "javascript",
			input:    "application/javascript",
			expected: MimeTypeJS,
		},
		{
			name:     "svg",
			input:    "image/svg+xml",
			expected: MimeTypeSVG,
		},
		{
			name:     "plain text",
			input:    "text/plain",
			expected: MimeTypeText,
		},
		{
			name:     "webp",
			input:    "image/webp",
			expected: MimeTypeWEBP,
		},
		{
			name:     "woff2",
			input:    "font/woff2",
			expected: MimeTypeWOFF2,
		},
		{
			name:     "png",
			input:    "image/png",
			expected: MimeTypePNG,
		},
		{
			name:     "empty string falls back to text",
			input:    "",
			expected: MimeTypeText,
		},
		{
			name:     "unknown type falls back to text",
			input:    "bogus/type",
			expected: MimeTypeText,
		},
		{
			name:     "bare semicolon falls back to text",
			input:    ";",
			expected: MimeTypeText,
		},
		{
			name:     "parameters only falls back to text",
			input:    "; charset=utf-8",
			expected: MimeTypeText,
		},
		{
			name:     "json is not recognized",
			input:    "application/json",
			expected: MimeTypeText,
		},
		{
			name:     "multiple parameters discarded",
			input:    "image/png; q=0.8; v=1",
			expected: MimeTypePNG,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MimeTypeFromString(tt.input))
		})
	}
}

func TestMimeTypeFromExtension(t *testing.T) {
	tests := []struct {
		ext      string
		expected MimeType
	}{
		{"css", MimeTypeCSS},
		{"html", MimeTypeHTML},
		{"js", MimeTypeJS},
		{"svg", MimeTypeSVG},
		{"webp", MimeTypeWEBP},
		{"woff2", MimeTypeWOFF2},
		{"png", MimeTypePNG},
		{"exe", MimeTypeText},
		{"", MimeTypeText},
		{"CSS", MimeTypeText}, // case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			assert.Equal(t, tt.expected, MimeTypeFromExtension(tt.ext))
		})
	}
}

func TestMimeTypeString(t *testing.T) {
	tests := []struct {
		mimeType MimeType
		expected string
	}{
		{MimeTypeCSS, "text/css"},
		{MimeTypeHTML, "text/html"},
		{MimeTypeJS, "application/javascript"},
		{MimeTypeSVG, "image/svg+xml"},
		{MimeTypeText, "text/plain"},
		{MimeTypeWEBP, "image/webp"},
		{MimeTypeWOFF2, "font/woff2"},
		{MimeTypePNG, "image/png"},
	}

	seen := make(map[string]bool)
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			got := tt.mimeType.String()
			assert.Equal(t, tt.expected, got)

			// String rendering must round-trip through classification.
			assert.Equal(t, tt.mimeType, MimeTypeFromString(got))

			// Canonical strings are distinct per type.
			assert.False(t, seen[got], "duplicate canonical string %q", got)
			seen[got] = true
		})
	}
}
