package cachecontrol

import "strings"

// MimeType is a closed classification of response content types.
// Classification is total: every content-type string maps to exactly one
// MimeType, with MimeTypeText as the fallback for anything unrecognized.
type MimeType int

const (
	MimeTypeText MimeType = iota // text/plain, also the fallback
	MimeTypeCSS
	MimeTypeHTML
	MimeTypeJS
	MimeTypeSVG
	MimeTypeWEBP
	MimeTypeWOFF2
	MimeTypePNG
)

// MimeTypeFromString classifies a raw Content-Type header value.
// Parameters after the first ";" (e.g. "; charset=utf-8") are discarded.
// Matching is exact against the canonical table; unknown, empty, or
// malformed values classify as MimeTypeText.
func MimeTypeFromString(s string) MimeType {
	mediaType, _, _ := strings.Cut(s, ";")
	mediaType = strings.TrimSpace(mediaType)

	switch mediaType {
	case "text/css":
		return MimeTypeCSS
	case "text/html":
		return MimeTypeHTML
	case "application/javascript":
		return MimeTypeJS
	case "image/svg+xml":
		return MimeTypeSVG
	case "text/plain":
		return MimeTypeText
	case "image/webp":
		return MimeTypeWEBP
	case "font/woff2":
		return MimeTypeWOFF2
	case "image/png":
		return MimeTypePNG
	default:
		return MimeTypeText
	}
}

// MimeTypeFromExtension maps a file extension (without the leading dot)
// to its MimeType. Unrecognized extensions map to MimeTypeText.
func MimeTypeFromExtension(ext string) MimeType {
	switch ext {
	case "css":
		return MimeTypeCSS
	case "html":
		return MimeTypeHTML
	case "js":
		return MimeTypeJS
	case "svg":
		return MimeTypeSVG
	case "webp":
		return MimeTypeWEBP
	case "woff2":
		return MimeTypeWOFF2
	case "png":
		return MimeTypePNG
	default:
		return MimeTypeText
	}
}

// String returns the canonical content-type for the MimeType.
func (m MimeType) String() string {
	switch m {
	case MimeTypeCSS:
		return "text/css"
	case MimeTypeHTML:
		return "text/html"
	case MimeTypeJS:
		return "application/javascript"
	case MimeTypeSVG:
		return "image/svg+xml"
	case MimeTypeWEBP:
		return "image/webp"
	case MimeTypeWOFF2:
		return "font/woff2"
	case MimeTypePNG:
		return "image/png"
	default:
		return "text/plain"
	}
}
