// Package cachecontrol sets Cache-Control headers on HTTP responses based
// on their Content-Type. It wraps any http.Handler (server side) or
// http.RoundTripper (client side) and adds "public, max-age=<seconds>" to
// responses whose content type is in a configurable cacheable set.
//
// See https://developer.mozilla.org/en-US/docs/Web/HTTP/Headers/Cache-Control
// for more information.
package cachecontrol

import (
	"errors"
	"net/http"
	"strconv"
	"time"
)

// Errors reported by strict configuration helpers. The decoration path
// itself never fails: responses always pass through, decorated or not.
var (
	ErrInvalidMaxAge   = errors.New("invalid max-age value")
	ErrInvalidMimeType = errors.New("invalid MIME type")
)

// DefaultMimeTypes is the default set of content types that receive
// Cache-Control headers. HTML and plain text are deliberately excluded:
// markup usually changes with the application, static assets do not.
var DefaultMimeTypes = []MimeType{
	MimeTypeCSS,
	MimeTypeJS,
	MimeTypeSVG,
	MimeTypeWEBP,
	MimeTypeWOFF2,
	MimeTypePNG,
}

// Config holds the cacheable content-type set and the max-age duration.
// Config is a value type: the builder methods return modified copies, and
// a Config attached to a handler is never mutated afterward, so it is safe
// to share across concurrent requests.
type Config struct {
	MimeTypes []MimeType
	MaxAge    time.Duration
}

// New returns a Config with the default MIME type set and a max-age of
// one year (31536000 seconds).
//
// The builder methods chain:
//
//	cfg := cachecontrol.New().
//		WithMimeTypes(cachecontrol.MimeTypeCSS).
//		WithMaxAge(24 * time.Hour)
func New() Config {
	return Config{
		MimeTypes: DefaultMimeTypes,
		MaxAge:    365 * 24 * time.Hour,
	}
}

// WithMimeTypes returns a copy of the Config with the cacheable set
// replaced. Last write wins; previous sets are not accumulated.
func (c Config) WithMimeTypes(mimeTypes ...MimeType) Config {
	c.MimeTypes = mimeTypes
	return c
}

// WithMaxAge returns a copy of the Config with the max-age replaced.
func (c Config) WithMaxAge(maxAge time.Duration) Config {
	c.MaxAge = maxAge
	return c
}

// headerValue renders the Cache-Control value for the configured max-age,
// truncated to whole seconds. A negative max-age clamps to zero.
func (c Config) headerValue() string {
	secs := int64(c.MaxAge / time.Second)
	if secs < 0 {
		secs = 0
	}
	return "public, max-age=" + strconv.FormatInt(secs, 10)
}

// contains reports whether m is in the configured cacheable set.
func (c Config) contains(m MimeType) bool {
	for _, t := range c.MimeTypes {
		if t == m {
			return true
		}
	}
	return false
}

// decorate conditionally sets the Cache-Control header on h. The header is
// set only when a Content-Type is present and its classification is in the
// cacheable set. The request is never inspected or modified.
func (c Config) decorate(h http.Header) {
	contentType := h.Get("Content-Type")
	if contentType == "" {
		return
	}
	if c.contains(MimeTypeFromString(contentType)) {
		h.Set("Cache-Control", c.headerValue())
	}
}

// Middleware wraps next so that its responses receive Cache-Control
// headers per the Config. The wrapper adds no buffering, goroutines, or
// admission control of its own; panics from next propagate unchanged and
// nothing is decorated on that path.
func (c Config) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(&cacheWriter{ResponseWriter: w, config: c}, r)
	})
}

// cacheWriter intercepts the header flush to inject Cache-Control after
// the inner handler has set Content-Type but before headers go out.
type cacheWriter struct {
	http.ResponseWriter
	config      Config
	wroteHeader bool
}

func (cw *cacheWriter) WriteHeader(code int) {
	if !cw.wroteHeader {
		cw.wroteHeader = true
		cw.config.decorate(cw.Header())
	}
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *cacheWriter) Write(b []byte) (int, error) {
	if !cw.wroteHeader {
		cw.WriteHeader(http.StatusOK)
	}
	return cw.ResponseWriter.Write(b)
}

// Flush implements http.Flusher when the underlying writer does.
func (cw *cacheWriter) Flush() {
	if f, ok := cw.ResponseWriter.(http.Flusher); ok {
		if !cw.wroteHeader {
			cw.WriteHeader(http.StatusOK)
		}
		f.Flush()
	}
}
