package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/birddigital/cachecontrol"
	"github.com/birddigital/cachecontrol/internal/config"
	"github.com/birddigital/cachecontrol/internal/metrics"
)

// NewRouter creates the Chi router serving static files behind the
// cache-control middleware.
func NewRouter(cfg *config.Config, cacheCfg cachecontrol.Config, m *metrics.ServeMetrics, l zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 1. Request ID (first, so all logs carry it)
	r.Use(RequestID(l))

	// 2. Real IP extraction (for accurate rate limiting behind proxies)
	r.Use(middleware.RealIP)

	// 3. Structured request logging and metrics
	r.Use(RequestLogging(m))

	// 4. Recovery from panics
	r.Use(Recovery(l))

	// 5. Compression
	if cfg.Server.CompressLevel > 0 {
		r.Use(middleware.Compress(cfg.Server.CompressLevel))
	}

	// 6. Request timeout
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	// 7. Rate limiting
	if cfg.Server.RateLimitEnabled && cfg.Server.RateLimitRPS > 0 {
		limiter := NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)
		r.Use(limiter.Middleware)
	}

	// Liveness endpoint
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Static file serving with cache headers
	fileServer := http.FileServer(http.Dir(cfg.Server.StaticDir))
	r.With(cacheCfg.Middleware).Handle("/static/*",
		http.StripPrefix("/static/", fileServer))

	l.Info().
		Str("path", "/static/*").
		Str("dir", cfg.Server.StaticDir).
		Msg("Static file serving configured")

	return r
}

// CacheConfigFromExtensions builds the middleware Config from the
// extension list configured for the server.
func CacheConfigFromExtensions(cfg config.CacheConfig) cachecontrol.Config {
	mimeTypes := make([]cachecontrol.MimeType, 0, len(cfg.Extensions))
	for _, ext := range cfg.Extensions {
		mimeTypes = append(mimeTypes, cachecontrol.MimeTypeFromExtension(ext))
	}

	return cachecontrol.New().
		WithMimeTypes(mimeTypes...).
		WithMaxAge(cfg.MaxAge)
}
