package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"guri24/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// routeMethods are the verbs the API routes on. A deployment that trims
// CORS_ALLOW_METHODS below these would break listing edits and inquiry
// triage from the browser.
var routeMethods = []string{
	http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
}

// exposedHeaders must reach browser clients: request correlation and the
// retry hint sent with 503s.
var exposedHeaders = []string{"X-Request-ID", "Retry-After"}

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     union(cfg.AllowMethods, routeMethods),
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    union(cfg.ExposeHeaders, exposedHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	// The session cookie needs credentialed requests, which browsers refuse
	// for a wildcard origin.
	if cfg.AllowCredentials && slices.Contains(cfg.AllowOrigins, "*") {
		slog.Warn("CORS wildcard origin with credentials; echoing the request origin instead")
		corsCfg.AllowOrigins = nil
		corsCfg.AllowOriginFunc = func(string) bool { return true }
	}
	slog.Info("CORS middleware initialized", "AllowOrigins", cfg.AllowOrigins, "AllowMethods", corsCfg.AllowMethods)
	return cors.New(corsCfg)
}

func union(configured, required []string) []string {
	out := slices.Clone(configured)
	for _, v := range required {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
