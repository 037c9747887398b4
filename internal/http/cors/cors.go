package cors

import (
	"net/http"
	"slices"

	"github.com/phungtienthanh/portfolio-api/pkg/logger"
)

// Guard decides whether a request origin may call the contact endpoint
// and derives the CORS headers for the response. Matching is an exact
// string comparison against the configured allow-list; no wildcard or
// subdomain matching.
type Guard struct {
	allowed []string
}

func NewGuard(allowedOrigins []string) *Guard {
	return &Guard{allowed: allowedOrigins}
}

// IsAllowed reports whether the given Origin header value is permitted.
// A missing origin is allowed so non-browser clients (curl, mobile apps)
// can call the endpoint. Rejections are logged.
func (g *Guard) IsAllowed(origin string) bool {
	if origin == "" {
		return true
	}
	if slices.Contains(g.allowed, origin) {
		return true
	}
	logger.Warn("CORS rejected origin", "origin", origin)
	return false
}

// Headers returns the CORS headers for the given origin. A disallowed
// origin gets an empty Access-Control-Allow-Origin so the browser blocks
// the response.
func (g *Guard) Headers(origin string) map[string]string {
	allowedOrigin := ""
	if origin == "" {
		allowedOrigin = "*"
	} else if slices.Contains(g.allowed, origin) {
		allowedOrigin = origin
	}
	return map[string]string{
		"Access-Control-Allow-Origin":  allowedOrigin,
		"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type",
	}
}

// Apply sets the CORS headers on the response. Called before any body is
// written so the headers are present on success and on every error path.
func (g *Guard) Apply(w http.ResponseWriter, origin string) {
	for k, v := range g.Headers(origin) {
		w.Header().Set(k, v)
	}
}
