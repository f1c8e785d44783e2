package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"typemood/internal/security"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const VisitorContextKey ContextKey = "visitor"

// Middleware holds dependencies for middleware functions
type Middleware struct {
	tokenSecret string
	tokenTTL    time.Duration
	limiter     *security.RateLimiter
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(tokenSecret string, tokenTTL time.Duration, limiter *security.RateLimiter) *Middleware {
	return &Middleware{
		tokenSecret: tokenSecret,
		tokenTTL:    tokenTTL,
		limiter:     limiter,
	}
}

// WithVisitor identifies the visitor from their token cookie, issuing a fresh
// anonymous identity when the cookie is missing or invalid. The visitor ID is
// added to the request context.
func (m *Middleware) WithVisitor(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		visitorID := ""

		if cookie, err := r.Cookie(security.VisitorCookieName); err == nil {
			if id, err := security.ParseVisitorToken(m.tokenSecret, cookie.Value); err == nil {
				visitorID = id
			}
		}

		if visitorID == "" {
			visitorID = security.NewVisitorID()
			token, err := security.IssueVisitorToken(m.tokenSecret, visitorID, m.tokenTTL)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "Internal server error", "Error issuing visitor token", err)
				return
			}
			http.SetCookie(w, security.CreateVisitorCookie(r, token, time.Now().Add(m.tokenTTL)))
		}

		ctx := context.WithValue(r.Context(), VisitorContextKey, visitorID)
		next(w, r.WithContext(ctx))
	}
}

// RateLimit rejects requests once the visitor exhausts their bucket
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := GetVisitorFromContext(r.Context())
		if key == "" {
			key = security.GetClientIP(r)
		}

		if !m.limiter.Allow(key) {
			respondJSONError(w, http.StatusTooManyRequests, "Too many requests, slow down", "", nil)
			return
		}

		next(w, r)
	}
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// GetVisitorFromContext retrieves the visitor ID from the request context
func GetVisitorFromContext(ctx context.Context) string {
	visitorID, ok := ctx.Value(VisitorContextKey).(string)
	if !ok {
		return ""
	}
	return visitorID
}
