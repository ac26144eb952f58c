package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/color-swatch/api/metrics"
	"github.com/color-swatch/api/models"
)

type contextKey string

const sessionContextKey = contextKey("session")

const requestIDHeader = "X-Request-ID"

func handleCors(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization, X-Request-ID")
		w.Header().Add("Vary", "Origin")
		if r.Method == http.MethodOptions {
			return
		}
		h.ServeHTTP(w, r)
	}
}

// Authenticator verifies the platform credentials of an admin request.
type Authenticator interface {
	Authenticate(r *http.Request) (models.Session, error)
}

// SessionTokenAuthenticator accepts platform session tokens issued for APIKey
// and signed with APISecret.
type SessionTokenAuthenticator struct {
	APIKey    string
	APISecret string
}

func (a SessionTokenAuthenticator) Authenticate(r *http.Request) (models.Session, error) {
	token := sessionTokenFromRequest(r)
	if token == "" {
		return models.Session{}, ErrMissingSessionToken
	}
	return models.ValidateSessionToken(token, a.APIKey, a.APISecret)
}

// sessionTokenFromRequest reads the bearer token, falling back to the
// id_token query parameter the platform appends to embedded app URLs.
func sessionTokenFromRequest(r *http.Request) string {
	header := r.Header.Get(models.JWT.AUTHORIZATION_HEADER)
	if len(header) > len(models.JWT.BEARER_PREFIX) && strings.EqualFold(header[:len(models.JWT.BEARER_PREFIX)], models.JWT.BEARER_PREFIX) {
		return strings.TrimSpace(header[len(models.JWT.BEARER_PREFIX):])
	}
	return r.URL.Query().Get(models.JWT.ID_TOKEN_PARAM)
}

// SessionFromContext returns the session stored by authenticate.
func SessionFromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(sessionContextKey).(models.Session)
	return session, ok
}

// authenticate fails closed: h only runs for a verified session
func (app *Application) authenticate(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if app.Auth == nil {
			app.invalidAuthorization(w, r, ErrMissingSessionToken)
			return
		}

		session, err := app.Auth.Authenticate(r)
		if err != nil {
			app.invalidAuthorization(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, session)
		h.ServeHTTP(w, r.WithContext(ctx))
	}
}

// limitWrites rejects mutations above the configured rate
func (app *Application) limitWrites(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if app.WriteLimiter != nil && !app.WriteLimiter.Allow() {
			app.tooManyRequests(w, r)
			return
		}
		h.ServeHTTP(w, r)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(status int) {
	sr.status = status
	sr.ResponseWriter.WriteHeader(status)
}

// requestLogger tags the request with an id, logs it and counts it under route
func (app *Application) requestLogger(route string, h http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		h.ServeHTTP(rec, r)

		metrics.HTTPRequests.WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).Inc()
		app.Logger.Info().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}
