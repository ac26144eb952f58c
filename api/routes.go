package api

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/samber/lo"

	"github.com/color-swatch/api/web"
)

var localhostPattern = regexp.MustCompile(`^localhost:\d+$`)

func cleanOrigin(origin string) string {
	cleanedOrigin := strings.TrimPrefix(origin, "https://")
	cleanedOrigin = strings.TrimPrefix(cleanedOrigin, "http://")
	cleanedOrigin = strings.TrimPrefix(cleanedOrigin, "wss://")
	if idx := strings.Index(cleanedOrigin, "/"); idx != -1 {
		cleanedOrigin = cleanedOrigin[:idx]
	}
	return cleanedOrigin
}

func isAllowedOrigin(origin string, host string, allowedOrigins []string, devMode bool) bool {
	cleanedRequest := cleanOrigin(origin)

	// the embedded admin page calls back to its own host
	if cleanedRequest == host {
		return true
	}

	if devMode && localhostPattern.MatchString(cleanedRequest) {
		return true
	}

	return lo.ContainsBy(allowedOrigins, func(allowed string) bool {
		return cleanOrigin(allowed) == cleanedRequest
	})
}

func wrapMuxWithCorsAndOrigins(mux *http.ServeMux, app *Application) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin == "" {
			referer := r.Header.Get("Referer")
			if referer != "" {
				origin = referer
			}
		}

		if origin == "" {
			handleCors(mux.ServeHTTP)(w, r)
			return
		}

		if isAllowedOrigin(origin, r.Host, app.Config.AllowedOrigins, app.Config.DevMode) {
			handleCors(mux.ServeHTTP)(w, r)
			return
		}

		app.Logger.Warn().Str("origin", origin).Msg("origin not allowed")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("origin not allowed: " + cleanOrigin(origin)))
	})
}

func (app *Application) BuildRoutes(mux *http.ServeMux) *http.ServeMux {
	finalMux := http.NewServeMux()

	// Color list (GET) and color changes (POST), both authenticated
	mux.HandleFunc("/{$}", app.requestLogger("/", http.HandlerFunc(app.colors)))

	// Admin page
	mux.Handle("/app/", app.requestLogger("/app/", web.Handler("/app/")))

	if app.Metrics != nil {
		mux.Handle("/metrics", app.Metrics)
	}

	// Wrap entire mux with CORS and origins check
	finalMux.Handle("/", wrapMuxWithCorsAndOrigins(mux, app))

	return finalMux
}
