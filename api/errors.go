package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"runtime"
)

// HandlerError is the JSON body of every failed request. Error carries the
// operator-facing message.
type HandlerError struct {
	ErrorName        string `json:"errorName"`
	Error            string `json:"error"`
	PossibleSolution string `json:"possibleSolution"`
	CallerInfo       string `json:"callerInfo,omitempty"`
}

var ErrGETOrPOST = errors.New("GET or POST method required for this endpoint")
var ErrMissingSessionToken = errors.New("no session token found")

// callerInfo names the handler that produced an error. Only filled in dev mode.
func (app *Application) callerInfo() string {
	if !app.Config.DevMode {
		return ""
	}
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "[unknown]"
	}
	return fmt.Sprintf("[%s:%d]", filepath.Base(file), line)
}

func (app *Application) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		app.Logger.Error().Err(err).Str("path", r.URL.Path).Msg("failed to encode response")
	}
}

func (app *Application) invalidAuthorization(w http.ResponseWriter, r *http.Request, err error) {
	app.Logger.Warn().Err(err).Str("path", r.URL.Path).Msg("rejected unauthenticated request")
	app.writeJSON(w, r, http.StatusUnauthorized, HandlerError{
		ErrorName:        "Error Authenticating for Endpoint",
		Error:            "Invalid Authentication",
		PossibleSolution: "Check your headers and ensure you're submitting a valid session token",
		CallerInfo:       app.callerInfo(),
	})
}

func (app *Application) methodNotAllowed(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("Allow", "GET, POST")
	app.writeJSON(w, r, http.StatusMethodNotAllowed, HandlerError{
		ErrorName:        "Method Not Allowed",
		Error:            err.Error() + " you used: " + r.Method,
		PossibleSolution: "Use GET to list colors or POST to change them",
		CallerInfo:       app.callerInfo(),
	})
}

func (app *Application) validationError(w http.ResponseWriter, r *http.Request, err error) {
	app.writeJSON(w, r, http.StatusBadRequest, HandlerError{
		ErrorName:        "Validation Error",
		Error:            err.Error(),
		PossibleSolution: "Check your form fields",
		CallerInfo:       app.callerInfo(),
	})
}

func (app *Application) colorNotFound(w http.ResponseWriter, r *http.Request, err error) {
	app.writeJSON(w, r, http.StatusNotFound, HandlerError{
		ErrorName:        "Not Found",
		Error:            "Color not found",
		PossibleSolution: "Reload the color list, it may have been deleted already",
		CallerInfo:       app.callerInfo(),
	})
}

func (app *Application) tooManyRequests(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Retry-After", "1")
	app.writeJSON(w, r, http.StatusTooManyRequests, HandlerError{
		ErrorName:        "Too Many Requests",
		Error:            "Too many color changes, slow down",
		PossibleSolution: "Retry in a moment",
		CallerInfo:       app.callerInfo(),
	})
}

func (app *Application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.Logger.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("internal server error")
	app.writeJSON(w, r, http.StatusInternalServerError, HandlerError{
		ErrorName:        "Internal Server Error",
		Error:            "Something went wrong",
		PossibleSolution: "Internal Server Error requiring support",
		CallerInfo:       app.callerInfo(),
	})
}
