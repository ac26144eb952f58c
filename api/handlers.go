package api

import (
	"errors"
	"net/http"

	"github.com/color-swatch/api/datastore"
	"github.com/color-swatch/api/metrics"
	"github.com/color-swatch/api/models"
)

const (
	msgColorAdded   = "New color added!"
	msgColorDeleted = "Color deleted successfully"
)

// GET|POST /
func (app *Application) colors(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		app.authenticate(app.listColors)(w, r)
	case http.MethodPost:
		app.authenticate(app.limitWrites(app.writeColor))(w, r)
	default:
		app.methodNotAllowed(w, r, ErrGETOrPOST)
	}
}

// GET / - every stored color
func (app *Application) listColors(w http.ResponseWriter, r *http.Request) {
	colors, err := app.ColorRepo.ListColors(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, colors)
}

// POST / - create (no action) or delete (action=delete) a color
func (app *Application) writeColor(w http.ResponseWriter, r *http.Request) {
	action, err := models.ParseColorAction(r)
	if err != nil {
		if models.IsValidationError(err) {
			app.validationError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	switch a := action.(type) {
	case models.CreateColorAction:
		app.createColor(w, r, a)
	case models.DeleteColorAction:
		app.deleteColor(w, r, a)
	}
}

func (app *Application) createColor(w http.ResponseWriter, r *http.Request, action models.CreateColorAction) {
	color, err := app.ColorRepo.CreateColor(r.Context(), action.HexCode)
	if err != nil {
		metrics.ColorMutations.WithLabelValues("create", "error").Inc()
		app.internalServerError(w, r, err)
		return
	}
	metrics.ColorMutations.WithLabelValues("create", "ok").Inc()

	session, _ := SessionFromContext(r.Context())
	app.Logger.Info().
		Str("shop", session.Shop).
		Int("color_id", color.ID).
		Str("hex_code", color.HexCode).
		Msg("color added")

	app.writeJSON(w, r, http.StatusOK, models.MessageResponse{Message: msgColorAdded, Color: &color})
}

func (app *Application) deleteColor(w http.ResponseWriter, r *http.Request, action models.DeleteColorAction) {
	err := app.ColorRepo.DeleteColor(r.Context(), action.ID)
	switch {
	case errors.Is(err, datastore.ErrColorNotFound):
		metrics.ColorMutations.WithLabelValues("delete", "not_found").Inc()
		app.colorNotFound(w, r, err)
		return
	case err != nil:
		metrics.ColorMutations.WithLabelValues("delete", "error").Inc()
		app.internalServerError(w, r, err)
		return
	}
	metrics.ColorMutations.WithLabelValues("delete", "ok").Inc()

	session, _ := SessionFromContext(r.Context())
	app.Logger.Info().
		Str("shop", session.Shop).
		Int("color_id", action.ID).
		Msg("color deleted")

	app.writeJSON(w, r, http.StatusOK, models.MessageResponse{Message: msgColorDeleted})
}
