package models

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	// ActionField is the discriminator of the write path form.
	ActionField = "action"
	IDField     = "id"
	ColorField  = "color"

	DeleteAction = "delete"

	maxFormMemory = 1 << 20
)

var (
	ErrMissingDeleteID = ValidationError{Message: "ID is missing for delete action"}
	ErrInvalidDeleteID = ValidationError{Message: "ID must be a positive integer"}
	ErrMissingColor    = ValidationError{Message: "Color value is missing"}
	ErrMalformedForm   = ValidationError{Message: "Could not parse form body"}
)

var validate = validator.New()

// ValidationError is a rejected write payload. Message is shown to the operator as is.
type ValidationError struct {
	Message string
}

func (ve ValidationError) Error() string {
	return ve.Message
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// ColorAction is one decoded write request: either CreateColorAction or DeleteColorAction.
type ColorAction interface {
	colorAction()
}

type CreateColorAction struct {
	HexCode string `validate:"required"`
}

type DeleteColorAction struct {
	ID int `validate:"required,gt=0"`
}

func (CreateColorAction) colorAction() {}
func (DeleteColorAction) colorAction() {}

// ParseColorAction reads the submitted form of r and decodes it into a ColorAction.
// A missing or "non-delete" discriminator means create.
func ParseColorAction(r *http.Request) (ColorAction, error) {
	if err := parseForm(r); err != nil {
		return nil, err
	}

	if r.PostFormValue(ActionField) == DeleteAction {
		rawID := r.PostFormValue(IDField)
		if rawID == "" {
			return nil, ErrMissingDeleteID
		}
		id, err := strconv.Atoi(rawID)
		if err != nil {
			return nil, ErrInvalidDeleteID
		}
		action := DeleteColorAction{ID: id}
		if err := validate.Struct(action); err != nil {
			return nil, ErrInvalidDeleteID
		}
		return action, nil
	}

	action := CreateColorAction{HexCode: r.PostFormValue(ColorField)}
	if err := validate.Struct(action); err != nil {
		return nil, ErrMissingColor
	}
	return action, nil
}

// parseForm accepts both urlencoded and multipart bodies.
func parseForm(r *http.Request) error {
	var err error
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		err = r.ParseMultipartForm(maxFormMemory)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return ErrMalformedForm
	}
	return nil
}
