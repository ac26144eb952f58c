package client

import (
	"context"
	"errors"

	"github.com/samber/lo"

	"github.com/color-swatch/api/models"
)

// ColorPage holds the admin page state: the fetched list, the text typed into
// the add field and the color shown in the preview box. Every successful
// mutation is followed by a fresh read of the list.
//
// A ColorPage belongs to a single operator and is not safe for concurrent use.
type ColorPage struct {
	client  *Client
	colors  []models.Color
	typed   string
	preview string
	lastErr string
}

func NewColorPage(c *Client) *ColorPage {
	return &ColorPage{client: c}
}

// Load fetches the color list.
func (p *ColorPage) Load(ctx context.Context) error {
	colors, err := p.client.ListColors(ctx)
	if err != nil {
		p.recordError(err)
		return err
	}
	p.colors = colors
	return nil
}

// Type replaces the text of the add field.
func (p *ColorPage) Type(text string) {
	p.typed = text
}

// SelectColor previews a listed color. No request is made.
func (p *ColorPage) SelectColor(id int) bool {
	color, ok := lo.Find(p.colors, func(c models.Color) bool { return c.ID == id })
	if !ok {
		return false
	}
	p.preview = color.HexCode
	return true
}

// Add submits the typed text. On success the field is cleared and the list reloaded.
func (p *ColorPage) Add(ctx context.Context) error {
	if _, err := p.client.AddColor(ctx, p.typed); err != nil {
		p.recordError(err)
		return err
	}
	p.lastErr = ""
	p.typed = ""
	return p.Load(ctx)
}

// Delete removes a listed color and reloads the list.
func (p *ColorPage) Delete(ctx context.Context, id int) error {
	if _, err := p.client.DeleteColor(ctx, id); err != nil {
		p.recordError(err)
		return err
	}
	p.lastErr = ""
	return p.Load(ctx)
}

func (p *ColorPage) Colors() []models.Color { return p.colors }
func (p *ColorPage) Typed() string          { return p.typed }
func (p *ColorPage) PreviewHex() string     { return p.preview }

// LastError is the message to show inline, empty after a successful mutation.
func (p *ColorPage) LastError() string { return p.lastErr }

func (p *ColorPage) recordError(err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		p.lastErr = apiErr.Message
		return
	}
	p.lastErr = err.Error()
}
