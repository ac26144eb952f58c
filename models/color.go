package models

import "time"

// Color is a stored swatch. Only HexCode is supplied by the operator.
type Color struct {
	ID        int       `json:"id" db:"id"`
	HexCode   string    `json:"hexCode" db:"hex_code"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// NewColor returns an unsaved color stamped with the current time.
// Timestamps are truncated to microseconds so postgres and sqlite
// return the same value that was written.
func NewColor(hexCode string) Color {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return Color{
		HexCode:   hexCode,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MessageResponse is the success payload of the write path.
type MessageResponse struct {
	Message string `json:"message"`
	Color   *Color `json:"color,omitempty"`
}
