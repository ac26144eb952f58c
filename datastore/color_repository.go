//go:generate go run go.uber.org/mock/mockgen -source=color_repository.go -destination=../mocks/mock_color_repository.go -package=mocks
package datastore

import (
	"context"
	"database/sql"

	"github.com/color-swatch/api/models"
)

type ColorRepository interface {
	ListColors(ctx context.Context) ([]models.Color, error)
	CreateColor(ctx context.Context, hexCode string) (models.Color, error)
	DeleteColor(ctx context.Context, id int) error
}

type ColorDatabase struct {
	database *sql.DB
	dialect  Dialect
}

func NewColorDatabase(db *sql.DB, dialect Dialect) (ColorDatabase, error) {
	var colorDB ColorDatabase
	colorDB.database = db
	colorDB.dialect = dialect
	return colorDB, nil
}

// ListColors returns every color in insertion order
func (cdb ColorDatabase) ListColors(ctx context.Context) ([]models.Color, error) {
	db := cdb.database

	sqlStatement := `
		SELECT id, hex_code, created_at, updated_at
		FROM colors
		ORDER BY id ASC`

	rows, err := db.QueryContext(ctx, sqlStatement)
	if err != nil {
		return nil, StorageError{Op: "list colors", Err: err}
	}
	defer rows.Close()

	colors := []models.Color{}
	for rows.Next() {
		var c models.Color
		err := rows.Scan(
			&c.ID,
			&c.HexCode,
			&c.CreatedAt,
			&c.UpdatedAt,
		)
		if err != nil {
			return nil, StorageError{Op: "scan color", Err: err}
		}
		colors = append(colors, c)
	}

	if err = rows.Err(); err != nil {
		return nil, StorageError{Op: "list colors", Err: err}
	}

	return colors, nil
}

// CreateColor inserts a new color and returns it with its assigned id
func (cdb ColorDatabase) CreateColor(ctx context.Context, hexCode string) (models.Color, error) {
	db := cdb.database
	color := models.NewColor(hexCode)

	sqlStatement := cdb.dialect.Rebind(`
		INSERT INTO colors (hex_code, created_at, updated_at)
		VALUES (?, ?, ?)
		RETURNING id`)

	err := db.QueryRowContext(
		ctx,
		sqlStatement,
		color.HexCode,
		color.CreatedAt,
		color.UpdatedAt,
	).Scan(&color.ID)

	if err != nil {
		return models.Color{}, StorageError{Op: "create color", Err: err}
	}

	return color, nil
}

// DeleteColor removes a color by id. Deleting a missing id is ErrColorNotFound.
func (cdb ColorDatabase) DeleteColor(ctx context.Context, id int) error {
	db := cdb.database

	sqlStatement := cdb.dialect.Rebind(`DELETE FROM colors WHERE id = ?`)
	result, err := db.ExecContext(ctx, sqlStatement, id)
	if err != nil {
		return StorageError{Op: "delete color", Err: err}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return StorageError{Op: "delete color", Err: err}
	}
	if affected == 0 {
		return ErrColorNotFound
	}

	return nil
}
