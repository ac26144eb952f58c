package datastore

import (
	"context"
	"sort"
	"sync"

	"github.com/color-swatch/api/models"
)

// MemoryColorStore keeps colors in process. It follows the same error
// contract as ColorDatabase and is used by tests and DB_TYPE=memory.
type MemoryColorStore struct {
	mu     sync.RWMutex
	nextID int
	colors map[int]models.Color
}

func NewMemoryColorStore() *MemoryColorStore {
	return &MemoryColorStore{colors: make(map[int]models.Color)}
}

func (m *MemoryColorStore) ListColors(ctx context.Context) ([]models.Color, error) {
	if err := ctx.Err(); err != nil {
		return nil, StorageError{Op: "list colors", Err: err}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Color, 0, len(m.colors))
	for _, c := range m.colors {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryColorStore) CreateColor(ctx context.Context, hexCode string) (models.Color, error) {
	if err := ctx.Err(); err != nil {
		return models.Color{}, StorageError{Op: "create color", Err: err}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	color := models.NewColor(hexCode)
	color.ID = m.nextID
	m.colors[color.ID] = color
	return color, nil
}

func (m *MemoryColorStore) DeleteColor(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return StorageError{Op: "delete color", Err: err}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.colors[id]; !ok {
		return ErrColorNotFound
	}
	delete(m.colors, id)
	return nil
}
