package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/color-swatch/api/api"
	"github.com/color-swatch/api/client"
	"github.com/color-swatch/api/datastore"
	"github.com/color-swatch/api/models"
)

const goodToken = "good-token"

type tokenAuthenticator struct{}

func (tokenAuthenticator) Authenticate(r *http.Request) (models.Session, error) {
	if r.Header.Get("Authorization") != "Bearer "+goodToken {
		return models.Session{}, errors.New("bad token")
	}
	return models.Session{Shop: "demo-shop.myshopify.com"}, nil
}

// countingStore counts list calls so tests can see the refetch after a write
type countingStore struct {
	*datastore.MemoryColorStore
	lists atomic.Int32
}

func (s *countingStore) ListColors(ctx context.Context) ([]models.Color, error) {
	s.lists.Add(1)
	return s.MemoryColorStore.ListColors(ctx)
}

func newServer(t *testing.T) (*httptest.Server, *countingStore) {
	t.Helper()
	store := &countingStore{MemoryColorStore: datastore.NewMemoryColorStore()}
	app := &api.Application{
		Logger:    zerolog.Nop(),
		ColorRepo: store,
		Auth:      tokenAuthenticator{},
	}
	srv := httptest.NewServer(app.BuildRoutes(http.NewServeMux()))
	t.Cleanup(srv.Close)
	return srv, store
}

func TestColorPage_AddRefetchesAndClearsInput(t *testing.T) {
	srv, store := newServer(t)
	ctx := context.Background()
	page := client.NewColorPage(client.New(srv.URL, goodToken, srv.Client()))

	require.NoError(t, page.Load(ctx))
	require.Empty(t, page.Colors())

	page.Type("#ff0000")
	require.NoError(t, page.Add(ctx))

	require.Equal(t, "", page.Typed())
	require.Equal(t, "", page.LastError())
	require.Len(t, page.Colors(), 1)
	require.Equal(t, "#ff0000", page.Colors()[0].HexCode)
	require.Equal(t, int32(2), store.lists.Load())
}

func TestColorPage_ValidationErrorKeepsInput(t *testing.T) {
	srv, store := newServer(t)
	ctx := context.Background()
	page := client.NewColorPage(client.New(srv.URL, goodToken, srv.Client()))

	err := page.Add(ctx)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.Status)
	require.Equal(t, "Color value is missing", page.LastError())
	require.Equal(t, int32(0), store.lists.Load())

	page.Type("#00ff00")
	require.NoError(t, page.Add(ctx))
	require.Empty(t, page.LastError())
}

func TestColorPage_DeleteRefetches(t *testing.T) {
	srv, _ := newServer(t)
	ctx := context.Background()
	page := client.NewColorPage(client.New(srv.URL, goodToken, srv.Client()))

	page.Type("#111111")
	require.NoError(t, page.Add(ctx))
	page.Type("#222222")
	require.NoError(t, page.Add(ctx))
	require.Len(t, page.Colors(), 2)

	gone := page.Colors()[0]
	require.NoError(t, page.Delete(ctx, gone.ID))
	require.Len(t, page.Colors(), 1)
	require.NotEqual(t, gone.ID, page.Colors()[0].ID)

	err := page.Delete(ctx, gone.ID)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.Status)
	require.Equal(t, "Color not found", page.LastError())
}

func TestColorPage_SelectColorIsLocal(t *testing.T) {
	srv, store := newServer(t)
	ctx := context.Background()
	page := client.NewColorPage(client.New(srv.URL, goodToken, srv.Client()))

	page.Type("#abcdef")
	require.NoError(t, page.Add(ctx))
	lists := store.lists.Load()

	require.True(t, page.SelectColor(page.Colors()[0].ID))
	require.Equal(t, "#abcdef", page.PreviewHex())
	require.False(t, page.SelectColor(9999))
	require.Equal(t, "#abcdef", page.PreviewHex())
	require.Equal(t, lists, store.lists.Load())
}

func TestColorPage_Unauthorized(t *testing.T) {
	srv, store := newServer(t)
	page := client.NewColorPage(client.New(srv.URL, "wrong", srv.Client()))

	err := page.Load(context.Background())
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	require.Equal(t, "Invalid Authentication", page.LastError())
	require.Equal(t, int32(0), store.lists.Load())
}
