package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/color-swatch/api/datastore"
	"github.com/color-swatch/api/models"
)

const (
	testAPIKey    = "test-api-key"
	testAPISecret = "test-api-secret"
	testShop      = "https://demo-shop.myshopify.com"
)

func newTestApp(repo datastore.ColorRepository) *Application {
	return &Application{
		Config: Config{
			AllowedOrigins: []string{"https://admin.shopify.com"},
		},
		Logger:    zerolog.Nop(),
		ColorRepo: repo,
		Auth:      SessionTokenAuthenticator{APIKey: testAPIKey, APISecret: testAPISecret},
	}
}

func sessionToken(t *testing.T) string {
	t.Helper()
	now := time.Now()
	claims := models.SessionClaims{
		Dest:      testShop,
		SessionID: "session-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testShop + "/admin",
			Subject:   "7",
			Audience:  jwt.ClaimStrings{testAPIKey},
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testAPISecret))
	require.NoError(t, err)
	return token
}

func serve(app *Application, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	app.BuildRoutes(http.NewServeMux()).ServeHTTP(w, r)
	return w
}

func getColors(token string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

func postForm(token string, form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
