// Package client talks to the color admin API and keeps the admin page state.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/color-swatch/api/models"
)

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("color api: %d %s", e.Status, e.Message)
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New returns a client for the API at baseURL authenticating with the platform session token.
func New(baseURL string, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: httpClient,
	}
}

func (c *Client) ListColors(ctx context.Context) ([]models.Color, error) {
	var colors []models.Color
	if err := c.do(ctx, http.MethodGet, nil, &colors); err != nil {
		return nil, err
	}
	return colors, nil
}

func (c *Client) AddColor(ctx context.Context, hexCode string) (models.MessageResponse, error) {
	var res models.MessageResponse
	err := c.do(ctx, http.MethodPost, url.Values{models.ColorField: {hexCode}}, &res)
	return res, err
}

func (c *Client) DeleteColor(ctx context.Context, id int) (models.MessageResponse, error) {
	var res models.MessageResponse
	form := url.Values{
		models.ActionField: {models.DeleteAction},
		models.IDField:     {strconv.Itoa(id)},
	}
	err := c.do(ctx, http.MethodPost, form, &res)
	return res, err
}

func (c *Client) do(ctx context.Context, method string, form url.Values, out any) error {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/", body)
	if err != nil {
		return err
	}
	req.Header.Set(models.JWT.AUTHORIZATION_HEADER, models.JWT.BEARER_PREFIX+c.token)
	req.Header.Set("Accept", "application/json")
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var errBody struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(res.Body).Decode(&errBody); err != nil || errBody.Error == "" {
			errBody.Error = http.StatusText(res.StatusCode)
		}
		return &APIError{Status: res.StatusCode, Message: errBody.Error}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", method, err)
	}
	return nil
}
