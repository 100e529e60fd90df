package fleet

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nremp/dashboard/pkg/models"
	"github.com/nremp/dashboard/pkg/sanitize"
	"github.com/tidwall/gjson"
)

// Client reads the inventory from the fleet HTTP API.
type Client struct {
	baseURL string
	token   string
	apiKey  string
	http    *http.Client
}

var _ Service = (*Client)(nil)

// NewClient returns a client for the API at baseURL. If httpClient is nil,
// a client with a 30 second timeout is used.
func NewClient(baseURL, token, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		apiKey:  apiKey,
		http:    httpClient,
	}
}

// ListVehicles implements Service.
func (c *Client) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/veiculos", nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.apiKey != "" {
		req.Header.Set("ApiKey", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting vehicles: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, fmt.Errorf("reading vehicles: %w", err)
	}

	return parseVehicles(body)
}

// parseVehicles decodes the inventory. Both the API's Portuguese field
// names and the English ones are accepted, entries that are no objects are
// skipped.
func parseVehicles(body []byte) ([]models.Vehicle, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("decoding vehicles: invalid JSON")
	}

	list := gjson.ParseBytes(body)
	if !list.IsArray() {
		// Some deployments wrap the list
		list = list.Get("data")
		if !list.IsArray() {
			return nil, fmt.Errorf("decoding vehicles: expected a list")
		}
	}

	vehicles := []models.Vehicle{}
	list.ForEach(func(_, v gjson.Result) bool {
		if !v.IsObject() {
			return true
		}

		vehicles = append(vehicles, sanitize.Vehicle(models.Vehicle{
			ID:     int(v.Get("id").Int()),
			Plate:  first(v, "placa", "plate").String(),
			Brand:  first(v, "marca", "brand").String(),
			Model:  first(v, "modelo", "model").String(),
			Year:   int(first(v, "ano", "year").Int()),
			Status: models.ParseVehicleStatus(v.Get("status").String()),
		}))
		return true
	})

	return vehicles, nil
}

// first returns the first of the fields present in v.
func first(v gjson.Result, fields ...string) gjson.Result {
	for _, f := range fields {
		if r := v.Get(f); r.Exists() {
			return r
		}
	}
	return gjson.Result{}
}
