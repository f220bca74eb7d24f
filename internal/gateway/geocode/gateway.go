package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"rolloff/internal/entities"
)

var (
	ErrAddressNotFound     = errors.New("address not found")
	ErrGeocoderUnavailable = errors.New("geocoder unavailable")
)

type geocodeResponse struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// Gateway resolves street addresses to coordinates. Callers treat failures as
// best-effort: an assignment proceeds without coordinates.
type Gateway struct {
	baseURL string
	client  httpDoer
}

func New(baseURL string, client httpDoer) *Gateway {
	return &Gateway{
		baseURL: baseURL,
		client:  client,
	}
}

func (g *Gateway) Lookup(ctx context.Context, address string) (*entities.Coordinates, error) {
	reqURL := g.baseURL + "/v1/geocode?address=" + url.QueryEscape(address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("gateway geocode, build request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway geocode: %w: %w", ErrGeocoderUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("gateway geocode: %w: %s", ErrAddressNotFound, address)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("gateway geocode: %w: status %d", ErrGeocoderUnavailable, resp.StatusCode)
	}

	var parsed geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("gateway geocode, decode response: %w", err)
	}

	return &entities.Coordinates{
		Latitude:  parsed.Latitude,
		Longitude: parsed.Longitude,
	}, nil
}
