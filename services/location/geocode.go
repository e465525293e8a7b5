// File: services/location/geocode.go
package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"hobyhub/config"
)

const googleGeocodeURL = "https://maps.googleapis.com/maps/api/geocode/json"

// GoogleGeocoder reverse-geocodes through the Google Geocoding API.
type GoogleGeocoder struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewGoogleGeocoder builds a geocoder using the configured API key.
func NewGoogleGeocoder() *GoogleGeocoder {
	return &GoogleGeocoder{
		apiKey:     config.AppConfig.GoogleAPIKey,
		baseURL:    googleGeocodeURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// NewGoogleGeocoderWithBase is used by tests to point at a fake server.
func NewGoogleGeocoderWithBase(baseURL, apiKey string) *GoogleGeocoder {
	return &GoogleGeocoder{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		AddressComponents []struct {
			LongName string   `json:"long_name"`
			Types    []string `json:"types"`
		} `json:"address_components"`
	} `json:"results"`
}

// placeNamePriority orders the address component types we accept, most
// specific usable name first.
var placeNamePriority = []string{"locality", "administrative_area_level_2", "sublocality"}

// ReverseGeocode resolves coordinates to a place name, preferring locality,
// then administrative area level 2, then sublocality, then the first address
// component.
func (g *GoogleGeocoder) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	params := url.Values{}
	params.Set("latlng", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build geocode request: %w", err)
	}
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geocode API returned status %d", resp.StatusCode)
	}

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode geocode response: %w", err)
	}
	if decoded.Status != "OK" || len(decoded.Results) == 0 {
		return "", fmt.Errorf("geocode API returned status %q with %d results", decoded.Status, len(decoded.Results))
	}

	components := decoded.Results[0].AddressComponents
	for _, wanted := range placeNamePriority {
		for _, comp := range components {
			for _, t := range comp.Types {
				if t == wanted {
					return comp.LongName, nil
				}
			}
		}
	}
	if len(components) > 0 {
		return components[0].LongName, nil
	}
	return "", fmt.Errorf("geocode response has no address components")
}
