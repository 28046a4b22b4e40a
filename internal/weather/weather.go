// Vestra - Wardrobe Management and Marketplace Backend
// Copyright 2026 Vestra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vestra-app/vestra

// Package weather resolves a coarse weather label for the caller's location,
// used to pre-fill the weather preference on recommendation requests. A
// lookup failure is never fatal: callers fall back to an unset preference.
package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/vestra-app/vestra/internal/config"
)

// Observation is one resolved weather reading.
type Observation struct {
	// Label is one of the engine's weather vocabulary: Sunny, Rainy, Cold,
	// Warm, Cloudy.
	Label string `json:"label"`

	// TemperatureC is the current temperature in degrees Celsius.
	TemperatureC float64 `json:"temperature_c"`
}

// Provider resolves current weather for a coordinate pair.
type Provider interface {
	Current(ctx context.Context, lat, lon float64) (*Observation, error)
}

// HTTPProvider fetches current conditions from an Open-Meteo compatible
// endpoint.
type HTTPProvider struct {
	baseURL string
	client  *http.Client
}

// NewHTTPProvider builds a provider from configuration.
func NewHTTPProvider(cfg *config.WeatherConfig) *HTTPProvider {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPProvider{
		baseURL: cfg.URL,
		client:  &http.Client{Timeout: timeout},
	}
}

// currentResponse mirrors the subset of the Open-Meteo current-weather
// payload the provider consumes.
type currentResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		WeatherCode int     `json:"weather_code"`
	} `json:"current"`
}

// Current fetches and labels the current conditions at lat/lon.
func (p *HTTPProvider) Current(ctx context.Context, lat, lon float64) (*Observation, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', 4, 64))
	q.Set("current", "temperature_2m,weather_code")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building weather request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather lookup returned status %d", resp.StatusCode)
	}

	var body currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding weather response: %w", err)
	}

	return &Observation{
		Label:        Label(body.Current.WeatherCode, body.Current.Temperature),
		TemperatureC: body.Current.Temperature,
	}, nil
}

// Label maps a WMO weather code and temperature onto the engine's coarse
// weather vocabulary. Precipitation codes win over temperature; clear skies
// split into Sunny, Warm or Cold by temperature band.
func Label(wmoCode int, temperatureC float64) string {
	switch {
	case wmoCode >= 51: // drizzle, rain, snow, showers, thunderstorms
		return "Rainy"
	case wmoCode >= 2: // partly cloudy through fog
		return "Cloudy"
	}
	switch {
	case temperatureC < 10:
		return "Cold"
	case temperatureC > 28:
		return "Warm"
	default:
		return "Sunny"
	}
}
