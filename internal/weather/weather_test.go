// Vestra - Wardrobe Management and Marketplace Backend
// Copyright 2026 Vestra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vestra-app/vestra

package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/vestra-app/vestra/internal/config"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		name string
		code int
		temp float64
		want string
	}{
		{"heavy rain", 65, 15, "Rainy"},
		{"drizzle", 51, 15, "Rainy"},
		{"thunderstorm", 95, 25, "Rainy"},
		{"overcast", 3, 15, "Cloudy"},
		{"fog", 45, 15, "Cloudy"},
		{"clear and cold", 0, 5, "Cold"},
		{"clear and hot", 0, 32, "Warm"},
		{"clear and mild", 1, 20, "Sunny"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Label(tt.code, tt.temp); got != tt.want {
				t.Errorf("Label(%d, %.1f) = %q, want %q", tt.code, tt.temp, got, tt.want)
			}
		})
	}
}

func TestHTTPProviderCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("latitude"); got != "52.5200" {
			t.Errorf("latitude = %q, want 52.5200", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"current":{"temperature_2m":6.5,"weather_code":0}}`))
	}))
	defer srv.Close()

	p := NewHTTPProvider(&config.WeatherConfig{URL: srv.URL, Timeout: time.Second})
	obs, err := p.Current(context.Background(), 52.52, 13.405)
	if err != nil {
		t.Fatalf("Current() error: %v", err)
	}
	if obs.Label != "Cold" {
		t.Errorf("Label = %q, want Cold", obs.Label)
	}
	if obs.TemperatureC != 6.5 {
		t.Errorf("TemperatureC = %f, want 6.5", obs.TemperatureC)
	}
}

func TestHTTPProviderUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewHTTPProvider(&config.WeatherConfig{URL: srv.URL, Timeout: time.Second})
	if _, err := p.Current(context.Background(), 0, 0); err == nil {
		t.Error("Expected error for upstream failure")
	}
}
