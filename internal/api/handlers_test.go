// Vestra - Wardrobe Management and Marketplace Backend
// Copyright 2026 Vestra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vestra-app/vestra

package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/crypto/bcrypt"

	"github.com/vestra-app/vestra/internal/auth"
	"github.com/vestra-app/vestra/internal/config"
	"github.com/vestra-app/vestra/internal/recommend"
	"github.com/vestra-app/vestra/internal/store"
	"github.com/vestra-app/vestra/internal/weather"
)

const (
	testSecret   = "test-secret-at-least-32-characters-long"
	testPassword = "correct-horse-battery"
)

type testServer struct {
	handler http.Handler
	store   *store.Store
	token   string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithWeather(t, nil)
}

func newTestServerWithWeather(t *testing.T, wp weather.Provider) *testServer {
	t.Helper()

	s, err := store.Open(store.Options{InMemory: true})
	if err != nil {
		t.Fatalf("store.Open() error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}

	secCfg := &config.SecurityConfig{
		JWTSecret:         testSecret,
		SessionTimeout:    time.Hour,
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
		RateLimitDisabled: true,
		CORSOrigins:       []string{"*"},
	}

	jwtManager, err := auth.NewJWTManager(secCfg)
	if err != nil {
		t.Fatalf("auth.NewJWTManager() error: %v", err)
	}
	authn := auth.NewAuthenticator(secCfg, jwtManager)
	engine := recommend.New(recommend.DefaultConfig(), s)

	handler := NewHandler(s, engine, authn, wp, "test")
	router := NewRouter(handler, secCfg, jwtManager).Setup()

	token, err := jwtManager.GenerateToken("admin", "admin")
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	return &testServer{handler: router, store: s, token: token}
}

// do runs one request through the router, optionally authenticated, and
// decodes the response envelope.
func (ts *testServer) do(t *testing.T, method, path string, body interface{}, authed bool) (*httptest.ResponseRecorder, *APIResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+ts.token)
	}

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	var envelope APIResponse
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("unmarshal response envelope: %v (body: %s)", err, rec.Body.String())
		}
	}
	return rec, &envelope
}

// decodeData re-marshals the envelope's Data into a typed value.
func decodeData(t *testing.T, envelope *APIResponse, v interface{}) {
	t.Helper()
	data, err := json.Marshal(envelope.Data)
	if err != nil {
		t.Fatalf("marshal envelope data: %v", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("unmarshal envelope data: %v", err)
	}
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	rec, envelope := ts.do(t, http.MethodGet, "/api/v1/health", nil, false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !envelope.Success {
		t.Error("expected success envelope")
	}
}

func TestLogin(t *testing.T) {
	ts := newTestServer(t)

	t.Run("valid credentials", func(t *testing.T) {
		rec, envelope := ts.do(t, http.MethodPost, "/api/v1/auth/login",
			LoginRequest{Username: "admin", Password: testPassword}, false)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
		}
		var resp LoginResponse
		decodeData(t, envelope, &resp)
		if resp.Token == "" {
			t.Error("expected a token in the response")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		rec, envelope := ts.do(t, http.MethodPost, "/api/v1/auth/login",
			LoginRequest{Username: "admin", Password: "nope"}, false)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
		if envelope.Error == nil || envelope.Error.Code != ErrCodeUnauthorized {
			t.Errorf("error = %+v, want %s", envelope.Error, ErrCodeUnauthorized)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		rec, envelope := ts.do(t, http.MethodPost, "/api/v1/auth/login",
			LoginRequest{Username: "admin"}, false)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
		if envelope.Error == nil || envelope.Error.Code != ErrCodeValidationFailed {
			t.Errorf("error = %+v, want %s", envelope.Error, ErrCodeValidationFailed)
		}
	})
}

func TestAuthenticationRequired(t *testing.T) {
	ts := newTestServer(t)
	for _, path := range []string{
		"/api/v1/wardrobe",
		"/api/v1/listings",
		"/api/v1/outfits",
		"/api/v1/recommendations/outfit",
		"/api/v1/recommendations/categories",
	} {
		rec, _ := ts.do(t, http.MethodGet, path, nil, false)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without token: status = %d, want 401", path, rec.Code)
		}
	}
}

func TestWardrobeEndpoints(t *testing.T) {
	ts := newTestServer(t)

	rec, envelope := ts.do(t, http.MethodPost, "/api/v1/wardrobe", WardrobeItemRequest{
		Name:      "Blue Oxford Shirt",
		Category:  "Shirt",
		Weather:   "Cold",
		Style:     "Formal",
		Occasions: []string{"Work"},
	}, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201 (body: %s)", rec.Code, rec.Body.String())
	}
	var created store.WardrobeItem
	decodeData(t, envelope, &created)
	if created.ID == "" {
		t.Fatal("created item has no ID")
	}

	rec, envelope = ts.do(t, http.MethodGet, "/api/v1/wardrobe", nil, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", rec.Code)
	}
	var items []store.WardrobeItem
	decodeData(t, envelope, &items)
	if len(items) != 1 {
		t.Errorf("list returned %d items, want 1", len(items))
	}
	if envelope.Meta == nil || envelope.Meta.Count != 1 {
		t.Errorf("meta = %+v, want count 1", envelope.Meta)
	}

	rec, _ = ts.do(t, http.MethodPut, "/api/v1/wardrobe/"+created.ID, WardrobeItemRequest{
		Name:     "White Oxford Shirt",
		Category: "Shirt",
	}, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, want 200", rec.Code)
	}

	rec, _ = ts.do(t, http.MethodDelete, "/api/v1/wardrobe/"+created.ID, nil, true)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", rec.Code)
	}

	rec, envelope = ts.do(t, http.MethodGet, "/api/v1/wardrobe/"+created.ID, nil, true)
	if rec.Code != http.StatusNotFound {
		t.Errorf("get deleted status = %d, want 404", rec.Code)
	}
	if envelope.Error == nil || envelope.Error.Code != ErrCodeNotFound {
		t.Errorf("error = %+v, want %s", envelope.Error, ErrCodeNotFound)
	}
}

func TestWardrobeValidation(t *testing.T) {
	ts := newTestServer(t)

	rec, envelope := ts.do(t, http.MethodPost, "/api/v1/wardrobe",
		WardrobeItemRequest{Name: "No category"}, true)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if envelope.Error == nil || envelope.Error.Code != ErrCodeValidationFailed {
		t.Errorf("error = %+v, want %s", envelope.Error, ErrCodeValidationFailed)
	}
}

func TestListingEndpoints(t *testing.T) {
	ts := newTestServer(t)

	rec, envelope := ts.do(t, http.MethodPost, "/api/v1/listings", ListingRequest{
		Title:    "Vintage Denim Jacket",
		Category: "Jacket",
		Price:    4500,
		Currency: "EUR",
	}, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201 (body: %s)", rec.Code, rec.Body.String())
	}
	var created store.Listing
	decodeData(t, envelope, &created)
	if created.Status != store.ListingStatusActive {
		t.Errorf("status = %q, want %q", created.Status, store.ListingStatusActive)
	}

	rec, envelope = ts.do(t, http.MethodGet, "/api/v1/listings?status=active", nil, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", rec.Code)
	}
	var listings []store.Listing
	decodeData(t, envelope, &listings)
	if len(listings) != 1 {
		t.Errorf("list returned %d listings, want 1", len(listings))
	}

	rec, _ = ts.do(t, http.MethodGet, "/api/v1/listings?status=bogus", nil, true)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bogus status filter: status = %d, want 400", rec.Code)
	}

	rec, _ = ts.do(t, http.MethodPost, "/api/v1/listings", ListingRequest{
		Title:    "Free jacket",
		Category: "Jacket",
		Price:    0,
		Currency: "EUR",
	}, true)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("zero price: status = %d, want 400", rec.Code)
	}
}

func TestOutfitEndpoints(t *testing.T) {
	ts := newTestServer(t)

	_, envelope := ts.do(t, http.MethodPost, "/api/v1/wardrobe",
		WardrobeItemRequest{Name: "Shirt", Category: "Shirt"}, true)
	var shirt store.WardrobeItem
	decodeData(t, envelope, &shirt)
	_, envelope = ts.do(t, http.MethodPost, "/api/v1/wardrobe",
		WardrobeItemRequest{Name: "Jeans", Category: "Jeans"}, true)
	var jeans store.WardrobeItem
	decodeData(t, envelope, &jeans)

	rec, envelope := ts.do(t, http.MethodPost, "/api/v1/outfits", SaveOutfitRequest{
		Name:    "Weekend look",
		ItemIDs: []string{shirt.ID, jeans.ID},
	}, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("save status = %d, want 201 (body: %s)", rec.Code, rec.Body.String())
	}
	var saved store.OutfitRecord
	decodeData(t, envelope, &saved)

	rec, _ = ts.do(t, http.MethodPost, "/api/v1/outfits", SaveOutfitRequest{
		ItemIDs: []string{shirt.ID, "no-such-item"},
	}, true)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("save with unknown item: status = %d, want 400", rec.Code)
	}

	rec, envelope = ts.do(t, http.MethodGet, "/api/v1/outfits", nil, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", rec.Code)
	}
	var outfits []store.OutfitRecord
	decodeData(t, envelope, &outfits)
	if len(outfits) != 1 {
		t.Errorf("list returned %d outfits, want 1", len(outfits))
	}

	rec, _ = ts.do(t, http.MethodDelete, "/api/v1/outfits/"+saved.ID, nil, true)
	if rec.Code != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", rec.Code)
	}
}

func TestRecommendationEndpoint(t *testing.T) {
	ts := newTestServer(t)

	for _, req := range []WardrobeItemRequest{
		{Name: "T-shirt", Category: "T-shirt", Weather: "Sunny", Style: "Casual", Occasions: []string{"Casual"}},
		{Name: "Jeans", Category: "Jeans", Weather: "Sunny"},
		{Name: "Sneakers", Category: "Sneakers"},
		{Name: "Tote", Category: "Bags"},
	} {
		rec, _ := ts.do(t, http.MethodPost, "/api/v1/wardrobe", req, true)
		if rec.Code != http.StatusCreated {
			t.Fatalf("seed item %q: status = %d", req.Name, rec.Code)
		}
	}

	rec, envelope := ts.do(t, http.MethodGet,
		"/api/v1/recommendations/outfit?weather=Sunny&style=Casual&occasion=Casual&limit=5", nil, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var resp recommend.Response
	decodeData(t, envelope, &resp)
	if resp.TotalItems != 4 {
		t.Errorf("TotalItems = %d, want 4", resp.TotalItems)
	}
	if len(resp.Recommendations) != 1 {
		t.Fatalf("got %d candidates, want 1", len(resp.Recommendations))
	}
	c := resp.Recommendations[0]
	if len(c.Members) != 4 {
		t.Errorf("candidate has %d members, want 4", len(c.Members))
	}
	if c.Confidence != 35 {
		t.Errorf("Confidence = %d, want 35", c.Confidence)
	}

	rec, _ = ts.do(t, http.MethodGet, "/api/v1/recommendations/outfit?limit=abc", nil, true)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad limit: status = %d, want 400", rec.Code)
	}
}

func TestRecommendationEmptyWardrobe(t *testing.T) {
	ts := newTestServer(t)

	rec, envelope := ts.do(t, http.MethodGet, "/api/v1/recommendations/outfit", nil, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp recommend.Response
	decodeData(t, envelope, &resp)
	if len(resp.Recommendations) != 0 {
		t.Errorf("got %d candidates, want 0", len(resp.Recommendations))
	}
	if resp.Message == "" {
		t.Error("expected explanatory message for empty wardrobe")
	}
}

func TestCategoriesEndpoint(t *testing.T) {
	ts := newTestServer(t)

	rec, envelope := ts.do(t, http.MethodGet, "/api/v1/recommendations/categories", nil, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var cats recommend.Categories
	decodeData(t, envelope, &cats)
	if len(cats.Occasions) != 5 || len(cats.Weathers) != 5 || len(cats.Styles) != 5 {
		t.Errorf("fallback category sizes = %d/%d/%d, want 5/5/5",
			len(cats.Occasions), len(cats.Weathers), len(cats.Styles))
	}
}

func TestWeatherEndpointDisabled(t *testing.T) {
	ts := newTestServer(t)

	rec, _ := ts.do(t, http.MethodGet, "/api/v1/weather?lat=52.52&lon=13.405", nil, true)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 when weather lookup is disabled", rec.Code)
	}
}

// fakeWeather serves a fixed observation.
type fakeWeather struct {
	obs *weather.Observation
	err error
}

func (f *fakeWeather) Current(_ context.Context, _, _ float64) (*weather.Observation, error) {
	return f.obs, f.err
}

func TestWeatherEndpoint(t *testing.T) {
	ts := newTestServerWithWeather(t, &fakeWeather{
		obs: &weather.Observation{Label: "Rainy", TemperatureC: 7.5},
	})

	rec, envelope := ts.do(t, http.MethodGet, "/api/v1/weather?lat=52.52&lon=13.405", nil, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	var obs weather.Observation
	decodeData(t, envelope, &obs)
	if obs.Label != "Rainy" {
		t.Errorf("Label = %q, want Rainy", obs.Label)
	}

	rec, _ = ts.do(t, http.MethodGet, "/api/v1/weather?lat=999&lon=13.405", nil, true)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad coordinates: status = %d, want 400", rec.Code)
	}
}

func TestRecommendationWeatherEnrichment(t *testing.T) {
	ts := newTestServerWithWeather(t, &fakeWeather{
		obs: &weather.Observation{Label: "Sunny", TemperatureC: 21},
	})

	for _, req := range []WardrobeItemRequest{
		{Name: "T-shirt", Category: "T-shirt", Weather: "Sunny"},
		{Name: "Jeans", Category: "Jeans", Weather: "Sunny"},
		{Name: "Sneakers", Category: "Sneakers"},
		{Name: "Tote", Category: "Bags"},
	} {
		rec, _ := ts.do(t, http.MethodPost, "/api/v1/wardrobe", req, true)
		if rec.Code != http.StatusCreated {
			t.Fatalf("seed item %q: status = %d", req.Name, rec.Code)
		}
	}

	// No weather param: the provider's label fills the preference, so the
	// two Sunny items earn the exact-weather boost.
	rec, envelope := ts.do(t, http.MethodGet,
		"/api/v1/recommendations/outfit?lat=52.52&lon=13.405", nil, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	var resp recommend.Response
	decodeData(t, envelope, &resp)
	if len(resp.Recommendations) != 1 {
		t.Fatalf("got %d candidates, want 1", len(resp.Recommendations))
	}
	// (35+35+10+10)/4 = 22.5 with the enriched Sunny preference.
	if got := resp.Recommendations[0].TotalScore; got != 22.5 {
		t.Errorf("TotalScore = %v, want 22.5", got)
	}
}

func TestRecommendationEnrichmentFailureIsNonFatal(t *testing.T) {
	ts := newTestServerWithWeather(t, &fakeWeather{err: errLookupDown})

	req := WardrobeItemRequest{Name: "T-shirt", Category: "T-shirt", Weather: "Sunny"}
	if rec, _ := ts.do(t, http.MethodPost, "/api/v1/wardrobe", req, true); rec.Code != http.StatusCreated {
		t.Fatalf("seed item: status = %d", rec.Code)
	}

	rec, _ := ts.do(t, http.MethodGet,
		"/api/v1/recommendations/outfit?lat=52.52&lon=13.405", nil, true)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 despite lookup failure", rec.Code)
	}
}

var errLookupDown = errors.New("lookup down")
