// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package api

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/forkful/internal/auth"
	"github.com/tomtom215/forkful/internal/cache"
	"github.com/tomtom215/forkful/internal/config"
	"github.com/tomtom215/forkful/internal/database"
	"github.com/tomtom215/forkful/internal/database/query"
	"github.com/tomtom215/forkful/internal/models"
)

const testJWTSecret = "test-secret-that-is-long-enough-for-hs256"

// fakeStore is an in-memory Store. Errors set in errs are returned by the
// method of the same name.
type fakeStore struct {
	mu          sync.Mutex
	restaurants []models.Restaurant
	categories  []models.Category
	favorites   map[int64]int64 // restaurant ID -> favorite count
	viewers     map[int64]models.Viewer
	creds       map[string]database.Credentials
	comments    []models.Comment
	errs        map[string]error
}

func newFakeStore(n int) *fakeStore {
	s := &fakeStore{
		categories: []models.Category{{ID: 1, Name: "中式料理"}, {ID: 2, Name: "日本料理"}},
		favorites:  map[int64]int64{},
		viewers:    map[int64]models.Viewer{},
		creds:      map[string]database.Credentials{},
		errs:       map[string]error{},
	}
	for i := 1; i <= n; i++ {
		catID := int64(2 - i%2)
		s.restaurants = append(s.restaurants, models.Restaurant{
			ID:          int64(i),
			Name:        fmt.Sprintf("Restaurant %d", i),
			Description: fmt.Sprintf("%060d", i),
			CategoryID:  catID,
			CreatedAt:   time.Date(2024, 1, i, 0, 0, 0, 0, time.UTC),
		})
	}
	return s
}

func (s *fakeStore) err(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errs[name]
}

func (s *fakeStore) filtered(filter query.RestaurantFilter) []models.Restaurant {
	var out []models.Restaurant
	for _, r := range s.restaurants {
		if filter.CategoryID != nil && r.CategoryID != *filter.CategoryID {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (s *fakeStore) ListRestaurants(_ context.Context, filter query.RestaurantFilter) ([]models.Restaurant, error) {
	if err := s.err("ListRestaurants"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	all := s.filtered(filter)
	if filter.Offset >= len(all) {
		return []models.Restaurant{}, nil
	}
	end := min(filter.Offset+filter.Limit, len(all))
	return append([]models.Restaurant(nil), all[filter.Offset:end]...), nil
}

func (s *fakeStore) CountRestaurants(_ context.Context, filter query.RestaurantFilter) (int64, error) {
	if err := s.err("CountRestaurants"); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.filtered(filter))), nil
}

func (s *fakeStore) ListCategories(_ context.Context) ([]models.Category, error) {
	if err := s.err("ListCategories"); err != nil {
		return nil, err
	}
	return s.categories, nil
}

func (s *fakeStore) find(id int64) (int, error) {
	for i := range s.restaurants {
		if s.restaurants[i].ID == id {
			return i, nil
		}
	}
	return -1, database.ErrRestaurantNotFound
}

func (s *fakeStore) GetRestaurantDetail(_ context.Context, id int64) (models.RestaurantDetail, error) {
	if err := s.err("GetRestaurantDetail"); err != nil {
		return models.RestaurantDetail{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i, err := s.find(id)
	if err != nil {
		return models.RestaurantDetail{}, err
	}
	return models.RestaurantDetail{Restaurant: s.restaurants[i], Comments: []models.Comment{}}, nil
}

func (s *fakeStore) IncrementViewCount(_ context.Context, id int64) (int64, error) {
	if err := s.err("IncrementViewCount"); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i, err := s.find(id)
	if err != nil {
		return 0, err
	}
	s.restaurants[i].ViewCounts++
	return s.restaurants[i].ViewCounts, nil
}

func (s *fakeStore) GetDashboard(_ context.Context, id int64) (models.Dashboard, error) {
	if err := s.err("GetDashboard"); err != nil {
		return models.Dashboard{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i, err := s.find(id)
	if err != nil {
		return models.Dashboard{}, err
	}
	return models.Dashboard{Restaurant: s.restaurants[i], Comments: []models.Comment{}}, nil
}

func (s *fakeStore) LatestRestaurants(_ context.Context, limit int) ([]models.Restaurant, error) {
	if err := s.err("LatestRestaurants"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]models.Restaurant(nil), s.restaurants...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out[:min(limit, len(out))], nil
}

func (s *fakeStore) LatestComments(_ context.Context, limit int) ([]models.Comment, error) {
	if err := s.err("LatestComments"); err != nil {
		return nil, err
	}
	return append([]models.Comment{}, s.comments[:min(limit, len(s.comments))]...), nil
}

func (s *fakeStore) TopFavorited(_ context.Context, limit int) ([]models.RestaurantSummary, error) {
	if err := s.err("TopFavorited"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.RestaurantSummary
	for _, r := range s.restaurants {
		if c := s.favorites[r.ID]; c > 0 {
			out = append(out, models.RestaurantSummary{
				ID: r.ID, Name: r.Name, Description: models.TruncateDescription(r.Description), FavoritedCount: c,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].FavoritedCount > out[j].FavoritedCount })
	return out[:min(limit, len(out))], nil
}

func (s *fakeStore) RandomRestaurants(_ context.Context, limit int, exclude []int64) ([]models.RestaurantSummary, error) {
	if err := s.err("RandomRestaurants"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	skip := make(map[int64]bool, len(exclude))
	for _, id := range exclude {
		skip[id] = true
	}
	var out []models.RestaurantSummary
	for _, r := range s.restaurants {
		if skip[r.ID] || len(out) == limit {
			continue
		}
		out = append(out, models.RestaurantSummary{ID: r.ID, Name: r.Name, Description: models.TruncateDescription(r.Description)})
	}
	return out, nil
}

func (s *fakeStore) LoadViewer(_ context.Context, userID int64) (models.Viewer, error) {
	if err := s.err("LoadViewer"); err != nil {
		return models.Viewer{}, err
	}
	v, ok := s.viewers[userID]
	if !ok {
		return models.Viewer{}, database.ErrUserNotFound
	}
	return v, nil
}

func (s *fakeStore) GetCredentialsByEmail(_ context.Context, email string) (database.Credentials, error) {
	if err := s.err("GetCredentialsByEmail"); err != nil {
		return database.Credentials{}, err
	}
	c, ok := s.creds[email]
	if !ok {
		return database.Credentials{}, database.ErrUserNotFound
	}
	return c, nil
}

func (s *fakeStore) Ping(_ context.Context) error {
	return s.err("Ping")
}

func testConfig() *config.Config {
	return &config.Config{
		API:     config.APIConfig{DefaultPageSize: 9, MaxPageSize: 100},
		Ranking: config.RankingConfig{TopLimit: 10, MaxLimit: 50},
		Cache:   config.CacheConfig{CategoryTTL: time.Minute},
		Security: config.SecurityConfig{
			JWTSecret:         testJWTSecret,
			SessionTimeout:    time.Hour,
			RateLimitDisabled: true,
		},
	}
}

// testServer bundles a router over store with the JWT manager that signs its tokens.
type testServer struct {
	handler http.Handler
	jwt     *auth.JWTManager
}

func newTestServer(t *testing.T, store Store, loader cache.CategoryLoader) *testServer {
	t.Helper()
	cfg := testConfig()
	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		t.Fatalf("NewJWTManager: %v", err)
	}
	h := NewHandler(store, cache.NewCategoryCache(loader, cfg.Cache.CategoryTTL), cfg, jwtManager)
	router := NewRouter(h, auth.NewMiddleware(jwtManager),
		NewChiMiddleware(ChiMiddlewareConfigFromSecurity(&cfg.Security)))
	return &testServer{handler: router.SetupChi(), jwt: jwtManager}
}

func (ts *testServer) do(t *testing.T, method, target, token string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, req)
	return w
}

func (ts *testServer) token(t *testing.T, userID int64) string {
	t.Helper()
	tok, err := ts.jwt.GenerateToken(userID, "tester")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return tok
}

// envelope mirrors APIResponse with a typed payload.
type envelope[T any] struct {
	Success bool      `json:"success"`
	Data    T         `json:"data"`
	Error   *APIError `json:"error"`
	Meta    *APIMeta  `json:"meta"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return env
}

func assertStatusCode(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, w.Code, w.Body.String())
	}
}

func assertErrorCode(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	assertStatusCode(t, w, status)
	env := decode[json.RawMessage](t, w)
	if env.Success {
		t.Error("expected success=false")
	}
	if env.Error == nil || env.Error.Code != code {
		t.Errorf("expected error code %q, got %+v", code, env.Error)
	}
}
