package router

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokedex-api/internal/auth"
	"pokedex-api/internal/config"
	"pokedex-api/internal/handler"
	"pokedex-api/internal/middleware"
	"pokedex-api/internal/model"
	"pokedex-api/internal/pokeapi"
	"pokedex-api/internal/service"
)

type memUserStore struct {
	users []model.User
}

func (s *memUserStore) FindByUsername(_ context.Context, username string) (model.User, bool, error) {
	for _, u := range s.users {
		if u.Username == username {
			return u, true, nil
		}
	}
	return model.User{}, false, nil
}

func (s *memUserStore) Insert(_ context.Context, u model.User) (model.User, error) {
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()
	s.users = append(s.users, u)
	return u, nil
}

type memPokemonRepo struct {
	pokemons []model.Pokemon
}

func (r *memPokemonRepo) GetAll(_ context.Context) ([]model.Pokemon, error) {
	return r.pokemons, nil
}

func (r *memPokemonRepo) GetByID(_ context.Context, id string) (model.Pokemon, error) {
	for _, p := range r.pokemons {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Pokemon{}, model.ErrPokemonNotFound
}

func (r *memPokemonRepo) Add(_ context.Context, p model.Pokemon) (model.Pokemon, error) {
	p.ID = uuid.NewString()
	r.pokemons = append(r.pokemons, p)
	return p, nil
}

func (r *memPokemonRepo) Update(_ context.Context, id string, p model.Pokemon) error {
	return nil
}

func (r *memPokemonRepo) Delete(_ context.Context, id string) error {
	return nil
}

type memItemRepo struct {
	items []model.Item
}

func (r *memItemRepo) GetAll(_ context.Context) ([]model.Item, error) { return r.items, nil }

func (r *memItemRepo) GetByID(_ context.Context, id string) (model.Item, error) {
	return model.Item{}, model.ErrItemNotFound
}

func (r *memItemRepo) Add(_ context.Context, it model.Item) (model.Item, error) {
	it.ID = uuid.NewString()
	r.items = append(r.items, it)
	return it, nil
}

func (r *memItemRepo) Update(_ context.Context, id string, it model.Item) error { return nil }

func (r *memItemRepo) Delete(_ context.Context, id string) error { return nil }

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	mux := http.NewServeMux()
	var refAPI *httptest.Server
	mux.HandleFunc("/pokemon", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"count":1,"results":[{"name":"bulbasaur","url":"%s/pokemon/1/"}]}`, refAPI.URL)
	})
	mux.HandleFunc("/pokemon/1/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":1,"name":"bulbasaur","sprites":{"front_default":"https://sprites.example/1.png"}}`)
	})
	mux.HandleFunc("/item", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"count":0,"results":[]}`)
	})
	refAPI = httptest.NewServer(mux)
	t.Cleanup(refAPI.Close)

	cfg := &config.Config{
		RequestTimeout:   30 * time.Second,
		RateLimitRPM:     1000,
		AuthRateLimitRPM: 1000,
	}

	issuer, err := auth.NewIssuer("test-secret", 2*time.Hour)
	require.NoError(t, err)

	authService := service.NewAuthService(&memUserStore{}, auth.NewHasher(), issuer)
	apiClient := pokeapi.New(refAPI.URL, 5*time.Second)
	pokemonService := service.NewPokemonService(&memPokemonRepo{}, apiClient, 10)
	itemService := service.NewItemService(&memItemRepo{}, apiClient, 10)

	return New(cfg, middleware.NewAuthMiddleware(issuer), Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Pokemon: handler.NewPokemonHandler(pokemonService),
		Item:    handler.NewItemHandler(itemService),
	})
}

func obtainToken(t *testing.T, server http.Handler) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register",
		strings.NewReader(`{"username":"ash","password":"pikachu123"}`))
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	token, _ := data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestHealth(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestSeedRequiresToken(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pokemons/seed", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSeedAndBrowse(t *testing.T) {
	server := newTestServer(t)
	token := obtainToken(t, server)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pokemons/seed", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"seeded":1`)

	// Listing and name lookup are public.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/pokemons", nil)
	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "bulbasaur")

	req = httptest.NewRequest(http.MethodGet, "/api/v1/pokemons/bulbasaur", nil)
	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/pokemons/missingno", nil)
	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExpiredTokenRejectedOnSeed(t *testing.T) {
	server := newTestServer(t)

	// Token signed with the right secret but already expired.
	expiredIssuer, err := auth.NewIssuer("test-secret", time.Nanosecond)
	require.NoError(t, err)
	token, err := expiredIssuer.Issue("ash")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/items/seed", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
