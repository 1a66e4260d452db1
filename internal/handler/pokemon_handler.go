package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pokedex-api/internal/model"
	"pokedex-api/internal/service"
)

type PokemonHandler struct {
	service *service.PokemonService
}

func NewPokemonHandler(service *service.PokemonService) *PokemonHandler {
	return &PokemonHandler{service: service}
}

func (h *PokemonHandler) List(w http.ResponseWriter, r *http.Request) {
	pokemons, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, pokemons)
}

func (h *PokemonHandler) Get(w http.ResponseWriter, r *http.Request) {
	pokemon, err := h.service.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, pokemon)
}

func (h *PokemonHandler) Seed(w http.ResponseWriter, r *http.Request) {
	seeded, err := h.service.Seed(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, model.SeedResponse{Seeded: seeded})
}
