package handler

import (
	"net/http"

	"pokedex-api/internal/model"
	"pokedex-api/internal/service"
)

type ItemHandler struct {
	service *service.ItemService
}

func NewItemHandler(service *service.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, items)
}

func (h *ItemHandler) Seed(w http.ResponseWriter, r *http.Request) {
	seeded, err := h.service.Seed(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, model.SeedResponse{Seeded: seeded})
}
