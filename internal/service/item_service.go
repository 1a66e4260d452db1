package service

import (
	"context"
	"fmt"
	"log/slog"

	"pokedex-api/internal/model"
	"pokedex-api/internal/pokeapi"
	"pokedex-api/internal/repository"
)

type ItemService struct {
	repo      repository.Repository[model.Item]
	client    *pokeapi.Client
	seedLimit int
}

func NewItemService(repo repository.Repository[model.Item], client *pokeapi.Client, seedLimit int) *ItemService {
	if seedLimit <= 0 {
		seedLimit = 1000
	}
	return &ItemService{repo: repo, client: client, seedLimit: seedLimit}
}

func (s *ItemService) List(ctx context.Context) ([]model.Item, error) {
	return s.repo.GetAll(ctx)
}

func (s *ItemService) Seed(ctx context.Context) (int, error) {
	page, err := s.client.ListItems(ctx, s.seedLimit)
	if err != nil {
		return 0, fmt.Errorf("list items from reference api: %w", err)
	}

	seeded := 0
	for _, ref := range page.Results {
		detail, err := s.client.GetItem(ctx, ref.URL)
		if err != nil {
			return seeded, fmt.Errorf("fetch item %q: %w", ref.Name, err)
		}

		_, err = s.repo.Add(ctx, model.Item{
			ItemID:    detail.ID,
			Name:      detail.Name,
			SpriteURL: detail.Sprites.Default,
		})
		if err != nil {
			return seeded, fmt.Errorf("store item %q: %w", ref.Name, err)
		}
		seeded++
	}

	slog.Info("item seed complete", "count", seeded)
	return seeded, nil
}
