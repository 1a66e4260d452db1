package service

import (
	"context"
	"fmt"
	"log/slog"

	"pokedex-api/internal/model"
	"pokedex-api/internal/pokeapi"
	"pokedex-api/internal/repository"
)

type PokemonService struct {
	repo      repository.Repository[model.Pokemon]
	client    *pokeapi.Client
	seedLimit int
}

func NewPokemonService(repo repository.Repository[model.Pokemon], client *pokeapi.Client, seedLimit int) *PokemonService {
	if seedLimit <= 0 {
		seedLimit = 1000
	}
	return &PokemonService{repo: repo, client: client, seedLimit: seedLimit}
}

func (s *PokemonService) List(ctx context.Context) ([]model.Pokemon, error) {
	return s.repo.GetAll(ctx)
}

func (s *PokemonService) Get(ctx context.Context, name string) (model.Pokemon, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return model.Pokemon{}, err
	}

	for _, p := range all {
		if p.Name == name {
			return p, nil
		}
	}
	return model.Pokemon{}, model.ErrPokemonNotFound
}

// Seed pulls the listing page from the reference data provider and
// inserts one record per entry. Entries are fetched one by one; the
// first failure aborts the run with whatever was already inserted kept.
func (s *PokemonService) Seed(ctx context.Context) (int, error) {
	page, err := s.client.ListPokemon(ctx, s.seedLimit)
	if err != nil {
		return 0, fmt.Errorf("list pokemon from reference api: %w", err)
	}

	seeded := 0
	for _, ref := range page.Results {
		detail, err := s.client.GetPokemon(ctx, ref.URL)
		if err != nil {
			return seeded, fmt.Errorf("fetch pokemon %q: %w", ref.Name, err)
		}

		_, err = s.repo.Add(ctx, model.Pokemon{
			PokeID:    detail.ID,
			Name:      detail.Name,
			SpriteURL: detail.Sprites.FrontDefault,
		})
		if err != nil {
			return seeded, fmt.Errorf("store pokemon %q: %w", ref.Name, err)
		}
		seeded++
	}

	slog.Info("pokemon seed complete", "count", seeded)
	return seeded, nil
}
