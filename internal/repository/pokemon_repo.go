package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"pokedex-api/internal/model"
)

type PokemonRepository struct {
	pool pool
}

func NewPokemonRepository(pool pool) *PokemonRepository {
	return &PokemonRepository{pool: pool}
}

var _ Repository[model.Pokemon] = (*PokemonRepository)(nil)

func (r *PokemonRepository) GetAll(ctx context.Context) ([]model.Pokemon, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, poke_id, name, sprite_url FROM pokemons ORDER BY poke_id`)
	if err != nil {
		return nil, fmt.Errorf("list pokemons: %w", err)
	}
	defer rows.Close()

	pokemons := make([]model.Pokemon, 0)
	for rows.Next() {
		var p model.Pokemon
		if err := rows.Scan(&p.ID, &p.PokeID, &p.Name, &p.SpriteURL); err != nil {
			return nil, fmt.Errorf("scan pokemon: %w", err)
		}
		pokemons = append(pokemons, p)
	}
	return pokemons, rows.Err()
}

func (r *PokemonRepository) GetByID(ctx context.Context, id string) (model.Pokemon, error) {
	var p model.Pokemon
	err := r.pool.QueryRow(ctx,
		`SELECT id, poke_id, name, sprite_url FROM pokemons WHERE id = $1`, id).
		Scan(&p.ID, &p.PokeID, &p.Name, &p.SpriteURL)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Pokemon{}, model.ErrPokemonNotFound
	}
	if err != nil {
		return model.Pokemon{}, fmt.Errorf("find pokemon by id: %w", err)
	}
	return p, nil
}

func (r *PokemonRepository) Add(ctx context.Context, p model.Pokemon) (model.Pokemon, error) {
	p.ID = uuid.NewString()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO pokemons (id, poke_id, name, sprite_url)
		 VALUES ($1, $2, $3, $4)`,
		p.ID, p.PokeID, p.Name, p.SpriteURL)
	if err != nil {
		return model.Pokemon{}, fmt.Errorf("insert pokemon: %w", err)
	}
	return p, nil
}

func (r *PokemonRepository) Update(ctx context.Context, id string, p model.Pokemon) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE pokemons SET poke_id = $2, name = $3, sprite_url = $4 WHERE id = $1`,
		id, p.PokeID, p.Name, p.SpriteURL)
	if err != nil {
		return fmt.Errorf("update pokemon: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPokemonNotFound
	}
	return nil
}

func (r *PokemonRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM pokemons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pokemon: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPokemonNotFound
	}
	return nil
}
