package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokedex-api/internal/model"
)

func TestPokemonGetAll(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPokemonRepository(mock)

	mock.ExpectQuery(`SELECT id, poke_id, name, sprite_url FROM pokemons`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "poke_id", "name", "sprite_url"}).
			AddRow("p-1", 1, "bulbasaur", "https://sprites.example/1.png").
			AddRow("p-2", 2, "ivysaur", "https://sprites.example/2.png"))

	pokemons, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, pokemons, 2)
	assert.Equal(t, "bulbasaur", pokemons[0].Name)
	assert.Equal(t, 2, pokemons[1].PokeID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPokemonGetAllEmpty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPokemonRepository(mock)

	mock.ExpectQuery(`SELECT id, poke_id, name, sprite_url FROM pokemons`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "poke_id", "name", "sprite_url"}))

	pokemons, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pokemons)
	assert.NotNil(t, pokemons)
}

func TestPokemonGetByIDNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPokemonRepository(mock)

	mock.ExpectQuery(`SELECT id, poke_id, name, sprite_url FROM pokemons WHERE`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrPokemonNotFound)
}

func TestPokemonAdd(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPokemonRepository(mock)

	mock.ExpectExec(`INSERT INTO pokemons`).
		WithArgs(pgxmock.AnyArg(), 25, "pikachu", "https://sprites.example/25.png").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	stored, err := repo.Add(context.Background(), model.Pokemon{
		PokeID:    25,
		Name:      "pikachu",
		SpriteURL: "https://sprites.example/25.png",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPokemonDeleteNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPokemonRepository(mock)

	mock.ExpectExec(`DELETE FROM pokemons`).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err = repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrPokemonNotFound)
}
