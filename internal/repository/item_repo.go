package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"pokedex-api/internal/model"
)

type ItemRepository struct {
	pool pool
}

func NewItemRepository(pool pool) *ItemRepository {
	return &ItemRepository{pool: pool}
}

var _ Repository[model.Item] = (*ItemRepository)(nil)

func (r *ItemRepository) GetAll(ctx context.Context) ([]model.Item, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, item_id, name, sprite_url FROM items ORDER BY item_id`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := make([]model.Item, 0)
	for rows.Next() {
		var it model.Item
		if err := rows.Scan(&it.ID, &it.ItemID, &it.Name, &it.SpriteURL); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *ItemRepository) GetByID(ctx context.Context, id string) (model.Item, error) {
	var it model.Item
	err := r.pool.QueryRow(ctx,
		`SELECT id, item_id, name, sprite_url FROM items WHERE id = $1`, id).
		Scan(&it.ID, &it.ItemID, &it.Name, &it.SpriteURL)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Item{}, model.ErrItemNotFound
	}
	if err != nil {
		return model.Item{}, fmt.Errorf("find item by id: %w", err)
	}
	return it, nil
}

func (r *ItemRepository) Add(ctx context.Context, it model.Item) (model.Item, error) {
	it.ID = uuid.NewString()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO items (id, item_id, name, sprite_url)
		 VALUES ($1, $2, $3, $4)`,
		it.ID, it.ItemID, it.Name, it.SpriteURL)
	if err != nil {
		return model.Item{}, fmt.Errorf("insert item: %w", err)
	}
	return it, nil
}

func (r *ItemRepository) Update(ctx context.Context, id string, it model.Item) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE items SET item_id = $2, name = $3, sprite_url = $4 WHERE id = $1`,
		id, it.ItemID, it.Name, it.SpriteURL)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrItemNotFound
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrItemNotFound
	}
	return nil
}
