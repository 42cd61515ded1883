package recipe

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Store is a database-backed store for the recipe catalog. Recipes are kept
// as JSON blobs keyed by id; the planning core only ever reads them back as
// a catalog slice.
type Store struct {
	db *sql.DB
}

// NewStore creates a new Store on an open database connection.
func NewStore(d *sql.DB) *Store {
	return &Store{db: d}
}

// Save inserts or replaces a recipe in the catalog.
func (s *Store) Save(ctx context.Context, rec Recipe) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal recipe %s: %w", rec.ID, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO recipes (id, slug, data, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET slug = excluded.slug, data = excluded.data, updated_at = excluded.updated_at`,
		rec.ID, rec.Slug, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to insert recipe %s: %w", rec.ID, err)
	}
	return nil
}

// SaveAll stores every recipe in the slice, stopping at the first failure.
func (s *Store) SaveAll(ctx context.Context, recipes []Recipe) error {
	for _, rec := range recipes {
		if err := s.Save(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

// Get retrieves a recipe by its id. Returns (nil, nil) when not found.
func (s *Store) Get(ctx context.Context, id string) (*Recipe, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM recipes WHERE id = ?`, id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe by ID: %w", err)
	}

	var rec Recipe
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recipe JSON: %w", err)
	}
	return &rec, nil
}

// List retrieves the whole catalog ordered by slug.
func (s *Store) List(ctx context.Context) ([]Recipe, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, data FROM recipes ORDER BY slug`)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	var recipes []Recipe
	for rows.Next() {
		var id, data string
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("failed to scan recipe row: %w", err)
		}
		var rec Recipe
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal recipe JSON for ID %s: %w", id, err)
		}
		recipes = append(recipes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipe rows: %w", err)
	}
	return recipes, nil
}

// Count returns the number of recipes in the catalog.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM recipes`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	return count, nil
}
