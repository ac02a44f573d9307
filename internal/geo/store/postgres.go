// Package store provides the relational zip code lookup backends.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"civicapi/internal/geo"
)

// PostgresStore reads zip code locations from PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgres constructs a PostgreSQL-backed zip code store.
func NewPostgres(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Lookup returns the location for a zip code. Records without a state or a
// district shape cannot narrow a search, so they resolve as not found.
func (s *PostgresStore) Lookup(ctx context.Context, zipcode string) (geo.Location, error) {
	const query = `
		SELECT state, latitude, longitude
		FROM zip_code
		WHERE zipcode = $1 AND state <> '' AND shape IS NOT NULL
	`
	var loc geo.Location
	err := s.pool.QueryRow(ctx, query, zipcode).Scan(&loc.StateCode, &loc.Latitude, &loc.Longitude)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return geo.Location{}, geo.ErrNotFound
		}
		return geo.Location{}, fmt.Errorf("lookup zipcode: %w", err)
	}
	return loc, nil
}
