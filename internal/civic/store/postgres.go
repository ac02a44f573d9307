// Package store provides the relational backends for civic reference data.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"civicapi/internal/civic/models"
	"civicapi/internal/civic/service"
)

// PostgresStore reads civic reference records from PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgres constructs a PostgreSQL-backed civic store.
func NewPostgres(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// GetState returns the newest state record whose name, slug or code
// matches key.
func (s *PostgresStore) GetState(ctx context.Context, key string) (models.State, error) {
	const query = `
		SELECT state_name, state_name_slug, state_code, state_code_slug,
		       nickname, website, admission_date, admission_number,
		       capital_city, capital_url, population, population_rank,
		       constitution_url, state_flag_url, state_seal_url,
		       map_image_url, landscape_background_url,
		       skyline_background_url, twitter_handle, twitter_url,
		       facebook_url
		FROM state
		WHERE state_name = $1 OR state_name_slug = $1 OR state_code = $1
		ORDER BY created_date DESC
		LIMIT 1
	`
	var st models.State
	err := s.pool.QueryRow(ctx, query, key).Scan(
		&st.StateName, &st.StateNameSlug, &st.StateCode, &st.StateCodeSlug,
		&st.Nickname, &st.Website, &st.AdmissionDate, &st.AdmissionNumber,
		&st.CapitalCity, &st.CapitalURL, &st.Population, &st.PopulationRank,
		&st.ConstitutionURL, &st.StateFlagURL, &st.StateSealURL,
		&st.MapImageURL, &st.LandscapeBackgroundURL,
		&st.SkylineBackgroundURL, &st.TwitterHandle, &st.TwitterURL,
		&st.FacebookURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.State{}, service.ErrStateNotFound
		}
		return models.State{}, fmt.Errorf("get state: %w", err)
	}
	return st, nil
}
