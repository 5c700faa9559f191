package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"climax-api/internal/datasource"
	"climax-api/internal/domain"
)

// FavoritesDataSource implements datasource.FavoritesLocalDataSource on
// PostgreSQL.
type FavoritesDataSource struct {
	pool *pgxpool.Pool
}

func NewFavoritesDataSource(pool *pgxpool.Pool) *FavoritesDataSource {
	return &FavoritesDataSource{pool: pool}
}

// EnsureSchema creates the favorites table. The city id is the primary key:
// saving the same city twice keeps a single record.
func (d *FavoritesDataSource) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS favorite_cities (
			id         BIGINT PRIMARY KEY,
			name       TEXT NOT NULL,
			region     TEXT NOT NULL,
			country    TEXT NOT NULL,
			latitude   DOUBLE PRECISION NOT NULL,
			longitude  DOUBLE PRECISION NOT NULL,
			url        TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`

	if _, err := d.pool.Exec(ctx, query); err != nil {
		return &datasource.StorageError{Message: err.Error()}
	}

	return nil
}

func (d *FavoritesDataSource) SaveFavoriteCity(ctx context.Context, city domain.CityModel) error {
	query := `
		INSERT INTO favorite_cities (id, name, region, country, latitude, longitude, url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			region = EXCLUDED.region,
			country = EXCLUDED.country,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			url = EXCLUDED.url
	`

	_, err := d.pool.Exec(ctx, query,
		city.ID, city.Name, city.Region, city.Country, city.Latitude, city.Longitude, city.URL,
	)
	if err != nil {
		return &datasource.StorageError{Message: err.Error()}
	}

	return nil
}

func (d *FavoritesDataSource) FetchFavoriteCities(ctx context.Context) ([]domain.CityModel, error) {
	query := `
		SELECT id, name, region, country, latitude, longitude, url
		FROM favorite_cities
		ORDER BY created_at
	`

	rows, err := d.pool.Query(ctx, query)
	if err != nil {
		return nil, &datasource.StorageError{Message: err.Error()}
	}
	defer rows.Close()

	var cities []domain.CityModel
	for rows.Next() {
		var c domain.CityModel
		if err := rows.Scan(&c.ID, &c.Name, &c.Region, &c.Country, &c.Latitude, &c.Longitude, &c.URL); err != nil {
			return nil, &datasource.StorageError{Message: err.Error()}
		}
		cities = append(cities, c)
	}

	if err := rows.Err(); err != nil {
		return nil, &datasource.StorageError{Message: err.Error()}
	}

	return cities, nil
}

func (d *FavoritesDataSource) DeleteFavoriteCity(ctx context.Context, city domain.CityModel) error {
	if _, err := d.pool.Exec(ctx, `DELETE FROM favorite_cities WHERE id = $1`, city.ID); err != nil {
		return &datasource.StorageError{Message: err.Error()}
	}

	return nil
}
