package datasource

import (
	"context"

	"climax-api/internal/domain"
)

// FavoritesLocalDataSource manages the persisted favorite cities, keyed by
// the city's provider identifier.
type FavoritesLocalDataSource interface {
	// SaveFavoriteCity stores the city, replacing any record with the same
	// id. At most one record per city id is kept.
	SaveFavoriteCity(ctx context.Context, city domain.CityModel) error

	// FetchFavoriteCities returns every stored city in insertion order.
	FetchFavoriteCities(ctx context.Context) ([]domain.CityModel, error)

	// DeleteFavoriteCity removes every record with the city's id. Deleting
	// an id that was never stored is a no-op.
	DeleteFavoriteCity(ctx context.Context, city domain.CityModel) error
}
