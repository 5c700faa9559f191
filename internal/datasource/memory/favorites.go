package memory

import (
	"context"
	"sync"

	"climax-api/internal/domain"
)

// FavoritesDataSource is an in-memory favorites store, used when no
// database is configured and in tests. It keeps insertion order and applies
// the same single-record-per-id rule as the Postgres store.
type FavoritesDataSource struct {
	mu     sync.Mutex
	cities []domain.CityModel
}

func NewFavoritesDataSource() *FavoritesDataSource {
	return &FavoritesDataSource{}
}

func (d *FavoritesDataSource) SaveFavoriteCity(_ context.Context, city domain.CityModel) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, existing := range d.cities {
		if existing.ID == city.ID {
			d.cities[i] = city
			return nil
		}
	}

	d.cities = append(d.cities, city)

	return nil
}

func (d *FavoritesDataSource) FetchFavoriteCities(_ context.Context) ([]domain.CityModel, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	cities := make([]domain.CityModel, len(d.cities))
	copy(cities, d.cities)

	return cities, nil
}

func (d *FavoritesDataSource) DeleteFavoriteCity(_ context.Context, city domain.CityModel) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	kept := d.cities[:0]
	for _, existing := range d.cities {
		if existing.ID != city.ID {
			kept = append(kept, existing)
		}
	}
	d.cities = kept

	return nil
}
