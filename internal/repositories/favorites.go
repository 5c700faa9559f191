package repositories

import (
	"context"

	"climax-api/internal/datasource"
	"climax-api/internal/domain"
)

// FavoritesRepository is a thin pass-through to the local store, re-wrapping
// storage failures into the operation-specific domain errors.
type FavoritesRepository interface {
	SaveFavoriteCity(ctx context.Context, city domain.CityModel) error
	FetchFavoriteCities(ctx context.Context) ([]domain.CityModel, error)
	DeleteFavoriteCity(ctx context.Context, city domain.CityModel) error
}

type FavoritesRepositoryImpl struct {
	dataSource datasource.FavoritesLocalDataSource
}

func NewFavoritesRepository(dataSource datasource.FavoritesLocalDataSource) *FavoritesRepositoryImpl {
	return &FavoritesRepositoryImpl{dataSource: dataSource}
}

func (r *FavoritesRepositoryImpl) SaveFavoriteCity(ctx context.Context, city domain.CityModel) error {
	if err := r.dataSource.SaveFavoriteCity(ctx, city); err != nil {
		return &domain.SavingError{Message: err.Error()}
	}

	return nil
}

func (r *FavoritesRepositoryImpl) FetchFavoriteCities(ctx context.Context) ([]domain.CityModel, error) {
	cities, err := r.dataSource.FetchFavoriteCities(ctx)
	if err != nil {
		return nil, &domain.FetchingError{Message: err.Error()}
	}

	return cities, nil
}

func (r *FavoritesRepositoryImpl) DeleteFavoriteCity(ctx context.Context, city domain.CityModel) error {
	if err := r.dataSource.DeleteFavoriteCity(ctx, city); err != nil {
		return &domain.DeletingError{Message: err.Error()}
	}

	return nil
}
