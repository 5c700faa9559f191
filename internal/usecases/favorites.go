package usecases

import (
	"context"

	"climax-api/internal/mappers"
	"climax-api/internal/presentation"
	"climax-api/internal/repositories"
)

// FavoritesUseCase groups the three favorite-city operations. Each maps the
// presentation City to its domain twin and delegates to the repository.
type FavoritesUseCase interface {
	SaveFavoriteCity(ctx context.Context, city presentation.City) error
	FetchFavoriteCities(ctx context.Context) ([]presentation.City, error)
	DeleteFavoriteCity(ctx context.Context, city presentation.City) error
}

type FavoritesUseCaseImpl struct {
	repository repositories.FavoritesRepository
}

func NewFavoritesUseCase(repository repositories.FavoritesRepository) *FavoritesUseCaseImpl {
	return &FavoritesUseCaseImpl{repository: repository}
}

func (u *FavoritesUseCaseImpl) SaveFavoriteCity(ctx context.Context, city presentation.City) error {
	return u.repository.SaveFavoriteCity(ctx, mappers.MapFavoriteCityToDomain(city))
}

func (u *FavoritesUseCaseImpl) FetchFavoriteCities(ctx context.Context) ([]presentation.City, error) {
	citiesModel, err := u.repository.FetchFavoriteCities(ctx)
	if err != nil {
		return nil, err
	}

	cities := make([]presentation.City, 0, len(citiesModel))
	for _, cityModel := range citiesModel {
		cities = append(cities, mappers.MapCityToPresentation(cityModel))
	}

	return cities, nil
}

func (u *FavoritesUseCaseImpl) DeleteFavoriteCity(ctx context.Context, city presentation.City) error {
	return u.repository.DeleteFavoriteCity(ctx, mappers.MapFavoriteCityToDomain(city))
}
