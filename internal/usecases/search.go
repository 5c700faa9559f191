package usecases

import (
	"context"

	"climax-api/internal/mappers"
	"climax-api/internal/presentation"
	"climax-api/internal/repositories"
)

// SearchCityUseCase resolves a free-text query to matching cities.
type SearchCityUseCase interface {
	Execute(ctx context.Context, query string) ([]presentation.City, error)
}

type SearchCityUseCaseImpl struct {
	repository repositories.WeatherRepository
}

func NewSearchCityUseCase(repository repositories.WeatherRepository) *SearchCityUseCaseImpl {
	return &SearchCityUseCaseImpl{repository: repository}
}

func (u *SearchCityUseCaseImpl) Execute(ctx context.Context, query string) ([]presentation.City, error) {
	model, err := u.repository.SearchCity(ctx, query)
	if err != nil {
		return nil, err
	}

	cities := make([]presentation.City, 0, len(model))
	for _, cityModel := range model {
		cities = append(cities, mappers.MapCityToPresentation(cityModel))
	}

	return cities, nil
}
