package usecases_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"climax-api/internal/domain"
	"climax-api/internal/usecases"
)

// FilteringWeatherRepository mimics a provider that matches cities by
// case-insensitive substring, like the real search endpoint does.
type FilteringWeatherRepository struct {
	MockWeatherRepository
	available []domain.CityModel
}

func (f *FilteringWeatherRepository) SearchCity(ctx context.Context, query string) ([]domain.CityModel, error) {
	var matches []domain.CityModel
	for _, city := range f.available {
		if strings.Contains(strings.ToLower(city.Name), strings.ToLower(query)) {
			matches = append(matches, city)
		}
	}
	return matches, nil
}

func TestSearchCityUseCase_FiltersBySubstring(t *testing.T) {
	repo := &FilteringWeatherRepository{
		available: []domain.CityModel{
			{ID: 2618724, Name: "New York"},
			{ID: 2566581, Name: "Chicago"},
		},
	}

	useCase := usecases.NewSearchCityUseCase(repo)

	cities, err := useCase.Execute(context.Background(), "new")

	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, "New York", cities[0].Name)
}

func TestSearchCityUseCase_MapsToPresentation(t *testing.T) {
	repo := &MockWeatherRepository{
		cities: []domain.CityModel{
			{ID: 2618724, Name: "New York", Region: "New York", Country: "United States of America", Latitude: 40.71, Longitude: -74.01, URL: "new-york"},
		},
	}

	useCase := usecases.NewSearchCityUseCase(repo)

	cities, err := useCase.Execute(context.Background(), "new york")

	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, 2618724, cities[0].ID)
	assert.Equal(t, "New York", cities[0].Name)
	assert.Equal(t, 40.71, cities[0].Latitude)
	assert.Equal(t, "new-york", cities[0].URL)
}

func TestSearchCityUseCase_NoMatchesIsEmptyList(t *testing.T) {
	repo := &MockWeatherRepository{}

	useCase := usecases.NewSearchCityUseCase(repo)

	cities, err := useCase.Execute(context.Background(), "zzz")

	require.NoError(t, err)
	assert.Empty(t, cities)
}

func TestSearchCityUseCase_PropagatesDomainError(t *testing.T) {
	repo := &MockWeatherRepository{err: domain.ErrNoLocationFound}

	useCase := usecases.NewSearchCityUseCase(repo)

	_, err := useCase.Execute(context.Background(), "atlantis")

	assert.ErrorIs(t, err, domain.ErrNoLocationFound)
}
