package repositories

import (
	"context"
	"errors"

	"climax-api/internal/datasource"
	"climax-api/internal/domain"
	"climax-api/internal/mappers"
)

// Weather API error codes, as documented by the provider.
const (
	apiCodeParameterNotProvided = 1003
	apiCodeNoLocationFound      = 1006
	apiCodeInvalidAPIKey        = 2006
	apiCodeDisabledAPIKey       = 2007
)

// WeatherRepository returns domain models and speaks only the domain error
// vocabulary. This is the single place where API error codes are translated.
type WeatherRepository interface {
	GetForecastByCity(ctx context.Context, city string) (domain.ForecastModel, error)
	SearchCity(ctx context.Context, query string) ([]domain.CityModel, error)
}

type WeatherRepositoryImpl struct {
	dataSource datasource.WeatherRemoteDataSource
}

func NewWeatherRepository(dataSource datasource.WeatherRemoteDataSource) *WeatherRepositoryImpl {
	return &WeatherRepositoryImpl{dataSource: dataSource}
}

func (r *WeatherRepositoryImpl) GetForecastByCity(ctx context.Context, city string) (domain.ForecastModel, error) {
	response, err := r.dataSource.GetForecastByCity(ctx, city)
	if err != nil {
		return domain.ForecastModel{}, translateDataError(err)
	}

	return mappers.MapForecastToDomain(response), nil
}

func (r *WeatherRepositoryImpl) SearchCity(ctx context.Context, query string) ([]domain.CityModel, error) {
	response, err := r.dataSource.SearchCity(ctx, query)
	if err != nil {
		return nil, translateDataError(err)
	}

	cities := make([]domain.CityModel, 0, len(response))
	for _, cityResponse := range response {
		cities = append(cities, mappers.MapCityToDomain(cityResponse))
	}

	return cities, nil
}

func translateDataError(err error) error {
	var apiErr *datasource.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case apiCodeParameterNotProvided:
			return domain.ErrParameterNotProvided
		case apiCodeNoLocationFound:
			return domain.ErrNoLocationFound
		case apiCodeInvalidAPIKey:
			return domain.ErrInvalidAPIKey
		case apiCodeDisabledAPIKey:
			return domain.ErrDisabledAPIKey
		default:
			return &domain.ServerError{Message: apiErr.Message}
		}
	}

	return &domain.UnexpectedError{Message: err.Error()}
}
