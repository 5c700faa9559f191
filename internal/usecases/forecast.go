package usecases

import (
	"context"

	"climax-api/internal/mappers"
	"climax-api/internal/presentation"
	"climax-api/internal/repositories"
)

// GetForecastByCityUseCase fetches the forecast for a city and maps it to
// the presentation shape. Failures propagate unchanged from the repository.
type GetForecastByCityUseCase interface {
	Execute(ctx context.Context, city string) (presentation.Forecast, error)
}

type GetForecastByCityUseCaseImpl struct {
	repository repositories.WeatherRepository
}

func NewGetForecastByCityUseCase(repository repositories.WeatherRepository) *GetForecastByCityUseCaseImpl {
	return &GetForecastByCityUseCaseImpl{repository: repository}
}

func (u *GetForecastByCityUseCaseImpl) Execute(ctx context.Context, city string) (presentation.Forecast, error) {
	model, err := u.repository.GetForecastByCity(ctx, city)
	if err != nil {
		return presentation.Forecast{}, err
	}

	return mappers.MapForecastToPresentation(model), nil
}
