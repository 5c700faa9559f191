package mappers

import (
	"climax-api/internal/domain"
	"climax-api/internal/presentation"
)

// MapForecastToPresentation copies the domain forecast into the
// presentation shape. Pure structural translation, no additional logic.
func MapForecastToPresentation(model domain.ForecastModel) presentation.Forecast {
	forecast := make([]presentation.ForecastDay, 0, len(model.Forecast))
	for _, forecastDate := range model.Forecast {
		forecast = append(forecast, presentation.ForecastDay{
			Date: forecastDate.Date,
			Astro: presentation.ForecastAstronomy{
				Sunrise:   forecastDate.Astro.Sunrise,
				Sunset:    forecastDate.Astro.Sunset,
				Moonrise:  forecastDate.Astro.Moonrise,
				Moonset:   forecastDate.Astro.Moonset,
				MoonPhase: forecastDate.Astro.MoonPhase,
			},
			MaxTemperature:     forecastDate.MaxTemperature,
			MinTemperature:     forecastDate.MinTemperature,
			AverageTemperature: forecastDate.AverageTemperature,
			MaxWindSpeed:       forecastDate.MaxWindSpeed,
			TotalRainfall:      forecastDate.TotalRainfall,
			ChanceOfRain:       forecastDate.ChanceOfRain,
			AverageHumidity:    forecastDate.AverageHumidity,
			Condition:          forecastDate.Condition,
			ConditionIcon:      forecastDate.ConditionIcon,
			UVIndex:            forecastDate.UVIndex,
		})
	}

	return presentation.Forecast{
		Name:      model.Name,
		Region:    model.Region,
		Country:   model.Country,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		CurrentWeather: presentation.ForecastCurrentWeather{
			Temperature:   model.CurrentWeather.Temperature,
			Condition:     model.CurrentWeather.Condition,
			ConditionIcon: model.CurrentWeather.ConditionIcon,
			WindSpeed:     model.CurrentWeather.WindSpeed,
			WindDegree:    model.CurrentWeather.WindDegree,
			WindDirection: model.CurrentWeather.WindDirection,
			GustSpeed:     model.CurrentWeather.GustSpeed,
			Pressure:      model.CurrentWeather.Pressure,
			Humidity:      model.CurrentWeather.Humidity,
			Cloudiness:    model.CurrentWeather.Cloudiness,
			TempFeelsLike: model.CurrentWeather.TempFeelsLike,
			WindChill:     model.CurrentWeather.WindChill,
			HeatIndex:     model.CurrentWeather.HeatIndex,
			DewPoint:      model.CurrentWeather.DewPoint,
			UVIndex:       model.CurrentWeather.UVIndex,
		},
		Forecast: forecast,
	}
}

// MapCityToPresentation copies a domain city into the presentation shape.
func MapCityToPresentation(model domain.CityModel) presentation.City {
	return presentation.City{
		ID:        model.ID,
		Name:      model.Name,
		Region:    model.Region,
		Country:   model.Country,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		URL:       model.URL,
	}
}

// MapFavoriteCityToDomain is the reverse copy, used when a presentation
// City enters the favorites flow.
func MapFavoriteCityToDomain(city presentation.City) domain.CityModel {
	return domain.CityModel{
		ID:        city.ID,
		Name:      city.Name,
		Region:    city.Region,
		Country:   city.Country,
		Latitude:  city.Latitude,
		Longitude: city.Longitude,
		URL:       city.URL,
	}
}
