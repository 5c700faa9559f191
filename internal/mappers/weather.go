package mappers

import (
	"climax-api/internal/domain"
	"climax-api/internal/models"
)

// MapForecastToDomain flattens the wire forecast into the domain shape. It
// renames fields and passes every value through unchanged: Celsius, kph and
// mm stay in their original units, and forecast day order is preserved.
func MapForecastToDomain(response models.ForecastResponse) domain.ForecastModel {
	forecast := make([]domain.ForecastDayModel, 0, len(response.Forecast.Forecastday))
	for _, forecastDate := range response.Forecast.Forecastday {
		forecast = append(forecast, domain.ForecastDayModel{
			Date: forecastDate.Date,
			Astro: domain.AstroModel{
				Sunrise:   forecastDate.Astro.Sunrise,
				Sunset:    forecastDate.Astro.Sunset,
				Moonrise:  forecastDate.Astro.Moonrise,
				Moonset:   forecastDate.Astro.Moonset,
				MoonPhase: forecastDate.Astro.MoonPhase,
			},
			MaxTemperature:     forecastDate.Day.MaxtempC,
			MinTemperature:     forecastDate.Day.MintempC,
			AverageTemperature: forecastDate.Day.AvgtempC,
			MaxWindSpeed:       forecastDate.Day.MaxwindKph,
			TotalRainfall:      forecastDate.Day.TotalprecipMm,
			ChanceOfRain:       forecastDate.Day.DailyChanceOfRain,
			AverageHumidity:    forecastDate.Day.Avghumidity,
			Condition:          forecastDate.Day.Condition.Text,
			ConditionIcon:      forecastDate.Day.Condition.Icon,
			UVIndex:            forecastDate.Day.UV,
		})
	}

	return domain.ForecastModel{
		Name:      response.Location.Name,
		Region:    response.Location.Region,
		Country:   response.Location.Country,
		Latitude:  response.Location.Lat,
		Longitude: response.Location.Lon,
		CurrentWeather: domain.CurrentWeatherModel{
			Temperature:   response.Current.TempC,
			Condition:     response.Current.Condition.Text,
			ConditionIcon: response.Current.Condition.Icon,
			WindSpeed:     response.Current.WindKph,
			WindDegree:    response.Current.WindDegree,
			WindDirection: response.Current.WindDir,
			GustSpeed:     response.Current.GustKph,
			Pressure:      response.Current.PressureIn,
			Humidity:      response.Current.Humidity,
			Cloudiness:    response.Current.Cloud,
			TempFeelsLike: response.Current.FeelslikeC,
			WindChill:     response.Current.WindchillC,
			HeatIndex:     response.Current.HeatindexC,
			DewPoint:      response.Current.DewpointC,
			UVIndex:       response.Current.UV,
		},
		Forecast: forecast,
	}
}

// MapCityToDomain is a 1:1 field copy from the search wire shape.
func MapCityToDomain(response models.CityResponse) domain.CityModel {
	return domain.CityModel{
		ID:        response.ID,
		Name:      response.Name,
		Region:    response.Region,
		Country:   response.Country,
		Latitude:  response.Lat,
		Longitude: response.Lon,
		URL:       response.URL,
	}
}
