package mappers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"climax-api/internal/mappers"
	"climax-api/internal/models"
)

func sampleForecastResponse() models.ForecastResponse {
	return models.ForecastResponse{
		Location: models.ForecastLocationResponse{
			Name:    "Chicago",
			Region:  "Illinois",
			Country: "United States of America",
			Lat:     41.85,
			Lon:     -87.65,
			TzID:    "America/Chicago",
		},
		Current: models.ForecastCurrentResponse{
			TempC:      2.8,
			Condition:  models.ForecastConditionResponse{Text: "Partly cloudy", Icon: "//icon/116.png"},
			WindKph:    20.2,
			WindDegree: 230,
			WindDir:    "SW",
			PressureIn: 30.12,
			Humidity:   75,
			Cloud:      50,
			FeelslikeC: -2.1,
			WindchillC: -1.3,
			HeatindexC: 3.1,
			DewpointC:  -0.5,
			UV:         0.0,
			GustKph:    28.2,
		},
		Forecast: models.ForecastDaysResponse{
			Forecastday: []models.ForecastDateResponse{
				{
					Date: "2025-02-02",
					Day: models.ForecastDayResponse{
						MaxtempC:          4.3,
						MintempC:          -1.2,
						AvgtempC:          1.4,
						MaxwindKph:        25.2,
						TotalprecipMm:     0.3,
						DailyChanceOfRain: 70,
						Avghumidity:       68,
						Condition:         models.ForecastConditionResponse{Text: "Light rain", Icon: "//icon/296.png"},
						UV:                1.0,
					},
					Astro: models.ForecastAstroResponse{
						Sunrise:   "07:02 AM",
						Sunset:    "05:08 PM",
						Moonrise:  "09:53 AM",
						Moonset:   "09:44 PM",
						MoonPhase: "Waxing Crescent",
					},
				},
				{
					Date: "2025-02-03",
					Day: models.ForecastDayResponse{
						MaxtempC: 6.1,
						MintempC: 0.4,
						AvgtempC: 3.2,
					},
				},
			},
		},
	}
}

func TestMapForecastToDomain(t *testing.T) {
	response := sampleForecastResponse()

	model := mappers.MapForecastToDomain(response)

	assert.Equal(t, "Chicago", model.Name)
	assert.Equal(t, "Illinois", model.Region)
	assert.Equal(t, "United States of America", model.Country)
	assert.Equal(t, 41.85, model.Latitude)
	assert.Equal(t, -87.65, model.Longitude)

	// Numeric values pass through exactly, no unit conversion.
	assert.Equal(t, 2.8, model.CurrentWeather.Temperature)
	assert.Equal(t, -2.1, model.CurrentWeather.TempFeelsLike)
	assert.Equal(t, 20.2, model.CurrentWeather.WindSpeed)
	assert.Equal(t, 230, model.CurrentWeather.WindDegree)
	assert.Equal(t, "SW", model.CurrentWeather.WindDirection)
	assert.Equal(t, 28.2, model.CurrentWeather.GustSpeed)
	assert.Equal(t, 30.12, model.CurrentWeather.Pressure)
	assert.Equal(t, 75, model.CurrentWeather.Humidity)
	assert.Equal(t, 50, model.CurrentWeather.Cloudiness)
	assert.Equal(t, -1.3, model.CurrentWeather.WindChill)
	assert.Equal(t, 3.1, model.CurrentWeather.HeatIndex)
	assert.Equal(t, -0.5, model.CurrentWeather.DewPoint)
	assert.Equal(t, 0.0, model.CurrentWeather.UVIndex)
	assert.Equal(t, "Partly cloudy", model.CurrentWeather.Condition)
	assert.Equal(t, "//icon/116.png", model.CurrentWeather.ConditionIcon)

	// Day order preserved.
	require.Len(t, model.Forecast, 2)
	assert.Equal(t, "2025-02-02", model.Forecast[0].Date)
	assert.Equal(t, "2025-02-03", model.Forecast[1].Date)

	day := model.Forecast[0]
	assert.Equal(t, 4.3, day.MaxTemperature)
	assert.Equal(t, -1.2, day.MinTemperature)
	assert.Equal(t, 1.4, day.AverageTemperature)
	assert.Equal(t, 25.2, day.MaxWindSpeed)
	assert.Equal(t, 0.3, day.TotalRainfall)
	assert.Equal(t, 70, day.ChanceOfRain)
	assert.Equal(t, 68, day.AverageHumidity)
	assert.Equal(t, "Light rain", day.Condition)
	assert.Equal(t, 1.0, day.UVIndex)
	assert.Equal(t, "07:02 AM", day.Astro.Sunrise)
	assert.Equal(t, "05:08 PM", day.Astro.Sunset)
	assert.Equal(t, "09:53 AM", day.Astro.Moonrise)
	assert.Equal(t, "09:44 PM", day.Astro.Moonset)
	assert.Equal(t, "Waxing Crescent", day.Astro.MoonPhase)
}

func TestMapForecastToDomain_EmptyForecastDays(t *testing.T) {
	response := sampleForecastResponse()
	response.Forecast.Forecastday = nil

	model := mappers.MapForecastToDomain(response)

	assert.Empty(t, model.Forecast)
	assert.Equal(t, "Chicago", model.Name)
}

func TestMapCityToDomain(t *testing.T) {
	response := models.CityResponse{
		ID:      2618724,
		Name:    "New York",
		Region:  "New York",
		Country: "United States of America",
		Lat:     40.71,
		Lon:     -74.01,
		URL:     "new-york-new-york-united-states-of-america",
	}

	model := mappers.MapCityToDomain(response)

	assert.Equal(t, 2618724, model.ID)
	assert.Equal(t, "New York", model.Name)
	assert.Equal(t, "New York", model.Region)
	assert.Equal(t, "United States of America", model.Country)
	assert.Equal(t, 40.71, model.Latitude)
	assert.Equal(t, -74.01, model.Longitude)
	assert.Equal(t, "new-york-new-york-united-states-of-america", model.URL)
}
