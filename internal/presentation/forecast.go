package presentation

// Forecast is the display-ready forecast shape handed across the
// presentation boundary. It mirrors the domain model field for field; the
// separate type keeps the rendering vocabulary decoupled from the
// orchestration layer.
type Forecast struct {
	Name           string                 `json:"name" example:"Chicago"`
	Region         string                 `json:"region" example:"Illinois"`
	Country        string                 `json:"country" example:"United States of America"`
	Latitude       float64                `json:"latitude" example:"41.85"`
	Longitude      float64                `json:"longitude" example:"-87.65"`
	CurrentWeather ForecastCurrentWeather `json:"current_weather"`
	Forecast       []ForecastDay          `json:"forecast"`
}

type ForecastCurrentWeather struct {
	Temperature   float64 `json:"temperature" example:"2.8"`
	Condition     string  `json:"condition" example:"Partly cloudy"`
	ConditionIcon string  `json:"condition_icon" example:"//cdn.weatherapi.com/weather/64x64/day/116.png"`
	WindSpeed     float64 `json:"wind_speed" example:"20.2"`
	WindDegree    int     `json:"wind_degree" example:"230"`
	WindDirection string  `json:"wind_direction" example:"SW"`
	GustSpeed     float64 `json:"gust_speed" example:"28.2"`
	Pressure      float64 `json:"pressure" example:"30.12"`
	Humidity      int     `json:"humidity" example:"75"`
	Cloudiness    int     `json:"cloudiness" example:"50"`
	TempFeelsLike float64 `json:"temp_feels_like" example:"-2.1"`
	WindChill     float64 `json:"wind_chill" example:"-1.3"`
	HeatIndex     float64 `json:"heat_index" example:"3.1"`
	DewPoint      float64 `json:"dew_point" example:"-0.5"`
	UVIndex       float64 `json:"uv_index" example:"0.0"`
}

type ForecastDay struct {
	Date               string            `json:"date" example:"2025-02-02"`
	Astro              ForecastAstronomy `json:"astro"`
	MaxTemperature     float64           `json:"max_temperature" example:"4.3"`
	MinTemperature     float64           `json:"min_temperature" example:"-1.2"`
	AverageTemperature float64           `json:"average_temperature" example:"1.4"`
	MaxWindSpeed       float64           `json:"max_wind_speed" example:"25.2"`
	TotalRainfall      float64           `json:"total_rainfall" example:"0.3"`
	ChanceOfRain       int               `json:"chance_of_rain" example:"70"`
	AverageHumidity    int               `json:"average_humidity" example:"68"`
	Condition          string            `json:"condition" example:"Light rain"`
	ConditionIcon      string            `json:"condition_icon" example:"//cdn.weatherapi.com/weather/64x64/day/296.png"`
	UVIndex            float64           `json:"uv_index" example:"1.0"`
}

type ForecastAstronomy struct {
	Sunrise   string `json:"sunrise" example:"07:02 AM"`
	Sunset    string `json:"sunset" example:"05:08 PM"`
	Moonrise  string `json:"moonrise" example:"09:53 AM"`
	Moonset   string `json:"moonset" example:"09:44 PM"`
	MoonPhase string `json:"moon_phase" example:"Waxing Crescent"`
}
