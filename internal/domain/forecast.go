package domain

// ForecastModel is the domain view of a forecast: location metadata, the
// current conditions and the ordered upcoming days.
type ForecastModel struct {
	Name           string
	Region         string
	Country        string
	Latitude       float64
	Longitude      float64
	CurrentWeather CurrentWeatherModel
	Forecast       []ForecastDayModel
}

type CurrentWeatherModel struct {
	Temperature   float64
	Condition     string
	ConditionIcon string
	WindSpeed     float64
	WindDegree    int
	WindDirection string
	GustSpeed     float64
	Pressure      float64
	Humidity      int
	Cloudiness    int
	TempFeelsLike float64
	WindChill     float64
	HeatIndex     float64
	DewPoint      float64
	UVIndex       float64
}

type ForecastDayModel struct {
	Date               string
	Astro              AstroModel
	MaxTemperature     float64
	MinTemperature     float64
	AverageTemperature float64
	MaxWindSpeed       float64
	TotalRainfall      float64
	ChanceOfRain       int
	AverageHumidity    int
	Condition          string
	ConditionIcon      string
	UVIndex            float64
}

// AstroModel carries sun and moon times as opaque display strings, exactly
// as the API reports them.
type AstroModel struct {
	Sunrise   string
	Sunset    string
	Moonrise  string
	Moonset   string
	MoonPhase string
}
