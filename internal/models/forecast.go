package models

// ForecastResponse is the wire shape of the forecast.json endpoint.
type ForecastResponse struct {
	Location ForecastLocationResponse `json:"location"`
	Current  ForecastCurrentResponse  `json:"current"`
	Forecast ForecastDaysResponse     `json:"forecast"`
}

type ForecastLocationResponse struct {
	Name           string  `json:"name"`
	Region         string  `json:"region"`
	Country        string  `json:"country"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	TzID           string  `json:"tz_id"`
	LocaltimeEpoch int64   `json:"localtime_epoch"`
	Localtime      string  `json:"localtime"`
}

type ForecastCurrentResponse struct {
	TempC       float64                   `json:"temp_c"`
	Condition   ForecastConditionResponse `json:"condition"`
	WindKph     float64                   `json:"wind_kph"`
	WindDegree  int                       `json:"wind_degree"`
	WindDir     string                    `json:"wind_dir"`
	PressureIn  float64                   `json:"pressure_in"`
	PrecipMm    float64                   `json:"precip_mm"`
	Humidity    int                       `json:"humidity"`
	Cloud       int                       `json:"cloud"`
	FeelslikeC  float64                   `json:"feelslike_c"`
	WindchillC  float64                   `json:"windchill_c"`
	HeatindexC  float64                   `json:"heatindex_c"`
	DewpointC   float64                   `json:"dewpoint_c"`
	VisKm       float64                   `json:"vis_km"`
	UV          float64                   `json:"uv"`
	GustKph     float64                   `json:"gust_kph"`
}

type ForecastDaysResponse struct {
	Forecastday []ForecastDateResponse `json:"forecastday"`
}

type ForecastDateResponse struct {
	Date  string                  `json:"date"`
	Day   ForecastDayResponse     `json:"day"`
	Astro ForecastAstroResponse   `json:"astro"`
}

type ForecastDayResponse struct {
	MaxtempC          float64                   `json:"maxtemp_c"`
	MintempC          float64                   `json:"mintemp_c"`
	AvgtempC          float64                   `json:"avgtemp_c"`
	MaxwindKph        float64                   `json:"maxwind_kph"`
	TotalprecipMm     float64                   `json:"totalprecip_mm"`
	DailyChanceOfRain int                       `json:"daily_chance_of_rain"`
	Avghumidity       int                       `json:"avghumidity"`
	Condition         ForecastConditionResponse `json:"condition"`
	UV                float64                   `json:"uv"`
}

type ForecastAstroResponse struct {
	Sunrise   string `json:"sunrise"`
	Sunset    string `json:"sunset"`
	Moonrise  string `json:"moonrise"`
	Moonset   string `json:"moonset"`
	MoonPhase string `json:"moon_phase"`
}

type ForecastConditionResponse struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}
