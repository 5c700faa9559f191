package datasource

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"climax-api/internal/models"
	"climax-api/pkg/httpclient"
	"climax-api/pkg/observe"
)

const defaultForecastDays = 4

// WeatherRemoteDataSource fetches weather data from the remote API and
// decodes it into the wire models.
type WeatherRemoteDataSource interface {
	GetForecastByCity(ctx context.Context, city string) (models.ForecastResponse, error)
	SearchCity(ctx context.Context, query string) ([]models.CityResponse, error)
}

type WeatherRemoteDataSourceImpl struct {
	baseURL      string
	apiKey       string
	forecastDays int
	client       httpclient.Client
	l            *observe.Logger
}

func NewWeatherRemoteDataSource(baseURL, apiKey string, forecastDays int, client httpclient.Client, l *observe.Logger) *WeatherRemoteDataSourceImpl {
	if forecastDays <= 0 {
		forecastDays = defaultForecastDays
	}

	return &WeatherRemoteDataSourceImpl{
		baseURL:      baseURL,
		apiKey:       apiKey,
		forecastDays: forecastDays,
		client:       client,
		l:            l,
	}
}

// GetForecastByCity requests the forecast endpoint for the given city. The
// forecast covers today plus the configured number of upcoming days.
func (d *WeatherRemoteDataSourceImpl) GetForecastByCity(ctx context.Context, city string) (models.ForecastResponse, error) {
	var response models.ForecastResponse

	d.l.Debug("fetching forecast", map[string]any{"city": city, "days": d.forecastDays})

	body, err := d.client.Get(ctx, d.baseURL+"/forecast.json", map[string]string{
		"key":  d.apiKey,
		"q":    city,
		"days": strconv.Itoa(d.forecastDays),
	})
	if err != nil {
		return response, translateTransportError(err)
	}

	if apiErr := decodeAPIError(body); apiErr != nil {
		return response, apiErr
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return response, &DecodingError{Message: err.Error()}
	}

	return response, nil
}

// SearchCity requests the search endpoint and decodes the result array.
func (d *WeatherRemoteDataSourceImpl) SearchCity(ctx context.Context, query string) ([]models.CityResponse, error) {
	d.l.Debug("searching city", map[string]any{"query": query})

	body, err := d.client.Get(ctx, d.baseURL+"/search.json", map[string]string{
		"key": d.apiKey,
		"q":   query,
	})
	if err != nil {
		return nil, translateTransportError(err)
	}

	if apiErr := decodeAPIError(body); apiErr != nil {
		return nil, apiErr
	}

	var cities []models.CityResponse
	if err := json.Unmarshal(body, &cities); err != nil {
		return nil, &DecodingError{Message: err.Error()}
	}

	return cities, nil
}

// decodeAPIError checks the body for the API error envelope. The API can
// report semantic errors with a 200 status, so this runs on every success
// body before the schema decode.
func decodeAPIError(body []byte) *APIError {
	var envelope models.APIErrorResponse
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error == nil {
		return nil
	}

	return &APIError{Code: envelope.Error.Code, Message: envelope.Error.Message}
}

// translateTransportError lifts an HTTP status error that carried the API
// error envelope into an APIError. The API returns its numeric codes with
// 4xx statuses as well as 200s, and the code table must apply either way.
func translateTransportError(err error) error {
	var httpErr *httpclient.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code != 0 {
		return &APIError{Code: httpErr.Code, Message: httpErr.Message}
	}

	return err
}
