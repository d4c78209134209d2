package acl

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/asteria-rituals/daily-ritual/internal/adapters/clients"
	"github.com/asteria-rituals/daily-ritual/internal/domain"
	"github.com/asteria-rituals/daily-ritual/internal/platform/logging"
)

// open-meteo query parameters for the two current readings we use.
const (
	forecastPath      = "/forecast"
	currentFields     = "temperature_2m,weather_code"
	temperatureUnit   = "fahrenheit"
	forecastTimezone  = "auto"
	healthCheckCoords = "0"
)

// forecastResponse is the subset of the open-meteo forecast payload we read.
// Pointers distinguish a missing reading from a zero one.
type forecastResponse struct {
	Current *struct {
		Temperature2m *float64 `json:"temperature_2m"`
		WeatherCode   *int     `json:"weather_code"`
	} `json:"current"`
}

// WeatherClient adapts the open-meteo forecast API to ports.WeatherProvider.
type WeatherClient struct {
	BaseAdapter
	logger *slog.Logger
}

// NewWeatherClient creates an open-meteo adapter on top of client.
func NewWeatherClient(client *clients.Client, logger *slog.Logger) *WeatherClient {
	if logger == nil {
		logger = slog.Default()
	}

	return &WeatherClient{
		BaseAdapter: NewBaseAdapter(client, client.ServiceName()),
		logger:      logger.With(slog.String("component", "acl.WeatherClient")),
	}
}

// CurrentWeather fetches the current temperature and weather code for loc.
// Every failure is returned as a domain.UnavailableError.
// Implements ports.WeatherProvider.
func (c *WeatherClient) CurrentWeather(ctx context.Context, loc domain.Location) (domain.CurrentWeather, error) {
	path := forecastPath + "?" + forecastQuery(loc.Latitude, loc.Longitude).Encode()

	c.logger.Log(ctx, logging.LevelTrace, "starting request",
		slog.String("path", path),
		slog.String("place", loc.Name))

	body, err := c.Get(ctx, path)
	if err != nil {
		return domain.CurrentWeather{}, AsUnavailable(err, c.ServiceName())
	}

	external, err := DecodeResponse[forecastResponse](body)
	if err != nil {
		return domain.CurrentWeather{}, domain.NewUnavailableError(c.ServiceName(), err.Error())
	}

	weather, err := c.translateToDomain(external)
	if err != nil {
		return domain.CurrentWeather{}, err
	}

	c.logger.Log(ctx, logging.LevelTrace, "translated external DTO to domain",
		slog.Float64("temperature_f", *weather.TemperatureF),
		slog.Int("weather_code", *weather.WeatherCode))

	return weather, nil
}

// translateToDomain converts the forecast payload, rejecting payloads that
// lack either reading.
func (c *WeatherClient) translateToDomain(ext *forecastResponse) (domain.CurrentWeather, error) {
	if ext.Current == nil || ext.Current.Temperature2m == nil || ext.Current.WeatherCode == nil {
		return domain.CurrentWeather{}, domain.NewUnavailableError(c.ServiceName(), "missing temperature or weather code")
	}

	return domain.CurrentWeather{
		TemperatureF: ext.Current.Temperature2m,
		WeatherCode:  ext.Current.WeatherCode,
	}, nil
}

// Name returns the health check name for this client.
// Implements ports.HealthChecker.
func (c *WeatherClient) Name() string {
	return c.ServiceName()
}

// Check verifies the forecast endpoint answers with a 2xx.
// Implements ports.HealthChecker.
func (c *WeatherClient) Check(ctx context.Context) error {
	q := url.Values{}
	q.Set("latitude", healthCheckCoords)
	q.Set("longitude", healthCheckCoords)
	q.Set("current", currentFields)

	_, err := c.Get(ctx, forecastPath+"?"+q.Encode())

	return err
}

func forecastQuery(lat, lon float64) url.Values {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("current", currentFields)
	q.Set("temperature_unit", temperatureUnit)
	q.Set("timezone", forecastTimezone)

	return q
}
