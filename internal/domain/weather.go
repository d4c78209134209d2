package domain

import "fmt"

// WeatherFallback is the sentence used whenever current conditions cannot be read.
const WeatherFallback = "Weather data is not available right now."

// defaultCondition is used for codes outside every known range.
const defaultCondition = "unsettled conditions"

// Location is a fixed point the forecast is requested for.
type Location struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// CurrentWeather holds the two readings the ritual needs.
// Nil fields mean the upstream payload omitted them.
type CurrentWeather struct {
	TemperatureF *float64
	WeatherCode  *int
}

// conditionRange maps an inclusive WMO weather code range to a phrase.
type conditionRange struct {
	from, to int
	phrase   string
}

// conditionRanges are disjoint and ordered by code.
var conditionRanges = []conditionRange{
	{0, 0, "clear sky"},
	{1, 3, "partly to mostly cloudy"},
	{45, 45, "foggy"},
	{48, 48, "foggy"},
	{51, 55, "light to dense drizzle"},
	{56, 57, "freezing drizzle"},
	{61, 65, "light to heavy rain"},
	{66, 67, "freezing rain"},
	{71, 77, "light to heavy snow"},
	{80, 82, "rain showers"},
	{85, 86, "snow showers"},
	{95, 95, "thunderstorms"},
	{96, 99, "thunderstorms with hail"},
}

// DescribeWeatherCode returns the phrase for a WMO weather interpretation code.
func DescribeWeatherCode(code int) string {
	for _, r := range conditionRanges {
		if code >= r.from && code <= r.to {
			return r.phrase
		}
	}

	return defaultCondition
}

// Summary renders the weather sentence for place, or WeatherFallback when
// either reading is missing.
func (w CurrentWeather) Summary(place string) string {
	if w.TemperatureF == nil || w.WeatherCode == nil {
		return WeatherFallback
	}

	return fmt.Sprintf("%s, about %d°F in %s.",
		DescribeWeatherCode(*w.WeatherCode),
		roundHalfUp(*w.TemperatureF),
		place,
	)
}
