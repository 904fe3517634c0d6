package entity

// WeatherForecast is a single day's forecast as returned by the forecast API.
type WeatherForecast struct {
	Date         string     `json:"date"`
	City         City       `json:"city"`
	TemperatureC Centigrade `json:"temperatureC"`
	TemperatureF Fahrenheit `json:"temperatureF"`
	Summary      string     `json:"summary"`
}

// NewWeatherForecast builds a forecast, deriving the Fahrenheit temperature.
func NewWeatherForecast(date string, city City, temperatureC Centigrade, summary string) WeatherForecast {
	return WeatherForecast{
		Date:         date,
		City:         city,
		TemperatureC: temperatureC,
		TemperatureF: temperatureC.Fahrenheit(),
		Summary:      summary,
	}
}
