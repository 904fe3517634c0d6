package api

import (
	"context"

	"go-forecast/internal/domain/entity"
)

// WeatherGateway is the typed client of the weather forecast API
type WeatherGateway interface {
	// GetWeatherForecast calls GET /weatherforecast
	GetWeatherForecast(ctx context.Context) ([]entity.WeatherForecast, error)

	// GetWeatherForecastByCity calls GET /weatherforecast/{city}
	GetWeatherForecastByCity(ctx context.Context, city entity.City) ([]entity.WeatherForecast, error)

	// GetWeatherForecastByCityUsingURLParameters calls GET /weatherforecast?city={city}
	GetWeatherForecastByCityUsingURLParameters(ctx context.Context, city entity.City) ([]entity.WeatherForecast, error)

	// GetHistoricForecast calls GET /historicweatherforecast/{historicForecastId}
	GetHistoricForecast(ctx context.Context, id entity.HistoricForecastID) (*entity.WeatherForecast, error)
}
