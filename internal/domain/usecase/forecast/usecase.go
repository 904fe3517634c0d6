package forecast

import (
	"context"
	"errors"

	"go-forecast/internal/domain/entity"
)

// ErrArchiveDisabled is returned by History when no archive is configured.
var ErrArchiveDisabled = errors.New("forecast archive is disabled")

type UseCase interface {
	// AllForecasts fetches every forecast the API knows about
	AllForecasts(ctx context.Context) ([]entity.WeatherForecast, error)

	// ForecastByCity fetches the forecasts of city, passing the city in the path
	ForecastByCity(ctx context.Context, city entity.City) ([]entity.WeatherForecast, error)

	// ForecastByCityUsingURLParameters fetches the forecasts of city, passing the city as a query parameter
	ForecastByCityUsingURLParameters(ctx context.Context, city entity.City) ([]entity.WeatherForecast, error)

	// HistoricForecast fetches a forecast issued in the past
	HistoricForecast(ctx context.Context, id entity.HistoricForecastID) (*entity.WeatherForecast, error)

	// History reads the newest archived forecasts of city
	History(ctx context.Context, city entity.City, limit int) ([]entity.ArchivedForecast, error)
}
