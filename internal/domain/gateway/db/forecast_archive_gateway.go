package db

import (
	"context"

	"go-forecast/internal/domain/entity"
)

type ForecastArchiveGateway interface {
	// Migrate creates the archived_forecasts table when it does not exist
	Migrate(ctx context.Context) error

	// Save archives forecasts, each under a new HistoricForecastID
	Save(ctx context.Context, forecasts []entity.WeatherForecast) ([]entity.ArchivedForecast, error)

	// FindByID returns nil when no forecast is archived under id
	FindByID(ctx context.Context, id entity.HistoricForecastID) (*entity.ArchivedForecast, error)

	// FindByCity returns the newest archived forecasts for city first
	FindByCity(ctx context.Context, city entity.City, limit int) ([]entity.ArchivedForecast, error)

	CountByCity(ctx context.Context, city entity.City) (int64, error)

	// DeleteOlderThan removes forecasts archived before cutoff and returns how many were removed
	DeleteOlderThan(ctx context.Context, cutoff entity.Timestamp) (int64, error)
}
