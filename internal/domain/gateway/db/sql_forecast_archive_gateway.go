package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go-forecast/internal/domain/entity"
)

const archivedForecastColumns = "id, date, city, temperature_c, temperature_f, summary, archived_at"

type SQLForecastArchiveGateway struct {
	DB *sql.DB
	// Now stamps archived forecasts; defaults to entity.Now
	Now func() entity.Timestamp
}

var _ ForecastArchiveGateway = (*SQLForecastArchiveGateway)(nil)

func NewSQLForecastArchiveGateway(db *sql.DB) *SQLForecastArchiveGateway {
	return &SQLForecastArchiveGateway{DB: db, Now: entity.Now}
}

func (gateway *SQLForecastArchiveGateway) Migrate(ctx context.Context) error {
	_, err := gateway.DB.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS archived_forecasts (
			id            VARCHAR(36)  PRIMARY KEY,
			date          VARCHAR(10),
			city          VARCHAR(100) NOT NULL,
			temperature_c INTEGER,
			temperature_f INTEGER,
			summary       TEXT,
			archived_at   TIMESTAMP    NOT NULL
		)`)
	if err != nil {
		return err
	}

	_, err = gateway.DB.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_archived_forecasts_city ON archived_forecasts (city)`)
	return err
}

func (gateway *SQLForecastArchiveGateway) Save(ctx context.Context, forecasts []entity.WeatherForecast) (saved []entity.ArchivedForecast, err error) {
	if len(forecasts) == 0 {
		return []entity.ArchivedForecast{}, nil
	}

	tx, err := gateway.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	archivedAt := gateway.now()
	archived := make([]entity.ArchivedForecast, len(forecasts))
	for i, forecast := range forecasts {
		archived[i] = entity.NewArchivedForecast(forecast, archivedAt)

		_, err = tx.ExecContext(ctx, `
			INSERT INTO archived_forecasts (`+archivedForecastColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			archived[i].ID, archived[i].Date, archived[i].City, archived[i].TemperatureC,
			archived[i].TemperatureF, archived[i].Summary, archived[i].ArchivedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to archive forecast for %s on %s: %w", forecast.City, forecast.Date, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return archived, nil
}

func (gateway *SQLForecastArchiveGateway) FindByID(ctx context.Context, id entity.HistoricForecastID) (*entity.ArchivedForecast, error) {
	var a entity.ArchivedForecast
	err := gateway.DB.QueryRowContext(ctx, `
		SELECT `+archivedForecastColumns+`
		FROM archived_forecasts
		WHERE id = $1`, id).
		Scan(&a.ID, &a.Date, &a.City, &a.TemperatureC, &a.TemperatureF, &a.Summary, &a.ArchivedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (gateway *SQLForecastArchiveGateway) FindByCity(ctx context.Context, city entity.City, limit int) ([]entity.ArchivedForecast, error) {
	rows, err := gateway.DB.QueryContext(ctx, `
		SELECT `+archivedForecastColumns+`
		FROM archived_forecasts
		WHERE city = $1
		ORDER BY archived_at DESC, date ASC
		LIMIT $2`, city, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]entity.ArchivedForecast, 0)
	for rows.Next() {
		var a entity.ArchivedForecast
		if err := rows.Scan(&a.ID, &a.Date, &a.City, &a.TemperatureC, &a.TemperatureF, &a.Summary, &a.ArchivedAt); err != nil {
			return nil, err
		}
		results = append(results, a)
	}
	return results, rows.Err()
}

func (gateway *SQLForecastArchiveGateway) CountByCity(ctx context.Context, city entity.City) (int64, error) {
	var count int64
	err := gateway.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM archived_forecasts WHERE city = $1`, city).Scan(&count)
	return count, err
}

func (gateway *SQLForecastArchiveGateway) DeleteOlderThan(ctx context.Context, cutoff entity.Timestamp) (int64, error) {
	result, err := gateway.DB.ExecContext(ctx, `DELETE FROM archived_forecasts WHERE archived_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (gateway *SQLForecastArchiveGateway) now() entity.Timestamp {
	if gateway.Now == nil {
		return entity.Now()
	}
	return gateway.Now()
}
