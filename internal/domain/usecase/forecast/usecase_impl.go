package forecast

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"go-forecast/internal/domain/entity"
	"go-forecast/internal/domain/gateway/api"
	"go-forecast/internal/domain/gateway/db"
	"go-forecast/pkg/log"
	"go-forecast/pkg/msg"
)

type forecastUseCase struct {
	apiGateway     api.WeatherGateway
	archiveGateway db.ForecastArchiveGateway
}

// NewForecastUseCase archives every fetched list of forecasts when
// archiveGateway is not nil.
func NewForecastUseCase(apiGateway api.WeatherGateway, archiveGateway db.ForecastArchiveGateway) UseCase {
	return &forecastUseCase{
		apiGateway:     apiGateway,
		archiveGateway: archiveGateway,
	}
}

func (uc *forecastUseCase) AllForecasts(ctx context.Context) ([]entity.WeatherForecast, error) {
	forecasts, err := uc.apiGateway.GetWeatherForecast(ctx)
	if err != nil {
		return nil, err
	}

	uc.archive(ctx, "all", forecasts)
	return forecasts, nil
}

func (uc *forecastUseCase) ForecastByCity(ctx context.Context, city entity.City) ([]entity.WeatherForecast, error) {
	forecasts, err := uc.apiGateway.GetWeatherForecastByCity(ctx, city)
	if err != nil {
		return nil, err
	}

	uc.archive(ctx, city.String(), forecasts)
	return forecasts, nil
}

func (uc *forecastUseCase) ForecastByCityUsingURLParameters(ctx context.Context, city entity.City) ([]entity.WeatherForecast, error) {
	forecasts, err := uc.apiGateway.GetWeatherForecastByCityUsingURLParameters(ctx, city)
	if err != nil {
		return nil, err
	}

	uc.archive(ctx, city.String(), forecasts)
	return forecasts, nil
}

// HistoricForecast is never archived: it already lives in the API's history.
func (uc *forecastUseCase) HistoricForecast(ctx context.Context, id entity.HistoricForecastID) (*entity.WeatherForecast, error) {
	return uc.apiGateway.GetHistoricForecast(ctx, id)
}

func (uc *forecastUseCase) History(ctx context.Context, city entity.City, limit int) ([]entity.ArchivedForecast, error) {
	if uc.archiveGateway == nil {
		return nil, ErrArchiveDisabled
	}
	if limit <= 0 {
		return nil, fmt.Errorf("history limit must be positive, got %d", limit)
	}

	history, err := uc.archiveGateway.FindByCity(ctx, city, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read archived forecasts for %s: %w", city, err)
	}
	return history, nil
}

// archive keeps the fetched forecasts; a failure is logged and never reaches the caller.
func (uc *forecastUseCase) archive(ctx context.Context, source string, forecasts []entity.WeatherForecast) {
	if uc.archiveGateway == nil || len(forecasts) == 0 {
		return
	}

	saved, err := uc.archiveGateway.Save(ctx, forecasts)
	if err != nil {
		log.Warn(msg.GetMessage("forecast.archive-failed", len(forecasts), source, err), zap.Error(err))
		return
	}

	log.Debug(msg.GetMessage("forecast.archived", len(saved), source))
}
