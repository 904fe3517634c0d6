package main

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"

	"go-forecast/internal/application/console"
	"go-forecast/internal/domain/entity"
	"go-forecast/internal/domain/usecase/forecast"
	"go-forecast/pkg/resource"
)

// handleHistory handles the history sub-command. It reads the archive even
// when archiving is disabled for runs.
func (ac *appContext) handleHistory(cCtx *cli.Context) (err error) {
	a, err := connectArchive(cCtx.Context)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, a.close())
	}()

	limit := cCtx.Int("limit")
	if limit == 0 {
		limit = resource.GetInt("app.archive.history-limit")
	}

	useCase := forecast.NewForecastUseCase(newWeatherGateway(cCtx), a.gateway)
	return console.PrintHistory(cCtx.Context, useCase, ac.out, entity.CityFrom(cCtx.String("city")), limit)
}
