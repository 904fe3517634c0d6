package main

import (
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"go-forecast/internal/application/console"
	"go-forecast/internal/domain/entity"
	"go-forecast/internal/domain/gateway/api"
	"go-forecast/internal/domain/gateway/db"
	"go-forecast/internal/domain/usecase/forecast"
	"go-forecast/pkg/http"
	"go-forecast/pkg/log"
	"go-forecast/pkg/msg"
	"go-forecast/pkg/resource"
)

// handleRun handles the run sub-command, also the default action.
func (ac *appContext) handleRun(cCtx *cli.Context) (err error) {
	ctx, stop := signal.NotifyContext(cCtx.Context, os.Interrupt)
	defer stop()

	log.Info(msg.GetMessage("app.start"))

	var archiveGateway db.ForecastArchiveGateway
	if archiveEnabled(cCtx) {
		a, archiveErr := connectArchive(ctx)
		if archiveErr != nil {
			log.Warn(msg.GetMessage("archive.down", archiveErr), zap.Error(archiveErr))
		} else {
			archiveGateway = a.gateway
			defer func() {
				err = multierr.Append(err, a.close())
			}()
		}
	} else {
		log.Info(msg.GetMessage("archive.disabled"))
	}

	useCase := forecast.NewForecastUseCase(newWeatherGateway(cCtx), archiveGateway)
	runner := console.NewForecastRunner(useCase, ac.out, runnerOptions())

	report := runner.Run(ctx)
	log.Info(msg.GetMessage("app.end", report.Succeeded, report.Failed))
	return nil
}

func archiveEnabled(cCtx *cli.Context) bool {
	if cCtx.IsSet("archive") {
		return cCtx.Bool("archive")
	}
	return resource.GetBool("app.archive.enabled")
}

func newWeatherGateway(cCtx *cli.Context) api.WeatherGateway {
	baseURL := cCtx.String("base-url")
	if baseURL == "" {
		baseURL = resource.GetString("app.forecast-api.base-url")
	}

	return api.NewWeatherGateway(baseURL, http.ClientOptions{
		InsecureSkipVerify: resource.GetBool("app.forecast-api.insecure-skip-verify"),
		ConnectionTimeout:  resource.GetDuration("app.forecast-api.connection-timeout"),
		ReadTimeout:        resource.GetDuration("app.forecast-api.read-timeout"),
		Logger:             http.NewZapHTTPLogger(),
	})
}

func runnerOptions() console.Options {
	names := resource.GetStringSlice("app.sample.cities")
	cities := make([]entity.City, len(names))
	for i, name := range names {
		cities[i] = entity.CityFrom(name)
	}

	return console.Options{
		Cities:            cities,
		URLParametersCity: entity.CityFrom(resource.GetString("app.sample.url-parameters-city")),
	}
}

