// Package console runs the typed client sample and writes its report to an io.Writer.
package console

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"go-forecast/internal/domain/entity"
	"go-forecast/internal/domain/usecase/forecast"
	"go-forecast/pkg/log"
	"go-forecast/pkg/msg"
)

// RunReport counts the calls of a run by outcome.
type RunReport struct {
	Succeeded int
	Failed    int
}

type Options struct {
	// Cities are queried one by one, passing the city in the path
	Cities []entity.City
	// URLParametersCity is queried passing the city as a query parameter
	URLParametersCity entity.City
	// NewHistoricForecastID picks the id of the historic lookup; defaults to entity.NewHistoricForecastID
	NewHistoricForecastID func() entity.HistoricForecastID
}

type ForecastRunner struct {
	useCase forecast.UseCase
	out     io.Writer
	options Options
}

func NewForecastRunner(useCase forecast.UseCase, out io.Writer, options Options) *ForecastRunner {
	if options.NewHistoricForecastID == nil {
		options.NewHistoricForecastID = entity.NewHistoricForecastID
	}
	return &ForecastRunner{useCase: useCase, out: out, options: options}
}

// Run performs every call in order. A failed call is printed and logged, then
// the run moves on to the next one.
func (r *ForecastRunner) Run(ctx context.Context) RunReport {
	var report RunReport

	r.println(msg.GetMessage("sample.title"))
	r.println(msg.GetMessage("sample.separator"))

	for _, city := range r.options.Cities {
		r.call(ctx, &report, "by-city "+city.String(), func(ctx context.Context) ([]entity.WeatherForecast, error) {
			return r.useCase.ForecastByCity(ctx, city)
		})
		r.println(msg.GetMessage("sample.separator"))
	}

	r.println(msg.GetMessage("sample.url-parameters"))
	city := r.options.URLParametersCity
	r.call(ctx, &report, "url-parameters "+city.String(), func(ctx context.Context) ([]entity.WeatherForecast, error) {
		return r.useCase.ForecastByCityUsingURLParameters(ctx, city)
	})
	r.println(msg.GetMessage("sample.separator"))

	r.println(msg.GetMessage("sample.historic"))
	id := r.options.NewHistoricForecastID()
	r.call(ctx, &report, "historic "+id.String(), func(ctx context.Context) ([]entity.WeatherForecast, error) {
		f, err := r.useCase.HistoricForecast(ctx, id)
		if err != nil {
			return nil, err
		}
		return []entity.WeatherForecast{*f}, nil
	})
	r.println(msg.GetMessage("sample.separator"))

	return report
}

func (r *ForecastRunner) call(ctx context.Context, report *RunReport, name string, fetch func(context.Context) ([]entity.WeatherForecast, error)) {
	forecasts, err := fetch(ctx)
	if err != nil {
		report.Failed++
		log.Warn(msg.GetMessage("forecast.call-failed", name, err), zap.Error(err))
		r.println(msg.GetMessage("forecast.error", err.Error()))
		return
	}

	report.Succeeded++
	for _, f := range forecasts {
		r.println(FormatForecast(f))
	}
}

func (r *ForecastRunner) println(line string) {
	fmt.Fprintln(r.out, line)
}

// FormatForecast renders a forecast as "City: {city}, TempC: {c} ({f}F) - {summary}".
func FormatForecast(f entity.WeatherForecast) string {
	return msg.GetMessage("forecast.line", f.City, f.TemperatureC.Int(), f.TemperatureF.Int(), f.Summary)
}
