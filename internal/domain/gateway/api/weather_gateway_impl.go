package api

import (
	"context"
	"fmt"

	"go-forecast/internal/domain/entity"
	"go-forecast/internal/domain/model/external"
	"go-forecast/pkg/http"
)

const (
	weatherForecastPath         = "/weatherforecast"
	weatherForecastByCityPath   = "/weatherforecast/{city}"
	historicWeatherForecastPath = "/historicweatherforecast/{historicForecastId}"
)

// ForecastAPIError is returned when the forecast API answers with a non-2xx status.
type ForecastAPIError struct {
	StatusCode int
	Problem    *external.ProblemDetails
	// Err is the client failure behind the status, such as an unreadable body.
	Err error
}

func (e *ForecastAPIError) Error() string {
	if e.Problem == nil || (e.Problem.Title == "" && e.Problem.Detail == "") {
		return fmt.Sprintf("forecast api responded with status %d", e.StatusCode)
	}
	if e.Problem.Detail == "" {
		return fmt.Sprintf("forecast api responded with status %d: %s", e.StatusCode, e.Problem.Title)
	}
	return fmt.Sprintf("forecast api responded with status %d: %s (%s)", e.StatusCode, e.Problem.Title, e.Problem.Detail)
}

func (e *ForecastAPIError) Unwrap() error {
	return e.Err
}

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	httpClient *http.Client
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client
func NewWeatherGateway(baseUrl string, clientOptions http.ClientOptions) WeatherGateway {
	return &weatherGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

func (w *weatherGatewayImpl) GetWeatherForecast(ctx context.Context) ([]entity.WeatherForecast, error) {
	return w.getForecasts(w.httpClient.Request().
		WithContext(ctx).
		WithPath(weatherForecastPath))
}

func (w *weatherGatewayImpl) GetWeatherForecastByCity(ctx context.Context, city entity.City) ([]entity.WeatherForecast, error) {
	return w.getForecasts(w.httpClient.Request().
		WithContext(ctx).
		WithPath(weatherForecastByCityPath).
		WithPathParams(map[string]string{"city": city.String()}))
}

func (w *weatherGatewayImpl) GetWeatherForecastByCityUsingURLParameters(ctx context.Context, city entity.City) ([]entity.WeatherForecast, error) {
	return w.getForecasts(w.httpClient.Request().
		WithContext(ctx).
		WithPath(weatherForecastPath).
		WithQueryParams(map[string]string{"city": city.String()}))
}

func (w *weatherGatewayImpl) GetHistoricForecast(ctx context.Context, id entity.HistoricForecastID) (*entity.WeatherForecast, error) {
	successResp, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(historicWeatherForecastPath).
		WithPathParams(map[string]string{"historicForecastId": id.String()}).
		WithSuccessResp(&entity.WeatherForecast{}).
		WithErrorResp(&external.ProblemDetails{}).
		Execute()

	if err != nil {
		return nil, toGatewayError(errResp, status, err)
	}

	return successResp.(*entity.WeatherForecast), nil
}

func (w *weatherGatewayImpl) getForecasts(request *http.Request) ([]entity.WeatherForecast, error) {
	successResp, errResp, status, err := request.
		WithMethod(http.GET).
		WithSuccessResp(&[]entity.WeatherForecast{}).
		WithErrorResp(&external.ProblemDetails{}).
		Execute()

	if err != nil {
		return nil, toGatewayError(errResp, status, err)
	}

	return *successResp.(*[]entity.WeatherForecast), nil
}

// toGatewayError turns an HTTP status into a ForecastAPIError; anything else is a transport failure.
func toGatewayError(errResp any, status int, err error) error {
	if status == 0 {
		return fmt.Errorf("forecast api request failed: %w", err)
	}
	if status >= 200 && status < 300 {
		return fmt.Errorf("forecast api returned an unreadable response: %w", err)
	}

	apiErr := &ForecastAPIError{StatusCode: status, Err: err}
	if problem, ok := errResp.(*external.ProblemDetails); ok {
		apiErr.Problem = problem
	}
	return apiErr
}
