// Package forecastapi is an in-process stand-in for the weather forecast API,
// used by tests of the typed client and the console runner.
package forecastapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"

	"go-forecast/internal/application/middleware"
	"go-forecast/internal/domain/entity"
	"go-forecast/internal/domain/model/external"
)

// Server serves seeded forecasts on the four forecast API endpoints.
type Server struct {
	echo *echo.Echo
	http *httptest.Server

	mu        sync.Mutex
	forecasts map[string][]entity.WeatherForecast
	historic  map[string]entity.WeatherForecast
	failing   map[string]int
	requests  []string
}

// New creates a server seeded with forecasts for London and Paris.
func New() *Server {
	s := &Server{
		echo:      echo.New(),
		forecasts: map[string][]entity.WeatherForecast{},
		historic:  map[string]entity.WeatherForecast{},
		failing:   map[string]int{},
	}
	s.echo.HideBanner = true
	s.echo.HidePort = true

	s.SeedCity("London",
		entity.NewWeatherForecast("2024-01-01", entity.CityFrom("London"), entity.CentigradeFrom(8), "Chilly"),
		entity.NewWeatherForecast("2024-01-02", entity.CityFrom("London"), entity.CentigradeFrom(12), "Mild"),
	)
	s.SeedCity("Paris",
		entity.NewWeatherForecast("2024-01-01", entity.CityFrom("Paris"), entity.CentigradeFrom(10), "Cool"),
	)

	middleware.SetupRequestLogger(s.echo)
	s.echo.GET("/weatherforecast", s.getForecasts)
	s.echo.GET("/weatherforecast/:city", s.getForecastsByCity)
	s.echo.GET("/historicweatherforecast/:historicForecastId", s.getHistoricForecast)
	return s
}

// Start serves on a random local port and returns the base URL.
func (s *Server) Start() string {
	s.http = httptest.NewServer(s.echo)
	return s.http.URL
}

func (s *Server) Close() {
	if s.http != nil {
		s.http.Close()
	}
}

// SeedCity replaces the forecasts returned for city.
func (s *Server) SeedCity(city string, forecasts ...entity.WeatherForecast) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forecasts[strings.ToLower(city)] = forecasts
}

// SeedHistoric registers the forecast returned for id.
func (s *Server) SeedHistoric(id entity.HistoricForecastID, forecast entity.WeatherForecast) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.historic[id.String()] = forecast
}

// FailCity makes every request for city answer with status.
func (s *Server) FailCity(city string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing[strings.ToLower(city)] = status
}

// Requests returns the request URIs received so far, in order.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

func (s *Server) record(c echo.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, c.Request().RequestURI)
}

func (s *Server) getForecasts(c echo.Context) error {
	s.record(c)

	if city := c.QueryParam("city"); city != "" {
		return s.respondForCity(c, city)
	}

	s.mu.Lock()
	all := make([]entity.WeatherForecast, 0)
	for _, forecasts := range s.forecasts {
		all = append(all, forecasts...)
	}
	s.mu.Unlock()

	return c.JSON(http.StatusOK, all)
}

func (s *Server) getForecastsByCity(c echo.Context) error {
	s.record(c)
	city, err := url.PathUnescape(c.Param("city"))
	if err != nil {
		return problem(c, http.StatusBadRequest, "Bad Request", err.Error())
	}
	return s.respondForCity(c, city)
}

func (s *Server) respondForCity(c echo.Context, city string) error {
	key := strings.ToLower(city)

	s.mu.Lock()
	status, failing := s.failing[key]
	forecasts, found := s.forecasts[key]
	s.mu.Unlock()

	if failing {
		return problem(c, status, http.StatusText(status), "")
	}
	if !found {
		return problem(c, http.StatusNotFound, "Not Found", "No forecast available for "+city)
	}
	return c.JSON(http.StatusOK, forecasts)
}

func (s *Server) getHistoricForecast(c echo.Context) error {
	s.record(c)

	id, err := entity.ParseHistoricForecastID(c.Param("historicForecastId"))
	if err != nil {
		return problem(c, http.StatusBadRequest, "Bad Request", err.Error())
	}

	s.mu.Lock()
	forecast, found := s.historic[id.String()]
	s.mu.Unlock()

	if !found {
		return problem(c, http.StatusNotFound, "Not Found", "No historic forecast "+id.String())
	}
	return c.JSON(http.StatusOK, forecast)
}

func problem(c echo.Context, status int, title string, detail string) error {
	body, err := json.Marshal(external.ProblemDetails{
		Type:   "https://tools.ietf.org/html/rfc9110",
		Title:  title,
		Status: status,
		Detail: detail,
	})
	if err != nil {
		return err
	}
	return c.Blob(status, "application/problem+json", body)
}
