package entity

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-forecast/pkg/valueconv"
)

func TestCityRoundTrip(t *testing.T) {
	for _, name := range []string{"London", "Paris", "Peckham", "São Paulo", ""} {
		t.Run(name, func(t *testing.T) {
			city := CityFrom(name)
			assert.Equal(t, name, cityConverter.ToProvider(city))
			assert.Equal(t, city, cityConverter.FromProvider(cityConverter.ToProvider(city)))

			v, err := city.Value()
			require.NoError(t, err)

			var scanned City
			require.NoError(t, scanned.Scan(v))
			assert.Equal(t, city, scanned)
		})
	}
}

func TestCityScanNull(t *testing.T) {
	var city City
	err := city.Scan(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, valueconv.ErrNullValue))
}

func TestHistoricForecastIDRoundTrip(t *testing.T) {
	id := NewHistoricForecastID()

	v, err := id.Value()
	require.NoError(t, err)
	assert.Equal(t, id.String(), v)

	var scanned HistoricForecastID
	require.NoError(t, scanned.Scan(v))
	assert.Equal(t, id, scanned)

	require.NoError(t, scanned.Scan([]byte(id.String())))
	assert.Equal(t, id, scanned)

	raw := uuid.New()
	assert.Equal(t, raw, HistoricForecastIDFrom(raw).UUID())
}

func TestHistoricForecastIDRejectsMalformed(t *testing.T) {
	var id HistoricForecastID
	assert.Error(t, id.Scan("not-a-uuid"))
	assert.Error(t, id.Scan(42))
	assert.True(t, errors.Is(id.Scan(nil), valueconv.ErrNullValue))

	_, err := ParseHistoricForecastID("nope")
	assert.Error(t, err)
}

func TestHistoricForecastIDConverterNeverPanics(t *testing.T) {
	for _, src := range []any{"not-a-uuid", []byte("0000-zz"), "123e4567-e89b-12d3-a456-42661417400"} {
		assert.NotPanics(t, func() {
			_, err := historicForecastIDConverter.Scan(src)
			assert.Error(t, err)
		})
	}

	raw := uuid.New()
	assert.Equal(t, raw, historicForecastIDConverter.FromProvider(raw).UUID())
	assert.Equal(t, raw, historicForecastIDConverter.ToProvider(HistoricForecastIDFrom(raw)))
}

func TestTemperatureRoundTrip(t *testing.T) {
	for _, degrees := range []int{-20, 0, 12, 55} {
		c := CentigradeFrom(degrees)
		v, err := c.Value()
		require.NoError(t, err)

		var scannedC Centigrade
		require.NoError(t, scannedC.Scan(v))
		assert.Equal(t, c, scannedC)

		f := FahrenheitFrom(degrees)
		v, err = f.Value()
		require.NoError(t, err)

		var scannedF Fahrenheit
		require.NoError(t, scannedF.Scan(v))
		assert.Equal(t, f, scannedF)
	}
}

func TestCentigradeToFahrenheit(t *testing.T) {
	tests := []struct {
		celsius  int
		expected int
	}{
		{celsius: 0, expected: 32},
		{celsius: 10, expected: 49},
		{celsius: 100, expected: 211},
		{celsius: -20, expected: -3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CentigradeFrom(tt.celsius).Fahrenheit().Int(), "celsius %d", tt.celsius)
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	local := time.FixedZone("UTC+2", 2*60*60)
	ts := TimestampFrom(time.Date(2024, 3, 10, 12, 0, 0, 123456789, local))

	assert.Equal(t, time.UTC, ts.Time().Location())
	assert.Equal(t, 123456000, ts.Time().Nanosecond())

	v, err := ts.Value()
	require.NoError(t, err)

	var scanned Timestamp
	require.NoError(t, scanned.Scan(v))
	assert.True(t, ts.Equal(scanned))
	assert.Equal(t, ts, timestampConverter.FromProvider(timestampConverter.ToProvider(ts)))
}

func TestWeatherForecastJSON(t *testing.T) {
	payload := `{"date":"2024-01-02","city":"London","temperatureC":12,"temperatureF":53,"summary":"Mild"}`

	var forecast WeatherForecast
	require.NoError(t, json.Unmarshal([]byte(payload), &forecast))

	assert.Equal(t, CityFrom("London"), forecast.City)
	assert.Equal(t, 12, forecast.TemperatureC.Int())
	assert.Equal(t, 53, forecast.TemperatureF.Int())
	assert.Equal(t, "Mild", forecast.Summary)

	encoded, err := json.Marshal(forecast)
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(encoded))
}

func TestNewWeatherForecastDerivesFahrenheit(t *testing.T) {
	forecast := NewWeatherForecast("2024-01-02", CityFrom("Paris"), CentigradeFrom(10), "Cool")
	assert.Equal(t, 49, forecast.TemperatureF.Int())
}

func TestArchivedForecast(t *testing.T) {
	forecast := NewWeatherForecast("2024-01-02", CityFrom("Paris"), CentigradeFrom(10), "Cool")
	archived := NewArchivedForecast(forecast, Now())

	assert.NotEqual(t, uuid.Nil, archived.ID.UUID())
	assert.Equal(t, forecast, archived.Forecast())
	assert.Equal(t, "archived_forecasts", archived.TableName())
}
