package entity

// ArchivedForecast is a forecast kept in the local archive.
type ArchivedForecast struct {
	ID           HistoricForecastID `json:"id" gorm:"primaryKey;size:36"`
	Date         string             `json:"date" gorm:"size:10"`
	City         City               `json:"city" gorm:"size:100;not null;index"`
	TemperatureC Centigrade         `json:"temperatureC" gorm:"column:temperature_c"`
	TemperatureF Fahrenheit         `json:"temperatureF" gorm:"column:temperature_f"`
	Summary      string             `json:"summary"`
	ArchivedAt   Timestamp          `json:"archivedDate" gorm:"not null"`
}

func (ArchivedForecast) TableName() string {
	return "archived_forecasts"
}

// NewArchivedForecast assigns a new id to forecast, archived at the given instant.
func NewArchivedForecast(forecast WeatherForecast, archivedAt Timestamp) ArchivedForecast {
	return ArchivedForecast{
		ID:           NewHistoricForecastID(),
		Date:         forecast.Date,
		City:         forecast.City,
		TemperatureC: forecast.TemperatureC,
		TemperatureF: forecast.TemperatureF,
		Summary:      forecast.Summary,
		ArchivedAt:   archivedAt,
	}
}

// Forecast returns the archived forecast without its archive metadata.
func (a ArchivedForecast) Forecast() WeatherForecast {
	return WeatherForecast{
		Date:         a.Date,
		City:         a.City,
		TemperatureC: a.TemperatureC,
		TemperatureF: a.TemperatureF,
		Summary:      a.Summary,
	}
}
