package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-forecast/internal/domain/entity"
)

type GormForecastArchiveGateway struct {
	DB *gorm.DB
	// Now stamps archived forecasts; defaults to entity.Now
	Now func() entity.Timestamp
}

var _ ForecastArchiveGateway = (*GormForecastArchiveGateway)(nil)

func NewGormForecastArchiveGateway(db *gorm.DB) *GormForecastArchiveGateway {
	return &GormForecastArchiveGateway{DB: db, Now: entity.Now}
}

func (gateway *GormForecastArchiveGateway) Migrate(ctx context.Context) error {
	return gateway.DB.WithContext(ctx).AutoMigrate(&entity.ArchivedForecast{})
}

func (gateway *GormForecastArchiveGateway) Save(ctx context.Context, forecasts []entity.WeatherForecast) ([]entity.ArchivedForecast, error) {
	if len(forecasts) == 0 {
		return []entity.ArchivedForecast{}, nil
	}

	archivedAt := gateway.now()
	archived := make([]entity.ArchivedForecast, len(forecasts))
	for i, forecast := range forecasts {
		archived[i] = entity.NewArchivedForecast(forecast, archivedAt)
	}

	if err := gateway.DB.WithContext(ctx).Create(&archived).Error; err != nil {
		return nil, err
	}
	return archived, nil
}

func (gateway *GormForecastArchiveGateway) FindByID(ctx context.Context, id entity.HistoricForecastID) (*entity.ArchivedForecast, error) {
	var archived entity.ArchivedForecast
	err := gateway.DB.WithContext(ctx).Where("id = ?", id).First(&archived).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &archived, nil
}

func (gateway *GormForecastArchiveGateway) FindByCity(ctx context.Context, city entity.City, limit int) ([]entity.ArchivedForecast, error) {
	archived := make([]entity.ArchivedForecast, 0)
	err := gateway.DB.WithContext(ctx).
		Where("city = ?", city).
		Order("archived_at DESC").
		Order("date ASC").
		Limit(limit).
		Find(&archived).Error
	if err != nil {
		return nil, err
	}
	return archived, nil
}

func (gateway *GormForecastArchiveGateway) CountByCity(ctx context.Context, city entity.City) (int64, error) {
	var count int64
	err := gateway.DB.WithContext(ctx).Model(&entity.ArchivedForecast{}).Where("city = ?", city).Count(&count).Error
	return count, err
}

func (gateway *GormForecastArchiveGateway) DeleteOlderThan(ctx context.Context, cutoff entity.Timestamp) (int64, error) {
	result := gateway.DB.WithContext(ctx).Where("archived_at < ?", cutoff).Delete(&entity.ArchivedForecast{})
	return result.RowsAffected, result.Error
}

func (gateway *GormForecastArchiveGateway) now() entity.Timestamp {
	if gateway.Now == nil {
		return entity.Now()
	}
	return gateway.Now()
}
