package db

import (
	"context"

	"gorm.io/gorm"

	"go-forecast/internal/domain/model"
)

type GormHealthDBGateway struct {
	DB *gorm.DB
}

var _ HealthDBGateway = (*GormHealthDBGateway)(nil)

func NewGormHealthDBGateway(db *gorm.DB) *GormHealthDBGateway {
	return &GormHealthDBGateway{DB: db}
}

func (gateway *GormHealthDBGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	sqlDB, err := gateway.DB.DB()
	if err != nil {
		return downStatus(err)
	}

	if err = sqlDB.PingContext(ctx); err != nil {
		return downStatus(err)
	}

	return upStatus()
}
