package health

import (
	"context"

	"go-forecast/internal/domain/gateway/db"
	"go-forecast/internal/domain/model"
)

type healthUseCase struct {
	dbGateway db.HealthDBGateway
}

// NewHealthUseCase accepts a nil gateway when no archive is configured; the
// database is then reported as UNKNOWN.
func NewHealthUseCase(dbGateway db.HealthDBGateway) UseCase {
	return &healthUseCase{
		dbGateway: dbGateway,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	if useCase.dbGateway == nil {
		return model.HealthResponse{
			Status: model.StatusUnknown,
			Database: model.ComponentHealthStatus{
				Status:  model.StatusUnknown,
				Details: map[string]string{"message": "archive not configured"},
			},
		}
	}

	dbHealth := useCase.dbGateway.Health(ctx)

	overallStatus := model.StatusUp
	if dbHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Database: dbHealth,
	}
}
