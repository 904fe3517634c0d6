package db

import (
	"context"

	"go-forecast/internal/domain/model"
)

type HealthDBGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}

func downStatus(err error) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusDown,
		Details: map[string]string{
			"message": err.Error(),
		},
	}
}

func upStatus() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"message": string(model.StatusUp),
		},
	}
}
