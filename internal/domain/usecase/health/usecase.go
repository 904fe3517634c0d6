package health

import (
	"context"

	"go-forecast/internal/domain/model"
)

type UseCase interface {
	// CheckHealth reports whether the forecast archive database answers
	CheckHealth(ctx context.Context) model.HealthResponse
}
