package main

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/multierr"
	"gorm.io/gorm"

	"go-forecast/internal/domain/gateway/db"
	"go-forecast/internal/domain/model"
	"go-forecast/internal/domain/usecase/health"
	"go-forecast/internal/infra/database"
	gormdb "go-forecast/internal/infra/database/gorm"
	"go-forecast/internal/infra/database/sqldb"
	"go-forecast/pkg/resource"
)

type archive struct {
	gateway db.ForecastArchiveGateway
	health  db.HealthDBGateway
	close   func() error
}

// openArchive connects to the archive selected by app.archive.driver:
// gorm (postgres through GORM), sql (postgres through lib/pq) or sqlite (GORM, local file).
func openArchive() (*archive, error) {
	driver := resource.GetStringOrDefault("app.archive.driver", "gorm")

	switch driver {
	case "gorm":
		gormDB, err := gormdb.Open(database.ConfigFromProperties())
		if err != nil {
			return nil, err
		}
		return gormArchive(gormDB)
	case "sqlite":
		gormDB, err := gormdb.OpenSQLite(resource.GetString("app.archive.sqlite-path"))
		if err != nil {
			return nil, err
		}
		return gormArchive(gormDB)
	case "sql":
		sqlDB, err := sqldb.Open(database.ConfigFromProperties())
		if err != nil {
			return nil, err
		}
		return &archive{
			gateway: db.NewSQLForecastArchiveGateway(sqlDB),
			health:  db.NewSQLHealthDBGateway(sqlDB),
			close:   sqlDB.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unknown archive driver '%s'", driver)
	}
}

func gormArchive(gormDB *gorm.DB) (*archive, error) {
	sqlDB, err := gormDB.DB()
	if err != nil {
		if pool, ok := gormDB.ConnPool.(io.Closer); ok {
			err = multierr.Append(err, pool.Close())
		}
		return nil, err
	}
	return &archive{
		gateway: db.NewGormForecastArchiveGateway(gormDB),
		health:  db.NewGormHealthDBGateway(gormDB),
		close:   sqlDB.Close,
	}, nil
}

// connectArchive opens the archive, checks it answers and creates its table.
func connectArchive(ctx context.Context) (*archive, error) {
	a, err := openArchive()
	if err != nil {
		return nil, err
	}

	response := health.NewHealthUseCase(a.health).CheckHealth(ctx)
	if response.Status != model.StatusUp {
		return nil, multierr.Append(fmt.Errorf("archive is %s: %s", response.Status, response.Message()), a.close())
	}

	if err := a.gateway.Migrate(ctx); err != nil {
		return nil, multierr.Append(fmt.Errorf("failed to migrate archive: %w", err), a.close())
	}
	return a, nil
}
