package db

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"go-forecast/internal/domain/entity"
	"go-forecast/internal/domain/model"
)

var archiveStart = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() entity.Timestamp {
	return entity.TimestampFrom(c.now)
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type archiveFixture struct {
	gateway ForecastArchiveGateway
	health  HealthDBGateway
	clock   *fakeClock
	close   func() error
}

func openGormArchive(t *testing.T) archiveFixture {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	clock := &fakeClock{now: archiveStart}
	gateway := NewGormForecastArchiveGateway(gormDB)
	gateway.Now = clock.Now

	return archiveFixture{
		gateway: gateway,
		health:  NewGormHealthDBGateway(gormDB),
		clock:   clock,
		close:   sqlDB.Close,
	}
}

func openSQLArchive(t *testing.T) archiveFixture {
	t.Helper()

	sqlDB, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	clock := &fakeClock{now: archiveStart}
	gateway := NewSQLForecastArchiveGateway(sqlDB)
	gateway.Now = clock.Now

	return archiveFixture{
		gateway: gateway,
		health:  NewSQLHealthDBGateway(sqlDB),
		clock:   clock,
		close:   sqlDB.Close,
	}
}

var archives = []struct {
	name string
	open func(t *testing.T) archiveFixture
}{
	{name: "gorm", open: openGormArchive},
	{name: "sql", open: openSQLArchive},
}

func londonForecast(date string, c int, summary string) entity.WeatherForecast {
	return entity.NewWeatherForecast(date, entity.CityFrom("London"), entity.CentigradeFrom(c), summary)
}

func TestArchiveSaveAndFindByID(t *testing.T) {
	for _, archive := range archives {
		t.Run(archive.name, func(t *testing.T) {
			ctx := context.Background()
			fixture := archive.open(t)
			require.NoError(t, fixture.gateway.Migrate(ctx))

			saved, err := fixture.gateway.Save(ctx, []entity.WeatherForecast{
				londonForecast("2024-03-01", 8, "Chilly"),
				londonForecast("2024-03-02", -4, "Freezing"),
			})
			require.NoError(t, err)
			require.Len(t, saved, 2)
			assert.NotEqual(t, saved[0].ID, saved[1].ID)

			found, err := fixture.gateway.FindByID(ctx, saved[1].ID)
			require.NoError(t, err)
			require.NotNil(t, found)

			assert.Equal(t, saved[1].ID, found.ID)
			assert.Equal(t, saved[1].Forecast(), found.Forecast())
			assert.Equal(t, -4, found.TemperatureC.Int())
			assert.Equal(t, 25, found.TemperatureF.Int())
			assert.True(t, entity.TimestampFrom(archiveStart).Equal(found.ArchivedAt))
		})
	}
}

func TestArchiveFindByIDMissing(t *testing.T) {
	for _, archive := range archives {
		t.Run(archive.name, func(t *testing.T) {
			ctx := context.Background()
			fixture := archive.open(t)
			require.NoError(t, fixture.gateway.Migrate(ctx))

			found, err := fixture.gateway.FindByID(ctx, entity.NewHistoricForecastID())

			require.NoError(t, err)
			assert.Nil(t, found)
		})
	}
}

func TestArchiveFindByCityNewestFirst(t *testing.T) {
	for _, archive := range archives {
		t.Run(archive.name, func(t *testing.T) {
			ctx := context.Background()
			fixture := archive.open(t)
			require.NoError(t, fixture.gateway.Migrate(ctx))

			_, err := fixture.gateway.Save(ctx, []entity.WeatherForecast{
				londonForecast("2024-03-01", 8, "Chilly"),
				londonForecast("2024-03-02", 12, "Mild"),
			})
			require.NoError(t, err)

			fixture.clock.Advance(time.Hour)
			_, err = fixture.gateway.Save(ctx, []entity.WeatherForecast{
				londonForecast("2024-03-03", 15, "Warm"),
				entity.NewWeatherForecast("2024-03-03", entity.CityFrom("Paris"), entity.CentigradeFrom(17), "Balmy"),
			})
			require.NoError(t, err)

			history, err := fixture.gateway.FindByCity(ctx, entity.CityFrom("London"), 10)
			require.NoError(t, err)
			require.Len(t, history, 3)
			assert.Equal(t, "2024-03-03", history[0].Date)
			assert.Equal(t, "2024-03-01", history[1].Date)
			assert.Equal(t, "2024-03-02", history[2].Date)

			limited, err := fixture.gateway.FindByCity(ctx, entity.CityFrom("London"), 2)
			require.NoError(t, err)
			assert.Len(t, limited, 2)

			none, err := fixture.gateway.FindByCity(ctx, entity.CityFrom("Peckham"), 10)
			require.NoError(t, err)
			assert.NotNil(t, none)
			assert.Empty(t, none)
		})
	}
}

func TestArchiveCountAndDeleteOlderThan(t *testing.T) {
	for _, archive := range archives {
		t.Run(archive.name, func(t *testing.T) {
			ctx := context.Background()
			fixture := archive.open(t)
			require.NoError(t, fixture.gateway.Migrate(ctx))

			_, err := fixture.gateway.Save(ctx, []entity.WeatherForecast{
				londonForecast("2024-03-01", 8, "Chilly"),
				londonForecast("2024-03-02", 12, "Mild"),
			})
			require.NoError(t, err)
			fixture.clock.Advance(time.Hour)
			_, err = fixture.gateway.Save(ctx, []entity.WeatherForecast{londonForecast("2024-03-03", 15, "Warm")})
			require.NoError(t, err)

			count, err := fixture.gateway.CountByCity(ctx, entity.CityFrom("London"))
			require.NoError(t, err)
			assert.Equal(t, int64(3), count)

			removed, err := fixture.gateway.DeleteOlderThan(ctx, entity.TimestampFrom(archiveStart.Add(-time.Minute)))
			require.NoError(t, err)
			assert.Equal(t, int64(0), removed)

			removed, err = fixture.gateway.DeleteOlderThan(ctx, entity.TimestampFrom(archiveStart.Add(30*time.Minute)))
			require.NoError(t, err)
			assert.Equal(t, int64(2), removed)

			count, err = fixture.gateway.CountByCity(ctx, entity.CityFrom("London"))
			require.NoError(t, err)
			assert.Equal(t, int64(1), count)
		})
	}
}

func TestArchiveSaveNothing(t *testing.T) {
	for _, archive := range archives {
		t.Run(archive.name, func(t *testing.T) {
			ctx := context.Background()
			fixture := archive.open(t)
			require.NoError(t, fixture.gateway.Migrate(ctx))

			saved, err := fixture.gateway.Save(ctx, nil)

			require.NoError(t, err)
			assert.Empty(t, saved)
		})
	}
}

func TestArchiveMigrateIsRepeatable(t *testing.T) {
	for _, archive := range archives {
		t.Run(archive.name, func(t *testing.T) {
			ctx := context.Background()
			fixture := archive.open(t)

			require.NoError(t, fixture.gateway.Migrate(ctx))
			require.NoError(t, fixture.gateway.Migrate(ctx))
		})
	}
}

func TestHealthDBGateway(t *testing.T) {
	for _, archive := range archives {
		t.Run(archive.name, func(t *testing.T) {
			ctx := context.Background()
			fixture := archive.open(t)

			up := fixture.health.Health(ctx)
			assert.Equal(t, model.StatusUp, up.Status)
			assert.Equal(t, "UP", up.Details["message"])

			require.NoError(t, fixture.close())

			down := fixture.health.Health(ctx)
			assert.Equal(t, model.StatusDown, down.Status)
			assert.Contains(t, down.Details["message"], "closed")
		})
	}
}
