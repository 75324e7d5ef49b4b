package db

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/akademik/akademik/internal/app/procedures"
	"github.com/akademik/akademik/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(driver string) *config.Config {
	cfg := &config.Config{}
	cfg.Database.Driver = driver
	cfg.Database.Server = "localhost"
	cfg.Database.Port = "5432"
	cfg.Database.User = "app"
	cfg.Database.Password = "secret"
	cfg.Database.Name = "UniversityDB"
	cfg.Database.MaxOpenConns = 10
	cfg.Database.ConnMaxIdleTime = "30s"
	return cfg
}

func TestOpenSelectsDialect(t *testing.T) {
	ms, err := Open(testConfig("sqlserver"))
	require.NoError(t, err)
	defer ms.Close()
	assert.Equal(t, procedures.SQLServer, ms.Dialect)
	assert.Equal(t, 10, ms.SQL.Stats().MaxOpenConnections)

	pg, err := Open(testConfig("postgres"))
	require.NoError(t, err)
	defer pg.Close()
	assert.Equal(t, procedures.Postgres, pg.Dialect)
	assert.Equal(t, 10, pg.SQL.Stats().MaxOpenConnections)

	my, err := Open(testConfig("mysql"))
	require.NoError(t, err)
	defer my.Close()
	assert.Equal(t, procedures.MySQL, my.Dialect)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(testConfig("oracle"))
	assert.Error(t, err)
}

func TestPing(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	d := &Database{SQL: sqlDB, Dialect: procedures.Postgres}
	defer d.Close()

	mock.ExpectPing()
	assert.NoError(t, d.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
