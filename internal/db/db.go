package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/akademik/akademik/internal/app/procedures"
	"github.com/akademik/akademik/internal/config"
	"github.com/akademik/akademik/internal/pkg/helpers"
	"github.com/akademik/akademik/internal/pkg/logger"
	_ "github.com/go-sql-driver/mysql" // registers the "mysql" driver
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	_ "github.com/microsoft/go-mssqldb" // registers the "sqlserver" driver
)

// Database wraps the shared connection pool and the dialect it speaks
type Database struct {
	SQL     *sql.DB
	Dialect procedures.Dialect
}

// Open creates the connection pool. It does not connect; use Ping to check
// reachability.
func Open(cfg *config.Config) (*Database, error) {
	dialect, err := procedures.ParseDialect(cfg.Database.Driver)
	if err != nil {
		return nil, err
	}

	var sqlDB *sql.DB
	switch dialect {
	case procedures.SQLServer:
		sqlDB, err = sql.Open(dialect.DriverName(), cfg.GetSQLServerConnectionString())
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlserver pool: %w", err)
		}
	case procedures.Postgres:
		connConfig, err := pgx.ParseConfig(cfg.GetPostgresConnectionString())
		if err != nil {
			return nil, fmt.Errorf("failed to parse postgres config: %w", err)
		}
		sqlDB = stdlib.OpenDB(*connConfig)
	default:
		sqlDB, err = sql.Open(dialect.DriverName(), cfg.GetMySQLConnectionString())
		if err != nil {
			return nil, fmt.Errorf("failed to open mysql pool: %w", err)
		}
	}

	configurePool(sqlDB, cfg)

	return &Database{SQL: sqlDB, Dialect: dialect}, nil
}

// configurePool applies the pool bounds from config
func configurePool(sqlDB *sql.DB, cfg *config.Config) {
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxIdleTime(helpers.ParseDuration(cfg.Database.ConnMaxIdleTime, 30*time.Second))
}

// Ping checks that the database is reachable
func (d *Database) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := d.SQL.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to establish database connection: %w", err)
	}
	return nil
}

// Close closes the pool
func (d *Database) Close() {
	if d == nil || d.SQL == nil {
		return
	}
	if err := d.SQL.Close(); err != nil {
		logger.Warn().Err(err).Msg("Failed to close database pool")
	}
}
