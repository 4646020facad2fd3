// Package backend opens the repository store selected by DB_DRIVER.
package backend

import (
	"context"
	"fmt"

	"movieflix/internal/config"
	"movieflix/internal/database"
	"movieflix/internal/repository"
	"movieflix/internal/repository/mongostore"
	"movieflix/internal/repository/sqlstore"
)

// Backend is an open store together with its connection.
type Backend struct {
	*repository.Store
	Driver string

	sql   *database.SQL
	mongo *database.MongoDB
}

// Open connects to the configured database.
func Open(cfg *config.Config) (*Backend, error) {
	if cfg.DBDriver == config.DriverMongo {
		mongoDB, err := database.ConnectMongo(cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		return &Backend{
			Store:  mongostore.NewStore(mongoDB.Database),
			Driver: cfg.DBDriver,
			mongo:  mongoDB,
		}, nil
	}

	sqlDB, err := database.ConnectSQL(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	return &Backend{
		Store:  sqlstore.NewStore(sqlDB.DB),
		Driver: cfg.DBDriver,
		sql:    sqlDB,
	}, nil
}

// Migrate brings the SQL schema up to date. MongoDB collections need no
// migration; their indexes are created when the store is built.
func (b *Backend) Migrate() error {
	if b.sql == nil {
		return nil
	}
	if err := sqlstore.Migrate(b.sql.DB); err != nil {
		return fmt.Errorf("failed to migrate %s schema: %w", b.Driver, err)
	}
	return nil
}

// Ping checks the connection.
func (b *Backend) Ping(ctx context.Context) error {
	if b.mongo != nil {
		return b.mongo.Ping(ctx)
	}
	return b.sql.Ping(ctx)
}

// Close releases the connection.
func (b *Backend) Close() {
	if b.mongo != nil {
		b.mongo.Close()
		return
	}
	b.sql.Close()
}
