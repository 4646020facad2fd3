package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	// Registers the pure Go "sqlite" database/sql driver.
	_ "modernc.org/sqlite"
)

// SQL holds a gorm connection to PostgreSQL or SQLite.
type SQL struct {
	DB     *gorm.DB
	Driver string
}

// ConnectSQL opens dsn with the given driver ("postgres" or "sqlite").
func ConnectSQL(driver, dsn string) (*SQL, error) {
	gormConfig := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}

	var (
		db  *gorm.DB
		err error
	)

	switch driver {
	case "postgres":
		log.Println("Connecting to PostgreSQL...")
		db, err = gorm.Open(postgres.Open(dsn), gormConfig)
	case "sqlite":
		log.Println("Using SQLite:", dsn)
		db, err = gorm.Open(OpenSQLite(dsn), gormConfig)
	default:
		return nil, fmt.Errorf("unsupported SQL driver: %s", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if driver == "sqlite" {
		// SQLite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", driver, err)
	}

	return &SQL{DB: db, Driver: driver}, nil
}

// OpenSQLite returns a gorm dialector backed by modernc.org/sqlite.
func OpenSQLite(dsn string) gorm.Dialector {
	return gormsqlite.New(gormsqlite.Config{
		DriverName: "sqlite",
		DSN:        dsn,
	})
}

// Ping checks the connection.
func (s *SQL) Ping(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the connection pool.
func (s *SQL) Close() {
	sqlDB, err := s.DB.DB()
	if err != nil {
		log.Printf("Error getting SQL connection pool: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing %s connection: %v", s.Driver, err)
	}
	log.Printf("Disconnected from %s", s.Driver)
}
