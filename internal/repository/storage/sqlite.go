package storage

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Storage struct {
	Connection *gorm.DB
}

// NewSQLiteStorage - opens the archive database. Use ":memory:" for a throwaway one.
func NewSQLiteStorage(path string) (*Storage, error) {
	conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	db, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("can't get database handle: %w", err)
	}

	// sqlite allows a single writer; an in-memory database lives as long as its only connection.
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &Storage{Connection: conn}, nil
}

// Init - creates the archive tables.
func (that *Storage) Init(models ...any) error {
	if err := that.Connection.AutoMigrate(models...); err != nil {
		return fmt.Errorf("can't create tables: %w", err)
	}

	return nil
}

func (that *Storage) Close() error {
	db, err := that.Connection.DB()
	if err != nil {
		return fmt.Errorf("can't get database handle: %w", err)
	}

	if err = db.Close(); err != nil {
		return fmt.Errorf("can't close database: %w", err)
	}

	return nil
}
