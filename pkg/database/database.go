package database

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jordanlanch/bizradar/pkg/store"
)

// Client holds the database handle
type Client struct {
	DB *gorm.DB
}

// NewClient opens the sqlite database at path, enables foreign key
// enforcement and runs automigration for all entities.
func NewClient(path string) (*Client, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed creating database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path+"?_fk=1"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed opening sqlite database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return &Client{DB: db}, nil
}

// Migrate creates or updates the schema for all entities.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&store.Company{},
		&store.CompanyOfficer{},
		&store.MarketTrend{},
		&store.NewsArticle{},
		&store.ICP{},
		&store.Lead{},
		&store.RealEstateProject{},
		&store.ArchitecturalFirm{},
		&store.AnalysisResult{},
	); err != nil {
		return fmt.Errorf("failed migrating schema: %w", err)
	}
	return nil
}

// Close closes the underlying connection pool.
func (c *Client) Close() error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks if the database is reachable
func (c *Client) Ping() error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
