package database

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gamereviews/backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database named by dsn with the application's SQL logger.
func Connect(dsn string) (*gorm.DB, error) {
	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,                   // Enable color
		},
	)

	return Open(dsn, &gorm.Config{Logger: customLogger})
}

// Open opens dsn with the given gorm configuration. Constraint violations are
// translated into gorm.ErrForeignKeyViolated and gorm.ErrDuplicatedKey.
func Open(dsn string, cfg *gorm.Config) (*gorm.DB, error) {
	if cfg == nil {
		cfg = &gorm.Config{}
	}
	cfg.TranslateError = true

	db, err := gorm.Open(Dialector(dsn), cfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if !IsPostgres(dsn) {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		// SQLite allows a single writer, and an in-memory database lives
		// only as long as its one connection.
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// Migrate creates or updates the games, users and reviews tables, including
// the foreign keys from reviews to games and users.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Game{}, &models.User{}, &models.Review{}); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}

// Dialector picks the driver for dsn. Postgres URLs and keyword DSNs go to
// the postgres driver; anything else is a SQLite database file.
func Dialector(dsn string) gorm.Dialector {
	if IsPostgres(dsn) {
		return postgres.Open(dsn)
	}
	return sqlite.Open(SQLiteDSN(dsn))
}

// IsPostgres reports whether dsn addresses a postgres server.
func IsPostgres(dsn string) bool {
	dsn = strings.TrimSpace(dsn)
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}

// SQLiteDSN turns on foreign key enforcement, which SQLite leaves off by
// default for every new connection.
func SQLiteDSN(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}
