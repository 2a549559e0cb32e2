package store

import (
	"fmt"
	"log"

	"slotb/internal/config"
	"slotb/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store owns the database handle and all persistence operations. It is
// opened once at startup and shared across requests for the process
// lifetime.
type Store struct {
	db *gorm.DB
}

// Open connects to the configured database backend.
func Open(cfg *config.Config) (*Store, error) {
	var dialector gorm.Dialector

	switch cfg.Database.Type {
	case "sqlite":
		dialector = sqlite.Open(cfg.Database.SQLite.Path)
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
			cfg.Database.MySQL.Username,
			cfg.Database.MySQL.Password,
			cfg.Database.MySQL.Host,
			cfg.Database.MySQL.Port,
			cfg.Database.MySQL.Database,
			cfg.Database.MySQL.Charset,
		)
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.Database.Type)
	}

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Store{db: db}, nil
}

// EnsureSchema creates the users and bookings tables when absent and adds
// any user columns introduced after the table was first created. It never
// rewrites or drops existing tables, so running it against a populated
// database is safe, and running it twice is a no-op.
func (s *Store) EnsureSchema() error {
	m := s.db.Migrator()

	if !m.HasTable(&models.User{}) {
		if err := m.CreateTable(&models.User{}); err != nil {
			return fmt.Errorf("failed to create users table: %w", err)
		}
	}

	if !m.HasTable(&models.Booking{}) {
		if err := m.CreateTable(&models.Booking{}); err != nil {
			return fmt.Errorf("failed to create bookings table: %w", err)
		}
	}

	// Columns added to the users table after the first release. A failed
	// ALTER is logged rather than aborting startup.
	for _, field := range []string{"Role", "FirstName", "LastName", "IDNumber", "ProfilePicture"} {
		if m.HasColumn(&models.User{}, field) {
			continue
		}
		if err := m.AddColumn(&models.User{}, field); err != nil {
			log.Printf("Warning: failed to add users column %s: %v", field, err)
		}
	}

	return nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
