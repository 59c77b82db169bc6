package database

import (
	"log"
	"strings"

	"campusrent/internal/domain"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// registers the cgo-free "sqlite" driver
	_ "modernc.org/sqlite"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{TranslateError: true},
	)
}

// Migrate creates the schema and the partial unique index that backstops
// the single-open-rental invariant: even if two offers slip past the
// status compare-and-swap, the second insert violates this index.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Listing{},
		&domain.Rental{},
		&domain.Favorite{},
	); err != nil {
		return err
	}

	// Partial index syntax is shared by PostgreSQL and SQLite.
	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_one_open_rental_per_listing
		 ON rentals (listing_id) WHERE status IN ('pending', 'active')`,
	).Error
}
