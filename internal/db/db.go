package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/boat-rental/internal/config"
	"github.com/BruksfildServices01/boat-rental/internal/models"
)

func NewDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// constraints close the double-booking race at the storage level. The
// application checks run first, under a row lock on the boat.
var constraints = []struct {
	table string
	name  string
	ddl   string
}{
	{
		table: "boat_availabilities",
		name:  "boat_availabilities_range_check",
		ddl:   `ALTER TABLE boat_availabilities ADD CONSTRAINT boat_availabilities_range_check CHECK (start_date < end_date)`,
	},
	{
		table: "bookings",
		name:  "bookings_range_check",
		ddl:   `ALTER TABLE bookings ADD CONSTRAINT bookings_range_check CHECK (start_date < end_date)`,
	},
	{
		table: "bookings",
		name:  "bookings_boat_no_overlap",
		ddl: `ALTER TABLE bookings ADD CONSTRAINT bookings_boat_no_overlap
			EXCLUDE USING gist (boat_id WITH =, tstzrange(start_date, end_date, '[)') WITH &&)
			WHERE (status <> 'cancelled')`,
	},
	{
		table: "bookings",
		name:  "bookings_renter_no_overlap",
		ddl: `ALTER TABLE bookings ADD CONSTRAINT bookings_renter_no_overlap
			EXCLUDE USING gist (renter_id WITH =, tstzrange(start_date, end_date, '[)') WITH &&)
			WHERE (status <> 'cancelled')`,
	},
}

func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return fmt.Errorf("enable btree_gist: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Boat{},
		&models.Booking{},
		&models.BoatAvailability{},
		&models.Review{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	for _, c := range constraints {
		var exists bool
		if err := db.Raw(
			`SELECT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = ?)`, c.name,
		).Scan(&exists).Error; err != nil {
			return fmt.Errorf("inspect constraint %s: %w", c.name, err)
		}
		if exists {
			continue
		}
		if err := db.Exec(c.ddl).Error; err != nil {
			return fmt.Errorf("add constraint %s on %s: %w", c.name, c.table, err)
		}
	}
	return nil
}
