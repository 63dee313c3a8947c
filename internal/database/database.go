package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"utilibook/internal/domain"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates the schema and the booking uniqueness index.
//
// idx_no_double_booking is the authoritative guard against two non-terminal
// appointments on the same (branch, date, time) tuple: concurrent schedules
// can both pass the service-level conflict check, and the loser must fail on
// insert. Partial indexes work on both Postgres and SQLite, so tests exercise
// the same constraint production runs under.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&domain.Branch{},
		&domain.AppointmentType{},
		&domain.Client{},
		&domain.StaffUser{},
		&domain.TimeSlotConfig{},
		&domain.Holiday{},
		&domain.Appointment{},
		&domain.Notification{},
		&domain.SystemSetting{},
	)
	if err != nil {
		return err
	}

	return db.Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS idx_no_double_booking
ON appointments (branch_id, date, time)
WHERE status_id NOT IN (4, 5) AND is_enabled
`).Error
}
