package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"utilibook/internal/database"
	"utilibook/internal/domain"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "utilibook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// Cleanup old data in FK-safe order.
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM appointments")
	db.Exec("DELETE FROM time_slot_configs")
	db.Exec("DELETE FROM holidays")
	db.Exec("DELETE FROM appointment_types")
	db.Exec("DELETE FROM branches")
	db.Exec("DELETE FROM clients")
	db.Exec("DELETE FROM staff_users")
	db.Exec("DELETE FROM system_settings")

	// ================== STAFF ==================
	log.Println("Creating staff users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.StaffUser{
		Email:        "admin@utilibook.local",
		PasswordHash: string(adminHash),
		FullName:     "Administrator",
		Role:         domain.RoleAdmin,
		Active:       true,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@utilibook.local / admin123")

	// ================== BRANCHES ==================
	log.Println("Creating branches...")

	branches := []domain.Branch{
		{Code: "CTR", Name: "Central Office", Address: "12 Main St", Phone: "+1 555 0100", Active: true},
		{Code: "NRT", Name: "North Office", Address: "48 Hill Rd", Phone: "+1 555 0101", Active: true},
	}
	for i := range branches {
		db.Create(&branches[i])
	}

	staffHash, _ := bcrypt.GenerateFromPassword([]byte("staff123"), bcrypt.DefaultCost)
	staff := domain.StaffUser{
		Email:        "staff@utilibook.local",
		PasswordHash: string(staffHash),
		FullName:     "Front Desk",
		Role:         domain.RoleStaff,
		BranchID:     &branches[0].ID,
		Active:       true,
	}
	db.Create(&staff)

	// ================== APPOINTMENT TYPES ==================
	log.Println("Creating appointment types...")

	types := []domain.AppointmentType{
		{Name: "Meter installation", Description: "New meter installation visit", Active: true},
		{Name: "Meter reading dispute", Description: "On-site verification of a disputed reading", Active: true},
		{Name: "Contract consultation", Description: "Tariff and contract consultation", Active: true},
	}
	for i := range types {
		db.Create(&types[i])
	}

	// ================== SLOT CATALOG ==================
	log.Println("Creating time slots...")

	times := []string{"09:00", "09:30", "10:00", "10:30", "11:00", "14:00", "14:30", "15:00"}
	for i := range branches {
		for _, t := range times {
			db.Create(&domain.TimeSlotConfig{
				BranchID: branches[i].ID,
				Time:     t,
				Active:   true,
			})
		}
	}
	// Installation-only late slot at the central office.
	db.Create(&domain.TimeSlotConfig{
		BranchID:          branches[0].ID,
		AppointmentTypeID: &types[0].ID,
		Time:              "16:00",
		Active:            true,
	})

	// ================== HOLIDAYS ==================
	log.Println("Creating holidays...")

	db.Create(&domain.Holiday{
		Date: "2026-12-25", Name: "Christmas Day",
		Type: domain.HolidayNational, Active: true,
	})
	db.Create(&domain.Holiday{
		Date: "2026-10-05", Name: "Company Anniversary",
		Type: domain.HolidayCompany, Active: true,
	})
	db.Create(&domain.Holiday{
		Date: "2026-09-14", Name: "North Office Maintenance",
		Type: domain.HolidayLocal, BranchID: &branches[1].ID, Active: true,
	})

	// ================== CLIENTS ==================
	log.Println("Creating clients...")

	for i := 1; i <= 3; i++ {
		db.Create(&domain.Client{
			ClientNumber: fmt.Sprintf("CL-%06d", i),
			FullName:     fmt.Sprintf("Sample Client %d", i),
			Email:        fmt.Sprintf("client%d@example.com", i),
			Phone:        fmt.Sprintf("+1 555 02%02d", i),
			Active:       true,
		})
	}

	// ================== SETTINGS ==================
	db.Create(&domain.SystemSetting{
		Key:   domain.SettingMaxAppointmentsPerDay,
		Value: strconv.Itoa(50),
	})

	log.Println("Seed completed")
}
