package database

import (
	"fmt"
	"strconv"

	"github.com/achalesh/exhibition-manager-sub001/config"
	"github.com/achalesh/exhibition-manager-sub001/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	p := config.Config("DB_PORT")
	port, err := strconv.ParseUint(p, 10, 32)

	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	DB.AutoMigrate(
		&model.Account{},
		&model.EventSession{},
		&model.Client{},
		&model.Space{},
		&model.Shed{},
		&model.Booking{},
		&model.ShedAllocation{},
		&model.ShedBill{},
		&model.ElectricBill{},
		&model.MaterialStockItem{},
		&model.MaterialHistory{},
		&model.MaterialIssueRecord{},
		&model.Payment{},
		&model.AccountingTransaction{},
		&model.TicketSale{},
		&model.DueMismatch{},
	)
	applyColumnPatches(DB)
	fmt.Println("Database Migrated")

	SeedData(DB)
}

// applyColumnPatches re-runs the ad-hoc column additions that predate
// AutoMigrate coverage. ADD COLUMN IF NOT EXISTS keeps them idempotent.
func applyColumnPatches(db *gorm.DB) {
	patches := []string{
		`ALTER TABLE bookings ADD COLUMN IF NOT EXISTS advance_amount numeric NOT NULL DEFAULT 0`,
		`ALTER TABLE bookings ADD COLUMN IF NOT EXISTS due_amount numeric NOT NULL DEFAULT 0`,
		`ALTER TABLE material_issue_records ADD COLUMN IF NOT EXISTS plywood_numbers text`,
		`ALTER TABLE material_issue_records ADD COLUMN IF NOT EXISTS balance_due numeric NOT NULL DEFAULT 0`,
		`ALTER TABLE payments ADD COLUMN IF NOT EXISTS shed_amount numeric NOT NULL DEFAULT 0`,
		`ALTER TABLE accounting_transactions ADD COLUMN IF NOT EXISTS reference_code varchar(20)`,
	}
	for _, patch := range patches {
		if err := db.Exec(patch).Error; err != nil {
			fmt.Println("column patch skipped:", err)
		}
	}
}
