package database

import (
	"log"
	"time"

	"github.com/achalesh/exhibition-manager-sub001/constants"
	"github.com/achalesh/exhibition-manager-sub001/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func parseDate(dateStr string) time.Time {
	t, _ := time.Parse("2006-01-02", dateStr)
	return t
}

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("changeme123"), 10)
	hashPassword := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	accounts := []model.Account{
		{Username: "administrator", Password: hashPassword, FullName: "Administrator", Active: true, Role: constants.ROLE_ADMIN},
	}
	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed account:", account.Username, "error:", err)
		}
	}

	// First edition so the back-office is usable before any session has
	// been configured.
	session := model.EventSession{
		Name:      "Annual Fair 2026",
		Location:  "Central Ground",
		StartDate: parseDate("2026-01-05"),
		EndDate:   parseDate("2026-02-05"),
		IsActive:  true,
	}
	var count int64
	db.Model(&model.EventSession{}).Count(&count)
	if count == 0 {
		if err := db.Create(&session).Error; err != nil {
			log.Println("failed to seed event session:", err)
		}
	}

	MirrorPaymentsIntoLedger(db)
}

// MirrorPaymentsIntoLedger copies historical payments into the accounting
// ledger exactly once. A guard row marks the migration as done.
func MirrorPaymentsIntoLedger(db *gorm.DB) {
	const guardCode = "PAYMENT-MIRROR"

	var guard model.AccountingTransaction
	err := db.Where("reference_code = ? AND category = ?", guardCode, "migration").First(&guard).Error
	if err == nil {
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Println("ledger mirror guard check failed:", err)
		return
	}

	var payments []model.Payment
	if err := db.Find(&payments).Error; err != nil {
		log.Println("ledger mirror failed to load payments:", err)
		return
	}

	for _, p := range payments {
		row := model.AccountingTransaction{
			Date:           p.PaymentDate,
			Type:           model.TxIncome,
			Category:       "booking_payment",
			Description:    "Mirrored from receipt " + p.ReceiptNo,
			Amount:         p.Total(),
			AddedBy:        "migration",
			ReferenceCode:  p.ReceiptNo,
			EventSessionID: p.EventSessionID,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Println("ledger mirror failed for receipt", p.ReceiptNo, "error:", err)
		}
	}

	marker := model.AccountingTransaction{
		Date:          time.Now(),
		Type:          model.TxIncome,
		Category:      "migration",
		Description:   "payments mirrored into ledger",
		Amount:        0,
		AddedBy:       "migration",
		ReferenceCode: guardCode,
	}
	if err := db.Create(&marker).Error; err != nil {
		log.Println("ledger mirror guard insert failed:", err)
	}
}
