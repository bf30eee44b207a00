package helper

import (
	"github.com/achalesh/exhibition-manager-sub001/model"

	"gorm.io/gorm"
)

// AdjustBookingDue shifts a booking's denormalized due balance by delta.
// Positive for new charges, negative for payments and reversals.
func AdjustBookingDue(tx *gorm.DB, bookingID uint, delta float64) error {
	return tx.Model(&model.Booking{}).
		Where("id = ?", bookingID).
		Update("due_amount", gorm.Expr("due_amount + ?", delta)).Error
}

// ActiveBookingForClient finds the client's active booking in a session.
func ActiveBookingForClient(db *gorm.DB, clientID, sessionID uint) (*model.Booking, error) {
	var booking model.Booking
	err := db.Preload("Space").Preload("Client").
		Where("client_id = ? AND event_session_id = ? AND booking_status = ?", clientID, sessionID, model.BookingActive).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
