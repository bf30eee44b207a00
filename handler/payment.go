package handler

import (
	"strings"
	"time"

	"github.com/achalesh/exhibition-manager-sub001/constants"
	"github.com/achalesh/exhibition-manager-sub001/database"
	"github.com/achalesh/exhibition-manager-sub001/helper"
	"github.com/achalesh/exhibition-manager-sub001/model"
	"github.com/achalesh/exhibition-manager-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func GetPayments(c *fiber.Ctx) error {
	var filter model.FilterPayment
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
	}

	scope := helper.GetScope(c)
	query := database.DB.Model(&model.Payment{}).Where("event_session_id = ?", scope.ViewingID())
	if filter.BookingID != nil {
		query = query.Where("booking_id = ?", *filter.BookingID)
	}
	if filter.Method != nil {
		query = query.Where("method = ?", *filter.Method)
	}
	if filter.StartDate != nil {
		query = query.Where("payment_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("payment_date <= ?", *filter.EndDate)
	}

	var totalCount int64
	query.Count(&totalCount)

	var payments []model.Payment
	query = utils.ApplyPagination(query, filter.Limit, filter.Page)
	if err := query.Order("payment_date DESC").Find(&payments).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       payments,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

// CreatePayment records a bucketed receipt against a booking: the booking
// due drops by the grand total, a mirrored income row lands in the ledger,
// the material bucket pays down outstanding issue-record balances, and the
// client gets a receipt email.
func CreatePayment(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreatePaymentInput)
	scope := helper.GetScope(c)
	accountInfo, _ := helper.GetInfoAccountFromToken(c)

	tx := database.DB.Begin()

	var booking model.Booking
	if err := tx.Preload("Client").Preload("Space").First(&booking, input.BookingID).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
	}

	now := time.Now()
	payment := model.Payment{
		BookingID:      input.BookingID,
		RentAmount:     input.RentAmount,
		ElectricAmount: input.ElectricAmount,
		MaterialAmount: input.MaterialAmount,
		ShedAmount:     input.ShedAmount,
		Method:         input.Method,
		ReceiptNo:      "RCP-" + strings.ToUpper(uuid.New().String()[:8]),
		PaymentDate:    now,
		ReceivedBy:     accountInfo.AccountId,
		EventSessionID: scope.ActiveID(),
	}
	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := helper.AdjustBookingDue(tx, booking.ID, -payment.Total()); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if payment.MaterialAmount > 0 {
		if err := settleMaterialBalances(tx, booking.ClientID, scope.ActiveID(), payment.MaterialAmount); err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	ledger := model.AccountingTransaction{
		Date:           now,
		Type:           model.TxIncome,
		Category:       "booking_payment",
		Description:    "Payment from " + booking.Client.Name + " for space " + booking.Space.Number,
		Amount:         payment.Total(),
		AddedBy:        accountInfo.Username,
		ReferenceCode:  payment.ReceiptNo,
		EventSessionID: scope.ActiveID(),
	}
	if err := tx.Create(&ledger).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	utils.SendReceiptEmail(booking.Client.Email, utils.ReceiptEmailData{
		ClientName:  booking.Client.Name,
		ReceiptNo:   payment.ReceiptNo,
		SpaceNumber: booking.Space.Number,
		Rent:        payment.RentAmount,
		Electric:    payment.ElectricAmount,
		Material:    payment.MaterialAmount,
		Shed:        payment.ShedAmount,
		Total:       payment.Total(),
		Method:      payment.Method,
		PaidAt:      now.Format("02 Jan 2006 15:04"),
	})

	return utils.SuccessResponse(c, fiber.StatusCreated, payment)
}

// settleMaterialBalances pays outstanding issue-record balances for the
// client oldest-first until the bucket amount runs out.
func settleMaterialBalances(tx *gorm.DB, clientID, sessionID uint, amount float64) error {
	var records []model.MaterialIssueRecord
	if err := tx.Where("client_id = ? AND event_session_id = ? AND balance_due > 0", clientID, sessionID).
		Order("issue_date ASC").
		Find(&records).Error; err != nil {
		return err
	}

	remaining := amount
	for i := range records {
		if remaining <= 0 {
			break
		}
		record := &records[i]
		paid := record.BalanceDue
		if paid > remaining {
			paid = remaining
		}
		record.BalanceDue = utils.Round2(record.BalanceDue - paid)
		remaining = utils.Round2(remaining - paid)
		if err := tx.Save(record).Error; err != nil {
			return err
		}
	}
	return nil
}

// DeletePayment voids a receipt: the booking due goes back up by the total
// and the mirrored ledger row is removed. Material balances are not
// re-opened.
func DeletePayment(c *fiber.Ctx) error {
	paymentId := c.Locals("inputId").(int)

	tx := database.DB.Begin()

	var payment model.Payment
	if err := tx.First(&payment, paymentId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PAYMENT_NOT_FOUND, err)
	}

	if err := tx.Delete(&payment).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := helper.AdjustBookingDue(tx, payment.BookingID, payment.Total()); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Where("reference_code = ?", payment.ReceiptNo).
		Delete(&model.AccountingTransaction{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "payment voided"})
}
