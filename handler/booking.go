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
)

func GetBookings(c *fiber.Ctx) error {
	var filter model.FilterBooking
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
	}

	scope := helper.GetScope(c)
	query := database.DB.Model(&model.Booking{}).
		Preload("Client").Preload("Space").
		Where("bookings.event_session_id = ?", scope.ViewingID())
	if filter.Status != nil {
		query = query.Where("booking_status = ?", *filter.Status)
	}
	if filter.SearchKey != "" {
		like := "%" + filter.SearchKey + "%"
		query = query.Joins("JOIN clients ON clients.id = bookings.client_id").
			Where("clients.name ILIKE ? OR clients.firm ILIKE ?", like, like)
	}

	var totalCount int64
	query.Count(&totalCount)

	var bookings model.Bookings
	query = utils.ApplyPagination(query, filter.Limit, filter.Page)
	if err := query.Order("bookings.created_at DESC").Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       bookings,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func GetBookingById(c *fiber.Ctx) error {
	bookingId := c.Locals("inputId").(int)

	var booking model.Booking
	if err := database.DB.Preload("Client").Preload("Space").First(&booking, bookingId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

// CreateBooking reserves a space for a client. The initial due balance is
// rent − discount − advance; a paid advance is recorded as a rent-bucket
// payment so the aggregate reports see the same figure as the stored
// balance.
func CreateBooking(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateBookingInput)
	scope := helper.GetScope(c)
	accountInfo, _ := helper.GetInfoAccountFromToken(c)

	tx := database.DB.Begin()

	var space model.Space
	if err := tx.First(&space, input.SpaceID).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SPACE_NOT_FOUND, err)
	}
	if space.Status != model.SpaceAvailable {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.SPACE_NOT_AVAILABLE, nil)
	}

	booking := model.Booking{
		ClientID:       input.ClientID,
		SpaceID:        input.SpaceID,
		RentAmount:     input.RentAmount,
		Discount:       input.Discount,
		AdvanceAmount:  input.AdvanceAmount,
		DueAmount:      input.RentAmount - input.Discount - input.AdvanceAmount,
		BookingStatus:  model.BookingActive,
		EventSessionID: scope.ActiveID(),
	}
	if err := tx.Create(&booking).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := tx.Model(&space).Update("status", model.SpaceBooked).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.AdvanceAmount > 0 {
		now := time.Now()
		advance := model.Payment{
			BookingID:      booking.ID,
			RentAmount:     input.AdvanceAmount,
			Method:         model.PayCash,
			ReceiptNo:      "ADV-" + strings.ToUpper(uuid.New().String()[:8]),
			PaymentDate:    now,
			ReceivedBy:     accountInfo.AccountId,
			EventSessionID: scope.ActiveID(),
		}
		if err := tx.Create(&advance).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		ledger := model.AccountingTransaction{
			Date:           now,
			Type:           model.TxIncome,
			Category:       "booking_advance",
			Description:    "Advance for space " + space.Number,
			Amount:         input.AdvanceAmount,
			AddedBy:        accountInfo.Username,
			ReferenceCode:  advance.ReceiptNo,
			EventSessionID: scope.ActiveID(),
		}
		if err := tx.Create(&ledger).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, booking)
}

// EditBooking changes rent or discount and shifts the due balance by the
// resulting delta.
func EditBooking(c *fiber.Ctx) error {
	input := c.Locals("input").(model.EditBookingInput)
	bookingId := c.Locals("inputId").(int)

	tx := database.DB.Begin()

	var booking model.Booking
	if err := tx.First(&booking, bookingId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
	}

	oldCharge := booking.RentAmount - booking.Discount
	if input.RentAmount != nil {
		booking.RentAmount = *input.RentAmount
	}
	if input.Discount != nil {
		booking.Discount = *input.Discount
	}
	newCharge := booking.RentAmount - booking.Discount
	booking.DueAmount += newCharge - oldCharge

	if err := tx.Save(&booking).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func CancelBooking(c *fiber.Ctx) error {
	bookingId := c.Locals("inputId").(int)

	tx := database.DB.Begin()

	var booking model.Booking
	if err := tx.First(&booking, bookingId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
	}
	if booking.BookingStatus == model.BookingCancelled {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusConflict, "Booking already cancelled", nil)
	}

	if err := tx.Model(&booking).Update("booking_status", model.BookingCancelled).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Model(&model.Space{}).Where("id = ?", booking.SpaceID).Update("status", model.SpaceAvailable).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "booking cancelled"})
}

func GetElectricBills(c *fiber.Ctx) error {
	scope := helper.GetScope(c)

	var bills []model.ElectricBill
	query := database.DB.Where("event_session_id = ?", scope.ViewingID())
	if bookingId := c.QueryInt("bookingId"); bookingId > 0 {
		query = query.Where("booking_id = ?", bookingId)
	}
	if err := query.Order("created_at DESC").Find(&bills).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, bills)
}

func CreateElectricBill(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateElectricBillInput)
	scope := helper.GetScope(c)

	tx := database.DB.Begin()

	var booking model.Booking
	if err := tx.First(&booking, input.BookingID).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
	}

	bill := model.ElectricBill{
		BookingID:      input.BookingID,
		Units:          input.Units,
		Rate:           input.Rate,
		TotalAmount:    utils.Round2(input.Units * input.Rate),
		EventSessionID: scope.ActiveID(),
	}
	if err := tx.Create(&bill).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := helper.AdjustBookingDue(tx, booking.ID, bill.TotalAmount); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, bill)
}

func EditElectricBill(c *fiber.Ctx) error {
	input := c.Locals("input").(model.EditElectricBillInput)
	billId := c.Locals("inputId").(int)

	tx := database.DB.Begin()

	var bill model.ElectricBill
	if err := tx.First(&bill, billId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Electric bill not found", err)
	}

	oldTotal := bill.TotalAmount
	if input.Units != nil {
		bill.Units = *input.Units
	}
	if input.Rate != nil {
		bill.Rate = *input.Rate
	}
	bill.TotalAmount = utils.Round2(bill.Units * bill.Rate)

	if err := tx.Save(&bill).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := helper.AdjustBookingDue(tx, bill.BookingID, bill.TotalAmount-oldTotal); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, bill)
}

func DeleteElectricBill(c *fiber.Ctx) error {
	billId := c.Locals("inputId").(int)

	tx := database.DB.Begin()

	var bill model.ElectricBill
	if err := tx.First(&bill, billId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Electric bill not found", err)
	}

	if err := tx.Delete(&bill).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := helper.AdjustBookingDue(tx, bill.BookingID, -bill.TotalAmount); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "electric bill deleted"})
}
