package handler

import (
	"time"

	"github.com/achalesh/exhibition-manager-sub001/constants"
	"github.com/achalesh/exhibition-manager-sub001/database"
	"github.com/achalesh/exhibition-manager-sub001/helper"
	"github.com/achalesh/exhibition-manager-sub001/model"
	"github.com/achalesh/exhibition-manager-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetSheds(c *fiber.Ctx) error {
	scope := helper.GetScope(c)

	var sheds []model.Shed
	query := database.DB.Where("event_session_id = ?", scope.ViewingID())
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("number").Find(&sheds).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, sheds)
}

func CreateShed(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateShedInput)
	scope := helper.GetScope(c)

	var shed model.Shed
	copier.Copy(&shed, &input)
	shed.Status = model.ShedAvailable
	shed.EventSessionID = scope.ActiveID()

	if err := database.DB.Create(&shed).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, shed)
}

func DeleteShed(c *fiber.Ctx) error {
	shedId := c.Locals("inputId").(int)

	var shed model.Shed
	if err := database.DB.First(&shed, shedId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Shed not found", err)
	}
	if shed.Status == model.ShedAllocated {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Allocated sheds cannot be deleted", nil)
	}

	if err := database.DB.Delete(&shed).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "shed deleted"})
}

func GetShedAllocations(c *fiber.Ctx) error {
	scope := helper.GetScope(c)

	var allocations []model.ShedAllocation
	query := database.DB.Where("event_session_id = ?", scope.ViewingID())
	if bookingId := c.QueryInt("bookingId"); bookingId > 0 {
		query = query.Where("booking_id = ?", bookingId)
	}
	if err := query.Order("created_at DESC").Find(&allocations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, allocations)
}

// CreateShedAllocation assigns a shed to a booking and adds the shed rent
// to the booking due balance.
func CreateShedAllocation(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateShedAllocationInput)
	scope := helper.GetScope(c)

	tx := database.DB.Begin()

	var booking model.Booking
	if err := tx.First(&booking, input.BookingID).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
	}

	var shed model.Shed
	if err := tx.First(&shed, input.ShedID).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Shed not found", err)
	}
	if shed.Status != model.ShedAvailable {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusConflict, "Shed is already allocated", nil)
	}

	rent := shed.Rate
	if input.Rent != nil {
		rent = *input.Rent
	}

	allocation := model.ShedAllocation{
		BookingID:      input.BookingID,
		ShedID:         input.ShedID,
		Rent:           rent,
		EventSessionID: scope.ActiveID(),
	}
	if err := tx.Create(&allocation).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Model(&shed).Update("status", model.ShedAllocated).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := helper.AdjustBookingDue(tx, booking.ID, rent); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, allocation)
}

// DeleteShedAllocation releases the shed and reverses the rent charge.
func DeleteShedAllocation(c *fiber.Ctx) error {
	allocationId := c.Locals("inputId").(int)

	tx := database.DB.Begin()

	var allocation model.ShedAllocation
	if err := tx.First(&allocation, allocationId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Shed allocation not found", err)
	}

	if err := tx.Delete(&allocation).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Model(&model.Shed{}).Where("id = ?", allocation.ShedID).Update("status", model.ShedAvailable).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := helper.AdjustBookingDue(tx, allocation.BookingID, -allocation.Rent); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "shed allocation removed"})
}

func GetShedBills(c *fiber.Ctx) error {
	scope := helper.GetScope(c)

	var bills []model.ShedBill
	query := database.DB.Where("event_session_id = ?", scope.ViewingID())
	if bookingId := c.QueryInt("bookingId"); bookingId > 0 {
		query = query.Where("booking_id = ?", bookingId)
	}
	if err := query.Order("bill_date DESC").Find(&bills).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, bills)
}

func CreateShedBill(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateShedBillInput)
	scope := helper.GetScope(c)

	billDate := time.Now()
	if input.BillDate != "" {
		if parsed, err := time.Parse("2006-01-02", input.BillDate); err == nil {
			billDate = parsed
		}
	}

	tx := database.DB.Begin()

	var booking model.Booking
	if err := tx.First(&booking, input.BookingID).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
	}

	bill := model.ShedBill{
		BookingID:      input.BookingID,
		Description:    input.Description,
		Amount:         input.Amount,
		BillDate:       billDate,
		EventSessionID: scope.ActiveID(),
	}
	if err := tx.Create(&bill).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := helper.AdjustBookingDue(tx, booking.ID, bill.Amount); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, bill)
}

func EditShedBill(c *fiber.Ctx) error {
	input := c.Locals("input").(model.EditShedBillInput)
	billId := c.Locals("inputId").(int)

	tx := database.DB.Begin()

	var bill model.ShedBill
	if err := tx.First(&bill, billId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Shed bill not found", err)
	}

	oldAmount := bill.Amount
	if input.Description != nil {
		bill.Description = *input.Description
	}
	if input.Amount != nil {
		bill.Amount = *input.Amount
	}

	if err := tx.Save(&bill).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := helper.AdjustBookingDue(tx, bill.BookingID, bill.Amount-oldAmount); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, bill)
}

func DeleteShedBill(c *fiber.Ctx) error {
	billId := c.Locals("inputId").(int)

	tx := database.DB.Begin()

	var bill model.ShedBill
	if err := tx.First(&bill, billId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Shed bill not found", err)
	}

	if err := tx.Delete(&bill).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := helper.AdjustBookingDue(tx, bill.BookingID, -bill.Amount); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "shed bill deleted"})
}
