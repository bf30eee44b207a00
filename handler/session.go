package handler

import (
	"time"

	"github.com/achalesh/exhibition-manager-sub001/constants"
	"github.com/achalesh/exhibition-manager-sub001/database"
	"github.com/achalesh/exhibition-manager-sub001/helper"
	"github.com/achalesh/exhibition-manager-sub001/model"
	"github.com/achalesh/exhibition-manager-sub001/utils"

	"github.com/gofiber/fiber/v2"
)

func GetEventSessions(c *fiber.Ctx) error {
	var sessions []model.EventSession
	if err := database.DB.Order("start_date DESC").Find(&sessions).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	scope := helper.GetScope(c)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"sessions":         sessions,
		"activeSessionId":  scope.ActiveID(),
		"viewingSessionId": scope.ViewingID(),
	})
}

func CreateEventSession(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateEventSessionInput)

	start, _ := time.Parse("2006-01-02", input.StartDate)
	end, _ := time.Parse("2006-01-02", input.EndDate)

	session := model.EventSession{
		Name:      input.Name,
		Location:  input.Location,
		StartDate: start,
		EndDate:   end,
		IsActive:  false,
	}
	if err := database.DB.Create(&session).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, session)
}

func EditEventSession(c *fiber.Ctx) error {
	input := c.Locals("input").(model.EditEventSessionInput)
	sessionId := c.Locals("inputId").(int)

	var session model.EventSession
	if err := database.DB.First(&session, sessionId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SESSION_NOT_FOUND, err)
	}

	if input.Name != nil {
		session.Name = *input.Name
	}
	if input.Location != nil {
		session.Location = *input.Location
	}
	if input.StartDate != nil {
		session.StartDate, _ = time.Parse("2006-01-02", *input.StartDate)
	}
	if input.EndDate != nil {
		session.EndDate, _ = time.Parse("2006-01-02", *input.EndDate)
	}

	if err := database.DB.Save(&session).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, session)
}

// ActivateEventSession makes one session the write target; all others are
// flipped off in the same transaction so exactly one stays active.
func ActivateEventSession(c *fiber.Ctx) error {
	sessionId := c.Locals("inputId").(int)

	var session model.EventSession
	if err := database.DB.First(&session, sessionId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SESSION_NOT_FOUND, err)
	}

	tx := database.DB.Begin()
	if err := tx.Model(&model.EventSession{}).Where("is_active = ?", true).Update("is_active", false).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Model(&session).Update("is_active", true).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, session)
}

func DeleteEventSession(c *fiber.Ctx) error {
	sessionId := c.Locals("inputId").(int)

	var session model.EventSession
	if err := database.DB.First(&session, sessionId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SESSION_NOT_FOUND, err)
	}
	if session.IsActive {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Cannot delete the active session", nil)
	}

	var bookingCount int64
	database.DB.Model(&model.Booking{}).Where("event_session_id = ?", session.ID).Count(&bookingCount)
	if bookingCount > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Session has bookings and cannot be deleted", nil)
	}

	if err := database.DB.Delete(&session).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "session deleted"})
}
