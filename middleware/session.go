package middleware

import (
	"errors"
	"strconv"

	"github.com/achalesh/exhibition-manager-sub001/constants"
	"github.com/achalesh/exhibition-manager-sub001/database"
	"github.com/achalesh/exhibition-manager-sub001/model"
	"github.com/achalesh/exhibition-manager-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SessionScope resolves the write-target (active) and read-target (viewing)
// event sessions for the request and stores them as a typed
// model.SessionScope in Locals("scope"). The viewing session defaults to
// the active one and can be overridden with ?view_session_id=.
func SessionScope() fiber.Handler {
	return func(c *fiber.Ctx) error {
		db := database.DB

		var active model.EventSession
		err := db.Where("is_active = ?", true).First(&active).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		scope := model.SessionScope{}
		if err == nil {
			scope.Active = &active
			scope.Viewing = &active
		}

		if viewParam := c.Query("view_session_id"); viewParam != "" {
			viewID, convErr := strconv.Atoi(viewParam)
			if convErr != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, convErr)
			}
			var viewing model.EventSession
			if err := db.First(&viewing, viewID).Error; err != nil {
				return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SESSION_NOT_FOUND, err)
			}
			scope.Viewing = &viewing
		}

		c.Locals("scope", scope)
		return c.Next()
	}
}

// RequireActiveSession rejects writes when no session is active.
func RequireActiveSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		scope, ok := c.Locals("scope").(model.SessionScope)
		if !ok || scope.Active == nil {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.NO_ACTIVE_SESSION, nil)
		}
		return c.Next()
	}
}
