package handler

import (
	"github.com/achalesh/exhibition-manager-sub001/constants"
	"github.com/achalesh/exhibition-manager-sub001/database"
	"github.com/achalesh/exhibition-manager-sub001/helper"
	"github.com/achalesh/exhibition-manager-sub001/model"
	"github.com/achalesh/exhibition-manager-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetSpaces(c *fiber.Ctx) error {
	var filter model.FilterSpace
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
	}

	scope := helper.GetScope(c)
	query := database.DB.Model(&model.Space{}).Where("event_session_id = ?", scope.ViewingID())
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var totalCount int64
	query.Count(&totalCount)

	var spaces model.Spaces
	query = utils.ApplyPagination(query, filter.Limit, filter.Page)
	if err := query.Order("number").Find(&spaces).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       spaces,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func CreateSpace(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateSpaceInput)
	scope := helper.GetScope(c)

	var space model.Space
	copier.Copy(&space, &input)
	space.Status = model.SpaceAvailable
	space.EventSessionID = scope.ActiveID()

	if err := database.DB.Create(&space).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, space)
}

func EditSpace(c *fiber.Ctx) error {
	input := c.Locals("input").(model.EditSpaceInput)
	spaceId := c.Locals("inputId").(int)

	var space model.Space
	if err := database.DB.First(&space, spaceId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SPACE_NOT_FOUND, err)
	}

	copier.CopyWithOption(&space, &input, copier.Option{IgnoreEmpty: true})
	if err := database.DB.Save(&space).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, space)
}

func DeleteSpace(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	var bookedCount int64
	database.DB.Model(&model.Space{}).
		Where("id IN ? AND status = ?", input.IDs, model.SpaceBooked).
		Count(&bookedCount)
	if bookedCount > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Booked spaces cannot be deleted", nil)
	}

	if err := database.DB.Delete(&model.Space{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(input.IDs)})
}
