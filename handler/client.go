package handler

import (
	"github.com/achalesh/exhibition-manager-sub001/constants"
	"github.com/achalesh/exhibition-manager-sub001/database"
	"github.com/achalesh/exhibition-manager-sub001/model"
	"github.com/achalesh/exhibition-manager-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetClients(c *fiber.Ctx) error {
	var filter model.FilterClient
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
	}

	query := database.DB.Model(&model.Client{})
	if filter.SearchKey != "" {
		like := "%" + filter.SearchKey + "%"
		query = query.Where("name ILIKE ? OR firm ILIKE ? OR phone ILIKE ?", like, like, like)
	}

	var totalCount int64
	query.Count(&totalCount)

	var clients model.Clients
	query = utils.ApplyPagination(query, filter.Limit, filter.Page)
	if err := query.Order("name").Find(&clients).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       clients,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func GetClientById(c *fiber.Ctx) error {
	clientId := c.Locals("inputId").(int)

	var client model.Client
	if err := database.DB.First(&client, clientId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CLIENT_NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, client)
}

func CreateClient(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateClientInput)

	var client model.Client
	copier.Copy(&client, &input)
	if err := database.DB.Create(&client).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, client)
}

func EditClient(c *fiber.Ctx) error {
	input := c.Locals("input").(model.EditClientInput)
	clientId := c.Locals("inputId").(int)

	var client model.Client
	if err := database.DB.First(&client, clientId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CLIENT_NOT_FOUND, err)
	}

	copier.CopyWithOption(&client, &input, copier.Option{IgnoreEmpty: true})
	if err := database.DB.Save(&client).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, client)
}

func DeleteClient(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	var bookingCount int64
	database.DB.Model(&model.Booking{}).Where("client_id IN ?", input.IDs).Count(&bookingCount)
	if bookingCount > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Client has bookings and cannot be deleted", nil)
	}

	if err := database.DB.Delete(&model.Client{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(input.IDs)})
}
