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

func GetAccounts(c *fiber.Ctx) error {
	var filter model.FilterAccount
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
	}

	db := database.DB
	query := db.Model(&model.Account{})
	if filter.SearchKey != "" {
		query = query.Where("username ILIKE ? OR full_name ILIKE ?", "%"+filter.SearchKey+"%", "%"+filter.SearchKey+"%")
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}
	if filter.Role != nil {
		query = query.Where("role = ?", *filter.Role)
	}

	var totalCount int64
	query.Count(&totalCount)

	var accounts model.Accounts
	query = utils.ApplyPagination(query, filter.Limit, filter.Page)
	if err := query.Order("username").Find(&accounts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       accounts,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func CreateAccount(c *fiber.Ctx) error {
	accountInput := c.Locals("input").(model.CreateAccountInput)

	hash, err := helper.HashPassword(accountInput.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var newAccount model.Account
	copier.Copy(&newAccount, &accountInput)
	newAccount.Password = hash
	newAccount.Active = true

	if err := database.DB.Create(&newAccount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newAccount)
}

func UpdateAccount(c *fiber.Ctx) error {
	accountInput := c.Locals("input").(model.UpdateAccountInput)
	accountId := c.Locals("inputId").(int)

	var account model.Account
	if err := database.DB.First(&account, accountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Account not found", err)
	}

	copier.CopyWithOption(&account, &accountInput, copier.Option{IgnoreEmpty: true})
	if err := database.DB.Save(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, account)
}

func AdminChangePassword(c *fiber.Ctx) error {
	input := c.Locals("input").(model.AdminChangePassword)

	var account model.Account
	if err := database.DB.First(&account, input.AccountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Account not found", err)
	}

	hash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Model(&account).Update("password", hash).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "password updated"})
}

func ActiveAccount(c *fiber.Ctx) error {
	accountId := c.Locals("inputId").(int)
	isActive := c.Params("isActive") == "true"

	var account model.Account
	if err := database.DB.First(&account, accountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Account not found", err)
	}

	if err := database.DB.Model(&account).Update("active", isActive).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, account)
}
