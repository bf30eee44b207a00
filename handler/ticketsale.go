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

func GetTicketSales(c *fiber.Ctx) error {
	var filter model.FilterTicketSale
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
	}

	scope := helper.GetScope(c)
	query := database.DB.Model(&model.TicketSale{}).Where("event_session_id = ?", scope.ViewingID())
	if filter.Settled != nil {
		query = query.Where("settled = ?", *filter.Settled)
	}
	if filter.StartDate != nil {
		query = query.Where("sale_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("sale_date <= ?", *filter.EndDate)
	}

	var totalCount int64
	query.Count(&totalCount)

	var sales []model.TicketSale
	query = utils.ApplyPagination(query, filter.Limit, filter.Page)
	if err := query.Order("sale_date DESC").Find(&sales).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       sales,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func CreateTicketSale(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateTicketSaleInput)
	scope := helper.GetScope(c)

	saleDate, err := time.Parse("2006-01-02", input.SaleDate)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Sale date must be YYYY-MM-DD", err)
	}

	sale := model.TicketSale{
		SellerName:     input.SellerName,
		SaleDate:       saleDate,
		TicketsSold:    input.TicketsSold,
		UnitPrice:      input.UnitPrice,
		TotalAmount:    utils.Round2(float64(input.TicketsSold) * input.UnitPrice),
		EventSessionID: scope.ActiveID(),
	}
	if err := database.DB.Create(&sale).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, sale)
}

// SettleTicketSale closes a seller's sheet and mirrors the take into the
// ledger as gate-ticket income. A sheet settles once.
func SettleTicketSale(c *fiber.Ctx) error {
	saleId := c.Locals("inputId").(int)
	accountInfo, _ := helper.GetInfoAccountFromToken(c)

	tx := database.DB.Begin()

	var sale model.TicketSale
	if err := tx.First(&sale, saleId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Ticket sheet not found", err)
	}
	if sale.Settled {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.TICKET_SHEET_SETTLED, nil)
	}

	now := time.Now()
	if err := tx.Model(&sale).Updates(map[string]interface{}{
		"settled":    true,
		"settled_at": now,
		"settled_by": accountInfo.AccountId,
	}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	ledger := model.AccountingTransaction{
		Date:           now,
		Type:           model.TxIncome,
		Category:       "gate_tickets",
		Description:    "Ticket settlement for " + sale.SellerName + " (" + sale.SaleDate.Format("2006-01-02") + ")",
		Amount:         sale.TotalAmount,
		AddedBy:        accountInfo.Username,
		EventSessionID: sale.EventSessionID,
	}
	if err := tx.Create(&ledger).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, sale)
}

func DeleteTicketSale(c *fiber.Ctx) error {
	saleId := c.Locals("inputId").(int)

	var sale model.TicketSale
	if err := database.DB.First(&sale, saleId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Ticket sheet not found", err)
	}
	if sale.Settled {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.TICKET_SHEET_SETTLED, nil)
	}

	if err := database.DB.Delete(&sale).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "ticket sheet deleted"})
}
