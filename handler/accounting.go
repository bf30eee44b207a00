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

func GetTransactions(c *fiber.Ctx) error {
	var filter model.FilterTransaction
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
	}

	scope := helper.GetScope(c)
	query := database.DB.Model(&model.AccountingTransaction{}).
		Where("event_session_id = ?", scope.ViewingID())
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}

	var totalCount int64
	query.Count(&totalCount)

	var transactions []model.AccountingTransaction
	query = utils.ApplyPagination(query, filter.Limit, filter.Page)
	if err := query.Order("date DESC, id DESC").Find(&transactions).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       transactions,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func CreateTransaction(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateTransactionInput)
	scope := helper.GetScope(c)
	accountInfo, _ := helper.GetInfoAccountFromToken(c)

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Date must be YYYY-MM-DD", err)
	}

	transaction := model.AccountingTransaction{
		Date:           date,
		Type:           input.Type,
		Category:       input.Category,
		Description:    input.Description,
		Amount:         input.Amount,
		AddedBy:        accountInfo.Username,
		EventSessionID: scope.ActiveID(),
	}
	if err := database.DB.Create(&transaction).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, transaction)
}

func EditTransaction(c *fiber.Ctx) error {
	input := c.Locals("input").(model.EditTransactionInput)
	transactionId := c.Locals("inputId").(int)

	var transaction model.AccountingTransaction
	if err := database.DB.First(&transaction, transactionId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Transaction not found", err)
	}
	if transaction.ReferenceCode != "" {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Mirrored transactions cannot be edited directly", nil)
	}

	if input.Date != nil {
		date, err := time.Parse("2006-01-02", *input.Date)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Date must be YYYY-MM-DD", err)
		}
		transaction.Date = date
	}
	if input.Type != nil {
		transaction.Type = *input.Type
	}
	if input.Category != nil {
		transaction.Category = *input.Category
	}
	if input.Description != nil {
		transaction.Description = *input.Description
	}
	if input.Amount != nil {
		transaction.Amount = *input.Amount
	}

	if err := database.DB.Save(&transaction).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, transaction)
}

func DeleteTransaction(c *fiber.Ctx) error {
	transactionId := c.Locals("inputId").(int)

	var transaction model.AccountingTransaction
	if err := database.DB.First(&transaction, transactionId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Transaction not found", err)
	}
	if transaction.ReferenceCode != "" {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Mirrored transactions follow their source record", nil)
	}

	if err := database.DB.Delete(&transaction).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "transaction deleted"})
}

// GetLedgerReport returns the filtered ledger with income/expenditure/net
// totals.
func GetLedgerReport(c *fiber.Ctx) error {
	rows, err := ledgerRows(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"rows":    rows,
		"summary": utils.SummarizeTransactions(rows),
	})
}

func ExportLedgerCSV(c *fiber.Ctx) error {
	rows, err := ledgerRows(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	columns := []utils.CSVColumn[model.AccountingTransaction]{
		{Header: "Date", Value: func(r model.AccountingTransaction) string { return r.Date.Format("2006-01-02") }},
		{Header: "Type", Value: func(r model.AccountingTransaction) string { return r.Type }},
		{Header: "Category", Value: func(r model.AccountingTransaction) string { return r.Category }},
		{Header: "Description", Value: func(r model.AccountingTransaction) string { return r.Description }},
		{Header: "Amount", Value: func(r model.AccountingTransaction) string { return utils.Money(r.Amount) }},
		{Header: "Added By", Value: func(r model.AccountingTransaction) string { return r.AddedBy }},
		{Header: "Reference", Value: func(r model.AccountingTransaction) string { return r.ReferenceCode }},
	}
	data, err := utils.WriteCSV(rows, columns)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SendCSV(c, "ledger.csv", data)
}

func ledgerRows(c *fiber.Ctx) ([]model.AccountingTransaction, error) {
	scope := helper.GetScope(c)

	query := database.DB.Model(&model.AccountingTransaction{}).
		Where("event_session_id = ?", scope.ViewingID())
	if txType := c.Query("type"); txType != "" {
		query = query.Where("type = ?", txType)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if start := c.Query("startDate"); start != "" {
		query = query.Where("date >= ?", start)
	}
	if end := c.Query("endDate"); end != "" {
		query = query.Where("date <= ?", end)
	}

	var rows []model.AccountingTransaction
	err := query.Order("date DESC, id DESC").Find(&rows).Error
	return rows, err
}
