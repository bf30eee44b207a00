package handler

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/achalesh/exhibition-manager-sub001/constants"
	"github.com/achalesh/exhibition-manager-sub001/database"
	"github.com/achalesh/exhibition-manager-sub001/helper"
	"github.com/achalesh/exhibition-manager-sub001/model"
	"github.com/achalesh/exhibition-manager-sub001/utils"

	"github.com/gofiber/fiber/v2"
)

func GetStockItems(c *fiber.Ctx) error {
	var filter model.FilterStock
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
	}

	scope := helper.GetScope(c)
	query := database.DB.Model(&model.MaterialStockItem{}).
		Preload("IssuedToClient").
		Where("event_session_id = ?", scope.ViewingID())
	if filter.SearchKey != "" {
		like := "%" + filter.SearchKey + "%"
		query = query.Where("name ILIKE ? OR unique_id ILIKE ?", like, like)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.ClientID != nil {
		query = query.Where("issued_to_client_id = ?", *filter.ClientID)
	}

	var totalCount int64
	query.Count(&totalCount)

	var items []model.MaterialStockItem
	query = utils.ApplyPagination(query, filter.Limit, filter.Page)
	if err := query.Order("unique_id").Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       items,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func GetStockItemByUniqueId(c *fiber.Ctx) error {
	uniqueId := strings.ToUpper(strings.TrimSpace(c.Params("uniqueId")))

	var item model.MaterialStockItem
	if err := database.DB.Preload("IssuedToClient").Preload("History").
		Where("unique_id = ?", uniqueId).First(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ITEM_NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

// CreateStock bulk-creates quantity items with sequential IDs and one QR
// PNG each.
func CreateStock(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateStockInput)
	scope := helper.GetScope(c)

	items, err := helper.CreateStockItems(database.DB, scope.ActiveID(), input.Name, input.LocationCode, input.Quantity)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, items)
}

// ImportStockCSV ingests a CSV upload with header name,location_code,quantity
// and bulk-creates each row. Bad rows are skipped and reported back.
func ImportStockCSV(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "CSV file is required", err)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
	}
	defer file.Close()

	scope := helper.GetScope(c)
	reader := csv.NewReader(file)

	created := 0
	skipped := []int{}
	line := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil || len(row) < 3 {
			skipped = append(skipped, line)
			continue
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(row[0]), "name") {
			continue
		}

		name := strings.TrimSpace(row[0])
		locationCode := strings.TrimSpace(row[1])
		quantity, convErr := strconv.Atoi(strings.TrimSpace(row[2]))
		if name == "" || len(locationCode) != 3 || convErr != nil || quantity <= 0 {
			skipped = append(skipped, line)
			continue
		}

		items, err := helper.CreateStockItems(database.DB, scope.ActiveID(), name, locationCode, quantity)
		created += len(items)
		if err != nil {
			skipped = append(skipped, line)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"created":      created,
		"skippedLines": skipped,
	})
}

func GetItemHistory(c *fiber.Ctx) error {
	itemId := c.Locals("inputId").(int)

	var item model.MaterialStockItem
	if err := database.DB.First(&item, itemId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ITEM_NOT_FOUND, err)
	}

	var history []model.MaterialHistory
	if err := database.DB.Where("stock_item_id = ?", item.ID).
		Order("created_at DESC").Find(&history).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"item":    item,
		"history": history,
	})
}

// IssueMaterial is the scan endpoint for handing an item out.
func IssueMaterial(c *fiber.Ctx) error {
	input := c.Locals("input").(model.IssueItemInput)
	scope := helper.GetScope(c)

	uniqueId := strings.ToUpper(strings.TrimSpace(input.UniqueID))
	event, err := helper.IssueItem(database.DB, uniqueId, input.ClientID, scope.ActiveID())
	if err != nil {
		switch {
		case errors.Is(err, helper.ErrItemNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ITEM_NOT_FOUND, err)
		case errors.Is(err, helper.ErrItemNotAvailable):
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.ITEM_NOT_AVAILABLE, err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	PublishScanEvent(event)
	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

// ReturnMaterial is the scan endpoint for taking an item back.
func ReturnMaterial(c *fiber.Ctx) error {
	input := c.Locals("input").(model.ReturnItemInput)
	scope := helper.GetScope(c)

	uniqueId := strings.ToUpper(strings.TrimSpace(input.UniqueID))
	event, err := helper.ReturnItem(database.DB, uniqueId, input.Status, scope.ActiveID())
	if err != nil {
		switch {
		case errors.Is(err, helper.ErrItemNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ITEM_NOT_FOUND, err)
		case errors.Is(err, helper.ErrItemNotIssued):
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.ITEM_NOT_ISSUED, err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	PublishScanEvent(event)
	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

func GetIssueRecords(c *fiber.Ctx) error {
	scope := helper.GetScope(c)

	query := database.DB.Model(&model.MaterialIssueRecord{}).
		Preload("Client").
		Where("event_session_id = ?", scope.ViewingID())
	if clientId := c.QueryInt("clientId"); clientId > 0 {
		query = query.Where("client_id = ?", clientId)
	}
	if date := c.Query("date"); date != "" {
		query = query.Where("issue_date = ?", date)
	}

	var records []model.MaterialIssueRecord
	if err := query.Order("issue_date DESC").Find(&records).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, records)
}

// DeleteStockItems writes items off the register. Issued items stay put
// until returned; QR PNGs go with the rows.
func DeleteStockItems(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	var items []model.MaterialStockItem
	if err := database.DB.Where("id IN ?", input.IDs).Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	for _, item := range items {
		if item.Status == model.ItemIssued {
			return utils.ErrorResponse(c, fiber.StatusConflict, "Issued items must be returned before deletion", nil)
		}
	}

	if err := database.DB.Delete(&model.MaterialStockItem{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	for _, item := range items {
		utils.RemoveQRCode(item.UniqueID)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(items)})
}

func GetStockSummary(c *fiber.Ctx) error {
	scope := helper.GetScope(c)

	rows, err := utils.GetStockSummary(database.DB, scope.ViewingID())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rows)
}
