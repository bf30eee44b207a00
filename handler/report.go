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

// GetDueList serves the five due views: ?category=all|rent|electric|material|shed,
// optional ?q= filters by client name or firm.
func GetDueList(c *fiber.Ctx) error {
	scope := helper.GetScope(c)
	category := model.DueCategory(c.Query("category", string(model.DueAll)))

	rows, err := utils.GetDueRows(database.DB, scope.ViewingID(), c.Query("q"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	filtered := utils.FilterDueCategory(rows, category)

	var totalDue float64
	for _, r := range filtered {
		totalDue += dueForCategory(r, category)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"category": category,
		"rows":     filtered,
		"totalDue": utils.Round2(totalDue),
	})
}

// ExportDueListCSV writes the selected due view as a CSV attachment. The
// all view carries every bucket; category views project down to their own
// charge/paid/due triple.
func ExportDueListCSV(c *fiber.Ctx) error {
	scope := helper.GetScope(c)
	category := model.DueCategory(c.Query("category", string(model.DueAll)))

	rows, err := utils.GetDueRows(database.DB, scope.ViewingID(), c.Query("q"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	filtered := utils.FilterDueCategory(rows, category)

	data, err := utils.WriteCSV(filtered, dueColumns(category))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SendCSV(c, "due-list-"+string(category)+".csv", data)
}

func dueForCategory(r model.DueRow, category model.DueCategory) float64 {
	switch category {
	case model.DueRent:
		return r.RentDue
	case model.DueElectric:
		return r.ElectricDue
	case model.DueMaterial:
		return r.MaterialDue
	case model.DueShed:
		return r.ShedDue
	}
	return r.TotalDue
}

func dueColumns(category model.DueCategory) []utils.CSVColumn[model.DueRow] {
	base := []utils.CSVColumn[model.DueRow]{
		{Header: "Client", Value: func(r model.DueRow) string { return r.ClientName }},
		{Header: "Firm", Value: func(r model.DueRow) string { return r.Firm }},
		{Header: "Space", Value: func(r model.DueRow) string { return r.SpaceNumber }},
	}

	switch category {
	case model.DueRent:
		return append(base,
			utils.CSVColumn[model.DueRow]{Header: "Rent Charge", Value: func(r model.DueRow) string { return utils.Money(r.RentCharge) }},
			utils.CSVColumn[model.DueRow]{Header: "Rent Paid", Value: func(r model.DueRow) string { return utils.Money(r.RentPaid) }},
			utils.CSVColumn[model.DueRow]{Header: "Rent Due", Value: func(r model.DueRow) string { return utils.Money(r.RentDue) }},
		)
	case model.DueElectric:
		return append(base,
			utils.CSVColumn[model.DueRow]{Header: "Electric Charge", Value: func(r model.DueRow) string { return utils.Money(r.ElectricCharge) }},
			utils.CSVColumn[model.DueRow]{Header: "Electric Paid", Value: func(r model.DueRow) string { return utils.Money(r.ElectricPaid) }},
			utils.CSVColumn[model.DueRow]{Header: "Electric Due", Value: func(r model.DueRow) string { return utils.Money(r.ElectricDue) }},
		)
	case model.DueMaterial:
		return append(base,
			utils.CSVColumn[model.DueRow]{Header: "Material Charge", Value: func(r model.DueRow) string { return utils.Money(r.MaterialCharge) }},
			utils.CSVColumn[model.DueRow]{Header: "Material Paid", Value: func(r model.DueRow) string { return utils.Money(r.MaterialPaid) }},
			utils.CSVColumn[model.DueRow]{Header: "Material Due", Value: func(r model.DueRow) string { return utils.Money(r.MaterialDue) }},
		)
	case model.DueShed:
		return append(base,
			utils.CSVColumn[model.DueRow]{Header: "Shed Charge", Value: func(r model.DueRow) string { return utils.Money(r.ShedCharge) }},
			utils.CSVColumn[model.DueRow]{Header: "Shed Paid", Value: func(r model.DueRow) string { return utils.Money(r.ShedPaid) }},
			utils.CSVColumn[model.DueRow]{Header: "Shed Due", Value: func(r model.DueRow) string { return utils.Money(r.ShedDue) }},
		)
	}

	return append(base,
		utils.CSVColumn[model.DueRow]{Header: "Rent Due", Value: func(r model.DueRow) string { return utils.Money(r.RentDue) }},
		utils.CSVColumn[model.DueRow]{Header: "Electric Due", Value: func(r model.DueRow) string { return utils.Money(r.ElectricDue) }},
		utils.CSVColumn[model.DueRow]{Header: "Material Due", Value: func(r model.DueRow) string { return utils.Money(r.MaterialDue) }},
		utils.CSVColumn[model.DueRow]{Header: "Shed Due", Value: func(r model.DueRow) string { return utils.Money(r.ShedDue) }},
		utils.CSVColumn[model.DueRow]{Header: "Total Due", Value: func(r model.DueRow) string { return utils.Money(r.TotalDue) }},
	)
}

// GetCollectionReport lists receipts for a date range with bucket totals.
func GetCollectionReport(c *fiber.Ctx) error {
	scope := helper.GetScope(c)
	from, to := parseDateRange(c)

	rows, err := utils.GetCollectionRows(database.DB, scope.ViewingID(), from, to)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var total float64
	for _, r := range rows {
		total += r.Total
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"rows":  rows,
		"total": utils.Round2(total),
	})
}

func ExportCollectionCSV(c *fiber.Ctx) error {
	scope := helper.GetScope(c)
	from, to := parseDateRange(c)

	rows, err := utils.GetCollectionRows(database.DB, scope.ViewingID(), from, to)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	columns := []utils.CSVColumn[model.CollectionRow]{
		{Header: "Receipt", Value: func(r model.CollectionRow) string { return r.ReceiptNo }},
		{Header: "Client", Value: func(r model.CollectionRow) string { return r.ClientName }},
		{Header: "Space", Value: func(r model.CollectionRow) string { return r.SpaceNumber }},
		{Header: "Rent", Value: func(r model.CollectionRow) string { return utils.Money(r.Rent) }},
		{Header: "Electric", Value: func(r model.CollectionRow) string { return utils.Money(r.Electric) }},
		{Header: "Material", Value: func(r model.CollectionRow) string { return utils.Money(r.Material) }},
		{Header: "Shed", Value: func(r model.CollectionRow) string { return utils.Money(r.Shed) }},
		{Header: "Total", Value: func(r model.CollectionRow) string { return utils.Money(r.Total) }},
		{Header: "Method", Value: func(r model.CollectionRow) string { return r.Method }},
		{Header: "Date", Value: func(r model.CollectionRow) string { return r.PaymentDate }},
	}
	data, err := utils.WriteCSV(rows, columns)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SendCSV(c, "collections.csv", data)
}

// GetDueMismatches serves the latest reconciliation results; ?run=true
// triggers a fresh pass first.
func GetDueMismatches(c *fiber.Ctx) error {
	scope := helper.GetScope(c)

	if c.Query("run") == "true" {
		if _, err := utils.RecordDueMismatches(database.DB, scope.ViewingID()); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	var mismatches []model.DueMismatch
	if err := database.DB.Where("event_session_id = ?", scope.ViewingID()).
		Order("difference DESC").Find(&mismatches).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, mismatches)
}

func parseDateRange(c *fiber.Ctx) (*time.Time, *time.Time) {
	var from, to *time.Time
	if s := c.Query("startDate"); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			from = &t
		}
	}
	if s := c.Query("endDate"); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			end := t.Add(24*time.Hour - time.Second)
			to = &end
		}
	}
	return from, to
}
