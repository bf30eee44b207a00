package router

import (
	"github.com/achalesh/exhibition-manager-sub001/constants"
	"github.com/achalesh/exhibition-manager-sub001/handler"
	"github.com/achalesh/exhibition-manager-sub001/middleware"
	"github.com/achalesh/exhibition-manager-sub001/utils"
	"github.com/achalesh/exhibition-manager-sub001/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	app.Static("/qrcodes", "./"+utils.QRDir)
	app.Get("/ws/scans/:sessionId", handler.ScanFeed)

	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Get("/me", middleware.Protected(), handler.Me)

	account := v1.Group("/account", logger.New(), middleware.Protected(), middleware.IsAdmin())
	account.Get("/", handler.GetAccounts)
	account.Post("/", validate.CreateAccount(), handler.CreateAccount)
	account.Put("/:accountId", validate.UpdateAccount("accountId"), handler.UpdateAccount)
	account.Post("/change-password", validate.AdminChangePassword(), handler.AdminChangePassword)
	account.Patch("/:accountId/active/:isActive", validate.GetById("accountId"), handler.ActiveAccount)

	session := v1.Group("/session", logger.New(), middleware.Protected(), middleware.SessionScope())
	session.Get("/", handler.GetEventSessions)
	session.Post("/", middleware.IsAdmin(), validate.CreateEventSession(), handler.CreateEventSession)
	session.Put("/:sessionId", middleware.IsAdmin(), validate.EditEventSession("sessionId"), handler.EditEventSession)
	session.Patch("/:sessionId/activate", middleware.IsAdmin(), validate.GetById("sessionId"), handler.ActivateEventSession)
	session.Delete("/:sessionId", middleware.IsAdmin(), validate.GetById("sessionId"), handler.DeleteEventSession)

	client := v1.Group("/client", logger.New(), middleware.Protected())
	client.Get("/", handler.GetClients)
	client.Get("/:clientId", validate.GetById("clientId"), handler.GetClientById)
	client.Post("/", middleware.RequireRole(constants.ROLE_BOOKING_MANAGER), validate.CreateClient(), handler.CreateClient)
	client.Put("/:clientId", middleware.RequireRole(constants.ROLE_BOOKING_MANAGER), validate.EditClient("clientId"), handler.EditClient)
	client.Delete("/", middleware.IsAdmin(), validate.Delete(), handler.DeleteClient)

	space := v1.Group("/space", logger.New(), middleware.Protected(), middleware.SessionScope())
	space.Get("/", handler.GetSpaces)
	space.Post("/", middleware.RequireRole(constants.ROLE_BOOKING_MANAGER), middleware.RequireActiveSession(), validate.CreateSpace(), handler.CreateSpace)
	space.Put("/:spaceId", middleware.RequireRole(constants.ROLE_BOOKING_MANAGER), validate.EditSpace("spaceId"), handler.EditSpace)
	space.Delete("/", middleware.IsAdmin(), validate.Delete(), handler.DeleteSpace)

	shed := v1.Group("/shed", logger.New(), middleware.Protected(), middleware.SessionScope())
	shed.Get("/", handler.GetSheds)
	shed.Post("/", middleware.RequireRole(constants.ROLE_BOOKING_MANAGER), middleware.RequireActiveSession(), validate.CreateShed(), handler.CreateShed)
	shed.Delete("/:shedId", middleware.IsAdmin(), validate.GetById("shedId"), handler.DeleteShed)
	shed.Get("/allocation", handler.GetShedAllocations)
	shed.Post("/allocation", middleware.RequireRole(constants.ROLE_BOOKING_MANAGER), middleware.RequireActiveSession(), validate.CreateShedAllocation(), handler.CreateShedAllocation)
	shed.Delete("/allocation/:allocationId", middleware.RequireRole(constants.ROLE_BOOKING_MANAGER), validate.GetById("allocationId"), handler.DeleteShedAllocation)
	shed.Get("/bill", handler.GetShedBills)
	shed.Post("/bill", middleware.RequireRole(constants.ROLE_BOOKING_MANAGER, constants.ROLE_ACCOUNTANT), middleware.RequireActiveSession(), validate.CreateShedBill(), handler.CreateShedBill)
	shed.Put("/bill/:billId", middleware.RequireRole(constants.ROLE_BOOKING_MANAGER, constants.ROLE_ACCOUNTANT), validate.EditShedBill("billId"), handler.EditShedBill)
	shed.Delete("/bill/:billId", middleware.RequireRole(constants.ROLE_BOOKING_MANAGER, constants.ROLE_ACCOUNTANT), validate.GetById("billId"), handler.DeleteShedBill)

	booking := v1.Group("/booking", logger.New(), middleware.Protected(), middleware.SessionScope())
	booking.Get("/", handler.GetBookings)
	booking.Get("/:bookingId", validate.GetById("bookingId"), handler.GetBookingById)
	booking.Post("/", middleware.RequireRole(constants.ROLE_BOOKING_MANAGER), middleware.RequireActiveSession(), validate.CreateBooking(), handler.CreateBooking)
	booking.Put("/:bookingId", middleware.RequireRole(constants.ROLE_BOOKING_MANAGER), validate.EditBooking("bookingId"), handler.EditBooking)
	booking.Patch("/:bookingId/cancel", middleware.RequireRole(constants.ROLE_BOOKING_MANAGER), validate.GetById("bookingId"), handler.CancelBooking)
	booking.Get("/electric/bills", handler.GetElectricBills)
	booking.Post("/electric", middleware.RequireRole(constants.ROLE_BOOKING_MANAGER, constants.ROLE_ACCOUNTANT), middleware.RequireActiveSession(), validate.CreateElectricBill(), handler.CreateElectricBill)
	booking.Put("/electric/:billId", middleware.RequireRole(constants.ROLE_BOOKING_MANAGER, constants.ROLE_ACCOUNTANT), validate.EditElectricBill("billId"), handler.EditElectricBill)
	booking.Delete("/electric/:billId", middleware.RequireRole(constants.ROLE_BOOKING_MANAGER, constants.ROLE_ACCOUNTANT), validate.GetById("billId"), handler.DeleteElectricBill)

	material := v1.Group("/material", logger.New(), middleware.Protected(), middleware.SessionScope())
	material.Get("/", handler.GetStockItems)
	material.Get("/summary", handler.GetStockSummary)
	material.Get("/issue-records", handler.GetIssueRecords)
	material.Get("/item/:uniqueId", handler.GetStockItemByUniqueId)
	material.Get("/:itemId/history", validate.GetById("itemId"), handler.GetItemHistory)
	material.Post("/", middleware.RequireRole(constants.ROLE_MATERIAL_HANDLER), middleware.RequireActiveSession(), validate.CreateStock(), handler.CreateStock)
	material.Post("/import", middleware.RequireRole(constants.ROLE_MATERIAL_HANDLER), middleware.RequireActiveSession(), handler.ImportStockCSV)
	material.Post("/issue", middleware.RequireRole(constants.ROLE_MATERIAL_HANDLER), middleware.RequireActiveSession(), validate.IssueItem(), handler.IssueMaterial)
	material.Post("/return", middleware.RequireRole(constants.ROLE_MATERIAL_HANDLER), middleware.RequireActiveSession(), validate.ReturnItem(), handler.ReturnMaterial)
	material.Delete("/", middleware.IsAdmin(), validate.Delete(), handler.DeleteStockItems)

	payment := v1.Group("/payment", logger.New(), middleware.Protected(), middleware.SessionScope())
	payment.Get("/", handler.GetPayments)
	payment.Post("/", middleware.RequireRole(constants.ROLE_ACCOUNTANT), middleware.RequireActiveSession(), validate.CreatePayment(), handler.CreatePayment)
	payment.Delete("/:paymentId", middleware.IsAdmin(), validate.GetById("paymentId"), handler.DeletePayment)

	accounting := v1.Group("/accounting", logger.New(), middleware.Protected(), middleware.SessionScope())
	accounting.Get("/", middleware.RequireRole(constants.ROLE_ACCOUNTANT), handler.GetTransactions)
	accounting.Post("/", middleware.RequireRole(constants.ROLE_ACCOUNTANT), middleware.RequireActiveSession(), validate.CreateTransaction(), handler.CreateTransaction)
	accounting.Put("/:transactionId", middleware.RequireRole(constants.ROLE_ACCOUNTANT), validate.EditTransaction("transactionId"), handler.EditTransaction)
	accounting.Delete("/:transactionId", middleware.IsAdmin(), validate.GetById("transactionId"), handler.DeleteTransaction)
	accounting.Get("/report", middleware.RequireRole(constants.ROLE_ACCOUNTANT), handler.GetLedgerReport)
	accounting.Get("/report/csv", middleware.RequireRole(constants.ROLE_ACCOUNTANT), handler.ExportLedgerCSV)

	ticket := v1.Group("/ticket-sale", logger.New(), middleware.Protected(), middleware.SessionScope())
	ticket.Get("/", handler.GetTicketSales)
	ticket.Post("/", middleware.RequireRole(constants.ROLE_TICKETING), middleware.RequireActiveSession(), validate.CreateTicketSale(), handler.CreateTicketSale)
	ticket.Patch("/:saleId/settle", middleware.RequireRole(constants.ROLE_ACCOUNTANT), validate.GetById("saleId"), handler.SettleTicketSale)
	ticket.Delete("/:saleId", middleware.RequireRole(constants.ROLE_TICKETING, constants.ROLE_ACCOUNTANT), validate.GetById("saleId"), handler.DeleteTicketSale)

	report := v1.Group("/report", logger.New(), middleware.Protected(), middleware.SessionScope())
	report.Get("/due", handler.GetDueList)
	report.Get("/due/csv", handler.ExportDueListCSV)
	report.Get("/due/mismatches", middleware.RequireRole(constants.ROLE_ACCOUNTANT), handler.GetDueMismatches)
	report.Get("/collection", middleware.RequireRole(constants.ROLE_ACCOUNTANT), handler.GetCollectionReport)
	report.Get("/collection/csv", middleware.RequireRole(constants.ROLE_ACCOUNTANT), handler.ExportCollectionCSV)
}
