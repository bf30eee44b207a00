package constants

const (
	ERROR_INTERNAL_ERROR     = "Internal server error"
	DATA_INPUT_IS_NOT_NUMBER = "Input is not a number"
	INVALID_INPUT            = "Invalid input"

	MISSING_LOGIN_INPUT = "Username and password are required"
	INVALID_USERNAME    = "Username does not exist"
	INVALID_PASSWORD    = "Incorrect password"
	ACCOUNT_NOT_ACTIVE  = "Account is deactivated"
	NO_PERMISSION       = "You do not have permission to perform this action"

	NO_ACTIVE_SESSION    = "No active event session"
	SESSION_NOT_FOUND    = "Event session not found"
	BOOKING_NOT_FOUND    = "Booking not found"
	CLIENT_NOT_FOUND     = "Client not found"
	SPACE_NOT_FOUND      = "Space not found"
	SPACE_NOT_AVAILABLE  = "Space is not available"
	ITEM_NOT_FOUND       = "Stock item not found"
	ITEM_NOT_AVAILABLE   = "Item is not available for issue"
	ITEM_NOT_ISSUED      = "Item is not currently issued"
	PAYMENT_NOT_FOUND    = "Payment not found"
	TICKET_SHEET_SETTLED = "Ticket sheet already settled"
)

// Account roles.
const (
	ROLE_ADMIN            = "admin"
	ROLE_ACCOUNTANT       = "accountant"
	ROLE_BOOKING_MANAGER  = "booking_manager"
	ROLE_TICKETING        = "ticketing_manager"
	ROLE_MATERIAL_HANDLER = "material_handler"
	ROLE_USER             = "user"
)
