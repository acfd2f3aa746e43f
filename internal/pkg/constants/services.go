package constants

// Internal API consumers recognized by the API key middleware
const (
	ConsumerBookingService = "booking-service"
	ConsumerAdminConsole   = "admin-console"
)
