package models

const (
	ToastSuccess = "success"
	ToastError   = "error"
)

const (
	// DefaultTokenSlot имя слота в durable-хранилище для токена сессии
	DefaultTokenSlot = "token"

	// DefaultToastWindowMs окно показа уведомления до автоскрытия
	DefaultToastWindowMs = 3200

	// DefaultRequestTimeout таймаут исходящих запросов в секундах
	DefaultRequestTimeout = 10
)

// API paths of the reservation server (fixed HTTP+JSON contract).
const (
	PathRates        = "/api/rates"
	PathHelp         = "/api/help"
	PathMe           = "/api/me"
	PathLogin        = "/api/login"
	PathLogout       = "/api/logout"
	PathReservations = "/api/reservations"
	PathBill         = "/api/bill"
)
