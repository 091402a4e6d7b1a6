package domain

import (
	"context"

	"oceandesk/internal/models"
)

// TokenStore is the single durable slot holding the session token. An empty
// string means no token is stored. Reads are done by the gateway, writes by
// the session controller only.
type TokenStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// Notifier shows transient one-line status messages.
type Notifier interface {
	Success(message string)
	Error(message string)
}

type EventPublisher interface {
	PublishJSON(eventType string, payload interface{}) error
}

// ReservationAPI is the typed view of the reservation server consumed by the
// session controller and the view controllers. Every method either returns a
// decoded payload or fails with a single human-readable error message.
type ReservationAPI interface {
	Rates(ctx context.Context) ([]models.Rate, error)
	Help(ctx context.Context) (string, error)
	Me(ctx context.Context) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context) error
	CreateReservation(ctx context.Context, req models.ReservationRequest) (string, error)
	Reservation(ctx context.Context, number string) (*models.Reservation, error)
	Bill(ctx context.Context, number string) (*models.Bill, error)
}
