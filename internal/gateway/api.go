package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"oceandesk/internal/models"
)

// API is the typed layer over Client. It owns request serialization and
// picks typed fields out of decoded payloads, rejecting responses whose
// numeric fields are not actually numeric.
type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

func (a *API) Rates(ctx context.Context) ([]models.Rate, error) {
	data, err := a.client.JSON(ctx, models.PathRates, Options{})
	if err != nil {
		return nil, err
	}

	var rates []models.Rate
	for _, entry := range data.Slice("rates") {
		rate, ok := entry.Number("ratePerNight")
		if !ok {
			return nil, fmt.Errorf("rate for %q is not numeric", entry.String("roomType"))
		}
		rates = append(rates, models.Rate{
			RoomType:     entry.String("roomType"),
			RatePerNight: int64(rate),
		})
	}
	return rates, nil
}

func (a *API) Help(ctx context.Context) (string, error) {
	data, err := a.client.JSON(ctx, models.PathHelp, Options{})
	if err != nil {
		return "", err
	}
	return data.String("text"), nil
}

func (a *API) Me(ctx context.Context) (string, error) {
	data, err := a.client.JSON(ctx, models.PathMe, Options{})
	if err != nil {
		return "", err
	}
	return data.String("username"), nil
}

func (a *API) Login(ctx context.Context, username, password string) (string, error) {
	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return "", err
	}

	data, err := a.client.JSON(ctx, models.PathLogin, Options{Method: http.MethodPost, Body: string(body)})
	if err != nil {
		return "", err
	}

	token := data.String("token")
	if token == "" {
		return "", errors.New("login response missing token")
	}
	return token, nil
}

func (a *API) Logout(ctx context.Context) error {
	_, err := a.client.JSON(ctx, models.PathLogout, Options{Method: http.MethodPost})
	return err
}

// CreateReservation submits a new reservation and returns the server's
// confirmation message, which may be empty.
func (a *API) CreateReservation(ctx context.Context, req models.ReservationRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	data, err := a.client.JSON(ctx, models.PathReservations, Options{Method: http.MethodPost, Body: string(body)})
	if err != nil {
		return "", err
	}
	return data.String("message"), nil
}

func (a *API) Reservation(ctx context.Context, number string) (*models.Reservation, error) {
	path := models.PathReservations + "/" + url.PathEscape(number)
	data, err := a.client.JSON(ctx, path, Options{})
	if err != nil {
		return nil, err
	}

	obj := data.Object("reservation")
	if obj == nil {
		return nil, errors.New("response missing reservation")
	}

	return &models.Reservation{
		ReservationNumber: obj.String("reservationNumber"),
		GuestName:         obj.String("guestName"),
		Address:           obj.String("address"),
		ContactNumber:     obj.String("contactNumber"),
		RoomType:          obj.String("roomType"),
		CheckIn:           obj.String("checkIn"),
		CheckOut:          obj.String("checkOut"),
	}, nil
}

func (a *API) Bill(ctx context.Context, number string) (*models.Bill, error) {
	path := models.PathBill + "/" + url.PathEscape(number)
	data, err := a.client.JSON(ctx, path, Options{})
	if err != nil {
		return nil, err
	}

	obj := data.Object("bill")
	if obj == nil {
		return nil, errors.New("response missing bill")
	}

	bill := &models.Bill{
		ReservationNumber: obj.String("reservationNumber"),
		GuestName:         obj.String("guestName"),
		RoomType:          obj.String("roomType"),
		CheckIn:           obj.String("checkIn"),
		CheckOut:          obj.String("checkOut"),
	}

	// Amounts are rendered without escaping, so a bill with non-numeric
	// amounts is rejected here instead of trusted.
	for _, field := range []struct {
		name string
		dst  *int64
	}{
		{"nights", &bill.Nights},
		{"ratePerNight", &bill.RatePerNight},
		{"total", &bill.Total},
	} {
		value, ok := obj.Number(field.name)
		if !ok {
			return nil, fmt.Errorf("bill field %q is not numeric", field.name)
		}
		*field.dst = int64(value)
	}

	return bill, nil
}
