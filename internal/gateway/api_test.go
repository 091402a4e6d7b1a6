package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"oceandesk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIRates(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/rates", r.URL.Path)
		w.Write([]byte(`{"ok":true,"rates":[
			{"roomType":"STANDARD","ratePerNight":8000},
			{"roomType":"SUITE","ratePerNight":20000}]}`))
	}), &fakeStore{})

	rates, err := NewAPI(client).Rates(context.Background())
	require.NoError(t, err)
	require.Len(t, rates, 2)
	assert.Equal(t, models.Rate{RoomType: "STANDARD", RatePerNight: 8000}, rates[0])
	assert.Equal(t, int64(20000), rates[1].RatePerNight)
}

func TestAPIRatesRejectsNonNumericRate(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true,"rates":[{"roomType":"SUITE","ratePerNight":"20000"}]}`))
	}), &fakeStore{})

	_, err := NewAPI(client).Rates(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not numeric")
}

func TestAPILogin(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "admin", creds["username"])
		assert.Equal(t, "secret", creds["password"])
		w.Write([]byte(`{"ok":true,"token":"tok-9"}`))
	}), &fakeStore{})

	token, err := NewAPI(client).Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-9", token)
}

func TestAPILoginMissingToken(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true}`))
	}), &fakeStore{})

	_, err := NewAPI(client).Login(context.Background(), "admin", "secret")
	require.Error(t, err)
}

func TestAPIReservationEscapesNumber(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`{"ok":true,"reservation":{
			"reservationNumber":"R 1","guestName":"Ann","address":"12 Beach Rd",
			"contactNumber":"071","roomType":"DELUXE","checkIn":"2026-01-10","checkOut":"2026-01-12"}}`))
	}), &fakeStore{})

	res, err := NewAPI(client).Reservation(context.Background(), "R 1")
	require.NoError(t, err)
	assert.Equal(t, "/api/reservations/R%201", gotPath)
	assert.Equal(t, "Ann", res.GuestName)
	assert.Equal(t, "2026-01-12", res.CheckOut)
}

func TestAPIBill(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true,"bill":{
			"reservationNumber":"R-1","guestName":"Ann","roomType":"SUITE",
			"checkIn":"2026-01-10","checkOut":"2026-01-13",
			"nights":3,"ratePerNight":20000,"total":60000}}`))
	}), &fakeStore{})

	bill, err := NewAPI(client).Bill(context.Background(), "R-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), bill.Nights)
	assert.Equal(t, int64(60000), bill.Total)
}

func TestAPIBillRejectsNonNumericAmounts(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true,"bill":{
			"reservationNumber":"R-1","nights":3,"ratePerNight":20000,
			"total":"<script>alert(1)</script>"}}`))
	}), &fakeStore{})

	_, err := NewAPI(client).Bill(context.Background(), "R-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"total"`)
}

func TestAPICreateReservationMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.ReservationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "R-77", req.ReservationNumber)
		w.Write([]byte(`{"ok":true,"message":"Reservation saved successfully"}`))
	}), &fakeStore{})

	msg, err := NewAPI(client).CreateReservation(context.Background(), models.ReservationRequest{ReservationNumber: "R-77"})
	require.NoError(t, err)
	assert.Equal(t, "Reservation saved successfully", msg)
}
