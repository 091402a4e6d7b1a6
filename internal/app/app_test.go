package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"oceandesk/internal/gateway"
	"oceandesk/internal/models"
	"oceandesk/internal/router"
	"oceandesk/internal/session"
	"oceandesk/internal/ui"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reservationServer is an in-memory stand-in for the real backend, enough to
// drive the whole client through its flows.
type reservationServer struct {
	mu           sync.Mutex
	reservations map[string]models.Reservation
	helpCalls    int
}

func newReservationServer() *reservationServer {
	return &reservationServer{reservations: make(map[string]models.Reservation)}
}

func (s *reservationServer) authorized(r *http.Request) bool {
	return r.Header.Get("Authorization") == "Bearer tok-1"
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *reservationServer) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/rates", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"rates": []map[string]any{
			{"roomType": "STANDARD", "ratePerNight": 8000},
			{"roomType": "DELUXE", "ratePerNight": 12000},
			{"roomType": "SUITE", "ratePerNight": 20000},
		}})
	})

	mux.HandleFunc("/api/help", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.helpCalls++
		s.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]string{"text": "Pick a page\nFill the form"})
	})

	mux.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds["username"] == "admin" && creds["password"] == "secret" {
			writeJSON(w, http.StatusOK, map[string]string{"token": "tok-1"})
			return
		}
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
	})

	mux.HandleFunc("/api/me", func(w http.ResponseWriter, r *http.Request) {
		if !s.authorized(r) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"username": "admin"})
	})

	mux.HandleFunc("/api/logout", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{})
	})

	mux.HandleFunc("/api/reservations", func(w http.ResponseWriter, r *http.Request) {
		if !s.authorized(r) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
			return
		}
		var req models.Reservation
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ReservationNumber == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid reservation"})
			return
		}
		s.mu.Lock()
		s.reservations[req.ReservationNumber] = req
		s.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]string{"message": "Reservation " + req.ReservationNumber + " created"})
	})

	mux.HandleFunc("/api/reservations/", func(w http.ResponseWriter, r *http.Request) {
		number := strings.TrimPrefix(r.URL.Path, "/api/reservations/")
		s.mu.Lock()
		res, ok := s.reservations[number]
		s.mu.Unlock()
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Reservation not found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"reservation": res})
	})

	mux.HandleFunc("/api/bill/", func(w http.ResponseWriter, r *http.Request) {
		number := strings.TrimPrefix(r.URL.Path, "/api/bill/")
		s.mu.Lock()
		res, ok := s.reservations[number]
		s.mu.Unlock()
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Reservation not found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"bill": map[string]any{
			"reservationNumber": res.ReservationNumber,
			"guestName":         res.GuestName,
			"roomType":          res.RoomType,
			"checkIn":           res.CheckIn,
			"checkOut":          res.CheckOut,
			"nights":            2,
			"ratePerNight":      8000,
			"total":             16000,
		}})
	})

	return mux
}

func navTargets() []string {
	var targets []string
	for _, page := range models.Pages() {
		targets = append(targets, string(page))
	}
	return targets
}

func newTestApp(t *testing.T, baseURL string) (*App, *ui.Memory, *session.MemoryStore) {
	t.Helper()
	logger := zerolog.Nop()
	surface := ui.NewMemory(navTargets())
	store := session.NewMemoryStore()
	client := gateway.NewClient(baseURL, 5*time.Second, store, &logger)
	api := gateway.NewAPI(client)

	a, err := New(surface, store, api, time.Minute, &logger)
	require.NoError(t, err)
	return a, surface, store
}

func TestInitShowsDashboardRatesAndLoginPrompt(t *testing.T) {
	srv := httptest.NewServer(newReservationServer().handler())
	defer srv.Close()
	a, surface, _ := newTestApp(t, srv.URL)

	a.Init(context.Background())

	assert.Equal(t, models.PageDashboard, a.CurrentPage())
	assert.False(t, surface.PanelHidden(router.Panel(models.PageDashboard)))
	assert.Contains(t, surface.Text(ui.RegionRates), "<div><b>DELUXE</b>: LKR 12000 / night</div>")
	assert.Equal(t, "Not logged in", surface.Text(ui.RegionAuthChip))
	assert.True(t, surface.LoginVisible())
	assert.Empty(t, surface.Text(ui.RegionToast))
}

func TestInitWithServerDownStillStartsWithToast(t *testing.T) {
	srv := httptest.NewServer(newReservationServer().handler())
	srv.Close()
	a, surface, _ := newTestApp(t, srv.URL)

	a.Init(context.Background())

	assert.Equal(t, models.PageDashboard, a.CurrentPage())
	assert.NotEmpty(t, surface.Text(ui.RegionToast))
	assert.Equal(t, models.ToastError, surface.Text(ui.RegionToastKind))
}

func TestLoginLogoutFlow(t *testing.T) {
	srv := httptest.NewServer(newReservationServer().handler())
	defer srv.Close()
	a, surface, store := newTestApp(t, srv.URL)
	ctx := context.Background()

	a.Init(ctx)
	a.SubmitLogin(ctx, "admin", "wrong")
	assert.Equal(t, "Invalid credentials", surface.Text(ui.RegionToast))
	assert.False(t, a.Authenticated())

	a.SubmitLogin(ctx, "admin", "secret")
	assert.True(t, a.Authenticated())
	assert.Equal(t, "admin", a.Username())
	assert.Equal(t, "Logged in as admin", surface.Text(ui.RegionAuthChip))
	assert.False(t, surface.LoginVisible())
	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	a.Navigate("bill")
	a.Logout(ctx)
	assert.False(t, a.Authenticated())
	assert.Equal(t, models.PageDashboard, a.CurrentPage())
	assert.True(t, surface.LoginVisible())
	token, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", token)
}

func TestReservationRoundTrip(t *testing.T) {
	srv := httptest.NewServer(newReservationServer().handler())
	defer srv.Close()
	a, surface, _ := newTestApp(t, srv.URL)
	ctx := context.Background()

	a.Init(ctx)
	a.SubmitLogin(ctx, "admin", "secret")

	a.Navigate("addReservation")
	a.SubmitReservation(ctx, map[string]string{
		"reservationNumber": "R 42",
		"guestName":         "Sunil Perera",
		"address":           "7 Lake Drive",
		"contactNumber":     "0751112222",
		"roomType":          "STANDARD",
		"checkIn":           "2026-05-01",
		"checkOut":          "2026-05-03",
	})

	assert.Equal(t, "Reservation R 42 created", surface.Text(ui.RegionToast))
	assert.Equal(t, models.PageViewReservation, a.CurrentPage())
	assert.Equal(t, "R 42", surface.Input(ui.InputSearchReservationNumber))

	// Lookup with an empty argument reuses the prefilled input.
	a.LookupReservation(ctx, "")
	out := surface.Text(ui.RegionReservationOutput)
	assert.Contains(t, out, "<div><b>Guest Name:</b> Sunil Perera</div>")
	assert.Contains(t, out, "<div><b>Room Type:</b> STANDARD</div>")

	a.Navigate("bill")
	a.ComputeBill(ctx, "R 42")
	bill := surface.Text(ui.RegionBillOutput)
	assert.Contains(t, bill, "<div><b>Total:</b> LKR 16000</div>")
}

func TestLookupMissingReservationClearsOutput(t *testing.T) {
	srv := httptest.NewServer(newReservationServer().handler())
	defer srv.Close()
	a, surface, _ := newTestApp(t, srv.URL)
	ctx := context.Background()

	a.LookupReservation(ctx, "R-404")
	assert.Equal(t, "", surface.Text(ui.RegionReservationOutput))
	assert.Equal(t, "Reservation not found", surface.Text(ui.RegionToast))

	a.LookupReservation(ctx, "")
	assert.Equal(t, "Reservation not found", surface.Text(ui.RegionToast))
}

func TestHelpLoadsOnceOnEnter(t *testing.T) {
	backend := newReservationServer()
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()
	a, surface, _ := newTestApp(t, srv.URL)

	a.Navigate("help")
	assert.Equal(t, "<div>Pick a page<br>Fill the form</div>", surface.Text(ui.RegionHelpContent))

	a.Navigate("dashboard")
	a.Navigate("help")

	backend.mu.Lock()
	calls := backend.helpCalls
	backend.mu.Unlock()
	assert.Equal(t, 1, calls)
}

func TestNavigateUnknownTargetFallsBack(t *testing.T) {
	srv := httptest.NewServer(newReservationServer().handler())
	defer srv.Close()
	a, _, _ := newTestApp(t, srv.URL)

	a.Navigate("reports")
	assert.Equal(t, models.PageDashboard, a.CurrentPage())
}
