package views

import (
	"context"
	"fmt"
	"strings"

	"oceandesk/internal/domain"
	"oceandesk/internal/events"
	"oceandesk/internal/models"
	"oceandesk/internal/ui"

	"github.com/rs/zerolog"
)

// Identifier and free-text fields are trimmed; the room type is a fixed
// choice and dates travel verbatim, the server owns their validation.
var addReservationSchema = FormSchema{
	"reservationNumber": {Trim: true, Required: true},
	"guestName":         {Trim: true, Required: true},
	"address":           {Trim: true},
	"contactNumber":     {Trim: true},
	"roomType":          {Required: true},
	"checkIn":           {Required: true},
	"checkOut":          {Required: true},
}

// AddReservation handles the new-reservation form.
type AddReservation struct {
	api      domain.ReservationAPI
	surface  ui.Surface
	notifier domain.Notifier
	nav      Navigator
	bus      domain.EventPublisher
	logger   *zerolog.Logger
}

// Navigator is the slice of the page router the views need.
type Navigator interface {
	SetPage(target models.Page)
}

func NewAddReservation(
	api domain.ReservationAPI,
	surface ui.Surface,
	notifier domain.Notifier,
	nav Navigator,
	bus domain.EventPublisher,
	logger *zerolog.Logger,
) *AddReservation {
	l := logger.With().Str("component", "add_reservation").Logger()
	return &AddReservation{
		api:      api,
		surface:  surface,
		notifier: notifier,
		nav:      nav,
		bus:      bus,
		logger:   &l,
	}
}

// Submit cleans the form values and creates the reservation. On success the
// form is reset and the user lands on the lookup page with the new number
// already filled in; on failure the form keeps its values.
func (v *AddReservation) Submit(ctx context.Context, values map[string]string) {
	cleaned, err := addReservationSchema.Clean(values)
	if err != nil {
		v.notifier.Error(err.Error())
		return
	}

	req := models.ReservationRequest{
		ReservationNumber: cleaned["reservationNumber"],
		GuestName:         cleaned["guestName"],
		Address:           cleaned["address"],
		ContactNumber:     cleaned["contactNumber"],
		RoomType:          cleaned["roomType"],
		CheckIn:           cleaned["checkIn"],
		CheckOut:          cleaned["checkOut"],
	}

	message, err := v.api.CreateReservation(ctx, req)
	if err != nil {
		v.notifier.Error(err.Error())
		return
	}
	if message == "" {
		message = "Reservation saved"
	}
	v.notifier.Success(message)

	for field := range addReservationSchema {
		v.surface.SetInput(field, "")
	}
	v.surface.SetInput(ui.InputSearchReservationNumber, req.ReservationNumber)
	v.nav.SetPage(models.PageViewReservation)

	if err := v.bus.PublishJSON(events.EventReservationCreated, events.ReservationEventPayload{
		ReservationNumber: req.ReservationNumber,
		RoomType:          req.RoomType,
	}); err != nil {
		v.logger.Error().Err(err).Msg("failed to publish reservation event")
	}
}

// Search handles the reservation-lookup page.
type Search struct {
	api      domain.ReservationAPI
	surface  ui.Surface
	notifier domain.Notifier
	logger   *zerolog.Logger
}

func NewSearch(api domain.ReservationAPI, surface ui.Surface, notifier domain.Notifier, logger *zerolog.Logger) *Search {
	l := logger.With().Str("component", "search").Logger()
	return &Search{api: api, surface: surface, notifier: notifier, logger: &l}
}

// Lookup fetches the reservation whose number is in the search input and
// renders it. A blank number is reported without touching the network; a
// failed lookup clears the output so stale data never lingers.
func (v *Search) Lookup(ctx context.Context) {
	number := strings.TrimSpace(v.surface.Input(ui.InputSearchReservationNumber))
	if number == "" {
		v.notifier.Error("Enter a reservation number")
		return
	}

	res, err := v.api.Reservation(ctx, number)
	if err != nil {
		v.surface.SetText(ui.RegionReservationOutput, "")
		v.notifier.Error(err.Error())
		return
	}

	v.surface.SetText(ui.RegionReservationOutput, renderReservation(res))
	v.logger.Debug().Str("reservation_number", number).Msg("reservation displayed")
}

func renderReservation(res *models.Reservation) string {
	var b strings.Builder
	writeRow(&b, "Reservation Number", res.ReservationNumber)
	writeRow(&b, "Guest Name", res.GuestName)
	writeRow(&b, "Address", res.Address)
	writeRow(&b, "Contact Number", res.ContactNumber)
	writeRow(&b, "Room Type", res.RoomType)
	writeRow(&b, "Check-In", res.CheckIn)
	writeRow(&b, "Check-Out", res.CheckOut)
	return b.String()
}

func writeRow(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "<div><b>%s:</b> %s</div>", label, ui.EscapeHTML(value))
}
