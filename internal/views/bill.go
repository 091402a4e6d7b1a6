package views

import (
	"context"
	"fmt"
	"strings"

	"oceandesk/internal/domain"
	"oceandesk/internal/models"
	"oceandesk/internal/ui"

	"github.com/rs/zerolog"
)

// BillView handles the bill page. The server computes the amounts; this side
// only renders them.
type BillView struct {
	api      domain.ReservationAPI
	surface  ui.Surface
	notifier domain.Notifier
	logger   *zerolog.Logger
}

func NewBillView(api domain.ReservationAPI, surface ui.Surface, notifier domain.Notifier, logger *zerolog.Logger) *BillView {
	l := logger.With().Str("component", "bill").Logger()
	return &BillView{api: api, surface: surface, notifier: notifier, logger: &l}
}

// Compute fetches the bill for the number in the bill input and renders it.
// A blank number is reported without touching the network; a failed fetch
// clears the output.
func (v *BillView) Compute(ctx context.Context) {
	number := strings.TrimSpace(v.surface.Input(ui.InputBillReservationNumber))
	if number == "" {
		v.notifier.Error("Enter a reservation number")
		return
	}

	bill, err := v.api.Bill(ctx, number)
	if err != nil {
		v.surface.SetText(ui.RegionBillOutput, "")
		v.notifier.Error(err.Error())
		return
	}

	v.surface.SetText(ui.RegionBillOutput, renderBill(bill))
	v.logger.Debug().Str("reservation_number", number).Msg("bill displayed")
}

func renderBill(bill *models.Bill) string {
	var b strings.Builder
	writeRow(&b, "Reservation Number", bill.ReservationNumber)
	writeRow(&b, "Guest Name", bill.GuestName)
	writeRow(&b, "Room Type", bill.RoomType)
	writeRow(&b, "Check-In", bill.CheckIn)
	writeRow(&b, "Check-Out", bill.CheckOut)
	b.WriteString("<hr>")
	fmt.Fprintf(&b, "<div><b>Nights:</b> %d</div>", bill.Nights)
	fmt.Fprintf(&b, "<div><b>Rate Per Night:</b> LKR %d</div>", bill.RatePerNight)
	fmt.Fprintf(&b, "<div><b>Total:</b> LKR %d</div>", bill.Total)
	return b.String()
}
