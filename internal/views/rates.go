// Package views holds the per-page controllers: each one owns a panel's
// inputs and output region and talks to the server through the typed API.
package views

import (
	"context"
	"fmt"
	"strings"

	"oceandesk/internal/domain"
	"oceandesk/internal/ui"

	"github.com/rs/zerolog"
)

// Rates renders the room-rate table on the dashboard.
type Rates struct {
	api     domain.ReservationAPI
	surface ui.Surface
	logger  *zerolog.Logger
}

func NewRates(api domain.ReservationAPI, surface ui.Surface, logger *zerolog.Logger) *Rates {
	l := logger.With().Str("component", "rates").Logger()
	return &Rates{api: api, surface: surface, logger: &l}
}

// Refresh re-fetches the table and rewrites the rates region. On failure the
// region keeps whatever it showed before; the caller decides how to report.
func (v *Rates) Refresh(ctx context.Context) error {
	rates, err := v.api.Rates(ctx)
	if err != nil {
		return err
	}

	var b strings.Builder
	for _, rate := range rates {
		fmt.Fprintf(&b, "<div><b>%s</b>: LKR %d / night</div>", ui.EscapeHTML(rate.RoomType), rate.RatePerNight)
	}
	v.surface.SetText(ui.RegionRates, b.String())

	v.logger.Debug().Int("count", len(rates)).Msg("rates refreshed")
	return nil
}
