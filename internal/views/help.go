package views

import (
	"context"
	"sync"

	"oceandesk/internal/domain"
	"oceandesk/internal/ui"

	"github.com/rs/zerolog"
)

// Help lazily loads the help text the first time its page is opened and
// keeps it for the rest of the session. A failed load is retried on the
// next visit.
type Help struct {
	api     domain.ReservationAPI
	surface ui.Surface
	logger  *zerolog.Logger

	mu     sync.Mutex
	loaded bool
}

func NewHelp(api domain.ReservationAPI, surface ui.Surface, logger *zerolog.Logger) *Help {
	l := logger.With().Str("component", "help").Logger()
	return &Help{api: api, surface: surface, logger: &l}
}

// Ensure fetches and renders the help text unless it is already shown.
func (v *Help) Ensure(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.loaded {
		return nil
	}

	text, err := v.api.Help(ctx)
	if err != nil {
		return err
	}

	v.surface.SetText(ui.RegionHelpContent, "<div>"+ui.BreakLines(ui.EscapeHTML(text))+"</div>")
	v.loaded = true
	v.logger.Debug().Msg("help text loaded")
	return nil
}
