// Package notify implements the toast: a single transient status line with
// auto-dismiss. There is no queue; a new toast replaces the visible one and
// restarts the dismissal window.
package notify

import (
	"sync"
	"time"

	"oceandesk/internal/metrics"
	"oceandesk/internal/models"
	"oceandesk/internal/ui"

	"github.com/rs/zerolog"
)

type Notifier struct {
	surface ui.Surface
	window  time.Duration
	logger  *zerolog.Logger

	mu    sync.Mutex
	timer *time.Timer
}

func New(surface ui.Surface, window time.Duration, logger *zerolog.Logger) *Notifier {
	l := logger.With().Str("component", "notify").Logger()
	return &Notifier{
		surface: surface,
		window:  window,
		logger:  &l,
	}
}

// Toast shows a message of the given kind and schedules its dismissal.
// A pending dismissal from an earlier message is cancelled first, so the
// newest message always gets a full window.
func (n *Notifier) Toast(message, kind string) {
	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(n.window, n.dismiss)
	n.mu.Unlock()

	n.surface.SetText(ui.RegionToast, message)
	n.surface.SetText(ui.RegionToastKind, kind)

	metrics.IncToast(kind)
	n.logger.Debug().Str("kind", kind).Str("message", message).Msg("toast")
}

func (n *Notifier) Success(message string) {
	n.Toast(message, models.ToastSuccess)
}

func (n *Notifier) Error(message string) {
	n.Toast(message, models.ToastError)
}

func (n *Notifier) dismiss() {
	n.mu.Lock()
	n.timer = nil
	n.mu.Unlock()

	n.surface.SetText(ui.RegionToast, "")
	n.surface.SetText(ui.RegionToastKind, "")
}
