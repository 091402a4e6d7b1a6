// Package app assembles the client: one surface, one router, one session
// controller and the per-page views, with a single dispatch method per user
// action.
package app

import (
	"context"
	"time"

	"oceandesk/internal/domain"
	"oceandesk/internal/events"
	"oceandesk/internal/models"
	"oceandesk/internal/notify"
	"oceandesk/internal/router"
	"oceandesk/internal/session"
	"oceandesk/internal/ui"
	"oceandesk/internal/views"

	"github.com/rs/zerolog"
)

type App struct {
	surface  ui.Surface
	router   *router.Router
	session  *session.Controller
	notifier *notify.Notifier
	bus      *events.EventBus

	rates  *views.Rates
	add    *views.AddReservation
	search *views.Search
	bill   *views.BillView
	help   *views.Help

	logger *zerolog.Logger
}

func New(
	surface ui.Surface,
	store domain.TokenStore,
	api domain.ReservationAPI,
	toastWindow time.Duration,
	logger *zerolog.Logger,
) (*App, error) {
	l := logger.With().Str("component", "app").Logger()

	bus := events.NewEventBus()
	notifier := notify.New(surface, toastWindow, logger)

	pageRouter, err := router.New(surface, logger)
	if err != nil {
		return nil, err
	}

	a := &App{
		surface:  surface,
		router:   pageRouter,
		session:  session.NewController(store, api, surface, notifier, pageRouter, bus, logger),
		notifier: notifier,
		bus:      bus,
		rates:    views.NewRates(api, surface, logger),
		add:      views.NewAddReservation(api, surface, notifier, pageRouter, bus, logger),
		search:   views.NewSearch(api, surface, notifier, logger),
		bill:     views.NewBillView(api, surface, notifier, logger),
		help:     views.NewHelp(api, surface, logger),
		logger:   &l,
	}

	pageRouter.OnEnter(models.PageHelp, func() {
		if err := a.help.Ensure(context.Background()); err != nil {
			a.notifier.Error(err.Error())
		}
	})

	a.subscribeAuditLog()

	return a, nil
}

// subscribeAuditLog mirrors every domain event into the structured log.
func (a *App) subscribeAuditLog() {
	for _, eventType := range []string{
		events.EventSessionStarted,
		events.EventSessionEnded,
		events.EventReservationCreated,
	} {
		a.bus.Subscribe(eventType, func(event *events.Event) error {
			a.logger.Info().
				Str("event", event.Type).
				RawJSON("payload", event.Payload).
				Msg("domain event")
			return nil
		})
	}
}

// Init brings up the initial screen: dashboard, rate table, session check.
// A failed rate load is reported but never blocks startup.
func (a *App) Init(ctx context.Context) {
	a.router.SetPage(models.PageDashboard)
	a.RefreshRates(ctx)
	a.session.CheckSession(ctx)
}

// Navigate switches pages; unknown names land on the dashboard.
func (a *App) Navigate(target string) {
	a.router.SetPage(models.ParsePage(target))
}

func (a *App) CurrentPage() models.Page {
	return a.router.Current()
}

func (a *App) RefreshRates(ctx context.Context) {
	if err := a.rates.Refresh(ctx); err != nil {
		a.notifier.Error(err.Error())
	}
}

func (a *App) SubmitLogin(ctx context.Context, username, password string) {
	a.session.Login(ctx, username, password)
}

func (a *App) Logout(ctx context.Context) {
	a.session.Logout(ctx)
}

func (a *App) Authenticated() bool {
	return a.session.Authenticated()
}

func (a *App) Username() string {
	return a.session.Username()
}

func (a *App) SubmitReservation(ctx context.Context, values map[string]string) {
	a.add.Submit(ctx, values)
}

// LookupReservation fills the search input when a number is given, then runs
// the lookup against whatever the input holds.
func (a *App) LookupReservation(ctx context.Context, number string) {
	if number != "" {
		a.surface.SetInput(ui.InputSearchReservationNumber, number)
	}
	a.search.Lookup(ctx)
}

// ComputeBill works like LookupReservation but for the bill page.
func (a *App) ComputeBill(ctx context.Context, number string) {
	if number != "" {
		a.surface.SetInput(ui.InputBillReservationNumber, number)
	}
	a.bill.Compute(ctx)
}
