package session

import (
	"context"
	"fmt"
	"sync"

	"oceandesk/internal/domain"
	"oceandesk/internal/events"
	"oceandesk/internal/models"
	"oceandesk/internal/ui"

	"github.com/rs/zerolog"
)

// Navigator is the slice of the page router the controller needs: logout
// always lands back on the dashboard.
type Navigator interface {
	SetPage(target models.Page)
}

// Controller owns the session token lifecycle. It is the only writer of the
// token store; the gateway only reads it. The login prompt is visible
// exactly while the controller is unauthenticated.
type Controller struct {
	store    domain.TokenStore
	api      domain.ReservationAPI
	surface  ui.Surface
	notifier domain.Notifier
	nav      Navigator
	bus      domain.EventPublisher
	logger   *zerolog.Logger

	mu            sync.RWMutex
	authenticated bool
	username      string
}

func NewController(
	store domain.TokenStore,
	api domain.ReservationAPI,
	surface ui.Surface,
	notifier domain.Notifier,
	nav Navigator,
	bus domain.EventPublisher,
	logger *zerolog.Logger,
) *Controller {
	l := logger.With().Str("component", "session").Logger()
	return &Controller{
		store:    store,
		api:      api,
		surface:  surface,
		notifier: notifier,
		nav:      nav,
		bus:      bus,
		logger:   &l,
	}
}

// CheckSession verifies the stored token against the server. With no token
// stored it goes straight to unauthenticated without calling the server; a
// rejected token is discarded.
func (c *Controller) CheckSession(ctx context.Context) {
	token, err := c.store.Get(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msg("token store read failed")
		token = ""
	}

	if token == "" {
		c.setUnauthenticated()
		return
	}

	username, err := c.api.Me(ctx)
	if err != nil {
		c.logger.Info().Err(err).Msg("stored token rejected, discarding")
		if clearErr := c.store.Clear(ctx); clearErr != nil {
			c.logger.Error().Err(clearErr).Msg("failed to clear rejected token")
		}
		c.setUnauthenticated()
		return
	}

	c.setAuthenticated(username)
}

// Login exchanges credentials for a token. On failure the current session is
// left untouched and the error surfaces as a toast.
func (c *Controller) Login(ctx context.Context, username, password string) {
	token, err := c.api.Login(ctx, username, password)
	if err != nil {
		c.notifier.Error(err.Error())
		return
	}

	if err := c.store.Set(ctx, token); err != nil {
		c.logger.Error().Err(err).Msg("failed to store token")
		c.notifier.Error(err.Error())
		return
	}

	c.notifier.Success("Login successful")
	c.CheckSession(ctx)
}

// Logout tells the server best-effort, then unconditionally discards the
// local token and returns to the dashboard. It never fails locally.
func (c *Controller) Logout(ctx context.Context) {
	if err := c.api.Logout(ctx); err != nil {
		c.logger.Debug().Err(err).Msg("server logout failed, clearing session anyway")
	}

	if err := c.store.Clear(ctx); err != nil {
		c.logger.Error().Err(err).Msg("failed to clear token")
	}

	c.notifier.Success("Logged out")
	c.nav.SetPage(models.PageDashboard)
	c.CheckSession(ctx)
}

func (c *Controller) Authenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.authenticated
}

func (c *Controller) Username() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.username
}

func (c *Controller) setAuthenticated(username string) {
	c.mu.Lock()
	wasAuthenticated := c.authenticated
	c.authenticated = true
	c.username = username
	c.mu.Unlock()

	c.surface.SetText(ui.RegionAuthChip, fmt.Sprintf("Logged in as %s", username))
	c.surface.SetLoginVisible(false)

	if !wasAuthenticated {
		if err := c.bus.PublishJSON(events.EventSessionStarted, events.SessionEventPayload{Username: username}); err != nil {
			c.logger.Error().Err(err).Msg("failed to publish session event")
		}
	}
}

func (c *Controller) setUnauthenticated() {
	c.mu.Lock()
	wasAuthenticated := c.authenticated
	c.authenticated = false
	c.username = ""
	c.mu.Unlock()

	c.surface.SetText(ui.RegionAuthChip, "Not logged in")
	c.surface.SetLoginVisible(true)

	if wasAuthenticated {
		if err := c.bus.PublishJSON(events.EventSessionEnded, events.SessionEventPayload{}); err != nil {
			c.logger.Error().Err(err).Msg("failed to publish session event")
		}
	}
}
