// Package router is the finite-state page switcher: one current page, a
// static title/subtitle table, one visible panel, one marked nav control.
package router

import (
	"fmt"
	"sync"

	"oceandesk/internal/metrics"
	"oceandesk/internal/models"
	"oceandesk/internal/ui"

	"github.com/rs/zerolog"
)

// PageMeta is the title/subtitle pair shown in the page header.
type PageMeta struct {
	Title    string
	Subtitle string
}

var pageMeta = map[models.Page]PageMeta{
	models.PageDashboard:       {Title: "Dashboard", Subtitle: "Welcome"},
	models.PageAddReservation:  {Title: "Add Reservation", Subtitle: "Register a new guest"},
	models.PageViewReservation: {Title: "Display Reservation", Subtitle: "Search by reservation number"},
	models.PageBill:            {Title: "Bill", Subtitle: "Calculate total cost"},
	models.PageHelp:            {Title: "Help", Subtitle: "How to use the system"},
}

var pagePanels = map[models.Page]string{
	models.PageDashboard:       "panel-dashboard",
	models.PageAddReservation:  "panel-addReservation",
	models.PageViewReservation: "panel-viewReservation",
	models.PageBill:            "panel-bill",
	models.PageHelp:            "panel-help",
}

type Router struct {
	surface ui.Surface
	logger  *zerolog.Logger

	mu      sync.RWMutex
	current models.Page
	hooks   map[models.Page]func()
}

// New validates the static page tables and returns a router. A page missing
// either its metadata or its panel entry is a construction error, not a
// silent fallback at navigation time.
func New(surface ui.Surface, logger *zerolog.Logger) (*Router, error) {
	for _, page := range models.Pages() {
		if _, ok := pageMeta[page]; !ok {
			return nil, fmt.Errorf("page %q has no metadata entry", page)
		}
		if _, ok := pagePanels[page]; !ok {
			return nil, fmt.Errorf("page %q has no panel entry", page)
		}
	}

	l := logger.With().Str("component", "router").Logger()
	return &Router{
		surface: surface,
		logger:  &l,
		current: models.PageDashboard,
		hooks:   make(map[models.Page]func()),
	}, nil
}

// OnEnter registers a hook run after every switch to the page. The switch
// itself never waits on the hook's outcome.
func (r *Router) OnEnter(page models.Page, hook func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hooks[page] = hook
}

// SetPage switches to the target page. Unknown targets coerce to the
// dashboard; the switch is total and synchronous.
func (r *Router) SetPage(target models.Page) {
	meta, ok := pageMeta[target]
	if !ok {
		target = models.PageDashboard
		meta = pageMeta[target]
	}

	r.surface.SetText(ui.RegionPageTitle, meta.Title)
	r.surface.SetText(ui.RegionPageSubtitle, meta.Subtitle)

	for _, panel := range pagePanels {
		r.surface.SetPanelHidden(panel, true)
	}
	r.surface.SetPanelHidden(pagePanels[target], false)

	r.surface.SetActiveNav(string(target))

	r.mu.Lock()
	r.current = target
	hook := r.hooks[target]
	r.mu.Unlock()

	metrics.IncPageView(string(target))
	r.logger.Debug().Str("page", string(target)).Msg("page switched")

	if hook != nil {
		hook()
	}
}

func (r *Router) Current() models.Page {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Panel returns the panel name for a page, for tests and the front-end.
func Panel(page models.Page) string {
	return pagePanels[page]
}
