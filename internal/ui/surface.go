// Package ui models the document the client writes into: named text regions,
// content panels of which exactly one is visible, navigation controls with an
// active marker, a login modal and form inputs. Controllers talk to a Surface
// so they can be driven directly from tests without any real front-end.
package ui

// Region, input and panel names mirror the element ids of the served page.
const (
	RegionPageTitle         = "pageTitle"
	RegionPageSubtitle      = "pageSubtitle"
	RegionAuthChip          = "authChip"
	RegionToast             = "toast"
	RegionToastKind         = "toastKind"
	RegionRates             = "rates"
	RegionReservationOutput = "reservationOutput"
	RegionBillOutput        = "billOutput"
	RegionHelpContent       = "helpContent"
)

const (
	InputSearchReservationNumber = "searchReservationNumber"
	InputBillReservationNumber   = "billReservationNumber"
)

type Surface interface {
	SetText(region, text string)
	Text(region string) string

	SetPanelHidden(panel string, hidden bool)
	PanelHidden(panel string) bool

	// SetActiveNav clears the active marker from every navigation control and
	// sets it on the one declared for target, if any. An unmatched target
	// leaves no control marked.
	SetActiveNav(target string)
	ActiveNav() string

	SetLoginVisible(visible bool)
	LoginVisible() bool

	SetInput(field, value string)
	Input(field string) string
}
