package models

// Page is the enumerated set of logical pages. Exactly one is current at any
// time; unknown targets always coerce to the dashboard.
type Page string

const (
	PageDashboard       Page = "dashboard"
	PageAddReservation  Page = "addReservation"
	PageViewReservation Page = "viewReservation"
	PageBill            Page = "bill"
	PageHelp            Page = "help"
)

// Pages returns every supported page in display order.
func Pages() []Page {
	return []Page{PageDashboard, PageAddReservation, PageViewReservation, PageBill, PageHelp}
}

// ParsePage maps a raw target name to a Page, falling back to the dashboard
// for anything it does not recognize.
func ParsePage(target string) Page {
	switch Page(target) {
	case PageDashboard, PageAddReservation, PageViewReservation, PageBill, PageHelp:
		return Page(target)
	default:
		return PageDashboard
	}
}
