package ui

import (
	"fmt"
	"io"
	"strings"
)

// Term is a Surface for the terminal front-end. It keeps the same state as
// Memory and additionally echoes user-visible changes to a writer, so the
// operator sees title, toast and output updates as they happen.
type Term struct {
	*Memory
	out io.Writer
}

func NewTerm(out io.Writer, navTargets []string) *Term {
	return &Term{Memory: NewMemory(navTargets), out: out}
}

// Regions whose updates are worth echoing; the rest (nav marker, panel
// visibility) only matter to a graphical document.
var echoedRegions = map[string]string{
	RegionPageTitle:         "page",
	RegionAuthChip:          "auth",
	RegionToast:             "note",
	RegionRates:             "rates",
	RegionReservationOutput: "reservation",
	RegionBillOutput:        "bill",
	RegionHelpContent:       "help",
}

func (t *Term) SetText(region, text string) {
	t.Memory.SetText(region, text)
	label, ok := echoedRegions[region]
	if !ok || text == "" {
		return
	}
	fmt.Fprintf(t.out, "[%s] %s\n", label, renderMarkup(text))
}

func (t *Term) SetLoginVisible(visible bool) {
	wasVisible := t.Memory.LoginVisible()
	t.Memory.SetLoginVisible(visible)
	if visible && !wasVisible {
		fmt.Fprintln(t.out, "[auth] login required: use the login command")
	}
}

var markupStripper = strings.NewReplacer(
	"<div>", "", "</div>", "\n",
	"<b>", "", "</b>", "",
	"<br>", "\n",
	"<hr>", "----\n",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#039;", "'",
)

// renderMarkup flattens the small markup vocabulary the views emit into
// plain terminal text.
func renderMarkup(s string) string {
	return strings.TrimRight(markupStripper.Replace(s), "\n")
}
