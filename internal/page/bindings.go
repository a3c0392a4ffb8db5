package page

// Marker identifiers the console page exposes. The bindings assume nothing
// else about the page.
const (
	IDNavToggle  = "nav-toggle"
	IDMobileMenu = "mobile-menu"

	// ClassActive marks the nav toggle and the mobile menu as expanded.
	ClassActive = "active"

	ClassStartMatch  = "start-match-btn"
	ClassCancelMatch = "cancel-match-btn"
)

// Fixed prompt texts for the two intercepted actions.
const (
	StartConfirmText  = "Are you sure you want to start this match? This cannot be undone."
	CancelConfirmText = "Are you sure you want to cancel this match? This is permanent."
)

// Trace receives a single line when the bindings are installed. Default
// discards it; the CLI points it at stderr under -debug.
var Trace = func(string) {}

// Bind installs the interaction handlers on doc. Call it once, when the
// page is built; listeners stay for the life of the page.
//
// The nav toggle handler is bound directly to the toggle control, and only
// when both the toggle and the menu exist — a page without them is a no-op,
// not an error. The confirmation interceptor is one delegated listener on
// the document, so buttons created after Bind are still covered.
func Bind(doc *Document) {
	toggle := doc.ElementByID(IDNavToggle)
	menu := doc.ElementByID(IDMobileMenu)
	if toggle != nil && menu != nil {
		toggle.OnClick(func(*Event) {
			// Both flip in the same handler; their states never diverge.
			toggle.ToggleClass(ClassActive)
			menu.ToggleClass(ClassActive)
		})
	}

	doc.OnClick(func(e *Event) {
		// Both checks run on every click. An element carrying both marker
		// classes is prompted twice, each answer applied on its own.
		if e.Target.Matches("." + ClassStartMatch) {
			if !e.Confirm(StartConfirmText) {
				e.PreventDefault()
			}
		}
		if e.Target.Matches("." + ClassCancelMatch) {
			if !e.Confirm(CancelConfirmText) {
				e.PreventDefault()
			}
		}
	})

	Trace("page bindings installed")
}
