package page

import "errors"

// ConfirmFunc is the blocking confirmation primitive. It must eventually
// return the user's answer; dispatch waits on it.
type ConfirmFunc func(message string) bool

// ClickResult is the outcome of a dispatched click.
type ClickResult int

const (
	// ClickProceeded means no handler objected; the default action may run.
	ClickProceeded ClickResult = iota
	// ClickPrevented means a handler cancelled the default action.
	ClickPrevented
	// ClickSuspended means dispatch hit a confirm prompt with no answer yet.
	// Nothing has happened; answer the prompt and click again.
	ClickSuspended
)

// errSuspend aborts a dispatch from inside a confirm primitive.
var errSuspend = errors.New("page: confirm awaiting answer")

// Document is the console page: a flat registry of elements plus the
// listeners and the confirm primitive shared by all of them. Everything on
// a Document runs on one goroutine; dispatch is run-to-completion.
type Document struct {
	// Confirm backs Event.Confirm. Nil auto-accepts, which is the platform
	// default when no prompting mechanism is available.
	Confirm ConfirmFunc

	byID      map[string]*Element
	elements  []*Element
	delegated []func(*Event)
}

func NewDocument() *Document {
	return &Document{byID: map[string]*Element{}}
}

// CreateElement adds an element to the page. Elements may be created after
// listeners are bound; delegated listeners see them regardless.
func (d *Document) CreateElement(tag, id string, classes ...string) *Element {
	el := &Element{Tag: tag, ID: id, doc: d}
	for _, c := range classes {
		el.AddClass(c)
	}
	if id != "" {
		d.byID[id] = el
	}
	d.elements = append(d.elements, el)
	return el
}

// ElementByID returns the element with the given id, or nil.
func (d *Document) ElementByID(id string) *Element {
	return d.byID[id]
}

// Remove detaches an element from the page. Listeners bound to it are gone
// with it; delegated listeners are unaffected.
func (d *Document) Remove(el *Element) {
	if el == nil {
		return
	}
	if el.ID != "" && d.byID[el.ID] == el {
		delete(d.byID, el.ID)
	}
	for i, e := range d.elements {
		if e == el {
			d.elements = append(d.elements[:i], d.elements[i+1:]...)
			break
		}
	}
	el.doc = nil
}

// OnClick registers a delegated listener: it receives every click dispatched
// through the document, whichever element it lands on.
func (d *Document) OnClick(fn func(*Event)) {
	d.delegated = append(d.delegated, fn)
}

// Click dispatches a click on el: direct listeners first, then delegated
// ones, synchronously. A confirm primitive may abort the dispatch by
// panicking with errSuspend (see ReplayConfirm); that surfaces as
// ClickSuspended and leaves the event without effect.
func (d *Document) Click(el *Element) (res ClickResult) {
	ev := &Event{Target: el, doc: d}
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok && errors.Is(err, errSuspend) {
				res = ClickSuspended
				return
			}
			panic(r)
		}
	}()
	for _, fn := range el.onClick {
		fn(ev)
	}
	for _, fn := range d.delegated {
		fn(ev)
	}
	if ev.defaultPrevented {
		return ClickPrevented
	}
	return ClickProceeded
}

// Event is one in-flight click.
type Event struct {
	Target *Element

	doc              *Document
	defaultPrevented bool
}

// PreventDefault cancels the default action for this event only.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// Confirm blocks on the document's confirm primitive and returns the
// user's answer. Without a primitive the answer is yes.
func (e *Event) Confirm(message string) bool {
	if e.doc == nil || e.doc.Confirm == nil {
		return true
	}
	return e.doc.Confirm(message)
}

// ReplayConfirm adapts the blocking confirm contract to event loops that
// cannot stop for input (the Bubble Tea board). A dispatch that reaches an
// unanswered prompt is abandoned mid-flight; the caller shows the surfaced
// message, records the answer, and clicks the same element again. Answers
// already given are replayed in order, so a click that needs several
// prompts just suspends once per prompt.
type ReplayConfirm struct {
	answers []bool
	next    int
	message string
}

func NewReplayConfirm() *ReplayConfirm { return &ReplayConfirm{} }

// Ask is the ConfirmFunc. It replays a recorded answer or suspends.
func (rc *ReplayConfirm) Ask(message string) bool {
	if rc.next < len(rc.answers) {
		ans := rc.answers[rc.next]
		rc.next++
		return ans
	}
	rc.message = message
	panic(errSuspend)
}

// Message is the prompt that suspended the last click.
func (rc *ReplayConfirm) Message() string { return rc.message }

// Answer records the user's response to the surfaced prompt and rewinds,
// ready for the retry.
func (rc *ReplayConfirm) Answer(yes bool) {
	rc.answers = append(rc.answers, yes)
	rc.next = 0
	rc.message = ""
}

// Restart clears recorded answers. Call before dispatching a fresh click.
func (rc *ReplayConfirm) Restart() {
	rc.answers = rc.answers[:0]
	rc.next = 0
	rc.message = ""
}
