package page

import "strings"

// Element is a node on the console page. The interaction layer only cares
// about identity and marker classes; presence of a class is the boolean.
type Element struct {
	Tag string
	ID  string

	classes map[string]struct{}
	onClick []func(*Event)
	doc     *Document
}

func (el *Element) HasClass(name string) bool {
	_, ok := el.classes[name]
	return ok
}

func (el *Element) AddClass(name string) {
	if el.classes == nil {
		el.classes = map[string]struct{}{}
	}
	el.classes[name] = struct{}{}
}

func (el *Element) RemoveClass(name string) {
	delete(el.classes, name)
}

// ToggleClass flips a marker class and reports the new state.
func (el *Element) ToggleClass(name string) bool {
	if el.HasClass(name) {
		el.RemoveClass(name)
		return false
	}
	el.AddClass(name)
	return true
}

// Matches reports whether el matches a simple selector: "#id" matches by
// id, ".class" by marker class, anything else by tag name.
func (el *Element) Matches(selector string) bool {
	switch {
	case selector == "":
		return false
	case strings.HasPrefix(selector, "#"):
		return el.ID != "" && el.ID == selector[1:]
	case strings.HasPrefix(selector, "."):
		return el.HasClass(selector[1:])
	default:
		return el.Tag == selector
	}
}

// OnClick binds a listener directly to this element. Direct listeners run
// before the document's delegated ones.
func (el *Element) OnClick(fn func(*Event)) {
	el.onClick = append(el.onClick, fn)
}
