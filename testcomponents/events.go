package testcomponents

import "github.com/vcrobe/navheader/vdom"

// RecordingEvent is a vdom.Event that remembers whether PreventDefault was called.
// Button and the key fields describe the click; the zero value is a plain primary click.
type RecordingEvent struct {
	Button   int
	CtrlKey  bool
	MetaKey  bool
	ShiftKey bool
	AltKey   bool

	DefaultPrevented bool
}

func (e *RecordingEvent) PreventDefault() {
	e.DefaultPrevented = true
}

func (e *RecordingEvent) Modified() bool {
	return e.Button != 0 || e.CtrlKey || e.MetaKey || e.ShiftKey || e.AltKey
}

// Click invokes the onClick handler of n with a fresh RecordingEvent.
// It returns nil if n has no click handler.
func Click(n *vdom.VNode) *RecordingEvent {
	return ClickWith(n, &RecordingEvent{})
}

// ClickWith invokes the onClick handler of n with ev and returns ev.
// It returns nil if n has no click handler.
func ClickWith(n *vdom.VNode, ev *RecordingEvent) *RecordingEvent {
	handler, ok := n.Handler("onClick")
	if !ok {
		return nil
	}
	handler(ev)
	return ev
}

// Find returns the first node in the tree, in depth-first order, for which match is true.
func Find(n *vdom.VNode, match func(*vdom.VNode) bool) *vdom.VNode {
	if n == nil {
		return nil
	}
	if match(n) {
		return n
	}
	for _, child := range n.Children {
		if found := Find(child, match); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every node in the tree for which match is true, in depth-first order.
func FindAll(n *vdom.VNode, match func(*vdom.VNode) bool) []*vdom.VNode {
	if n == nil {
		return nil
	}
	var out []*vdom.VNode
	if match(n) {
		out = append(out, n)
	}
	for _, child := range n.Children {
		out = append(out, FindAll(child, match)...)
	}
	return out
}

// ByTag matches nodes with the given tag.
func ByTag(tag string) func(*vdom.VNode) bool {
	return func(n *vdom.VNode) bool { return n.Tag == tag }
}
