package router

import (
	"github.com/vcrobe/navheader/console"
	"github.com/vcrobe/navheader/runtime"
	"github.com/vcrobe/navheader/vdom"
)

// LinkMarker is the attribute that identifies anchors handled by the client-side router.
const LinkMarker = "data-link"

// Link renders an anchor that navigates through the router instead of reloading the page.
// Modified and non-primary clicks are left to the browser, which opens the href in a new
// tab or window.
type Link struct {
	runtime.ComponentBase

	Href  string
	Class string

	// BodyContent is the slot rendered inside the anchor.
	BodyContent []*vdom.VNode
}

// ApplyProps copies the props of a freshly built Link onto this live instance.
func (l *Link) ApplyProps(source runtime.Component) {
	if src, ok := source.(*Link); ok {
		l.Href = src.Href
		l.Class = src.Class
		l.BodyContent = src.BodyContent
	}
}

func (l *Link) Render(r runtime.Renderer) *vdom.VNode {
	attrs := map[string]any{
		LinkMarker: "true",
		"onClick":  vdom.EventHandler(l.handleClick),
	}
	if l.Class != "" {
		attrs["class"] = l.Class
	}
	return vdom.A(l.Href, attrs, l.BodyContent...)
}

func (l *Link) handleClick(e vdom.Event) {
	if e != nil {
		if e.Modified() {
			return
		}
		e.PreventDefault()
	}
	if err := l.Navigate(l.Href); err != nil {
		console.Error("Navigation to", l.Href, "failed:", err.Error())
	}
}
