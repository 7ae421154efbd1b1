package header

import (
	"github.com/vcrobe/navheader/router"
	"github.com/vcrobe/navheader/runtime"
	"github.com/vcrobe/navheader/vdom"
)

// Classes applied to the item body.
const (
	BaseClass    = "whitespace-nowrap pl-6 pr-12 py-2 focus:outline-none focus:bg-substrateBlueBg hover:text-substrateGreen hover:underline dark:text-white font-medium"
	CurrentClass = "text-substrateGreen underline"
	DefaultClass = "text-black"
)

// NavLinkDescriptor describes one header link.
type NavLinkDescriptor struct {
	// External links are plain anchors; internal ones navigate through the router.
	External bool   `yaml:"external" json:"external"`
	Link     string `yaml:"link" json:"link" validate:"required"`
	Title    string `yaml:"title" json:"title" validate:"required"`
}

// NavListItem renders a single header link and highlights itself when its Link is the
// page being viewed.
//
// IsCurrent is decided once, when the instance mounts, by comparing Link with the
// renderer's current path. Prop updates never reset it.
type NavListItem struct {
	runtime.ComponentBase
	NavLinkDescriptor

	IsCurrent bool
}

// NewNavListItem creates an item for d.
func NewNavListItem(d NavLinkDescriptor) *NavListItem {
	return &NavListItem{NavLinkDescriptor: d}
}

// OnMount compares the link with the current path. The comparison is exact: no trailing
// slash or query normalization, and external URLs go through the same check.
func (c *NavListItem) OnMount() {
	if c.Link == c.CurrentPath() {
		c.IsCurrent = true
		c.StateHasChanged()
	}
}

// ApplyProps copies the descriptor of a freshly built item onto this live instance.
func (c *NavListItem) ApplyProps(source runtime.Component) {
	if src, ok := source.(*NavListItem); ok {
		c.NavLinkDescriptor = src.NavLinkDescriptor
	}
}

// ClassName returns the class attribute of the item body for the current state.
func (c *NavListItem) ClassName() string {
	if c.IsCurrent {
		return vdom.Classes(BaseClass, CurrentClass)
	}
	return vdom.Classes(BaseClass, DefaultClass)
}

func (c *NavListItem) Render(r runtime.Renderer) *vdom.VNode {
	body := vdom.Div(map[string]any{"class": c.ClassName()},
		vdom.Span(c.Title, nil),
	)

	if c.External {
		return vdom.A(c.Link, nil, body)
	}

	return r.RenderChild("link", &router.Link{
		Href:        c.Link,
		BodyContent: []*vdom.VNode{body},
	})
}
