package header

import (
	"fmt"

	"github.com/vcrobe/navheader/router"
	"github.com/vcrobe/navheader/runtime"
	"github.com/vcrobe/navheader/vdom"
)

const (
	HeaderClass = "flex items-center justify-between bg-white dark:bg-darkBg"
	NavClass    = "flex items-center"
	ListClass   = "flex flex-row list-none"
	BrandClass  = "px-6 py-2 font-bold"
)

// NavList renders the header links as a list, one NavListItem per descriptor.
type NavList struct {
	runtime.ComponentBase

	Items []NavLinkDescriptor
}

func (l *NavList) ApplyProps(source runtime.Component) {
	if src, ok := source.(*NavList); ok {
		l.Items = src.Items
	}
}

// itemKey keeps an item's state while it stays at the same position with the same link.
func itemKey(i int, d NavLinkDescriptor) string {
	return fmt.Sprintf("item-%d:%s", i, d.Link)
}

func (l *NavList) Render(r runtime.Renderer) *vdom.VNode {
	children := make([]*vdom.VNode, 0, len(l.Items))
	for i, item := range l.Items {
		children = append(children, vdom.Li(nil, r.RenderChild(itemKey(i, item), NewNavListItem(item))))
	}
	return vdom.Ul(map[string]any{"class": ListClass}, children...)
}

// Header is the site header: an optional brand link followed by the navigation list.
type Header struct {
	runtime.ComponentBase

	Brand     string
	BrandLink string
	Items     []NavLinkDescriptor
}

func (h *Header) ApplyProps(source runtime.Component) {
	if src, ok := source.(*Header); ok {
		h.Brand = src.Brand
		h.BrandLink = src.BrandLink
		h.Items = src.Items
	}
}

func (h *Header) Render(r runtime.Renderer) *vdom.VNode {
	nav := vdom.Nav(map[string]any{"class": NavClass, "aria-label": "Main"})

	if h.Brand != "" {
		href := h.BrandLink
		if href == "" {
			href = "/"
		}
		nav.Children = append(nav.Children, r.RenderChild("brand", &router.Link{
			Href:        href,
			Class:       BrandClass,
			BodyContent: []*vdom.VNode{vdom.Span(h.Brand, nil)},
		}))
	}

	nav.Children = append(nav.Children, r.RenderChild("nav", &NavList{Items: h.Items}))

	return vdom.Header(map[string]any{"class": HeaderClass}, nav)
}
