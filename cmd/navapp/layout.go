//go:build js || wasm

package main

import (
	"github.com/vcrobe/navheader/components/header"
	"github.com/vcrobe/navheader/navconfig"
	"github.com/vcrobe/navheader/runtime"
	"github.com/vcrobe/navheader/vdom"
)

// Layout renders the header above the routed page.
type Layout struct {
	runtime.ComponentBase

	Config *navconfig.Config
	Page   runtime.Component
}

func (l *Layout) Render(r runtime.Renderer) *vdom.VNode {
	hdr := r.RenderChild("header", &header.Header{
		Brand:     l.Config.Brand,
		BrandLink: l.Config.BrandLink,
		Items:     l.Config.Items,
	})
	content := vdom.NewVNode("main", map[string]any{"class": "px-6 py-4"}, []*vdom.VNode{
		r.RenderChild("page", l.Page),
	}, "")
	return vdom.Div(nil, hdr, content)
}

// Page is the placeholder content rendered for each internal link.
type Page struct {
	runtime.ComponentBase

	Title string
}

func (p *Page) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.NewVNode("section", nil, []*vdom.VNode{
		vdom.NewVNode("h1", nil, nil, p.Title),
		vdom.Paragraph("You are at "+r.CurrentPath(), nil),
	}, "")
}
