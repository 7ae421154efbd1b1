// Package ssr pre-renders the header to HTML for a given path, running the same mount
// lifecycle as the browser so the current item is already highlighted in the markup.
package ssr

import (
	"fmt"
	"io"

	"github.com/vcrobe/navheader/components/header"
	"github.com/vcrobe/navheader/location"
	"github.com/vcrobe/navheader/navconfig"
	"github.com/vcrobe/navheader/runtime"
	"github.com/vcrobe/navheader/vdom"
)

// PageOptions controls the document written by WritePage.
type PageOptions struct {
	Title string
	// Scripts are added to the end of <body>, e.g. the wasm bootstrap.
	Scripts []string
	// MountID is the id of the element wrapping the header; the wasm app mounts there.
	MountID string
}

// NewHeader builds the header component described by cfg.
func NewHeader(cfg *navconfig.Config) *header.Header {
	return &header.Header{
		Brand:     cfg.Brand,
		BrandLink: cfg.BrandLink,
		Items:     cfg.Items,
	}
}

// RenderHeader renders the header for path and returns its VDOM.
func RenderHeader(cfg *navconfig.Config, path string) *vdom.VNode {
	r := runtime.NewStaticRenderer(NewHeader(cfg), location.Static(path), nil)
	return r.Render()
}

// WriteHeader writes the header markup for path.
func WriteHeader(w io.Writer, cfg *navconfig.Config, path string) error {
	return vdom.RenderHTML(w, RenderHeader(cfg, path))
}

// WritePage writes a complete HTML document with the header rendered for path.
func WritePage(w io.Writer, cfg *navconfig.Config, path string, opts PageOptions) error {
	title := opts.Title
	if title == "" {
		title = cfg.Brand
	}
	mountID := opts.MountID
	if mountID == "" {
		mountID = "app"
	}

	head := vdom.NewVNode("head", nil, []*vdom.VNode{
		vdom.NewVNode("meta", map[string]any{"charset": "utf-8"}, nil, ""),
		vdom.NewVNode("title", nil, nil, title),
	}, "")

	body := vdom.NewVNode("body", nil, []*vdom.VNode{
		vdom.Div(map[string]any{"id": mountID}, RenderHeader(cfg, path)),
	}, "")
	for _, src := range opts.Scripts {
		body.Children = append(body.Children, vdom.NewVNode("script", map[string]any{"src": src}, nil, ""))
	}

	doc := vdom.NewVNode("html", map[string]any{"lang": "en"}, []*vdom.VNode{head, body}, "")

	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return fmt.Errorf("write doctype: %w", err)
	}
	return vdom.RenderHTML(w, doc)
}
