//go:build js || wasm
// +build js wasm

package runtime

import (
	"fmt"

	"github.com/vcrobe/navheader/console"
	"github.com/vcrobe/navheader/location"
	"github.com/vcrobe/navheader/vdom"
)

// Compile-time assertion to ensure the concrete RendererImpl implements the Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

// RendererImpl is the browser implementation of the Renderer interface.
// It manages the component instance tree and patches the DOM under mountID.
type RendererImpl struct {
	tree             *InstanceTree
	currentComponent Component         // The currently active root component (set by router or directly)
	currentKey       string            // Root key; changing it remounts the whole tree
	navManager       NavigationManager // Optional: router for client-side navigation
	location         location.Provider
	mountID          string
	prevVDOM         *vdom.VNode // Previous VDOM tree for patching
	rendering        bool
	dirty            bool
}

// NewRenderer creates a new runtime renderer.
// If navManager is nil, the renderer works without routing (useful for non-SPA apps).
// If loc is nil, the browser location is used.
func NewRenderer(navManager NavigationManager, loc location.Provider, mountID string) *RendererImpl {
	if loc == nil {
		loc = location.Browser{}
	}
	return &RendererImpl{
		tree:       NewInstanceTree(),
		navManager: navManager,
		location:   loc,
		mountID:    mountID,
	}
}

// SetCurrentComponent sets the component to be rendered.
// This is typically called by the router's onChange callback when navigation occurs.
// The key scopes every instance in the tree, so a new key remounts all components.
func (r *RendererImpl) SetCurrentComponent(comp Component, key string) {
	r.currentComponent = comp
	r.currentKey = key
}

// RenderRoot starts the rendering process for the entire application.
func (r *RendererImpl) RenderRoot() {
	if r.currentComponent == nil {
		console.Warn("RenderRoot called without a current component")
		return
	}

	r.rendering = true
	Settle("browser", r.renderPass)
	r.rendering = false
}

func (r *RendererImpl) renderPass() bool {
	r.dirty = false
	r.tree.BeginPass()

	rootKey := RootKey
	if r.currentKey != "" {
		rootKey = RootKey + ":" + r.currentKey
	}
	newVDOM := r.tree.RenderChild(r, rootKey, r.currentComponent)

	if r.prevVDOM == nil {
		// Initial render: clear and render fresh
		vdom.Clear(r.mountID, nil)
		vdom.RenderToSelector(r.mountID, newVDOM)
	} else {
		// Subsequent renders: patch the existing DOM
		vdom.Patch(r.mountID, r.prevVDOM, newVDOM)
	}
	r.prevVDOM = newVDOM

	// Clean up components that were not rendered in this cycle, then run the mount
	// hooks of the new ones now that they are in the DOM.
	r.tree.Sweep()
	r.tree.FlushMounts()
	return r.dirty
}

// RenderChild is called by Render code to render a child component.
func (r *RendererImpl) RenderChild(key string, childWithProps Component) *vdom.VNode {
	return r.tree.RenderChild(r, key, childWithProps)
}

// ReRender patches the DOM with minimal changes.
// Requests made during a render (e.g. from OnMount) are folded into that render.
func (r *RendererImpl) ReRender() {
	if r.rendering {
		r.dirty = true
		return
	}
	r.RenderRoot()
}

// Navigate delegates to the NavigationManager (router) to perform client-side navigation.
// Returns an error if no router is configured.
func (r *RendererImpl) Navigate(path string) error {
	if r.navManager == nil {
		return fmt.Errorf("no router configured for navigation")
	}
	return r.navManager.Navigate(path)
}

// CurrentPath implements Renderer.
func (r *RendererImpl) CurrentPath() string {
	return r.location.Pathname()
}
