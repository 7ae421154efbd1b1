package runtime

import (
	"fmt"

	"github.com/vcrobe/navheader/console"
	"github.com/vcrobe/navheader/location"
	"github.com/vcrobe/navheader/vdom"
)

// MaxSettlePasses bounds how many render passes one Render call may run while components
// keep requesting re-renders.
const MaxSettlePasses = 8

// Settle runs pass until it reports no pending re-render, at most MaxSettlePasses times.
// It logs a warning naming the renderer and returns false when the limit is reached.
func Settle(renderer string, pass func() (dirty bool)) bool {
	for i := 0; i < MaxSettlePasses; i++ {
		if !pass() {
			return true
		}
	}
	console.WithFields(map[string]any{
		"renderer": renderer,
		"passes":   MaxSettlePasses,
	}).Warn("Render did not settle, re-render requests are still pending")
	return false
}

// Compile-time assertion to ensure StaticRenderer implements the Renderer interface.
var _ Renderer = (*StaticRenderer)(nil)

// StaticRenderer renders a component tree to a VDOM without a browser.
// It follows the same lifecycle as the browser renderer: a first pass, then the OnMount
// hooks, then further passes while hooks keep requesting re-renders. Pre-rendered HTML
// therefore matches what the browser shows once mounted.
type StaticRenderer struct {
	root       Component
	location   location.Provider
	navManager NavigationManager

	tree      *InstanceTree
	current   *vdom.VNode
	rendering bool
	dirty     bool
}

// NewStaticRenderer creates a renderer for root. loc supplies the current path; navManager may
// be nil, in which case Navigate returns an error.
func NewStaticRenderer(root Component, loc location.Provider, navManager NavigationManager) *StaticRenderer {
	if loc == nil {
		loc = location.Static("")
	}
	return &StaticRenderer{
		root:       root,
		location:   loc,
		navManager: navManager,
		tree:       NewInstanceTree(),
	}
}

// Render renders the root until the tree is stable and returns the resulting VDOM.
func (r *StaticRenderer) Render() *vdom.VNode {
	r.rendering = true
	defer func() { r.rendering = false }()

	Settle("static", r.renderPass)
	return r.current
}

func (r *StaticRenderer) renderPass() bool {
	r.dirty = false
	r.tree.BeginPass()
	r.current = r.tree.RenderChild(r, RootKey, r.root)
	r.tree.Sweep()
	r.tree.FlushMounts()
	return r.dirty
}

// Current returns the most recently rendered VDOM tree.
func (r *StaticRenderer) Current() *vdom.VNode {
	return r.current
}

// RenderChild implements Renderer.
func (r *StaticRenderer) RenderChild(key string, childWithProps Component) *vdom.VNode {
	return r.tree.RenderChild(r, key, childWithProps)
}

// ReRender implements Renderer. Requests made while rendering are folded into the
// current Render call.
func (r *StaticRenderer) ReRender() {
	if r.rendering {
		r.dirty = true
		return
	}
	r.Render()
}

// Navigate implements Renderer.
func (r *StaticRenderer) Navigate(path string) error {
	if r.navManager == nil {
		return fmt.Errorf("no router configured for navigation to %q", path)
	}
	return r.navManager.Navigate(path)
}

// CurrentPath implements Renderer.
func (r *StaticRenderer) CurrentPath() string {
	return r.location.Pathname()
}
