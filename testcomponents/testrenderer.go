// Package testcomponents provides an in-memory renderer for component tests.
package testcomponents

import (
	"strconv"

	"github.com/vcrobe/navheader/runtime"
	"github.com/vcrobe/navheader/vdom"
)

// TestRenderer is a minimal test harness that implements runtime.Renderer
// for in-memory testing without browser or WASM dependencies.
//
// It captures VDOM output from component renders and allows tests to:
// - Attach components to the renderer
// - Control the current path seen by components
// - Trigger re-renders via StateHasChanged()
// - Inspect the resulting VDOM tree and the navigations requested
type TestRenderer struct {
	component   runtime.Component
	tree        *runtime.InstanceTree
	currentVDOM *vdom.VNode
	path        string
	generation  int
	rendering   bool
	dirty       bool

	// Navigations records every path passed to Navigate, in order.
	Navigations []string
	// NavigateErr, when set, is returned by Navigate.
	NavigateErr error
}

// Compile-time assertion to ensure TestRenderer implements runtime.Renderer interface.
var _ runtime.Renderer = (*TestRenderer)(nil)

// NewTestRenderer creates a test renderer attached to the given component.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	r := &TestRenderer{
		component: comp,
		tree:      runtime.NewInstanceTree(),
	}
	comp.SetRenderer(r)
	return r
}

// WithPath sets the path reported by CurrentPath and returns the renderer.
func (r *TestRenderer) WithPath(path string) *TestRenderer {
	r.path = path
	return r
}

// SetPath changes the path reported by CurrentPath. Mounted components do not see the
// change until they are remounted.
func (r *TestRenderer) SetPath(path string) {
	r.path = path
}

// RenderRoot performs the initial render of the component, runs the mount hooks and
// re-renders until the tree is stable.
func (r *TestRenderer) RenderRoot() *vdom.VNode {
	r.rendering = true
	runtime.Settle("test", r.renderPass)
	r.rendering = false
	return r.currentVDOM
}

// Remount discards every live instance and renders again, as the browser does after a
// navigation that replaces the page.
func (r *TestRenderer) Remount() *vdom.VNode {
	r.generation++
	return r.RenderRoot()
}

func (r *TestRenderer) renderPass() bool {
	r.dirty = false
	r.tree.BeginPass()
	key := runtime.RootKey
	if r.generation > 0 {
		key = runtime.RootKey + ":" + strconv.Itoa(r.generation)
	}
	r.currentVDOM = r.tree.RenderChild(r, key, r.component)
	r.tree.Sweep()
	r.tree.FlushMounts()
	return r.dirty
}

// ReRender performs a re-render of the component.
// This is called by StateHasChanged() when the component requests a re-render.
func (r *TestRenderer) ReRender() {
	if r.rendering {
		r.dirty = true
		return
	}
	r.RenderRoot()
}

// GetCurrentVDOM returns the most recently rendered VDOM tree.
// Tests use this to inspect the component's output after renders.
func (r *TestRenderer) GetCurrentVDOM() *vdom.VNode {
	return r.currentVDOM
}

// LiveInstances returns the number of mounted component instances.
func (r *TestRenderer) LiveInstances() int {
	return r.tree.Len()
}

// RenderChild renders a child through the instance tree so its lifecycle hooks run.
func (r *TestRenderer) RenderChild(key string, child runtime.Component) *vdom.VNode {
	return r.tree.RenderChild(r, key, child)
}

// Navigate records the requested path.
func (r *TestRenderer) Navigate(path string) error {
	r.Navigations = append(r.Navigations, path)
	return r.NavigateErr
}

// CurrentPath returns the path set with WithPath/SetPath.
func (r *TestRenderer) CurrentPath() string {
	return r.path
}
