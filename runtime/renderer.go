package runtime

import "github.com/vcrobe/navheader/vdom"

// Renderer defines the minimal set of runtime operations used by Render() code.
// This interface has NO build tags, making it available to both WASM and native builds.
type Renderer interface {
	// RenderChild renders a child component.
	// The key identifies the instance among its siblings; state is preserved while the same
	// key keeps appearing under the same parent.
	RenderChild(key string, childWithProps Component) *vdom.VNode

	// ReRender requests that the renderer re-run the render cycle.
	// Used by StateHasChanged() when component state changes.
	ReRender()

	// Navigate performs client-side navigation to the given path.
	// Used by Link components and programmatic navigation.
	Navigate(path string) error

	// CurrentPath returns the path currently displayed, as reported by the injected
	// location provider.
	CurrentPath() string
}

// NavigationManager performs client-side navigation. The router Engine implements it.
type NavigationManager interface {
	Navigate(path string) error
}
