package runtime

import "github.com/vcrobe/navheader/vdom"

// Component interface defines the structure for all components in the framework.
// This interface has NO build tags, making it available to both WASM and native builds.
// The Render method accepts the Renderer interface (not concrete type) so the browser
// renderer, the static renderer and the test renderer can all drive it.
type Component interface {
	// Render generates the virtual DOM tree for this component.
	// The renderer parameter provides access to framework services like RenderChild.
	Render(r Renderer) *vdom.VNode

	// SetRenderer is called by the framework to attach the renderer to the component.
	// This enables StateHasChanged() to trigger re-renders.
	SetRenderer(r Renderer)
}

// ComponentFactory builds a component for a matched route.
type ComponentFactory func(params map[string]string) Component

// PropUpdater is implemented by components whose live instance should receive the props of
// a freshly constructed value on re-render. Internal state stays on the live instance.
type PropUpdater interface {
	ApplyProps(source Component)
}
