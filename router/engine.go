//go:build js || wasm
// +build js wasm

package router

import (
	"fmt"
	"sync"
	"syscall/js"

	"github.com/vcrobe/navheader/console"
	"github.com/vcrobe/navheader/runtime"
)

// Compile-time assertion that the engine can serve as the renderer's navigation manager.
var _ runtime.NavigationManager = (*Engine)(nil)

// Engine manages client-side routing: it resolves paths against the route table, keeps the
// browser history in sync and hands the page component to the route change callback.
type Engine struct {
	mu               sync.Mutex
	table            Table
	currentPath      string
	onRouteChange    func(page runtime.Component, key string)
	popstateListener js.Func
	listening        bool
}

// NewEngine creates a new router engine.
func NewEngine() *Engine {
	return &Engine{}
}

// RegisterRoutes adds routes to the engine.
func (e *Engine) RegisterRoutes(routes []Route) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.table.Register(routes...)
}

// HandleNotFound sets the page rendered when no route matches.
func (e *Engine) HandleNotFound(factory runtime.ComponentFactory) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.table.HandleNotFound(factory)
}

// Navigate changes the current route, pushes the new URL and notifies the callback.
func (e *Engine) Navigate(path string) error {
	return e.navigateInternal(path, false)
}

// navigateInternal handles the navigation logic; skipPushState is set for popstate events,
// where the browser already updated the URL.
func (e *Engine) navigateInternal(path string, skipPushState bool) error {
	e.mu.Lock()

	log := console.WithFields(map[string]any{"path": path, "from": e.currentPath})

	if path == "" {
		log.Warn("navigate called with empty path")
		path = "/"
	}

	route, params, ok := e.table.Resolve(path)
	if !ok {
		e.mu.Unlock()
		log.Error("no route found")
		return fmt.Errorf("no route for path: %s", path)
	}

	if !skipPushState {
		js.Global().Get("history").Call("pushState", nil, "", path)
	}

	e.currentPath = path
	onChange := e.onRouteChange
	e.mu.Unlock()

	log.WithField("pattern", route.Path).Debug("route resolved")

	// The callback renders, and rendering may read CurrentPath, so it runs unlocked.
	if onChange != nil {
		onChange(route.Factory(params), path)
	}
	return nil
}

// Pathname implements location.Provider with the path of the last navigation.
func (e *Engine) Pathname() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.currentPath
}

// Start registers the popstate listener and navigates to the initial browser URL.
func (e *Engine) Start(onChange func(page runtime.Component, key string)) error {
	e.mu.Lock()
	e.onRouteChange = onChange
	e.mu.Unlock()

	e.popstateListener = js.FuncOf(func(this js.Value, args []js.Value) any {
		currentPath := js.Global().Get("location").Get("pathname").String()
		console.Debug("popstate event fired, path:", currentPath)
		if err := e.navigateInternal(currentPath, true); err != nil {
			console.Error("popstate navigation failed:", err.Error())
		}
		return nil
	})
	js.Global().Call("addEventListener", "popstate", e.popstateListener)
	e.listening = true

	initialPath := js.Global().Get("location").Get("pathname").String()
	if initialPath == "" {
		initialPath = "/"
	}
	return e.navigateInternal(initialPath, true)
}

// Cleanup releases resources held by the engine.
func (e *Engine) Cleanup() {
	if !e.listening {
		return
	}
	js.Global().Call("removeEventListener", "popstate", e.popstateListener)
	e.popstateListener.Release()
	e.listening = false
	console.Debug("popstate listener cleaned up")
}
