//go:build js || wasm

package main

import (
	_ "embed"

	"github.com/vcrobe/navheader/console"
	"github.com/vcrobe/navheader/navconfig"
	"github.com/vcrobe/navheader/router"
	"github.com/vcrobe/navheader/runtime"
)

//go:embed nav.yaml
var navYAML []byte

func main() {
	cfg, err := navconfig.Parse(navYAML)
	if err != nil {
		panic("Error loading navigation: " + err.Error())
	}

	// 1. Create the router and register one page per internal link
	engine := router.NewEngine()

	routes := make([]router.Route, 0, len(cfg.Items))
	for _, item := range cfg.Items {
		if item.External {
			continue
		}
		title := item.Title
		routes = append(routes, router.Route{
			Path:    item.Link,
			Factory: func(params map[string]string) runtime.Component { return &Page{Title: title} },
		})
	}
	engine.RegisterRoutes(routes)

	engine.HandleNotFound(func(params map[string]string) runtime.Component {
		return &Page{Title: "Page not found"}
	})

	// 2. Create the renderer; the router is both the navigation manager and the
	// location the header compares its links against
	renderer := runtime.NewRenderer(engine, engine, "#app")

	// 3. Every navigation re-keys the root, so the header remounts and its items
	// re-read the current path
	onRouteChange := func(page runtime.Component, key string) {
		renderer.SetCurrentComponent(&Layout{Config: cfg, Page: page}, key)
		renderer.RenderRoot()
	}

	// 4. Start the router: this reads the initial URL and triggers the first render
	if err := engine.Start(onRouteChange); err != nil {
		panic("Error starting router: " + err.Error())
	}
	console.Log("navapp started with", len(routes), "routes")

	// Keep the Go program running
	select {}
}
