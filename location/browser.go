//go:build js || wasm

package location

import "syscall/js"

// Browser reads window.location.pathname on every call.
type Browser struct{}

func (Browser) Pathname() string {
	loc := js.Global().Get("location")
	if !loc.Truthy() {
		return ""
	}
	return loc.Get("pathname").String()
}
