//go:build js || wasm
// +build js wasm

package vdom

import (
	"syscall/js"

	"github.com/vcrobe/navheader/console"
)

// jsEvent adapts a browser event to Event.
type jsEvent struct {
	v js.Value
}

func (e jsEvent) PreventDefault() {
	if e.v.Truthy() {
		e.v.Call("preventDefault")
	}
}

func (e jsEvent) Modified() bool {
	if !e.v.Truthy() {
		return false
	}
	if b := e.v.Get("button"); b.Type() == js.TypeNumber && b.Int() != 0 {
		return true
	}
	for _, key := range []string{"ctrlKey", "metaKey", "shiftKey", "altKey"} {
		if e.v.Get(key).Truthy() {
			return true
		}
	}
	return false
}

// listener pairs a registered js.Func with the DOM event it listens to.
type listener struct {
	event string
	fn    js.Func
}

// releaseCallbacks releases all js.Func objects stored in a VNode.
func releaseCallbacks(v *VNode) {
	if v == nil {
		return
	}

	for _, cb := range v.GetEventCallbacks() {
		if l, ok := cb.(listener); ok {
			l.fn.Release()
		}
	}
	v.ClearEventCallbacks()
}

// detachEventListeners removes the listeners of v from el and releases them.
func detachEventListeners(el js.Value, v *VNode) {
	for _, cb := range v.GetEventCallbacks() {
		if l, ok := cb.(listener); ok {
			el.Call("removeEventListener", l.event, l.fn)
		}
	}
	releaseCallbacks(v)
}

// deepReleaseCallbacks recursively releases all callbacks in the entire VNode tree.
func deepReleaseCallbacks(v *VNode) {
	if v == nil {
		return
	}

	releaseCallbacks(v)

	for _, child := range v.Children {
		deepReleaseCallbacks(child)
	}
}

func mountElement(selector string) (js.Value, bool) {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return js.Undefined(), false
	}

	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector:", selector)
		return js.Undefined(), false
	}
	return mount, true
}

// Clear releases the callbacks of prevVDOM and empties the mount element.
func Clear(selector string, prevVDOM *VNode) {
	if selector == "" {
		return
	}

	if prevVDOM != nil {
		deepReleaseCallbacks(prevVDOM)
	}

	mount, ok := mountElement(selector)
	if !ok {
		return
	}
	mount.Set("innerHTML", "")
}

// RenderToSelector mounts the VNode under the first element matching the CSS selector.
func RenderToSelector(selector string, n *VNode) {
	if n == nil || selector == "" {
		return
	}

	mount, ok := mountElement(selector)
	if !ok {
		return
	}
	RenderTo(mount, n)
}

// RenderTo appends the rendered node to a specific mount element.
func RenderTo(mount js.Value, n *VNode) {
	if n == nil {
		return
	}

	if el := createNode(n); el.Truthy() {
		mount.Call("appendChild", el)
	}
}

// setAttributeValue sets an attribute on an element, handling boolean attributes and event handlers.
func setAttributeValue(el js.Value, key string, value any) {
	if isEventKey(key) {
		return
	}

	switch v := value.(type) {
	case nil:
		return
	case bool:
		if v {
			el.Call("setAttribute", key, "")
		} else {
			el.Call("removeAttribute", key)
		}
		return
	case EventHandler, func(Event), func():
		return
	}

	el.Call("setAttribute", key, value)
}

// attachEventListeners wraps every "on..." handler in js.FuncOf and registers it.
// The js.Func values are stored on the VNode so patching can release them.
func attachEventListeners(el js.Value, vnode *VNode) {
	for key := range vnode.Attributes {
		if !isEventKey(key) {
			continue
		}
		handler, ok := vnode.Handler(key)
		if !ok {
			continue
		}

		// "onClick" -> "click"
		eventName := string(key[2]+('a'-'A')) + key[3:]

		cb := js.FuncOf(func(this js.Value, args []js.Value) any {
			var ev jsEvent
			if len(args) > 0 {
				ev = jsEvent{v: args[0]}
			}
			handler(ev)
			return nil
		})

		el.Call("addEventListener", eventName, cb)
		vnode.AddEventCallback(listener{event: eventName, fn: cb})
	}
}

// createNode creates the DOM node for n, or an empty text node when n renders nothing.
func createNode(n *VNode) js.Value {
	if renderable(n) {
		return createElement(n)
	}
	if n != nil && n.Tag != TextTag {
		console.Error("Unsupported tag: ", n.Tag)
	}
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return js.Undefined()
	}
	return doc.Call("createTextNode", "")
}

func createElement(n *VNode) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return js.Undefined()
	}

	if n.Tag == TextTag {
		return doc.Call("createTextNode", n.Content)
	}

	el := doc.Call("createElement", n.Tag)

	for k, v := range n.Attributes {
		setAttributeValue(el, k, v)
	}
	attachEventListeners(el, n)

	for _, child := range DOMChildren(n) {
		if childEl := createNode(child); childEl.Truthy() {
			el.Call("appendChild", childEl)
		}
	}

	return el
}

// Patch updates the DOM by comparing old and new VDOM trees and applying minimal changes.
func Patch(mountSelector string, oldVNode, newVNode *VNode) {
	if oldVNode == nil || newVNode == nil {
		return
	}

	mount, ok := mountElement(mountSelector)
	if !ok {
		return
	}

	rootElement := mount.Get("firstChild")
	if !rootElement.Truthy() {
		RenderToSelector(mountSelector, newVNode)
		return
	}

	patchElement(rootElement, oldVNode, newVNode)
}

func replaceElement(domElement js.Value, oldVNode, newVNode *VNode) {
	deepReleaseCallbacks(oldVNode)

	newElement := createNode(newVNode)
	if !newElement.Truthy() {
		return
	}
	if parent := domElement.Get("parentNode"); parent.Truthy() {
		parent.Call("replaceChild", newElement, domElement)
	}
}

// patchElement updates a single DOM element based on VDOM differences.
func patchElement(domElement js.Value, oldVNode, newVNode *VNode) {
	if !domElement.Truthy() {
		return
	}

	// Placeholders carry no state worth patching.
	if !renderable(oldVNode) || !renderable(newVNode) {
		if renderable(oldVNode) || renderable(newVNode) {
			replaceElement(domElement, oldVNode, newVNode)
		}
		return
	}

	if oldVNode.ComponentKey != "" && newVNode.ComponentKey != "" && oldVNode.ComponentKey != newVNode.ComponentKey {
		console.Debug("Component keys differ, replacing subtree. Old:", oldVNode.ComponentKey, "New:", newVNode.ComponentKey)
		replaceElement(domElement, oldVNode, newVNode)
		return
	}

	if oldVNode.Tag != newVNode.Tag {
		replaceElement(domElement, oldVNode, newVNode)
		return
	}

	if newVNode.Tag == TextTag {
		if oldVNode.Content != newVNode.Content {
			domElement.Set("nodeValue", newVNode.Content)
		}
		return
	}

	patchAttributes(domElement, oldVNode.Attributes, newVNode.Attributes)

	// Listeners are always rebound: handler closures capture per-render state.
	detachEventListeners(domElement, oldVNode)
	attachEventListeners(domElement, newVNode)

	patchChildren(domElement, DOMChildren(oldVNode), DOMChildren(newVNode))
}

// patchAttributes updates the attributes of a DOM element.
func patchAttributes(domElement js.Value, oldAttrs, newAttrs map[string]any) {
	for key := range oldAttrs {
		if isEventKey(key) {
			continue
		}
		if _, exists := newAttrs[key]; !exists {
			domElement.Call("removeAttribute", key)
		}
	}

	for key, value := range newAttrs {
		if isEventKey(key) {
			continue
		}
		if oldAttrs == nil || oldAttrs[key] != value {
			setAttributeValue(domElement, key, value)
		}
	}
}

// patchChildren updates the children of a DOM element.
func patchChildren(domElement js.Value, oldChildren, newChildren []*VNode) {
	oldLen := len(oldChildren)
	newLen := len(newChildren)
	minLen := min(oldLen, newLen)

	domChildren := domElement.Get("childNodes")

	for i := 0; i < minLen; i++ {
		if childElement := domChildren.Call("item", i); childElement.Truthy() {
			patchElement(childElement, oldChildren[i], newChildren[i])
		}
	}

	for i := oldLen; i < newLen; i++ {
		if newChild := createNode(newChildren[i]); newChild.Truthy() {
			domElement.Call("appendChild", newChild)
		}
	}

	for i := oldLen - 1; i >= newLen; i-- {
		deepReleaseCallbacks(oldChildren[i])
		if childElement := domChildren.Call("item", i); childElement.Truthy() {
			domElement.Call("removeChild", childElement)
		}
	}
}
