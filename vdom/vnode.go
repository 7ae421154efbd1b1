package vdom

import "strings"

// TextTag marks a pure text node with no element wrapper.
const TextTag = "#text"

// Event is the part of a DOM event that Go handlers can act on.
// The wasm renderer wraps the browser event; tests pass their own implementation.
type Event interface {
	PreventDefault()
	// Modified reports a click made with a modifier key held (ctrl, meta, shift, alt) or
	// with a button other than the primary one.
	Modified() bool
}

// EventHandler is the value stored under an "on..." attribute key (e.g. "onClick").
type EventHandler func(Event)

// VNode represents a virtual DOM node.
type VNode struct {
	Tag          string         // The HTML tag name
	Attributes   map[string]any // The attributes of the node, including "on..." event handlers
	Children     []*VNode       // The child nodes
	Content      string         // The text content of the node
	ComponentKey string         // Set by the renderer for component roots

	eventCallbacks []any // Browser-side listener handles, released on patch
}

// NewVNode creates a new VNode.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
	}
}

// SetContent updates the Content field of the VNode.
func (v *VNode) SetContent(content string) {
	v.Content = content
}

// Attr returns the attribute value as a string, or "" if it is absent or not a string.
func (v *VNode) Attr(key string) string {
	if v == nil || v.Attributes == nil {
		return ""
	}
	s, _ := v.Attributes[key].(string)
	return s
}

// Handler returns the event handler registered under key (e.g. "onClick"), if any.
func (v *VNode) Handler(key string) (EventHandler, bool) {
	if v == nil || v.Attributes == nil {
		return nil, false
	}
	switch h := v.Attributes[key].(type) {
	case EventHandler:
		return h, true
	case func(Event):
		return h, true
	}
	return nil, false
}

// HasClass reports whether the node's class attribute contains name as a whole word.
func (v *VNode) HasClass(name string) bool {
	for _, c := range strings.Fields(v.Attr("class")) {
		if c == name {
			return true
		}
	}
	return false
}

// TextContent concatenates the content of the node and all its descendants.
func (v *VNode) TextContent() string {
	if v == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(v.Content)
	for _, child := range v.Children {
		b.WriteString(child.TextContent())
	}
	return b.String()
}

// AddEventCallback stores a listener handle so it can be released later.
func (v *VNode) AddEventCallback(cb any) {
	v.eventCallbacks = append(v.eventCallbacks, cb)
}

// GetEventCallbacks returns the stored listener handles.
func (v *VNode) GetEventCallbacks() []any {
	return v.eventCallbacks
}

// ClearEventCallbacks drops all stored listener handles.
func (v *VNode) ClearEventCallbacks() {
	v.eventCallbacks = nil
}

// Classes joins the non-empty class names with single spaces.
func Classes(names ...string) string {
	parts := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, " ")
}

// Text creates a pure text node.
func Text(content string) *VNode {
	return NewVNode(TextTag, nil, nil, content)
}

// Paragraph creates a <p> VNode with the given text as its child and allows passing attributes.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Span creates a <span> VNode holding text.
func Span(text string, attrs map[string]any) *VNode {
	return NewVNode("span", attrs, nil, text)
}

// A creates an <a> VNode pointing at href.
func A(href string, attrs map[string]any, children ...*VNode) *VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["href"] = href
	return NewVNode("a", attrs, children, "")
}

// Nav creates a <nav> VNode.
func Nav(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("nav", attrs, children, "")
}

// Header creates a <header> VNode.
func Header(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("header", attrs, children, "")
}

// Ul creates a <ul> VNode.
func Ul(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("ul", attrs, children, "")
}

// Li creates an <li> VNode.
func Li(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("li", attrs, children, "")
}
