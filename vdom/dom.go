package vdom

// supportedTags lists the elements the DOM renderer knows how to create.
var supportedTags = map[string]bool{
	"a": true, "article": true, "aside": true, "button": true, "div": true,
	"footer": true, "h1": true, "h2": true, "h3": true, "header": true,
	"img": true, "li": true, "main": true, "nav": true, "ol": true,
	"p": true, "section": true, "span": true, "ul": true,
}

// renderable reports whether n produces a real DOM node. Every other child is mounted as an
// empty text node so DOM child indexes stay aligned with DOMChildren.
func renderable(n *VNode) bool {
	if n == nil {
		return false
	}
	if n.Tag == TextTag {
		return n.Content != ""
	}
	return supportedTags[n.Tag]
}

// DOMChildren returns the children of n in the order they appear in the DOM: Content as a
// leading text node, then Children, one DOM node each.
func DOMChildren(n *VNode) []*VNode {
	if n == nil {
		return nil
	}
	if n.Content == "" {
		return n.Children
	}
	out := make([]*VNode, 0, len(n.Children)+1)
	out = append(out, Text(n.Content))
	return append(out, n.Children...)
}
