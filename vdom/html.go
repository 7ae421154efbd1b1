package vdom

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderHTML serializes the VNode tree as HTML.
// Event handlers are dropped and boolean attributes follow DOM rules: true renders the bare
// attribute, false omits it.
func RenderHTML(w io.Writer, n *VNode) error {
	if n == nil {
		return nil
	}
	node := toHTMLNode(n)
	if node == nil {
		return nil
	}
	if err := html.Render(w, node); err != nil {
		return fmt.Errorf("render %s: %w", n.Tag, err)
	}
	return nil
}

// RenderHTMLString is RenderHTML into a string.
func RenderHTMLString(n *VNode) (string, error) {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func toHTMLNode(n *VNode) *html.Node {
	if n == nil {
		return nil
	}

	if n.Tag == TextTag {
		if n.Content == "" {
			return nil
		}
		return &html.Node{Type: html.TextNode, Data: n.Content}
	}

	el := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
		Attr:     htmlAttributes(n.Attributes),
	}

	if n.Content != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
	}

	for _, child := range n.Children {
		if c := toHTMLNode(child); c != nil {
			el.AppendChild(c)
		}
	}

	return el
}

func htmlAttributes(attrs map[string]any) []html.Attribute {
	if len(attrs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]html.Attribute, 0, len(keys))
	for _, k := range keys {
		v := attrs[k]
		if isEventKey(k) {
			continue
		}
		switch val := v.(type) {
		case nil:
			continue
		case bool:
			if val {
				out = append(out, html.Attribute{Key: k})
			}
		case EventHandler, func(Event), func():
			continue
		default:
			out = append(out, html.Attribute{Key: k, Val: fmt.Sprint(val)})
		}
	}
	return out
}

// isEventKey reports whether an attribute key names an event handler ("onClick", "onInput").
func isEventKey(key string) bool {
	return len(key) > 2 && strings.HasPrefix(key, "on") && key[2] >= 'A' && key[2] <= 'Z'
}
