package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/navheader/router"
	"github.com/vcrobe/navheader/testcomponents"
	"github.com/vcrobe/navheader/vdom"
)

// renderItem mounts a NavListItem for d at path and returns the item and its output.
func renderItem(t *testing.T, d NavLinkDescriptor, path string) (*NavListItem, *testcomponents.TestRenderer, *vdom.VNode) {
	t.Helper()
	item := NewNavListItem(d)
	renderer := testcomponents.NewTestRenderer(item).WithPath(path)
	vnode := renderer.RenderRoot()
	require.NotNil(t, vnode)
	return item, renderer, vnode
}

// itemBody returns the styled <div> wrapped by the anchor.
func itemBody(t *testing.T, vnode *vdom.VNode) *vdom.VNode {
	t.Helper()
	require.Equal(t, "a", vnode.Tag)
	require.Len(t, vnode.Children, 1)
	body := vnode.Children[0]
	require.Equal(t, "div", body.Tag)
	return body
}

func assertHighlighted(t *testing.T, body *vdom.VNode) {
	t.Helper()
	assert.True(t, body.HasClass("text-substrateGreen"), "class %q", body.Attr("class"))
	assert.True(t, body.HasClass("underline"), "class %q", body.Attr("class"))
	assert.False(t, body.HasClass("text-black"), "class %q", body.Attr("class"))
}

func assertNotHighlighted(t *testing.T, body *vdom.VNode) {
	t.Helper()
	assert.True(t, body.HasClass("text-black"), "class %q", body.Attr("class"))
	assert.False(t, body.HasClass("text-substrateGreen"), "class %q", body.Attr("class"))
	assert.False(t, body.HasClass("underline"), "class %q", body.Attr("class"))
}

// TestNavListItem_ExternalRendersPlainAnchor verifies that external links are plain
// anchors without router handling.
func TestNavListItem_ExternalRendersPlainAnchor(t *testing.T) {
	_, _, vnode := renderItem(t, NavLinkDescriptor{External: true, Link: "https://example.com/docs", Title: "Docs"}, "/")

	assert.Equal(t, "a", vnode.Tag)
	assert.Equal(t, "https://example.com/docs", vnode.Attr("href"))
	assert.Empty(t, vnode.Attr(router.LinkMarker))
	_, hasClick := vnode.Handler("onClick")
	assert.False(t, hasClick, "external anchors must not intercept clicks")
}

// TestNavListItem_InternalRendersRouterLink verifies that internal links go through the
// router Link component.
func TestNavListItem_InternalRendersRouterLink(t *testing.T) {
	_, _, vnode := renderItem(t, NavLinkDescriptor{External: false, Link: "/docs", Title: "Docs"}, "/")

	assert.Equal(t, "a", vnode.Tag)
	assert.Equal(t, "/docs", vnode.Attr("href"))
	assert.Equal(t, "true", vnode.Attr(router.LinkMarker))
	_, hasClick := vnode.Handler("onClick")
	assert.True(t, hasClick)
}

func TestNavListItem_ElementKind(t *testing.T) {
	tests := []struct {
		name     string
		external bool
		link     string
	}{
		{name: "external url", external: true, link: "https://github.com/org/repo"},
		{name: "external path", external: true, link: "/blog"},
		{name: "internal path", external: false, link: "/about"},
		{name: "internal root", external: false, link: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, vnode := renderItem(t, NavLinkDescriptor{External: tt.external, Link: tt.link, Title: "T"}, "/elsewhere")

			isRouterLink := vnode.Attr(router.LinkMarker) == "true"
			assert.Equal(t, !tt.external, isRouterLink)
		})
	}
}

// TestNavListItem_HighlightsCurrentPath verifies that an item whose link equals the
// current path carries the highlight classes.
func TestNavListItem_HighlightsCurrentPath(t *testing.T) {
	item, _, vnode := renderItem(t, NavLinkDescriptor{Link: "/about", Title: "About"}, "/about")

	assert.True(t, item.IsCurrent)
	assertHighlighted(t, itemBody(t, vnode))
	assert.True(t, itemBody(t, vnode).HasClass("whitespace-nowrap"), "base classes always apply")
}

// TestNavListItem_DefaultStyleElsewhere verifies the non-current style.
func TestNavListItem_DefaultStyleElsewhere(t *testing.T) {
	item, _, vnode := renderItem(t, NavLinkDescriptor{Link: "/about", Title: "About"}, "/contact")

	assert.False(t, item.IsCurrent)
	body := itemBody(t, vnode)
	assertNotHighlighted(t, body)
	assert.Equal(t, vdom.Classes(BaseClass, DefaultClass), body.Attr("class"))
}

// TestNavListItem_TitleVerbatim verifies that the title is rendered unchanged.
func TestNavListItem_TitleVerbatim(t *testing.T) {
	titles := []string{"Docs", "  padded  ", "R&D <beta>", "Über uns"}

	for _, title := range titles {
		_, _, vnode := renderItem(t, NavLinkDescriptor{Link: "/x", Title: title}, "/")

		body := itemBody(t, vnode)
		require.Len(t, body.Children, 1)
		span := body.Children[0]
		assert.Equal(t, "span", span.Tag)
		assert.Equal(t, title, span.Content)
	}
}

// TestNavListItem_StaysCurrentAcrossReRenders verifies that re-rendering with the same
// props never turns the highlight off.
func TestNavListItem_StaysCurrentAcrossReRenders(t *testing.T) {
	item, renderer, _ := renderItem(t, NavLinkDescriptor{Link: "/about", Title: "About"}, "/about")
	require.True(t, item.IsCurrent)

	renderer.ReRender()
	renderer.ReRender()

	assert.True(t, item.IsCurrent)
	assertHighlighted(t, itemBody(t, renderer.GetCurrentVDOM()))
}

// TestNavListItem_NotRecomputedWithoutRemount verifies that the path is only read at mount.
func TestNavListItem_NotRecomputedWithoutRemount(t *testing.T) {
	item, renderer, _ := renderItem(t, NavLinkDescriptor{Link: "/about", Title: "About"}, "/about")
	require.True(t, item.IsCurrent)

	renderer.SetPath("/contact")
	renderer.ReRender()
	assert.True(t, item.IsCurrent, "a mounted item never goes back to false")

	other, otherRenderer, _ := renderItem(t, NavLinkDescriptor{Link: "/about", Title: "About"}, "/contact")
	require.False(t, other.IsCurrent)

	otherRenderer.SetPath("/about")
	otherRenderer.ReRender()
	assert.False(t, other.IsCurrent, "path changes are only seen after a remount")
}

// TestNavListItem_RemountRecomputes verifies that a remount reads the path again.
func TestNavListItem_RemountRecomputes(t *testing.T) {
	list := &NavList{Items: []NavLinkDescriptor{{Link: "/about", Title: "About"}}}
	renderer := testcomponents.NewTestRenderer(list).WithPath("/contact")

	vnode := renderer.RenderRoot()
	assertNotHighlighted(t, firstBody(t, vnode))

	renderer.SetPath("/about")
	vnode = renderer.Remount()
	assertHighlighted(t, firstBody(t, vnode))
}

// TestNavListItem_ExactComparison verifies that no normalization is applied.
func TestNavListItem_ExactComparison(t *testing.T) {
	tests := []struct {
		name    string
		desc    NavLinkDescriptor
		path    string
		current bool
	}{
		{name: "exact", desc: NavLinkDescriptor{Link: "/docs"}, path: "/docs", current: true},
		{name: "trailing slash on path", desc: NavLinkDescriptor{Link: "/docs"}, path: "/docs/", current: false},
		{name: "trailing slash on link", desc: NavLinkDescriptor{Link: "/docs/"}, path: "/docs", current: false},
		{name: "query string", desc: NavLinkDescriptor{Link: "/docs?tab=1"}, path: "/docs", current: false},
		{name: "case differs", desc: NavLinkDescriptor{Link: "/Docs"}, path: "/docs", current: false},
		{name: "external url", desc: NavLinkDescriptor{External: true, Link: "https://example.com/docs"}, path: "/docs", current: false},
		{name: "external bare path", desc: NavLinkDescriptor{External: true, Link: "/docs"}, path: "/docs", current: true},
		{name: "malformed link", desc: NavLinkDescriptor{Link: "::not a url"}, path: "/", current: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.desc.Title = "Docs"
			item, _, _ := renderItem(t, tt.desc, tt.path)
			assert.Equal(t, tt.current, item.IsCurrent)
		})
	}
}

// TestNavListItem_DocsExample covers the documented example end to end.
func TestNavListItem_DocsExample(t *testing.T) {
	_, _, vnode := renderItem(t, NavLinkDescriptor{External: false, Link: "/docs", Title: "Docs"}, "/docs")

	assert.Equal(t, "Docs", vnode.TextContent())
	assert.Equal(t, "true", vnode.Attr(router.LinkMarker))
	assertHighlighted(t, itemBody(t, vnode))
}

// TestNavListItem_ClickNavigates verifies that clicking an internal link navigates through
// the renderer and suppresses the browser's own navigation.
func TestNavListItem_ClickNavigates(t *testing.T) {
	_, renderer, vnode := renderItem(t, NavLinkDescriptor{Link: "/docs", Title: "Docs"}, "/")

	ev := testcomponents.Click(vnode)

	require.NotNil(t, ev)
	assert.True(t, ev.DefaultPrevented)
	assert.Equal(t, []string{"/docs"}, renderer.Navigations)
}

// TestNavListItem_ApplyPropsKeepsState verifies that prop updates on a live instance do not
// touch IsCurrent.
func TestNavListItem_ApplyPropsKeepsState(t *testing.T) {
	item := &NavListItem{NavLinkDescriptor: NavLinkDescriptor{Link: "/a", Title: "A"}, IsCurrent: true}

	item.ApplyProps(NewNavListItem(NavLinkDescriptor{Link: "/b", Title: "B", External: true}))

	assert.True(t, item.IsCurrent)
	assert.Equal(t, NavLinkDescriptor{Link: "/b", Title: "B", External: true}, item.NavLinkDescriptor)
}

// TestNavListItem_ModifiedClickLeftToBrowser verifies that ctrl/cmd-clicks on an internal
// link open it the browser's way instead of navigating in place.
func TestNavListItem_ModifiedClickLeftToBrowser(t *testing.T) {
	_, renderer, vnode := renderItem(t, NavLinkDescriptor{Link: "/docs", Title: "Docs"}, "/")

	ev := testcomponents.ClickWith(vnode, &testcomponents.RecordingEvent{MetaKey: true})

	require.NotNil(t, ev)
	assert.False(t, ev.DefaultPrevented)
	assert.Empty(t, renderer.Navigations)
}
