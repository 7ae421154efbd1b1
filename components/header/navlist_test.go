package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/navheader/testcomponents"
	"github.com/vcrobe/navheader/vdom"
)

var siteItems = []NavLinkDescriptor{
	{Link: "/", Title: "Home"},
	{Link: "/about", Title: "About"},
	{Link: "/docs", Title: "Docs"},
	{External: true, Link: "https://github.com/example/site", Title: "GitHub"},
}

func firstBody(t *testing.T, root *vdom.VNode) *vdom.VNode {
	t.Helper()
	body := testcomponents.Find(root, testcomponents.ByTag("div"))
	require.NotNil(t, body)
	return body
}

func highlightedTitles(root *vdom.VNode) []string {
	var titles []string
	for _, div := range testcomponents.FindAll(root, testcomponents.ByTag("div")) {
		if div.HasClass("text-substrateGreen") {
			titles = append(titles, div.TextContent())
		}
	}
	return titles
}

// TestNavList_RendersOneItemPerDescriptor verifies the list structure.
func TestNavList_RendersOneItemPerDescriptor(t *testing.T) {
	list := &NavList{Items: siteItems}
	renderer := testcomponents.NewTestRenderer(list).WithPath("/")

	vnode := renderer.RenderRoot()

	assert.Equal(t, "ul", vnode.Tag)
	require.Len(t, vnode.Children, len(siteItems))
	for i, li := range vnode.Children {
		assert.Equal(t, "li", li.Tag)
		assert.Equal(t, siteItems[i].Title, li.TextContent())
		assert.Equal(t, siteItems[i].Link, li.Children[0].Attr("href"))
	}
}

// TestNavList_HighlightsOnlyCurrent verifies that exactly the matching item is highlighted.
func TestNavList_HighlightsOnlyCurrent(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{path: "/", want: []string{"Home"}},
		{path: "/about", want: []string{"About"}},
		{path: "/docs", want: []string{"Docs"}},
		{path: "/docs/", want: nil},
		{path: "/unknown", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			renderer := testcomponents.NewTestRenderer(&NavList{Items: siteItems}).WithPath(tt.path)

			vnode := renderer.RenderRoot()

			assert.Equal(t, tt.want, highlightedTitles(vnode))
		})
	}
}

// TestNavList_ItemStateSurvivesParentReRender verifies that item instances are reused.
func TestNavList_ItemStateSurvivesParentReRender(t *testing.T) {
	list := &NavList{Items: siteItems}
	renderer := testcomponents.NewTestRenderer(list).WithPath("/about")
	renderer.RenderRoot()
	instances := renderer.LiveInstances()

	list.StateHasChanged()
	list.StateHasChanged()

	assert.Equal(t, []string{"About"}, highlightedTitles(renderer.GetCurrentVDOM()))
	assert.Equal(t, instances, renderer.LiveInstances())
}

// TestNavList_ChangedItemsRemountByKey verifies that replacing an item mounts a new
// instance, which reads the current path again.
func TestNavList_ChangedItemsRemountByKey(t *testing.T) {
	list := &NavList{Items: []NavLinkDescriptor{{Link: "/about", Title: "About"}}}
	renderer := testcomponents.NewTestRenderer(list).WithPath("/docs")
	renderer.RenderRoot()
	require.Empty(t, highlightedTitles(renderer.GetCurrentVDOM()))

	list.Items = []NavLinkDescriptor{{Link: "/docs", Title: "Docs"}}
	list.StateHasChanged()

	assert.Equal(t, []string{"Docs"}, highlightedTitles(renderer.GetCurrentVDOM()))
}

// TestHeader_Structure verifies the brand link and the navigation list.
func TestHeader_Structure(t *testing.T) {
	h := &Header{Brand: "Example", Items: siteItems}
	renderer := testcomponents.NewTestRenderer(h).WithPath("/docs")

	vnode := renderer.RenderRoot()

	assert.Equal(t, "header", vnode.Tag)
	require.Len(t, vnode.Children, 1)
	nav := vnode.Children[0]
	assert.Equal(t, "nav", nav.Tag)
	require.Len(t, nav.Children, 2)

	brand := nav.Children[0]
	assert.Equal(t, "a", brand.Tag)
	assert.Equal(t, "/", brand.Attr("href"))
	assert.Equal(t, "Example", brand.TextContent())

	assert.Equal(t, "ul", nav.Children[1].Tag)
	assert.Equal(t, []string{"Docs"}, highlightedTitles(vnode))
}

// TestHeader_WithoutBrand verifies that the brand link is optional.
func TestHeader_WithoutBrand(t *testing.T) {
	renderer := testcomponents.NewTestRenderer(&Header{Items: siteItems}).WithPath("/")

	vnode := renderer.RenderRoot()

	nav := vnode.Children[0]
	require.Len(t, nav.Children, 1)
	assert.Equal(t, "ul", nav.Children[0].Tag)
}

// TestHeader_BrandClickNavigates verifies that the brand is an internal link.
func TestHeader_BrandClickNavigates(t *testing.T) {
	h := &Header{Brand: "Example", BrandLink: "/home", Items: siteItems}
	renderer := testcomponents.NewTestRenderer(h).WithPath("/")
	vnode := renderer.RenderRoot()

	ev := testcomponents.Click(vnode.Children[0].Children[0])

	require.NotNil(t, ev)
	assert.Equal(t, []string{"/home"}, renderer.Navigations)
}
