// Package location provides the read-only "current path" accessor that components compare
// their links against. Renderers hold a Provider and hand it to components, so nothing reads
// the browser location directly.
package location

// Provider reports the path component of the URL currently displayed.
type Provider interface {
	Pathname() string
}

// Static is a fixed path. Used for tests and pre-rendering.
type Static string

func (s Static) Pathname() string {
	return string(s)
}

// Func adapts a plain function to Provider.
type Func func() string

func (f Func) Pathname() string {
	if f == nil {
		return ""
	}
	return f()
}
