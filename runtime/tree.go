package runtime

import (
	"strings"

	"github.com/vcrobe/navheader/vdom"
)

// RootKey is the key under which renderers mount their root component.
const RootKey = "__root__"

type pendingMount struct {
	key     string
	mounter Mounter
}

// InstanceTree tracks live component instances across render passes.
//
// Instances are identified by the path of keys from the root, so the same child key under
// two different parents names two different instances, and re-keying a parent remounts its
// whole subtree. Renderers call BeginPass, render through RenderChild, then Sweep and
// FlushMounts once the output is attached.
type InstanceTree struct {
	instances map[string]Component
	active    map[string]bool
	scope     []string
	pending   []pendingMount
}

// NewInstanceTree creates an empty tree.
func NewInstanceTree() *InstanceTree {
	return &InstanceTree{
		instances: make(map[string]Component),
		active:    make(map[string]bool),
	}
}

// BeginPass resets the set of instances seen in the current render pass.
func (t *InstanceTree) BeginPass() {
	t.active = make(map[string]bool)
	t.scope = t.scope[:0]
}

// RenderChild resolves the live instance for key, runs OnParametersSet and renders it.
// A new instance is queued for OnMount; an existing one receives the props of childWithProps
// when it implements PropUpdater.
func (t *InstanceTree) RenderChild(r Renderer, key string, childWithProps Component) *vdom.VNode {
	if childWithProps == nil {
		return nil
	}

	fullKey := t.qualify(key)
	t.active[fullKey] = true

	instance, exists := t.instances[fullKey]
	if !exists {
		instance = childWithProps
		t.instances[fullKey] = instance
		if m, ok := instance.(Mounter); ok {
			t.pending = append(t.pending, pendingMount{key: fullKey, mounter: m})
		}
	} else if instance != childWithProps {
		if updater, ok := instance.(PropUpdater); ok {
			updater.ApplyProps(childWithProps)
		}
	}

	instance.SetRenderer(r)

	if receiver, ok := instance.(ParameterReceiver); ok {
		CallOnParametersSet(receiver, fullKey)
	}

	t.scope = append(t.scope, key)
	vnode := instance.Render(r)
	t.scope = t.scope[:len(t.scope)-1]

	if vnode != nil {
		vnode.ComponentKey = fullKey
	}
	return vnode
}

// Sweep removes instances that were not rendered in the current pass and calls OnUnmount.
func (t *InstanceTree) Sweep() {
	for key, instance := range t.instances {
		if t.active[key] {
			continue
		}
		if u, ok := instance.(Unmounter); ok {
			CallOnUnmount(u, key)
		}
		delete(t.instances, key)
	}
}

// FlushMounts runs the queued OnMount hooks in render order and reports how many ran.
// Hooks queued for instances that were swept in the meantime are dropped.
func (t *InstanceTree) FlushMounts() int {
	pending := t.pending
	t.pending = nil

	ran := 0
	for _, p := range pending {
		if _, live := t.instances[p.key]; !live {
			continue
		}
		CallOnMount(p.mounter, p.key)
		ran++
	}
	return ran
}

// Instance returns the live instance stored under a fully qualified key.
func (t *InstanceTree) Instance(fullKey string) (Component, bool) {
	c, ok := t.instances[fullKey]
	return c, ok
}

// Len returns the number of live instances.
func (t *InstanceTree) Len() int {
	return len(t.instances)
}

func (t *InstanceTree) qualify(key string) string {
	if len(t.scope) == 0 {
		return key
	}
	return strings.Join(t.scope, ">") + ">" + key
}
