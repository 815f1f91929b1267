package reactivity

import (
	"sync"

	"github.com/fleetcore/hxglue/pkg/vdom"
)

// Runtime initialises the declarative bindings inside a subtree.
type Runtime interface {
	InitTree(root *vdom.VNode)
}

// InitFunc initialises one bound element.
type InitFunc func(node *vdom.VNode, config Config)

// Registry is a Runtime that dispatches bindings to registered
// initialisers by name. Each element is initialised at most once.
type Registry struct {
	mu    sync.RWMutex
	inits map[string]InitFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{inits: make(map[string]InitFunc)}
}

// Register sets the initialiser for name, replacing any previous one.
func (r *Registry) Register(name string, fn InitFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inits[name] = fn
}

// Registered reports whether name has an initialiser.
func (r *Registry) Registered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.inits[name]
	return ok
}

// InitTree initialises every uninitialised binding in root, root included.
// Unknown names and unparsable values are left unmarked so a later scan can
// pick them up.
func (r *Registry) InitTree(root *vdom.VNode) {
	r.Init(root)
}

// Init is InitTree with a count of initialised elements.
func (r *Registry) Init(root *vdom.VNode) int {
	if root == nil {
		return 0
	}

	count := 0
	root.Walk(func(n *vdom.VNode) bool {
		if n.Kind != vdom.KindElement {
			return true
		}
		value, ok := n.Attr(BindingAttr)
		if !ok {
			return true
		}
		if _, done := n.Attr(InitAttr); done {
			return true
		}

		name, config, err := ParseBinding(value)
		if err != nil {
			return true
		}
		r.mu.RLock()
		fn := r.inits[name]
		r.mu.RUnlock()
		if fn == nil {
			return true
		}

		n.SetAttr(InitAttr, "true")
		fn(n, config)
		count++
		return true
	})
	return count
}
