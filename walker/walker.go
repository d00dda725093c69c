// Package walker traverses documents depth first and calls registered
// handlers for each node.
//
// Handlers are registered through options and return an Action telling
// the walker how to proceed: keep going, skip the node's children, or
// stop the walk entirely. Mapping keys are visited in sorted order so
// traversals are deterministic.
//
//	err := walker.Walk(doc,
//	    walker.WithLeafHandler(func(v *document.Value, p path.Path) walker.Action {
//	        fmt.Printf("%s = %s\n", p, v)
//	        return walker.Continue
//	    }),
//	)
package walker

import (
	"fmt"

	"github.com/erraggy/lenstools/document"
	"github.com/erraggy/lenstools/path"
)

// Action controls the walker's behavior after visiting a node.
type Action int

const (
	// Continue continues walking normally, visiting children and siblings.
	Continue Action = iota

	// SkipChildren skips all children of the current node but continues with siblings.
	SkipChildren

	// Stop stops the walk immediately. No more nodes will be visited.
	Stop
)

// IsValid returns true if the action is one of the defined constants.
func (a Action) IsValid() bool {
	return a >= Continue && a <= Stop
}

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case SkipChildren:
		return "SkipChildren"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// Handler types for each node kind. Each handler receives the node and
// its path from the document root, and returns an Action.

// ValueHandler is called for every node regardless of kind.
type ValueHandler func(v *document.Value, p path.Path) Action

// MappingHandler is called for each mapping node.
type MappingHandler func(obj *document.Object, p path.Path) Action

// SequenceHandler is called for each sequence node.
type SequenceHandler func(arr *document.Array, p path.Path) Action

// LeafHandler is called for each leaf node: any value that is neither
// a mapping nor a sequence.
type LeafHandler func(v *document.Value, p path.Path) Action

// DepthExceededHandler is called when a node's children are skipped
// because the node sits at the maximum depth.
type DepthExceededHandler func(v *document.Value, p path.Path)

// Walker traverses documents and calls handlers for each node kind.
type Walker struct {
	// Handlers
	onValue         ValueHandler
	onMapping       MappingHandler
	onSequence      SequenceHandler
	onLeaf          LeafHandler
	onDepthExceeded DepthExceededHandler

	// Configuration
	maxDepth int

	// Internal state
	stopped bool
}

// New creates a new Walker with default settings.
func New() *Walker {
	return &Walker{
		maxDepth: 100,
	}
}

// Option configures the Walker.
type Option func(*Walker)

// WithValueHandler sets the handler called for every node. When a node
// also has a kind handler, the kind handler runs first.
func WithValueHandler(fn ValueHandler) Option {
	return func(w *Walker) { w.onValue = fn }
}

// WithMappingHandler sets the handler for mapping nodes.
func WithMappingHandler(fn MappingHandler) Option {
	return func(w *Walker) { w.onMapping = fn }
}

// WithSequenceHandler sets the handler for sequence nodes.
func WithSequenceHandler(fn SequenceHandler) Option {
	return func(w *Walker) { w.onSequence = fn }
}

// WithLeafHandler sets the handler for leaf nodes.
func WithLeafHandler(fn LeafHandler) Option {
	return func(w *Walker) { w.onLeaf = fn }
}

// WithDepthExceededHandler sets the handler called when children are
// skipped by the depth limit.
func WithDepthExceededHandler(fn DepthExceededHandler) Option {
	return func(w *Walker) { w.onDepthExceeded = fn }
}

// WithMaxDepth sets the maximum traversal depth. The root is at depth
// zero. Default is 100. If depth is <= 0, the default is kept.
func WithMaxDepth(depth int) Option {
	return func(w *Walker) {
		if depth > 0 {
			w.maxDepth = depth
		}
	}
}

// Walk traverses the document and calls registered handlers for each
// node.
func Walk(doc *document.Value, opts ...Option) error {
	if doc == nil {
		return fmt.Errorf("walker: nil document")
	}
	if doc.IsAbsent() {
		return fmt.Errorf("walker: cannot walk the absent marker")
	}

	w := New()
	for _, opt := range opts {
		opt(w)
	}

	w.stopped = false
	w.visit(doc, path.Root(), 0)
	return nil
}

// visit walks one node: kind handler first, then the generic handler,
// then children unless a handler said otherwise.
func (w *Walker) visit(v *document.Value, p path.Path, depth int) {
	if w.stopped {
		return
	}

	continueToChildren := true

	// The generic handler still runs after SkipChildren, but not
	// after Stop.
	switch {
	case v.IsObject():
		if w.onMapping != nil {
			if !w.handleAction(w.onMapping(v.AsObject(), p)) {
				if w.stopped {
					return
				}
				continueToChildren = false
			}
		}
	case v.IsArray():
		if w.onSequence != nil {
			if !w.handleAction(w.onSequence(v.AsArray(), p)) {
				if w.stopped {
					return
				}
				continueToChildren = false
			}
		}
	default:
		if w.onLeaf != nil {
			if !w.handleAction(w.onLeaf(v, p)) {
				if w.stopped {
					return
				}
				continueToChildren = false
			}
		}
	}

	if w.onValue != nil {
		if !w.handleAction(w.onValue(v, p)) {
			if w.stopped {
				return
			}
			continueToChildren = false
		}
	}

	if !continueToChildren {
		return
	}

	if depth >= w.maxDepth && (v.IsObject() || v.IsArray()) {
		if w.onDepthExceeded != nil {
			w.onDepthExceeded(v, p)
		}
		return
	}

	switch {
	case v.IsObject():
		obj := v.AsObject()
		for _, key := range obj.Keys() {
			if w.stopped {
				return
			}
			w.visit(obj.At(key), p.Child(key), depth+1)
		}
	case v.IsArray():
		arr := v.AsArray()
		for i := 0; i < arr.Length(); i++ {
			if w.stopped {
				return
			}
			w.visit(arr.At(i), p.Index(i), depth+1)
		}
	}
}

// handleAction processes the action returned by a handler.
// Returns true if walking should continue to children.
func (w *Walker) handleAction(action Action) bool {
	switch action {
	case Stop:
		w.stopped = true
		return false
	case SkipChildren:
		return false
	default:
		return true
	}
}
