package walker

import (
	"github.com/erraggy/lenstools/document"
	"github.com/erraggy/lenstools/path"
)

// LeafInfo contains information about a collected leaf.
type LeafInfo struct {
	// Value is the leaf value.
	Value *document.Value

	// Path is the path to the leaf from the document root.
	Path path.Path
}

// LeafCollector holds leaves collected during a walk.
type LeafCollector struct {
	// All contains all leaves in traversal order.
	All []*LeafInfo

	// ByPath provides lookup by canonical path text.
	ByPath map[string]*LeafInfo
}

// CollectLeaves walks the document and collects every leaf with its
// path. Traversal order is deterministic: mapping keys are visited
// sorted, sequence elements in index order. Additional walk options
// such as WithMaxDepth apply to the underlying traversal.
func CollectLeaves(doc *document.Value, options ...Option) (*LeafCollector, error) {
	collector := &LeafCollector{
		All:    make([]*LeafInfo, 0),
		ByPath: make(map[string]*LeafInfo),
	}

	opts := append([]Option{
		WithLeafHandler(func(v *document.Value, p path.Path) Action {
			info := &LeafInfo{
				Value: v,
				Path:  p,
			}
			collector.All = append(collector.All, info)
			collector.ByPath[p.String()] = info
			return Continue
		}),
	}, options...)

	if err := Walk(doc, opts...); err != nil {
		return nil, err
	}

	return collector, nil
}

// Paths returns the path of every leaf in traversal order. For a
// scalar document this is the single root path.
func Paths(doc *document.Value, options ...Option) ([]path.Path, error) {
	leaves, err := CollectLeaves(doc, options...)
	if err != nil {
		return nil, err
	}
	out := make([]path.Path, 0, len(leaves.All))
	for _, info := range leaves.All {
		out = append(out, info.Path)
	}
	return out, nil
}

// AllPaths returns the path of every node in traversal order,
// containers included. The first path is always the root.
func AllPaths(doc *document.Value, options ...Option) ([]path.Path, error) {
	var out []path.Path
	opts := append([]Option{
		WithValueHandler(func(v *document.Value, p path.Path) Action {
			out = append(out, p)
			return Continue
		}),
	}, options...)
	if err := Walk(doc, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
