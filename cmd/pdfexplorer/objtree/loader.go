package objtree

import (
	"slices"

	"github.com/joshuapare/pdfexplorer/cmd/pdfexplorer/objtree/adapter"
	"github.com/joshuapare/pdfexplorer/pkg/pdfobj"
)

// buildItems turns the children of parent into rows one level deeper. A nil
// parent builds the top level.
func buildItems(src Source, parent *Item, children []pdfobj.Value) []Item {
	depth := 0
	parentPath := ""
	var parentSegs []pdfobj.PathSegment
	if parent != nil {
		depth = parent.Depth + 1
		parentPath = parent.Path
		parentSegs = parent.Segments
	}

	items := make([]Item, 0, len(children))
	for _, child := range children {
		seg, ok := pdfobj.SegmentOf(child)
		if !ok {
			continue
		}
		segs := append(slices.Clone(parentSegs), seg)
		items = append(items, newItem(src, child, segs, parentPath, depth))
	}
	return items
}

func newItem(src Source, node pdfobj.Value, segs []pdfobj.PathSegment, parent string, depth int) Item {
	label, ref := splitLabel(node)
	return Item{
		Segments:    segs,
		Path:        pdfobj.FormatPath(segs),
		Parent:      parent,
		Label:       label,
		Ref:         ref,
		Node:        node,
		Depth:       depth,
		HasChildren: src.HasChildren(node),
		ChildCount:  childCount(node),
		Kind:        kindOf(node),
	}
}

// splitLabel returns the label of an entry and its reference separately so
// the reference can be drawn in its own column.
func splitLabel(node pdfobj.Value) (string, string) {
	switch e := node.(type) {
	case pdfobj.MapEntry:
		ref := refString(e.Ref)
		e.Ref = nil
		return pdfobj.Label(e), ref
	case pdfobj.ArrayEntry:
		ref := refString(e.Ref)
		e.Ref = nil
		return pdfobj.Label(e), ref
	default:
		return pdfobj.Label(node), ""
	}
}

func refString(r *pdfobj.Ref) string {
	if r == nil {
		return ""
	}
	return r.String()
}

func childCount(node pdfobj.Value) int {
	switch v := pdfobj.Unwrap(node).(type) {
	case pdfobj.Dict:
		return len(v)
	case pdfobj.Array:
		return len(v)
	case pdfobj.Stream:
		return len(v.Dict)
	default:
		return 0
	}
}

func kindOf(node pdfobj.Value) adapter.NodeKind {
	if pdfobj.IsSpecialColorSpace(node) {
		return adapter.KindColorSpace
	}
	switch pdfobj.Unwrap(node).(type) {
	case pdfobj.Dict:
		return adapter.KindDict
	case pdfobj.Array:
		return adapter.KindArray
	case pdfobj.Stream:
		return adapter.KindStream
	default:
		return adapter.KindLeaf
	}
}
