package objtree

import (
	"github.com/joshuapare/pdfexplorer/cmd/pdfexplorer/objtree/adapter"
	"github.com/joshuapare/pdfexplorer/pkg/pdfobj"
)

// Item is one visible row of the object tree.
type Item struct {
	Segments    []pdfobj.PathSegment
	Path        string // FormatPath(Segments)
	Parent      string // path of the parent row, "" at the top level
	Label       string // pdfobj.Label without the reference suffix
	Ref         string // "N G R" when the entry was reached through a reference
	Node        pdfobj.Value
	Depth       int
	HasChildren bool
	ChildCount  int
	Expanded    bool
	Kind        adapter.NodeKind
}

// Source enumerates child nodes. *pdfobj.Tree implements it.
type Source interface {
	Children(v pdfobj.Value) ([]pdfobj.Value, error)
	HasChildren(v pdfobj.Value) bool
}
