package objtree

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/pdfexplorer/cmd/pdfexplorer/selection"
	"github.com/joshuapare/pdfexplorer/pkg/pdfobj"
)

// sampleTree is a catalog with one page. The page points back at its parent
// and carries a Separation colour space and a dangling annotation reference.
func sampleTree() *pdfobj.Tree {
	sep := pdfobj.Array{
		pdfobj.Name("Separation"),
		pdfobj.Name("Spot"),
		pdfobj.Name("DeviceCMYK"),
		pdfobj.Dict{
			"FunctionType": pdfobj.Integer(2),
			"Domain":       pdfobj.Array{pdfobj.Integer(0), pdfobj.Integer(1)},
			"C1":           pdfobj.Array{pdfobj.Integer(0), pdfobj.Integer(1), pdfobj.Integer(1), pdfobj.Integer(0)},
			"N":            pdfobj.Integer(1),
		},
	}
	objects := map[pdfobj.Ref]pdfobj.Value{
		{Num: 1}: pdfobj.Dict{"Type": pdfobj.Name("Catalog"), "Pages": pdfobj.Ref{Num: 2}},
		{Num: 2}: pdfobj.Dict{"Type": pdfobj.Name("Pages"), "Kids": pdfobj.Array{pdfobj.Ref{Num: 3}}, "Count": pdfobj.Integer(1)},
		{Num: 3}: pdfobj.Dict{
			"Type":      pdfobj.Name("Page"),
			"Parent":    pdfobj.Ref{Num: 2},
			"Resources": pdfobj.Dict{"ColorSpace": pdfobj.Dict{"CS0": sep}},
			"Annots":    pdfobj.Array{pdfobj.Ref{Num: 99}},
		},
	}
	r := pdfobj.ResolverFunc(func(v pdfobj.Value) (pdfobj.Value, error) {
		ref, ok := v.(pdfobj.Ref)
		if !ok {
			return v, nil
		}
		obj, ok := objects[ref]
		if !ok {
			return nil, errors.New("object 99 is missing")
		}
		return obj, nil
	})
	trailer := pdfobj.Dict{
		"Size": pdfobj.Integer(4),
		"Root": pdfobj.Ref{Num: 1},
		"ID":   pdfobj.Array{pdfobj.String{Text: "a", Hex: true}, pdfobj.String{Text: "b", Hex: true}},
	}
	return pdfobj.NewTree(trailer, r)
}

func loadedModel(bus *selection.Bus) Model {
	m := NewModel()
	m.SetSelectionBus(bus)
	m.SetSize(80, 20)
	tree := sampleTree()
	if err := m.Load(tree, tree.Root()); err != nil {
		panic(err)
	}
	return m
}

func paths(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Path
	}
	return out
}

func keyMsg(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func runeMsg(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }
