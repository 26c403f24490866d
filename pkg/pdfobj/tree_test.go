package pdfobj

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pdfexplorer/pkg/types"
)

// sampleGraph builds a small document: trailer -> catalog -> pages -> page,
// with the page pointing back at its parent.
func sampleGraph() (Dict, Resolver) {
	objects := map[Ref]Value{
		{Num: 1}: Dict{"Type": Name("Catalog"), "Pages": Ref{Num: 2}},
		{Num: 2}: Dict{"Type": Name("Pages"), "Kids": Array{Ref{Num: 3}}, "Count": Integer(1)},
		{Num: 3}: Dict{"Type": Name("Page"), "Parent": Ref{Num: 2}, "Contents": Ref{Num: 4}},
		{Num: 4}: Stream{
			Dict:    Dict{"Length": Integer(4), "Filter": Name("FlateDecode")},
			Filters: []string{"FlateDecode"},
			Source:  StreamSourceFunc(func() ([]byte, error) { return []byte("q Q\n"), nil }),
		},
	}
	r := ResolverFunc(func(v Value) (Value, error) {
		ref, ok := v.(Ref)
		if !ok {
			return v, nil
		}
		obj, ok := objects[ref]
		if !ok {
			return nil, errors.New("object not found")
		}
		return obj, nil
	})
	trailer := Dict{"Size": Integer(5), "Root": Ref{Num: 1}, "ID": Array{String{Text: "a", Hex: true}, String{Text: "b", Hex: true}}}
	return trailer, r
}

func TestTree_RootChildrenSortedByKey(t *testing.T) {
	root, r := sampleGraph()
	tree := NewTree(root, r)

	children, err := tree.Children(tree.Root())
	require.NoError(t, err)
	require.Len(t, children, 3)

	keys := make([]string, len(children))
	for i, c := range children {
		keys[i] = c.(MapEntry).Key
	}
	assert.Equal(t, []string{"ID", "Root", "Size"}, keys)
}

func TestTree_EntriesCarryResolvedValueAndRef(t *testing.T) {
	root, r := sampleGraph()
	tree := NewTree(root, r)

	children, err := tree.Children(root)
	require.NoError(t, err)
	entry := children[1].(MapEntry)

	assert.Equal(t, "Root", entry.Key)
	require.NotNil(t, entry.Ref)
	assert.Equal(t, Ref{Num: 1}, *entry.Ref)
	catalog, ok := entry.Value.(Dict)
	require.True(t, ok)
	assert.Equal(t, Name("Catalog"), catalog["Type"])
	assert.Equal(t, "Root: Dict /Catalog (2) (1 0 R)", Label(entry))
}

func TestTree_ArrayChildren(t *testing.T) {
	root, r := sampleGraph()
	tree := NewTree(root, r)

	kids, err := tree.Find([]PathSegment{KeySegment("Root"), KeySegment("Pages"), KeySegment("Kids")})
	require.NoError(t, err)

	children, err := tree.Children(kids)
	require.NoError(t, err)
	require.Len(t, children, 1)
	page := children[0].(ArrayEntry)
	assert.Equal(t, 0, page.Index)
	assert.Equal(t, "[0]: Dict /Page (3) (3 0 R)", Label(page))
}

func TestTree_StreamChildrenAreItsDictionary(t *testing.T) {
	root, r := sampleGraph()
	tree := NewTree(root, r)

	path, err := ParsePath("Root/Pages/Kids/[0]/Contents")
	require.NoError(t, err)
	contents, err := tree.Find(path)
	require.NoError(t, err)
	assert.Equal(t, "Contents: Stream FlateDecode (4 0 R)", Label(contents))
	assert.True(t, tree.HasChildren(contents))

	children, err := tree.Children(contents)
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, "Filter", children[0].(MapEntry).Key)
	assert.Equal(t, "Length", children[1].(MapEntry).Key)

	text, err := Stringify(contents)
	require.NoError(t, err)
	assert.Equal(t, "q Q\n", text)
}

func TestTree_CyclesExpandLazily(t *testing.T) {
	root, r := sampleGraph()
	tree := NewTree(root, r)

	path, err := ParsePath("Root/Pages/Kids/[0]/Parent/Kids/[0]/Parent/Count")
	require.NoError(t, err)
	count, err := tree.Find(path)
	require.NoError(t, err)
	assert.Equal(t, "Count: 1", Label(count))
	assert.False(t, tree.HasChildren(count))
}

func TestTree_FindMissing(t *testing.T) {
	root, r := sampleGraph()
	tree := NewTree(root, r)

	_, err := tree.Find([]PathSegment{KeySegment("Root"), KeySegment("Outlines")})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.Contains(t, err.Error(), "Root/Outlines")

	_, err = tree.Find([]PathSegment{KeySegment("ID"), IndexSegment(5)})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestTree_ResolveFailure(t *testing.T) {
	tree := NewTree(Dict{"Info": Ref{Num: 99}}, ResolverFunc(func(Value) (Value, error) {
		return nil, errors.New("xref entry missing")
	}))
	_, err := tree.Children(tree.Root())
	assert.ErrorContains(t, err, "key Info")
}

func TestTree_LeavesHaveNoChildren(t *testing.T) {
	tree := NewTree(Dict{}, nil)
	for _, v := range []Value{Integer(1), Name("X"), String{Text: "s"}, Null{}, Bool(true), Array{}, Dict{}} {
		children, err := tree.Children(v)
		require.NoError(t, err)
		assert.Empty(t, children)
		assert.False(t, tree.HasChildren(v))
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want string
	}{
		{"name", MapEntry{Key: "Type", Value: Name("Font")}, "Type: /Font"},
		{"integer", ArrayEntry{Index: 2, Value: Integer(612)}, "[2]: 612"},
		{"float", ArrayEntry{Index: 0, Value: Float(1)}, "[0]: 1.0"},
		{"literal", MapEntry{Key: "Title", Value: String{Text: "Report"}}, "Title: (Report)"},
		{"hex", MapEntry{Key: "ID", Value: String{Text: "ab", Hex: true}}, "ID: <ab>"},
		{"array", MapEntry{Key: "MediaBox", Value: Array{Integer(0), Integer(0), Integer(612), Integer(792)}}, "MediaBox: Array [4]"},
		{"separation", MapEntry{Key: "CS0", Value: Array{Name("Separation"), Name("Spot"), Name("DeviceGray"), Dict{}}}, "CS0: Array /Separation [4]"},
		{"dict with subtype", MapEntry{Key: "F1", Value: Dict{"Type": Name("Font"), "Subtype": Name("Type1")}}, "F1: Dict /Font /Type1 (2)"},
		{"null", MapEntry{Key: "X", Value: Null{}}, "X: null"},
		{"bare dict", Dict{"A": Integer(1)}, "Dict (1)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Label(tt.in))
		})
	}
}

func TestLabel_TruncatesLongText(t *testing.T) {
	long := String{Text: "line one\nline two is quite a bit longer than the label allows for"}
	got := Label(MapEntry{Key: "T", Value: long})
	assert.LessOrEqual(t, len([]rune(got)), len("T: ()")+maxLabelText)
	assert.NotContains(t, got, "\n")
	assert.Contains(t, got, "…")
}
