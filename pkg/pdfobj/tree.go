package pdfobj

import (
	"fmt"
	"strings"

	"github.com/joshuapare/pdfexplorer/pkg/types"
)

// maxLabelText bounds the string and stream previews in labels.
const maxLabelText = 48

// Tree presents the object graph rooted at a document trailer as a tree.
// Children are computed on demand, so reference cycles in the file only show
// up as unbounded depth when the user keeps expanding.
type Tree struct {
	root     Dict
	resolver Resolver
}

// NewTree returns a tree over root. References are resolved through r; a nil
// r leaves them unresolved.
func NewTree(root Dict, r Resolver) *Tree {
	return &Tree{root: root, resolver: r}
}

// Root returns the trailer dictionary.
func (t *Tree) Root() Dict {
	return t.root
}

// container returns the dictionary or array behind v, if any. Entries are
// unwrapped and streams contribute their dictionary.
func (t *Tree) container(v Value) (Value, error) {
	v, err := resolve(t.resolver, Unwrap(v))
	if err != nil {
		return nil, err
	}
	switch c := v.(type) {
	case Dict, Array:
		return c, nil
	case Stream:
		return c.Dict, nil
	default:
		return nil, nil
	}
}

// Children returns the child nodes of v: MapEntry values sorted by key for
// dictionaries and streams, ArrayEntry values in order for arrays, nothing
// for leaves. Entry values are resolved.
func (t *Tree) Children(v Value) ([]Value, error) {
	c, err := t.container(v)
	if err != nil {
		return nil, fmt.Errorf("children: %w", err)
	}
	switch c := c.(type) {
	case Dict:
		keys := c.Keys()
		out := make([]Value, 0, len(keys))
		for _, k := range keys {
			val, ref, err := t.entryValue(c[k])
			if err != nil {
				return nil, fmt.Errorf("children: key %s: %w", k, err)
			}
			out = append(out, MapEntry{Key: k, Value: val, Ref: ref})
		}
		return out, nil
	case Array:
		out := make([]Value, 0, len(c))
		for i, e := range c {
			val, ref, err := t.entryValue(e)
			if err != nil {
				return nil, fmt.Errorf("children: index %d: %w", i, err)
			}
			out = append(out, ArrayEntry{Index: i, Value: val, Ref: ref})
		}
		return out, nil
	default:
		return nil, nil
	}
}

func (t *Tree) entryValue(v Value) (Value, *Ref, error) {
	ref, ok := v.(Ref)
	if !ok {
		return v, nil, nil
	}
	val, err := resolve(t.resolver, ref)
	if err != nil {
		return nil, nil, err
	}
	if val == nil {
		val = Null{}
	}
	return val, &ref, nil
}

// HasChildren reports whether v is a non-empty dictionary, array or stream.
func (t *Tree) HasChildren(v Value) bool {
	c, err := t.container(v)
	if err != nil {
		return false
	}
	switch c := c.(type) {
	case Dict:
		return len(c) > 0
	case Array:
		return len(c) > 0
	default:
		return false
	}
}

// Find walks path from the root and returns the node it names.
func (t *Tree) Find(path []PathSegment) (Value, error) {
	var cur Value = t.root
	for i, seg := range path {
		children, err := t.Children(cur)
		if err != nil {
			return nil, err
		}
		next := matchSegment(children, seg)
		if next == nil {
			return nil, types.Wrap(types.ErrKindNotFound,
				fmt.Sprintf("no node %s", FormatPath(path[:i+1])), nil)
		}
		cur = next
	}
	return cur, nil
}

func matchSegment(children []Value, seg PathSegment) Value {
	for _, c := range children {
		switch e := c.(type) {
		case MapEntry:
			if !seg.IsIndex && e.Key == seg.Key {
				return e
			}
		case ArrayEntry:
			if seg.IsIndex && e.Index == seg.Index {
				return e
			}
		}
	}
	return nil
}

// Label returns the one-line text shown for v in the tree.
func Label(v Value) string {
	switch e := v.(type) {
	case MapEntry:
		return e.Key + ": " + summary(e.Value) + refSuffix(e.Ref)
	case ArrayEntry:
		return fmt.Sprintf("[%d]: %s%s", e.Index, summary(e.Value), refSuffix(e.Ref))
	default:
		return summary(v)
	}
}

func refSuffix(r *Ref) string {
	if r == nil {
		return ""
	}
	return " (" + r.String() + ")"
}

func summary(v Value) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case Bool, Integer, Float, Null:
		s, _ := Stringify(x)
		return s
	case Name:
		return "/" + string(x)
	case String:
		if x.Hex {
			return "<" + truncate(x.Text) + ">"
		}
		return "(" + truncate(x.Text) + ")"
	case Ref:
		return x.String()
	case Array:
		if family, ok := ColorSpaceFamily(x); ok && specialColorSpaces[family] {
			return fmt.Sprintf("Array /%s [%d]", family, len(x))
		}
		return fmt.Sprintf("Array [%d]", len(x))
	case Dict:
		return "Dict" + typeTag(x) + fmt.Sprintf(" (%d)", len(x))
	case Stream:
		s := "Stream" + typeTag(x.Dict)
		if len(x.Filters) > 0 {
			s += " " + strings.Join(x.Filters, ", ")
		}
		return s
	case ArrayEntry, MapEntry:
		return Label(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

func typeTag(d Dict) string {
	tag := ""
	if t, ok := d.Name("Type"); ok {
		tag += " /" + string(t)
	}
	if st, ok := d.Name("Subtype"); ok {
		tag += " /" + string(st)
	}
	return tag
}

func truncate(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return ' '
		}
		return r
	}, s)
	if r := []rune(s); len(r) > maxLabelText {
		return string(r[:maxLabelText-1]) + "…"
	}
	return s
}
