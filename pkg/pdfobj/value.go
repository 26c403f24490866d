package pdfobj

import (
	"fmt"
	"sort"
)

// Value is a node of the object graph. The implementations in this package
// are the only ones; the unexported method keeps the set closed.
type Value interface {
	pdfValue()
}

// Bool is a PDF boolean.
type Bool bool

// Float is a PDF real number.
type Float float64

// Integer is a PDF integer.
type Integer int64

// Name is a PDF name without its leading slash.
type Name string

// String is a PDF string with its escapes and text encoding already decoded.
type String struct {
	Text string
	Hex  bool // written as <...> in the file
}

// Null is the PDF null object.
type Null struct{}

// Array is a PDF array. Elements are kept as written, references unresolved.
type Array []Value

// Dict is a PDF dictionary keyed by name (without slash).
type Dict map[string]Value

// Ref is an indirect reference "Num Gen R".
type Ref struct {
	Num int
	Gen int
}

// StreamSource yields the content of a stream after every filter in its
// pipeline has been applied.
type StreamSource interface {
	Decoded() ([]byte, error)
}

// StreamSourceFunc adapts a function to StreamSource.
type StreamSourceFunc func() ([]byte, error)

// Decoded calls f.
func (f StreamSourceFunc) Decoded() ([]byte, error) { return f() }

// Stream is a PDF stream: its dictionary, the filter names from /Filter and
// a source for the decoded bytes.
type Stream struct {
	Dict    Dict
	Filters []string
	Source  StreamSource
}

// ArrayEntry is element Index of an array as shown in the tree. Value is the
// element with references resolved; Ref is set when the element was written
// as an indirect reference.
type ArrayEntry struct {
	Index int
	Value Value
	Ref   *Ref
}

// MapEntry is the entry Key of a dictionary as shown in the tree. Value is the
// entry with references resolved; Ref is set when the entry was written as an
// indirect reference.
type MapEntry struct {
	Key   string
	Value Value
	Ref   *Ref
}

func (Bool) pdfValue()       {}
func (Float) pdfValue()      {}
func (Integer) pdfValue()    {}
func (Name) pdfValue()       {}
func (String) pdfValue()     {}
func (Null) pdfValue()       {}
func (Array) pdfValue()      {}
func (Dict) pdfValue()       {}
func (Ref) pdfValue()        {}
func (Stream) pdfValue()     {}
func (ArrayEntry) pdfValue() {}
func (MapEntry) pdfValue()   {}

// String formats the reference the way it appears in a PDF file.
func (r Ref) String() string {
	return fmt.Sprintf("%d %d R", r.Num, r.Gen)
}

// Keys returns the dictionary keys in sorted order.
func (d Dict) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Name returns the value at key when it is a direct Name.
func (d Dict) Name(key string) (Name, bool) {
	n, ok := d[key].(Name)
	return n, ok
}

// Resolver dereferences indirect references. Resolve returns non-Ref values
// unchanged.
type Resolver interface {
	Resolve(v Value) (Value, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(Value) (Value, error)

// Resolve calls f.
func (f ResolverFunc) Resolve(v Value) (Value, error) { return f(v) }

// resolve dereferences v through r. A nil resolver leaves v alone.
func resolve(r Resolver, v Value) (Value, error) {
	if _, ok := v.(Ref); !ok || r == nil {
		return v, nil
	}
	return r.Resolve(v)
}

// number reads an Integer or Float as float64.
func number(v Value) (float64, bool) {
	switch n := v.(type) {
	case Integer:
		return float64(n), true
	case Float:
		return float64(n), true
	default:
		return 0, false
	}
}
