package pdfobj

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/pdfexplorer/pkg/types"
)

// PathSegment is one step of a tree path: a dictionary key or an array index.
type PathSegment struct {
	Key     string
	Index   int
	IsIndex bool
}

func (s PathSegment) String() string {
	if s.IsIndex {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	return s.Key
}

// KeySegment returns a dictionary key segment.
func KeySegment(key string) PathSegment { return PathSegment{Key: key} }

// IndexSegment returns an array index segment.
func IndexSegment(i int) PathSegment { return PathSegment{Index: i, IsIndex: true} }

// SegmentOf returns the segment that leads to entry v. ok is false for values
// that are not tree entries.
func SegmentOf(v Value) (PathSegment, bool) {
	switch e := v.(type) {
	case MapEntry:
		return KeySegment(e.Key), true
	case ArrayEntry:
		return IndexSegment(e.Index), true
	default:
		return PathSegment{}, false
	}
}

// FormatPath joins segments with "/", e.g. "Root/Pages/Kids/[0]".
func FormatPath(path []PathSegment) string {
	parts := make([]string, len(path))
	for i, s := range path {
		parts[i] = s.String()
	}
	return strings.Join(parts, "/")
}

// ParsePath parses the output of FormatPath. Surrounding slashes and
// whitespace are ignored; the empty string is the root.
//
// Keys are not escaped: a key containing "/" splits into two segments and a
// key written like an index, e.g. "[3]", parses as array element 3.
func ParsePath(s string) ([]PathSegment, error) {
	s = strings.Trim(strings.TrimSpace(s), "/")
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, "/")
	path := make([]PathSegment, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			return nil, types.Wrap(types.ErrKindUsage, fmt.Sprintf("empty segment in path %q", s), nil)
		}
		if strings.HasPrefix(p, "[") {
			if !strings.HasSuffix(p, "]") {
				return nil, types.Wrap(types.ErrKindUsage, fmt.Sprintf("unterminated index %q", p), nil)
			}
			n, err := strconv.Atoi(p[1 : len(p)-1])
			if err != nil || n < 0 {
				return nil, types.Wrap(types.ErrKindUsage, fmt.Sprintf("bad index %q", p), err)
			}
			path = append(path, IndexSegment(n))
			continue
		}
		path = append(path, KeySegment(p))
	}
	return path, nil
}
