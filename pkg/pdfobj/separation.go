package pdfobj

import (
	"fmt"
	"math"

	"github.com/joshuapare/pdfexplorer/pkg/types"
)

// Separation describes a [/Separation name alternateSpace tintTransform]
// colour space.
type Separation struct {
	Colorant   string // colorant name, e.g. "PANTONE 300 C", "All", "None"
	Alternate  string // alternate space family, e.g. "DeviceCMYK", "ICCBased"
	Components int    // number of components in the alternate space, 0 if unknown
	Transform  TintTransform
}

// TintTransform summarises the function that maps a tint to the alternate space.
type TintTransform struct {
	FunctionType int // 0 sampled, 2 exponential, 3 stitching, 4 PostScript; -1 unknown
	Domain       []float64
	C0, C1       []float64 // type 2 only
	N            float64   // type 2 only
}

// Describe returns a short human readable name for the function type.
func (t TintTransform) Describe() string {
	switch t.FunctionType {
	case 0:
		return "Type 0 (sampled)"
	case 2:
		return fmt.Sprintf("Type 2 (exponential, N=%s)", formatFloat(t.N))
	case 3:
		return "Type 3 (stitching)"
	case 4:
		return "Type 4 (PostScript calculator)"
	default:
		return "unknown"
	}
}

// ParseSeparation reads a Separation colour space array. Indirect
// references inside the array are resolved through r.
func ParseSeparation(arr Array, r Resolver) (Separation, error) {
	if len(arr) < 4 {
		return Separation{}, fmt.Errorf("separation colour space needs 4 elements, got %d", len(arr))
	}
	if family, _ := arr[0].(Name); family != ColorSpaceSeparation {
		return Separation{}, fmt.Errorf("not a separation colour space: %v", arr[0])
	}

	var sep Separation

	colorant, err := resolve(r, arr[1])
	if err != nil {
		return Separation{}, fmt.Errorf("resolve colorant: %w", err)
	}
	name, ok := colorant.(Name)
	if !ok {
		return Separation{}, fmt.Errorf("colorant must be a name, got %T", colorant)
	}
	sep.Colorant = string(name)

	alt, err := resolve(r, arr[2])
	if err != nil {
		return Separation{}, fmt.Errorf("resolve alternate space: %w", err)
	}
	sep.Alternate, sep.Components = alternateSpace(alt, r)

	fn, err := resolve(r, arr[3])
	if err != nil {
		return Separation{}, fmt.Errorf("resolve tint transform: %w", err)
	}
	sep.Transform = parseTintTransform(fn)

	return sep, nil
}

// alternateSpace returns the family name and component count of a colour space.
func alternateSpace(v Value, r Resolver) (string, int) {
	var family Name
	var params Value
	switch cs := v.(type) {
	case Name:
		family = cs
	case Array:
		if len(cs) == 0 {
			return "", 0
		}
		family, _ = cs[0].(Name)
		if len(cs) > 1 {
			params, _ = resolve(r, cs[1])
		}
	default:
		return "", 0
	}

	switch family {
	case "DeviceGray", "CalGray", "G":
		return string(family), 1
	case "DeviceRGB", "CalRGB", "Lab", "RGB":
		return string(family), 3
	case "DeviceCMYK", "CMYK":
		return string(family), 4
	case "ICCBased":
		if s, ok := params.(Stream); ok {
			if n, ok := number(s.Dict["N"]); ok {
				return string(family), int(n)
			}
		}
		return string(family), 0
	default:
		return string(family), 0
	}
}

func parseTintTransform(v Value) TintTransform {
	var dict Dict
	switch f := v.(type) {
	case Dict:
		dict = f
	case Stream:
		dict = f.Dict
	default:
		return TintTransform{FunctionType: -1}
	}

	t := TintTransform{FunctionType: -1}
	if ft, ok := number(dict["FunctionType"]); ok {
		t.FunctionType = int(ft)
	}
	t.Domain = numbers(dict["Domain"])
	if t.FunctionType == 2 {
		t.C0 = numbers(dict["C0"])
		if t.C0 == nil {
			t.C0 = []float64{0}
		}
		t.C1 = numbers(dict["C1"])
		if t.C1 == nil {
			t.C1 = []float64{1}
		}
		t.N, _ = number(dict["N"])
	}
	return t
}

func numbers(v Value) []float64 {
	arr, ok := v.(Array)
	if !ok {
		return nil
	}
	out := make([]float64, 0, len(arr))
	for _, e := range arr {
		n, ok := number(e)
		if !ok {
			return nil
		}
		out = append(out, n)
	}
	return out
}

// Tint evaluates the tint transform at tint t (0..1). It only evaluates
// Type 2 functions; ok is false otherwise.
func (s Separation) Tint(t float64) (components []float64, ok bool) {
	tt := s.Transform
	if tt.FunctionType != 2 || len(tt.C0) != len(tt.C1) {
		return nil, false
	}
	t = clamp(t, 0, 1)
	if len(tt.Domain) == 2 {
		t = clamp(t, tt.Domain[0], tt.Domain[1])
	}
	p := math.Pow(t, tt.N)
	out := make([]float64, len(tt.C0))
	for i := range out {
		out[i] = tt.C0[i] + p*(tt.C1[i]-tt.C0[i])
	}
	return out, true
}

// Hex returns the swatch colour for tint t as "#rrggbb". Gray, RGB and CMYK
// alternates (including ICCBased with 1, 3 or 4 components) are converted
// naively; other spaces report ok == false.
func (s Separation) Hex(t float64) (string, bool) {
	c, ok := s.Tint(t)
	if !ok {
		return "", false
	}
	if s.Components != 0 && len(c) != s.Components {
		return "", false
	}
	if s.Alternate == "Lab" {
		return "", false
	}

	var r, g, b float64
	switch len(c) {
	case 1:
		r, g, b = c[0], c[0], c[0]
	case 3:
		r, g, b = c[0], c[1], c[2]
	case 4:
		k := clamp(c[3], 0, 1)
		r = (1 - clamp(c[0], 0, 1)) * (1 - k)
		g = (1 - clamp(c[1], 0, 1)) * (1 - k)
		b = (1 - clamp(c[2], 0, 1)) * (1 - k)
	default:
		return "", false
	}
	return fmt.Sprintf("#%02x%02x%02x", to8(r), to8(g), to8(b)), true
}

// SeparationFor parses the colour space carried by a PanelSeparation selection.
func SeparationFor(sel Selection, r Resolver) (Separation, error) {
	if sel.Panel != PanelSeparation {
		return Separation{}, types.Wrap(types.ErrKindState, "selection is not a separation colour space", nil)
	}
	return ParseSeparation(sel.ColorSpace, r)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func to8(v float64) int {
	return int(math.Round(clamp(v, 0, 1) * 255))
}
