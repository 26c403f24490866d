package document

import (
	pdftypes "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/joshuapare/pdfexplorer/pkg/pdfobj"
)

// Convert turns a pdfcpu object into a pdfobj value. Indirect references
// are kept as pdfobj.Ref; a nil object is pdfobj.Null.
func Convert(o pdftypes.Object) pdfobj.Value {
	switch x := o.(type) {
	case nil:
		return pdfobj.Null{}
	case pdftypes.Boolean:
		return pdfobj.Bool(x)
	case pdftypes.Integer:
		return pdfobj.Integer(x)
	case pdftypes.Float:
		return pdfobj.Float(x)
	case pdftypes.Name:
		return pdfobj.Name(x)
	case pdftypes.StringLiteral:
		s, err := pdftypes.StringLiteralToString(x)
		return pdfobj.String{Text: literalText(s, err, string(x))}
	case pdftypes.HexLiteral:
		s, err := pdftypes.HexLiteralToString(x)
		return pdfobj.String{Text: literalText(s, err, string(x)), Hex: true}
	case pdftypes.IndirectRef:
		return toRef(x)
	case pdftypes.Array:
		arr := make(pdfobj.Array, len(x))
		for i, e := range x {
			arr[i] = Convert(e)
		}
		return arr
	case pdftypes.Dict:
		return convertDict(x)
	case pdftypes.StreamDict:
		return convertStream(x)
	default:
		return pdfobj.String{Text: o.String()}
	}
}

func convertDict(d pdftypes.Dict) pdfobj.Dict {
	out := make(pdfobj.Dict, len(d))
	for k, v := range d {
		out[k] = Convert(v)
	}
	return out
}

func convertStream(sd pdftypes.StreamDict) pdfobj.Stream {
	filters := make([]string, 0, len(sd.FilterPipeline))
	for _, f := range sd.FilterPipeline {
		filters = append(filters, f.Name)
	}
	return pdfobj.Stream{
		Dict:    convertDict(sd.Dict),
		Filters: filters,
		Source:  streamSource(sd),
	}
}

// streamSource decodes a private copy of sd on first use and keeps the result.
func streamSource(sd pdftypes.StreamDict) pdfobj.StreamSource {
	var (
		done    bool
		content []byte
		err     error
	)
	return pdfobj.StreamSourceFunc(func() ([]byte, error) {
		if done {
			return content, err
		}
		done = true
		if sd.Content == nil {
			err = sd.Decode()
		}
		content = sd.Content
		return content, err
	})
}

func toRef(r pdftypes.IndirectRef) pdfobj.Ref {
	return pdfobj.Ref{Num: r.ObjectNumber.Value(), Gen: r.GenerationNumber.Value()}
}

// literalText is the decoded string, or the raw literal read as display text
// when pdfcpu cannot decode it.
func literalText(decoded string, err error, raw string) string {
	if err != nil {
		return pdfobj.DecodeText([]byte(raw))
	}
	return decoded
}
