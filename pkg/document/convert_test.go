package document

import (
	"errors"
	"testing"
	"unicode/utf8"

	pdftypes "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pdfexplorer/pkg/pdfobj"
)

func TestConvert_Scalars(t *testing.T) {
	tests := []struct {
		name string
		in   pdftypes.Object
		want pdfobj.Value
	}{
		{"nil", nil, pdfobj.Null{}},
		{"bool", pdftypes.Boolean(true), pdfobj.Bool(true)},
		{"integer", pdftypes.Integer(17), pdfobj.Integer(17)},
		{"float", pdftypes.Float(0.5), pdfobj.Float(0.5)},
		{"name", pdftypes.Name("XObject"), pdfobj.Name("XObject")},
		{"literal", pdftypes.StringLiteral("Hello"), pdfobj.String{Text: "Hello"}},
		{"hex", pdftypes.HexLiteral("414243"), pdfobj.String{Text: "ABC", Hex: true}},
		{"ref", *pdftypes.NewIndirectRef(12, 0), pdfobj.Ref{Num: 12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Convert(tt.in))
		})
	}
}

func TestConvert_Containers(t *testing.T) {
	in := pdftypes.Dict{
		"Type":     pdftypes.Name("Page"),
		"MediaBox": pdftypes.Array{pdftypes.Integer(0), pdftypes.Integer(0), pdftypes.Float(595.5), pdftypes.Integer(842)},
		"Parent":   *pdftypes.NewIndirectRef(2, 0),
	}
	got := Convert(in)

	want := pdfobj.Dict{
		"Type":     pdfobj.Name("Page"),
		"MediaBox": pdfobj.Array{pdfobj.Integer(0), pdfobj.Integer(0), pdfobj.Float(595.5), pdfobj.Integer(842)},
		"Parent":   pdfobj.Ref{Num: 2},
	}
	assert.Equal(t, want, got)
}

func TestConvert_StreamKeepsContent(t *testing.T) {
	sd := pdftypes.StreamDict{
		Dict:    pdftypes.Dict{"Length": pdftypes.Integer(3)},
		Content: []byte("abc"),
	}
	got, ok := Convert(sd).(pdfobj.Stream)
	require.True(t, ok)
	assert.Empty(t, got.Filters)
	assert.Equal(t, pdfobj.Integer(3), got.Dict["Length"])

	data, err := got.Source.Decoded()
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), data)
}

func TestConvert_StreamFilters(t *testing.T) {
	sd := pdftypes.StreamDict{
		Dict:           pdftypes.Dict{},
		FilterPipeline: []pdftypes.PDFFilter{{Name: "FlateDecode"}, {Name: "ASCII85Decode"}},
		Content:        []byte{},
	}
	got := Convert(sd).(pdfobj.Stream)
	assert.Equal(t, []string{"FlateDecode", "ASCII85Decode"}, got.Filters)
}

func TestLiteralText(t *testing.T) {
	assert.Equal(t, "Hello", literalText("Hello", nil, "ignored"))

	// Undecodable literals fall back to the raw bytes read as display text.
	got := literalText("", errors.New("bad escape"), "caf\xe9")
	assert.Equal(t, "café", got)
	assert.True(t, utf8.ValidString(got))
}
