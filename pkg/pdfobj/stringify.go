package pdfobj

import (
	"bytes"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/pdfexplorer/pkg/types"
)

// Unwrap strips one level of ArrayEntry or MapEntry. Other values are
// returned unchanged.
func Unwrap(v Value) Value {
	switch e := v.(type) {
	case ArrayEntry:
		return e.Value
	case MapEntry:
		return e.Value
	default:
		return v
	}
}

// Stringify returns the display text of v after one level of unwrapping.
//
//	Bool     "true" / "false"
//	Float    decimal text, always with a fractional part ("1.0", "0.25")
//	Integer  decimal text
//	Name     the bare name, no slash
//	String   the decoded text
//	Null     "null"
//	Stream   the decoded content read as text
//
// Anything else (arrays, dictionaries, references, nested entries) has no
// text and yields "". Only streams can fail; the error has kind ErrKindDecode.
func Stringify(v Value) (string, error) {
	switch x := Unwrap(v).(type) {
	case Bool:
		return strconv.FormatBool(bool(x)), nil
	case Float:
		return formatFloat(float64(x)), nil
	case Integer:
		return strconv.FormatInt(int64(x), 10), nil
	case Name:
		return string(x), nil
	case String:
		return x.Text, nil
	case Null:
		return "null", nil
	case Stream:
		if x.Source == nil {
			return "", nil
		}
		data, err := x.Source.Decoded()
		if err != nil {
			return "", types.Wrap(types.ErrKindDecode, "decode stream", err)
		}
		return DecodeText(data), nil
	default:
		return "", nil
	}
}

// formatFloat prints the shortest decimal that round-trips a float64, never
// in exponent form, so 1e7 prints as "10000000.0".
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

var (
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
)

// DecodeText turns raw bytes into display text. UTF-16 with a byte order
// mark and valid UTF-8 are taken as such; anything else is read as
// Windows-1252, which covers PDFDocEncoding for the printable range.
func DecodeText(data []byte) string {
	switch {
	case bytes.HasPrefix(data, bomUTF16BE), bytes.HasPrefix(data, bomUTF16LE):
		dec := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
		if out, err := dec.Bytes(data); err == nil {
			return string(out)
		}
	case bytes.HasPrefix(data, bomUTF8):
		data = data[len(bomUTF8):]
	}
	if utf8.Valid(data) {
		return string(data)
	}
	out, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "�")
	}
	return string(out)
}
