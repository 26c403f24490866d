package pdfobj

// Colour space family names that get special treatment in the viewer.
const (
	ColorSpaceIndexed    Name = "Indexed"
	ColorSpaceSeparation Name = "Separation"
	ColorSpaceDeviceN    Name = "DeviceN"
)

var specialColorSpaces = map[Name]bool{
	ColorSpaceIndexed:    true,
	ColorSpaceSeparation: true,
	ColorSpaceDeviceN:    true,
}

// Panel identifies the right-hand panel that displays a selection.
type Panel int

const (
	PanelText       Panel = iota // generic text panel
	PanelSeparation              // Separation colour space panel
)

func (p Panel) String() string {
	switch p {
	case PanelSeparation:
		return "separation"
	default:
		return "text"
	}
}

// Selection is the outcome of classifying a selected node.
type Selection struct {
	Panel Panel
	// Text is the generic display text; empty for PanelSeparation.
	Text string
	// ColorSpace is the unwrapped colour space array for PanelSeparation.
	ColorSpace Array
}

// ColorSpaceFamily returns the leading name of a colour space array, after
// one level of unwrapping.
func ColorSpaceFamily(v Value) (Name, bool) {
	arr, ok := Unwrap(v).(Array)
	if !ok || len(arr) == 0 {
		return "", false
	}
	name, ok := arr[0].(Name)
	return name, ok
}

// IsSpecialColorSpace reports whether v (after one unwrap) is an array whose
// first element is Indexed, Separation or DeviceN.
func IsSpecialColorSpace(v Value) bool {
	family, ok := ColorSpaceFamily(v)
	return ok && specialColorSpaces[family]
}

// Classify decides how a selected node is displayed.
//
// Separation arrays go to the colour panel. Indexed and DeviceN arrays are
// special colour spaces too, but have no panel yet and fall back to the text
// panel with their generic (empty) text.
func Classify(v Value) (Selection, error) {
	if IsSpecialColorSpace(v) {
		family, _ := ColorSpaceFamily(v)
		if family == ColorSpaceSeparation {
			return Selection{Panel: PanelSeparation, ColorSpace: Unwrap(v).(Array)}, nil
		}
		// TODO: add Indexed (lookup table) and DeviceN (colorant list) panels.
	}
	text, err := Stringify(v)
	if err != nil {
		return Selection{Panel: PanelText}, err
	}
	return Selection{Panel: PanelText, Text: text}, nil
}
