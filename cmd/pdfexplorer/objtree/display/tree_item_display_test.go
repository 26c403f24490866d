package display

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestRenderTreeItemDisplay_Basic(t *testing.T) {
	props := TreeItemDisplayProps{
		Name:      "Root: Dict /Catalog (2)",
		Icon:      "▶",
		CountText: "(2)",
		Trailing:  "1 0 R",
		ItemStyle: lipgloss.NewStyle(),
	}

	result := ansi.Strip(RenderTreeItemDisplay(props, 60))

	for _, want := range []string{"▶", "Root: Dict /Catalog (2)", "(2)", "1 0 R"} {
		if !strings.Contains(result, want) {
			t.Errorf("rendered row %q should contain %q", result, want)
		}
	}
	if !strings.HasSuffix(result, "1 0 R") {
		t.Errorf("reference should be right-justified, got %q", result)
	}
}

func TestRenderTreeItemDisplay_Indentation(t *testing.T) {
	tests := []struct {
		depth  int
		indent string
	}{
		{0, ""},
		{1, "  "},
		{3, "      "},
	}

	for _, tt := range tests {
		props := TreeItemDisplayProps{Name: "Size: 6", Icon: "•", Depth: tt.depth, ItemStyle: lipgloss.NewStyle()}
		result := ansi.Strip(RenderTreeItemDisplay(props, 40))
		if !strings.HasPrefix(result, tt.indent+"•") {
			t.Errorf("depth %d: expected prefix %q, got %q", tt.depth, tt.indent+"•", result)
		}
	}
}

func TestRenderTreeItemDisplay_TruncatesLongNames(t *testing.T) {
	props := TreeItemDisplayProps{
		Name:      strings.Repeat("x", 200),
		Icon:      "•",
		Trailing:  "12 0 R",
		ItemStyle: lipgloss.NewStyle(),
	}

	result := ansi.Strip(RenderTreeItemDisplay(props, 40))

	if !strings.Contains(result, "…") {
		t.Error("long name should be truncated with an ellipsis")
	}
	if !strings.Contains(result, "12 0 R") {
		t.Error("reference should survive truncation")
	}
	if w := ansi.StringWidth(result); w > 40 {
		t.Errorf("row width %d exceeds 40", w)
	}
}

func TestRenderTreeItemDisplay_Selected(t *testing.T) {
	props := TreeItemDisplayProps{Name: "Info", Icon: "•", ItemStyle: lipgloss.NewStyle()}

	plain := RenderTreeItemDisplay(props, 40)
	props.IsSelected = true
	selected := RenderTreeItemDisplay(props, 40)

	if ansi.Strip(plain) != ansi.Strip(selected) {
		t.Error("selection should change styling only")
	}
}
