package main

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/pdfexplorer/cmd/pdfexplorer/colorpane"
	"github.com/joshuapare/pdfexplorer/cmd/pdfexplorer/objtree"
	"github.com/joshuapare/pdfexplorer/cmd/pdfexplorer/recentlist"
	"github.com/joshuapare/pdfexplorer/cmd/pdfexplorer/selection"
	"github.com/joshuapare/pdfexplorer/cmd/pdfexplorer/textpane"
	"github.com/joshuapare/pdfexplorer/internal/session"
	"github.com/joshuapare/pdfexplorer/pkg/pdfobj"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// Pane represents which pane has keyboard focus.
type Pane int

const (
	TreePane Pane = iota
	PanelPane
)

// InputMode represents what the status-line prompt is collecting.
type InputMode int

const (
	NormalMode InputMode = iota
	OpenPathMode
	PasswordMode
	GoToPathMode
)

// Model is the main application model.
type Model struct {
	session *session.Session
	shown   session.Document // document the tree was built from
	bus     *selection.Bus

	tree   objtree.Model
	text   textpane.Model
	color  colorpane.Model
	recent recentlist.Model

	keys        KeyMap
	panel       pdfobj.Panel
	focusedPane Pane
	width       int
	height      int

	// Status-line prompt
	inputMode       InputMode
	inputBuffer     string
	pendingOpenPath string

	showHelp   bool
	showRecent bool

	docPath       string
	selectionPath string
	selectionErr  error
	statusMessage string
	statusIsError bool
}

// clearStatusMsg clears a transient status message.
type clearStatusMsg struct{}

// NewModel returns a model with no document open.
func NewModel(sess *session.Session) Model {
	bus := selection.NewBus()
	tree := objtree.NewModel()
	tree.SetSelectionBus(bus)

	return Model{
		session:     sess,
		bus:         bus,
		tree:        tree,
		text:        textpane.New(),
		color:       colorpane.New(),
		recent:      recentlist.New(),
		keys:        DefaultKeyMap(),
		panel:       pdfobj.PanelText,
		focusedPane: TreePane,
		inputMode:   NormalMode,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Close closes the open document and saves the recent-files list.
func (m *Model) Close() error {
	return m.session.Close()
}
