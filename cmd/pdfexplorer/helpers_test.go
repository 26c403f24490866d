package main

import (
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pdfexplorer/internal/session"
	"github.com/joshuapare/pdfexplorer/pkg/pdfobj"
	"github.com/joshuapare/pdfexplorer/pkg/recent"
	"github.com/joshuapare/pdfexplorer/pkg/types"
)

// fakeDoc is a catalog with one page that carries a Separation colour space
// and a content stream.
type fakeDoc struct {
	path    string
	objects map[pdfobj.Ref]pdfobj.Value
	closed  int
}

func newFakeDoc(path string) *fakeDoc {
	sep := pdfobj.Array{
		pdfobj.Name("Separation"),
		pdfobj.Name("Spot"),
		pdfobj.Name("DeviceRGB"),
		pdfobj.Dict{
			"FunctionType": pdfobj.Integer(2),
			"Domain":       pdfobj.Array{pdfobj.Integer(0), pdfobj.Integer(1)},
			"C0":           pdfobj.Array{pdfobj.Integer(1), pdfobj.Integer(1), pdfobj.Integer(1)},
			"C1":           pdfobj.Array{pdfobj.Integer(1), pdfobj.Integer(0), pdfobj.Integer(0)},
			"N":            pdfobj.Integer(1),
		},
	}
	content := pdfobj.Stream{
		Dict: pdfobj.Dict{"Length": pdfobj.Integer(5)},
		Source: pdfobj.StreamSourceFunc(func() ([]byte, error) {
			return []byte("BT ET"), nil
		}),
	}
	broken := pdfobj.Stream{
		Dict:    pdfobj.Dict{"Filter": pdfobj.Name("FlateDecode")},
		Filters: []string{"FlateDecode"},
		Source: pdfobj.StreamSourceFunc(func() ([]byte, error) {
			return nil, errors.New("zlib: invalid header")
		}),
	}
	return &fakeDoc{
		path: path,
		objects: map[pdfobj.Ref]pdfobj.Value{
			{Num: 1}: pdfobj.Dict{"Type": pdfobj.Name("Catalog"), "Pages": pdfobj.Ref{Num: 2}},
			{Num: 2}: pdfobj.Dict{"Type": pdfobj.Name("Pages"), "Kids": pdfobj.Array{pdfobj.Ref{Num: 3}}, "Count": pdfobj.Integer(1)},
			{Num: 3}: pdfobj.Dict{
				"Type":      pdfobj.Name("Page"),
				"Parent":    pdfobj.Ref{Num: 2},
				"Contents":  pdfobj.Ref{Num: 4},
				"Thumb":     pdfobj.Ref{Num: 5},
				"Resources": pdfobj.Dict{"ColorSpace": pdfobj.Dict{"CS0": sep}},
			},
			{Num: 4}: content,
			{Num: 5}: broken,
		},
	}
}

func (d *fakeDoc) Path() string { return d.path }

func (d *fakeDoc) Trailer() pdfobj.Dict {
	return pdfobj.Dict{"Size": pdfobj.Integer(6), "Root": pdfobj.Ref{Num: 1}}
}

func (d *fakeDoc) Resolve(v pdfobj.Value) (pdfobj.Value, error) {
	ref, ok := v.(pdfobj.Ref)
	if !ok {
		return v, nil
	}
	obj, ok := d.objects[ref]
	if !ok {
		return nil, fmt.Errorf("object %d is missing", ref.Num)
	}
	return obj, nil
}

func (d *fakeDoc) Tree() *pdfobj.Tree { return pdfobj.NewTree(d.Trailer(), d) }

func (d *fakeDoc) Close() error { d.closed++; return nil }

// fakeLoader serves fakeDocs by path. Paths in passwd need that password.
type fakeLoader struct {
	docs   map[string]*fakeDoc
	passwd map[string]string
}

func newFakeLoader(paths ...string) *fakeLoader {
	l := &fakeLoader{docs: map[string]*fakeDoc{}, passwd: map[string]string{}}
	for _, p := range paths {
		l.docs[p] = newFakeDoc(p)
	}
	return l
}

func (l *fakeLoader) load(path, password string) (session.Document, error) {
	if want, ok := l.passwd[path]; ok && want != password {
		return nil, types.Wrap(types.ErrKindLoad, "read "+path, fmt.Errorf("%w: bad user password", types.ErrPassword))
	}
	d, ok := l.docs[path]
	if !ok {
		return nil, types.Wrap(types.ErrKindLoad, "read "+path, errors.New("no such file or directory"))
	}
	return d, nil
}

// testHelper drives the model with synthetic messages. Commands returned by
// Update are dropped unless a test asks for them.
type testHelper struct {
	t      *testing.T
	model  Model
	store  *recent.Store
	loader *fakeLoader
}

func newTestHelper(t *testing.T, l *fakeLoader) *testHelper {
	t.Helper()
	store, err := recent.New("test", recent.DefaultMax, recent.NewMemoryBackend())
	require.NoError(t, err)
	h := &testHelper{t: t, model: NewModel(session.New(l.load, store)), store: store, loader: l}
	return h.SendWindowSize(120, 40)
}

func (h *testHelper) send(msg tea.Msg) tea.Cmd {
	updated, cmd := h.model.Update(msg)
	h.model = updated.(Model)
	return cmd
}

func (h *testHelper) SendKey(k tea.KeyType) *testHelper {
	h.send(tea.KeyMsg{Type: k})
	return h
}

func (h *testHelper) SendKeyRune(r rune) *testHelper {
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return h
}

// Type sends s one rune at a time.
func (h *testHelper) Type(s string) *testHelper {
	for _, r := range s {
		h.SendKeyRune(r)
	}
	return h
}

func (h *testHelper) SendWindowSize(w, height int) *testHelper {
	h.send(tea.WindowSizeMsg{Width: w, Height: height})
	return h
}

// Open runs the open prompt for path.
func (h *testHelper) Open(path string) *testHelper {
	return h.SendKeyRune('o').Type(path).SendKey(tea.KeyEnter)
}

// GoTo runs the go-to-path prompt, replacing the prefilled path.
func (h *testHelper) GoTo(path string) *testHelper {
	h.SendKey(tea.KeyCtrlG)
	for range []rune(h.model.inputBuffer) {
		h.SendKey(tea.KeyBackspace)
	}
	return h.Type(path).SendKey(tea.KeyEnter)
}

// GetModel returns the live model so tests can call its pointer getters.
func (h *testHelper) GetModel() *Model { return &h.model }

func (h *testHelper) GetView() string { return h.model.View() }
