package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pdfexplorer/pkg/pdfobj"
	"github.com/joshuapare/pdfexplorer/pkg/recent"
	"github.com/joshuapare/pdfexplorer/pkg/types"
)

type fakeDoc struct {
	path   string
	closed int
}

func (d *fakeDoc) Path() string                                 { return d.path }
func (d *fakeDoc) Trailer() pdfobj.Dict                         { return pdfobj.Dict{} }
func (d *fakeDoc) Resolve(v pdfobj.Value) (pdfobj.Value, error) { return v, nil }
func (d *fakeDoc) Tree() *pdfobj.Tree                           { return pdfobj.NewTree(d.Trailer(), d) }
func (d *fakeDoc) Close() error                                 { d.closed++; return nil }

type fakeLoader struct {
	docs   map[string]*fakeDoc
	fail   map[string]error
	passwd map[string]string
}

func newFakeLoader(paths ...string) *fakeLoader {
	l := &fakeLoader{docs: map[string]*fakeDoc{}, fail: map[string]error{}, passwd: map[string]string{}}
	for _, p := range paths {
		l.docs[p] = &fakeDoc{path: p}
	}
	return l
}

func (l *fakeLoader) load(path, password string) (Document, error) {
	if err, ok := l.fail[path]; ok {
		return nil, err
	}
	if want, ok := l.passwd[path]; ok && want != password {
		return nil, types.Wrap(types.ErrKindLoad, "wrong password", nil)
	}
	d, ok := l.docs[path]
	if !ok {
		return nil, types.Wrap(types.ErrKindLoad, "no such file "+path, nil)
	}
	return d, nil
}

func newSession(t *testing.T, l *fakeLoader) (*Session, *recent.Store, *recent.MemoryBackend) {
	t.Helper()
	backend := recent.NewMemoryBackend()
	store, err := recent.New("test", 5, backend)
	require.NoError(t, err)
	return New(l.load, store), store, backend
}

func TestSession_StartsEmpty(t *testing.T) {
	s, _, _ := newSession(t, newFakeLoader())
	assert.False(t, s.IsOpen())
	_, err := s.Current()
	assert.ErrorIs(t, err, types.ErrNoDocument)
	assert.ErrorIs(t, err, types.ErrState)
}

func TestSession_OpenReplacesAndRecords(t *testing.T) {
	l := newFakeLoader("/a.pdf", "/b.pdf")
	s, store, _ := newSession(t, l)

	require.NoError(t, s.Open("/a.pdf", ""))
	assert.True(t, s.IsOpen())
	assert.Empty(t, store.List())

	require.NoError(t, s.Open("/b.pdf", ""))
	cur, err := s.Current()
	require.NoError(t, err)
	assert.Equal(t, "/b.pdf", cur.Path())
	assert.Equal(t, 1, l.docs["/a.pdf"].closed)
	assert.Equal(t, []string{"/a.pdf"}, s.Recent())
}

func TestSession_ReopeningRecentRemovesIt(t *testing.T) {
	l := newFakeLoader("/a.pdf", "/b.pdf")
	s, _, _ := newSession(t, l)

	require.NoError(t, s.Open("/a.pdf", ""))
	require.NoError(t, s.Open("/b.pdf", ""))
	require.NoError(t, s.Open("/a.pdf", ""))

	assert.Equal(t, []string{"/b.pdf"}, s.Recent())
}

func TestSession_FailedOpenKeepsPrevious(t *testing.T) {
	l := newFakeLoader("/a.pdf")
	l.fail["/broken.pdf"] = types.Wrap(types.ErrKindLoad, "malformed", errors.New("no xref"))
	s, store, _ := newSession(t, l)

	require.NoError(t, s.Open("/a.pdf", ""))
	err := s.Open("/broken.pdf", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrLoad)

	cur, err := s.Current()
	require.NoError(t, err)
	assert.Equal(t, "/a.pdf", cur.Path())
	assert.Zero(t, l.docs["/a.pdf"].closed)
	assert.Empty(t, store.List())
}

func TestSession_Password(t *testing.T) {
	l := newFakeLoader("/secret.pdf")
	l.passwd["/secret.pdf"] = "hunter2"
	s, _, _ := newSession(t, l)

	assert.ErrorIs(t, s.Open("/secret.pdf", ""), types.ErrLoad)
	assert.False(t, s.IsOpen())
	require.NoError(t, s.Open("/secret.pdf", "hunter2"))
	assert.True(t, s.IsOpen())
}

func TestSession_ClosePersists(t *testing.T) {
	l := newFakeLoader("/a.pdf")
	s, _, backend := newSession(t, l)

	require.NoError(t, s.Open("/a.pdf", ""))
	require.NoError(t, s.Close())
	assert.False(t, s.IsOpen())
	assert.Equal(t, 1, l.docs["/a.pdf"].closed)

	rec, err := backend.Load("test")
	require.NoError(t, err)
	assert.Equal(t, []string{"/a.pdf"}, rec.Paths)

	require.NoError(t, s.Close(), "closing an empty session is fine")
	assert.Equal(t, 1, l.docs["/a.pdf"].closed)
}

func TestSession_Forget(t *testing.T) {
	l := newFakeLoader("/a.pdf", "/b.pdf")
	s, _, _ := newSession(t, l)
	require.NoError(t, s.Open("/a.pdf", ""))
	require.NoError(t, s.Open("/b.pdf", ""))

	require.NoError(t, s.Forget("/a.pdf"))
	assert.Empty(t, s.Recent())
}

func TestSession_NilRecent(t *testing.T) {
	l := newFakeLoader("/a.pdf")
	s := New(l.load, nil)
	require.NoError(t, s.Open("/a.pdf", ""))
	assert.Nil(t, s.Recent())
	require.NoError(t, s.Close())
}
