package recent

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := New("test", 0, nil)
	require.NoError(t, err)
	return s
}

func TestStore_AddMovesToFront(t *testing.T) {
	s := newStore(t)
	s.Add("/a.pdf")
	s.Add("/b.pdf")
	s.Add("/a.pdf")

	assert.Equal(t, []string{"/a.pdf", "/b.pdf"}, s.List())
	assert.Equal(t, 2, s.Len())
}

func TestStore_EvictsOldest(t *testing.T) {
	s := newStore(t)
	require.Equal(t, DefaultMax, s.Max())

	for i := 1; i <= 6; i++ {
		s.Add(fmt.Sprintf("/doc%d.pdf", i))
	}
	assert.Equal(t, []string{"/doc6.pdf", "/doc5.pdf", "/doc4.pdf", "/doc3.pdf", "/doc2.pdf"}, s.List())
}

func TestStore_RemoveIsIdempotent(t *testing.T) {
	s := newStore(t)
	s.Add("/a.pdf")
	s.Add("/b.pdf")

	s.Remove("/a.pdf")
	s.Remove("/a.pdf")
	s.Remove("/never.pdf")
	assert.Equal(t, []string{"/b.pdf"}, s.List())
}

func TestStore_IgnoresEmptyPath(t *testing.T) {
	s := newStore(t)
	s.Add("")
	assert.Zero(t, s.Len())
}

func TestStore_ListIsACopy(t *testing.T) {
	s := newStore(t)
	s.Add("/a.pdf")
	l := s.List()
	l[0] = "/mutated.pdf"
	assert.Equal(t, []string{"/a.pdf"}, s.List())
}

func TestStore_MemoryBackendPersists(t *testing.T) {
	backend := NewMemoryBackend()
	s, err := New("app", 3, backend)
	require.NoError(t, err)
	s.Add("/a.pdf")
	s.Add("/b.pdf")
	require.NoError(t, s.Save())

	again, err := New("app", 3, backend)
	require.NoError(t, err)
	assert.Equal(t, []string{"/b.pdf", "/a.pdf"}, again.List())

	other, err := New("other", 3, backend)
	require.NoError(t, err)
	assert.Zero(t, other.Len())
}

func TestStore_RestoreTrimsAndDedupes(t *testing.T) {
	backend := NewMemoryBackend()
	require.NoError(t, backend.Save(Record{Name: "app", Paths: []string{"/a", "/b", "/a", "", "/c", "/d"}}))

	s, err := New("app", 2, backend)
	require.NoError(t, err)
	assert.Equal(t, []string{"/a", "/b"}, s.List())
}

func TestFileBackend_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")
	backend := FileBackend{Dir: dir}

	s, err := New("github.com/joshuapare/pdfexplorer", 5, backend)
	require.NoError(t, err)
	assert.Zero(t, s.Len(), "missing file starts empty")

	s.Add("/x/one.pdf")
	s.Add("/x/two.pdf")
	require.NoError(t, s.Save())

	path := backend.Path("github.com/joshuapare/pdfexplorer")
	assert.Equal(t, filepath.Join(dir, "github.com_joshuapare_pdfexplorer.yaml"), path)
	assert.FileExists(t, path)

	again, err := New("github.com/joshuapare/pdfexplorer", 5, backend)
	require.NoError(t, err)
	assert.Equal(t, []string{"/x/two.pdf", "/x/one.pdf"}, again.List())
}

func TestFileBackend_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	backend := FileBackend{Dir: dir}
	require.NoError(t, os.WriteFile(backend.Path("app"), []byte("paths: [unterminated"), 0o644))

	_, err := New("app", 5, backend)
	assert.Error(t, err)
}
