package document

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	pdftypes "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/joshuapare/pdfexplorer/internal/mmfile"
	"github.com/joshuapare/pdfexplorer/pkg/pdfobj"
	"github.com/joshuapare/pdfexplorer/pkg/types"
)

var disableConfigDir sync.Once

// Document is an open PDF file.
type Document struct {
	path    string
	ctx     *model.Context
	release func() error

	mu     sync.Mutex
	closed bool
	cache  map[pdfobj.Ref]pdfobj.Value
}

// Load opens the PDF at path. password is tried as both the user and the
// owner password; pass "" for unencrypted files. Every failure has kind
// ErrKindLoad.
func Load(path, password string) (*Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, types.Wrap(types.ErrKindLoad, fmt.Sprintf("open %s", path), err)
	}

	data, release, err := mmfile.Map(abs)
	if err != nil {
		return nil, types.Wrap(types.ErrKindLoad, fmt.Sprintf("open %s", abs), err)
	}

	ctx, err := readContext(data, password)
	if err != nil {
		_ = release()
		if isPasswordError(err) {
			err = fmt.Errorf("%w: %v", types.ErrPassword, err)
		}
		return nil, types.Wrap(types.ErrKindLoad, fmt.Sprintf("read %s", abs), err)
	}

	return &Document{
		path:    abs,
		ctx:     ctx,
		release: release,
		cache:   make(map[pdfobj.Ref]pdfobj.Value),
	}, nil
}

func readContext(data []byte, password string) (ctx *model.Context, err error) {
	disableConfigDir.Do(api.DisableConfigDir)

	// pdfcpu reports some malformed input by panicking.
	defer func() {
		if r := recover(); r != nil {
			ctx, err = nil, fmt.Errorf("malformed document: %v", r)
		}
	}()

	conf := model.NewDefaultConfiguration()
	conf.UserPW = password
	conf.OwnerPW = password
	return api.ReadContext(bytes.NewReader(data), conf)
}

// isPasswordError recognises pdfcpu's wrong or missing password failures,
// which are only distinguishable by message.
func isPasswordError(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "password")
}

// Path returns the absolute path of the file.
func (d *Document) Path() string {
	return d.path
}

// PageCount returns the number of pages recorded in the page tree.
func (d *Document) PageCount() int {
	return d.ctx.PageCount
}

// Encrypted reports whether the file carries an /Encrypt dictionary.
func (d *Document) Encrypted() bool {
	return d.ctx.Encrypt != nil
}

// Trailer returns the trailer dictionary with the entries the reader kept:
// Size, Root, Info, Encrypt and ID, as present.
func (d *Document) Trailer() pdfobj.Dict {
	x := d.ctx.XRefTable
	t := pdfobj.Dict{}
	if x.Size != nil {
		t["Size"] = pdfobj.Integer(*x.Size)
	}
	if x.Root != nil {
		t["Root"] = toRef(*x.Root)
	}
	if x.Info != nil {
		t["Info"] = toRef(*x.Info)
	}
	if x.Encrypt != nil {
		t["Encrypt"] = toRef(*x.Encrypt)
	}
	if len(x.ID) > 0 {
		t["ID"] = Convert(x.ID)
	}
	return t
}

// Resolve dereferences a pdfobj.Ref. Other values are returned unchanged. A
// reference to a missing object resolves to pdfobj.Null.
func (d *Document) Resolve(v pdfobj.Value) (pdfobj.Value, error) {
	ref, ok := v.(pdfobj.Ref)
	if !ok {
		return v, nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil, types.ErrClosed
	}
	if cached, ok := d.cache[ref]; ok {
		return cached, nil
	}

	obj, err := d.ctx.Dereference(pdftypes.IndirectRef{
		ObjectNumber:     pdftypes.Integer(ref.Num),
		GenerationNumber: pdftypes.Integer(ref.Gen),
	})
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", ref, err)
	}
	val := Convert(obj)
	d.cache[ref] = val
	return val, nil
}

// Tree returns a tree over the trailer that resolves through d.
func (d *Document) Tree() *pdfobj.Tree {
	return pdfobj.NewTree(d.Trailer(), d)
}

// Close releases the file mapping. It is safe to call more than once.
func (d *Document) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true
	d.cache = nil
	if err := d.release(); err != nil {
		return fmt.Errorf("close %s: %w", d.path, err)
	}
	return nil
}
