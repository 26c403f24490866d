// Package session owns the open document and keeps the recent-files list in
// step with it.
package session

import (
	"fmt"

	"github.com/joshuapare/pdfexplorer/pkg/document"
	"github.com/joshuapare/pdfexplorer/pkg/pdfobj"
	"github.com/joshuapare/pdfexplorer/pkg/recent"
	"github.com/joshuapare/pdfexplorer/pkg/types"
)

// Document is what a session needs from an open file.
type Document interface {
	Path() string
	Trailer() pdfobj.Dict
	Resolve(v pdfobj.Value) (pdfobj.Value, error)
	Tree() *pdfobj.Tree
	Close() error
}

// Loader opens a document.
type Loader func(path, password string) (Document, error)

// DocumentLoader loads files with package document.
func DocumentLoader(path, password string) (Document, error) {
	doc, err := document.Load(path, password)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Session is either empty or holds one open document.
type Session struct {
	load   Loader
	recent *recent.Store
	doc    Document
}

// New returns an empty session. A nil loader selects DocumentLoader.
func New(load Loader, store *recent.Store) *Session {
	if load == nil {
		load = DocumentLoader
	}
	return &Session{load: load, recent: store}
}

// Open loads path and makes it the current document.
//
// The new file is loaded before anything else changes, so on failure the
// previous document stays open and the error is returned. On success the
// previous document is closed and its path recorded, the new path is taken
// off the recent list and the list is saved.
//
// A failed Close of the previous document or a failed save is returned as
// an error even though the new document is in place.
func (s *Session) Open(path, password string) error {
	doc, err := s.load(path, password)
	if err != nil {
		return err
	}

	closeErr := s.closeCurrent()
	s.doc = doc

	var saveErr error
	if s.recent != nil {
		s.recent.Remove(doc.Path())
		saveErr = s.recent.Save()
	}

	switch {
	case closeErr != nil:
		return closeErr
	case saveErr != nil:
		return saveErr
	default:
		return nil
	}
}

// Close closes the current document, records it as recent and saves the
// list. Closing an empty session only saves.
func (s *Session) Close() error {
	closeErr := s.closeCurrent()
	if s.recent != nil {
		if err := s.recent.Save(); err != nil && closeErr == nil {
			return err
		}
	}
	return closeErr
}

func (s *Session) closeCurrent() error {
	if s.doc == nil {
		return nil
	}
	doc := s.doc
	s.doc = nil
	if s.recent != nil {
		s.recent.Add(doc.Path())
	}
	if err := doc.Close(); err != nil {
		return fmt.Errorf("close %s: %w", doc.Path(), err)
	}
	return nil
}

// Current returns the open document or types.ErrNoDocument.
func (s *Session) Current() (Document, error) {
	if s.doc == nil {
		return nil, types.ErrNoDocument
	}
	return s.doc, nil
}

// IsOpen reports whether a document is open.
func (s *Session) IsOpen() bool {
	return s.doc != nil
}

// Recent returns the recent-files list, newest first. The open document is
// not part of it.
func (s *Session) Recent() []string {
	if s.recent == nil {
		return nil
	}
	return s.recent.List()
}

// Forget removes path from the recent list, e.g. after it failed to open.
func (s *Session) Forget(path string) error {
	if s.recent == nil {
		return nil
	}
	s.recent.Remove(path)
	return s.recent.Save()
}
