// Package mmfile maps document files into memory for the PDF reader.
//
// The returned slice is read-only and must not be used after the release
// function has been called.
package mmfile

func noop() error { return nil }
