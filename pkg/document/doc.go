// Package document opens PDF files and exposes their object graph as
// pdfobj values.
//
// Parsing, cross-reference resolution, decryption and stream filters are
// delegated to pdfcpu. A Document is read-only: nothing is ever written back
// to the file.
package document
