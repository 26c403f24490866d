// Package types holds the error taxonomy shared by the pdfexplorer packages.
//
// Errors carry a stable ErrKind (load/decode/usage/state/not found) so the UI
// can decide how to surface them without matching on message text:
//
//	if errors.Is(err, types.ErrLoad) {
//	    // keep the previous document, show the message
//	}
//
// This package has no dependencies beyond the standard library.
package types
