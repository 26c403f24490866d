// Package pdfobj models the nodes of a PDF object graph as the explorer sees
// them and decides how a selected node is displayed.
//
// Values form a closed set: Bool, Float, Integer, Name, String, Null, Stream,
// Array, Dict, Ref, plus the two wrappers ArrayEntry and MapEntry that the
// tree uses for "element i of an array" and "key k of a dictionary".
//
// The display rules live in three functions:
//
//   - Unwrap strips exactly one ArrayEntry/MapEntry wrapper.
//   - Stringify turns a leaf value into display text.
//   - Classify picks the panel for a selection: the Separation colour panel
//     for [/Separation ...] arrays, the text panel for everything else.
//
// Indexed and DeviceN colour space arrays are recognised as special colour
// spaces (IsSpecialColorSpace) but are still shown in the text panel. That
// gap is known and kept on purpose until those panels exist.
//
// Tree adapts a root value and a Resolver into the root/children/label
// contract a tree widget consumes. Nothing in this package parses PDF bytes;
// values are produced by package document.
package pdfobj
