// Package selection carries tree selection changes to the panels that
// display them.
//
// Everything runs inside the bubbletea update loop, so the bus is not a
// channel: the tree records the latest selection and the owner of the panels
// takes it once the tree has finished handling a message. Rapid cursor
// movement within one message therefore collapses into a single event.
package selection

import "github.com/joshuapare/pdfexplorer/pkg/pdfobj"

// Event describes the newly selected tree node.
type Event struct {
	Path  string       // tree path, e.g. "Root/Pages/Kids/[0]"
	Label string       // label shown in the tree
	Node  pdfobj.Value // the selected entry
	Seq   uint64       // increases with every Notify
}

// Bus holds at most one pending event.
type Bus struct {
	pending *Event
	last    Event
	seq     uint64
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Notify records a selection, replacing any event that has not been taken.
func (b *Bus) Notify(path, label string, node pdfobj.Value) {
	b.seq++
	ev := Event{Path: path, Label: label, Node: node, Seq: b.seq}
	b.pending = &ev
	b.last = ev
}

// Take returns the pending event and clears it.
func (b *Bus) Take() (Event, bool) {
	if b.pending == nil {
		return Event{}, false
	}
	ev := *b.pending
	b.pending = nil
	return ev, true
}

// Last returns the most recent event whether or not it has been taken.
func (b *Bus) Last() (Event, bool) {
	return b.last, b.seq > 0
}

// Reset drops the pending and last events, e.g. when the document changes.
func (b *Bus) Reset() {
	b.pending = nil
	b.last = Event{}
	b.seq = 0
}
