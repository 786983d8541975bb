// Package graph provides the building blocks of a filter graph program:
// pins, nodes, input sources, and the assembler that unifies the video
// and audio sub-chains into exactly one compiled graph.
//
// Everything in this package is constructed fresh per compilation and
// holds no state beyond it; concurrent compilations need no locking.
package graph

import (
	"errors"
	"fmt"
)

// StreamKind identifies whether a pin carries video or audio samples.
type StreamKind int

const (
	StreamVideo StreamKind = iota
	StreamAudio
)

// String returns a short identifier for logging and error messages.
func (k StreamKind) String() string {
	switch k {
	case StreamVideo:
		return "video"
	case StreamAudio:
		return "audio"
	default:
		return "unknown"
	}
}

// Pin is a named attachment point in the filter graph. A pin is either
// the native stream of an input source (e.g. "0:v") or an intermediate
// label produced by exactly one node.
type Pin struct {
	Name string
	Kind StreamKind
}

// IsZero reports whether the pin is unset.
func (p Pin) IsZero() bool {
	return p.Name == ""
}

// Token returns the pin wrapped in brackets as the engine's graph
// language expects, e.g. "[v3]" or "[0:a]".
func (p Pin) Token() string {
	return "[" + p.Name + "]"
}

// ErrAllocatorClosed is returned when labels are requested after the
// graph has been finalized.
var ErrAllocatorClosed = errors.New("label allocator is closed")

// LabelAllocator hands out unique intermediate pin names for one
// compilation. A single allocator is shared by the video and audio
// chain builders so labels can never collide across sub-chains.
//
// The counter is monotonic and never resets mid-graph.
type LabelAllocator struct {
	counter int
	closed  bool
}

// NewLabelAllocator creates an allocator for one compilation.
func NewLabelAllocator() *LabelAllocator {
	return &LabelAllocator{}
}

// Next returns a fresh pin named "{prefix}{counter}". The prefix must
// start with a letter; it conventionally hints at the stream ("v", "a")
// but uniqueness comes from the shared counter alone.
func (la *LabelAllocator) Next(prefix string, kind StreamKind) (Pin, error) {
	if la.closed {
		return Pin{}, fmt.Errorf("cannot allocate label %q%d: %w", prefix, la.counter, ErrAllocatorClosed)
	}
	pin := Pin{Name: fmt.Sprintf("%s%d", prefix, la.counter), Kind: kind}
	la.counter++
	return pin, nil
}

// Close finalizes the allocator. Further Next calls fail with
// ErrAllocatorClosed. Closing twice is a no-op.
func (la *LabelAllocator) Close() {
	la.closed = true
}

// Allocated returns how many labels have been handed out.
func (la *LabelAllocator) Allocated() int {
	return la.counter
}
