package graph

import (
	"errors"
	"fmt"
)

// InputKind classifies a media input handed to the engine.
type InputKind int

const (
	InputVideo InputKind = iota
	InputOverlayImage
	InputAudioFile
)

// String returns a short identifier for logging and error messages.
func (k InputKind) String() string {
	switch k {
	case InputVideo:
		return "video"
	case InputOverlayImage:
		return "overlay-image"
	case InputAudioFile:
		return "audio-file"
	default:
		return "unknown"
	}
}

// InputSource is one media input in the engine's input list. The index
// is its position in that list and is assigned by the registry alone;
// it is immutable once assigned.
type InputSource struct {
	Index int
	Kind  InputKind
	Path  string
}

// VideoPin returns the native video stream pin of this input, e.g. "0:v".
func (s InputSource) VideoPin() Pin {
	return Pin{Name: fmt.Sprintf("%d:v", s.Index), Kind: StreamVideo}
}

// AudioPin returns the native audio stream pin of this input, e.g. "2:a".
func (s InputSource) AudioPin() Pin {
	return Pin{Name: fmt.Sprintf("%d:a", s.Index), Kind: StreamAudio}
}

// ErrRegistryFrozen is returned when Register is called after Finalize.
var ErrRegistryFrozen = errors.New("input registry is frozen")

// InputRegistry assigns stable zero-based indices to every input source
// in strict call order. It is the single source of truth for index
// arithmetic: base video first (index 0), overlay images next in
// z-order, audio files last in timeline order. No index is ever reused
// or skipped.
type InputRegistry struct {
	inputs []InputSource
	frozen bool
}

// NewInputRegistry creates an empty registry for one compilation.
func NewInputRegistry() *InputRegistry {
	return &InputRegistry{}
}

// Register adds an input and returns it with its assigned index.
// Fails with ErrRegistryFrozen after Finalize.
func (r *InputRegistry) Register(kind InputKind, path string) (InputSource, error) {
	if r.frozen {
		return InputSource{}, fmt.Errorf("cannot register %s input %q: %w", kind, path, ErrRegistryFrozen)
	}
	src := InputSource{Index: len(r.inputs), Kind: kind, Path: path}
	r.inputs = append(r.inputs, src)
	return src, nil
}

// Finalize freezes the registry and returns all inputs in index order.
// The returned slice is a copy; mutating it cannot disturb the registry.
func (r *InputRegistry) Finalize() []InputSource {
	r.frozen = true
	out := make([]InputSource, len(r.inputs))
	copy(out, r.inputs)
	return out
}

// Len returns the number of registered inputs.
func (r *InputRegistry) Len() int {
	return len(r.inputs)
}

// FirstAudio returns the first registered audio-file input, if any.
func (r *InputRegistry) FirstAudio() (InputSource, bool) {
	for _, src := range r.inputs {
		if src.Kind == InputAudioFile {
			return src, true
		}
	}
	return InputSource{}, false
}
