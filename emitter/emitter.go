// Package emitter serializes a compiled graph and its input registry
// into the flat instruction list handed to whatever spawns the engine
// process. It emits at most one graph directive per invocation.
package emitter

import (
	"errors"
	"fmt"

	"compositor/graph"
)

// ErrNoInputs is returned when emission is attempted with an empty
// input list; every export has at least the base video.
var ErrNoInputs = errors.New("no input sources to emit")

// Emit serializes the graph plus input declarations and stream
// mappings into engine arguments.
//
// Layout: one input declaration per source in registry order, then
// exactly one "-filter_complex" token pair when the graph is
// non-empty, then the stream mappings. A missing final video pin
// falls back to input 0's native video stream; a missing final audio
// pin falls back to the first audio input's native stream, or omits
// the audio mapping entirely when there is no audio input. A
// video-only export never fails for lack of audio.
func Emit(g *graph.CompiledGraph, inputs []graph.InputSource) ([]string, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}
	if inputs[0].Kind != graph.InputVideo {
		return nil, fmt.Errorf("input 0 must be the base video, got %s", inputs[0].Kind)
	}

	args := make([]string, 0, 2*len(inputs)+8)
	for _, src := range inputs {
		args = append(args, "-i", src.Path)
	}

	if !g.Empty() {
		args = append(args, "-filter_complex", g.Serialize())
	}

	// Video mapping: graph output or the base video's native stream.
	if !g.FinalVideoPin.IsZero() {
		args = append(args, "-map", g.FinalVideoPin.Token())
	} else {
		args = append(args, "-map", inputs[0].VideoPin().Name)
	}

	// Audio mapping: graph output, first audio input, or nothing.
	if !g.FinalAudioPin.IsZero() {
		args = append(args, "-map", g.FinalAudioPin.Token())
	} else if src, ok := firstAudio(inputs); ok {
		args = append(args, "-map", src.AudioPin().Name)
	}

	return args, nil
}

func firstAudio(inputs []graph.InputSource) (graph.InputSource, bool) {
	for _, src := range inputs {
		if src.Kind == graph.InputAudioFile {
			return src, true
		}
	}
	return graph.InputSource{}, false
}
