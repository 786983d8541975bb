// Package compiler is the front door of the composition graph
// compiler: it wires the input registry, label allocator, chain
// builders, assembler, and emitter for one export request.
//
// A compilation is a pure, synchronous transformation. Every call
// allocates its own registry and allocator, so concurrent compilations
// need no synchronization.
package compiler

import (
	"fmt"

	"compositor/chain/audio"
	"compositor/chain/video"
	"compositor/emitter"
	"compositor/graph"
	"compositor/models"
)

// Options tunes compilation behavior.
type Options struct {
	// PadAudio pads a mixed audio output with silence up to the
	// project duration. Single-track chains are never padded.
	PadAudio bool
}

// DefaultOptions returns the standard compilation options.
func DefaultOptions() Options {
	return Options{PadAudio: true}
}

// Result is the outcome of one compilation: the flat instruction list
// for the engine invocation plus the artifacts it was derived from.
type Result struct {
	Args   []string
	Graph  *graph.CompiledGraph
	Inputs []graph.InputSource
}

// Compile compiles an export request with default options.
func Compile(req *models.ExportRequest) (*Result, error) {
	return CompileWithOptions(req, DefaultOptions())
}

// CompileWithOptions compiles an export request into the engine
// instruction list. Either a fully valid result is returned or an
// error before any instruction is emitted; there is no partial output.
//
// Registration order is fixed: base video (index 0), overlay images in
// z-order, audio files in timeline order. The registry is the only
// place indices are computed.
func CompileWithOptions(req *models.ExportRequest, opts Options) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	registry := graph.NewInputRegistry()
	alloc := graph.NewLabelAllocator()

	base, err := registry.Register(graph.InputVideo, req.VideoPath)
	if err != nil {
		return nil, err
	}

	vb := video.NewBuilder(base.VideoPin(), alloc)
	for _, e := range req.Effects {
		vb.AddEffect(e)
	}
	for _, ov := range req.OverlaysByZOrder() {
		src, err := registry.Register(graph.InputOverlayImage, ov.SourcePath)
		if err != nil {
			return nil, err
		}
		vb.AddOverlay(src, ov)
	}
	for _, t := range req.Texts {
		vb.AddText(t)
	}

	ab := audio.NewBuilder(alloc, req.Duration).SetPadToDuration(opts.PadAudio)
	for _, track := range req.Audio {
		src, err := registry.Register(graph.InputAudioFile, track.SourcePath)
		if err != nil {
			return nil, err
		}
		ab.AddTrack(src, track)
	}

	videoChain, err := vb.Build()
	if err != nil {
		return nil, fmt.Errorf("video chain: %w", err)
	}
	audioChain, err := ab.Build()
	if err != nil {
		return nil, fmt.Errorf("audio chain: %w", err)
	}

	alloc.Close()
	inputs := registry.Finalize()

	g, err := graph.Assemble(videoChain, audioChain)
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}

	args, err := emitter.Emit(g, inputs)
	if err != nil {
		return nil, fmt.Errorf("emit: %w", err)
	}

	return &Result{Args: args, Graph: g, Inputs: inputs}, nil
}
