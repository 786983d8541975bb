// Package audio builds the audio sub-chain of the composition graph:
// per-file delay/volume processing feeding one mix node, with optional
// silence padding to the project duration.
package audio

import (
	"compositor/graph"
	"compositor/internal/timeutil"
	"compositor/models"
)

// labelPrefix for intermediate audio pins.
const labelPrefix = "a"

// trackInput pairs a registered audio file with its timeline track.
type trackInput struct {
	src   graph.InputSource
	track models.AudioTrack
}

// Builder composes the audio sub-chain for one compilation.
type Builder struct {
	alloc         *graph.LabelAllocator
	totalDuration float64
	padToDuration bool
	tracks        []trackInput
}

// NewBuilder creates a builder drawing labels from the compilation's
// shared allocator. totalDuration is the project duration used for
// silence padding after the mix.
func NewBuilder(alloc *graph.LabelAllocator, totalDuration float64) *Builder {
	return &Builder{
		alloc:         alloc,
		totalDuration: totalDuration,
		padToDuration: true,
	}
}

// SetPadToDuration controls whether a mixed output shorter than the
// project is padded with silence to the project duration. Defaults to
// true; single-track chains are never padded.
func (b *Builder) SetPadToDuration(pad bool) *Builder {
	b.padToDuration = pad
	return b
}

// AddTrack appends an audio file in timeline order.
func (b *Builder) AddTrack(src graph.InputSource, track models.AudioTrack) *Builder {
	b.tracks = append(b.tracks, trackInput{src: src, track: track})
	return b
}

// Build compiles the tracks into a chain ending in one labeled output
// pin. Returns nil when no graph is needed: either there is no audio
// at all, or there is a single track with no delay and default volume,
// in which case the raw input stream is mapped directly.
func (b *Builder) Build() (*graph.Chain, error) {
	if len(b.tracks) == 0 {
		return nil, nil
	}

	if len(b.tracks) == 1 {
		return b.buildSingle(b.tracks[0])
	}
	return b.buildMix()
}

// buildSingle compiles the one-track case: a Delay node if the offset
// rounds to a positive millisecond count, then a Volume node if the
// volume differs from the default. No processing at all means no graph.
func (b *Builder) buildSingle(in trackInput) (*graph.Chain, error) {
	delayMs := timeutil.RoundMillis(in.track.StartOffset)
	needsVolume := in.track.Volume != models.DefaultVolume

	if delayMs == 0 && !needsVolume {
		return nil, nil
	}

	chain := &graph.Chain{}
	current := in.src.AudioPin()

	var err error
	current, err = b.appendTrackNodes(chain, current, delayMs, needsVolume, in.track.Volume)
	if err != nil {
		return nil, err
	}

	chain.Output = current
	return chain, nil
}

// buildMix compiles the multi-track case: each file gets its own
// delay/volume sub-chain (files needing neither feed the mix from
// their native pin), then one Mix node combines all per-file pins.
// The mix never truncates below the longest input.
func (b *Builder) buildMix() (*graph.Chain, error) {
	chain := &graph.Chain{}
	mixInputs := make([]graph.Pin, 0, len(b.tracks))

	for _, in := range b.tracks {
		delayMs := timeutil.RoundMillis(in.track.StartOffset)
		needsVolume := in.track.Volume != models.DefaultVolume

		current, err := b.appendTrackNodes(chain, in.src.AudioPin(), delayMs, needsVolume, in.track.Volume)
		if err != nil {
			return nil, err
		}
		mixInputs = append(mixInputs, current)
	}

	mixOut, err := b.alloc.Next(labelPrefix, graph.StreamAudio)
	if err != nil {
		return nil, err
	}
	chain.Nodes = append(chain.Nodes, graph.FilterNode{
		Op:     graph.OpMix,
		Inputs: mixInputs,
		Output: mixOut,
		Params: graph.MixParams{Inputs: len(mixInputs)},
	})
	current := mixOut

	if b.padToDuration && b.totalDuration > 0 {
		padOut, err := b.alloc.Next(labelPrefix, graph.StreamAudio)
		if err != nil {
			return nil, err
		}
		chain.Nodes = append(chain.Nodes, graph.FilterNode{
			Op:     graph.OpPad,
			Inputs: []graph.Pin{current},
			Output: padOut,
			Params: graph.PadParams{WholeDuration: b.totalDuration},
		})
		current = padOut
	}

	chain.Output = current
	return chain, nil
}

// appendTrackNodes emits the delay and volume nodes for one track and
// returns the pin carrying the processed stream. Emits nothing when
// neither is needed.
func (b *Builder) appendTrackNodes(chain *graph.Chain, current graph.Pin, delayMs int64, needsVolume bool, volume float64) (graph.Pin, error) {
	if delayMs > 0 {
		out, err := b.alloc.Next(labelPrefix, graph.StreamAudio)
		if err != nil {
			return graph.Pin{}, err
		}
		chain.Nodes = append(chain.Nodes, graph.FilterNode{
			Op:     graph.OpDelay,
			Inputs: []graph.Pin{current},
			Output: out,
			Params: graph.DelayParams{Millis: delayMs},
		})
		current = out
	}

	if needsVolume {
		out, err := b.alloc.Next(labelPrefix, graph.StreamAudio)
		if err != nil {
			return graph.Pin{}, err
		}
		chain.Nodes = append(chain.Nodes, graph.FilterNode{
			Op:     graph.OpVolume,
			Inputs: []graph.Pin{current},
			Output: out,
			Params: graph.VolumeParams{Multiplier: volume},
		})
		current = out
	}

	return current, nil
}
