package graph

import (
	"errors"
	"fmt"
	"strings"
)

// Chain is the result of one sub-chain builder: a topologically ordered
// node list ending in a single labeled output pin.
type Chain struct {
	Nodes  []FilterNode
	Output Pin
}

// CompiledGraph is the final artifact of a compilation: one node list
// in emission order plus the final pins the stream mappings reference.
//
// A zero final pin means the corresponding sub-chain produced no graph
// and the raw input stream is mapped directly. If both pins are zero
// the graph is empty and no graph directive is emitted at all.
//
// The assembler is the only producer of CompiledGraph values; nothing
// else can append nodes, so a compilation can never yield more than
// one graph directive.
type CompiledGraph struct {
	Nodes         []FilterNode
	FinalVideoPin Pin
	FinalAudioPin Pin
}

// Empty reports whether the graph has no nodes and therefore no
// directive to emit.
func (g *CompiledGraph) Empty() bool {
	return len(g.Nodes) == 0
}

// Serialize renders all nodes joined by the engine's statement
// separator.
func (g *CompiledGraph) Serialize() string {
	stmts := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		stmts[i] = n.Statement()
	}
	return strings.Join(stmts, ";")
}

// Validation failures are contract violations, surfaced immediately
// and never retried.
var (
	ErrUndefinedPin   = errors.New("node input pin was never produced")
	ErrDuplicateLabel = errors.New("pin label produced more than once")
	ErrMissingOutput  = errors.New("node has no output pin")
)

// Assemble merges the video and audio sub-chains into exactly one
// CompiledGraph, video nodes first. Either chain may be nil, meaning
// that stream passes through untouched; both nil yields an empty
// graph and the emitter falls back to direct stream mapping.
//
// Assemble validates the merged node list: every input pin must be a
// native input stream or a label produced by an earlier node, and no
// label may be produced twice.
func Assemble(video, audio *Chain) (*CompiledGraph, error) {
	g := &CompiledGraph{}

	if video != nil {
		g.Nodes = append(g.Nodes, video.Nodes...)
		g.FinalVideoPin = video.Output
	}
	if audio != nil {
		g.Nodes = append(g.Nodes, audio.Nodes...)
		g.FinalAudioPin = audio.Output
	}

	if err := validate(g); err != nil {
		return nil, err
	}
	return g, nil
}

// validate walks the node list in emission order, tracking produced
// labels. Native input pins ("0:v", "2:a") are always defined; they
// contain the stream separator, which label names never do.
func validate(g *CompiledGraph) error {
	produced := make(map[string]bool, len(g.Nodes))

	for i, n := range g.Nodes {
		for _, in := range n.Inputs {
			if isNativePin(in) {
				continue
			}
			if !produced[in.Name] {
				return fmt.Errorf("node %d (%s) input %q: %w", i, n.Op, in.Name, ErrUndefinedPin)
			}
		}
		if n.Output.IsZero() {
			return fmt.Errorf("node %d (%s): %w", i, n.Op, ErrMissingOutput)
		}
		if produced[n.Output.Name] {
			return fmt.Errorf("node %d (%s) output %q: %w", i, n.Op, n.Output.Name, ErrDuplicateLabel)
		}
		produced[n.Output.Name] = true
	}

	if !g.FinalVideoPin.IsZero() && !produced[g.FinalVideoPin.Name] {
		return fmt.Errorf("final video pin %q: %w", g.FinalVideoPin.Name, ErrUndefinedPin)
	}
	if !g.FinalAudioPin.IsZero() && !produced[g.FinalAudioPin.Name] {
		return fmt.Errorf("final audio pin %q: %w", g.FinalAudioPin.Name, ErrUndefinedPin)
	}
	return nil
}

func isNativePin(p Pin) bool {
	return strings.Contains(p.Name, ":")
}
