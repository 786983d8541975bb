// Package video builds the visual sub-chain of the composition graph:
// whole-frame effects, image overlays in z-order, then text overlays,
// as one strictly linear sequence of filter nodes.
package video

import (
	"fmt"

	"compositor/graph"
	"compositor/models"
)

// labelPrefix for intermediate video pins. Uniqueness comes from the
// shared allocator counter, not the prefix.
const labelPrefix = "v"

// overlayInput pairs a registered overlay image with its timeline
// element.
type overlayInput struct {
	src  graph.InputSource
	elem models.OverlayElement
}

// Builder composes the video sub-chain for one compilation. Stages are
// added in the order the timeline collaborator resolves them and
// compiled by Build.
type Builder struct {
	base     graph.Pin
	alloc    *graph.LabelAllocator
	effects  []models.Effect
	overlays []overlayInput
	texts    []models.TextElement
}

// NewBuilder creates a builder starting from the base video pin,
// drawing labels from the compilation's shared allocator.
func NewBuilder(base graph.Pin, alloc *graph.LabelAllocator) *Builder {
	return &Builder{
		base:  base,
		alloc: alloc,
	}
}

// AddEffect appends a whole-frame effect in author-specified order.
func (b *Builder) AddEffect(e models.Effect) *Builder {
	b.effects = append(b.effects, e)
	return b
}

// AddOverlay appends an overlay image. Callers add overlays in z-order;
// each consumes the running video pin plus the image's own input pin.
func (b *Builder) AddOverlay(src graph.InputSource, elem models.OverlayElement) *Builder {
	b.overlays = append(b.overlays, overlayInput{src: src, elem: elem})
	return b
}

// AddText appends a text overlay drawn after all image overlays.
func (b *Builder) AddText(t models.TextElement) *Builder {
	b.texts = append(b.texts, t)
	return b
}

// Build compiles the stages into a linear chain ending in one labeled
// output pin. Returns nil when every stage is empty: the base stream
// passes through untouched and the caller maps the raw input directly.
//
// An element with zero duration or a start beyond the project length
// still produces a node; its visibility window is simply always false.
func (b *Builder) Build() (*graph.Chain, error) {
	if len(b.effects) == 0 && len(b.overlays) == 0 && len(b.texts) == 0 {
		return nil, nil
	}

	chain := &graph.Chain{}
	current := b.base

	for _, e := range b.effects {
		params, op, err := effectParams(e)
		if err != nil {
			return nil, err
		}
		out, err := b.alloc.Next(labelPrefix, graph.StreamVideo)
		if err != nil {
			return nil, err
		}
		chain.Nodes = append(chain.Nodes, graph.FilterNode{
			Op:     op,
			Inputs: []graph.Pin{current},
			Output: out,
			Params: params,
		})
		current = out
	}

	for _, ov := range b.overlays {
		out, err := b.alloc.Next(labelPrefix, graph.StreamVideo)
		if err != nil {
			return nil, err
		}
		chain.Nodes = append(chain.Nodes, graph.FilterNode{
			Op:     graph.OpOverlay,
			Inputs: []graph.Pin{current, ov.src.VideoPin()},
			Output: out,
			Params: graph.OverlayParams{
				X:     ov.elem.X,
				Y:     ov.elem.Y,
				Start: ov.elem.Start,
				End:   ov.elem.Start + ov.elem.Duration,
			},
		})
		current = out
	}

	for _, t := range b.texts {
		out, err := b.alloc.Next(labelPrefix, graph.StreamVideo)
		if err != nil {
			return nil, err
		}
		chain.Nodes = append(chain.Nodes, graph.FilterNode{
			Op:     graph.OpDrawText,
			Inputs: []graph.Pin{current},
			Output: out,
			Params: graph.DrawTextParams{
				Text:      t.Content,
				FontFile:  t.FontFile,
				FontSize:  t.FontSize,
				FontColor: t.FontColor,
				X:         t.X,
				Y:         t.Y,
				Start:     t.Start,
				End:       t.Start + t.Duration,
			},
		})
		current = out
	}

	chain.Output = current
	return chain, nil
}

// effectParams maps an effect to its operation and parameters.
func effectParams(e models.Effect) (graph.OperationParams, graph.Operation, error) {
	switch e.Kind {
	case models.EffectScale:
		return graph.ScaleParams{Width: e.Width, Height: e.Height}, graph.OpScale, nil
	case models.EffectRotate:
		return graph.RotateParams{Degrees: e.Degrees}, graph.OpRotate, nil
	case models.EffectOpacity:
		return graph.OpacityParams{Alpha: e.Alpha}, graph.OpOpacity, nil
	default:
		return nil, 0, fmt.Errorf("unknown effect kind %q", e.Kind)
	}
}
