package graph

import (
	"fmt"
	"strconv"
	"strings"
)

// Operation is the closed set of filter operations the compiler emits.
// Each operation carries only the parameters it needs via its params
// struct; there are no optional fields shared across kinds.
type Operation int

const (
	OpScale Operation = iota
	OpOverlay
	OpRotate
	OpOpacity
	OpDrawText
	OpDelay
	OpVolume
	OpMix
	OpPad
	OpPassthrough
)

// String returns the operation name used in errors and tests.
func (op Operation) String() string {
	switch op {
	case OpScale:
		return "scale"
	case OpOverlay:
		return "overlay"
	case OpRotate:
		return "rotate"
	case OpOpacity:
		return "opacity"
	case OpDrawText:
		return "drawtext"
	case OpDelay:
		return "delay"
	case OpVolume:
		return "volume"
	case OpMix:
		return "mix"
	case OpPad:
		return "pad"
	case OpPassthrough:
		return "passthrough"
	default:
		return "unknown"
	}
}

// OperationParams is implemented by the per-operation parameter
// structs. filterText returns the filter name plus its arguments,
// without pin tokens.
type OperationParams interface {
	filterText() string
}

// ScaleParams resizes the video stream.
type ScaleParams struct {
	Width  int
	Height int
}

func (p ScaleParams) filterText() string {
	return fmt.Sprintf("scale=%d:%d", p.Width, p.Height)
}

// RotateParams rotates the video stream by an angle in degrees.
type RotateParams struct {
	Degrees float64
}

func (p RotateParams) filterText() string {
	// The engine's rotate filter takes radians; express the conversion
	// symbolically so the engine computes it at full precision.
	return fmt.Sprintf("rotate=%s*PI/180", formatFloat(p.Degrees))
}

// OpacityParams applies a constant alpha to the video stream.
type OpacityParams struct {
	Alpha float64
}

func (p OpacityParams) filterText() string {
	return fmt.Sprintf("format=rgba,colorchannelmixer=aa=%s", formatFloat(p.Alpha))
}

// OverlayParams composites the second input on top of the first at a
// position, visible only inside [Start, End).
type OverlayParams struct {
	X     int
	Y     int
	Start float64
	End   float64
}

func (p OverlayParams) filterText() string {
	return fmt.Sprintf("overlay=%d:%d:enable='%s'", p.X, p.Y, enableWindow(p.Start, p.End))
}

// DrawTextParams renders a text element, visible only inside [Start, End).
// Text and FontFile are escaped during serialization.
type DrawTextParams struct {
	Text      string
	FontFile  string
	FontSize  int
	FontColor string
	X         int
	Y         int
	Start     float64
	End       float64
}

func (p DrawTextParams) filterText() string {
	var b strings.Builder
	b.WriteString("drawtext=text='")
	b.WriteString(EscapeFilterValue(p.Text))
	b.WriteString("'")
	if p.FontFile != "" {
		b.WriteString(":fontfile='")
		b.WriteString(EscapeFilterValue(p.FontFile))
		b.WriteString("'")
	}
	if p.FontSize > 0 {
		fmt.Fprintf(&b, ":fontsize=%d", p.FontSize)
	}
	if p.FontColor != "" {
		b.WriteString(":fontcolor=")
		b.WriteString(p.FontColor)
	}
	fmt.Fprintf(&b, ":x=%d:y=%d:enable='%s'", p.X, p.Y, enableWindow(p.Start, p.End))
	return b.String()
}

// DelayParams delays the audio stream by whole milliseconds on all
// channels.
type DelayParams struct {
	Millis int64
}

func (p DelayParams) filterText() string {
	return fmt.Sprintf("adelay=%d|%d", p.Millis, p.Millis)
}

// VolumeParams scales the audio stream's amplitude.
type VolumeParams struct {
	Multiplier float64
}

func (p VolumeParams) filterText() string {
	return fmt.Sprintf("volume=%s", formatFloat(p.Multiplier))
}

// MixParams mixes N audio inputs into one. Duration policy is always
// "longest": mixing never truncates to the shortest track. Input
// normalization is disabled so per-track volume nodes stay authoritative.
type MixParams struct {
	Inputs int
}

func (p MixParams) filterText() string {
	return fmt.Sprintf("amix=inputs=%d:duration=longest:dropout_transition=0:normalize=0", p.Inputs)
}

// PadParams extends the audio stream with silence up to a whole
// duration in seconds.
type PadParams struct {
	WholeDuration float64
}

func (p PadParams) filterText() string {
	return fmt.Sprintf("apad=whole_dur=%s", formatFloat(p.WholeDuration))
}

// PassthroughParams forwards a stream unchanged. Kind selects the
// null filter matching the stream type.
type PassthroughParams struct {
	Kind StreamKind
}

func (p PassthroughParams) filterText() string {
	if p.Kind == StreamAudio {
		return "anull"
	}
	return "null"
}

// FilterNode is one operation in the graph: one or more input pins,
// exactly one output pin, and the operation's parameters.
type FilterNode struct {
	Op     Operation
	Inputs []Pin
	Output Pin
	Params OperationParams
}

// Statement serializes the node into one graph-language statement,
// e.g. "[v0][1:v]overlay=20:40:enable='gte(t,0)*lt(t,5)'[v1]".
func (n FilterNode) Statement() string {
	var b strings.Builder
	for _, in := range n.Inputs {
		b.WriteString(in.Token())
	}
	b.WriteString(n.Params.filterText())
	b.WriteString(n.Output.Token())
	return b.String()
}

// enableWindow renders the visibility predicate start <= t < end.
// between() is not used: it is end-inclusive, which would double-draw
// on the boundary frame of back-to-back elements.
func enableWindow(start, end float64) string {
	return fmt.Sprintf("gte(t,%s)*lt(t,%s)", formatFloat(start), formatFloat(end))
}

// formatFloat renders a float without trailing zeros ("1.5", "4").
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
