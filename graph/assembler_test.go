package graph

import (
	"errors"
	"strings"
	"testing"
)

func videoTestChain() *Chain {
	return &Chain{
		Nodes: []FilterNode{
			{
				Op:     OpScale,
				Inputs: []Pin{{Name: "0:v"}},
				Output: Pin{Name: "v0"},
				Params: ScaleParams{Width: 1280, Height: 720},
			},
		},
		Output: Pin{Name: "v0"},
	}
}

func audioTestChain() *Chain {
	return &Chain{
		Nodes: []FilterNode{
			{
				Op:     OpDelay,
				Inputs: []Pin{{Name: "1:a"}},
				Output: Pin{Name: "a1"},
				Params: DelayParams{Millis: 1500},
			},
		},
		Output: Pin{Name: "a1"},
	}
}

func TestAssemble_BothChains(t *testing.T) {
	g, err := Assemble(videoTestChain(), audioTestChain())
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	if len(g.Nodes) != 2 {
		t.Fatalf("Expected 2 nodes, got %d", len(g.Nodes))
	}
	// Video nodes come first; order is cosmetic but deterministic.
	if g.Nodes[0].Op != OpScale || g.Nodes[1].Op != OpDelay {
		t.Error("Expected video nodes before audio nodes")
	}
	if g.FinalVideoPin.Name != "v0" {
		t.Errorf("Expected final video pin v0, got %q", g.FinalVideoPin.Name)
	}
	if g.FinalAudioPin.Name != "a1" {
		t.Errorf("Expected final audio pin a1, got %q", g.FinalAudioPin.Name)
	}
}

func TestAssemble_VideoOnly(t *testing.T) {
	g, err := Assemble(videoTestChain(), nil)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if !g.FinalAudioPin.IsZero() {
		t.Error("Expected no final audio pin")
	}
	if g.Empty() {
		t.Error("Expected non-empty graph")
	}
}

func TestAssemble_BothNilYieldsEmptyGraph(t *testing.T) {
	g, err := Assemble(nil, nil)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if !g.Empty() {
		t.Error("Expected empty graph")
	}
	if !g.FinalVideoPin.IsZero() || !g.FinalAudioPin.IsZero() {
		t.Error("Expected both final pins unset")
	}
	if g.Serialize() != "" {
		t.Errorf("Expected empty serialization, got %q", g.Serialize())
	}
}

func TestAssemble_UndefinedInputPin(t *testing.T) {
	bad := &Chain{
		Nodes: []FilterNode{
			{
				Op:     OpVolume,
				Inputs: []Pin{{Name: "aMissing"}},
				Output: Pin{Name: "a0"},
				Params: VolumeParams{Multiplier: 0.5},
			},
		},
		Output: Pin{Name: "a0"},
	}

	_, err := Assemble(nil, bad)
	if err == nil {
		t.Fatal("Expected error for undefined input pin")
	}
	if !errors.Is(err, ErrUndefinedPin) {
		t.Errorf("Expected ErrUndefinedPin, got %v", err)
	}
	if !strings.Contains(err.Error(), "aMissing") {
		t.Errorf("Expected offending pin named in error, got %v", err)
	}
}

func TestAssemble_ForwardReferenceRejected(t *testing.T) {
	// The second node's output would satisfy the first node's input,
	// but definition must precede use.
	bad := &Chain{
		Nodes: []FilterNode{
			{
				Op:     OpVolume,
				Inputs: []Pin{{Name: "aLater"}},
				Output: Pin{Name: "a0"},
				Params: VolumeParams{Multiplier: 0.5},
			},
			{
				Op:     OpDelay,
				Inputs: []Pin{{Name: "1:a"}},
				Output: Pin{Name: "aLater"},
				Params: DelayParams{Millis: 100},
			},
		},
		Output: Pin{Name: "a0"},
	}

	_, err := Assemble(nil, bad)
	if !errors.Is(err, ErrUndefinedPin) {
		t.Errorf("Expected ErrUndefinedPin for forward reference, got %v", err)
	}
}

func TestAssemble_DuplicateLabel(t *testing.T) {
	bad := &Chain{
		Nodes: []FilterNode{
			{
				Op:     OpDelay,
				Inputs: []Pin{{Name: "1:a"}},
				Output: Pin{Name: "a0"},
				Params: DelayParams{Millis: 100},
			},
			{
				Op:     OpVolume,
				Inputs: []Pin{{Name: "a0"}},
				Output: Pin{Name: "a0"},
				Params: VolumeParams{Multiplier: 0.5},
			},
		},
		Output: Pin{Name: "a0"},
	}

	_, err := Assemble(nil, bad)
	if !errors.Is(err, ErrDuplicateLabel) {
		t.Errorf("Expected ErrDuplicateLabel, got %v", err)
	}
}

func TestAssemble_FinalPinMustBeProduced(t *testing.T) {
	bad := &Chain{
		Nodes: []FilterNode{
			{
				Op:     OpDelay,
				Inputs: []Pin{{Name: "1:a"}},
				Output: Pin{Name: "a0"},
				Params: DelayParams{Millis: 100},
			},
		},
		Output: Pin{Name: "aGhost"},
	}

	_, err := Assemble(nil, bad)
	if !errors.Is(err, ErrUndefinedPin) {
		t.Errorf("Expected ErrUndefinedPin for unproduced final pin, got %v", err)
	}
}

func TestCompiledGraph_Serialize(t *testing.T) {
	g, err := Assemble(videoTestChain(), audioTestChain())
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	got := g.Serialize()
	want := "[0:v]scale=1280:720[v0];[1:a]adelay=1500|1500[a1]"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
