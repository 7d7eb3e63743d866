package object

import (
	"testing"

	"github.com/vovakirdan/tui-palace/internal/core"
	"github.com/vovakirdan/tui-palace/internal/tile"
)

func TestCallbacksWithoutCapabilityAreNoOps(t *testing.T) {
	torch := NewTorch(0, 0)
	body := &core.Body{X: 1, Y: 2, Velocity: -3}
	before := *body

	Gain(torch, body)
	Lose(torch, body)
	Carry(torch, body)
	Boost(torch, body)

	if *body != before {
		t.Errorf("body changed to %+v, expected %+v", *body, before)
	}
	if torch.Caps() != (Caps{}) {
		t.Errorf("torch Caps() = %+v, expected none", torch.Caps())
	}
}

func TestRestHeightFallsBackToBounds(t *testing.T) {
	torch := NewTorch(0, 64)
	if got := RestHeight(torch); got != 96 {
		t.Errorf("RestHeight() = %v, expected 96", got)
	}
}

func TestTorchAnimates(t *testing.T) {
	torch := NewTorch(0, 0)
	torch.Update(0.5)
	if torch.Frame() != 2 {
		t.Errorf("Frame() = %d, expected 2", torch.Frame())
	}
}

func TestDefaultCodemapLayers(t *testing.T) {
	g := tile.MustGrid([][]int{{0, 0}, {0, 0}}, [][]int{{0, 0}, {0, 0}})
	p := DefaultParams()

	expected := map[int]Layer{
		CodeTorch:   Background,
		CodeRope:    Background,
		CodeSpring:  Background,
		CodeCrawler: Sprites,
		CodeBat:     Sprites,
		CodeSpider:  Sprites,
	}

	cm := DefaultCodemap()
	if len(cm) != len(expected) {
		t.Fatalf("DefaultCodemap() has %d factories, expected %d", len(cm), len(expected))
	}
	for code, want := range expected {
		obj, layer := cm[code](g, 0, 0, p)
		if obj == nil {
			t.Errorf("factory for code %d returned nil", code)
		}
		if layer != want {
			t.Errorf("code %d spawns into %v, expected %v", code, layer, want)
		}
	}
}
