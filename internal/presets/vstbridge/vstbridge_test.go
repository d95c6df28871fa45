package vstbridge

import (
	"testing"

	"hwui/internal/panel"
)

func TestPanelOverflowsCanvas(t *testing.T) {
	c := DefaultConfig()
	p := panel.New(panel.VSTBridge())
	p.Init(Build(c).Data)
	if p.Registry().Len() != len(Params(c)) {
		t.Fatalf("decoded %d of %d params", p.Registry().Len(), len(Params(c)))
	}
	_, h := p.Size()
	if p.Layout().ContentH <= h {
		t.Fatalf("content height %d should exceed the canvas", p.Layout().ContentH)
	}
	if !p.Tick() {
		t.Fatal("first tick must render")
	}
}

func TestEffectsToggle(t *testing.T) {
	full := len(Params(DefaultConfig()))
	lean := len(Params(FromMap(map[string]string{"fx": "off"})))
	if lean >= full {
		t.Fatalf("fx=off should drop the effects group: %d vs %d", lean, full)
	}
}
