package colour

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestClampInGamutUnchanged(t *testing.T) {
	c, _ := colorful.Hex("#b06050")
	p := FromColor(c)

	clamped := p.Clamp()
	if clamped != p {
		t.Errorf("Clamp() altered an in-gamut colour: %+v -> %+v", p, clamped)
	}
}

func TestClampReducesChromaOnly(t *testing.T) {
	// Chroma 0.4 is beyond the sRGB gamut at any lightness.
	p := OkLrCh{L: 0.5, C: 0.4, H: 30}
	if p.InGamut() {
		t.Fatal("expected test colour to be out of gamut")
	}

	clamped := p.Clamp()
	if !clamped.InGamut() {
		t.Errorf("Clamp() result still out of gamut: %+v", clamped)
	}
	if clamped.L != p.L {
		t.Errorf("Clamp() altered lightness: %f -> %f", p.L, clamped.L)
	}
	if clamped.H != p.H {
		t.Errorf("Clamp() altered hue: %f -> %f", p.H, clamped.H)
	}
	if clamped.C >= p.C {
		t.Errorf("Clamp() did not reduce chroma: %f -> %f", p.C, clamped.C)
	}
	if clamped.C < 0 {
		t.Errorf("Clamp() produced negative chroma: %f", clamped.C)
	}
}

func TestClampAtLightnessExtremes(t *testing.T) {
	tests := []struct {
		name string
		p    OkLrCh
	}{
		{name: "near white", p: OkLrCh{L: 0.99, C: 0.2, H: 200}},
		{name: "near black", p: OkLrCh{L: 0.01, C: 0.2, H: 200}},
		{name: "white", p: OkLrCh{L: 1.0, C: 0.2, H: 60}},
		{name: "black", p: OkLrCh{L: 0.0, C: 0.2, H: 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clamped := tt.p.Clamp()
			if clamped.L != tt.p.L || clamped.H != tt.p.H {
				t.Errorf("Clamp() altered lightness or hue: %+v -> %+v", tt.p, clamped)
			}
			// The returned colour must be displayable after conversion fuzz
			// is clamped off.
			col := clamped.Color().Clamped()
			if !col.IsValid() {
				t.Errorf("Clamp() result not displayable: %+v", clamped)
			}
		})
	}
}
