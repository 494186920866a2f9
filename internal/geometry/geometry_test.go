package geometry

import (
	"math"
	"testing"
)

var supportedSizes = []int{16, 32, 48, 64, 128, 256}

func TestResolveReferenceSize(t *testing.T) {
	g := Resolve(256, DefaultReference)

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"center", g.Center, 128},
		{"circle margin", g.CircleMargin, 20},
		{"circle stroke", g.CircleStroke, 6},
		{"box margin", g.BoxMargin, 50},
		{"box radius", g.BoxRadius, 12},
		{"box stroke", g.BoxStroke, 4},
		{"pin outer", g.PinOuter, 8},
		{"pin inner", g.PinInner, 4},
		{"pin spacing", g.PinSpacing, 25},
		{"wave baseline", g.WaveBaseline, 168},
		{"wave amplitude", g.WaveAmplitude, 8},
		{"wave step", g.WaveStep, 4},
		{"wave stroke", g.WaveStroke, 3},
		{"wave left", g.WaveLeft, 78},
		{"wave right", g.WaveRight, 178},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.want, tt.got)
		}
	}

	if g.TopPins[0].Y != 103 {
		t.Errorf("Expected top row at y=103, got %v", g.TopPins[0].Y)
	}
	if g.BottomPins[0].Y != 133 {
		t.Errorf("Expected bottom row at y=133, got %v", g.BottomPins[0].Y)
	}
}

func TestResolveSmallestSizeUsesFloors(t *testing.T) {
	g := Resolve(16, DefaultReference)

	for i, w := range g.Strokes() {
		if w != 1 {
			t.Errorf("stroke %d: expected 1, got %d", i, w)
		}
	}
	if g.PinOuter != 2 {
		t.Errorf("Expected pin outer radius 2, got %d", g.PinOuter)
	}
	if g.PinInner != 1 {
		t.Errorf("Expected pin inner radius 1, got %d", g.PinInner)
	}
	if g.WaveStep != 2 {
		t.Errorf("Expected wave step 2, got %d", g.WaveStep)
	}
	if g.WaveAmplitude != 1 {
		t.Errorf("Expected wave amplitude 1, got %d", g.WaveAmplitude)
	}
}

func TestResolveNonDegenerate(t *testing.T) {
	for n := 1; n <= 512; n++ {
		g := Resolve(n, DefaultReference)
		for i, w := range g.Strokes() {
			if w < 1 {
				t.Fatalf("size %d: stroke %d is %d", n, i, w)
			}
		}
		if g.PinInner < 1 || g.PinOuter < 1 {
			t.Fatalf("size %d: pin radii %d/%d", n, g.PinInner, g.PinOuter)
		}
		if g.PinInner >= g.PinOuter {
			t.Fatalf("size %d: inner radius %d not below outer %d", n, g.PinInner, g.PinOuter)
		}
		if g.WaveStep < 1 {
			t.Fatalf("size %d: wave step %d", n, g.WaveStep)
		}
	}
}

func TestPinLayout(t *testing.T) {
	for _, n := range supportedSizes {
		g := Resolve(n, DefaultReference)
		c := float64(g.Center)

		if len(g.TopPins) != 5 {
			t.Fatalf("size %d: expected 5 top pins, got %d", n, len(g.TopPins))
		}
		if len(g.BottomPins) != 4 {
			t.Fatalf("size %d: expected 4 bottom pins, got %d", n, len(g.BottomPins))
		}

		seen := map[float64]bool{}
		for i, p := range g.TopPins {
			if seen[p.X] {
				t.Errorf("size %d: duplicate top pin x %v", n, p.X)
			}
			seen[p.X] = true

			mirror := g.TopPins[len(g.TopPins)-1-i]
			if c-p.X != mirror.X-c {
				t.Errorf("size %d: top pins %d and %d not symmetric about %v", n, i, len(g.TopPins)-1-i, c)
			}
		}

		half := float64(g.PinSpacing) / 2
		for i, p := range g.BottomPins {
			if got := p.X - g.TopPins[i].X; math.Abs(got-half) > 1e-9 {
				t.Errorf("size %d: bottom pin %d offset %v, expected %v", n, i, got, half)
			}
		}
	}
}

func TestScaleFallsBackToDefaultReference(t *testing.T) {
	if got := Scale(128, 0); got != 0.5 {
		t.Errorf("Expected 0.5, got %v", got)
	}
	if got := Scale(64, 128); got != 0.5 {
		t.Errorf("Expected 0.5, got %v", got)
	}
}
