package geometry

// DefaultReference is the size, in pixels, at which every proportion below
// is expressed in its natural units.
const DefaultReference = 256

// Pin is the center of one connector pin.
type Pin struct {
	X, Y float64
}

// Geometry holds every resolved length and position for one render pass.
// All fields are in pixels on a Size×Size canvas.
type Geometry struct {
	Size   int
	Center int

	CircleMargin int
	CircleStroke int

	BoxMargin int
	BoxRadius int
	BoxStroke int

	PinOuter   int
	PinInner   int
	PinSpacing int
	TopPins    []Pin
	BottomPins []Pin

	WaveBaseline  int
	WaveAmplitude int
	WaveStep      int
	WaveStroke    int
	WaveLeft      int
	WaveRight     int
}

// Scale returns the factor applied to reference units for size.
func Scale(size, reference int) float64 {
	if reference <= 0 {
		reference = DefaultReference
	}
	return float64(size) / float64(reference)
}

// Resolve computes the geometry for a size×size icon. size must be positive.
func Resolve(size, reference int) Geometry {
	s := Scale(size, reference)
	c := size / 2
	fc := float64(c)

	g := Geometry{
		Size:   size,
		Center: c,

		CircleMargin: scaled(20, s),
		CircleStroke: atLeast(1, scaled(6, s)),

		BoxMargin: scaled(50, s),
		BoxRadius: scaled(12, s),
		BoxStroke: atLeast(1, scaled(4, s)),

		PinOuter:   atLeast(2, scaled(8, s)),
		PinInner:   atLeast(1, scaled(4, s)),
		PinSpacing: scaled(25, s),

		WaveBaseline:  int(fc + 40*s),
		WaveAmplitude: atLeast(1, scaled(8, s)),
		WaveStep:      atLeast(2, scaled(4, s)),
		WaveStroke:    atLeast(1, scaled(3, s)),
		WaveLeft:      int(fc - 50*s),
		WaveRight:     int(fc + 50*s),
	}

	topY := float64(int(fc - 25*s))
	bottomY := float64(int(fc + 5*s))
	sp := float64(g.PinSpacing)

	g.TopPins = make([]Pin, 0, 5)
	for i := -2; i <= 2; i++ {
		g.TopPins = append(g.TopPins, Pin{X: fc + float64(i)*sp, Y: topY})
	}
	g.BottomPins = make([]Pin, 0, 4)
	for i := -2; i < 2; i++ {
		g.BottomPins = append(g.BottomPins, Pin{X: fc + (float64(i)+0.5)*sp, Y: bottomY})
	}

	return g
}

// Strokes returns the circle, box and wave stroke widths in paint order.
func (g Geometry) Strokes() []int {
	return []int{g.CircleStroke, g.BoxStroke, g.WaveStroke}
}

func scaled(units, s float64) int {
	return int(units * s)
}

func atLeast(floor, v int) int {
	if v < floor {
		return floor
	}
	return v
}
