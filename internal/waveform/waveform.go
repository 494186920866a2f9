// Package waveform generates the square signal trace drawn under the
// connector pins.
package waveform

import "image"

// Params describes one waveform span. Coordinates are in pixels.
type Params struct {
	Left      int
	Right     int
	Baseline  int
	Amplitude int
	Step      int
}

// Segment is one straight stroke of the trace.
type Segment struct {
	From, To image.Point
}

// Vertical reports whether s is a transition edge.
func (s Segment) Vertical() bool {
	return s.From.X == s.To.X && s.From.Y != s.To.Y
}

// Rising reports whether s moves toward the top of the canvas.
func (s Segment) Rising() bool {
	return s.To.Y < s.From.Y
}

// Generate walks from Left to Right along Baseline, alternating between
// Baseline-Amplitude and Baseline+Amplitude every Step pixels, starting high.
// The last flat segment is clamped to Right and no transition edge is emitted
// at Right itself. A Step below 1 is treated as 1.
func Generate(p Params) []Segment {
	step := p.Step
	if step < 1 {
		step = 1
	}
	if p.Right <= p.Left {
		return nil
	}

	n := (p.Right - p.Left + step - 1) / step
	segs := make([]Segment, 0, 2*n)

	cur := image.Pt(p.Left, p.Baseline)
	high := true
	for cur.X < p.Right {
		nextX := min(cur.X+step, p.Right)
		nextY := p.Baseline + p.Amplitude
		if high {
			nextY = p.Baseline - p.Amplitude
		}

		segs = append(segs, Segment{From: cur, To: image.Pt(nextX, cur.Y)})
		if nextX < p.Right {
			segs = append(segs, Segment{From: image.Pt(nextX, cur.Y), To: image.Pt(nextX, nextY)})
		}

		cur = image.Pt(nextX, nextY)
		high = !high
	}
	return segs
}
