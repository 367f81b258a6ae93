// Package chart maps a numeric series onto panel coordinates for the card's
// activity chart. Y grows downward; a zero value sits on the bottom inner edge.
package chart

import (
	"strings"

	"github.com/vukan322/streakcard/internal/format"
)

type Variant string

const (
	VariantArea  Variant = "area"
	VariantSpark Variant = "spark"
	VariantBars  Variant = "bars"
	VariantDots  Variant = "dots"
)

var variants = []Variant{VariantArea, VariantSpark, VariantBars, VariantDots}

// Variants lists every supported chart variant.
func Variants() []Variant {
	return append([]Variant(nil), variants...)
}

// ParseVariant reports whether s names a supported variant.
func ParseVariant(s string) (Variant, bool) {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range variants {
		if v == known {
			return v, true
		}
	}
	return VariantArea, false
}

// Panel is the chart's drawing box in its own coordinate space, origin top-left.
type Panel struct {
	Width  float64
	Height float64
	Pad    float64
}

func (p Panel) innerWidth() float64  { return nonNegative(p.Width - p.Pad*2) }
func (p Panel) innerHeight() float64 { return nonNegative(p.Height - p.Pad*2) }

// Baseline is the y of the bottom inner edge.
func (p Panel) Baseline() float64 {
	return p.Pad + p.innerHeight()
}

type Point struct {
	X, Y float64
}

type Rect struct {
	X, Y, Width, Height float64
}

type Circle struct {
	X, Y, R float64
}

type Geometry struct {
	// Max is the normalization scale, never below 1.
	Max    float64
	Points []Point
	Line   string
	Area   string
}

// Scale returns max(1, max(values)).
func Scale(values []float64) float64 {
	m := 1.0
	for _, v := range values {
		if v > m {
			m = v
		}
	}
	return m
}

// Build spreads values evenly across the inner width and scales their heights
// against Scale(values). Line is an SVG path through the points; Area closes it
// along the baseline. A single value sits at the left inner edge.
func Build(values []float64, p Panel) Geometry {
	g := Geometry{Max: Scale(values)}
	if len(values) == 0 {
		return g
	}

	g.Points = points(values, p, g.Max)

	var line strings.Builder
	for i, pt := range g.Points {
		if i > 0 {
			line.WriteByte(' ')
			line.WriteString("L ")
		} else {
			line.WriteString("M ")
		}
		line.WriteString(format.Fixed2(pt.X))
		line.WriteByte(' ')
		line.WriteString(format.Fixed2(pt.Y))
	}
	g.Line = line.String()

	base := format.Fixed2(p.Baseline())
	first, last := g.Points[0], g.Points[len(g.Points)-1]
	g.Area = g.Line +
		" L " + format.Fixed2(last.X) + " " + base +
		" L " + format.Fixed2(first.X) + " " + base + " Z"

	return g
}

func points(values []float64, p Panel, scale float64) []Point {
	iw, ih := p.innerWidth(), p.innerHeight()
	denom := float64(len(values) - 1)
	if denom < 1 {
		denom = 1
	}

	pts := make([]Point, len(values))
	for i, v := range values {
		pts[i] = Point{
			X: p.Pad + iw*float64(i)/denom,
			Y: p.Pad + ih - ih*clamp01(v/scale),
		}
	}
	return pts
}

// Bars returns one bar per value, separated by gap and anchored to the baseline.
func Bars(values []float64, p Panel, gap float64) []Rect {
	n := len(values)
	if n == 0 {
		return nil
	}

	gap = nonNegative(gap)
	iw, ih := p.innerWidth(), p.innerHeight()
	bw := (iw - gap*float64(n-1)) / float64(n)
	if bw < 0 {
		bw, gap = 0, iw/float64(max(1, n-1))
	}

	scale := Scale(values)
	rects := make([]Rect, n)
	for i, v := range values {
		h := ih * clamp01(v/scale)
		rects[i] = Rect{
			X:      p.Pad + float64(i)*(bw+gap),
			Y:      p.Baseline() - h,
			Width:  bw,
			Height: h,
		}
	}
	return rects
}

// Dots places one marker of radius r at each point Build would produce.
func Dots(values []float64, p Panel, r float64) []Circle {
	if len(values) == 0 {
		return nil
	}

	pts := points(values, p, Scale(values))
	circles := make([]Circle, len(pts))
	for i, pt := range pts {
		circles[i] = Circle{X: pt.X, Y: pt.Y, R: r}
	}
	return circles
}

// Grid returns the y of lines+1 evenly spaced horizontal guides covering the
// inner height, top to bottom.
func Grid(p Panel, lines int) []float64 {
	if lines < 0 {
		return nil
	}

	ih := p.innerHeight()
	denom := float64(max(1, lines))
	ys := make([]float64, lines+1)
	for i := range ys {
		ys[i] = p.Pad + ih*float64(i)/denom
	}
	return ys
}

func clamp01(v float64) float64 {
	if v < 0 || v != v {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
