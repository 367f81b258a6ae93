package render

import (
	"github.com/vukan322/streakcard/internal/format"
	"github.com/vukan322/streakcard/internal/theme"
)

// accentPath returns the decorative shape behind the right side of the card,
// or "" when the theme has none.
func accentPath(l theme.Layout) string {
	w, h, pad := l.CardW, l.CardH, l.CardPad
	f := format.Fixed2

	switch l.AccentShape {
	case theme.AccentWave:
		x0, x1, x2 := w-l.AccentShapeX1, w-l.AccentShapeX2, w-l.AccentShapeX3
		y0, y1, y2 := pad, h*0.55, h-pad
		return "M " + f(x0) + " " + f(y0) +
			" C " + f(x1) + " " + f(y1) + ", " + f(x2) + " " + f(y1) + ", " + f(w) + " " + f(y2) +
			" L " + f(w) + " " + f(y0) + " Z"

	case theme.AccentBlob:
		bw := l.AccentShapeX1
		x := w - bw
		y := pad + l.AccentShapeInset
		bh := h - pad*2 - l.AccentShapeInset*2
		pt := func(fx, fy float64) string {
			return f(x+bw*fx) + " " + f(y+bh*fy)
		}
		return "M " + pt(0.15, 0.1) +
			" C " + pt(0.55, -0.05) + ", " + pt(1.05, 0.2) + ", " + pt(0.85, 0.55) +
			" C " + pt(0.7, 0.9) + ", " + pt(0.25, 1.05) + ", " + pt(0.1, 0.7) +
			" C " + pt(-0.05, 0.4) + ", " + pt(0, 0.2) + ", " + pt(0.15, 0.1) +
			" Z"

	case theme.AccentDiagonal:
		return "M " + f(w-l.AccentShapeX1) + " " + f(pad) +
			" L " + f(w-l.AccentShapeX2) + " " + f(pad) +
			" L " + f(w-l.AccentShapeX3) + " " + f(h-pad) +
			" L " + f(w-l.AccentShapeX4) + " " + f(h-pad) + " Z"
	}

	return ""
}
