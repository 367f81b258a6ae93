package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/template"

	"github.com/vukan322/streakcard/internal/chart"
	"github.com/vukan322/streakcard/internal/core"
	"github.com/vukan322/streakcard/internal/format"
	"github.com/vukan322/streakcard/internal/theme"
)

//go:embed templates/card.svg.tmpl
var cardTemplate string

var cardTmpl = template.Must(
	template.New("card").
		Funcs(template.FuncMap{
			"num":   format.Num,
			"fixed": format.Fixed2,
			"subf":  func(a, b float64) float64 { return a - b },
		}).
		Parse(cardTemplate),
)

// Input is everything the card shows. Series is the windowed count series,
// oldest first.
type Input struct {
	Metrics  core.Metrics
	Series   []int
	Theme    theme.Theme
	Counters core.Counters
}

type divider struct {
	X, Y1, Y2 float64
	Dash      string
}

type chartView struct {
	Variant   chart.Variant
	Line      string
	Area      string
	LineDash  string
	Bars      []chart.Rect
	Dots      []chart.Circle
	Grid      []float64
	LeftLabel string
	MaxLabel  string
}

type ringView struct {
	CX, CY float64
	Dash   string
	Value  string
	Title  string
	Desc   string
	ValueY float64
	TitleY float64
	DescY  float64
}

type cardViewModel struct {
	L theme.Layout
	C theme.Colors

	InnerW float64
	InnerH float64
	Accent string

	Dividers []divider

	Chart chartView

	Total      string
	LastActive string

	Ring ringView

	ListX float64
	Rows  []listRow
}

// Compose renders in as a self-contained SVG document. Output depends only on
// in, so identical input yields identical bytes.
func Compose(in Input) ([]byte, error) {
	t := in.Theme
	l := t.Layout

	vm := cardViewModel{
		L:          l,
		C:          t.Colors,
		InnerW:     l.CardW - l.CardPad*2,
		InnerH:     l.CardH - l.CardPad*2,
		Accent:     accentPath(l),
		Dividers:   dividers(l),
		Chart:      buildChart(in.Series, l),
		Total:      format.Grouped(in.Metrics.Total),
		LastActive: format.Date(in.Metrics.LastActive),
		Ring:       buildRing(in.Metrics, l),
		ListX:      l.RightDividerX + l.ListXPad,
		Rows:       listRows(in.Counters, l),
	}

	var buf bytes.Buffer
	if err := cardTmpl.Execute(&buf, vm); err != nil {
		return nil, fmt.Errorf("render svg: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderSVG derives metrics and the chart window from stats and composes the card.
func RenderSVG(stats core.DevStats, th theme.Theme, window int) ([]byte, error) {
	return Compose(Input{
		Metrics:  core.ComputeMetrics(stats.Days),
		Series:   core.Window(stats.Days, window),
		Theme:    th,
		Counters: stats.Counters,
	})
}

func dividers(l theme.Layout) []divider {
	if l.DividerStyle == theme.DividerNone {
		return nil
	}

	dash := "none"
	if l.DividerStyle == theme.DividerDashed {
		dash = l.DividerDash
	}

	y2 := l.CardH - l.DividerBottomY
	return []divider{
		{X: l.LeftDividerX, Y1: l.DividerTopY, Y2: y2, Dash: dash},
		{X: l.RightDividerX, Y1: l.DividerTopY, Y2: y2, Dash: dash},
	}
}

func buildChart(series []int, l theme.Layout) chartView {
	values := make([]float64, len(series))
	for i, v := range series {
		values[i] = float64(v)
	}

	panel := l.ChartPanel()
	g := chart.Build(values, panel)

	variant, _ := chart.ParseVariant(string(l.ChartVariant))

	cv := chartView{
		Variant:   variant,
		Line:      g.Line,
		Area:      g.Area,
		LeftLabel: strings.ReplaceAll(l.ChartLabelLeftText, "{window}", strconv.Itoa(len(series))),
		MaxLabel:  strings.TrimSpace(l.ChartLabelRightPrefix + " " + format.Grouped(int(g.Max))),
	}

	if l.ChartGrid {
		cv.Grid = chart.Grid(panel, l.GridLines)
	}

	switch variant {
	case chart.VariantBars:
		cv.Bars = chart.Bars(values, panel, l.ChartBarGap)
	case chart.VariantDots:
		cv.Dots = chart.Dots(values, panel, l.ChartDotR)
	case chart.VariantSpark:
		cv.LineDash = l.ChartLineDash
		if cv.LineDash == "" {
			cv.LineDash = "none"
		}
	}

	return cv
}

// StreakRatio is current / max(1, longest, current), clamped to [0, 1].
func StreakRatio(m core.Metrics) float64 {
	denom := max(1, m.LongestStreak, m.CurrentStreak)
	return math.Min(1, math.Max(0, float64(m.CurrentStreak)/float64(denom)))
}

func buildRing(m core.Metrics, l theme.Layout) ringView {
	cx := (l.LeftDividerX + l.RightDividerX) / 2
	cy := l.RingCenterY + l.RingYOffset
	circ := 2 * math.Pi * l.RingR
	current := format.Grouped(m.CurrentStreak)

	return ringView{
		CX:     cx,
		CY:     cy,
		Dash:   format.Fixed2(StreakRatio(m)*circ) + " " + format.Fixed2(circ),
		Value:  current,
		Title:  current + "-day commit streak",
		Desc:   "Coding consistently for " + current + " days in a row.",
		ValueY: cy + l.RingValueDy,
		TitleY: cy + l.StreakTitleDy,
		DescY:  cy + l.StreakDescDy,
	}
}
