// Package theme holds the named color and layout records that drive card
// rendering, and resolves a theme key against a registry with a default fallback.
package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vukan322/streakcard/internal/chart"
)

// DefaultName is the key of the theme used for empty or unknown keys.
const DefaultName = "default"

var ErrInvalidTheme = errors.New("invalid theme")

type DividerStyle string

const (
	DividerNone   DividerStyle = "none"
	DividerSolid  DividerStyle = "solid"
	DividerDashed DividerStyle = "dashed"
)

type AccentShape string

const (
	AccentNone     AccentShape = "none"
	AccentWave     AccentShape = "wave"
	AccentBlob     AccentShape = "blob"
	AccentDiagonal AccentShape = "diagonal"
)

// Theme is a read-only configuration record. It holds only value types, so a
// copy returned by a Registry can be changed without affecting the registry.
type Theme struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Colors      Colors `yaml:"colors"`
	Layout      Layout `yaml:"layout"`
}

type Colors struct {
	BgStops     [2]string `yaml:"bg_stops"`
	AccentStops [3]string `yaml:"accent_stops"`

	TextStrong string `yaml:"text_strong"`
	TextMuted  string `yaml:"text_muted"`
	TextDim    string `yaml:"text_dim"`

	PanelBg     string `yaml:"panel_bg"`
	PanelStroke string `yaml:"panel_stroke"`
	Divider     string `yaml:"divider"`
	CardStroke  string `yaml:"card_stroke"`
	ChartFill   string `yaml:"chart_fill"`

	ListIcon  string `yaml:"list_icon"`
	ListLabel string `yaml:"list_label"`
	ListValue string `yaml:"list_value"`

	ShadowColor string `yaml:"shadow_color"`
}

// Layout carries every size, offset and typography value of the card.
// Font weights are CSS numeric weights.
type Layout struct {
	CardW      float64 `yaml:"card_w"`
	CardH      float64 `yaml:"card_h"`
	CardPad    float64 `yaml:"card_pad"`
	RadiusCard float64 `yaml:"radius_card"`
	StrokeCard float64 `yaml:"stroke_card"`
	FontFamily string  `yaml:"font_family"`

	ShadowDx      float64 `yaml:"shadow_dx"`
	ShadowDy      float64 `yaml:"shadow_dy"`
	ShadowBlur    float64 `yaml:"shadow_blur"`
	ShadowOpacity float64 `yaml:"shadow_opacity"`

	LeftDividerX   float64      `yaml:"left_divider_x"`
	RightDividerX  float64      `yaml:"right_divider_x"`
	DividerStyle   DividerStyle `yaml:"divider_style"`
	DividerDash    string       `yaml:"divider_dash"`
	DividerTopY    float64      `yaml:"divider_top_y"`
	DividerBottomY float64      `yaml:"divider_bottom_y"`
	StrokeDivider  float64      `yaml:"stroke_divider"`

	// AccentShapeX1..X4 are distances from the card's right edge. The wave uses
	// X1..X3 as control points, the blob uses X1 as its width and the diagonal
	// uses all four as its corners.
	AccentShape        AccentShape `yaml:"accent_shape"`
	AccentShapeOpacity float64     `yaml:"accent_shape_opacity"`
	AccentShapeX1      float64     `yaml:"accent_shape_x1"`
	AccentShapeX2      float64     `yaml:"accent_shape_x2"`
	AccentShapeX3      float64     `yaml:"accent_shape_x3"`
	AccentShapeX4      float64     `yaml:"accent_shape_x4"`
	AccentShapeInset   float64     `yaml:"accent_shape_inset"`

	LeftColX    float64 `yaml:"left_col_x"`
	LeftTopY    float64 `yaml:"left_top_y"`
	RadiusPanel float64 `yaml:"radius_panel"`

	ChartW                 float64       `yaml:"chart_w"`
	ChartH                 float64       `yaml:"chart_h"`
	ChartPad               float64       `yaml:"chart_pad"`
	ChartGrid              bool          `yaml:"chart_grid"`
	GridLines              int           `yaml:"grid_lines"`
	GridOpacity            float64       `yaml:"grid_opacity"`
	ChartVariant           chart.Variant `yaml:"chart_variant"`
	ChartStroke            float64       `yaml:"chart_stroke"`
	ChartLineDash          string        `yaml:"chart_line_dash"`
	ChartBarGap            float64       `yaml:"chart_bar_gap"`
	ChartBarRadius         float64       `yaml:"chart_bar_radius"`
	ChartDotR              float64       `yaml:"chart_dot_r"`
	ChartFillOpacityTop    float64       `yaml:"chart_fill_opacity_top"`
	ChartFillOpacityBottom float64       `yaml:"chart_fill_opacity_bottom"`

	ChartLabelFontSize    float64 `yaml:"chart_label_font_size"`
	ChartLabelBottomPad   float64 `yaml:"chart_label_bottom_pad"`
	ChartLabelLeftText    string  `yaml:"chart_label_left_text"`
	ChartLabelRightPrefix string  `yaml:"chart_label_right_prefix"`
	ChartMaxLabelY        float64 `yaml:"chart_max_label_y"`

	MetricsY             float64 `yaml:"metrics_y"`
	TotalFontSize        float64 `yaml:"total_font_size"`
	TotalFontWeight      int     `yaml:"total_font_weight"`
	TotalLabelX          float64 `yaml:"total_label_x"`
	TotalLabelFontSize   float64 `yaml:"total_label_font_size"`
	TotalLabelFontWeight int     `yaml:"total_label_font_weight"`
	TotalLabelText       string  `yaml:"total_label_text"`

	LastActiveRowY            float64 `yaml:"last_active_row_y"`
	LastActiveLabelFontSize   float64 `yaml:"last_active_label_font_size"`
	LastActiveLabelText       string  `yaml:"last_active_label_text"`
	LastActiveValueX          float64 `yaml:"last_active_value_x"`
	LastActiveValueFontSize   float64 `yaml:"last_active_value_font_size"`
	LastActiveValueFontWeight int     `yaml:"last_active_value_font_weight"`

	RingCenterY         float64 `yaml:"ring_center_y"`
	RingYOffset         float64 `yaml:"ring_y_offset"`
	RingR               float64 `yaml:"ring_r"`
	RingStroke          float64 `yaml:"ring_stroke"`
	RingValueDy         float64 `yaml:"ring_value_dy"`
	RingValueFontSize   float64 `yaml:"ring_value_font_size"`
	RingValueFontWeight int     `yaml:"ring_value_font_weight"`

	StreakTitleDy         float64 `yaml:"streak_title_dy"`
	StreakTitleFontSize   float64 `yaml:"streak_title_font_size"`
	StreakTitleFontWeight int     `yaml:"streak_title_font_weight"`
	StreakDescDy          float64 `yaml:"streak_desc_dy"`
	StreakDescFontSize    float64 `yaml:"streak_desc_font_size"`
	StreakDescFontWeight  int     `yaml:"streak_desc_font_weight"`

	ListXPad        float64 `yaml:"list_x_pad"`
	ListY           float64 `yaml:"list_y"`
	ListRowH        float64 `yaml:"list_row_h"`
	ListIconDy      float64 `yaml:"list_icon_dy"`
	ListIconBox     float64 `yaml:"list_icon_box"`
	ListIconStroke  float64 `yaml:"list_icon_stroke"`
	ListIconOpacity float64 `yaml:"list_icon_opacity"`
	ListLabelX      float64 `yaml:"list_label_x"`
	ListValueX      float64 `yaml:"list_value_x"`
	ListFontSize    float64 `yaml:"list_font_size"`
	ListLabelWeight int     `yaml:"list_label_weight"`
	ListValueWeight int     `yaml:"list_value_weight"`
}

// ChartPanel is the chart box the geometry builder draws into.
func (l Layout) ChartPanel() chart.Panel {
	return chart.Panel{Width: l.ChartW, Height: l.ChartH, Pad: l.ChartPad}
}

// Validate checks the invariants the composer relies on.
func Validate(t Theme) error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	l := t.Layout

	if strings.TrimSpace(t.Name) == "" {
		add("name is empty")
	}
	if l.CardW <= 0 || l.CardH <= 0 {
		add("card size %gx%g must be positive", l.CardW, l.CardH)
	}
	if l.CardPad < 0 || l.CardPad*2 >= min(l.CardW, l.CardH) {
		add("card_pad %g does not fit the card", l.CardPad)
	}
	if l.ChartW <= 0 || l.ChartH <= 0 {
		add("chart size %gx%g must be positive", l.ChartW, l.ChartH)
	}
	if l.ChartPad < 0 || l.ChartPad*2 >= min(l.ChartW, l.ChartH) {
		add("chart_pad %g does not fit the chart", l.ChartPad)
	}
	if l.GridLines < 0 {
		add("grid_lines %d is negative", l.GridLines)
	}
	if l.RingR <= 0 {
		add("ring_r %g must be positive", l.RingR)
	}
	if l.ListRowH < 0 {
		add("list_row_h %g is negative", l.ListRowH)
	}
	if _, ok := chart.ParseVariant(string(l.ChartVariant)); !ok {
		add("unknown chart_variant %q", l.ChartVariant)
	}
	if l.ChartVariant == chart.VariantDots && l.ChartDotR <= 0 {
		add("chart_dot_r %g must be positive for dots", l.ChartDotR)
	}
	switch l.DividerStyle {
	case DividerNone, DividerSolid:
	case DividerDashed:
		if strings.TrimSpace(l.DividerDash) == "" {
			add("divider_dash is empty for a dashed divider")
		}
	default:
		add("unknown divider_style %q", l.DividerStyle)
	}
	switch l.AccentShape {
	case AccentNone, AccentWave, AccentBlob, AccentDiagonal:
	default:
		add("unknown accent_shape %q", l.AccentShape)
	}
	for i, c := range t.Colors.BgStops {
		if c == "" {
			add("bg_stops[%d] is empty", i)
		}
	}
	for i, c := range t.Colors.AccentStops {
		if c == "" {
			add("accent_stops[%d] is empty", i)
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w %q: %s", ErrInvalidTheme, t.Name, strings.Join(problems, "; "))
	}
	return nil
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
