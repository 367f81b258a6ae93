package theme

import "github.com/vukan322/streakcard/internal/chart"

// Default returns the designated fallback theme.
func Default() Theme {
	return Theme{
		Name:        DefaultName,
		Description: "Dark navy card with a blue-violet-green accent",
		Colors: Colors{
			BgStops:     [2]string{"#070B14", "#0B1220"},
			AccentStops: [3]string{"#60A5FA", "#A78BFA", "#34D399"},
			TextStrong:  "#E5E7EB",
			TextMuted:   "#9CA3AF",
			TextDim:     "#6B7280",
			PanelBg:     "#0A0F1A",
			PanelStroke: "#1F2937",
			Divider:     "#1F2937",
			CardStroke:  "#1F2937",
			ChartFill:   "#60A5FA",
			ListIcon:    "#22C55E",
			ListLabel:   "#22C55E",
			ListValue:   "#86EFAC",
			ShadowColor: "#000000",
		},
		Layout: Layout{
			CardW:      1080,
			CardH:      260,
			CardPad:    14,
			RadiusCard: 20,
			StrokeCard: 1,
			FontFamily: "ui-sans-serif, system-ui, -apple-system, Segoe UI, Roboto",

			ShadowDx:      0,
			ShadowDy:      8,
			ShadowBlur:    12,
			ShadowOpacity: 0.22,

			LeftDividerX:   430,
			RightDividerX:  750,
			DividerStyle:   DividerSolid,
			DividerDash:    "4 6",
			DividerTopY:    52,
			DividerBottomY: 52,
			StrokeDivider:  1,

			AccentShape:        AccentDiagonal,
			AccentShapeOpacity: 0.06,
			AccentShapeX1:      360,
			AccentShapeX2:      140,
			AccentShapeX3:      40,
			AccentShapeX4:      260,
			AccentShapeInset:   10,

			LeftColX:    48,
			LeftTopY:    58,
			RadiusPanel: 14,

			ChartW:                 340,
			ChartH:                 96,
			ChartPad:               12,
			ChartGrid:              true,
			GridLines:              4,
			GridOpacity:            0.55,
			ChartVariant:           chart.VariantArea,
			ChartStroke:            2.6,
			ChartBarGap:            2,
			ChartBarRadius:         1.5,
			ChartDotR:              2,
			ChartFillOpacityTop:    0.22,
			ChartFillOpacityBottom: 0,

			ChartLabelFontSize:    11,
			ChartLabelBottomPad:   10,
			ChartLabelLeftText:    "Last {window} days",
			ChartLabelRightPrefix: "max",
			ChartMaxLabelY:        18,

			MetricsY:             134,
			TotalFontSize:        30,
			TotalFontWeight:      800,
			TotalLabelX:          112,
			TotalLabelFontSize:   14,
			TotalLabelFontWeight: 600,
			TotalLabelText:       "Total contributions",

			LastActiveRowY:            30,
			LastActiveLabelFontSize:   12,
			LastActiveLabelText:       "Last active",
			LastActiveValueX:          74,
			LastActiveValueFontSize:   12,
			LastActiveValueFontWeight: 650,

			RingCenterY:         118,
			RingYOffset:         -10,
			RingR:               52,
			RingStroke:          10,
			RingValueDy:         16,
			RingValueFontSize:   40,
			RingValueFontWeight: 850,

			StreakTitleDy:         74,
			StreakTitleFontSize:   14,
			StreakTitleFontWeight: 500,
			StreakDescDy:          94,
			StreakDescFontSize:    12,
			StreakDescFontWeight:  400,

			ListXPad:        26,
			ListY:           58,
			ListRowH:        36,
			ListIconDy:      -16,
			ListIconBox:     22,
			ListIconStroke:  2,
			ListIconOpacity: 0.95,
			ListLabelX:      32,
			ListValueX:      196,
			ListFontSize:    15.5,
			ListLabelWeight: 650,
			ListValueWeight: 850,
		},
	}
}

func midnight() Theme {
	t := Default()
	t.Name = "midnight"
	t.Description = "Indigo night sky, dashed sparkline, wave accent"
	t.Colors.BgStops = [2]string{"#0F0C29", "#1E1B4B"}
	t.Colors.AccentStops = [3]string{"#818CF8", "#C084FC", "#F472B6"}
	t.Colors.PanelBg = "#161336"
	t.Colors.PanelStroke = "#312E81"
	t.Colors.Divider = "#312E81"
	t.Colors.CardStroke = "#312E81"
	t.Colors.ChartFill = "#818CF8"
	t.Colors.ListIcon = "#A5B4FC"
	t.Colors.ListLabel = "#C7D2FE"
	t.Colors.ListValue = "#F5F3FF"
	t.Layout.ChartVariant = chart.VariantSpark
	t.Layout.ChartLineDash = "6 3"
	t.Layout.ChartStroke = 2.2
	t.Layout.DividerStyle = DividerDashed
	t.Layout.AccentShape = AccentWave
	t.Layout.AccentShapeOpacity = 0.12
	t.Layout.AccentShapeX1 = 340
	t.Layout.AccentShapeX2 = 190
	t.Layout.AccentShapeX3 = 90
	return t
}

func sunset() Theme {
	t := Default()
	t.Name = "sunset"
	t.Description = "Warm dusk gradient with bar chart and blob accent"
	t.Colors.BgStops = [2]string{"#2A0A18", "#3B1020"}
	t.Colors.AccentStops = [3]string{"#F97316", "#F43F5E", "#FACC15"}
	t.Colors.TextStrong = "#FFF7ED"
	t.Colors.TextMuted = "#FDBA74"
	t.Colors.TextDim = "#C2410C"
	t.Colors.PanelBg = "#250812"
	t.Colors.PanelStroke = "#4C1D2B"
	t.Colors.Divider = "#4C1D2B"
	t.Colors.CardStroke = "#4C1D2B"
	t.Colors.ChartFill = "#FB923C"
	t.Colors.ListIcon = "#FB923C"
	t.Colors.ListLabel = "#FDBA74"
	t.Colors.ListValue = "#FFEDD5"
	t.Layout.ChartVariant = chart.VariantBars
	t.Layout.ChartBarGap = 3
	t.Layout.ChartBarRadius = 2
	t.Layout.AccentShape = AccentBlob
	t.Layout.AccentShapeOpacity = 0.1
	t.Layout.AccentShapeX1 = 260
	return t
}

func forest() Theme {
	t := Default()
	t.Name = "forest"
	t.Description = "Deep green with dotted activity and no accent"
	t.Colors.BgStops = [2]string{"#06140D", "#0B2016"}
	t.Colors.AccentStops = [3]string{"#4ADE80", "#22C55E", "#A3E635"}
	t.Colors.PanelBg = "#08190F"
	t.Colors.PanelStroke = "#14532D"
	t.Colors.Divider = "#14532D"
	t.Colors.CardStroke = "#14532D"
	t.Colors.ChartFill = "#4ADE80"
	t.Layout.ChartVariant = chart.VariantDots
	t.Layout.ChartDotR = 2.6
	t.Layout.GridLines = 3
	t.Layout.AccentShape = AccentNone
	return t
}

func mono() Theme {
	t := Default()
	t.Name = "mono"
	t.Description = "Grayscale, no grid, dividers or accent"
	t.Colors.BgStops = [2]string{"#111111", "#1A1A1A"}
	t.Colors.AccentStops = [3]string{"#D4D4D4", "#A3A3A3", "#737373"}
	t.Colors.TextStrong = "#FAFAFA"
	t.Colors.TextMuted = "#A3A3A3"
	t.Colors.TextDim = "#737373"
	t.Colors.PanelBg = "#0A0A0A"
	t.Colors.PanelStroke = "#262626"
	t.Colors.Divider = "#262626"
	t.Colors.CardStroke = "#262626"
	t.Colors.ChartFill = "#D4D4D4"
	t.Colors.ListIcon = "#D4D4D4"
	t.Colors.ListLabel = "#A3A3A3"
	t.Colors.ListValue = "#FAFAFA"
	t.Layout.ChartGrid = false
	t.Layout.DividerStyle = DividerNone
	t.Layout.AccentShape = AccentNone
	return t
}

func paper() Theme {
	t := Default()
	t.Name = "paper"
	t.Description = "Light card for light READMEs"
	t.Colors.BgStops = [2]string{"#FFFFFF", "#F3F4F6"}
	t.Colors.AccentStops = [3]string{"#2563EB", "#7C3AED", "#059669"}
	t.Colors.TextStrong = "#111827"
	t.Colors.TextMuted = "#4B5563"
	t.Colors.TextDim = "#6B7280"
	t.Colors.PanelBg = "#F9FAFB"
	t.Colors.PanelStroke = "#E5E7EB"
	t.Colors.Divider = "#E5E7EB"
	t.Colors.CardStroke = "#E5E7EB"
	t.Colors.ChartFill = "#2563EB"
	t.Colors.ListIcon = "#059669"
	t.Colors.ListLabel = "#047857"
	t.Colors.ListValue = "#065F46"
	t.Colors.ShadowColor = "#94A3B8"
	t.Layout.ShadowOpacity = 0.18
	t.Layout.AccentShapeOpacity = 0.05
	return t
}

// Builtin returns a fresh registry holding every bundled theme.
func Builtin() *Registry {
	r := NewRegistry(Default())
	for _, t := range []Theme{midnight(), sunset(), forest(), mono(), paper()} {
		r.put(t)
	}
	return r
}
