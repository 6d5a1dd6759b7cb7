package theme

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	PaddingXS = float32(8)
	PaddingS  = float32(12)
	PaddingM  = float32(18)
	PaddingL  = float32(24)

	CornerRadius   = float32(0.06)
	CornerSegments = int32(8)

	BorderWidth      = float32(1.5)
	BorderWidthFocus = float32(2.5)
)

type PanelVariant int

const (
	PanelStandard PanelVariant = iota
	PanelLifted
	PanelDark
)

// DrawPanel draws the manila panel. With a skin loaded the nine-slice is
// drawn first and the rounded fill only tints it.
func DrawPanel(rect rl.Rectangle, variant PanelVariant) {
	fill := Panel
	stroke := Border
	strokeWidth := BorderWidth

	switch variant {
	case PanelLifted:
		fill = PanelRaised
		stroke = mix(Border, AccentStamp, 0.4)
		strokeWidth = BorderWidthFocus
	case PanelDark:
		fill = rl.Fade(BG, 0.82)
		stroke = rl.Fade(Border, 0.6)
	}

	if Skin.Panel.Tex.ID != 0 && variant != PanelDark {
		DrawNineSlice(Skin.Panel, rect, rl.White)
		fill = rl.Fade(fill, 0.25)
	}
	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, strokeWidth, stroke)
}

// DrawHeader draws a speaker or title line with a stamp-red underline.
func DrawHeader(text string, x, y int32) {
	if text == "" {
		return
	}
	drawStamped(text, x, y, Type.Header, TextPrimary)
	w := measureText(text, Type.Header)
	lineW := max(int32(float32(w)*0.6), 44)
	drawLine(float32(x), float32(y+Type.Header+6), float32(x+lineW), float32(y+Type.Header+6), 2.0, AccentStamp)
}

func DrawDivider(x1, y1, x2, y2 float32) {
	drawLine(x1, y1, x2, y2, 1.0, rl.Fade(Divider, 0.95))
}

func DrawHintText(text string, x, y int32, clr rl.Color) {
	if text == "" {
		return
	}
	drawText(text, x, y, Type.Small, clr)
}

func drawLine(x1, y1, x2, y2, thickness float32, clr rl.Color) {
	rl.DrawLineEx(rl.NewVector2(x1, y1), rl.NewVector2(x2, y2), thickness, clr)
}

func mix(a, b rl.Color, t float32) rl.Color {
	t = min(max(t, 0), 1)
	inv := 1.0 - t
	return rl.NewColor(
		uint8(float32(a.R)*inv+float32(b.R)*t),
		uint8(float32(a.G)*inv+float32(b.G)*t),
		uint8(float32(a.B)*inv+float32(b.B)*t),
		uint8(float32(a.A)*inv+float32(b.A)*t),
	)
}
