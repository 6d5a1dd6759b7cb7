package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// TextRenderer is the font hook every component draws through. The client
// installs its catalog font after the window opens.
type TextRenderer struct {
	Draw    func(text string, x, y, fontSize int32, clr rl.Color)
	Measure func(text string, fontSize int32) int32
}

var hooks = builtinText()

func builtinText() TextRenderer {
	return TextRenderer{
		Draw: func(s string, x, y, fontSize int32, clr rl.Color) {
			rl.DrawText(s, x, y, fontSize, clr)
		},
		Measure: func(s string, fontSize int32) int32 {
			return int32(rl.MeasureText(s, fontSize))
		},
	}
}

// SetTextRenderer replaces the non-nil hooks of r.
func SetTextRenderer(r TextRenderer) {
	if r.Draw != nil {
		hooks.Draw = r.Draw
	}
	if r.Measure != nil {
		hooks.Measure = r.Measure
	}
}

// ResetTextRenderer goes back to raylib's default font. Call it before the
// installed font is unloaded.
func ResetTextRenderer() {
	hooks = builtinText()
}

func drawText(s string, x, y, fontSize int32, clr rl.Color) {
	hooks.Draw(s, x, y, fontSize, clr)
}

// drawStamped offsets a darker copy under the text, like ink pressed into
// paper.
func drawStamped(s string, x, y, fontSize int32, clr rl.Color) {
	drawText(s, x+1, y+1, fontSize, rl.Fade(rl.Black, float32(clr.A)/255*0.45))
	drawText(s, x, y, fontSize, clr)
}

func measureText(s string, fontSize int32) int32 {
	return hooks.Measure(s, fontSize)
}
