package gui

import (
	"math"

	"github.com/appengine-ltd/misplaced/internal/assets"
	"github.com/appengine-ltd/misplaced/internal/gui/theme"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type typographyState struct {
	base     rl.Font
	ownsBase bool
}

var uiType typographyState

// The dialogue script uses Standard Galactic Alphabet glyphs, so the font
// has to be loaded with those code points or they render as '?'.
var fontCandidates = []string{
	"fonts/NotoSansSymbols2-Regular.ttf",
	"fonts/NotoSans-Regular.ttf",
	"fonts/Inter-Regular.ttf",
}

func initTypography(catalog assets.Catalog) {
	uiType.base = rl.GetFontDefault()
	if f, ok := loadFontFromCatalog(catalog, fontCandidates, 40); ok {
		uiType.base = f
		uiType.ownsBase = true
	}
	rl.SetTextureFilter(uiType.base.Texture, rl.FilterBilinear)
	theme.SetTextRenderer(theme.TextRenderer{Draw: drawText, Measure: measureText})
}

func shutdownTypography() {
	theme.ResetTextRenderer()
	if uiType.ownsBase && uiType.base.Texture.ID != 0 {
		rl.UnloadFont(uiType.base)
	}
	uiType = typographyState{}
}

func loadFontFromCatalog(catalog assets.Catalog, refs []string, fontSize int32) (rl.Font, bool) {
	for _, ref := range refs {
		if !catalog.Exists(ref) {
			continue
		}
		path, _ := catalog.Path(ref)
		font := rl.LoadFontEx(path, fontSize, glyphSet(), 0)
		if font.Texture.ID == 0 {
			continue
		}
		return font, true
	}
	return rl.Font{}, false
}

// glyphSet is printable ASCII, Latin-1 and the code points the shipped
// script uses outside those ranges.
func glyphSet() []rune {
	var out []rune
	for r := rune(0x20); r < 0x7F; r++ {
		out = append(out, r)
	}
	for r := rune(0xA0); r <= 0xFF; r++ {
		out = append(out, r)
	}
	out = append(out, []rune("ℸ\u0323⍑ᒷ⎓╎ꖎᓭ∴∷リ⍊𝙹↸ᔑᓵꖌʖ⚍⋮ᒲ⊣")...)
	return out
}

func drawText(text string, x, y, fontSize int32, clr rl.Color) {
	if uiType.base.Texture.ID == 0 {
		rl.DrawText(text, x, y, fontSize, clr)
		return
	}
	rl.DrawTextEx(uiType.base, text, rl.Vector2{X: float32(x), Y: float32(y)}, float32(fontSize), 1, clr)
}

func measureText(text string, fontSize int32) int32 {
	if uiType.base.Texture.ID == 0 {
		return rl.MeasureText(text, fontSize)
	}
	return int32(math.Round(float64(rl.MeasureTextEx(uiType.base, text, float32(fontSize), 1).X)))
}

func textLineHeight(size int32) int32 {
	return int32(math.Round(float64(max(size, 1)) * float64(theme.Type.LineFactor)))
}

func drawTextCentered(text string, cx, y, fontSize int32, clr rl.Color) {
	drawText(text, cx-measureText(text, fontSize)/2, y, fontSize, clr)
}
