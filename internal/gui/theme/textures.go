package theme

import (
	"path/filepath"

	"github.com/appengine-ltd/misplaced/internal/assets"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Skin holds the loaded panel textures. Zero-value slots fall back to flat
// colours.
var Skin skinAssets

type skinAssets struct {
	Panel     NineSlice
	Crosshair rl.Texture2D

	loaded bool
}

const panelSlice = int32(10)

// InitSkin loads ui textures from the asset catalog. Call once after
// rl.InitWindow.
func InitSkin(catalog assets.Catalog) {
	if Skin.loaded {
		return
	}
	Skin.loaded = true
	Skin.Panel = NineSlice{Left: panelSlice, Right: panelSlice, Top: panelSlice, Bottom: panelSlice}
	Skin.Panel.Tex = LoadTexture(catalog, filepath.ToSlash(filepath.Join("ui", "panel_9slice.png")))
	Skin.Crosshair = LoadTexture(catalog, filepath.ToSlash(filepath.Join("ui", "crosshair.png")))
}

// UnloadSkin releases GPU texture memory. Call before rl.CloseWindow.
func UnloadSkin() {
	UnloadTexture(&Skin.Panel.Tex)
	UnloadTexture(&Skin.Crosshair)
	Skin.loaded = false
}

// LoadTexture loads ref or returns a zero texture when it is missing.
func LoadTexture(catalog assets.Catalog, ref string) rl.Texture2D {
	if !catalog.Exists(ref) {
		return rl.Texture2D{}
	}
	path, _ := catalog.Path(ref)
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		return rl.Texture2D{}
	}
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	return tex
}

func UnloadTexture(t *rl.Texture2D) {
	if t != nil && t.ID != 0 {
		rl.UnloadTexture(*t)
		*t = rl.Texture2D{}
	}
}
