package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// NineSlice is a 9-patch texture. Borders are in source pixels; corners are
// drawn as is, edges stretch along one axis and the centre stretches both.
type NineSlice struct {
	Tex    rl.Texture2D
	Left   int32
	Right  int32
	Top    int32
	Bottom int32
}

// DrawNineSlice renders ns into dest. Without a texture a flat rectangle is
// drawn instead.
func DrawNineSlice(ns NineSlice, dest rl.Rectangle, tint rl.Color) {
	if ns.Tex.ID == 0 {
		rl.DrawRectangleRec(dest, rl.Fade(tint, 0.35))
		return
	}
	for _, p := range ninePatches(ns, dest) {
		if p.dst.Width <= 0 || p.dst.Height <= 0 {
			continue
		}
		rl.DrawTexturePro(ns.Tex, p.src, p.dst, rl.Vector2{}, 0, tint)
	}
}

type patch struct {
	src rl.Rectangle
	dst rl.Rectangle
}

// ninePatches splits the texture and dest into matching cells, row by row.
// Borders shrink to half the dest size when dest is too small for them.
func ninePatches(ns NineSlice, dest rl.Rectangle) [9]patch {
	sw, sh := float32(ns.Tex.Width), float32(ns.Tex.Height)
	l, r := float32(ns.Left), float32(ns.Right)
	t, b := float32(ns.Top), float32(ns.Bottom)

	dl, dr, dt, db := l, r, t, b
	if dl+dr > dest.Width {
		dl, dr = dest.Width/2, dest.Width/2
	}
	if dt+db > dest.Height {
		dt, db = dest.Height/2, dest.Height/2
	}

	srcX := [3]float32{0, l, sw - r}
	srcW := [3]float32{l, sw - l - r, r}
	srcY := [3]float32{0, t, sh - b}
	srcH := [3]float32{t, sh - t - b, b}
	dstX := [3]float32{dest.X, dest.X + dl, dest.X + dest.Width - dr}
	dstW := [3]float32{dl, dest.Width - dl - dr, dr}
	dstY := [3]float32{dest.Y, dest.Y + dt, dest.Y + dest.Height - db}
	dstH := [3]float32{dt, dest.Height - dt - db, db}

	var out [9]patch
	for row := range 3 {
		for col := range 3 {
			out[row*3+col] = patch{
				src: rl.NewRectangle(srcX[col], srcY[row], srcW[col], srcH[row]),
				dst: rl.NewRectangle(dstX[col], dstY[row], dstW[col], dstH[row]),
			}
		}
	}
	return out
}
