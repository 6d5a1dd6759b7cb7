package theme

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestNinePatchesCoverDest(t *testing.T) {
	ns := NineSlice{Tex: rl.Texture2D{Width: 30, Height: 30}, Left: 10, Right: 10, Top: 10, Bottom: 10}
	dest := rl.NewRectangle(5, 5, 100, 60)

	var area float32
	for _, p := range ninePatches(ns, dest) {
		area += p.dst.Width * p.dst.Height
	}
	if area != dest.Width*dest.Height {
		t.Fatalf("patch area: got %v want %v", area, dest.Width*dest.Height)
	}
	centre := ninePatches(ns, dest)[4]
	if centre.src != rl.NewRectangle(10, 10, 10, 10) || centre.dst != rl.NewRectangle(15, 15, 80, 40) {
		t.Fatalf("centre patch: %#v", centre)
	}
}

func TestNinePatchesShrinkBordersOnSmallDest(t *testing.T) {
	ns := NineSlice{Tex: rl.Texture2D{Width: 30, Height: 30}, Left: 10, Right: 10, Top: 10, Bottom: 10}
	patches := ninePatches(ns, rl.NewRectangle(0, 0, 12, 8))

	if patches[0].dst.Width != 6 || patches[0].dst.Height != 4 {
		t.Fatalf("corner: %#v", patches[0].dst)
	}
	if patches[4].dst.Width != 0 || patches[4].dst.Height != 0 {
		t.Fatalf("centre should collapse: %#v", patches[4].dst)
	}
}

func TestMixClamps(t *testing.T) {
	a := rl.NewColor(0, 0, 0, 255)
	b := rl.NewColor(200, 100, 50, 255)
	if got := mix(a, b, 2); got != b {
		t.Fatalf("mix above 1: got %v want %v", got, b)
	}
	if got := mix(a, b, 0.5); got.R != 100 || got.G != 50 || got.B != 25 {
		t.Fatalf("mix half: got %v", got)
	}
}
