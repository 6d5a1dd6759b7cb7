//go:build ignore

// gen_placeholders.go, run with:
//
//	go run scripts/gen_placeholders.go
//
// Writes placeholder art into assets/: the dialogue panel nine-slice, the
// crosshair and one portrait per speaker. Replace with real art at any
// time; the slice size lives in internal/gui/theme/textures.go.
package main

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
)

func main() {
	if err := os.MkdirAll(filepath.Join("assets", "ui"), 0o755); err != nil {
		log.Fatal(err)
	}

	// panel_9slice.png, 40x40, slice=10: folder-tab brown border, manila centre.
	genPanel("assets/ui/panel_9slice.png", 40, 40, 10,
		color.RGBA{0x8C, 0x84, 0x70, 0xFF},
		color.RGBA{0xEC, 0xE8, 0xDC, 0xFF},
	)

	genCrosshair("assets/ui/crosshair.png", 17, color.RGBA{0xF2, 0xF2, 0xEE, 0xE0})

	// Portraits are 256x256 flat cards with a head-and-shoulders silhouette.
	genPortrait("assets/director.png", color.RGBA{0x3A, 0x4A, 0x6A, 0xFF}, color.RGBA{0xE8, 0xB8, 0x8A, 0xFF})
	genPortrait("assets/archivist.png", color.RGBA{0x4A, 0x3A, 0x5A, 0xFF}, color.RGBA{0x9A, 0x9A, 0xA8, 0xFF})
	genPortrait("assets/ending.png", color.RGBA{0x10, 0x10, 0x12, 0xFF}, color.RGBA{0xB3, 0x2D, 0x2E, 0xFF})

	log.Println("Placeholder textures written to assets/")
}

func genPanel(path string, w, h, slice int, border, centre color.RGBA) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			if x < slice || y < slice || x >= w-slice || y >= h-slice {
				img.SetRGBA(x, y, border)
			} else {
				img.SetRGBA(x, y, centre)
			}
		}
	}
	write(path, img)
}

func genCrosshair(path string, size int, clr color.RGBA) {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	mid := size / 2
	for i := range size {
		if i >= mid-2 && i <= mid+2 {
			continue
		}
		img.SetRGBA(i, mid, clr)
		img.SetRGBA(mid, i, clr)
	}
	write(path, img)
}

func genPortrait(path string, bg, fg color.RGBA) {
	const size = 256
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cx, headY, headR := size/2, size*2/5, size/6
	for y := range size {
		for x := range size {
			dx, dy := x-cx, y-headY
			head := dx*dx+dy*dy <= headR*headR
			// Shoulders: a half ellipse resting on the bottom edge.
			sx, sy := float64(x-cx)/float64(size/3), float64(y-size)/float64(size/3)
			shoulders := sx*sx+sy*sy <= 1
			if head || shoulders {
				img.SetRGBA(x, y, fg)
			} else {
				img.SetRGBA(x, y, bg)
			}
		}
	}
	write(path, img)
}

func write(path string, img image.Image) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("encode %s: %v", path, err)
	}
	log.Printf("  wrote %s (%dx%d)", path, img.Bounds().Dx(), img.Bounds().Dy())
}
