package theme

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestSetTextRendererKeepsUnsetHooks(t *testing.T) {
	t.Cleanup(ResetTextRenderer)

	var drawn []string
	SetTextRenderer(TextRenderer{
		Draw: func(s string, x, y, fontSize int32, clr rl.Color) { drawn = append(drawn, s) },
		Measure: func(s string, fontSize int32) int32 {
			return int32(len(s)) * fontSize
		},
	})
	SetTextRenderer(TextRenderer{Measure: func(s string, fontSize int32) int32 { return 7 }})

	if got := measureText("memo", 10); got != 7 {
		t.Fatalf("measure got=%d want=7", got)
	}
	drawStamped("FILED", 0, 0, 20, rl.White)
	if len(drawn) != 2 || drawn[0] != "FILED" || drawn[1] != "FILED" {
		t.Fatalf("stamped draw calls got=%v want shadow then text", drawn)
	}
}
