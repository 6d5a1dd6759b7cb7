package gui

import (
	"strings"

	"github.com/appengine-ltd/misplaced/internal/dialogue"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type dialoguePanel struct {
	Handle dialogue.Handle
	Rect   rl.Rectangle
	Ending bool
}

const (
	panelMargin   = float32(24)
	panelHeight   = float32(190)
	panelMaxWidth = float32(980)
	panelGap      = float32(10)
	endingWidth   = float32(720)
	endingHeight  = float32(300)
)

// stackPanels lays out dialogue displays, oldest first. Regular displays
// stack upward from the bottom edge with the newest at the bottom; endings
// are centred.
func stackPanels(width, height float32, handles []dialogue.Handle, endings []bool) []dialoguePanel {
	out := make([]dialoguePanel, 0, len(handles))
	w := min(width-panelMargin*2, panelMaxWidth)
	x := (width - w) / 2
	row := 0
	for i := len(handles) - 1; i >= 0; i-- {
		if endings[i] {
			ew := min(width-panelMargin*2, endingWidth)
			eh := min(height-panelMargin*2, endingHeight)
			out = append(out, dialoguePanel{
				Handle: handles[i],
				Rect:   rl.NewRectangle((width-ew)/2, (height-eh)/2, ew, eh),
				Ending: true,
			})
			continue
		}
		y := height - panelMargin - panelHeight - float32(row)*(panelHeight+panelGap)
		out = append(out, dialoguePanel{Handle: handles[i], Rect: rl.NewRectangle(x, y, w, panelHeight)})
		row++
	}
	// Reverse so drawing order is oldest first and the newest lands on top.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// panelAt finds the top-most panel containing point.
func panelAt(panels []dialoguePanel, point rl.Vector2) (dialogue.Handle, bool) {
	for i := len(panels) - 1; i >= 0; i-- {
		if rl.CheckCollisionPointRec(point, panels[i].Rect) {
			return panels[i].Handle, true
		}
	}
	return 0, false
}

func (ui *gameUI) layoutPanels() {
	sessions := ui.session.Dialogue().Sessions()
	handles := make([]dialogue.Handle, len(sessions))
	endings := make([]bool, len(sessions))
	for i, s := range sessions {
		handles[i] = s.Handle()
		endings[i] = !s.Dismissable()
	}
	ui.panels = stackPanels(float32(ui.width), float32(ui.height), handles, endings)
}

func (ui *gameUI) clickedPanel() (dialogue.Handle, bool) {
	if ui.captured || !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return 0, false
	}
	return panelAt(ui.panels, rl.GetMousePosition())
}

// wrapText breaks text into lines no wider than maxWidth. Explicit newlines
// start a new paragraph; words wider than maxWidth get a line of their own.
func wrapText(text string, maxWidth int32, measure func(string) int32) []string {
	lines := make([]string, 0, 8)
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if measure(candidate) <= maxWidth {
				current = candidate
				continue
			}
			lines = append(lines, current)
			current = word
		}
		lines = append(lines, current)
	}
	return lines
}
