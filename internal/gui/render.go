package gui

import (
	"fmt"
	"strings"
	"time"

	"github.com/appengine-ltd/misplaced/internal/dialogue"
	"github.com/appengine-ltd/misplaced/internal/game"
	"github.com/appengine-ltd/misplaced/internal/gui/theme"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func (ui *gameUI) draw() {
	rl.BeginMode3D(ui.camera)
	ui.drawWorld()
	rl.EndMode3D()

	ui.drawHUD()
	if ui.showDebug {
		ui.drawDebug()
	}
	ui.drawEndingFade()
	ui.drawDialogues()
}

func (ui *gameUI) drawWorld() {
	level := ui.session.Level()
	size := level.FloorHalfExtent * 2
	rl.DrawCube(rl.NewVector3(0, -0.05, 0), size, 0.1, size, theme.Carpet)
	rl.DrawCubeWires(rl.NewVector3(0, -0.05, 0), size, 0.1, size, theme.CarpetRim)
	rl.DrawGrid(int32(size), 1)

	for _, item := range ui.session.Progress().Remaining() {
		p := toRL(item.Position)
		// Anything not lying on the floor sits on a desk or shelf.
		if deskTop := item.Position.Y - collectibleSize/2; deskTop > 0.05 {
			rl.DrawCube(rl.NewVector3(p.X, deskTop/2, p.Z), 1.4, deskTop, 0.8, theme.Desk)
		}
		rl.DrawCube(p, collectibleSize, collectibleSize*0.3, collectibleSize, theme.FileBox)
		clr := theme.Border
		if item.ID == ui.hover {
			clr = theme.Highlight
		}
		rl.DrawCubeWires(p, collectibleSize, collectibleSize*0.3, collectibleSize, clr)
	}
}

func (ui *gameUI) drawHUD() {
	state := ui.session.Progress().State()
	rect := rl.NewRectangle(16, 16, 250, 78)
	theme.DrawPanel(rect, theme.PanelDark)

	timeClr := theme.TextLight
	if state.Terminal == game.OutcomeNone && state.Remaining() < 30*time.Second {
		timeClr = theme.Warning
	}
	drawText("Time left "+game.FormatClock(state.Remaining()), int32(rect.X+theme.PaddingS), int32(rect.Y+10), theme.Type.Body, timeClr)
	drawText(fmt.Sprintf("Files %d/%d", state.Collected, state.Required), int32(rect.X+theme.PaddingS), int32(rect.Y+42), theme.Type.Body, theme.TextLight)

	if ui.captured {
		ui.drawCrosshair()
	}
	help := "WASD move  Shift run  Space jump  Click/E pick up  R respawn  Esc free cursor  ` debug"
	if !ui.session.Control().Enabled() {
		help = "Click the panel to continue"
	} else if !ui.captured {
		help = "Click to look around"
	}
	theme.DrawHintText(help, 16, ui.height-int32(theme.Type.Small)-12, theme.TextLight)

	if ui.hover != "" && ui.session.Control().Enabled() {
		name := string(ui.hover)
		for _, item := range ui.session.Progress().Remaining() {
			if item.ID == ui.hover && item.Name != "" {
				name = item.Name
			}
		}
		drawTextCentered(name, ui.width/2, ui.height/2+24, theme.Type.Small, theme.Highlight)
	}
}

func (ui *gameUI) drawCrosshair() {
	cx, cy := ui.width/2, ui.height/2
	if tex := theme.Skin.Crosshair; tex.ID != 0 {
		rl.DrawTexture(tex, cx-tex.Width/2, cy-tex.Height/2, rl.White)
		return
	}
	clr := theme.TextLight
	if ui.hover != "" {
		clr = theme.Highlight
	}
	rl.DrawLine(cx-8, cy, cx+8, cy, clr)
	rl.DrawLine(cx, cy-8, cx, cy+8, clr)
}

func (ui *gameUI) drawDebug() {
	b := ui.player
	rec := b.Recovery()
	ground := "airborne"
	if b.Ground != nil {
		ground = fmt.Sprintf("normal %.3f,%.3f,%.3f", b.Ground.Normal.X, b.Ground.Normal.Y, b.Ground.Normal.Z)
	}
	stable := "none"
	if ui.hasStable {
		stable = fmt.Sprintf("%.2f, %.2f, %.2f", ui.lastStable.X, ui.lastStable.Y, ui.lastStable.Z)
	}
	lines := []string{
		fmt.Sprintf("fps %d  frame %d", rl.GetFPS(), ui.session.Frame()),
		fmt.Sprintf("position %.2f, %.2f, %.2f", b.Position.X, b.Position.Y, b.Position.Z),
		fmt.Sprintf("velocity %.2f, %.2f, %.2f", b.Velocity.X, b.Velocity.Y, b.Velocity.Z),
		fmt.Sprintf("speed fraction %.3f", game.SpeedFraction(b.Velocity.Y, b.MaxSpeed)),
		"ground " + ground,
		fmt.Sprintf("fall %s %.1fs", rec.State(), rec.FallTimer().Seconds()),
		fmt.Sprintf("history %d/%d  last stable %s", rec.History().Len(), rec.History().Cap(), stable),
		"control holds " + strings.Join(ui.session.Control().Holders(), ","),
	}
	size := theme.Type.Small
	h := float32(len(lines))*float32(textLineHeight(size)) + theme.PaddingS*2
	rect := rl.NewRectangle(float32(ui.width)-440, 16, 424, h)
	theme.DrawPanel(rect, theme.PanelDark)
	lh := float32(textLineHeight(size))
	for i, line := range lines {
		drawText(line, int32(rect.X+theme.PaddingS), int32(rect.Y+theme.PaddingS)+int32(i)*textLineHeight(size), size, theme.TextLight)
	}
	divY := rect.Y + theme.PaddingS + lh - 2
	theme.DrawDivider(rect.X+theme.PaddingS, divY, rect.X+rect.Width-theme.PaddingS, divY)
}

func (ui *gameUI) drawEndingFade() {
	ending, ok := ui.session.Ending()
	if !ok {
		return
	}
	t := easeOutCubic(float32(ui.endingAge) / float32(endingFadeTime))
	rl.DrawRectangle(0, 0, ui.width, ui.height, rl.Fade(rl.Black, 0.85*t))

	title := "FILED"
	clr := theme.AccentFolder
	if ending.Outcome == game.OutcomeLose {
		title = "OVERDUE"
		clr = theme.AccentStamp
	}
	drawTextCentered(title, ui.width/2, 60, theme.Type.Title, rl.Fade(clr, t))
}

func (ui *gameUI) drawDialogues() {
	for _, panel := range ui.panels {
		d, ok := ui.session.Dialogue().Session(panel.Handle)
		if !ok {
			continue
		}
		alpha := float32(1)
		if panel.Ending {
			alpha = easeOutCubic(float32(ui.endingAge) / float32(endingFadeTime))
		}
		ui.drawDialogue(panel, d, alpha)
	}
}

func (ui *gameUI) drawDialogue(panel dialoguePanel, d *dialogue.Session, alpha float32) {
	rect := panel.Rect
	variant := theme.PanelStandard
	if panel.Ending {
		variant = theme.PanelLifted
	}
	theme.DrawPanel(rect, variant)

	content := d.Content()
	pad := theme.PaddingM
	side := rect.Height - pad*2
	if panel.Ending {
		side = min(side*0.5, 128)
	}
	portrait := rl.NewRectangle(rect.X+pad, rect.Y+pad, side, side)
	ui.drawPortrait(portrait, content, alpha)

	x := int32(portrait.X + portrait.Width + pad)
	y := int32(rect.Y + pad)
	if content.Speaker != "" {
		theme.DrawHeader(content.Speaker, x, y)
		y += theme.Type.Header + 18
	}
	maxWidth := int32(rect.X+rect.Width-pad) - x
	size := theme.Type.Body
	for _, line := range wrapText(content.Body, maxWidth, func(s string) int32 { return measureText(s, size) }) {
		drawText(line, x, y, size, rl.Fade(theme.TextPrimary, alpha))
		y += textLineHeight(size)
	}

	if d.Dismissable() && d.Typewriter().State() == dialogue.Complete {
		hint := "click to continue"
		if d.Node().Advance.Kind == dialogue.AdvanceBranch {
			hint = "click for more"
		}
		hw := measureText(hint, theme.Type.Small)
		theme.DrawHintText(hint, int32(rect.X+rect.Width-pad)-hw, int32(rect.Y+rect.Height-pad)-theme.Type.Small, theme.TextMuted)
	}
}

func (ui *gameUI) drawPortrait(rect rl.Rectangle, content dialogue.Content, alpha float32) {
	tex := ui.portrait(content.Portrait)
	if tex.ID == 0 {
		rl.DrawRectangleRec(rect, rl.Fade(theme.Divider, alpha))
		initial := "?"
		if fields := strings.Fields(content.Speaker); len(fields) > 0 {
			initial = strings.ToUpper(string([]rune(fields[len(fields)-1])[:1]))
		}
		drawTextCentered(initial, int32(rect.X+rect.Width/2), int32(rect.Y+rect.Height/2)-theme.Type.Title/2, theme.Type.Title, rl.Fade(theme.TextSecondary, alpha))
		return
	}
	src := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
	rl.DrawTexturePro(tex, src, rect, rl.Vector2{}, 0, rl.Fade(rl.White, alpha))
}
