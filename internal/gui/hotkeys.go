package gui

import rl "github.com/gen2brain/raylib-go/raylib"

// handleHotkeys reads keys that work regardless of dialogue state, plus
// respawn which needs player control. Returns true when it used the click.
func (ui *gameUI) handleHotkeys(enabled bool) bool {
	if rl.IsKeyPressed(rl.KeyGrave) {
		ui.showDebug = !ui.showDebug
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		ui.wantCapture = false
	}
	if ModifiedPressedKey(rl.KeyQ) {
		ui.quit = true
	}
	if !enabled {
		return false
	}
	if rl.IsKeyPressed(rl.KeyR) {
		ui.respawn()
	}
	if !ui.wantCapture && rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		ui.wantCapture = true
		return true
	}
	return false
}

func readMove() moveInput {
	var in moveInput
	if rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp) {
		in.Forward++
	}
	if rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown) {
		in.Forward--
	}
	if rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight) {
		in.Right++
	}
	if rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft) {
		in.Right--
	}
	in.Run = shiftDown()
	in.Jump = rl.IsKeyPressed(rl.KeySpace)
	return in
}

func collectPressed() bool {
	return rl.IsMouseButtonPressed(rl.MouseButtonLeft) || rl.IsKeyPressed(rl.KeyE)
}

func ModifiedPressedKey(key int32) bool {
	return (shiftDown() || ctrlDown() || altDown()) && rl.IsKeyPressed(key)
}

func shiftDown() bool {
	return rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
}

func ctrlDown() bool {
	return rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
}

func altDown() bool {
	return rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt)
}
