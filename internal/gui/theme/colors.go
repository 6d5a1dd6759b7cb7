package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// Office palette: fluorescent light over grey carpet.
var (
	BG            = rl.NewColor(0x1B, 0x1E, 0x22, 255) // #1B1E22
	Panel         = rl.NewColor(0xEC, 0xE8, 0xDC, 240) // #ECE8DC, manila
	PanelRaised   = rl.NewColor(0xF6, 0xF2, 0xE6, 250) // #F6F2E6
	Border        = rl.NewColor(0x8C, 0x84, 0x70, 255) // #8C8470
	Divider       = rl.NewColor(0xC9, 0xC1, 0xAA, 255) // #C9C1AA
	TextPrimary   = rl.NewColor(0x22, 0x22, 0x26, 255) // #222226
	TextSecondary = rl.NewColor(0x4A, 0x4C, 0x52, 255) // #4A4C52
	TextMuted     = rl.NewColor(0x7A, 0x7C, 0x80, 255) // #7A7C80
	TextLight     = rl.NewColor(0xF2, 0xF2, 0xEE, 255) // #F2F2EE
	AccentStamp   = rl.NewColor(0xB3, 0x2D, 0x2E, 255) // #B32D2E, rubber stamp red
	AccentFolder  = rl.NewColor(0xD9, 0xA4, 0x41, 255) // #D9A441
	Warning       = rl.NewColor(0xE0, 0x8E, 0x2B, 255) // #E08E2B
	Danger        = AccentStamp

	Carpet    = rl.NewColor(0x5B, 0x60, 0x66, 255)
	CarpetRim = rl.NewColor(0x3C, 0x40, 0x45, 255)
	Desk      = rl.NewColor(0x8A, 0x6A, 0x4A, 255)
	FileBox   = AccentFolder
	Highlight = rl.NewColor(0xFF, 0xF4, 0xB0, 255)
)
