package gui

import (
	"io"
	"log"
	"math"
	"time"

	"github.com/appengine-ltd/misplaced/internal/assets"
	"github.com/appengine-ltd/misplaced/internal/audio"
	"github.com/appengine-ltd/misplaced/internal/dialogue"
	"github.com/appengine-ltd/misplaced/internal/game"
	"github.com/appengine-ltd/misplaced/internal/gui/theme"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
	Config    game.Config
	Level     game.Level
	Logger    *log.Logger
	Debug     bool
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

const (
	mouseSensitivity = 0.0025
	maxPitch         = 1.45
	endingFadeTime   = 2500 * time.Millisecond
	playerName       = "player"
)

type gameUI struct {
	cfg    AppConfig
	width  int32
	height int32

	session *game.Session
	player  *game.Body
	catalog assets.Catalog
	audio   *audio.Engine
	log     *log.Logger

	camera   rl.Camera3D
	yaw      float32
	pitch    float32
	captured bool
	// wantCapture is the player's choice; dialogues release the cursor
	// without changing it.
	wantCapture bool

	hover      game.CollectibleID
	portraits  map[string]rl.Texture2D
	panels     []dialoguePanel
	endingAge  time.Duration
	showDebug  bool
	lastStable game.Vec3
	hasStable  bool
	lastTick   time.Time
	quit       bool
}

func (a *App) Run() error {
	ui, err := newGameUI(a.cfg)
	if err != nil {
		return err
	}
	return ui.Run()
}

func newGameUI(cfg AppConfig) (*gameUI, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	catalog := assets.New(cfg.Config.AssetsDir)
	engine := audio.NewEngine(catalog, log.New(logger.Writer(), logger.Prefix()+"audio: ", logger.Flags()))

	session, err := game.NewSession(game.SessionOptions{
		Config:  cfg.Config,
		Level:   cfg.Level,
		Library: dialogue.BuiltinLibrary(),
		Assets:  catalog,
		Audio:   engine,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}
	ui := &gameUI{
		cfg:         cfg,
		width:       1280,
		height:      720,
		session:     session,
		catalog:     catalog,
		audio:       engine,
		log:         logger,
		portraits:   make(map[string]rl.Texture2D),
		showDebug:   cfg.Debug,
		wantCapture: true,
		yaw:         math.Pi,
	}
	ui.player = session.NewBody(playerName, terminalSpeed)
	return ui, nil
}

func (ui *gameUI) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "Misplaced")
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	initTypography(ui.catalog)
	theme.InitSkin(ui.catalog)

	if err := ui.audio.Initialize(); err != nil {
		ui.log.Printf("warning: %v; running without sound", err)
	}
	defer ui.audio.Close()

	ui.camera = rl.Camera3D{
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       70,
		Projection: rl.CameraPerspective,
	}
	ui.syncCamera()
	ui.session.Start()
	ui.lastTick = time.Now()

	for !ui.quit && !rl.WindowShouldClose() {
		now := time.Now()
		delta := max(now.Sub(ui.lastTick), 0)
		// Long stalls (window drag, breakpoints) must not tunnel the body
		// through the floor.
		delta = min(delta, 100*time.Millisecond)
		ui.lastTick = now

		ui.width = int32(rl.GetScreenWidth())
		ui.height = int32(rl.GetScreenHeight())

		ui.update(delta)

		rl.BeginDrawing()
		rl.ClearBackground(theme.BG)
		ui.draw()
		rl.EndDrawing()
	}

	for ref, tex := range ui.portraits {
		theme.UnloadTexture(&tex)
		delete(ui.portraits, ref)
	}
	theme.UnloadSkin()
	shutdownTypography()
	rl.CloseWindow()
	return nil
}

// update runs one frame in a fixed order: input, movement, core update,
// then camera.
func (ui *gameUI) update(delta time.Duration) {
	in := game.FrameInput{Delta: delta}
	enabled := ui.session.Control().Enabled()

	clickUsed := ui.handleHotkeys(enabled)
	ui.syncCursor(enabled)

	var move moveInput
	if enabled {
		ui.look()
		move = readMove()
	}
	ui.layoutPanels()
	if clicked, ok := ui.clickedPanel(); ok {
		in.Dismiss = append(in.Dismiss, clicked)
	}

	stepBody(ui.player, move, ui.yaw, ui.session.Level().FloorHalfExtent, float32(delta.Seconds()))
	ui.syncCamera()

	ui.hover = ui.pick()
	if enabled && !clickUsed && ui.hover != "" && collectPressed() {
		in.Collect = append(in.Collect, ui.hover)
	}

	for _, ev := range ui.session.Update(in) {
		ui.onEvent(ev)
	}
	if front, ok := ui.player.Recovery().History().Front(); ok {
		ui.lastStable, ui.hasStable = front, true
	}
	if _, ok := ui.session.Ending(); ok {
		ui.endingAge += delta
	}
	ui.syncCamera()
}

func (ui *gameUI) onEvent(ev game.Event) {
	switch ev.Type {
	case game.EventBodyRecovered:
		p := ev.Payload.(game.RecoveryPayload)
		ui.log.Printf("%s recovered to %.2f,%.2f,%.2f", p.Body, p.To.X, p.To.Y, p.To.Z)
	case game.EventWin, game.EventLose:
		ui.endingAge = 0
		ui.wantCapture = false
	}
}

// syncCursor releases the mouse while input is held so dialogue panels can
// be clicked, and captures it again once control comes back.
func (ui *gameUI) syncCursor(enabled bool) {
	want := enabled && ui.wantCapture
	if want == ui.captured {
		return
	}
	if want {
		rl.DisableCursor()
	} else {
		rl.EnableCursor()
	}
	ui.captured = want
}

func (ui *gameUI) look() {
	if !ui.captured {
		return
	}
	d := rl.GetMouseDelta()
	ui.yaw -= d.X * mouseSensitivity
	ui.pitch = min(max(ui.pitch-d.Y*mouseSensitivity, -maxPitch), maxPitch)
}

func (ui *gameUI) forward() rl.Vector3 {
	cp := float32(math.Cos(float64(ui.pitch)))
	return rl.NewVector3(
		cp*float32(math.Sin(float64(ui.yaw))),
		float32(math.Sin(float64(ui.pitch))),
		cp*float32(math.Cos(float64(ui.yaw))),
	)
}

func (ui *gameUI) syncCamera() {
	p := ui.player.Position
	eye := rl.NewVector3(p.X, p.Y+eyeHeight, p.Z)
	f := ui.forward()
	ui.camera.Position = eye
	ui.camera.Target = rl.NewVector3(eye.X+f.X, eye.Y+f.Y, eye.Z+f.Z)
}

// pick returns the nearest remaining collectible under the crosshair within
// reach.
func (ui *gameUI) pick() game.CollectibleID {
	ray := rl.Ray{Position: ui.camera.Position, Direction: ui.forward()}
	best := game.CollectibleID("")
	bestDist := float32(reach)
	for _, item := range ui.session.Progress().Remaining() {
		hit := rl.GetRayCollisionBox(ray, collectibleBox(item))
		if hit.Hit && hit.Distance <= bestDist {
			best, bestDist = item.ID, hit.Distance
		}
	}
	return best
}

func (ui *gameUI) respawn() {
	ui.player.Respawn(ui.session.Level().Spawn)
	ui.syncCamera()
	ui.log.Printf("respawned at %v", ui.session.Level().Spawn)
}

func (ui *gameUI) portrait(ref string) rl.Texture2D {
	if ref == "" {
		return rl.Texture2D{}
	}
	if tex, ok := ui.portraits[ref]; ok {
		return tex
	}
	tex := theme.LoadTexture(ui.catalog, ref)
	ui.portraits[ref] = tex
	return tex
}

func toRL(v game.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X, v.Y, v.Z)
}

const collectibleSize = 0.45

func collectibleBox(item game.Collectible) rl.BoundingBox {
	h := float32(collectibleSize / 2)
	p := item.Position
	return rl.NewBoundingBox(rl.NewVector3(p.X-h, p.Y-h, p.Z-h), rl.NewVector3(p.X+h, p.Y+h, p.Z+h))
}
