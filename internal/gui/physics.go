package gui

import (
	"math"

	"github.com/appengine-ltd/misplaced/internal/game"
)

// Kinematic character tuning. Distances in metres, speeds in m/s.
const (
	gravity       = 22
	jumpSpeed     = 7.5
	walkSpeed     = 4.5
	runSpeed      = 7
	terminalSpeed = 40
	eyeHeight     = 1.6
	reach         = 3.5
	// Bodies this far below the floor no longer land on it.
	floorSnapDepth = 0.5
)

type moveInput struct {
	Forward float32
	Right   float32
	Run     bool
	Jump    bool
}

// stepBody integrates one frame of movement and resolves the floor contact.
// The floor is the square platform of half size halfExtent centred on the
// origin at y=0; its normal is straight up.
func stepBody(b *game.Body, in moveInput, yaw float32, halfExtent float32, dt float32) {
	if dt <= 0 {
		return
	}
	fx, fz := float32(math.Sin(float64(yaw))), float32(math.Cos(float64(yaw)))
	dir := game.Vec3{
		X: fx*in.Forward - fz*in.Right,
		Z: fz*in.Forward + fx*in.Right,
	}
	speed := float32(walkSpeed)
	if in.Run {
		speed = runSpeed
	}
	if l := dir.HorizontalLength(); l > 0 {
		dir = dir.Scale(speed / l)
	}
	b.Velocity.X, b.Velocity.Z = dir.X, dir.Z

	if in.Jump && b.Grounded() {
		b.Velocity.Y = jumpSpeed
	}
	b.Velocity.Y = max(b.Velocity.Y-gravity*dt, -b.MaxSpeed)

	prevY := b.Position.Y
	b.Position = b.Position.Add(b.Velocity.Scale(dt))

	onPlatform := abs32(b.Position.X) <= halfExtent && abs32(b.Position.Z) <= halfExtent
	if onPlatform && b.Position.Y <= 0 && prevY >= -floorSnapDepth && b.Velocity.Y <= 0 {
		b.Position.Y = 0
		b.Velocity.Y = 0
		b.Ground = &game.Contact{Normal: game.Up}
		return
	}
	b.Ground = nil
}

// easeOutCubic maps t in [0,1] onto a curve that starts fast and settles.
func easeOutCubic(t float32) float32 {
	t = min(max(t, 0), 1)
	inv := 1 - t
	return 1 - inv*inv*inv
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
