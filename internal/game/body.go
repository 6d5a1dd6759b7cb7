package game

// Contact is the ground contact reported by the physics collaborator.
type Contact struct {
	Normal Vec3
}

// Body is a controlled body as seen by the core. The physics collaborator
// writes Position, Velocity and Ground every frame before Session.Update;
// the core only ever overwrites Position (recovery) or both on Respawn.
type Body struct {
	Name     string
	Position Vec3
	Velocity Vec3
	// Ground is nil while airborne.
	Ground   *Contact
	MaxSpeed float32

	recovery *StableGround
}

func NewBody(name string, spawn Vec3, maxSpeed float32, cfg Config) *Body {
	return &Body{
		Name:     name,
		Position: spawn,
		MaxSpeed: maxSpeed,
		recovery: NewStableGround(cfg),
	}
}

func (b *Body) Recovery() *StableGround {
	return b.recovery
}

func (b *Body) Grounded() bool {
	return b.Ground != nil
}

// Respawn puts the body back at spawn with no velocity and a clean fall
// watchdog. Stable ground history is kept.
func (b *Body) Respawn(spawn Vec3) {
	b.Position = spawn
	b.Velocity = Vec3{}
	b.Ground = nil
	if b.recovery != nil {
		b.recovery.resetWatchdog()
	}
}
