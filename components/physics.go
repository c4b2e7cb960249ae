package components

import "github.com/yohamta/donburi"

// BodyData is a unit-mass rigid body. Velocities are pixels per second with
// Y growing downward.
type BodyData struct {
	VelX         float64
	VelY         float64
	GravityScale float64

	// FallCap limits downward speed below the global maximum; 0 means none.
	FallCap float64

	// Frozen bodies are skipped by the integrator (respawn lock).
	Frozen bool

	// Contacts reported by the integrator for the last move.
	BlockedX bool
	BlockedY bool
	Landed   bool
}

// ApplyImpulse adds an instantaneous velocity change.
func (b *BodyData) ApplyImpulse(ix, iy float64) {
	b.VelX += ix
	b.VelY += iy
}

// Stop zeroes the velocity.
func (b *BodyData) Stop() {
	b.VelX = 0
	b.VelY = 0
}

var Body = donburi.NewComponentType[BodyData]()
