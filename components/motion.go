package components

import "github.com/yohamta/donburi"

// JumpData holds jump availability timers.
type JumpData struct {
	CoyoteTimer float64 // jump still valid after leaving ground while > 0
	BufferTimer float64 // early press remembered while > 0
	Pressed     bool    // consumed this tick, executed by the physics phase
}

// WallData is the result of the wall probes plus wall-jump lockout.
type WallData struct {
	Touching     bool
	Direction    int // -1 left, 1 right, 0 none
	Sliding      bool
	Jumping      bool // wall-jump lockout running
	JumpingTimer float64
}

// DashData tracks ground/air dash availability.
type DashData struct {
	Active          bool
	Timer           float64
	Requested       bool // latched on the press edge, consumed by the physics phase
	CanDashGrounded bool
	CooldownTimer   float64
	HasAirDashed    bool
}

// GroundData is the result of the ground probe.
type GroundData struct {
	Grounded bool
}

var Jump = donburi.NewComponentType[JumpData]()
var Wall = donburi.NewComponentType[WallData]()
var Dash = donburi.NewComponentType[DashData]()
var Ground = donburi.NewComponentType[GroundData]()
