package components

import (
	cfg "github.com/automoto/caged/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing int // -1 left, 1 right
	Mode   cfg.MotionMode

	// ControlsEnabled is false during the tutorial and the respawn lock.
	ControlsEnabled bool

	// Respawn anchor used by the hazard respawn sequence.
	AnchorX, AnchorY float64
}

var Player = donburi.NewComponentType[PlayerData]()
