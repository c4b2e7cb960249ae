package components

import "github.com/yohamta/donburi"

// RespawnData guards the hazard respawn sequence against re-entry.
type RespawnData struct {
	Active bool
	Seq    Sequence
}

var Respawn = donburi.NewComponentType[RespawnData]()
