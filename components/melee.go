package components

import (
	cfg "github.com/automoto/caged/config"
	"github.com/yohamta/donburi"
)

// AttackData is the melee cycle: idle, active zone, cooldown.
type AttackData struct {
	Phase  cfg.AttackPhase
	Zone   cfg.AttackZone // sampled once when the attack starts
	Timer  float64
	Hitbox *donburi.Entry // active zone entity, nil when idle or cooling down
}

var Attack = donburi.NewComponentType[AttackData]()
