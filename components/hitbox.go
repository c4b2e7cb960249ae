package components

import (
	cfg "github.com/automoto/caged/config"
	"github.com/yohamta/donburi"
)

type HitboxData struct {
	Owner       *donburi.Entry // player that swung
	Zone        cfg.AttackZone
	Damage      int
	HitEntities map[*donburi.Entry]bool // entries already struck by this swing
}

var Hitbox = donburi.NewComponentType[HitboxData]()
