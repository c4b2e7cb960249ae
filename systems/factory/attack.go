package factory

import (
	"github.com/automoto/caged/archetypes"
	"github.com/automoto/caged/components"
	cfg "github.com/automoto/caged/config"
	"github.com/automoto/caged/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateAttackZone spawns the hitbox for one swing. It follows the owner
// until it is destroyed.
func CreateAttackZone(ecs *ecs.ECS, owner *donburi.Entry, zone cfg.AttackZone) *donburi.Entry {
	hitbox := archetypes.Hitbox.Spawn(ecs)

	rect := cfg.Combat.Zones[zone]
	obj := resolv.NewObject(0, 0, rect.W, rect.H, tags.ResolvAttack)
	obj.SetShape(resolv.NewRectangle(0, 0, rect.W, rect.H))
	obj.Data = hitbox
	components.Object.SetValue(hitbox, components.ObjectData{Object: obj})

	components.Hitbox.SetValue(hitbox, components.HitboxData{
		Owner:       owner,
		Zone:        zone,
		Damage:      cfg.Combat.Damage,
		HitEntities: make(map[*donburi.Entry]bool),
	})

	PlaceAttackZone(hitbox)
	addToSpace(ecs, obj)

	return hitbox
}

// PlaceAttackZone moves the zone to its offset from the owner's centre,
// mirrored by the owner's facing.
func PlaceAttackZone(hitbox *donburi.Entry) {
	hb := components.Hitbox.Get(hitbox)
	if hb.Owner == nil || !hb.Owner.Valid() {
		return
	}
	owner := components.Object.Get(hb.Owner)
	facing := float64(cfg.DirectionRight)
	if hb.Owner.HasComponent(components.Player) {
		facing = float64(components.Player.Get(hb.Owner).Facing)
	}

	rect := cfg.Combat.Zones[hb.Zone]
	obj := components.Object.Get(hitbox)
	obj.X = owner.CenterX() + rect.OffsetX*facing - rect.W/2
	obj.Y = owner.CenterY() + rect.OffsetY - rect.H/2
	obj.Update()
}
