package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Platform = donburi.NewTag().SetName("Platform")
	Wall     = donburi.NewTag().SetName("Wall")
	Enemy    = donburi.NewTag().SetName("Enemy")
	Hitbox   = donburi.NewTag().SetName("Hitbox")
	Hazard   = donburi.NewTag().SetName("Hazard")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = "solid"
	ResolvPlatform = "platform" // one-way, solid from above only
	ResolvPlayer   = "Player"
	ResolvEnemy    = "Enemy"
	ResolvAttack   = "attack"
	ResolvHazard   = "hazard"
	ResolvProbe    = "probe"
)
