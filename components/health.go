package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int

	Invincible      bool
	InvincibleTimer float64

	Dead bool

	// Changed is raised whenever Current moves; the HUD consumes it.
	Changed bool
}

var Health = donburi.NewComponentType[HealthData]()
