package components

import "github.com/yohamta/donburi"

// HazardData marks a surface that hurts the player while armed.
type HazardData struct {
	Armed bool
}

var Hazard = donburi.NewComponentType[HazardData]()
