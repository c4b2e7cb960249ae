package components

import "github.com/yohamta/donburi"

type HUDData struct {
	PulseTimer float64
}

var HUD = donburi.NewComponentType[HUDData]()
