package components

import "github.com/yohamta/donburi"

// FlashData tints an entity for a short time after it is hit.
type FlashData struct {
	Timer float64
}

var Flash = donburi.NewComponentType[FlashData]()

// FadeData is the full screen fade used while respawning. Alpha 0 is clear.
type FadeData struct {
	Alpha float64
}

var Fade = donburi.NewComponentType[FadeData]()
