package components

import (
	"github.com/automoto/caged/assets"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Arena *assets.Arena
}

var Level = donburi.NewComponentType[LevelData]()
