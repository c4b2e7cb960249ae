package components

import (
	"math/rand/v2"

	cfg "github.com/automoto/caged/config"
	"github.com/yohamta/donburi"
)

// ArenaData is the singleton wave director state.
type ArenaData struct {
	State     cfg.SessionState
	WaveIndex int
	Table     *cfg.WaveTable

	// Step is the long-running part of the current state (countdown,
	// spawn loop, reload delay). nil when the state has nothing pending.
	Step Sequence

	Layout cfg.ArenaLayout

	Rng *rand.Rand

	// Tutorial needs the confirm button released before it accepts a press.
	ConfirmReleased bool

	// Spawned counts enemies created for the current wave.
	Spawned int

	// ReloadRequested is the session-reset signal read by the scene.
	ReloadRequested bool
}

// WaveCount is the number of waves in the table.
func (a *ArenaData) WaveCount() int {
	if a.Table == nil {
		return 0
	}
	return len(a.Table.Waves)
}

var Arena = donburi.NewComponentType[ArenaData]()
