package components

import (
	cfg "github.com/automoto/caged/config"
	"github.com/yohamta/donburi"
)

// InputDevice is the class of device last used, for prompt text only.
type InputDevice int

const (
	DeviceKeyboard InputDevice = iota
	DeviceXbox
	DevicePlayStation
	DeviceOther
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputSnapshot is the player's intent for one tick. It is built once by the
// input system and handed by value to every consumer.
type InputSnapshot struct {
	MoveX float64 // -1 left, +1 right
	MoveY float64 // +1 up, -1 down

	Jump    ActionState
	Dash    ActionState
	Attack  ActionState
	Confirm ActionState

	Device InputDevice
}

// Neutral returns the snapshot with no movement and no actions held. Confirm
// is kept so menus and the tutorial prompt still see it.
func (s InputSnapshot) Neutral() InputSnapshot {
	return InputSnapshot{Confirm: s.Confirm, Device: s.Device}
}

// PlayerInputData stores the raw pressed state of the last two ticks and the
// snapshot derived from them.
type PlayerInputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Snapshot InputSnapshot
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
