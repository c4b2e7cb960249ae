package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionJump
	ActionDash
	ActionAttack
	ActionConfirm
	ActionCount // Must be last - used for array sizing
)

// ActionNames are the persisted identifiers of rebindable actions.
var ActionNames = map[ActionID]string{
	ActionMoveLeft:  "left",
	ActionMoveRight: "right",
	ActionMoveUp:    "up",
	ActionMoveDown:  "down",
	ActionJump:      "jump",
	ActionDash:      "dash",
	ActionAttack:    "attack",
	ActionConfirm:   "confirm",
}

// ActionByName is the inverse of ActionNames.
func ActionByName(name string) (ActionID, bool) {
	for id, n := range ActionNames {
		if n == name {
			return id, true
		}
	}
	return ActionNone, false
}

// InputBinding represents the inputs that trigger an action. Primary is the
// rebindable keyboard/mouse input; Keys and StandardGamepadButtons are fixed
// alternates.
type InputBinding struct {
	Primary                InputCode
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

// DefaultBindings returns a fresh copy of the factory bindings.
func DefaultBindings() map[ActionID]InputBinding {
	return map[ActionID]InputBinding{
		ActionMoveLeft: {
			Primary: KeyInput(ebiten.KeyA),
			Keys:    []ebiten.Key{ebiten.KeyArrowLeft},
			// D-pad Left (analog stick handled separately)
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftLeft,
			},
		},
		ActionMoveRight: {
			Primary: KeyInput(ebiten.KeyD),
			Keys:    []ebiten.Key{ebiten.KeyArrowRight},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftRight,
			},
		},
		ActionMoveUp: {
			Primary: KeyInput(ebiten.KeyW),
			Keys:    []ebiten.Key{ebiten.KeyArrowUp},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftTop,
			},
		},
		ActionMoveDown: {
			Primary: KeyInput(ebiten.KeyS),
			Keys:    []ebiten.Key{ebiten.KeyArrowDown},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftBottom,
			},
		},
		ActionJump: {
			Primary: KeyInput(ebiten.KeySpace),
			// A / Cross button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightBottom,
			},
		},
		ActionDash: {
			Primary: MouseInput(ebiten.MouseButtonRight),
			// B / Circle button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightRight,
			},
		},
		ActionAttack: {
			Primary: MouseInput(ebiten.MouseButtonLeft),
			// X / Square button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightLeft,
			},
		},
		ActionConfirm: {
			Primary: KeyInput(ebiten.KeySpace),
			Keys:    []ebiten.Key{ebiten.KeyEnter},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightBottom,
				ebiten.StandardGamepadButtonCenterRight,
			},
		},
	}
}

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings:       DefaultBindings(),
	}
}
