package systems

import (
	"strings"

	"github.com/automoto/caged/components"
	cfg "github.com/automoto/caged/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputDevice)

// rawInput is one poll of every device.
type rawInput struct {
	pressed      [cfg.ActionCount]bool
	axisX, axisY float64 // left stick, already outside the deadzone
	keyboardUsed bool
	gamepadUsed  bool
	gamepadID    ebiten.GamepadID
}

// UpdateInput polls the devices and stores this tick's snapshot on the
// player. Must run before every system that reads the snapshot.
func UpdateInput(ecs *ecs.ECS) {
	raw := pollDevices()
	components.PlayerInput.Each(ecs.World, func(e *donburi.Entry) {
		input := components.PlayerInput.Get(e)
		device := input.Snapshot.Device
		if raw.gamepadUsed {
			device = getControllerType(raw.gamepadID)
		} else if raw.keyboardUsed {
			device = components.DeviceKeyboard
		}
		applyRawInput(input, raw.pressed, raw.axisX, raw.axisY, device)
	})
}

// applyRawInput swaps the buffers and rebuilds the snapshot.
func applyRawInput(input *components.PlayerInputData, pressed [cfg.ActionCount]bool, axisX, axisY float64, device components.InputDevice) {
	input.Previous = input.Current
	input.Current = pressed
	input.Snapshot = buildSnapshot(input, axisX, axisY, device)
}

func buildSnapshot(input *components.PlayerInputData, axisX, axisY float64, device components.InputDevice) components.InputSnapshot {
	s := components.InputSnapshot{
		Jump:    GetPlayerAction(input, cfg.ActionJump),
		Dash:    GetPlayerAction(input, cfg.ActionDash),
		Attack:  GetPlayerAction(input, cfg.ActionAttack),
		Confirm: GetPlayerAction(input, cfg.ActionConfirm),
		Device:  device,
	}

	// Digital directions win over the stick.
	switch {
	case input.Current[cfg.ActionMoveLeft] && !input.Current[cfg.ActionMoveRight]:
		s.MoveX = -1
	case input.Current[cfg.ActionMoveRight] && !input.Current[cfg.ActionMoveLeft]:
		s.MoveX = 1
	default:
		s.MoveX = clamp(axisX, -1, 1)
	}
	switch {
	case input.Current[cfg.ActionMoveUp] && !input.Current[cfg.ActionMoveDown]:
		s.MoveY = 1
	case input.Current[cfg.ActionMoveDown] && !input.Current[cfg.ActionMoveUp]:
		s.MoveY = -1
	default:
		// Stick Y grows downward.
		s.MoveY = clamp(-axisY, -1, 1)
	}
	return s
}

// GetPlayerAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetPlayerAction(input *components.PlayerInputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

func pollDevices() rawInput {
	var raw rawInput

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		if isCodePressed(binding.Primary) {
			raw.pressed[actionID] = true
			raw.keyboardUsed = true
		}
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				raw.pressed[actionID] = true
				raw.keyboardUsed = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					raw.pressed[actionID] = true
					raw.gamepadUsed = true
					raw.gamepadID = gpID
				}
			}
		}
	}

	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if h < -deadzone || h > deadzone {
			raw.axisX = h
			raw.gamepadUsed = true
			raw.gamepadID = gpID
		}
		if v < -deadzone || v > deadzone {
			raw.axisY = v
			raw.gamepadUsed = true
			raw.gamepadID = gpID
		}
	}

	return raw
}

func isCodePressed(c cfg.InputCode) bool {
	if c.IsMouse {
		return ebiten.IsMouseButtonPressed(c.Mouse)
	}
	return ebiten.IsKeyPressed(c.Key)
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputDevice {
	if device, ok := controllerTypeCache[gpID]; ok {
		return device
	}
	device := deviceFromName(ebiten.GamepadName(gpID))
	controllerTypeCache[gpID] = device
	return device
}

func deviceFromName(name string) components.InputDevice {
	name = strings.ToLower(name)
	switch {
	case strings.Contains(name, "xbox") || strings.Contains(name, "xinput"):
		return components.DeviceXbox
	case strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense"):
		return components.DevicePlayStation
	}
	return components.DeviceOther
}
