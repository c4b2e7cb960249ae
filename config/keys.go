package config

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// InputCode is a single keyboard key or mouse button.
type InputCode struct {
	Key     ebiten.Key
	Mouse   ebiten.MouseButton
	IsMouse bool
}

func KeyInput(k ebiten.Key) InputCode {
	return InputCode{Key: k}
}

func MouseInput(b ebiten.MouseButton) InputCode {
	return InputCode{Mouse: b, IsMouse: true}
}

var mouseNames = map[ebiten.MouseButton]string{
	ebiten.MouseButtonLeft:   "MouseLeft",
	ebiten.MouseButtonRight:  "MouseRight",
	ebiten.MouseButtonMiddle: "MouseMiddle",
}

var mouseLabels = map[ebiten.MouseButton]string{
	ebiten.MouseButtonLeft:   "Left Click",
	ebiten.MouseButtonRight:  "Right Click",
	ebiten.MouseButtonMiddle: "Middle Click",
}

// keysByName maps ebiten key names ("A", "Space", "ArrowUp") to keys.
var keysByName map[string]ebiten.Key

func init() {
	keysByName = make(map[string]ebiten.Key, int(ebiten.KeyMax)+1)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		keysByName[strings.ToLower(k.String())] = k
	}
}

// String is the persisted identifier of the input.
func (c InputCode) String() string {
	if c.IsMouse {
		return mouseNames[c.Mouse]
	}
	return c.Key.String()
}

// Label is the text shown to the player for this input.
func (c InputCode) Label() string {
	if c.IsMouse {
		return mouseLabels[c.Mouse]
	}
	return strings.ToUpper(c.Key.String())
}

// ParseInputCode resolves a persisted identifier. Matching is case-insensitive.
func ParseInputCode(name string) (InputCode, bool) {
	name = strings.TrimSpace(name)
	for b, n := range mouseNames {
		if strings.EqualFold(n, name) {
			return MouseInput(b), true
		}
	}
	if k, ok := keysByName[strings.ToLower(name)]; ok {
		return KeyInput(k), true
	}
	return InputCode{}, false
}
