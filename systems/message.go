package systems

import (
	"regexp"
	"strings"

	"github.com/automoto/caged/components"
	cfg "github.com/automoto/caged/config"
	"github.com/automoto/caged/fonts"
	"github.com/automoto/caged/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// Cached font face for message rendering (lazy initialized)
var messageFontFace font.Face

var placeholderPattern = regexp.MustCompile(`\{(\w+)\}`)

// DrawMessage renders the active message at the top center of the screen
func DrawMessage(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Message.First(ecs.World)
	if !ok {
		return
	}
	msg := components.Message.Get(entry)
	if !msg.Visible || msg.Text == "" {
		return
	}

	device := components.DeviceKeyboard
	if p, ok := tags.Player.First(ecs.World); ok {
		device = components.PlayerInput.Get(p).Snapshot.Device
	}
	resolvedText := ResolvePlaceholders(msg.Text, device, cfg.Input.Bindings)

	if messageFontFace == nil {
		messageFontFace = fonts.Message.Get()
	}

	bounds := text.BoundString(messageFontFace, resolvedText) //nolint:staticcheck // TODO: migrate to text/v2
	textWidth := bounds.Dx()
	textHeight := bounds.Dy()

	padding := cfg.Message.BoxPadding
	boxWidth := float32(textWidth) + float32(padding)*2
	boxHeight := float32(textHeight) + float32(padding)*2

	screenWidth := float64(screen.Bounds().Dx())
	boxX := float32((screenWidth - float64(boxWidth)) / 2)
	boxY := float32(cfg.Message.TopMargin)

	vector.FillRect(screen, boxX, boxY, boxWidth, boxHeight, cfg.Message.BoxColor, false)

	// BoundString's Min.Y is negative for the first line's ascent.
	textX := int(boxX + float32(padding))
	textY := int(boxY+float32(padding)) - bounds.Min.Y
	text.Draw(screen, resolvedText, messageFontFace, textX, textY, cfg.Message.TextColor) //nolint:staticcheck // TODO: migrate to text/v2
}

// ResolvePlaceholders replaces {action} tokens with the label of the input
// that triggers the action on the given device. Unknown tokens are kept.
func ResolvePlaceholders(s string, device components.InputDevice, bindings map[cfg.ActionID]cfg.InputBinding) string {
	var labels map[string]string
	switch device {
	case components.DeviceXbox:
		labels = cfg.Message.XboxLabels
	case components.DevicePlayStation:
		labels = cfg.Message.PlayStationLabels
	case components.DeviceOther:
		labels = cfg.Message.OtherPadLabels
	default:
		labels = keyboardLabels(bindings)
	}

	return placeholderPattern.ReplaceAllStringFunc(s, func(token string) string {
		if label, ok := labels[strings.Trim(token, "{}")]; ok {
			return label
		}
		return token
	})
}

// keyboardLabels builds labels from the current primary bindings. "move"
// covers the four directions.
func keyboardLabels(bindings map[cfg.ActionID]cfg.InputBinding) map[string]string {
	labels := make(map[string]string, len(cfg.ActionNames)+1)
	for id, name := range cfg.ActionNames {
		if b, ok := bindings[id]; ok {
			labels[name] = b.Primary.Label()
		}
	}
	labels["move"] = labels["up"] + labels["left"] + labels["down"] + labels["right"]
	return labels
}
