package components

import "github.com/yohamta/donburi"

// MessageData is the singleton holding the one active message. Text may
// contain {action} placeholders resolved per input device at draw time.
type MessageData struct {
	Text    string
	Visible bool
}

var Message = donburi.NewComponentType[MessageData]()
