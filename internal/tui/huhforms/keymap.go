package huhforms

import (
	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
)

// CreateRecordKeyMap creates a keymap where enter and tab both advance through
// the count inputs, so a record can be typed without reaching for the arrows.
func CreateRecordKeyMap() *huh.KeyMap {
	keymap := huh.NewDefaultKeyMap()

	keymap.Input.Next = key.NewBinding(
		key.WithKeys("enter", "tab", "down"),
		key.WithHelp("enter / tab", "next"),
	)
	keymap.Input.Prev = key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "back"),
	)

	return keymap
}
