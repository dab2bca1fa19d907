package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/tally/internal/config"
)

// keyMap is the set of bindings active outside of forms. It implements
// help.KeyMap so the help bubble can render it.
type keyMap struct {
	Add     key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Another key.Binding
	Up      key.Binding
	Down    key.Binding
	Back    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		Add:     key.NewBinding(key.WithKeys(km.AddRecord), key.WithHelp(km.AddRecord, "add record")),
		Edit:    key.NewBinding(key.WithKeys(km.EditRecord, "enter"), key.WithHelp(km.EditRecord, "edit record")),
		Delete:  key.NewBinding(key.WithKeys(km.DeleteRecord), key.WithHelp(km.DeleteRecord, "delete record")),
		Refresh: key.NewBinding(key.WithKeys(km.Refresh), key.WithHelp(km.Refresh, "reload")),
		Another: key.NewBinding(key.WithKeys(km.AddAnother), key.WithHelp(km.AddAnother, "add another")),
		Up:      key.NewBinding(key.WithKeys(km.PrevRow, "up"), key.WithHelp("↑/"+km.PrevRow, "up")),
		Down:    key.NewBinding(key.WithKeys(km.NextRow, "down"), key.WithHelp("↓/"+km.NextRow, "down")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Help:    key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "help")),
		Quit:    key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),
	}
}

// ShortHelp returns the bindings shown in the status bar
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete, k.Help, k.Quit}
}

// FullHelp returns the bindings shown on the help screen
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Add, k.Edit, k.Delete, k.Refresh},
		{k.Another, k.Back, k.Help, k.Quit},
	}
}
