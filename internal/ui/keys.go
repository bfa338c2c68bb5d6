package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Bottom       key.Binding
	CycleManager key.Binding
	Install      key.Binding
	Init         key.Binding
	CopyLog      key.Binding
	Refresh      key.Binding
	Quit         key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j", "scroll down"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "follow"),
		),
		CycleManager: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next manager"),
		),
		Install: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "install CLI"),
		),
		Init: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "init project"),
		),
		CopyLog: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy log"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}
