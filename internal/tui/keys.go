// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	local key.Binding
	cloud key.Binding
	copy  key.Binding
	help  key.Binding
	later key.Binding
}

var keys = keyMap{
	local: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "keep this device")),
	cloud: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "use cloud save")),
	copy:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy session id")),
	help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
	later: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc", "decide later")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.local, k.cloud, k.later, k.help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.local, k.cloud},
		{k.copy, k.later, k.help},
	}
}
