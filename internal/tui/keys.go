package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Select key.Binding
	Submit key.Binding
	Back   key.Binding
	New    key.Binding
	Quit   key.Binding
	Force  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "calculate")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		New:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new calculation")),
		Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Force:  key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// sceneHelp adapts the bindings of one scene to help.KeyMap
type sceneHelp []key.Binding

func (h sceneHelp) ShortHelp() []key.Binding  { return h }
func (h sceneHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h} }

func (k keyMap) help(scene Scene) sceneHelp {
	switch scene {
	case SceneForm:
		return sceneHelp{k.Next, k.Prev, k.Submit, k.Back}
	case SceneResult:
		return sceneHelp{k.Back, k.New, k.Quit}
	default:
		return sceneHelp{k.Up, k.Down, k.Select, k.Quit}
	}
}
