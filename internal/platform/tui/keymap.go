package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// PreviewKeyMap defines the key bindings of the course previewer.
type PreviewKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	NextLevel  key.Binding
	PrevLevel  key.Binding
	Regenerate key.Binding
	Autoplay   key.Binding
	Windows    key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PreviewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.NextLevel, k.Regenerate, k.Autoplay, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PreviewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.NextLevel, k.PrevLevel},
		{k.Regenerate, k.Autoplay, k.Windows},
		{k.Help, k.Quit},
	}
}

// DefaultPreviewKeyMap returns the default bindings.
func DefaultPreviewKeyMap() PreviewKeyMap {
	return PreviewKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "scroll back"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "scroll ahead"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("n", "tab"),
			key.WithHelp("n", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("p", "shift+tab"),
			key.WithHelp("p", "prev level"),
		),
		Regenerate: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "regenerate"),
		),
		Autoplay: key.NewBinding(
			key.WithKeys("a", " "),
			key.WithHelp("a", "autoplay"),
		),
		Windows: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "toggle windows"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
