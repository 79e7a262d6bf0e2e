package viz

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Play     key.Binding
	Reset    key.Binding
	Prev     key.Binding
	Next     key.Binding
	First    key.Binding
	Last     key.Binding
	Faster   key.Binding
	Slower   key.Binding
	Scale    key.Binding
	Edit     key.Binding
	Random   key.Binding
	Generate key.Binding
	Cancel   key.Binding
	CSV      key.Binding
	JSON     key.Binding
	Chart    key.Binding
	Theme    key.Binding
	Info     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Play: key.NewBinding(
		key.WithKeys(" ", "space", "p"),
		key.WithHelp("space", "play/pause"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	Prev: key.NewBinding(
		key.WithKeys("left", "h", "["),
		key.WithHelp("←/h", "previous"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "l", "]"),
		key.WithHelp("→/l", "next"),
	),
	First: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("home/g", "first step"),
	),
	Last: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("end/G", "last step"),
	),
	Faster: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "faster"),
	),
	Slower: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "slower"),
	),
	Scale: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "linear/log"),
	),
	Edit: key.NewBinding(
		key.WithKeys("i", "/"),
		key.WithHelp("i", "enter number"),
	),
	Random: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "random number"),
	),
	Generate: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "generate"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	CSV: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export csv"),
	),
	JSON: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "export json"),
	),
	Chart: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "export svg chart"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	Info: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "read more"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Prev, k.Next, k.Scale, k.Edit, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Play, k.Reset, k.Prev, k.Next, k.First, k.Last},
		{k.Faster, k.Slower, k.Scale, k.Theme},
		{k.Edit, k.Random, k.Generate, k.Cancel},
		{k.CSV, k.JSON, k.Chart, k.Info, k.Help, k.Quit},
	}
}
