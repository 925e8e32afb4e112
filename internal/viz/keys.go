package viz

import "github.com/charmbracelet/bubbles/key"

type sketchKeys struct {
	MaxUp   key.Binding
	MaxDown key.Binding
	CurUp   key.Binding
	CurDown key.Binding
	CurFull key.Binding
	Replay  key.Binding
	Undo    key.Binding
	Clear   key.Binding
	Export  key.Binding
	Theme   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newSketchKeys() sketchKeys {
	return sketchKeys{
		MaxUp:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "max iter +")),
		MaxDown: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "max iter -")),
		CurUp:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "cur iter +")),
		CurDown: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "cur iter -")),
		CurFull: key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "show all")),
		Replay:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "replay")),
		Undo:    key.NewBinding(key.WithKeys("u", "backspace"), key.WithHelp("u", "remove vertex")),
		Clear:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Export:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export svg")),
		Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k sketchKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.MaxUp, k.CurUp, k.Replay, k.Help, k.Quit}
}

func (k sketchKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.MaxUp, k.MaxDown, k.CurUp, k.CurDown, k.CurFull},
		{k.Replay, k.Undo, k.Clear},
		{k.Export, k.Theme, k.Help, k.Quit},
	}
}

type animateKeys struct {
	Pause  key.Binding
	Export key.Binding
	Theme  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newAnimateKeys() animateKeys {
	return animateKeys{
		Pause:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause")),
		Export: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export svg")),
		Theme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k animateKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Export, k.Theme, k.Help, k.Quit}
}

func (k animateKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Pause, k.Export}, {k.Theme, k.Help, k.Quit}}
}
