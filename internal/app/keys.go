package app

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the global bindings. List navigation (j/k/g/G/ctrl+d/ctrl+u)
// is handled by the tracklist itself.
type keyMap struct {
	Quit        key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding
	Search      key.Binding
	Help        key.Binding
	Select      key.Binding
	Back        key.Binding
	TogglePause key.Binding
	Next        key.Binding
	Previous    key.Binding
	SeekForward key.Binding
	SeekBack    key.Binding
	Shuffle     key.Binding
	Repeat      key.Binding
	Theme       key.Binding
	Favorite    key.Binding
	Download    key.Binding
	AddTo       key.Binding
	Remove      key.Binding
	MoveDown    key.Binding
	MoveUp      key.Binding
	NewPlaylist key.Binding
	Rename      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		NextTab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Select:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "play/open")),
		Back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		TogglePause: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
		Next:        key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next")),
		Previous:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "previous")),
		SeekForward: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "+10s")),
		SeekBack:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "-10s")),
		Shuffle:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "shuffle")),
		Repeat:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "repeat")),
		Theme:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Favorite:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorite")),
		Download:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "download")),
		AddTo:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add to playlist")),
		Remove:      key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove")),
		MoveDown:    key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "move down")),
		MoveUp:      key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "move up")),
		NewPlaylist: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "new playlist")),
		Rename:      key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "rename playlist")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Select, k.TogglePause, k.Next, k.Favorite, k.Download, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Select, k.TogglePause, k.Next, k.Previous, k.SeekForward, k.SeekBack},
		{k.Shuffle, k.Repeat, k.Theme, k.Search, k.NextTab, k.PrevTab},
		{k.Favorite, k.Download, k.AddTo, k.Remove, k.MoveDown, k.MoveUp},
		{k.NewPlaylist, k.Rename, k.Back, k.Help, k.Quit},
	}
}
