package browser

import "github.com/charmbracelet/bubbles/key"

type listKeyMap struct {
	search     key.Binding
	toggleSort key.Binding
	latest     key.Binding
	retry      key.Binding
	open       key.Binding
	quit       key.Binding
}

func newListKeyMap() *listKeyMap {
	return &listKeyMap{
		search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		toggleSort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		latest: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "latest"),
		),
		retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "open"),
		),
		quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

func (k listKeyMap) fullHelp() []key.Binding {
	return []key.Binding{k.search, k.toggleSort, k.latest, k.retry, k.open}
}

type searchKeyMap struct {
	leave key.Binding
}

func newSearchKeyMap() *searchKeyMap {
	return &searchKeyMap{
		leave: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("esc/↵", "done"),
		),
	}
}

type viewerKeyMap struct {
	next      key.Binding
	prev      key.Binding
	copy      key.Binding
	fontUp    key.Binding
	fontDown  key.Binding
	fontReset key.Binding
	theme     key.Binding
	close     key.Binding
}

func newViewerKeyMap() *viewerKeyMap {
	return &viewerKeyMap{
		next: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n", "next solution"),
		),
		prev: key.NewBinding(
			key.WithKeys("p", "left"),
			key.WithHelp("p", "prev solution"),
		),
		copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		fontUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "font up"),
		),
		fontDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "font down"),
		),
		fontReset: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "reset font"),
		),
		theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		close: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc", "close"),
		),
	}
}

func (k viewerKeyMap) help() []key.Binding {
	return []key.Binding{k.next, k.prev, k.copy, k.fontUp, k.fontDown, k.fontReset, k.theme, k.close}
}
