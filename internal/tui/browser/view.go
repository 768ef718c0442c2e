package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/Paintersrp/lcv/internal/constants"
	"github.com/Paintersrp/lcv/internal/viewer"
)

func (m Model) View() string {
	var body string
	if m.app.Viewer.IsOpen() {
		body = m.viewerView()
	} else {
		body = m.listView()
	}
	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, body, m.footer()))
}

func (m Model) listView() string {
	search := m.search.View()
	if m.width > 0 {
		search = inputStyle.Width(max(m.width-8, 10)).Render(search)
	} else {
		search = inputStyle.Render(search)
	}

	var content string
	switch {
	case m.app.Loading && len(m.app.Collection) == 0:
		content = fmt.Sprintf("%s %s", m.spinner.View(), constants.LoadingMessage)
	case m.app.Err != "":
		content = errorStyle.Render(m.app.Err + "\n\nPress r to retry.")
	case m.app.Empty():
		content = errorStyle.Render(constants.NoResultsMessage)
	default:
		content = m.list.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, search, content)
}

func (m Model) viewerView() string {
	v := m.app.Viewer
	styles := stylesFor(m.app.Theme)

	p, _ := v.Problem()
	f, _ := v.File()

	header := styles.header.Render(p.DisplayName)
	meta := styles.meta.Render(fmt.Sprintf(
		"%s · %d/%d · %s · %s",
		f.Name,
		v.Index()+1,
		len(p.Files),
		m.app.Theme,
		m.app.Font,
	))

	var content string
	if v.Phase() == viewer.Loading {
		content = fmt.Sprintf("%s %s", m.spinner.View(), v.Display())
	} else {
		content = m.viewport.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Center, header, meta),
		styles.frame.Render(content),
	)
}

func (m Model) footer() string {
	var parts []string
	if m.status != "" {
		parts = append(parts, statusStyle(m.status))
	} else if m.opts.Status != nil {
		if line := m.opts.Status(); line != "" {
			parts = append(parts, line)
		}
	}
	if m.app.Viewer.IsOpen() {
		parts = append(parts, helpLine(m.viewerKeys.help()))
	}

	line := strings.Join(parts, "  ")
	if m.width <= 0 {
		return line
	}

	h, _ := appStyle.GetFrameSize()
	return truncate.StringWithTail(line, uint(max(m.width-h, 1)), "…")
}

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}
