package browser

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/lcv/internal/display"
)

var (
	appStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0AF")).
			Background(lipgloss.Color("transparent")).
			Bold(true).
			Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#0AF")).
				Background(lipgloss.Color("#224")).
				Padding(0, 0)

	inputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#334455")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#0AF", Dark: "#0AF"}).
			Render

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E55")).
			Padding(1, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#667788"))
)

// viewerStyles are the frame styles of the viewer pane for one theme.
type viewerStyles struct {
	header lipgloss.Style
	meta   lipgloss.Style
	frame  lipgloss.Style
}

func stylesFor(t display.Theme) viewerStyles {
	if t == display.Dark {
		return viewerStyles{
			header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EEE")).Background(lipgloss.Color("#224")).Padding(0, 1),
			meta:   lipgloss.NewStyle().Foreground(lipgloss.Color("#8899AA")).Padding(0, 1),
			frame:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#334455")),
		}
	}
	return viewerStyles{
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#112")).Background(lipgloss.Color("#BDF")).Padding(0, 1),
		meta:   lipgloss.NewStyle().Foreground(lipgloss.Color("#556677")).Padding(0, 1),
		frame:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#99AABB")),
	}
}
