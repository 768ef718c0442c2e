package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"github.com/Paintersrp/lcv/internal/problems"
)

type ListItem struct {
	problem problems.Problem
}

func (i ListItem) Title() string {
	if i.problem.DisplayName == "" {
		return i.problem.Name
	}
	return i.problem.DisplayName
}

func (i ListItem) Description() string {
	n := len(i.problem.Files)
	noun := "solutions"
	if n == 1 {
		noun = "solution"
	}
	description := fmt.Sprintf("#%d · %d %s", i.problem.Key(), n, noun)
	if langs := i.problem.Languages(); len(langs) != 0 {
		description += " (" + strings.Join(langs, ", ") + ")"
	}
	return description
}

func (i ListItem) FilterValue() string {
	return i.problem.Name
}

func toListItems(ps []problems.Problem) []list.Item {
	items := make([]list.Item, len(ps))
	for i, p := range ps {
		items[i] = ListItem{problem: p}
	}
	return items
}
