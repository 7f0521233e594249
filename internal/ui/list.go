package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
)

var _ list.Item = menuItem{}

// menuItem wraps [MenuItem] to implement [list.Item].
type menuItem struct {
	item MenuItem
}

func (i menuItem) FilterValue() string { return i.item.Label }
func (i menuItem) Title() string       { return fmt.Sprintf("%s. %s", i.item.Key, i.item.Label) }
func (i menuItem) Description() string {
	switch {
	case i.item.Exit:
		return "Quit without exporting"
	case len(i.item.Projections) == 1:
		p := i.item.Projections[0]
		return fmt.Sprintf("%s • %s", p, p.Format())
	default:
		names := make([]string, len(i.item.Projections))
		for j, p := range i.item.Projections {
			names[j] = p.String()
		}
		return strings.Join(names, ", ")
	}
}

func menuListItems() []list.Item {
	items := MenuItems()
	out := make([]list.Item, len(items))
	for i, item := range items {
		out[i] = menuItem{item: item}
	}
	return out
}

