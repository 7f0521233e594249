package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/desertthunder/ytpl/internal/formatter"
	"github.com/desertthunder/ytpl/internal/shared"
	"github.com/desertthunder/ytpl/internal/tasks"
)

const menuTitle string = "🎬 YouTube Playlist Exporter"

// Handler runs the selected projections and reports their outcome.
type Handler func(projections []formatter.Projection) *tasks.ExportResult

// MenuItem is one numbered menu choice.
type MenuItem struct {
	Key         string
	Label       string
	Projections []formatter.Projection // Empty for the exit choice
	Exit        bool
}

// MenuItems returns the eight menu choices: one per projection, then "Export ALL" and "Exit".
func MenuItems() []MenuItem {
	items := make([]MenuItem, 0, len(formatter.All())+2)
	for i, p := range formatter.All() {
		items = append(items, MenuItem{
			Key:         strconv.Itoa(i + 1),
			Label:       p.Description(),
			Projections: []formatter.Projection{p},
		})
	}

	items = append(items,
		MenuItem{Key: strconv.Itoa(len(items) + 1), Label: "Export ALL", Projections: formatter.All()},
		MenuItem{Key: strconv.Itoa(len(items) + 2), Label: "Exit", Exit: true},
	)
	return items
}

// ParseChoice matches a line of user input against the menu keys.
func ParseChoice(input string) (MenuItem, error) {
	input = strings.TrimSpace(input)
	for _, item := range MenuItems() {
		if item.Key == input {
			return item, nil
		}
	}
	return MenuItem{}, fmt.Errorf("%w: %q", shared.ErrInvalidChoice, input)
}

// RenderResult formats one status line per projection in result.
func RenderResult(p *Palette, result *tasks.ExportResult) []string {
	lines := make([]string, 0, len(result.Results))
	for _, res := range result.Results {
		if res.Err != nil {
			lines = append(lines, p.Err(fmt.Sprintf("❌ %s export failed: %v", res.Projection.Label(), res.Err)))
			continue
		}
		lines = append(lines, p.OK(fmt.Sprintf("✅ %s exported to %s", res.Projection.Label(), res.Path)))
	}
	return lines
}

// LineMenu is the numbered, line oriented interactive menu.
type LineMenu struct {
	in      *bufio.Scanner
	out     io.Writer
	handle  Handler
	palette *Palette
}

// NewLineMenu creates a menu reading choices from in and writing to out.
func NewLineMenu(in io.Reader, out io.Writer, handle Handler) *LineMenu {
	return &LineMenu{
		in:      bufio.NewScanner(in),
		out:     out,
		handle:  handle,
		palette: DefaultPalette(),
	}
}

// Run shows the menu until the exit choice is made or input ends.
//
// Invalid choices are reported and the menu is shown again. Failed exports are reported, never returned;
// only errors reading input or writing output end the loop with an error.
func (m *LineMenu) Run() error {
	items := MenuItems()
	for {
		if err := m.render(items); err != nil {
			return err
		}

		if !m.in.Scan() {
			if err := m.in.Err(); err != nil {
				return fmt.Errorf("failed to read choice: %w", err)
			}
			return m.println("")
		}

		item, err := ParseChoice(m.in.Text())
		if err != nil {
			if err := m.println(m.palette.Err("❌ Invalid choice.")); err != nil {
				return err
			}
			continue
		}

		if item.Exit {
			return m.println("👋 Exiting.")
		}

		for _, line := range RenderResult(m.palette, m.handle(item.Projections)) {
			if err := m.println(line); err != nil {
				return err
			}
		}
	}
}

func (m *LineMenu) render(items []MenuItem) error {
	var b strings.Builder
	b.WriteString("\n" + m.palette.Title(menuTitle) + "\n")
	for _, item := range items {
		fmt.Fprintf(&b, "%s. %s\n", item.Key, item.Label)
	}
	fmt.Fprintf(&b, "Choose an option (1-%d): ", len(items))

	if _, err := io.WriteString(m.out, b.String()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (m *LineMenu) println(s string) error {
	if _, err := io.WriteString(m.out, s+"\n"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
