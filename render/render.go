package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	panelStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("2")).
			Padding(0, 1)
)

// Console writes styled output.
type Console struct {
	out   io.Writer
	emoji bool
}

// NewConsole creates a console writing to out. emoji controls whether
// decorative emoji are included in status lines and panel titles.
func NewConsole(out io.Writer, emoji bool) *Console {
	return &Console{out: out, emoji: emoji}
}

// Printf writes unstyled output.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Successf writes a green status line.
func (c *Console) Successf(format string, args ...any) {
	c.statusf(successStyle, "✅", "✓", format, args...)
}

// Warnf writes a yellow status line.
func (c *Console) Warnf(format string, args ...any) {
	c.statusf(warnStyle, "⚠️", "!", format, args...)
}

// Errorf writes a red status line.
func (c *Console) Errorf(format string, args ...any) {
	c.statusf(errorStyle, "❌", "✗", format, args...)
}

func (c *Console) statusf(style lipgloss.Style, emoji, plain, format string, args ...any) {
	marker := plain
	if c.emoji {
		marker = emoji
	}
	fmt.Fprintln(c.out, style.Render(marker+" "+fmt.Sprintf(format, args...)))
}

// Panel writes body inside a bordered panel with a styled title.
func (c *Console) Panel(title, body string) {
	if c.emoji {
		title = "✨ " + title
	}
	fmt.Fprintln(c.out, titleStyle.Render(title))
	fmt.Fprintln(c.out, panelStyle.Render(strings.TrimSpace(body)))
}

// Table writes a bordered table with a bold header row.
func (c *Console) Table(title string, headers []string, rows [][]string) {
	if title != "" {
		fmt.Fprintln(c.out, titleStyle.Render(title))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	fmt.Fprintln(c.out, t.Render())
}
