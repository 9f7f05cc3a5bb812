// Package ui provides styled terminal output for the farectl CLI, with a
// plain-text fallback for non-TTY output.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

type UI struct {
	IsTTY   bool
	NoColor bool
}

// KV is one row of a summary box.
type KV struct {
	Key   string
	Value string
}

var noColorEnv = os.Getenv("NO_COLOR") != ""

func New() *UI {
	return &UI{
		IsTTY:   term.IsTerminal(int(os.Stdout.Fd())),
		NoColor: noColorEnv,
	}
}

func (u *UI) SetNoColor(noColor bool) {
	u.NoColor = noColor
}

func (u *UI) shouldStyle() bool {
	return u.IsTTY && !u.NoColor
}

// Header renders a bordered header box.
func (u *UI) Header(title string) string {
	if !u.shouldStyle() {
		return fmt.Sprintf("=== %s ===", title)
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(0, 2).
		Render(title)
}

func (u *UI) Success(msg string) string {
	if !u.shouldStyle() {
		return "[OK] " + msg
	}
	return StyleSuccess.Render(SymbolSuccess+" ") + msg
}

func (u *UI) Error(msg string) string {
	if !u.shouldStyle() {
		return "[FAILED] " + msg
	}
	return StyleError.Render(SymbolError + " " + msg)
}

func (u *UI) Warning(msg string) string {
	if !u.shouldStyle() {
		return "[WARN] " + msg
	}
	return StyleWarning.Render(SymbolWarning + " " + msg)
}

func (u *UI) Muted(msg string) string {
	if !u.shouldStyle() {
		return msg
	}
	return StyleMuted.Render(msg)
}

// Change renders a signed percentage, green when cheaper.
func (u *UI) Change(pct float64) string {
	text := fmt.Sprintf("%+.1f%%", pct)
	if !u.shouldStyle() {
		return text
	}
	switch {
	case pct < 0:
		return StyleSuccess.Render(SymbolDown + " " + text)
	case pct > 0:
		return StyleWarning.Render(SymbolUp + " " + text)
	default:
		return StyleMuted.Render(text)
	}
}

// SummaryBox renders a titled key/value section.
func (u *UI) SummaryBox(title string, items []KV) string {
	if !u.shouldStyle() {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("\n=== %s ===\n", title))
		for _, item := range items {
			sb.WriteString(fmt.Sprintf("%-16s %s\n", item.Key+":", item.Value))
		}
		return sb.String()
	}

	maxKeyWidth := 0
	for _, item := range items {
		if len(item.Key) > maxKeyWidth {
			maxKeyWidth = len(item.Key)
		}
	}
	keyStyle := lipgloss.NewStyle().Foreground(ColorMuted).Width(maxKeyWidth + 2)
	valueStyle := lipgloss.NewStyle().Bold(true)

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "  "+keyStyle.Render(item.Key)+" "+valueStyle.Render(item.Value))
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess)
	boxStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(ColorSuccess).
		Padding(0, 1)
	return "\n" + titleStyle.Render("  "+title) + "\n" + boxStyle.Render(strings.Join(lines, "\n"))
}

// Table renders rows under a header line using fixed column widths.
func (u *UI) Table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	render := func(cells []string, style *lipgloss.Style) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			pad := widths[i] - lipgloss.Width(cell)
			if pad < 0 {
				pad = 0
			}
			parts[i] = cell + strings.Repeat(" ", pad)
		}
		line := strings.TrimRight(strings.Join(parts, "  "), " ")
		if style != nil && u.shouldStyle() {
			return style.Render(line)
		}
		return line
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	var sb strings.Builder
	sb.WriteString(render(headers, &header))
	sb.WriteString("\n")
	for _, row := range rows {
		sb.WriteString(render(row, nil))
		sb.WriteString("\n")
	}
	return sb.String()
}
