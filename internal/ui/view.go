package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"scanfmt/internal/driver"
)

const (
	defaultWidth = 80
	labelWidth   = 14
	timeWidth    = 9
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	workingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	idleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

func (m *progressModel) View() string {
	if len(m.rows) == 0 {
		return ""
	}
	var b strings.Builder
	if m.closed {
		b.WriteString(titleStyle.Render("done: " + m.title))
	} else {
		b.WriteString(titleStyle.Render(m.spinner.View() + " " + m.title))
	}
	b.WriteString("\n\n")

	pathWidth := max(m.width-labelWidth-timeWidth-5, 20)
	for _, r := range m.rows {
		b.WriteString(renderRow(r, pathWidth))
		b.WriteByte('\n')
	}

	done, total := m.entries()
	fmt.Fprintf(&b, "\n%s\n", faintStyle.Render(fmt.Sprintf("%d/%d entries", done, total)))
	if m.closed {
		b.WriteString(m.bar.ViewAs(1))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteByte('\n')
	return b.String()
}

func renderRow(r row, pathWidth int) string {
	label := fmt.Sprintf("%*s", labelWidth, rowLabel(r))
	elapsed := ""
	if r.final() && r.elapsed > 0 {
		elapsed = formatElapsed(r.elapsed)
	}
	return fmt.Sprintf("  %s %s %s",
		statusStyle(r.status).Render(label),
		faintStyle.Render(fmt.Sprintf("%*s", timeWidth, elapsed)),
		truncate(r.path, pathWidth))
}

func rowLabel(r row) string {
	switch {
	case r.status == driver.StatusWorking && r.stage == driver.StageLex && r.total > 0:
		return fmt.Sprintf("lexing %d/%d", r.done, r.total)
	case r.status == driver.StatusWorking:
		return "loading"
	case r.status == "":
		return string(driver.StatusQueued)
	}
	return string(r.status)
}

func statusStyle(s driver.Status) lipgloss.Style {
	switch s {
	case driver.StatusDone:
		return doneStyle
	case driver.StatusError:
		return errorStyle
	case driver.StatusWorking:
		return workingStyle
	}
	return idleStyle
}

func formatElapsed(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}

// truncate shortens value to at most width display cells.
func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
