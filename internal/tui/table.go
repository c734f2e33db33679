package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const columnGap = 2

// renderTable lays rows out in columns sized to their widest cell. Columns that
// do not fit in maxWidth are dropped from the right; maxWidth 0 means unlimited.
func renderTable(theme Theme, header []string, rows [][]string, maxWidth int) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	visible := len(widths)
	if maxWidth > 0 {
		used := 0
		for i, w := range widths {
			if used+w > maxWidth && i > 0 {
				visible = i
				break
			}
			used += w + columnGap
		}
	}

	var b strings.Builder
	b.WriteString(renderRow(theme.Header, header, widths[:visible]))
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(renderRow(theme.Cell, row, widths[:visible]))
	}
	return b.String()
}

func renderRow(style lipgloss.Style, cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = style.Render(cell) + strings.Repeat(" ", w-lipgloss.Width(cell))
	}
	return strings.TrimRight(strings.Join(parts, strings.Repeat(" ", columnGap)), " ")
}
