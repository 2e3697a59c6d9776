package main

import (
	"fmt"
	"io"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/devnexus/devnexus/internal/tui/theme"
)

// renderTable draws rows under headers with the theme's table styles.
// styleCell may override the style of a body cell.
func renderTable(headers []string, rows [][]string, styleCell func(row, col int) *lipgloss.Style) string {
	s := theme.Current().S()
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.TableBorder).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.TableHeader
			}
			if styleCell != nil {
				if st := styleCell(row, col); st != nil {
					return *st
				}
			}
			return s.TableCell
		}).
		String()
}

// printSection writes a title line followed by body.
func printSection(w io.Writer, title, body string) {
	s := theme.Current().S()
	_, _ = fmt.Fprintln(w, s.HeaderTitle.Render(title))
	_, _ = fmt.Fprintln(w, body)
}

func formatPrice(p float64) string {
	return "$" + strconv.FormatFloat(p, 'f', -1, 64)
}
