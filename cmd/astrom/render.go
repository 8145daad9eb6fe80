package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// renderTable writes a title and a bordered table.
func renderTable(w io.Writer, title string, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(dimStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	fmt.Fprintln(w, titleStyle.Render(title))
	fmt.Fprintln(w, t.String())
}

// renderFields writes a title and a two column name/value table.
func renderFields(w io.Writer, title string, fields [][2]string) {
	rows := make([][]string, len(fields))
	for i, f := range fields {
		rows[i] = []string{f[0], f[1]}
	}
	renderTable(w, title, []string{"Quantity", "Value"}, rows)
}

func deg(v float64) string   { return fmt.Sprintf("%.6f°", v) }
func hours(v float64) string { return fmt.Sprintf("%.7fh", v) }
