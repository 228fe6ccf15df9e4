package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-runewidth"

	"github.com/Digital-Shane/tvdbxml/internal/model"
)

var (
	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3a6b4a")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ba8c0"))
)

// Column widths for free text.
const (
	descWidth = 60
	urlWidth  = 48
)

// view is a command result: the value printed as JSON and its table form.
type view struct {
	data  any
	table func(w io.Writer)
}

func (v view) print(w io.Writer, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v.data)
	}
	v.table(w)
	return nil
}

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault

	header := make(table.Row, columns)
	for i := range columns {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := range columns {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := range columns {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func heading(w io.Writer, title string, count int) {
	fmt.Fprintln(w, headingStyle.Render(title)+" "+mutedStyle.Render(fmt.Sprintf("(%d)", count)))
}

// truncate collapses whitespace and cuts s to width terminal cells.
func truncate(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	return runewidth.Truncate(s, width, "…")
}

// num renders absent numbers as an empty cell.
func num(v int) string {
	if v == model.NotPresent {
		return ""
	}
	return strconv.Itoa(v)
}

func rating(v float32) string {
	if v < 0 {
		return ""
	}
	return strconv.FormatFloat(float64(v), 'f', 1, 32)
}

func list(v []string) string {
	return strings.Join(v, ", ")
}

// itemCells renders the shared Item view of any record.
func itemCells(it model.Item) []string {
	return []string{
		truncate(it.TitleText(), descWidth/2),
		truncate(it.DescText(), descWidth),
		truncate(it.ImageURL(), urlWidth),
	}
}

// detailTable renders one record as field/value pairs.
func detailTable(w io.Writer, title string, pairs [][2]string) {
	fmt.Fprintln(w, headingStyle.Render(title))
	rows := make([][]string, 0, len(pairs))
	for _, p := range pairs {
		if p[1] == "" {
			continue
		}
		rows = append(rows, []string{p[0], p[1]})
	}
	fmt.Fprintln(w, renderTable([]string{"Field", "Value"}, rows, nil))
}
