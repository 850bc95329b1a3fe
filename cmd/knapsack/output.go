package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/solver"
)

// Output formats.
const (
	formatAuto = "auto"
	formatText = "text"
	formatJSON = "json"
)

// resolvedFormat maps auto to text on terminals and JSON otherwise.
func (a *app) resolvedFormat() string {
	if a.format != formatAuto {
		return a.format
	}
	if f, ok := a.stdout.(*os.File); ok {
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			return formatText
		}
	}

	return formatJSON
}

// solveReport is the JSON document printed by solve.
type solveReport struct {
	RunID    string        `json:"run_id"`
	Capacity float64       `json:"capacity"`
	Items    int           `json:"items"`
	Result   solver.Result `json:"result"`
}

// compareRow is one algorithm's line in the compare output.
type compareRow struct {
	Algorithm solver.Algorithm `json:"algorithm"`
	Family    solver.Family    `json:"family"`
	Value     float64          `json:"value"`
	Weight    float64          `json:"weight"`
	Steps     int64            `json:"steps"`
	Gap       *float64         `json:"gap,omitempty"`
	ElapsedNS int64            `json:"elapsed_ns"`
	Error     string           `json:"error,omitempty"`
}

// compareReport is the JSON document printed by compare.
type compareReport struct {
	RunID    string       `json:"run_id"`
	Capacity float64      `json:"capacity"`
	Items    int          `json:"items"`
	Optimal  *float64     `json:"optimal,omitempty"`
	Verified bool         `json:"verified"`
	Rows     []compareRow `json:"rows"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// itemIDs joins the IDs of the selected items.
func itemIDs(items []core.Item) string {
	if len(items) == 0 {
		return "-"
	}
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}

	return strings.Join(ids, ", ")
}

// writeSolveText prints one result as labelled lines.
func writeSolveText(w io.Writer, rep solveReport) error {
	r := lipgloss.NewRenderer(w)
	label := r.NewStyle().Bold(true).Width(10)
	sol := rep.Result.Solution

	lines := [][2]string{
		{"algorithm", fmt.Sprintf("%s (%s)", rep.Result.Algorithm, rep.Result.Algorithm.Family())},
		{"value", formatFloat(sol.Value)},
		{"weight", formatFloat(sol.Weight) + " / " + formatFloat(rep.Capacity)},
		{"items", itemIDs(sol.Items)},
		{"steps", strconv.FormatInt(sol.Steps, 10)},
		{"elapsed", rep.Result.Elapsed.String()},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, label.Render(l[0])+l[1]); err != nil {
			return err
		}
	}

	return nil
}

// writeCompareText prints the comparison as a table.
func writeCompareText(w io.Writer, rep compareReport) error {
	r := lipgloss.NewRenderer(w)
	header := r.NewStyle().Bold(true).Padding(0, 1)
	cell := r.NewStyle().Padding(0, 1)
	failed := cell.Foreground(lipgloss.Color("9"))

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("algorithm", "family", "value", "weight", "steps", "gap", "elapsed", "error")
	for _, row := range rep.Rows {
		gap := "-"
		if row.Gap != nil {
			gap = strconv.FormatFloat(*row.Gap*100, 'f', 2, 64) + "%"
		}
		t.Row(row.Algorithm.String(), string(row.Family), formatFloat(row.Value), formatFloat(row.Weight),
			strconv.FormatInt(row.Steps, 10), gap, fmt.Sprintf("%dµs", row.ElapsedNS/1000), row.Error)
	}
	t.StyleFunc(func(i, _ int) lipgloss.Style {
		switch {
		case i == table.HeaderRow:
			return header
		case i >= 0 && i < len(rep.Rows) && rep.Rows[i].Error != "":
			return failed
		default:
			return cell
		}
	})

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	if rep.Optimal != nil {
		note := "best exact value"
		if rep.Verified {
			note = "verified optimum"
		}
		_, err := fmt.Fprintf(w, "%s: %s\n", note, formatFloat(*rep.Optimal))

		return err
	}

	return nil
}

// writeMetrics prints the registry in the Prometheus text exposition format.
func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}
