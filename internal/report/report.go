// Package report renders damage range results for humans and machines.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/rndtable/internal/game/damage"
)

// ErrUnknownFormat is returned by Write for an unsupported format.
var ErrUnknownFormat = errors.New("unknown report format")

// Supported formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Options tune text rendering. JSON and YAML output ignore them.
type Options struct {
	// Title is printed above the table, e.g. the weapon name.
	Title string
	// Probabilities renders each cell as a percentage of all shots.
	Probabilities bool
	// Color highlights the title and summary with ANSI codes.
	Color bool
}

// Write renders res to w in the given format.
//
// Postcondition: returns an error wrapping ErrUnknownFormat when format is
// not one of FormatText, FormatJSON, FormatYAML.
func Write(w io.Writer, format string, res damage.RangeResult, opts Options) error {
	switch format {
	case FormatText:
		return writeText(w, res, opts)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encoding yaml report: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

// WriteTrace renders a single shot trace in the given format.
func WriteTrace(w io.Writer, format string, tr damage.Trace) error {
	switch format {
	case FormatText:
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Pellet", "Index", "Draw", "Damage"})
		table.SetAutoFormatHeaders(false)
		table.SetAlignment(tablewriter.ALIGN_RIGHT)
		for i, p := range tr.Pellets {
			table.Append([]string{
				strconv.Itoa(i + 1),
				strconv.Itoa(p.Index),
				strconv.Itoa(int(p.Draw)),
				strconv.Itoa(p.Damage),
			})
		}
		table.SetFooter([]string{"", "", "Total", strconv.Itoa(tr.Total)})
		table.Render()
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tr)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tr); err != nil {
			return fmt.Errorf("encoding yaml trace: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

func writeText(w io.Writer, res damage.RangeResult, opts Options) error {
	title := opts.Title
	if title == "" {
		title = fmt.Sprintf("%d pellet(s)", res.Pellets)
	}
	if opts.Color {
		title = Colorize(Bold, title)
	}
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}

	header := []string{"Extra calls", "Max", "Mean", "StdDev"}
	for _, v := range res.PossibleDamageValues {
		header = append(header, strconv.Itoa(v))
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, r := range res.Results {
		dist := r.DamageDistribution
		row := []string{
			strconv.Itoa(r.ExtraCalls),
			strconv.Itoa(r.MaxDamage),
			strconv.FormatFloat(dist.Mean(), 'f', 2, 64),
			strconv.FormatFloat(dist.StdDev(), 'f', 2, 64),
		}
		for _, v := range res.PossibleDamageValues {
			row = append(row, cell(dist, v, opts.Probabilities))
		}
		table.Append(row)
	}
	table.Render()

	summary := fmt.Sprintf("total shots: %s", humanize.Comma(int64(res.TotalShots)))
	if opts.Color {
		summary = Colorize(Dim, summary)
	}
	_, err := fmt.Fprintln(w, summary)
	return err
}

func cell(dist damage.Distribution, v int, probabilities bool) string {
	if probabilities {
		return strconv.FormatFloat(100*dist.Probability(v), 'f', 2, 64) + "%"
	}
	return strconv.Itoa(dist[v])
}
