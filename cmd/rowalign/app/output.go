package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/rowalign/grid"
	"github.com/katalvlaran/rowalign/rowmatch"
)

// Format is a report output format.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates an output format name ("" means text).
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", "table":
		return FormatText, nil
	case FormatText, FormatYAML, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want text, yaml or json)", s)
	}
}

// Record is one alignment record in report form; absent sides are omitted.
type Record struct {
	Type     string `yaml:"type" json:"type"`
	Original *int   `yaml:"original,omitempty" json:"original,omitempty"`
	Modified *int   `yaml:"modified,omitempty" json:"modified,omitempty"`
}

// Report is the output of one run.
type Report struct {
	Original   string           `yaml:"original" json:"original"`
	Modified   string           `yaml:"modified" json:"modified"`
	Strategy   string           `yaml:"strategy" json:"strategy"`
	Summary    rowmatch.Summary `yaml:"summary" json:"summary"`
	Alignments []Record         `yaml:"alignments" json:"alignments"`
}

// NewReport builds a Report from an alignment result.
func NewReport(original, modified string, opts grid.Options, alignments []grid.RowAlignment) Report {
	r := Report{
		Original:   original,
		Modified:   modified,
		Strategy:   opts.Strategy.String(),
		Summary:    rowmatch.Summarize(alignments),
		Alignments: make([]Record, len(alignments)),
	}
	for k, a := range alignments {
		rec := Record{Type: a.Type.String()}
		if a.HasOriginal() {
			o := a.OriginalIndex
			rec.Original = &o
		}
		if a.HasModified() {
			m := a.ModifiedIndex
			rec.Modified = &m
		}
		r.Alignments[k] = rec
	}

	return r
}

// Formatter writes a Report.
type Formatter interface {
	Format(w io.Writer, r Report) error
}

// NewFormatter returns the formatter for f.
func NewFormatter(f Format) Formatter {
	switch f {
	case FormatYAML:
		return yamlFormatter{}
	case FormatJSON:
		return jsonFormatter{indent: "  "}
	default:
		return textFormatter{}
	}
}

type textFormatter struct{}

// Format prints a table of records followed by a summary line.
func (textFormatter) Format(w io.Writer, r Report) error {
	table := tablewriter.NewTable(w)
	table.Header("#", "Type", "Original", "Modified")
	for k, rec := range r.Alignments {
		if err := table.Append(strconv.Itoa(k), rec.Type, index(rec.Original), index(rec.Modified)); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s: %d matched, %d added, %d removed\n",
		r.Strategy, r.Summary.Matched, r.Summary.Added, r.Summary.Removed)

	return err
}

func index(p *int) string {
	if p == nil {
		return "-"
	}

	return strconv.Itoa(*p)
}

type yamlFormatter struct{}

func (yamlFormatter) Format(w io.Writer, r Report) error {
	data, err := yaml.MarshalWithOptions(r, yaml.Indent(2), yaml.IndentSequence(false))
	if err != nil {
		return err
	}
	_, err = w.Write(data)

	return err
}

type jsonFormatter struct{ indent string }

func (f jsonFormatter) Format(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", f.indent)

	return enc.Encode(r)
}
