package fixture

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/rowalign/grid"
)

// Case is one alignment scenario: two datasets, the options to align them
// with and the expected records in their String form.
type Case struct {
	Name             string   `yaml:"name"`
	Strategy         string   `yaml:"strategy"`
	Key              *int     `yaml:"key,omitempty"`
	IgnoreCase       bool     `yaml:"ignoreCase,omitempty"`
	IgnoreWhitespace bool     `yaml:"ignoreWhitespace,omitempty"`
	IgnoreColumns    []int    `yaml:"ignoreColumns,omitempty"`
	Original         [][]any  `yaml:"original"`
	Modified         [][]any  `yaml:"modified"`
	Want             []string `yaml:"want"`
}

// LoadCases reads a YAML list of cases from path.
func LoadCases(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %q: %w", path, err)
	}
	var cases []Case
	if err = yaml.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("fixture: decode cases %q: %w", path, err)
	}

	return cases, nil
}

// Options builds grid.Options for the case.
func (c Case) Options() (grid.Options, error) {
	opts := grid.DefaultOptions()
	if c.Strategy != "" {
		s, err := grid.ParseStrategy(c.Strategy)
		if err != nil {
			return opts, err
		}
		opts.Strategy = s
	}
	if c.Key != nil {
		opts.KeyColumnIndex = *c.Key
	}
	opts.IgnoreCase = c.IgnoreCase
	opts.IgnoreWhitespace = c.IgnoreWhitespace
	if len(c.IgnoreColumns) > 0 {
		opts.IgnoredColumns = grid.NewColumnSet(c.IgnoreColumns...)
	}

	return opts, nil
}

// Datasets converts the case's raw rows into grid rows.
func (c Case) Datasets() (original, modified []grid.Row, err error) {
	if original, err = Rows(c.Original); err != nil {
		return nil, nil, fmt.Errorf("case %q original: %w", c.Name, err)
	}
	if modified, err = Rows(c.Modified); err != nil {
		return nil, nil, fmt.Errorf("case %q modified: %w", c.Name, err)
	}

	return original, modified, nil
}
