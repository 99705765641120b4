package problem

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmatch/assignment"
)

// Pair is one matched (row, column) with its weight.
type Pair struct {
	Row      int     `yaml:"row"`
	Col      int     `yaml:"col"`
	RowLabel string  `yaml:"row_label,omitempty"`
	ColLabel string  `yaml:"col_label,omitempty"`
	Weight   float64 `yaml:"weight"`
}

// Report is the on-disk form of a solved problem.
type Report struct {
	Name        string  `yaml:"name,omitempty"`
	Objective   string  `yaml:"objective"`
	Size        int     `yaml:"size"`
	Total       float64 `yaml:"total"`
	DualUpdates int     `yaml:"dual_updates"`
	Pairs       []Pair  `yaml:"pairs"`
}

// NewReport combines the problem labels and weights with a solver result.
// Pairs are ordered by row.
func NewReport(p Problem, res assignment.Result) Report {
	r := Report{
		Name:        p.Name,
		Objective:   res.Objective.String(),
		Size:        len(res.Match),
		Total:       res.Total,
		DualUpdates: res.DualUpdates,
		Pairs:       make([]Pair, 0, len(res.RowToCol)),
	}
	for i, j := range res.RowToCol {
		r.Pairs = append(r.Pairs, Pair{
			Row:      i,
			Col:      j,
			RowLabel: label(p.Rows, i),
			ColLabel: label(p.Cols, j),
			Weight:   p.Weights[i][j],
		})
	}

	return r
}

// Encode writes r as a YAML document with two-space indentation.
func (r Report) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("problem: encode report: %w", err)
	}

	return enc.Close()
}
