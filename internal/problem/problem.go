// Package problem reads assignment instances from YAML (or JSON) files and
// writes solved reports back as YAML.
//
// A problem file looks like:
//
//	name: shift-plan
//	objective: min        # "max" (default) or "min"
//	epsilon: 0.000001     # optional tightness tolerance
//	rows: [ann, bob]      # optional labels, len == n
//	cols: [early, late]   # optional labels, len == n
//	weights:
//	  - [3, 5]
//	  - [6, 2]
//
// JSON is accepted as well since it is a subset of YAML.
package problem

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmatch/assignment"
)

// Sentinel errors for problem files.
var (
	// ErrEmpty is returned when the input holds no document.
	ErrEmpty = errors.New("problem: empty input")

	// ErrObjective is returned for an objective other than "max" or "min".
	ErrObjective = errors.New("problem: unknown objective")

	// ErrLabels is returned when a label list does not match the matrix order.
	ErrLabels = errors.New("problem: label count does not match matrix order")
)

// Problem is one assignment instance as stored on disk.
type Problem struct {
	Name    string      `yaml:"name,omitempty"`
	Goal    string      `yaml:"objective,omitempty"`
	Epsilon *float64    `yaml:"epsilon,omitempty"`
	Rows    []string    `yaml:"rows,omitempty"`
	Cols    []string    `yaml:"cols,omitempty"`
	Weights [][]float64 `yaml:"weights"`
}

// Decode reads a single problem document from r. Unknown keys are rejected
// so that typos such as "weight:" fail loudly instead of yielding n = 0.
func Decode(r io.Reader) (Problem, error) {
	var p Problem
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return Problem{}, ErrEmpty
		}
		return Problem{}, fmt.Errorf("problem: decode: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Problem{}, err
	}

	return p, nil
}

// Load opens path and decodes it.
func Load(path string) (Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return Problem{}, fmt.Errorf("problem: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Objective maps the objective field; empty means maximize.
func (p Problem) Objective() (assignment.Objective, error) {
	switch p.Goal {
	case "", "max", "maximize":
		return assignment.Maximize, nil
	case "min", "minimize":
		return assignment.Minimize, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrObjective, p.Goal)
	}
}

// Validate checks the file-level fields. Matrix shape and values are left to
// the solver, which owns those sentinels.
func (p Problem) Validate() error {
	if _, err := p.Objective(); err != nil {
		return err
	}
	n := len(p.Weights)
	if p.Rows != nil && len(p.Rows) != n {
		return fmt.Errorf("%w: %d row labels for order %d", ErrLabels, len(p.Rows), n)
	}
	if p.Cols != nil && len(p.Cols) != n {
		return fmt.Errorf("%w: %d column labels for order %d", ErrLabels, len(p.Cols), n)
	}

	return nil
}

// Options translates the file settings into solver options.
func (p Problem) Options() ([]assignment.Option, error) {
	obj, err := p.Objective()
	if err != nil {
		return nil, err
	}
	opts := []assignment.Option{assignment.WithObjective(obj)}
	if p.Epsilon != nil {
		opts = append(opts, assignment.WithEpsilon(*p.Epsilon))
	}

	return opts, nil
}

// label returns labels[i] when present.
func label(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}

	return ""
}
