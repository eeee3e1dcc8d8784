package wcnf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/crillab/gomln/clause"
)

// ErrNegativeWeight is returned when writing a clause with a negative weight,
// which cannot be expressed in the WCNF format.
var ErrNegativeWeight = errors.New("negative weights are not supported in WCNF output")

// Write writes the WCNF version of clauses on w.
// Each weight is multiplied by precision and rounded to the closest integer.
// Clauses whose rounded weight is 0 are not written.
// All clauses must be ground, with a non-negative weight.
func Write(w io.Writer, clauses []clause.WeightedClause, precision float64) error {
	if precision <= 0 {
		return fmt.Errorf("invalid precision %g: must be positive", precision)
	}
	indices, names := index(clauses)
	var (
		lines []string
		sum   int
	)
	for _, c := range clauses {
		if !c.IsGround() {
			return fmt.Errorf("could not write clause %s: not ground", c)
		}
		if c.Weight < 0 {
			return fmt.Errorf("could not write clause %s: %w", c, ErrNegativeWeight)
		}
		weight := math.Round(c.Weight * precision)
		if weight > math.MaxInt32 {
			return fmt.Errorf("could not write clause %s: weight too large for precision %g", c, precision)
		}
		if weight == 0 {
			continue
		}
		sum += int(weight)
		fields := make([]string, 0, len(c.Literals)+2)
		fields = append(fields, strconv.Itoa(int(weight)))
		for i, atom := range c.Literals {
			lit := indices[atom.String()]
			if c.Negations[i] {
				lit = -lit
			}
			fields = append(fields, strconv.Itoa(lit))
		}
		fields = append(fields, "0")
		lines = append(lines, strings.Join(fields, " "))
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "p wcnf %d %d %d\n", len(names), len(lines), sum+1)
	for i, name := range names {
		fmt.Fprintf(bw, "c %s=%d\n", name, i+1)
	}
	for _, line := range lines {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("could not write WCNF output: %w", err)
	}
	return nil
}

// index associates each ground atom of clauses with its DIMACS index.
// It returns the association and the sorted list of atoms.
func index(clauses []clause.WeightedClause) (map[string]int, []string) {
	indices := make(map[string]int)
	var names []string
	for _, c := range clauses {
		for _, atom := range c.Literals {
			name := atom.String()
			if _, ok := indices[name]; !ok {
				indices[name] = 0
				names = append(names, name)
			}
		}
	}
	slices.Sort(names)
	for i, name := range names {
		indices[name] = i + 1
	}
	return indices, names
}
