package wcnf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A Clause is a weighted clause, where literals are non-null DIMACS integers.
type Clause struct {
	Weight int
	Lits   []int
}

// A Problem is the content of a WCNF file.
type Problem struct {
	NbVars  int
	Top     int            // Weight of hard clauses, 0 if none was specified
	Names   map[int]string // Names of variables, as found in comments
	Clauses []Clause
}

// Read parses a WCNF file and returns the corresponding problem.
// Comments of the form "c name=index" are used to retrieve variable names.
func Read(r io.Reader) (*Problem, error) {
	sc := bufio.NewScanner(r)
	pb := Problem{Names: make(map[int]string)}
	nbClauses := -1
	for sc.Scan() {
		line := sc.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "c":
			pb.parseComment(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "c")))
		case "p":
			if nbClauses != -1 {
				return nil, fmt.Errorf("duplicate header %q", line)
			}
			n, err := pb.parseHeader(fields)
			if err != nil {
				return nil, fmt.Errorf("could not parse header %q: %w", line, err)
			}
			nbClauses = n
		default:
			if nbClauses == -1 {
				return nil, fmt.Errorf("clause %q before header", line)
			}
			if err := pb.parseClause(fields); err != nil {
				return nil, fmt.Errorf("could not parse clause %q: %w", line, err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("could not parse problem: %w", err)
	}
	if nbClauses == -1 {
		return nil, fmt.Errorf("missing header")
	}
	if len(pb.Clauses) != nbClauses {
		return nil, fmt.Errorf("expected %d clauses, got %d", nbClauses, len(pb.Clauses))
	}
	return &pb, nil
}

func (pb *Problem) parseComment(text string) {
	i := strings.LastIndexByte(text, '=')
	if i <= 0 {
		return
	}
	idx, err := strconv.Atoi(text[i+1:])
	if err != nil || idx <= 0 {
		return
	}
	pb.Names[idx] = text[:i]
}

func (pb *Problem) parseHeader(fields []string) (int, error) {
	if len(fields) != 4 && len(fields) != 5 {
		return 0, fmt.Errorf("expected 4 or 5 fields, got %d", len(fields))
	}
	if fields[1] != "wcnf" {
		return 0, fmt.Errorf("invalid format %q", fields[1])
	}
	var err error
	pb.NbVars, err = strconv.Atoi(fields[2])
	if err != nil {
		return 0, fmt.Errorf("invalid number of vars %q: %w", fields[2], err)
	}
	if pb.NbVars < 0 {
		return 0, fmt.Errorf("negative number of vars %d", pb.NbVars)
	}
	nbClauses, err := strconv.Atoi(fields[3])
	if err != nil {
		return 0, fmt.Errorf("invalid number of clauses %q: %w", fields[3], err)
	}
	if nbClauses < 0 {
		return 0, fmt.Errorf("negative number of clauses %d", nbClauses)
	}
	pb.Clauses = make([]Clause, 0, nbClauses)
	if len(fields) == 5 {
		pb.Top, err = strconv.Atoi(fields[4])
		if err != nil {
			return 0, fmt.Errorf("invalid top weight %q: %w", fields[4], err)
		}
	}
	return nbClauses, nil
}

func (pb *Problem) parseClause(fields []string) error {
	if len(fields) < 2 {
		return fmt.Errorf("expected a weight and a terminating 0")
	}
	if fields[len(fields)-1] != "0" {
		return fmt.Errorf("missing terminating 0")
	}
	weight, err := strconv.Atoi(fields[0])
	if err != nil {
		return fmt.Errorf("invalid weight %q: %w", fields[0], err)
	}
	if weight <= 0 {
		return fmt.Errorf("non-positive weight %d", weight)
	}
	lits := make([]int, 0, len(fields)-2)
	for _, field := range fields[1 : len(fields)-1] {
		lit, err := strconv.Atoi(field)
		if err != nil {
			return fmt.Errorf("invalid literal %q: %w", field, err)
		}
		if lit == 0 || lit > pb.NbVars || -lit > pb.NbVars {
			return fmt.Errorf("literal %d out of range", lit)
		}
		lits = append(lits, lit)
	}
	pb.Clauses = append(pb.Clauses, Clause{Weight: weight, Lits: lits})
	return nil
}
