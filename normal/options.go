package normal

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
)

// ErrEmptyDomain is returned when an existential must be grounded over an empty set of constants.
var ErrEmptyDomain = errors.New("cannot ground existential over an empty domain")

// Options bound the resources used by a translation.
// A nil *Options, as well as zero values, mean no limit and the default logger.
type Options struct {
	// MaxGroundings is the maximum number of copies of its body a single existential can be
	// expanded into, counting the copies made by the existentials nested in that body.
	MaxGroundings int
	// MaxClauses is the maximum number of clauses a translation can produce,
	// including intermediate results.
	MaxClauses int
	// Logger receives debug traces of each pass.
	Logger *slog.Logger
}

func (o *Options) logger() *slog.Logger {
	if o == nil || o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

func (o *Options) maxGroundings() int {
	if o == nil {
		return 0
	}
	return o.MaxGroundings
}

func (o *Options) maxClauses() int {
	if o == nil {
		return 0
	}
	return o.MaxClauses
}

// A LimitError is returned when a translation would exceed one of the bounds set in Options.
type LimitError struct {
	Limit string // "groundings" or "clauses"
	Max   int    // The configured bound
	Size  int    // The size that was needed, or math.MaxInt if it overflowed
}

func (e *LimitError) Error() string {
	if e.Size == math.MaxInt {
		return fmt.Sprintf("%s limit exceeded: more than %d needed, %d allowed", e.Limit, math.MaxInt, e.Max)
	}
	return fmt.Sprintf("%s limit exceeded: %d needed, %d allowed", e.Limit, e.Size, e.Max)
}

func checkLimit(limit string, size, max int) error {
	if max > 0 && size > max {
		limitExceeded.WithLabelValues(limit).Inc()
		return &LimitError{Limit: limit, Max: max, Size: size}
	}
	return nil
}

// mulSat returns a*b, saturated at math.MaxInt. a and b must not be negative.
func mulSat(a, b int) int {
	if a != 0 && b > math.MaxInt/a {
		return math.MaxInt
	}
	return a * b
}
