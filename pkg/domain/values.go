package domain

import (
	"fmt"
	"math"

	"github.com/aretw0/wedgerun/pkg/schema"
)

// maxExpansionSteps bounds minmax generation so a degenerate declaration
// fails deterministically instead of looping.
const maxExpansionSteps = 100000

// integerSnap is how close a rounded float must be to an integer before
// it is coerced to one. Keeps generated name tokens stable: 3.0 and 3
// must always render identically.
const integerSnap = 1e-10

// CoerceNumeric rounds floats to 10 decimal digits and snaps
// near-integers to int64. Booleans, integers, and non-numeric values
// pass through unchanged. Every value about to be rendered into a name
// or compared for identity goes through this rule.
func CoerceNumeric(v any) any {
	switch n := v.(type) {
	case bool:
		return n
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		rounded := math.Round(n*1e10) / 1e10
		nearest := math.Round(rounded)
		if math.Abs(rounded-nearest) < integerSnap {
			return int64(nearest)
		}
		return rounded
	default:
		return v
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// Expand turns one wedge declaration into a concrete ordered value list.
//
// Explicit wedges return their declared values verbatim. Minmax wedges
// generate start, start+step, ... inclusive of stop up to a tolerance of
// |step| * 1e-9 in the direction of the step's sign. The tolerance is
// part of the naming contract: artifact names depend on the exact value
// set produced, so boundary inclusion must not be "fixed" to look nicer.
func Expand(spec []any, kind schema.WedgeKind) ([]any, error) {
	switch kind {
	case schema.WedgeExplicit:
		if len(spec) == 0 {
			return nil, fmt.Errorf("explicit wedge must contain at least one value: %w", ErrEmptyAxis)
		}
		return append([]any(nil), spec...), nil

	case schema.WedgeMinMax:
		if len(spec) != 3 {
			return nil, fmt.Errorf("minmax wedge expects [min, max, step], got %d element(s): %w", len(spec), ErrInvalidAxis)
		}
		start, okStart := asFloat(spec[0])
		stop, okStop := asFloat(spec[1])
		step, okStep := asFloat(spec[2])
		if !okStart || !okStop || !okStep {
			return nil, fmt.Errorf("minmax wedge bounds must be numeric: %w", ErrInvalidAxis)
		}
		if step == 0 {
			return nil, fmt.Errorf("minmax wedge step must be non-zero: %w", ErrInvalidAxis)
		}

		tolerance := math.Abs(step) * 1e-9
		values := []any{}
		current := start
		for {
			if step > 0 && current > stop+tolerance {
				break
			}
			if step < 0 && current < stop-tolerance {
				break
			}
			values = append(values, CoerceNumeric(current))
			current += step
			if len(values) > maxExpansionSteps {
				return nil, fmt.Errorf("minmax wedge [%v, %v, %v]: %w", spec[0], spec[1], spec[2], ErrAxisOverflow)
			}
		}
		if len(values) == 0 {
			return nil, fmt.Errorf("minmax wedge [%v, %v, %v] produced no values: %w", spec[0], spec[1], spec[2], ErrEmptyAxis)
		}
		return values, nil

	default:
		return nil, fmt.Errorf("unsupported wedge kind %q: %w", kind, ErrInvalidAxis)
	}
}
