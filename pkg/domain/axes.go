package domain

import (
	"fmt"

	"github.com/aretw0/wedgerun/pkg/schema"
)

// Key addresses one varying parameter on the job template.
type Key struct {
	Node  string
	Param string
}

// Axis pairs a parameter location with its expanded value list. Axes are
// immutable once built.
type Axis struct {
	Key    Key
	Values []any
}

// Combination maps node -> param -> value: one point in the cross-product
// of all axes. Each combination is independently owned; iteration never
// reuses or mutates a previously yielded one.
type Combination map[string]map[string]any

// BuildAxes expands every wedge declaration into an axis. Axis order is
// declaration order: node groups as declared, then each node's wedges in
// their declared order. Expansion failures carry the (node, param) that
// declared the bad wedge.
func BuildAxes(cfg *schema.SweepConfig) ([]Axis, error) {
	var axes []Axis
	for _, g := range cfg.ParamWedges {
		for _, w := range g.Entries {
			values, err := Expand(w.Spec, w.Kind)
			if err != nil {
				return nil, fmt.Errorf("wedge %s.%s: %w", g.Node, w.Param, err)
			}
			axes = append(axes, Axis{Key: Key{Node: g.Node, Param: w.Param}, Values: values})
		}
	}
	return axes, nil
}

// TotalCount returns the size of the cross-product without materializing
// it. Zero axes still count as one run.
func TotalCount(axes []Axis) int {
	total := 1
	for _, ax := range axes {
		total *= len(ax.Values)
	}
	return total
}

// CombinationIter walks the cross-product of a fixed axis list in
// odometer order: the last axis varies fastest. A fresh iterator starts
// over from the first combination.
type CombinationIter struct {
	axes []Axis
	idx  []int
	done bool
}

// Combinations returns a fresh iterator over the cross-product of axes.
// With no axes the iterator yields exactly one empty combination: a
// sweep with zero varying parameters still runs once.
func Combinations(axes []Axis) *CombinationIter {
	return &CombinationIter{
		axes: axes,
		idx:  make([]int, len(axes)),
	}
}

// Next returns the next combination, or false once the product is
// exhausted.
func (it *CombinationIter) Next() (Combination, bool) {
	if it.done {
		return nil, false
	}

	combo := make(Combination, len(it.axes))
	for i, ax := range it.axes {
		params, ok := combo[ax.Key.Node]
		if !ok {
			params = make(map[string]any)
			combo[ax.Key.Node] = params
		}
		params[ax.Key.Param] = ax.Values[it.idx[i]]
	}

	// Advance the odometer, last axis fastest.
	it.done = true
	for i := len(it.axes) - 1; i >= 0; i-- {
		it.idx[i]++
		if it.idx[i] < len(it.axes[i].Values) {
			it.done = false
			break
		}
		it.idx[i] = 0
	}
	if len(it.axes) == 0 {
		it.done = true
	}
	return combo, true
}
