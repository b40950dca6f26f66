/*
Package domain contains the sweep expansion and combination engines.

It turns wedge declarations into concrete value axes, enumerates the
cross-product of all axes in a fixed odometer order, and derives the
deterministic, filesystem-safe names that tie generated artifacts back
to the parameter values that produced them. This package is kept free
of transport and template concerns.

# Key Entities

  - Axis: one varying (node, param) location and its expanded values.
  - Combination: one point in the cross-product, node -> param -> value.
  - CombinationIter: a restartable odometer over a fixed axis list.
*/
package domain
