// Package divination holds the core value types of a reading: lines,
// six-line hexagram figures and their canonical 1-64 numbering, the
// transformation of changing lines, and the three-coin caster.
//
// All types are immutable values; only the Caster carries state (its
// random source), scoped to a single invocation.
package divination
