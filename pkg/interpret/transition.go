package interpret

import (
	"github.com/yijing-go/yijing/pkg/divination"
)

// Reconcile builds the figure whose changing lines turn hexagram source
// into hexagram target. Where the two polarity bits differ the line is
// old with the source's polarity, so transforming it lands on the
// target's; where they match the line is young.
//
// Postconditions are checked before returning: the figure must encode to
// source, and (when source != target) its transform must encode to
// target. A violation is an internal arithmetic bug and surfaces as
// *ReconcileError, never as a user input error.
func Reconcile(source, target int) (divination.Hexagram, error) {
	if source < 1 || source > 64 {
		return divination.Hexagram{}, &divination.OutOfRangeError{Value: source}
	}
	if target < 1 || target > 64 {
		return divination.Hexagram{}, &divination.OutOfRangeError{Value: target}
	}

	fromBits := source - 1
	toBits := target - 1

	var h divination.Hexagram
	for i := range h {
		polarity := divination.Yin
		if fromBits>>i&1 == 1 {
			polarity = divination.Yang
		}
		age := divination.Young
		if fromBits>>i&1 != toBits>>i&1 {
			age = divination.Old
		}
		h[i] = divination.Line{Age: age, Polarity: polarity}
	}

	if got := h.Number(); got != source {
		return divination.Hexagram{}, &divination.ReconcileError{Want: source, Got: got}
	}
	if source != target {
		if !h.HasChangingLines() {
			return divination.Hexagram{}, &divination.ReconcileError{Want: target, Got: source}
		}
		if got := h.Transform().Number(); got != target {
			return divination.Hexagram{}, &divination.ReconcileError{Want: target, Got: got}
		}
	}
	return h, nil
}
