package model

// StepCursor tracks the current position in a recipe's step sequence for the
// paged step viewer. The cursor is forward-only and bounded to
// [0, stepCount-1]; it never wraps around.
type StepCursor struct {
	index int
	count int
}

// NewStepCursor creates a cursor over count steps, starting at index 0.
// A non-positive count yields an empty cursor that never advances.
func NewStepCursor(count int) *StepCursor {
	if count < 0 {
		count = 0
	}
	return &StepCursor{count: count}
}

// Index returns the current zero-based step index.
func (sc *StepCursor) Index() int {
	return sc.index
}

// Count returns the total number of steps.
func (sc *StepCursor) Count() int {
	return sc.count
}

// AtEnd returns true when the cursor sits on the last step, or when there
// are no steps at all.
func (sc *StepCursor) AtEnd() bool {
	return sc.count == 0 || sc.index >= sc.count-1
}

// Advance moves the cursor one step forward. It returns false when the
// cursor is already at the end and did not move.
func (sc *StepCursor) Advance() bool {
	if sc.AtEnd() {
		return false
	}
	sc.index++
	return true
}
