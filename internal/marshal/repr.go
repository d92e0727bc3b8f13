package marshal

import "github.com/mabhi256/marshal48/internal/marshal/model"

// defaultReprBudget is Repr's rendering budget (see model.ReprCtx for what
// it counts) when the caller has no stronger opinion.
const defaultReprBudget = 4096

// Repr renders v as a bounded, cycle-safe debug string: a "pretty-printed"
// view of a decoded value.
func Repr(v *model.Value) string {
	return v.Repr(model.NewReprCtx(defaultReprBudget))
}

// ReprWithBudget is Repr with an explicit budget, for callers (the
// inspector CLI, the explorer TUI) that render into a fixed-width pane.
func ReprWithBudget(v *model.Value, budget int) string {
	return v.Repr(model.NewReprCtx(budget))
}
