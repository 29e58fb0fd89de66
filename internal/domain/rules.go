package domain

// Rule is one predicate over a single intake field. Rules are immutable
// value objects supplied by catalog configuration, never edited at runtime.
//
// Value carries the comparison operand for equals/not_equals/contains;
// Values carries the membership set for the in operator. Truthiness
// operators ignore both.
type Rule struct {
	Field  string   `json:"field"`
	Op     Operator `json:"op"`
	Value  string   `json:"value,omitempty"`
	Values []string `json:"values,omitempty"`
}

// RuleGroup is a flat conjunction or disjunction of rules. Exactly one of
// All/Any should be present; the evaluator treats anything else as a
// malformed group that matches nothing. Groups do not nest.
// The all/any keys are never omitted when marshalling: an empty ALL branch
// is a deliberate catch-all and must survive storage round trips, which
// omitempty would silently erase.
type RuleGroup struct {
	All []Rule `json:"all"`
	Any []Rule `json:"any"`
}
