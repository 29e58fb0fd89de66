package engine

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/groundwork/internal/domain"
)

// Evaluate applies one rule to the intake. Operator semantics follow the
// declared kind of the rule's field in domain.IntakeSchema; any combination
// the schema does not support returns false rather than an error. Catalog
// rows are externally edited content, so a bad rule must degrade to
// "no match", never break a profile build.
func Evaluate(in *domain.Intake, rule domain.Rule) bool {
	if in == nil {
		return false
	}
	kind, ok := domain.IntakeSchema[rule.Field]
	if !ok {
		return false
	}
	switch kind {
	case domain.KindString:
		v, _ := in.StringField(rule.Field)
		return evalString(v, rule)
	case domain.KindList:
		v, _ := in.ListField(rule.Field)
		return evalList(v, rule)
	case domain.KindBool:
		v, _ := in.BoolField(rule.Field)
		return evalBool(v, rule)
	}
	return false
}

func evalString(value string, rule domain.Rule) bool {
	switch rule.Op {
	case domain.OpEquals:
		return value == rule.Value
	case domain.OpNotEquals:
		return value != rule.Value
	case domain.OpContains:
		return strings.Contains(strings.ToLower(value), strings.ToLower(rule.Value))
	case domain.OpIn:
		for _, candidate := range rule.Values {
			if value == candidate {
				return true
			}
		}
		return false
	case domain.OpIsTruthy:
		return value != ""
	case domain.OpIsFalsy:
		return value == ""
	}
	return false
}

func evalList(value []string, rule domain.Rule) bool {
	switch rule.Op {
	case domain.OpEquals:
		return listsEqual(value, rule.Values)
	case domain.OpNotEquals:
		return !listsEqual(value, rule.Values)
	case domain.OpContains:
		for _, v := range value {
			if v == rule.Value {
				return true
			}
		}
		return false
	case domain.OpIn:
		// True when any element of the field is in the rule's set.
		for _, v := range value {
			for _, candidate := range rule.Values {
				if v == candidate {
					return true
				}
			}
		}
		return false
	case domain.OpIsTruthy:
		return len(value) > 0
	case domain.OpIsFalsy:
		return len(value) == 0
	}
	return false
}

func evalBool(value bool, rule domain.Rule) bool {
	switch rule.Op {
	case domain.OpEquals:
		return value == parseBoolOperand(rule.Value)
	case domain.OpNotEquals:
		return value != parseBoolOperand(rule.Value)
	case domain.OpIsTruthy:
		return value
	case domain.OpIsFalsy:
		return !value
	}
	return false
}

// parseBoolOperand coerces a rule operand to bool. Unparseable operands
// read as false, matching the evaluator's degrade-to-no-match policy.
func parseBoolOperand(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return b
}

// listsEqual compares two string slices element-wise, order-sensitive.
func listsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// EvaluateGroup evaluates a flat ALL/ANY rule group against the intake.
// A nil or malformed group (both or neither branch present) matches
// nothing. An empty ALL is vacuously true; an empty ANY is false.
func EvaluateGroup(in *domain.Intake, group *domain.RuleGroup) bool {
	if group == nil {
		return false
	}
	hasAll := group.All != nil
	hasAny := group.Any != nil
	if hasAll == hasAny {
		return false
	}
	if hasAll {
		for _, rule := range group.All {
			if !Evaluate(in, rule) {
				return false
			}
		}
		return true
	}
	for _, rule := range group.Any {
		if Evaluate(in, rule) {
			return true
		}
	}
	return false
}
