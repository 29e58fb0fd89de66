package domain

import "strings"

// Intake holds the tax-planning questionnaire answers for one user.
// Every field has a meaningful zero value; absence is represented as an
// empty string, empty slice, or false, never as a pointer.
type Intake struct {
	UserID            string
	EntityLegalForm   string
	TaxClassification string
	StateCodes        []string
	Industry          string
	RevenueBracket    string
	PayrollW2Bracket  string
	HasInventory      bool
	MultiState        bool
	International     bool
}

// Intake field names as referenced by catalog rules.
const (
	FieldEntityLegalForm   = "entity_legal_form"
	FieldTaxClassification = "tax_classification"
	FieldStateCodes        = "state_codes"
	FieldIndustry          = "industry"
	FieldRevenueBracket    = "revenue_bracket"
	FieldPayrollW2Bracket  = "payroll_w2_bracket"
	FieldHasInventory      = "has_inventory"
	FieldMultiState        = "multi_state"
	FieldInternational     = "international"
)

// IntakeSchema maps each rule-addressable field name to its declared kind.
// The rule evaluator resolves operator semantics through this map; a field
// name outside it never matches.
var IntakeSchema = map[string]FieldKind{
	FieldEntityLegalForm:   KindString,
	FieldTaxClassification: KindString,
	FieldStateCodes:        KindList,
	FieldIndustry:          KindString,
	FieldRevenueBracket:    KindString,
	FieldPayrollW2Bracket:  KindString,
	FieldHasInventory:      KindBool,
	FieldMultiState:        KindBool,
	FieldInternational:     KindBool,
}

// TrackedFieldCount is the number of intake fields that count toward the
// completeness fraction in confidence scoring.
const TrackedFieldCount = 9

// NewIntake returns a defaulted intake for the given user.
func NewIntake(userID string) *Intake {
	return &Intake{
		UserID:     userID,
		StateCodes: []string{},
	}
}

// StringField returns the value of a string-kind field by name.
func (in *Intake) StringField(name string) (string, bool) {
	switch name {
	case FieldEntityLegalForm:
		return in.EntityLegalForm, true
	case FieldTaxClassification:
		return in.TaxClassification, true
	case FieldIndustry:
		return in.Industry, true
	case FieldRevenueBracket:
		return in.RevenueBracket, true
	case FieldPayrollW2Bracket:
		return in.PayrollW2Bracket, true
	}
	return "", false
}

// ListField returns the value of a list-kind field by name.
func (in *Intake) ListField(name string) ([]string, bool) {
	if name == FieldStateCodes {
		return in.StateCodes, true
	}
	return nil, false
}

// BoolField returns the value of a bool-kind field by name.
func (in *Intake) BoolField(name string) (bool, bool) {
	switch name {
	case FieldHasInventory:
		return in.HasInventory, true
	case FieldMultiState:
		return in.MultiState, true
	case FieldInternational:
		return in.International, true
	}
	return false, false
}

// FilledFieldCount reports how many tracked fields carry a value.
// Strings and lists count when non-empty after trimming; booleans always
// count because false is a real answer, not an omission.
func (in *Intake) FilledFieldCount() int {
	filled := 3 // the three boolean flags
	for _, s := range []string{
		in.EntityLegalForm, in.TaxClassification, in.Industry,
		in.RevenueBracket, in.PayrollW2Bracket,
	} {
		if strings.TrimSpace(s) != "" {
			filled++
		}
	}
	if len(in.StateCodes) > 0 {
		filled++
	}
	return filled
}
