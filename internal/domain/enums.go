package domain

// Operator identifies a predicate applied to one intake field.
type Operator string

const (
	OpEquals    Operator = "equals"
	OpNotEquals Operator = "not_equals"
	OpContains  Operator = "contains"
	OpIn        Operator = "in"
	OpIsTruthy  Operator = "is_truthy"
	OpIsFalsy   Operator = "is_falsy"
)

// ValidOperators is the canonical set of accepted operator strings.
var ValidOperators = map[string]bool{
	"equals": true, "not_equals": true, "contains": true,
	"in": true, "is_truthy": true, "is_falsy": true,
}

// Frequency describes how often a recurring action repeats.
type Frequency string

const (
	FreqMonthly   Frequency = "monthly"
	FreqQuarterly Frequency = "quarterly"
	FreqAnnual    Frequency = "annual"
)

// FieldKind is the declared type of an intake field, used by the rule
// evaluator to pick operator semantics at construction time instead of
// inspecting runtime values.
type FieldKind string

const (
	KindString FieldKind = "string"
	KindList   FieldKind = "list"
	KindBool   FieldKind = "bool"
)

type CadenceDay string

const (
	DayMonday    CadenceDay = "monday"
	DayTuesday   CadenceDay = "tuesday"
	DayWednesday CadenceDay = "wednesday"
	DayThursday  CadenceDay = "thursday"
	DayFriday    CadenceDay = "friday"
	DaySaturday  CadenceDay = "saturday"
	DaySunday    CadenceDay = "sunday"
)

// ValidCadenceDays is the canonical set of accepted cadence day strings.
var ValidCadenceDays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// AssessmentBand buckets an assessment score into a readiness stage.
type AssessmentBand string

const (
	BandFoundation AssessmentBand = "foundation"
	BandBuilding   AssessmentBand = "building"
	BandScaling    AssessmentBand = "scaling"
)
