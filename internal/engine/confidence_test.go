package engine

import (
	"testing"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/stretchr/testify/assert"
)

func fullIntake() *domain.Intake {
	return &domain.Intake{
		UserID:            "u1",
		EntityLegalForm:   "LLC",
		TaxClassification: "s_corp",
		StateCodes:        []string{"NC"},
		Industry:          "consulting",
		RevenueBracket:    "100k-250k",
		PayrollW2Bracket:  "1-3",
	}
}

func TestCalcConfidenceFloorCase(t *testing.T) {
	// Booleans always count as filled, so even an untouched intake carries
	// 3/9 completeness: 10 + round(15) = 25.
	got := CalcConfidence(domain.NewIntake("u1"), false, 0)
	assert.Equal(t, 25, got)
}

func TestCalcConfidenceCeiling(t *testing.T) {
	assert.Equal(t, 100, CalcConfidence(fullIntake(), true, 1.0))
}

func TestCalcConfidenceNilIntake(t *testing.T) {
	assert.Equal(t, 10, CalcConfidence(nil, false, 0))
	assert.Equal(t, 20, CalcConfidence(nil, true, 0))
}

func TestCalcConfidenceDecisionFlag(t *testing.T) {
	in := fullIntake()
	undecided := CalcConfidence(in, false, 0)
	decided := CalcConfidence(in, true, 0)
	assert.Equal(t, 10, decided-undecided)
}

func TestCalcConfidencePerTermRounding(t *testing.T) {
	// Each weighted term rounds independently before summation.
	// evidence 1/3: round(35/3) = round(11.67) = 12, not 11.
	in := fullIntake() // intake term: round(45) = 45
	assert.Equal(t, 10+45+12, CalcConfidence(in, false, 1.0/3.0))

	// evidence 2/3: round(70/3) = round(23.33) = 23.
	assert.Equal(t, 10+45+23, CalcConfidence(in, false, 2.0/3.0))

	// intake 7/9 filled: round(35) = 35.
	partial := fullIntake()
	partial.Industry = ""
	partial.RevenueBracket = ""
	assert.Equal(t, 10+35, CalcConfidence(partial, false, 0))
}

func TestCalcConfidenceClampsEvidenceFraction(t *testing.T) {
	in := domain.NewIntake("u1")
	assert.Equal(t, CalcConfidence(in, false, 1.0), CalcConfidence(in, false, 3.5), "fractions above 1 clamp")
	assert.Equal(t, CalcConfidence(in, false, 0), CalcConfidence(in, false, -2), "negative fractions clamp")
}

func TestCalcConfidenceAlwaysInRange(t *testing.T) {
	intakes := []*domain.Intake{nil, domain.NewIntake("u1"), fullIntake(), testIntake()}
	fracs := []float64{-1, 0, 0.25, 1.0 / 3.0, 0.5, 2.0 / 3.0, 0.99, 1, 2}
	for _, in := range intakes {
		for _, f := range fracs {
			for _, decided := range []bool{false, true} {
				got := CalcConfidence(in, decided, f)
				assert.GreaterOrEqual(t, got, 0)
				assert.LessOrEqual(t, got, 100)
			}
		}
	}
}
