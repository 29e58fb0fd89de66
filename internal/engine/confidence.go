package engine

import (
	"math"

	"github.com/alexanderramin/groundwork/internal/domain"
)

// Confidence score weights. Base + intake + decision + evidence = 100.
const (
	confidenceBase  = 10
	intakeWeight    = 45
	decisionWeight  = 10
	evidenceWeight  = 35
	confidenceCeil  = 100
	confidenceFloor = 0
)

// CalcConfidence scores how complete and decided a planning topic is, in
// [0,100]. Intake completeness contributes up to 45 points, a made
// decision 10, and the evidence checklist fraction up to 35, on a base of
// 10. Each weighted term is rounded independently before summing; rounding
// the final sum instead would shift boundary fractions like 1/3.
func CalcConfidence(in *domain.Intake, hasDecision bool, evidencePct float64) int {
	score := confidenceBase

	if in != nil {
		intakePct := float64(in.FilledFieldCount()) / float64(domain.TrackedFieldCount)
		score += int(math.Round(intakePct * intakeWeight))
	}
	if hasDecision {
		score += decisionWeight
	}
	score += int(math.Round(clampFrac(evidencePct) * evidenceWeight))

	if score > confidenceCeil {
		return confidenceCeil
	}
	if score < confidenceFloor {
		return confidenceFloor
	}
	return score
}

// clampFrac confines a caller-supplied fraction to [0,1]; NaN reads as 0.
func clampFrac(f float64) float64 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
