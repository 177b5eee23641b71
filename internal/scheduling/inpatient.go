package scheduling

import "time"

// Phase is the derived ward status of an admitted patient. It is never
// persisted; it is recomputed from the admission clock on every read so it
// cannot drift from wall-clock time.
type Phase string

const (
	PhasePreparingMedication Phase = "preparing_medication"
	PhaseAwaitingLab         Phase = "awaiting_lab"
	PhaseInTreatment         Phase = "in_treatment"
)

// InpatientPhase buckets the time since admission: under two hours the ward
// is preparing medication, two to four hours the patient is waiting on labs,
// from four hours on they are in treatment. now is explicit so the
// derivation stays deterministic under test.
func InpatientPhase(admissionTime, now time.Time) Phase {
	elapsed := now.Sub(admissionTime)
	switch {
	case elapsed < 2*time.Hour:
		return PhasePreparingMedication
	case elapsed < 4*time.Hour:
		return PhaseAwaitingLab
	default:
		return PhaseInTreatment
	}
}

// PhaseLabel returns the Thai label the dashboard shows for a phase.
func PhaseLabel(p Phase) string {
	switch p {
	case PhasePreparingMedication:
		return "เตรียมยา"
	case PhaseAwaitingLab:
		return "รอผลแลป"
	default:
		return "กำลังรักษา"
	}
}
