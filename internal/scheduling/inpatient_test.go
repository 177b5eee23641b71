package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInpatientPhaseBuckets(t *testing.T) {
	admitted := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)

	cases := []struct {
		elapsed time.Duration
		want    Phase
	}{
		{0, PhasePreparingMedication},
		{30 * time.Minute, PhasePreparingMedication},
		{2*time.Hour - time.Minute, PhasePreparingMedication},
		{2 * time.Hour, PhaseAwaitingLab}, // boundary: exactly 2h is already waiting on labs
		{3 * time.Hour, PhaseAwaitingLab},
		{4*time.Hour - time.Second, PhaseAwaitingLab},
		{4 * time.Hour, PhaseInTreatment}, // boundary: exactly 4h is in treatment
		{9 * time.Hour, PhaseInTreatment},
	}

	for _, tc := range cases {
		got := InpatientPhase(admitted, admitted.Add(tc.elapsed))
		assert.Equal(t, tc.want, got, "after %s", tc.elapsed)
	}
}

func TestPhaseLabels(t *testing.T) {
	assert.Equal(t, "เตรียมยา", PhaseLabel(PhasePreparingMedication))
	assert.Equal(t, "รอผลแลป", PhaseLabel(PhaseAwaitingLab))
	assert.Equal(t, "กำลังรักษา", PhaseLabel(PhaseInTreatment))
}
