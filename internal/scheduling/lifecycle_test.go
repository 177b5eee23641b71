package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)

func TestCheckInStartsAdmissionClock(t *testing.T) {
	change, err := Plan(StatusScheduled, StatusCheckedIn, "", testNow)
	require.NoError(t, err)

	assert.Equal(t, StatusCheckedIn, change.Status)
	require.NotNil(t, change.AdmissionTime)
	assert.Equal(t, testNow, *change.AdmissionTime)
	assert.Nil(t, change.DischargeTime)
	assert.Nil(t, change.RescheduleReason)
}

func TestCompleteStampsDischargeTime(t *testing.T) {
	change, err := Plan(StatusCheckedIn, StatusCompleted, "", testNow)
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, change.Status)
	require.NotNil(t, change.DischargeTime)
	assert.Equal(t, testNow, *change.DischargeTime)
	assert.Nil(t, change.AdmissionTime)
}

func TestMissedAndRescheduledRequireReason(t *testing.T) {
	cases := []struct {
		current Status
		next    Status
	}{
		{StatusScheduled, StatusMissed},
		{StatusScheduled, StatusRescheduled},
		{StatusMissed, StatusRescheduled},
	}

	for _, tc := range cases {
		_, err := Plan(tc.current, tc.next, "", testNow)
		assert.ErrorIs(t, err, ErrReasonRequired, "%s -> %s without reason", tc.current, tc.next)

		change, err := Plan(tc.current, tc.next, "ไม่มาตามนัดหมาย", testNow)
		require.NoError(t, err)
		assert.Equal(t, tc.next, change.Status)
		require.NotNil(t, change.RescheduleReason)
		assert.Equal(t, "ไม่มาตามนัดหมาย", *change.RescheduleReason)
		assert.Nil(t, change.AdmissionTime)
		assert.Nil(t, change.DischargeTime)
	}
}

func TestRebookReturnsToScheduled(t *testing.T) {
	for _, current := range []Status{StatusMissed, StatusRescheduled} {
		change, err := Plan(current, StatusScheduled, "", testNow)
		require.NoError(t, err)
		assert.Equal(t, StatusScheduled, change.Status)
		assert.Nil(t, change.AdmissionTime)
		assert.Nil(t, change.DischargeTime)
		assert.Nil(t, change.RescheduleReason)
	}
}

func TestInvalidTransitions(t *testing.T) {
	cases := []struct {
		current Status
		next    Status
	}{
		{StatusScheduled, StatusCompleted}, // cannot complete without check-in
		{StatusCheckedIn, StatusScheduled},
		{StatusCheckedIn, StatusMissed},
		{StatusCheckedIn, StatusRescheduled},
		{StatusCompleted, StatusScheduled}, // completed is terminal
		{StatusCompleted, StatusCheckedIn},
		{StatusCompleted, StatusMissed},
		{StatusMissed, StatusCheckedIn},
		{StatusMissed, StatusCompleted},
		{StatusRescheduled, StatusCheckedIn},
		{StatusRescheduled, StatusCompleted},
		{StatusRescheduled, StatusMissed},
	}

	for _, tc := range cases {
		_, err := Plan(tc.current, tc.next, "some reason", testNow)
		assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", tc.current, tc.next)
	}
}

func TestUnknownStatusRejected(t *testing.T) {
	_, err := Plan(Status("pending"), StatusCheckedIn, "", testNow)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = Plan(StatusScheduled, Status("done"), "", testNow)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestSameStatusIsNoOp(t *testing.T) {
	for _, s := range []Status{StatusScheduled, StatusCheckedIn, StatusCompleted, StatusMissed, StatusRescheduled} {
		change, err := Plan(s, s, "", testNow)
		require.NoError(t, err)
		assert.Equal(t, s, change.Status)
		assert.Nil(t, change.AdmissionTime)
		assert.Nil(t, change.DischargeTime)
		assert.Nil(t, change.RescheduleReason)
	}
}
