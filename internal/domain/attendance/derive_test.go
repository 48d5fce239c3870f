package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockInStatus(t *testing.T) {
	shiftStart := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)
	grace := 15 * time.Minute

	cases := []struct {
		name     string
		clockIn  time.Time
		want     string
		wantLate int
	}{
		{"before shift start", shiftStart.Add(-30 * time.Minute), StatusPresent, 0},
		{"exactly on time", shiftStart, StatusPresent, 0},
		{"inside grace", shiftStart.Add(10 * time.Minute), StatusPresent, 0},
		{"exactly at grace limit", shiftStart.Add(grace), StatusPresent, 0},
		{"one minute past grace", shiftStart.Add(16 * time.Minute), StatusLate, 16},
		{"an hour late", shiftStart.Add(60 * time.Minute), StatusLate, 60},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			status, late := ClockInStatus(c.clockIn, shiftStart, grace)
			assert.Equal(t, c.want, status)
			assert.Equal(t, c.wantLate, late)
		})
	}
}

func TestDeriveDailyStatus(t *testing.T) {
	in := time.Date(2026, 3, 2, 7, 5, 0, 0, time.UTC)
	out := in.Add(9 * time.Hour)

	fullDay := &Attendance{
		ClockIn:        &in,
		ClockOut:       &out,
		Status:         StatusPresent,
		ApprovalStatus: ApprovalPending,
	}
	lateDay := &Attendance{
		ClockIn:        &in,
		Status:         StatusLate,
		ApprovalStatus: ApprovalApproved,
	}
	rejected := &Attendance{
		ClockIn:        &in,
		ClockOut:       &out,
		Status:         StatusPresent,
		ApprovalStatus: ApprovalRejected,
	}

	cases := []struct {
		name            string
		rec             *Attendance
		onApprovedLeave bool
		want            string
	}{
		{"no record, no leave", nil, false, StatusAbsent},
		{"no record, approved leave", nil, true, StatusOnLeave},
		{"present record", fullDay, false, StatusPresent},
		{"late record", lateDay, false, StatusLate},
		{"rejection forces absent despite full clocks", rejected, false, StatusAbsent},
		{"rejection outranks approved leave", rejected, true, StatusAbsent},
		{"approved leave outranks a pending record", fullDay, true, StatusOnLeave},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, DeriveDailyStatus(c.rec, c.onApprovedLeave))
		})
	}
}
