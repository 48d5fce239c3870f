package attendance

import "time"

// ClockInStatus classifies a clock-in against the shift start plus the
// configured grace window. Late minutes count from the scheduled start, not
// from the end of the grace window.
func ClockInStatus(clockIn, shiftStart time.Time, grace time.Duration) (string, int) {
	if !clockIn.After(shiftStart.Add(grace)) {
		return StatusPresent, 0
	}
	late := int(clockIn.Sub(shiftStart).Minutes())
	return StatusLate, late
}

// DeriveDailyStatus computes the display status for a staff member's day.
//
// Precedence: a rejected record reads as absent no matter what was clocked;
// an approved leave covering the date reads as on_leave; no clock-in reads
// as absent; otherwise the record's own present/late classification stands.
func DeriveDailyStatus(rec *Attendance, onApprovedLeave bool) string {
	if rec != nil && rec.ApprovalStatus == ApprovalRejected {
		return StatusAbsent
	}
	if onApprovedLeave {
		return StatusOnLeave
	}
	if rec == nil || rec.ClockIn == nil {
		return StatusAbsent
	}
	if rec.Status == StatusLate {
		return StatusLate
	}
	return StatusPresent
}
