package loan

import "time"

const daysPerPeriod = 30

// DaysElapsed is the calendar-day difference between the loan date and now,
// ignoring time of day. It goes negative when the loan date lies in the
// future relative to now.
func (l *Loan) DaysElapsed(now time.Time) int {
	return daysBetween(l.LoanDate, now)
}

// Periods is the number of whole 30-day interest periods completed by now.
// Floor division: a loan younger than 30 days has completed zero periods,
// and a future-dated loan yields a negative count.
func (l *Loan) Periods(now time.Time) int {
	return floorDiv(l.DaysElapsed(now), daysPerPeriod)
}

// ValueAt returns the loan's present value at now: principal plus simple
// interest over whole completed periods. At now == loan date this is
// exactly the principal.
func (l *Loan) ValueAt(now time.Time) float64 {
	interest := l.Amount * (l.InterestRate / 100) * float64(l.Periods(now))
	return l.Amount + interest
}

// StatusAt classifies the loan by age: over 90 days overdue, over 60 due
// soon, otherwise active.
func (l *Loan) StatusAt(now time.Time) Status {
	days := l.DaysElapsed(now)
	switch {
	case days > 90:
		return StatusOverdue
	case days > 60:
		return StatusDueSoon
	default:
		return StatusActive
	}
}

func daysBetween(from, to time.Time) int {
	fy, fm, fd := from.UTC().Date()
	ty, tm, td := to.UTC().Date()
	f := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	t := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f) / (24 * time.Hour))
}

// floorDiv rounds toward negative infinity, unlike Go's native integer
// division which truncates toward zero.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
