package seq

import (
	"time"

	"github.com/dateseq/dateseq/internal/dates"
)

// plan is a reconciled range: endpoints in walk order plus a step whose
// sign agrees with their relative positions.
type plan struct {
	start time.Time
	end   time.Time
	step  int64
}

// outOfRange reports whether d lies past the end in the direction of
// travel.
func (p plan) outOfRange(d time.Time) bool {
	return (p.step > 0 && d.After(p.end)) || (p.step < 0 && d.Before(p.end))
}

// reconcile derives the final (start, end, step) triple from the resolved
// parameters, or fails with one of the sentinel errors.
func reconcile(start, end time.Time, step, days int64, reverse bool) (plan, error) {
	if step == 0 {
		return plan{}, ErrInvalidIncrement
	}

	if reverse {
		step = -step
		days = -days
	}

	if days != 0 {
		// A day count requests a window of |days| calendar days starting
		// at start, so the derived end lands on the window's last day.
		span := days - 1
		if days < 0 {
			span = days + 1
		}
		derived, ok := dates.AddDays(start, span)
		if !ok {
			return plan{}, ErrIntegerOverflow
		}
		end = derived
	}

	// Counting down with a positive step or counting up with a negative
	// step cannot make progress; the endpoints imply the direction, so
	// flip the sign instead of failing.
	if (start.After(end) && step > 0) || (start.Before(end) && step < 0) {
		step = -step
	}

	p := plan{start: start, end: end, step: step}
	if p.outOfRange(start) {
		return plan{}, ErrDateOutOfRange
	}
	return p, nil
}

// emit walks the reconciled range, rendering each visited date. The walk
// includes end exactly when end is a whole number of steps from start and
// never overshoots; stepping off the representable calendar also ends the
// walk, since such a date is necessarily past end.
func emit(p plan, format string) []string {
	out := []string{dates.Format(format, p.start)}
	next := p.start
	for {
		n, ok := dates.AddDays(next, p.step)
		if !ok || p.outOfRange(n) {
			break
		}
		next = n
		out = append(out, dates.Format(format, next))
	}
	return out
}
