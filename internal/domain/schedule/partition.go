package schedule

import (
	"cmp"
	"iter"
	"slices"
	"time"
)

// Interval is a working span of one day. Free is false for breaks.
type Interval struct {
	Start time.Time
	End   time.Time
	Free  bool
}

// Timeslot is the start of one generated slot and its availability.
type Timeslot struct {
	Start time.Time
	Free  bool
}

// Partition yields slot starts from iv.Start every step while the boundary is
// not after iv.End. The final boundary equal to iv.End is included, so a slot
// starting exactly at closing time is produced.
func Partition(iv Interval, step time.Duration) iter.Seq[Timeslot] {
	return func(yield func(Timeslot) bool) {
		if step <= 0 {
			return
		}
		for cur := iv.Start; !cur.After(iv.End); cur = cur.Add(step) {
			if !yield(Timeslot{Start: cur, Free: iv.Free}) {
				return
			}
		}
	}
}

// Merge combines partitioned intervals into one list ordered by start.
// When two parts share a start timestamp the part applied later wins, so a
// break that begins where the morning ends marks that slot as blocked and
// the afternoon start overrides the break end.
func Merge(parts ...[]Timeslot) []Timeslot {
	type ranked struct {
		slot  Timeslot
		order int
	}

	var all []ranked
	for i, p := range parts {
		for _, s := range p {
			all = append(all, ranked{slot: s, order: i})
		}
	}

	slices.SortStableFunc(all, func(a, b ranked) int {
		if c := a.slot.Start.Compare(b.slot.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.order, b.order)
	})

	out := make([]Timeslot, 0, len(all))
	for _, r := range all {
		if n := len(out); n > 0 && out[n-1].Start.Equal(r.slot.Start) {
			out[n-1] = r.slot
			continue
		}
		out = append(out, r.slot)
	}

	return out
}

// Timeslots parses a weekday schedule for date and cuts it into slots of
// intervalMinutes. A closed day yields no slots and no error.
func Timeslots(hours string, date time.Time, intervalMinutes int) ([]Timeslot, error) {
	boundaries, err := ParseOpeningHours(hours, date)
	if err != nil {
		return nil, err
	}
	if len(boundaries) == 0 {
		return nil, nil
	}

	if intervalMinutes <= 0 {
		return nil, ErrInvalidInterval
	}
	step := time.Duration(intervalMinutes) * time.Minute

	intervals := WorkingIntervals(boundaries)
	parts := make([][]Timeslot, 0, len(intervals))
	for _, iv := range intervals {
		parts = append(parts, slices.Collect(Partition(iv, step)))
	}

	return Merge(parts...), nil
}
