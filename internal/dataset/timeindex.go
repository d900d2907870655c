package dataset

import (
	"errors"
	"fmt"
	"time"
)

// ErrIndexOutOfRange reports a slider position outside the time index.
// Hitting it is a caller bug: the slider's domain is derived from the index
// itself, so a correctly wired frontend can never send one.
var ErrIndexOutOfRange = errors.New("time index out of range")

// TimeIndex is the distinct, ascending set of timestamps present in the
// mobility table, addressed by integer positions 0..Len()-1. It is the
// domain of the dashboard's time slider and never changes after load.
type TimeIndex struct {
	times []time.Time
}

// NewTimeIndex wraps an already distinct, ascending list of timestamps.
func NewTimeIndex(times []time.Time) TimeIndex {
	return TimeIndex{times: times}
}

func (ti TimeIndex) Len() int {
	return len(ti.times)
}

// At resolves a slider position to its exact timestamp. Each position maps
// to one instant, not a time range.
func (ti TimeIndex) At(i int) (time.Time, error) {
	if i < 0 || i >= len(ti.times) {
		return time.Time{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(ti.times))
	}
	return ti.times[i], nil
}

// Times returns the indexed timestamps in ascending order. The slice is a
// copy; the index itself stays immutable.
func (ti TimeIndex) Times() []time.Time {
	out := make([]time.Time, len(ti.times))
	copy(out, ti.times)
	return out
}

// SlotLabel renders a slider mark for one timestamp. The data has three
// slots per calendar day, numbered the way the original dashboard did:
// 00:00 is (1), 08:00 is (2), anything later is (3).
func SlotLabel(t time.Time) string {
	switch t.Format("15:04") {
	case "00:00":
		return t.Format("02 Jan") + " (1)"
	case "08:00":
		return t.Format("02 Jan") + " (2)"
	default:
		return t.Format("02 Jan") + " (3)"
	}
}
