// Package pricing computes date-prorated room and service charges.
// Everything here is pure: same inputs, same outputs, no clock access.
package pricing

import (
	"time"
)

const day = 24 * time.Hour

// ServiceItem is one service line as seen by the pricing engine.
// A zero UnitPrice, Quantity, or StartDate marks the line incomplete;
// incomplete lines contribute zero and are skipped, not rejected.
type ServiceItem struct {
	UnitPrice int64 // per unit per day, smallest currency unit
	Quantity  int
	StartDate time.Time
	EndDate   *time.Time // nil = treated as equal to StartDate
}

// Quote is the result of a charge computation.
type Quote struct {
	RoomCharge        int64
	ServiceCharge     int64
	TotalAmount       int64
	EffectiveCheckOut *time.Time // nil when the stay has not started yet
}

// Days is the ceiling of the interval in whole days, floored at 1.
// A same-day or inverted interval still counts as one day.
func Days(from, to time.Time) int {
	diff := to.Sub(from)
	if diff <= 0 {
		return 1
	}
	days := int(diff / day)
	if diff%day != 0 {
		days++
	}
	return days
}

// ComputeCharges computes the room charge, service charge, and total for
// a stay. checkOut may be nil for an open-ended stay:
//   - check-in after asOf: the stay has not started, all charges are zero
//     and EffectiveCheckOut is nil (callers must not allow payment here);
//   - check-in on or before asOf: the stay is treated as running through
//     asOf, and EffectiveCheckOut is asOf so the caller can decide
//     whether to persist it.
func ComputeCharges(nightlyRate int64, checkIn time.Time, checkOut *time.Time, items []ServiceItem, asOf time.Time) Quote {
	effective := checkOut
	if effective == nil {
		if checkIn.After(asOf) {
			return Quote{}
		}
		at := asOf
		effective = &at
	}

	nights := Days(checkIn, *effective)
	roomCharge := nightlyRate * int64(nights)

	var serviceCharge int64
	for _, item := range items {
		serviceCharge += ItemCharge(item)
	}

	return Quote{
		RoomCharge:        roomCharge,
		ServiceCharge:     serviceCharge,
		TotalAmount:       roomCharge + serviceCharge,
		EffectiveCheckOut: effective,
	}
}

// ItemCharge prices a single service line. Incomplete lines are worth zero.
func ItemCharge(item ServiceItem) int64 {
	if item.UnitPrice <= 0 || item.Quantity <= 0 || item.StartDate.IsZero() {
		return 0
	}

	end := item.StartDate
	if item.EndDate != nil {
		end = *item.EndDate
	}

	days := Days(item.StartDate, end)
	return item.UnitPrice * int64(item.Quantity) * int64(days)
}
