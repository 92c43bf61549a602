package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestDays(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"two full nights", date(2025, 1, 1), date(2025, 1, 3), 2},
		{"single night", date(2025, 1, 1), date(2025, 1, 2), 1},
		{"same instant floors to one", date(2025, 1, 1), date(2025, 1, 1), 1},
		{"inverted interval floors to one", date(2025, 1, 3), date(2025, 1, 1), 1},
		{"partial day rounds up", date(2025, 1, 1), date(2025, 1, 2).Add(6 * time.Hour), 2},
		{"just under a day still one", date(2025, 1, 1), date(2025, 1, 1).Add(23 * time.Hour), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Days(tt.from, tt.to))
		})
	}
}

func TestComputeCharges_ClosedStay(t *testing.T) {
	// Nightly rate 500,000; Jan 1 to Jan 3 is two nights.
	quote := ComputeCharges(500_000, date(2025, 1, 1), datePtr(2025, 1, 3), nil, date(2025, 2, 1))

	assert.Equal(t, int64(1_000_000), quote.RoomCharge)
	assert.Equal(t, int64(0), quote.ServiceCharge)
	assert.Equal(t, int64(1_000_000), quote.TotalAmount)
	assert.Equal(t, date(2025, 1, 3), *quote.EffectiveCheckOut)
}

func TestComputeCharges_OpenStaySettledSameDay(t *testing.T) {
	// No check-out on record; settling on the check-in day floors the
	// stay to a single night.
	asOf := date(2025, 1, 1)
	quote := ComputeCharges(500_000, date(2025, 1, 1), nil, nil, asOf)

	assert.Equal(t, int64(500_000), quote.RoomCharge)
	assert.Equal(t, int64(500_000), quote.TotalAmount)
	if assert.NotNil(t, quote.EffectiveCheckOut) {
		assert.Equal(t, asOf, *quote.EffectiveCheckOut)
	}
}

func TestComputeCharges_StayNotStarted(t *testing.T) {
	// Future check-in with no check-out: nothing has accrued yet.
	quote := ComputeCharges(500_000, date(2025, 1, 10), nil, nil, date(2025, 1, 1))

	assert.Equal(t, int64(0), quote.RoomCharge)
	assert.Equal(t, int64(0), quote.ServiceCharge)
	assert.Equal(t, int64(0), quote.TotalAmount)
	assert.Nil(t, quote.EffectiveCheckOut)
}

func TestComputeCharges_WithServices(t *testing.T) {
	items := []ServiceItem{
		// 200,000 x 2 for one day
		{UnitPrice: 200_000, Quantity: 2, StartDate: date(2025, 1, 1), EndDate: datePtr(2025, 1, 2)},
		// open-ended line counts as its start day only
		{UnitPrice: 100_000, Quantity: 1, StartDate: date(2025, 1, 1)},
	}

	quote := ComputeCharges(500_000, date(2025, 1, 1), datePtr(2025, 1, 3), items, date(2025, 2, 1))

	assert.Equal(t, int64(1_000_000), quote.RoomCharge)
	assert.Equal(t, int64(500_000), quote.ServiceCharge)
	assert.Equal(t, quote.RoomCharge+quote.ServiceCharge, quote.TotalAmount)
}

func TestItemCharge(t *testing.T) {
	tests := []struct {
		name string
		item ServiceItem
		want int64
	}{
		{
			"one day range",
			ServiceItem{UnitPrice: 200_000, Quantity: 2, StartDate: date(2025, 1, 1), EndDate: datePtr(2025, 1, 2)},
			400_000,
		},
		{
			"nil end date counts as one day",
			ServiceItem{UnitPrice: 150_000, Quantity: 1, StartDate: date(2025, 1, 1)},
			150_000,
		},
		{
			"multi day range",
			ServiceItem{UnitPrice: 100_000, Quantity: 3, StartDate: date(2025, 1, 1), EndDate: datePtr(2025, 1, 4)},
			900_000,
		},
		{
			"zero quantity skipped",
			ServiceItem{UnitPrice: 200_000, Quantity: 0, StartDate: date(2025, 1, 1)},
			0,
		},
		{
			"zero price skipped",
			ServiceItem{UnitPrice: 0, Quantity: 2, StartDate: date(2025, 1, 1)},
			0,
		},
		{
			"missing start date skipped",
			ServiceItem{UnitPrice: 200_000, Quantity: 2},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ItemCharge(tt.item))
		})
	}
}

func TestComputeCharges_Deterministic(t *testing.T) {
	items := []ServiceItem{
		{UnitPrice: 200_000, Quantity: 2, StartDate: date(2025, 1, 1), EndDate: datePtr(2025, 1, 2)},
	}

	first := ComputeCharges(500_000, date(2025, 1, 1), datePtr(2025, 1, 3), items, date(2025, 2, 1))
	second := ComputeCharges(500_000, date(2025, 1, 1), datePtr(2025, 1, 3), items, date(2025, 2, 1))

	assert.Equal(t, first, second)
}
