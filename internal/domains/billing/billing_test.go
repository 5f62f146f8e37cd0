package billing_test

import (
	"testing"
	"time"

	"hotelier/internal/domains/billing"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		checkIn       time.Time
		checkOut      time.Time
		pricePerNight float64
		expected      billing.Bill
	}{
		{
			name:          "two night stay",
			checkIn:       time.Date(2025, 4, 10, 15, 0, 0, 0, time.UTC),
			checkOut:      time.Date(2025, 4, 12, 11, 0, 0, 0, time.UTC),
			pricePerNight: 120,
			expected: billing.Bill{
				Nights:        2,
				PricePerNight: 120,
				RoomCharge:    240,
				Tax:           24,
				Total:         264,
			},
		},
		{
			name:          "exactly 24 hours bills one night",
			checkIn:       time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC),
			checkOut:      time.Date(2025, 4, 11, 12, 0, 0, 0, time.UTC),
			pricePerNight: 100,
			expected: billing.Bill{
				Nights:        1,
				PricePerNight: 100,
				RoomCharge:    100,
				Tax:           10,
				Total:         110,
			},
		},
		{
			name:          "25 hours bills two nights",
			checkIn:       time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC),
			checkOut:      time.Date(2025, 4, 11, 13, 0, 0, 0, time.UTC),
			pricePerNight: 100,
			expected: billing.Bill{
				Nights:        2,
				PricePerNight: 100,
				RoomCharge:    200,
				Tax:           20,
				Total:         220,
			},
		},
		{
			name:          "short stay under one day bills one night",
			checkIn:       time.Date(2025, 4, 10, 14, 0, 0, 0, time.UTC),
			checkOut:      time.Date(2025, 4, 10, 20, 0, 0, 0, time.UTC),
			pricePerNight: 85.50,
			expected: billing.Bill{
				Nights:        1,
				PricePerNight: 85.50,
				RoomCharge:    85.50,
				Tax:           8.55,
				Total:         94.05,
			},
		},
		{
			name:          "tax rounded to two decimals",
			checkIn:       time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC),
			checkOut:      time.Date(2025, 4, 11, 12, 0, 0, 0, time.UTC),
			pricePerNight: 99.99,
			expected: billing.Bill{
				Nights:        1,
				PricePerNight: 99.99,
				RoomCharge:    99.99,
				Tax:           10,
				Total:         109.99,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			bill := billing.Compute(tc.checkIn, tc.checkOut, tc.pricePerNight)

			assert.Equal(t, tc.expected.Nights, bill.Nights)
			assert.InDelta(t, tc.expected.PricePerNight, bill.PricePerNight, 1e-9)
			assert.InDelta(t, tc.expected.RoomCharge, bill.RoomCharge, 1e-9)
			assert.InDelta(t, tc.expected.Tax, bill.Tax, 1e-9)
			assert.InDelta(t, tc.expected.Total, bill.Total, 1e-9)
			assert.InDelta(t, bill.RoomCharge+bill.Tax, bill.Total, 1e-9)
		})
	}
}
