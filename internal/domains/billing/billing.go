// Package billing computes the charge for a stay. The arithmetic is pure so
// it can be exercised without any infrastructure.
package billing

import (
	"math"
	"time"
)

// TaxRate is the fixed tax applied to the room charge. It is intentionally
// not configurable.
const TaxRate = 0.10

const hoursPerNight = 24

// Bill is the priced breakdown of a stay.
type Bill struct {
	Nights        int     `db:"nights"          json:"nights"`
	PricePerNight float64 `db:"price_per_night" json:"price_per_night"`
	RoomCharge    float64 `db:"room_charge"     json:"room_charge"`
	Tax           float64 `db:"tax"             json:"tax"`
	Total         float64 `db:"total"           json:"total"`
}

// Compute prices a stay. Nights are billed per started 24h block, so a 25
// hour stay bills two nights. Callers must reject non-positive spans before
// calling; Compute does not validate.
func Compute(checkIn, checkOut time.Time, pricePerNight float64) Bill {
	hours := checkOut.Sub(checkIn).Hours()
	nights := int(math.Ceil(hours / hoursPerNight))

	roomCharge := float64(nights) * pricePerNight
	tax := round2(roomCharge * TaxRate)

	return Bill{
		Nights:        nights,
		PricePerNight: pricePerNight,
		RoomCharge:    roomCharge,
		Tax:           tax,
		Total:         roomCharge + tax,
	}
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
