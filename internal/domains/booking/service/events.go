package service

import (
	"context"

	"hotelier/infras/kafka"
	"hotelier/internal/domains/booking/model"
	"hotelier/shared/constant"
	"hotelier/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	EventBookingCreated    = "booking.created"
	EventBookingPaid       = "booking.paid"
	EventBookingCheckedOut = "booking.checked_out"
)

// BookingEvent is the payload published to the bookings topic on each
// lifecycle change.
type BookingEvent struct {
	Event      string  `json:"event"`
	BookingID  string  `json:"booking_id"`
	BillingID  string  `json:"billing_id"`
	CustomerID string  `json:"customer_id"`
	RoomID     string  `json:"room_id"`
	Total      float64 `json:"total"`
	OccurredAt string  `json:"occurred_at"`
}

// publishEvent emits a booking lifecycle event after the surrounding
// transaction has committed. Delivery is best effort; failures are logged
// and never fail the request.
func (s *serviceImpl) publishEvent(ctx context.Context, event string, booking model.Booking) {
	go func() {
		c := context.WithoutCancel(ctx)

		payload := BookingEvent{
			Event:      event,
			BookingID:  booking.ID,
			BillingID:  booking.BillingID,
			CustomerID: booking.CustomerID,
			RoomID:     booking.RoomID,
			Total:      booking.Total,
			OccurredAt: timezone.Format(timezone.Now(), constant.DateFormat),
		}

		err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.Bookings, kafka.Message{
			Key:   booking.ID,
			Value: payload,
		})
		if err != nil {
			log.Error().Err(err).Str("event", event).Str("booking_id", booking.ID).Msg("failed to publish booking event")
		}
	}()
}
