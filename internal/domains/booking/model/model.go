package model

import (
	"time"

	"hotelier/internal/domains/billing"
	"hotelier/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldBillingID     = "billing_id"
	FieldCustomerID    = "customer_id"
	FieldRoomID        = "room_id"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
	FieldStatus        = "status"
	FieldPaymentStatus = "payment_status"
	FieldPaidAt        = "paid_at"
	FieldCheckedOutAt  = "checked_out_at"
)

const (
	StatusConfirmed  = "confirmed"
	StatusCheckedOut = "checked_out"

	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

type Booking struct {
	ID              string     `db:"id"`
	BillingID       string     `db:"billing_id"`
	CustomerID      string     `db:"customer_id"`
	RoomID          string     `db:"room_id"`
	CheckIn         time.Time  `db:"check_in"`
	CheckOut        time.Time  `db:"check_out"`
	Adults          int        `db:"adults"`
	Children        int        `db:"children"`
	SpecialRequests string     `db:"special_requests"`
	Status          string     `db:"status"`
	PaymentStatus   string     `db:"payment_status"`
	PaidAt          *time.Time `db:"paid_at"`
	CheckedOutAt    *time.Time `db:"checked_out_at"`
	billing.Bill
	model.Metadata
}
