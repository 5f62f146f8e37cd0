package dto

import (
	"time"

	"hotelier/internal/domains/billing"
	"hotelier/internal/domains/booking/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CustomerID      string    `json:"customer_id"      validate:"required,uuid4"`
	RoomID          string    `json:"room_id"          validate:"required,uuid4"`
	CheckIn         time.Time `json:"check_in"         validate:"required"`
	CheckOut        time.Time `json:"check_out"        validate:"required"`
	Adults          int       `json:"adults"           validate:"required,min=1"`
	Children        int       `json:"children"         validate:"omitempty,min=0"`
	SpecialRequests string    `json:"special_requests" validate:"omitempty,max=500"`
}

func (c *CreateBookingRequest) ToModel(user string, bill billing.Bill) model.Booking {
	return model.Booking{
		ID:              uuid.NewString(),
		BillingID:       uuid.NewString(),
		CustomerID:      c.CustomerID,
		RoomID:          c.RoomID,
		CheckIn:         c.CheckIn.UTC(),
		CheckOut:        c.CheckOut.UTC(),
		Adults:          c.Adults,
		Children:        c.Children,
		SpecialRequests: c.SpecialRequests,
		Status:          model.StatusConfirmed,
		PaymentStatus:   model.PaymentStatusPending,
		Bill:            bill,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type BookingResponse struct {
	ID              string  `json:"id"`
	BillingID       string  `json:"billing_id"`
	CustomerID      string  `json:"customer_id"`
	RoomID          string  `json:"room_id"`
	CheckIn         string  `json:"check_in"`
	CheckOut        string  `json:"check_out"`
	Adults          int     `json:"adults"`
	Children        int     `json:"children"`
	SpecialRequests string  `json:"special_requests,omitempty"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"payment_status"`
	PaidAt          *string `json:"paid_at,omitempty"`
	CheckedOutAt    *string `json:"checked_out_at,omitempty"`
	Nights          int     `json:"nights"`
	PricePerNight   float64 `json:"price_per_night"`
	RoomCharge      float64 `json:"room_charge"`
	Tax             float64 `json:"tax"`
	Total           float64 `json:"total"`
	gDto.Metadata
}

func (b *BookingResponse) FromModel(model model.Booking) {
	b.ID = model.ID
	b.BillingID = model.BillingID
	b.CustomerID = model.CustomerID
	b.RoomID = model.RoomID
	b.CheckIn = timezone.Format(model.CheckIn, constant.DateFormat)
	b.CheckOut = timezone.Format(model.CheckOut, constant.DateFormat)
	b.Adults = model.Adults
	b.Children = model.Children
	b.SpecialRequests = model.SpecialRequests
	b.Status = model.Status
	b.PaymentStatus = model.PaymentStatus
	b.Nights = model.Nights
	b.PricePerNight = model.PricePerNight
	b.RoomCharge = model.RoomCharge
	b.Tax = model.Tax
	b.Total = model.Total

	if model.PaidAt != nil {
		paidAt := timezone.Format(*model.PaidAt, constant.DateFormat)
		b.PaidAt = &paidAt
	}

	if model.CheckedOutAt != nil {
		checkedOutAt := timezone.Format(*model.CheckedOutAt, constant.DateFormat)
		b.CheckedOutAt = &checkedOutAt
	}

	b.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (g *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		g.Bookings[i].FromModel(mod)
	}
}
