package dto

import (
	bookingModel "hotelier/internal/domains/booking/model"
	bookingDto "hotelier/internal/domains/booking/model/dto"
	"hotelier/internal/domains/customer/model"
	"hotelier/shared"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type CreateCustomerRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Email   string `json:"email"   validate:"required,email,max=100"`
	Phone   string `json:"phone"   validate:"omitempty,max=30"`
	Address string `json:"address" validate:"omitempty,max=255"`
}

func (c *CreateCustomerRequest) ToModel(user string) model.Customer {
	return model.Customer{
		ID:           uuid.NewString(),
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Address:      c.Address,
		CurrentGuest: false,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCustomerRequest struct {
	Name    string `db:"name"    json:"name"    validate:"omitempty,max=100"`
	Email   string `db:"email"   json:"email"   validate:"omitempty,email,max=100"`
	Phone   string `db:"phone"   json:"phone"   validate:"omitempty,max=30"`
	Address string `db:"address" json:"address" validate:"omitempty,max=255"`
}

type CustomerResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	CurrentGuest bool   `json:"current_guest"`
	gDto.Metadata
}

func (c *CustomerResponse) FromModel(model model.Customer) {
	c.ID = model.ID
	c.Name = model.Name
	c.Email = model.Email
	c.Phone = model.Phone
	c.Address = model.Address
	c.CurrentGuest = model.CurrentGuest
	c.Metadata.FromModel(model.Metadata)
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (g *GetCustomersResponse) FromModels(models []model.Customer, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		g.Customers[i].FromModel(mod)
	}
}

// BookingHistoryResponse is the customer's stay history, projected from the
// booking ledger at read time. There is no second copy to drift out of sync.
type BookingHistoryResponse struct {
	CustomerID string                       `json:"customer_id"`
	Bookings   []bookingDto.BookingResponse `json:"bookings"`
	TotalData  int                          `json:"total_data"`
}

func (b *BookingHistoryResponse) FromModels(customerID string, models []bookingModel.Booking) {
	b.CustomerID = customerID
	b.TotalData = len(models)

	b.Bookings = make([]bookingDto.BookingResponse, len(models))
	for i, mod := range models {
		b.Bookings[i].FromModel(mod)
	}
}
