package dto

import (
	"time"

	"hotelier/internal/domains/guest/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type CreateGuestRequest struct {
	CustomerID   string     `json:"customer_id"  validate:"required,uuid4"`
	Name         string     `json:"name"         validate:"required,max=100"`
	Email        string     `json:"email"        validate:"omitempty,email,max=100"`
	Phone        string     `json:"phone"        validate:"omitempty,max=30"`
	Relationship string     `json:"relationship" validate:"omitempty,max=50"`
	CheckIn      *time.Time `json:"check_in"     validate:"omitempty"`
	CheckOut     *time.Time `json:"check_out"    validate:"omitempty,gtfield=CheckIn"`
	IDType       string     `json:"id_type"      validate:"omitempty,max=30"`
	IDNumber     string     `json:"id_number"    validate:"omitempty,max=50"`
	Notes        string     `json:"notes"        validate:"omitempty,max=500"`
}

func (c *CreateGuestRequest) ToModel(user string) model.Guest {
	return model.Guest{
		ID:           uuid.NewString(),
		CustomerID:   c.CustomerID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Relationship: c.Relationship,
		CheckIn:      c.CheckIn,
		CheckOut:     c.CheckOut,
		IDType:       c.IDType,
		IDNumber:     c.IDNumber,
		Notes:        c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateGuestRequest struct {
	Name         string     `db:"name"         json:"name"         validate:"omitempty,max=100"`
	Email        string     `db:"email"        json:"email"        validate:"omitempty,email,max=100"`
	Phone        string     `db:"phone"        json:"phone"        validate:"omitempty,max=30"`
	Relationship string     `db:"relationship" json:"relationship" validate:"omitempty,max=50"`
	CheckIn      *time.Time `db:"check_in"     json:"check_in"     validate:"omitempty"`
	CheckOut     *time.Time `db:"check_out"    json:"check_out"    validate:"omitempty"`
	IDType       string     `db:"id_type"      json:"id_type"      validate:"omitempty,max=30"`
	IDNumber     string     `db:"id_number"    json:"id_number"    validate:"omitempty,max=50"`
	Notes        string     `db:"notes"        json:"notes"        validate:"omitempty,max=500"`
}

type GuestResponse struct {
	ID           string  `json:"id"`
	CustomerID   string  `json:"customer_id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Relationship string  `json:"relationship"`
	CheckIn      *string `json:"check_in,omitempty"`
	CheckOut     *string `json:"check_out,omitempty"`
	IDType       string  `json:"id_type"`
	IDNumber     string  `json:"id_number"`
	Notes        string  `json:"notes,omitempty"`
	gDto.Metadata
}

func (g *GuestResponse) FromModel(model model.Guest) {
	g.ID = model.ID
	g.CustomerID = model.CustomerID
	g.Name = model.Name
	g.Email = model.Email
	g.Phone = model.Phone
	g.Relationship = model.Relationship
	g.IDType = model.IDType
	g.IDNumber = model.IDNumber
	g.Notes = model.Notes

	if model.CheckIn != nil {
		checkIn := timezone.Format(*model.CheckIn, constant.DateFormat)
		g.CheckIn = &checkIn
	}

	if model.CheckOut != nil {
		checkOut := timezone.Format(*model.CheckOut, constant.DateFormat)
		g.CheckOut = &checkOut
	}

	g.Metadata.FromModel(model.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (g *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		g.Guests[i].FromModel(mod)
	}
}
