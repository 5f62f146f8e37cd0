package dto

import (
	"mime/multipart"

	"hotelier/internal/domains/room/model"
	"hotelier/shared"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Number        string                `json:"number"          validate:"required,max=20"`
	RoomType      string                `json:"room_type"       validate:"required,max=50"`
	Beds          model.BedConfig       `json:"beds"            validate:"omitempty"`
	Capacity      int                   `json:"capacity"        validate:"required,min=1"`
	PricePerNight float64               `json:"price_per_night" validate:"required,min=0"`
	Features      []string              `json:"features"        validate:"omitempty,dive,max=50"`
	Floor         int                   `json:"floor"           validate:"omitempty"`
	Image         *multipart.FileHeader `json:"image"           validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile     multipart.File        `json:"-"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	beds := c.Beds
	if beds == nil {
		beds = model.BedConfig{}
	}

	return model.Room{
		ID:            uuid.NewString(),
		Number:        c.Number,
		RoomType:      c.RoomType,
		Beds:          beds,
		Capacity:      c.Capacity,
		PricePerNight: c.PricePerNight,
		Features:      c.Features,
		Status:        model.StatusAvailable,
		Floor:         c.Floor,
		Image:         imageURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Number        string                `db:"number"          json:"number"                                                               validate:"omitempty,max=20"`
	RoomType      string                `db:"room_type"       json:"room_type"                                                            validate:"omitempty,max=50"`
	Beds          model.BedConfig       `db:"beds"            json:"beds"                                                                 validate:"omitempty"`
	Capacity      *int                  `db:"capacity"        json:"capacity"                                                             validate:"omitempty,min=1"`
	PricePerNight *float64              `db:"price_per_night" json:"price_per_night"                                                      validate:"omitempty,min=0"`
	Features      []string              `json:"features"      validate:"omitempty,dive,max=50"`
	Floor         *int                  `db:"floor"           json:"floor"                                                                validate:"omitempty"`
	Image         *multipart.FileHeader `json:"image"         validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile     multipart.File        `json:"-"`
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available occupied maintenance reserved"`
}

type RoomResponse struct {
	ID            string          `json:"id"`
	Number        string          `json:"number"`
	RoomType      string          `json:"room_type"`
	Beds          model.BedConfig `json:"beds"`
	Capacity      int             `json:"capacity"`
	PricePerNight float64         `json:"price_per_night"`
	Features      []string        `json:"features"`
	Status        string          `json:"status"`
	Floor         int             `json:"floor"`
	Image         string          `json:"image"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.RoomType = model.RoomType
	r.Beds = model.Beds
	r.Capacity = model.Capacity
	r.PricePerNight = model.PricePerNight
	r.Features = model.Features
	r.Status = model.Status
	r.Floor = model.Floor
	r.Image = model.Image
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
