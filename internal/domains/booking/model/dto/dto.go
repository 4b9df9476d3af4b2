package dto

import (
	"larkspur/internal/domains/booking/model"
	"larkspur/shared"
	"larkspur/shared/constant"
	gDto "larkspur/shared/dto"
	gModel "larkspur/shared/model"
	"larkspur/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	GuestName       string `json:"guest_name"       validate:"required,max=100"`
	GuestEmail      string `json:"guest_email"      validate:"required,email,max=100"`
	GuestPhone      string `json:"guest_phone"      validate:"omitempty,max=20"`
	CheckIn         string `json:"check_in"         validate:"required"`
	CheckOut        string `json:"check_out"        validate:"required"`
	RoomType        string `json:"room_type"        validate:"required,max=100"`
	Guests          int    `json:"guests"           validate:"required,gte=1"`
	Status          string `json:"status"           validate:"omitempty,oneof=pending confirmed active completed cancelled"`
	SpecialRequests string `json:"special_requests" validate:"omitempty"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	checkIn, err := timezone.Parse(constant.DayFormat, c.CheckIn)
	if err != nil {
		return model.Booking{}, err
	}

	checkOut, err := timezone.Parse(constant.DayFormat, c.CheckOut)
	if err != nil {
		return model.Booking{}, err
	}

	status := "pending"
	if c.Status != "" {
		status = c.Status
	}

	return model.Booking{
		ID:              uuid.NewString(),
		GuestName:       c.GuestName,
		GuestEmail:      c.GuestEmail,
		GuestPhone:      c.GuestPhone,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		RoomType:        c.RoomType,
		Guests:          c.Guests,
		Status:          status,
		SpecialRequests: c.SpecialRequests,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateBookingRequest struct {
	GuestName       string `db:"guest_name"       json:"guest_name"       validate:"omitempty,max=100"`
	GuestEmail      string `db:"guest_email"      json:"guest_email"      validate:"omitempty,email,max=100"`
	GuestPhone      string `db:"guest_phone"      json:"guest_phone"      validate:"omitempty,max=20"`
	CheckIn         string `json:"check_in"       validate:"omitempty"`
	CheckOut        string `json:"check_out"      validate:"omitempty"`
	RoomType        string `db:"room_type"        json:"room_type"        validate:"omitempty,max=100"`
	Status          string `db:"status"           json:"status"           validate:"omitempty,oneof=pending confirmed active completed cancelled"`
	SpecialRequests string `db:"special_requests" json:"special_requests" validate:"omitempty"`
}

type BookingResponse struct {
	ID              string `json:"id"`
	GuestName       string `json:"guest_name"`
	GuestEmail      string `json:"guest_email"`
	GuestPhone      string `json:"guest_phone"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	RoomType        string `json:"room_type"`
	Guests          int    `json:"guests"`
	Status          string `json:"status"`
	SpecialRequests string `json:"special_requests"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.GuestPhone = model.GuestPhone
	r.CheckIn = model.CheckIn.Format(constant.DayFormat)
	r.CheckOut = model.CheckOut.Format(constant.DayFormat)
	r.RoomType = model.RoomType
	r.Guests = model.Guests
	r.Status = model.Status
	r.SpecialRequests = model.SpecialRequests
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
