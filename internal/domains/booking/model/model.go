package model

import (
	"larkspur/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldGuestName       = "guest_name"
	FieldGuestEmail      = "guest_email"
	FieldGuestPhone      = "guest_phone"
	FieldCheckIn         = "check_in"
	FieldCheckOut        = "check_out"
	FieldRoomType        = "room_type"
	FieldGuests          = "guests"
	FieldStatus          = "status"
	FieldSpecialRequests = "special_requests"
	FieldCreatedBy       = "created_by"
)

type Booking struct {
	ID              string    `db:"id"`
	GuestName       string    `db:"guest_name"`
	GuestEmail      string    `db:"guest_email"`
	GuestPhone      string    `db:"guest_phone"`
	CheckIn         time.Time `db:"check_in"`
	CheckOut        time.Time `db:"check_out"`
	RoomType        string    `db:"room_type"`
	Guests          int       `db:"guests"`
	Status          string    `db:"status"`
	SpecialRequests string    `db:"special_requests"`
	model.Metadata
}
