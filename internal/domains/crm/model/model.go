package model

import (
	"time"
)

const (
	EntityGuest        = "guest"
	EntityBooking      = "booking"
	EntityNotification = "notification"
)

// Pub/sub topics. Every mutation of a collection publishes the full updated
// collection under its topic.
const (
	TopicGuests   = "guests"
	TopicBookings = "bookings"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusActive    = "active"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

const (
	RoomTypeStandard     = "Standard"
	RoomTypeDeluxe       = "Deluxe"
	RoomTypeSuite        = "Suite"
	RoomTypePresidential = "Presidential"
)

const (
	NotificationTypeBooking = "booking"
)

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Zip     string `json:"zip"`
}

type Preferences struct {
	RoomType        string `json:"room_type"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

// Guest is a person profile tracked for loyalty and preferences, independent
// of any single stay. TotalBookings and TotalSpent only grow as a side effect
// of booking creation, except through explicit administrative edits.
type Guest struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	Phone         string      `json:"phone"`
	Address       Address     `json:"address"`
	Preferences   Preferences `json:"preferences"`
	LoyaltyPoints int         `json:"loyalty_points"`
	TotalBookings int         `json:"total_bookings"`
	TotalSpent    float64     `json:"total_spent"`
	LastVisit     *time.Time  `json:"last_visit"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// Booking is associated to a Guest only by GuestEmail matching Guest.Email;
// no referential integrity is enforced and orphaned bookings are legal.
type Booking struct {
	ID              string    `json:"id"`
	GuestName       string    `json:"guest_name"`
	GuestEmail      string    `json:"guest_email"`
	GuestPhone      string    `json:"guest_phone"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	RoomType        string    `json:"room_type"`
	Guests          int       `json:"guests"`
	Status          string    `json:"status"`
	SpecialRequests string    `json:"special_requests,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type NotificationData struct {
	Booking   Booking   `json:"booking"`
	Guest     Guest     `json:"guest"`
	Conflicts []Booking `json:"conflicts,omitempty"`
}

type Notification struct {
	ID        string           `json:"id"`
	Type      string           `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	Read      bool             `json:"read"`
	Data      NotificationData `json:"data"`
}

// Snapshot is the durable form of the guest and booking collections, written
// wholesale on every mutation.
type Snapshot struct {
	Guests   []Guest   `json:"guests"`
	Bookings []Booking `json:"bookings"`
}

// Overlaps reports whether the two bookings occupy the same room type over
// intersecting [CheckIn, CheckOut) ranges. Touching boundaries (one check-out
// equal to the other check-in) do not overlap.
func (b Booking) Overlaps(other Booking) bool {
	if b.RoomType != other.RoomType {
		return false
	}

	return b.CheckIn.Before(other.CheckOut) && b.CheckOut.After(other.CheckIn)
}

// Nights is the billed night count, rounding partial days up.
func (b Booking) Nights() int {
	hours := b.CheckOut.Sub(b.CheckIn).Hours()
	if hours <= 0 {
		return 0
	}

	nights := int(hours) / 24
	if hours > float64(nights*24) {
		nights++
	}

	return nights
}
