package dto

import (
	"strconv"

	"larkspur/internal/domains/crm/model"
	"larkspur/shared/constant"
	"larkspur/shared/timezone"
)

type AddressRequest struct {
	Street  string `json:"street"  validate:"omitempty,max=200"`
	City    string `json:"city"    validate:"omitempty,max=100"`
	State   string `json:"state"   validate:"omitempty,max=100"`
	Country string `json:"country" validate:"omitempty,max=100"`
	Zip     string `json:"zip"     validate:"omitempty,max=20"`
}

func (a AddressRequest) ToModel() model.Address {
	return model.Address{
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		Country: a.Country,
		Zip:     a.Zip,
	}
}

type PreferencesRequest struct {
	RoomType        string `json:"room_type"        validate:"omitempty,max=100"`
	SpecialRequests string `json:"special_requests" validate:"omitempty"`
}

type CreateGuestRequest struct {
	Name          string             `json:"name"           validate:"required,max=100"`
	Email         string             `json:"email"          validate:"required,email,max=100"`
	Phone         string             `json:"phone"          validate:"omitempty,max=20"`
	Address       AddressRequest     `json:"address"`
	Preferences   PreferencesRequest `json:"preferences"`
	LoyaltyPoints int                `json:"loyalty_points" validate:"omitempty,gte=0"`
}

func (c *CreateGuestRequest) ToModel() model.Guest {
	return model.Guest{
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address.ToModel(),
		Preferences: model.Preferences{
			RoomType:        c.Preferences.RoomType,
			SpecialRequests: c.Preferences.SpecialRequests,
		},
		LoyaltyPoints: c.LoyaltyPoints,
	}
}

// UpdateGuestRequest is a merge patch; nil fields are left untouched.
type UpdateGuestRequest struct {
	Name          *string             `json:"name"           validate:"omitempty,max=100"`
	Email         *string             `json:"email"          validate:"omitempty,email,max=100"`
	Phone         *string             `json:"phone"          validate:"omitempty,max=20"`
	Address       *AddressRequest     `json:"address"`
	Preferences   *PreferencesRequest `json:"preferences"`
	LoyaltyPoints *int                `json:"loyalty_points" validate:"omitempty,gte=0"`
	TotalBookings *int                `json:"total_bookings" validate:"omitempty,gte=0"`
	TotalSpent    *float64            `json:"total_spent"    validate:"omitempty,gte=0"`
}

// Apply merges the set fields into the guest.
func (u *UpdateGuestRequest) Apply(guest *model.Guest) {
	if u.Name != nil {
		guest.Name = *u.Name
	}

	if u.Email != nil {
		guest.Email = *u.Email
	}

	if u.Phone != nil {
		guest.Phone = *u.Phone
	}

	if u.Address != nil {
		guest.Address = u.Address.ToModel()
	}

	if u.Preferences != nil {
		guest.Preferences = model.Preferences{
			RoomType:        u.Preferences.RoomType,
			SpecialRequests: u.Preferences.SpecialRequests,
		}
	}

	if u.LoyaltyPoints != nil {
		guest.LoyaltyPoints = *u.LoyaltyPoints
	}

	if u.TotalBookings != nil {
		guest.TotalBookings = *u.TotalBookings
	}

	if u.TotalSpent != nil {
		guest.TotalSpent = *u.TotalSpent
	}
}

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

func (c *CreateBookingRequest) ToModel() (model.Booking, error) {
	checkIn, err := timezone.Parse(constant.DayFormat, c.CheckIn)
	if err != nil {
		return model.Booking{}, err
	}

	checkOut, err := timezone.Parse(constant.DayFormat, c.CheckOut)
	if err != nil {
		return model.Booking{}, err
	}

	status := model.BookingStatusPending
	if c.Status != "" {
		status = c.Status
	}

	return model.Booking{
		GuestName:       c.GuestName,
		GuestEmail:      c.GuestEmail,
		GuestPhone:      c.GuestPhone,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		RoomType:        c.RoomType,
		Guests:          c.Guests,
		Status:          status,
		SpecialRequests: c.SpecialRequests,
	}, nil
}

// UpdateBookingRequest is a merge patch; status transitions are deliberately
// unconstrained.
type UpdateBookingRequest struct {
	GuestName       *string `json:"guest_name"       validate:"omitempty,max=100"`
	GuestEmail      *string `json:"guest_email"      validate:"omitempty,email,max=100"`
	GuestPhone      *string `json:"guest_phone"      validate:"omitempty,max=20"`
	CheckIn         *string `json:"check_in"`
	CheckOut        *string `json:"check_out"`
	RoomType        *string `json:"room_type"        validate:"omitempty,max=100"`
	Guests          *int    `json:"guests"           validate:"omitempty,gte=1"`
	Status          *string `json:"status"           validate:"omitempty,oneof=pending confirmed active completed cancelled"`
	SpecialRequests *string `json:"special_requests"`
}

func (u *UpdateBookingRequest) Apply(booking *model.Booking) error {
	if u.GuestName != nil {
		booking.GuestName = *u.GuestName
	}

	if u.GuestEmail != nil {
		booking.GuestEmail = *u.GuestEmail
	}

	if u.GuestPhone != nil {
		booking.GuestPhone = *u.GuestPhone
	}

	if u.CheckIn != nil {
		checkIn, err := timezone.Parse(constant.DayFormat, *u.CheckIn)
		if err != nil {
			return err
		}

		booking.CheckIn = checkIn
	}

	if u.CheckOut != nil {
		checkOut, err := timezone.Parse(constant.DayFormat, *u.CheckOut)
		if err != nil {
			return err
		}

		booking.CheckOut = checkOut
	}

	if u.RoomType != nil {
		booking.RoomType = *u.RoomType
	}

	if u.Guests != nil {
		booking.Guests = *u.Guests
	}

	if u.Status != nil {
		booking.Status = *u.Status
	}

	if u.SpecialRequests != nil {
		booking.SpecialRequests = *u.SpecialRequests
	}

	return nil
}

// GuestInfo is the contact block of the public booking wizard.
type GuestInfo struct {
	FullName        string `json:"full_name"        validate:"required,max=100"`
	Email           string `json:"email"            validate:"required,email,max=100"`
	Phone           string `json:"phone"            validate:"omitempty,max=20"`
	SpecialRequests string `json:"special_requests" validate:"omitempty"`
	ArrivalTime     string `json:"arrival_time"     validate:"omitempty,max=50"`
}

// BookingSubmission is the raw payload of the public booking wizard. Guests
// arrives as a string because the form control serializes it that way.
type BookingSubmission struct {
	CheckIn      string    `json:"check_in"      validate:"required"`
	CheckOut     string    `json:"check_out"     validate:"required"`
	SelectedRoom string    `json:"selected_room" validate:"required"`
	Guests       string    `json:"guests"        validate:"omitempty"`
	GuestInfo    GuestInfo `json:"guest_info"    validate:"required"`
}

func (b *BookingSubmission) GuestCount() int {
	count, err := strconv.Atoi(b.Guests)
	if err != nil || count < 1 {
		return 1
	}

	return count
}

type GuestResponse struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone"`
	Address       model.Address     `json:"address"`
	Preferences   model.Preferences `json:"preferences"`
	LoyaltyPoints int               `json:"loyalty_points"`
	TotalBookings int               `json:"total_bookings"`
	TotalSpent    float64           `json:"total_spent"`
	LastVisit     *string           `json:"last_visit"`
	CreatedAt     string            `json:"created_at"`
	UpdatedAt     string            `json:"updated_at"`
}

func (r *GuestResponse) FromModel(guest model.Guest) {
	r.ID = guest.ID
	r.Name = guest.Name
	r.Email = guest.Email
	r.Phone = guest.Phone
	r.Address = guest.Address
	r.Preferences = guest.Preferences
	r.LoyaltyPoints = guest.LoyaltyPoints
	r.TotalBookings = guest.TotalBookings
	r.TotalSpent = guest.TotalSpent
	r.CreatedAt = timezone.Format(guest.CreatedAt, constant.DateFormat)
	r.UpdatedAt = timezone.Format(guest.UpdatedAt, constant.DateFormat)

	if guest.LastVisit != nil {
		lastVisit := timezone.Format(*guest.LastVisit, constant.DateFormat)
		r.LastVisit = &lastVisit
	}
}

type GetGuestsResponse struct {
	Guests []GuestResponse `json:"guests"`
	Total  int             `json:"total"`
}

func (r *GetGuestsResponse) FromModels(guests []model.Guest) {
	r.Total = len(guests)

	r.Guests = make([]GuestResponse, len(guests))
	for i, guest := range guests {
		r.Guests[i].FromModel(guest)
	}
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
	SpecialRequests string `json:"special_requests,omitempty"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.GuestName = booking.GuestName
	r.GuestEmail = booking.GuestEmail
	r.GuestPhone = booking.GuestPhone
	r.CheckIn = timezone.Format(booking.CheckIn, constant.DayFormat)
	r.CheckOut = timezone.Format(booking.CheckOut, constant.DayFormat)
	r.RoomType = booking.RoomType
	r.Guests = booking.Guests
	r.Status = booking.Status
	r.SpecialRequests = booking.SpecialRequests
	r.CreatedAt = timezone.Format(booking.CreatedAt, constant.DateFormat)
	r.UpdatedAt = timezone.Format(booking.UpdatedAt, constant.DateFormat)
}

type GetBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

func (r *GetBookingsResponse) FromModels(bookings []model.Booking) {
	r.Total = len(bookings)

	r.Bookings = make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		r.Bookings[i].FromModel(booking)
	}
}

// SubmissionResult is the orchestrator outcome. Conflicts are advisory; the
// booking is created regardless.
type SubmissionResult struct {
	Guest     GuestResponse     `json:"guest"`
	Booking   BookingResponse   `json:"booking"`
	Conflicts []BookingResponse `json:"conflicts"`
}

type AnalyticsResponse struct {
	TotalGuests    int     `json:"total_guests"`
	ActiveBookings int     `json:"active_bookings"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
	OccupancyRate  int     `json:"occupancy_rate"`
	AverageRating  float64 `json:"average_rating"`
	RepeatGuests   int     `json:"repeat_guests"`
}

// ExportDocument round-trips through Import unchanged; it carries raw models
// rather than formatted responses for that reason.
type ExportDocument struct {
	Guests   []model.Guest   `json:"guests"`
	Bookings []model.Booking `json:"bookings"`
}

type NotificationResponse struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Timestamp string                 `json:"timestamp"`
	Read      bool                   `json:"read"`
	Data      model.NotificationData `json:"data"`
}

func (r *NotificationResponse) FromModel(notification model.Notification) {
	r.ID = notification.ID
	r.Type = notification.Type
	r.Title = notification.Title
	r.Message = notification.Message
	r.Timestamp = timezone.Format(notification.Timestamp, constant.DateFormat)
	r.Read = notification.Read
	r.Data = notification.Data
}

type GetNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Unread        int                    `json:"unread"`
}

func (r *GetNotificationsResponse) FromModels(notifications []model.Notification) {
	r.Notifications = make([]NotificationResponse, len(notifications))
	for i, notification := range notifications {
		r.Notifications[i].FromModel(notification)

		if !notification.Read {
			r.Unread++
		}
	}
}

// RoomSummary is the slice of the rooms catalog the ranking needs.
type RoomSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type RankRoomsRequest struct {
	Rooms []RoomSummary `json:"rooms" validate:"required,dive"`
}

type RankedRoom struct {
	Room  RoomSummary `json:"room"`
	Score int         `json:"score"`
}

type RankRoomsResponse struct {
	Rooms []RankedRoom `json:"rooms"`
}

type FeaturedGuest struct {
	Guest  GuestResponse `json:"guest"`
	Reason string        `json:"reason"`
}

type GetFeaturedGuestsResponse struct {
	Guests []FeaturedGuest `json:"guests"`
}
