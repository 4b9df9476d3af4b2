package service

import (
	"context"
	"fmt"
	"strings"

	"larkspur/internal/domains/crm/model"
	"larkspur/internal/domains/crm/model/dto"
	"larkspur/shared/constant"
	"larkspur/shared/failure"
	"larkspur/shared/timezone"
)

// roomSelectionTypes maps the booking wizard's room keys to canonical room
// type labels. Unrecognized keys fall back to Standard.
var roomSelectionTypes = map[string]string{
	"standard-city":          model.RoomTypeStandard,
	"standard-garden":        model.RoomTypeStandard,
	"deluxe-mountain":        model.RoomTypeDeluxe,
	"deluxe-ocean":           model.RoomTypeDeluxe,
	"suite-executive":        model.RoomTypeSuite,
	"suite-garden":           model.RoomTypeSuite,
	"presidential-penthouse": model.RoomTypePresidential,
}

func roomTypeFromSelection(key string) string {
	if roomType, ok := roomSelectionTypes[key]; ok {
		return roomType
	}

	prefix, _, _ := strings.Cut(key, "-")
	for _, roomType := range []string{model.RoomTypeStandard, model.RoomTypeDeluxe, model.RoomTypeSuite, model.RoomTypePresidential} {
		if strings.EqualFold(prefix, roomType) {
			return roomType
		}
	}

	return model.RoomTypeStandard
}

// Submit runs the booking workflow as an ordered, non-transactional sequence:
// find or create the guest, create the booking as confirmed, bump the guest's
// spend estimate, scan for date conflicts and record a notification. A failure
// aborts the remaining steps without rolling back the ones already applied.
// Conflicts never block the booking.
func (s *serviceImpl) Submit(ctx context.Context, req dto.BookingSubmission) (res dto.SubmissionResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, err := timezone.Parse(constant.DayFormat, req.CheckIn)
	if err != nil {
		return res, failure.BadRequestFromString("invalid check-in date")
	}

	checkOut, err := timezone.Parse(constant.DayFormat, req.CheckOut)
	if err != nil {
		return res, failure.BadRequestFromString("invalid check-out date")
	}

	if !checkOut.After(checkIn) {
		return res, failure.BadRequestFromString("check-out must be after check-in")
	}

	roomType := roomTypeFromSelection(req.SelectedRoom)

	guest, found := s.findGuestByEmail(ctx, req.GuestInfo.Email)
	if !found {
		guest = s.store.InsertGuest(ctx, model.Guest{
			Name:  req.GuestInfo.FullName,
			Email: req.GuestInfo.Email,
			Phone: req.GuestInfo.Phone,
			Preferences: model.Preferences{
				RoomType:        roomType,
				SpecialRequests: req.GuestInfo.SpecialRequests,
			},
		})
		s.publishGuests(ctx)
	}

	specialRequests := req.GuestInfo.SpecialRequests
	if req.GuestInfo.ArrivalTime != "" {
		specialRequests = strings.TrimSpace(fmt.Sprintf("%s Arrival: %s", specialRequests, req.GuestInfo.ArrivalTime))
	}

	booking, err := s.AddBooking(ctx, dto.CreateBookingRequest{
		GuestName:       req.GuestInfo.FullName,
		GuestEmail:      req.GuestInfo.Email,
		GuestPhone:      req.GuestInfo.Phone,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		RoomType:        roomType,
		Guests:          req.GuestCount(),
		Status:          model.BookingStatusConfirmed,
		SpecialRequests: specialRequests,
	})
	if err != nil {
		return res, err
	}

	stored, found := s.store.BookingByID(ctx, booking.ID)
	if !found {
		return res, failure.NotFound(model.EntityBooking)
	}

	estimate := roomRate(roomType) * float64(stored.Nights())
	if _, ok := s.store.UpdateGuest(ctx, guest.ID, func(g *model.Guest) {
		g.TotalSpent += estimate
	}); ok {
		s.publishGuests(ctx)
	}

	conflicts := s.conflictsFor(ctx, stored)

	refreshed, found := s.store.GuestByID(ctx, guest.ID)
	if found {
		guest = refreshed
	}

	s.store.InsertNotification(ctx, model.Notification{
		Type:    model.NotificationTypeBooking,
		Title:   "New booking received",
		Message: fmt.Sprintf("%s booked a %s room, %s to %s", stored.GuestName, stored.RoomType, req.CheckIn, req.CheckOut),
		Data: model.NotificationData{
			Booking:   stored,
			Guest:     guest,
			Conflicts: conflicts,
		},
	})

	res.Guest.FromModel(guest)
	res.Booking.FromModel(stored)
	res.Conflicts = make([]dto.BookingResponse, len(conflicts))
	for i, conflict := range conflicts {
		res.Conflicts[i].FromModel(conflict)
	}

	return res, nil
}

// conflictsFor reports other non-cancelled bookings of the same room type
// whose [checkIn, checkOut) range overlaps. Advisory only.
func (s *serviceImpl) conflictsFor(ctx context.Context, booking model.Booking) []model.Booking {
	conflicts := []model.Booking{}

	for _, other := range s.store.Bookings(ctx) {
		if other.ID == booking.ID || other.Status == model.BookingStatusCancelled {
			continue
		}

		if booking.Overlaps(other) {
			conflicts = append(conflicts, other)
		}
	}

	return conflicts
}
