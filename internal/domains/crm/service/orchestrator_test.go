package service

import (
	"context"
	"testing"

	"larkspur/internal/domains/crm/model"
	"larkspur/internal/domains/crm/model/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomTypeFromSelection(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{key: "deluxe-mountain", want: model.RoomTypeDeluxe},
		{key: "suite-executive", want: model.RoomTypeSuite},
		{key: "presidential-penthouse", want: model.RoomTypePresidential},
		{key: "deluxe-lakeside", want: model.RoomTypeDeluxe},
		{key: "igloo-arctic", want: model.RoomTypeStandard},
		{key: "", want: model.RoomTypeStandard},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, roomTypeFromSelection(tt.key))
		})
	}
}

func TestSubmitCreatesGuestAndBooking(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	res, err := svc.Submit(ctx, dto.BookingSubmission{
		CheckIn:      "2025-03-01",
		CheckOut:     "2025-03-03",
		SelectedRoom: "deluxe-mountain",
		Guests:       "2",
		GuestInfo: dto.GuestInfo{
			FullName:    "Jane",
			Email:       "jane@x.com",
			Phone:       "555",
			ArrivalTime: "morning",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane", res.Guest.Name)
	assert.Equal(t, 1, res.Guest.TotalBookings)
	assert.Equal(t, float64(300), res.Guest.TotalSpent)
	assert.NotNil(t, res.Guest.LastVisit)

	assert.Equal(t, model.RoomTypeDeluxe, res.Booking.RoomType)
	assert.Equal(t, model.BookingStatusConfirmed, res.Booking.Status)
	assert.Equal(t, 2, res.Booking.Guests)
	assert.Empty(t, res.Conflicts)

	assert.Equal(t, 1, svc.GetGuests(ctx).Total)
	assert.Equal(t, 1, svc.GetBookings(ctx).Total)
	assert.Len(t, svc.GetNotifications(ctx).Notifications, 1)
}

func TestSubmitReusesExistingGuest(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	guest := svc.AddGuest(ctx, dto.CreateGuestRequest{Name: "Jane", Email: "jane@x.com"})

	res, err := svc.Submit(ctx, dto.BookingSubmission{
		CheckIn:      "2025-03-01",
		CheckOut:     "2025-03-03",
		SelectedRoom: "deluxe-mountain",
		Guests:       "2",
		GuestInfo:    dto.GuestInfo{FullName: "Jane", Email: "JANE@x.com"},
	})
	require.NoError(t, err)

	assert.Equal(t, guest.ID, res.Guest.ID)
	assert.Equal(t, 1, svc.GetGuests(ctx).Total)
	assert.Equal(t, 1, res.Guest.TotalBookings)
	assert.Equal(t, float64(300), res.Guest.TotalSpent)
}

func TestSubmitConflictDetection(t *testing.T) {
	ctx := context.Background()

	submit := func(t *testing.T, svc CRM, checkIn, checkOut, room string) dto.SubmissionResult {
		t.Helper()

		res, err := svc.Submit(ctx, dto.BookingSubmission{
			CheckIn:      checkIn,
			CheckOut:     checkOut,
			SelectedRoom: room,
			Guests:       "1",
			GuestInfo:    dto.GuestInfo{FullName: "Jane", Email: "jane@x.com"},
		})
		require.NoError(t, err)

		return res
	}

	t.Run("overlapping same room type is reported but both are created", func(t *testing.T) {
		svc, _ := newTestService(t)

		first := submit(t, svc, "2025-03-01", "2025-03-05", "deluxe-mountain")
		second := submit(t, svc, "2025-03-03", "2025-03-07", "deluxe-ocean")

		require.Len(t, second.Conflicts, 1)
		assert.Equal(t, first.Booking.ID, second.Conflicts[0].ID)
		assert.Equal(t, 2, svc.GetBookings(ctx).Total)
	})

	t.Run("back-to-back ranges do not conflict", func(t *testing.T) {
		svc, _ := newTestService(t)

		submit(t, svc, "2025-03-01", "2025-03-03", "deluxe-mountain")
		second := submit(t, svc, "2025-03-03", "2025-03-05", "deluxe-mountain")

		assert.Empty(t, second.Conflicts)
	})

	t.Run("different room types never conflict", func(t *testing.T) {
		svc, _ := newTestService(t)

		submit(t, svc, "2025-03-01", "2025-03-05", "deluxe-mountain")
		second := submit(t, svc, "2025-03-01", "2025-03-05", "suite-executive")

		assert.Empty(t, second.Conflicts)
	})

	t.Run("cancelled bookings are ignored", func(t *testing.T) {
		svc, _ := newTestService(t)

		first := submit(t, svc, "2025-03-01", "2025-03-05", "deluxe-mountain")

		status := model.BookingStatusCancelled
		_, err := svc.UpdateBooking(ctx, first.Booking.ID, dto.UpdateBookingRequest{Status: &status})
		require.NoError(t, err)

		second := submit(t, svc, "2025-03-02", "2025-03-04", "deluxe-mountain")
		assert.Empty(t, second.Conflicts)
	})
}

func TestSubmitRejectsBadDates(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{name: "unparsable check-in", checkIn: "soon", checkOut: "2025-03-03"},
		{name: "unparsable check-out", checkIn: "2025-03-01", checkOut: "later"},
		{name: "check-out equals check-in", checkIn: "2025-03-01", checkOut: "2025-03-01"},
		{name: "check-out before check-in", checkIn: "2025-03-03", checkOut: "2025-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(ctx, dto.BookingSubmission{
				CheckIn:      tt.checkIn,
				CheckOut:     tt.checkOut,
				SelectedRoom: "deluxe-mountain",
				GuestInfo:    dto.GuestInfo{FullName: "Jane", Email: "jane@x.com"},
			})
			require.Error(t, err)
		})
	}

	assert.Zero(t, svc.GetBookings(ctx).Total)
	assert.Zero(t, svc.GetGuests(ctx).Total)
}

func TestGuestCountDefaults(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{raw: "2", want: 2},
		{raw: "", want: 1},
		{raw: "zero", want: 1},
		{raw: "0", want: 1},
	}

	for _, tt := range tests {
		sub := dto.BookingSubmission{Guests: tt.raw}
		assert.Equal(t, tt.want, sub.GuestCount())
	}
}
