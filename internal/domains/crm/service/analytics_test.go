package service

import (
	"context"
	"testing"

	"larkspur/internal/domains/crm/model"
	"larkspur/internal/domains/crm/model/dto"
	"larkspur/shared/constant"
	"larkspur/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAnalytics(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	t.Run("empty store", func(t *testing.T) {
		got := svc.GetAnalytics(ctx)
		assert.Zero(t, got.TotalGuests)
		assert.Zero(t, got.ActiveBookings)
		assert.Zero(t, got.MonthlyRevenue)
		assert.Zero(t, got.OccupancyRate)
		assert.Equal(t, 4.8, got.AverageRating)
	})

	svc.AddGuest(ctx, dto.CreateGuestRequest{Name: "Alice", Email: "alice@example.com"})
	bob := svc.AddGuest(ctx, dto.CreateGuestRequest{Name: "Bob", Email: "bob@example.com"})

	repeatCount := 3
	_, err := svc.UpdateGuest(ctx, bob.ID, dto.UpdateGuestRequest{TotalBookings: &repeatCount})
	require.NoError(t, err)

	// Three nights in a Suite this month, plus a pending Standard booking that
	// counts toward revenue but not occupancy.
	today := timezone.Now()
	checkIn := timezone.Format(today.AddDate(0, 0, 1), constant.DayFormat)
	checkOut := timezone.Format(today.AddDate(0, 0, 4), constant.DayFormat)

	_, err = svc.AddBooking(ctx, dto.CreateBookingRequest{
		GuestName:  "Alice",
		GuestEmail: "alice@example.com",
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		RoomType:   model.RoomTypeSuite,
		Guests:     2,
		Status:     model.BookingStatusConfirmed,
	})
	require.NoError(t, err)

	_, err = svc.AddBooking(ctx, dto.CreateBookingRequest{
		GuestName:  "Bob",
		GuestEmail: "bob@example.com",
		CheckIn:    checkIn,
		CheckOut:   timezone.Format(today.AddDate(0, 0, 2), constant.DayFormat),
		RoomType:   model.RoomTypeStandard,
		Guests:     1,
		Status:     model.BookingStatusPending,
	})
	require.NoError(t, err)

	got := svc.GetAnalytics(ctx)

	assert.Equal(t, 2, got.TotalGuests)
	assert.Equal(t, 1, got.ActiveBookings)
	assert.Equal(t, float64(250*3+100*1), got.MonthlyRevenue)
	assert.Equal(t, 2, got.OccupancyRate) // 1 of 50 rooms, rounded
	assert.Equal(t, 1, got.RepeatGuests)

	t.Run("total guests tracks deletions", func(t *testing.T) {
		require.NoError(t, svc.DeleteGuest(ctx, bob.ID))
		assert.Equal(t, 1, svc.GetAnalytics(ctx).TotalGuests)
	})
}

func TestRoomRateFallsBackToStandard(t *testing.T) {
	assert.Equal(t, float64(100), roomRate("Bungalow"))
	assert.Equal(t, float64(500), roomRate(model.RoomTypePresidential))
}
