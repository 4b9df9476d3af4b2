package service

import (
	"context"
	"testing"

	"larkspur/internal/domains/crm/model"
	"larkspur/internal/domains/crm/model/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankRooms(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	rooms := []dto.RoomSummary{
		{ID: "standard-city", Title: "Standard City View"},
		{ID: "deluxe-mountain", Title: "Deluxe Mountain Retreat"},
		{ID: "suite-executive", Title: "Executive Suite"},
	}

	t.Run("no guests yields the input order with zero scores", func(t *testing.T) {
		got := svc.RankRooms(ctx, rooms)
		require.Len(t, got.Rooms, 3)

		for i, ranked := range got.Rooms {
			assert.Equal(t, rooms[i].ID, ranked.Room.ID)
			assert.Zero(t, ranked.Score)
		}
	})

	// Two guests preferring Deluxe, one of them VIP; one guest preferring
	// Suite. VIP and recency bonuses apply to every room equally, so the
	// preference weights decide the order.
	svc.AddGuest(ctx, dto.CreateGuestRequest{
		Name: "Alice", Email: "alice@example.com",
		Preferences: dto.PreferencesRequest{RoomType: model.RoomTypeDeluxe},
	})
	svc.AddGuest(ctx, dto.CreateGuestRequest{
		Name: "Bob", Email: "bob@example.com",
		Preferences: dto.PreferencesRequest{RoomType: model.RoomTypeDeluxe},
		LoyaltyPoints: 2000,
	})
	svc.AddGuest(ctx, dto.CreateGuestRequest{
		Name: "Cara", Email: "cara@example.com",
		Preferences: dto.PreferencesRequest{RoomType: model.RoomTypeSuite},
	})

	got := svc.RankRooms(ctx, rooms)
	require.Len(t, got.Rooms, 3)

	assert.Equal(t, "deluxe-mountain", got.Rooms[0].Room.ID)
	assert.Equal(t, 25, got.Rooms[0].Score) // 10+10 preference, 5 VIP
	assert.Equal(t, "suite-executive", got.Rooms[1].Room.ID)
	assert.Equal(t, 15, got.Rooms[1].Score)
	assert.Equal(t, "standard-city", got.Rooms[2].Room.ID)
	assert.Equal(t, 5, got.Rooms[2].Score)

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		assert.Equal(t, got, svc.RankRooms(ctx, rooms))
	})
}

func TestFeaturedGuests(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	t.Run("empty store features nobody", func(t *testing.T) {
		assert.Empty(t, svc.FeaturedGuests(ctx).Guests)
	})

	// Regular guest, never featured.
	svc.AddGuest(ctx, dto.CreateGuestRequest{Name: "Plain", Email: "plain@example.com"})

	vip := svc.AddGuest(ctx, dto.CreateGuestRequest{
		Name: "Vera", Email: "vera@example.com", LoyaltyPoints: 1500,
	})

	// Recent visitor: a fresh booking stamps lastVisit to now.
	recent := svc.AddGuest(ctx, dto.CreateGuestRequest{Name: "Rex", Email: "rex@example.com"})
	_, err := svc.AddBooking(ctx, dto.CreateBookingRequest{
		GuestName:  "Rex",
		GuestEmail: "rex@example.com",
		CheckIn:    "2026-09-01",
		CheckOut:   "2026-09-02",
		RoomType:   model.RoomTypeStandard,
		Guests:     1,
	})
	require.NoError(t, err)

	got := svc.FeaturedGuests(ctx)
	require.Len(t, got.Guests, 2)

	assert.Equal(t, vip.ID, got.Guests[0].Guest.ID)
	assert.Equal(t, "vip", got.Guests[0].Reason)
	assert.Equal(t, recent.ID, got.Guests[1].Guest.ID)
	assert.Equal(t, "recent", got.Guests[1].Reason)

	t.Run("loyalty at the threshold does not qualify", func(t *testing.T) {
		points := 1000
		_, err := svc.UpdateGuest(ctx, vip.ID, dto.UpdateGuestRequest{LoyaltyPoints: &points})
		require.NoError(t, err)

		got := svc.FeaturedGuests(ctx)
		require.Len(t, got.Guests, 1)
		assert.Equal(t, recent.ID, got.Guests[0].Guest.ID)
	})
}
