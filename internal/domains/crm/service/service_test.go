package service

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"larkspur/config"
	"larkspur/infras/otel/mocks"
	"larkspur/internal/domains/crm/model"
	"larkspur/internal/domains/crm/model/dto"
	"larkspur/internal/domains/crm/store"
	"larkspur/shared/cache"
	"larkspur/shared/pubsub"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCache struct {
	mu      sync.Mutex
	entries map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]string{}}
}

func (f *fakeCache) Save(_ context.Context, key string, value any, _ int) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = string(raw)

	return nil
}

func (f *fakeCache) Get(_ context.Context, key string, value any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, ok := f.entries[key]
	if !ok {
		return cache.Nil
	}

	return json.Unmarshal([]byte(raw), value)
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, key)

	return nil
}

func (f *fakeCache) Clear(_ context.Context, prefix string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	prefix = strings.TrimSuffix(prefix, "*")
	for key := range f.entries {
		if strings.HasPrefix(key, prefix) {
			delete(f.entries, key)
		}
	}

	return nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.CRM.SnapshotKey = "crm:snapshot"
	cfg.CRM.NotificationKey = "crm:notifications"
	cfg.CRM.Scoring.PreferenceWeight = 10
	cfg.CRM.Scoring.LoyaltyWeight = 5
	cfg.CRM.Scoring.RecencyWeight = 2
	cfg.CRM.Scoring.VIPLoyaltyPoints = 1000
	cfg.CRM.Scoring.RecentWindowDays = 30
	cfg.CRM.Analytics.RoomInventory = 50
	cfg.CRM.Analytics.AverageRating = 4.8

	return cfg
}

func newTestService(t *testing.T) (CRM, pubsub.Bus) {
	t.Helper()

	cfg := testConfig()
	bus := pubsub.New()
	svc := New(store.New(cfg, newFakeCache(), mocks.NewOtel()), bus, cfg, mocks.NewOtel())
	require.NoError(t, svc.Initialize(context.Background()))

	return svc, bus
}

func TestGuestLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	created := svc.AddGuest(ctx, dto.CreateGuestRequest{
		Name:  "Alice Lane",
		Email: "alice@example.com",
		Phone: "555",
	})
	require.NotEmpty(t, created.ID)
	assert.Zero(t, created.TotalBookings)
	assert.Zero(t, created.TotalSpent)
	assert.Nil(t, created.LastVisit)

	t.Run("fetch by id returns the stored record", func(t *testing.T) {
		got, err := svc.GetGuest(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alice Lane", got.Name)
		assert.Equal(t, "alice@example.com", got.Email)
	})

	t.Run("patch merges only the provided fields", func(t *testing.T) {
		points := 1500
		got, err := svc.UpdateGuest(ctx, created.ID, dto.UpdateGuestRequest{LoyaltyPoints: &points})
		require.NoError(t, err)
		assert.Equal(t, 1500, got.LoyaltyPoints)
		assert.Equal(t, "Alice Lane", got.Name)
	})

	t.Run("updating a missing guest returns not found", func(t *testing.T) {
		_, err := svc.UpdateGuest(ctx, "missing", dto.UpdateGuestRequest{})
		require.Error(t, err)
	})

	t.Run("deleting a missing guest leaves the collection unchanged", func(t *testing.T) {
		before := svc.GetGuests(ctx).Total
		require.Error(t, svc.DeleteGuest(ctx, "missing"))
		assert.Equal(t, before, svc.GetGuests(ctx).Total)
	})

	t.Run("delete removes the guest", func(t *testing.T) {
		require.NoError(t, svc.DeleteGuest(ctx, created.ID))
		_, err := svc.GetGuest(ctx, created.ID)
		require.Error(t, err)
	})
}

func TestAddBookingGuestSideEffect(t *testing.T) {
	ctx := context.Background()

	t.Run("matching guest gets exactly one bump", func(t *testing.T) {
		svc, _ := newTestService(t)
		guest := svc.AddGuest(ctx, dto.CreateGuestRequest{Name: "Bob", Email: "bob@example.com"})

		_, err := svc.AddBooking(ctx, dto.CreateBookingRequest{
			GuestName:  "Bob",
			GuestEmail: "BOB@example.com",
			CheckIn:    "2026-09-01",
			CheckOut:   "2026-09-03",
			RoomType:   model.RoomTypeStandard,
			Guests:     1,
		})
		require.NoError(t, err)

		got, err := svc.GetGuest(ctx, guest.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.TotalBookings)
		assert.NotNil(t, got.LastVisit)
	})

	t.Run("orphaned booking leaves guests unchanged", func(t *testing.T) {
		svc, _ := newTestService(t)
		guest := svc.AddGuest(ctx, dto.CreateGuestRequest{Name: "Bob", Email: "bob@example.com"})

		_, err := svc.AddBooking(ctx, dto.CreateBookingRequest{
			GuestName:  "Nobody",
			GuestEmail: "nobody@example.com",
			CheckIn:    "2026-09-01",
			CheckOut:   "2026-09-02",
			RoomType:   model.RoomTypeStandard,
			Guests:     1,
		})
		require.NoError(t, err)

		got, err := svc.GetGuest(ctx, guest.ID)
		require.NoError(t, err)
		assert.Zero(t, got.TotalBookings)
		assert.Nil(t, got.LastVisit)
	})

	t.Run("invalid date is rejected", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.AddBooking(ctx, dto.CreateBookingRequest{
			GuestName:  "Bob",
			GuestEmail: "bob@example.com",
			CheckIn:    "not-a-date",
			CheckOut:   "2026-09-02",
			RoomType:   model.RoomTypeStandard,
			Guests:     1,
		})
		require.Error(t, err)
	})
}

func TestBookingPublishes(t *testing.T) {
	ctx := context.Background()
	svc, bus := newTestService(t)

	var calls int
	var last []model.Booking
	unsubscribe := bus.Subscribe(model.TopicBookings, func(payload any) {
		calls++
		last, _ = payload.([]model.Booking)
	})

	created, err := svc.AddBooking(ctx, dto.CreateBookingRequest{
		GuestName:  "Bob",
		GuestEmail: "bob@example.com",
		CheckIn:    "2026-09-01",
		CheckOut:   "2026-09-02",
		RoomType:   model.RoomTypeDeluxe,
		Guests:     2,
	})
	require.NoError(t, err)

	require.Equal(t, 1, calls)
	require.Len(t, last, 1)
	assert.Equal(t, created.ID, last[0].ID)

	t.Run("unsubscribed callbacks stay silent", func(t *testing.T) {
		unsubscribe()

		_, err := svc.AddBooking(ctx, dto.CreateBookingRequest{
			GuestName:  "Bob",
			GuestEmail: "bob@example.com",
			CheckIn:    "2026-09-10",
			CheckOut:   "2026-09-11",
			RoomType:   model.RoomTypeDeluxe,
			Guests:     2,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})
}

func TestBookingUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	created, err := svc.AddBooking(ctx, dto.CreateBookingRequest{
		GuestName:  "Bob",
		GuestEmail: "bob@example.com",
		CheckIn:    "2026-09-01",
		CheckOut:   "2026-09-02",
		RoomType:   model.RoomTypeDeluxe,
		Guests:     2,
	})
	require.NoError(t, err)

	t.Run("any status may replace any other", func(t *testing.T) {
		status := model.BookingStatusCompleted
		got, err := svc.UpdateBooking(ctx, created.ID, dto.UpdateBookingRequest{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, model.BookingStatusCompleted, got.Status)
	})

	t.Run("invalid patch date is rejected", func(t *testing.T) {
		bad := "never"
		_, err := svc.UpdateBooking(ctx, created.ID, dto.UpdateBookingRequest{CheckIn: &bad})
		require.Error(t, err)
	})

	t.Run("missing id returns not found", func(t *testing.T) {
		_, err := svc.UpdateBooking(ctx, "missing", dto.UpdateBookingRequest{})
		require.Error(t, err)
		require.Error(t, svc.DeleteBooking(ctx, "missing"))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, svc.DeleteBooking(ctx, created.ID))
		_, err := svc.GetBooking(ctx, created.ID)
		require.Error(t, err)
	})
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	svc.AddGuest(ctx, dto.CreateGuestRequest{Name: "Alice", Email: "alice@example.com"})
	_, err := svc.AddBooking(ctx, dto.CreateBookingRequest{
		GuestName:  "Alice",
		GuestEmail: "alice@example.com",
		CheckIn:    "2026-09-01",
		CheckOut:   "2026-09-03",
		RoomType:   model.RoomTypeSuite,
		Guests:     2,
	})
	require.NoError(t, err)

	exported := svc.Export(ctx)

	other, _ := newTestService(t)
	require.NoError(t, other.Import(ctx, exported))
	assert.Equal(t, exported, other.Export(ctx))

	t.Run("import requires both collections", func(t *testing.T) {
		require.Error(t, other.Import(ctx, dto.ExportDocument{Guests: exported.Guests}))
		require.Error(t, other.Import(ctx, dto.ExportDocument{Bookings: exported.Bookings}))
		require.NoError(t, other.Import(ctx, dto.ExportDocument{
			Guests:   []model.Guest{},
			Bookings: []model.Booking{},
		}))
		assert.Zero(t, other.GetGuests(ctx).Total)
	})
}

func TestNotifications(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Submit(ctx, dto.BookingSubmission{
		CheckIn:      "2026-09-01",
		CheckOut:     "2026-09-03",
		SelectedRoom: "suite-executive",
		Guests:       "2",
		GuestInfo:    dto.GuestInfo{FullName: "Alice", Email: "alice@example.com"},
	})
	require.NoError(t, err)

	notifications := svc.GetNotifications(ctx)
	require.Len(t, notifications.Notifications, 1)
	assert.Equal(t, 1, notifications.Unread)
	assert.Equal(t, model.NotificationTypeBooking, notifications.Notifications[0].Type)

	require.NoError(t, svc.MarkNotificationRead(ctx, notifications.Notifications[0].ID))
	assert.Zero(t, svc.GetNotifications(ctx).Unread)

	require.Error(t, svc.MarkNotificationRead(ctx, "missing"))
}
