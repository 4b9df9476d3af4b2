package store

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"larkspur/config"
	"larkspur/infras/otel/mocks"
	"larkspur/internal/domains/crm/model"
	"larkspur/shared/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCache struct {
	mu      sync.Mutex
	entries map[string]string
	saveErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]string{}}
}

func (f *fakeCache) Save(_ context.Context, key string, value any, _ int) error {
	if f.saveErr != nil {
		return f.saveErr
	}

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

func testConfig(seed bool) *config.Config {
	cfg := &config.Config{}
	cfg.CRM.SnapshotKey = "crm:snapshot"
	cfg.CRM.NotificationKey = "crm:notifications"
	cfg.CRM.SeedSampleData = seed

	return cfg
}

func TestStoreInitialize(t *testing.T) {
	t.Run("seeds sample records on empty cache", func(t *testing.T) {
		fake := newFakeCache()
		s := New(testConfig(true), fake, mocks.NewOtel())

		require.NoError(t, s.Initialize(context.Background()))

		assert.Len(t, s.Guests(context.Background()), 2)
		assert.Len(t, s.Bookings(context.Background()), 2)
		assert.Contains(t, fake.entries, "crm:snapshot")
	})

	t.Run("starts empty when seeding disabled", func(t *testing.T) {
		fake := newFakeCache()
		s := New(testConfig(false), fake, mocks.NewOtel())

		require.NoError(t, s.Initialize(context.Background()))

		assert.Empty(t, s.Guests(context.Background()))
		assert.Empty(t, s.Bookings(context.Background()))
	})

	t.Run("restores an existing snapshot instead of seeding", func(t *testing.T) {
		fake := newFakeCache()
		snapshot := model.Snapshot{
			Guests: []model.Guest{{ID: "g-1", Name: "Alice", Email: "alice@example.com"}},
		}
		require.NoError(t, fake.Save(context.Background(), "crm:snapshot", snapshot, 0))

		s := New(testConfig(true), fake, mocks.NewOtel())
		require.NoError(t, s.Initialize(context.Background()))

		guests := s.Guests(context.Background())
		require.Len(t, guests, 1)
		assert.Equal(t, "Alice", guests[0].Name)
		assert.Empty(t, s.Bookings(context.Background()))
	})
}

func TestStoreGuests(t *testing.T) {
	ctx := context.Background()
	s := New(testConfig(false), newFakeCache(), mocks.NewOtel())
	require.NoError(t, s.Initialize(ctx))

	inserted := s.InsertGuest(ctx, model.Guest{Name: "Alice", Email: "alice@example.com"})
	assert.NotEmpty(t, inserted.ID)
	assert.False(t, inserted.CreatedAt.IsZero())

	t.Run("lookup by id", func(t *testing.T) {
		got, ok := s.GuestByID(ctx, inserted.ID)
		require.True(t, ok)
		assert.Equal(t, "Alice", got.Name)

		_, ok = s.GuestByID(ctx, "missing")
		assert.False(t, ok)
	})

	t.Run("update touches updated_at and persists the patch", func(t *testing.T) {
		updated, ok := s.UpdateGuest(ctx, inserted.ID, func(g *model.Guest) {
			g.LoyaltyPoints = 500
		})
		require.True(t, ok)
		assert.Equal(t, 500, updated.LoyaltyPoints)
		assert.False(t, updated.UpdatedAt.Before(inserted.UpdatedAt))
	})

	t.Run("update of a missing guest reports not found", func(t *testing.T) {
		_, ok := s.UpdateGuest(ctx, "missing", func(g *model.Guest) {})
		assert.False(t, ok)
	})

	t.Run("remove", func(t *testing.T) {
		assert.True(t, s.RemoveGuest(ctx, inserted.ID))
		assert.False(t, s.RemoveGuest(ctx, inserted.ID))
		assert.Empty(t, s.Guests(ctx))
	})
}

func TestStoreBookings(t *testing.T) {
	ctx := context.Background()
	s := New(testConfig(false), newFakeCache(), mocks.NewOtel())
	require.NoError(t, s.Initialize(ctx))

	inserted := s.InsertBooking(ctx, model.Booking{
		GuestName:  "Alice",
		GuestEmail: "alice@example.com",
		RoomType:   model.RoomTypeDeluxe,
		Guests:     2,
		Status:     model.BookingStatusPending,
	})
	assert.NotEmpty(t, inserted.ID)

	t.Run("update applies the patch", func(t *testing.T) {
		updated, found, err := s.UpdateBooking(ctx, inserted.ID, func(b *model.Booking) error {
			b.Status = model.BookingStatusConfirmed

			return nil
		})
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, model.BookingStatusConfirmed, updated.Status)
	})

	t.Run("failing patch leaves the booking untouched", func(t *testing.T) {
		_, found, err := s.UpdateBooking(ctx, inserted.ID, func(b *model.Booking) error {
			b.Status = model.BookingStatusCancelled

			return assert.AnError
		})
		require.Error(t, err)
		assert.True(t, found)

		got, ok := s.BookingByID(ctx, inserted.ID)
		require.True(t, ok)
		assert.Equal(t, model.BookingStatusConfirmed, got.Status)
	})

	t.Run("remove", func(t *testing.T) {
		assert.True(t, s.RemoveBooking(ctx, inserted.ID))
		assert.False(t, s.RemoveBooking(ctx, inserted.ID))
	})
}

func TestStoreReplace(t *testing.T) {
	ctx := context.Background()
	fake := newFakeCache()
	s := New(testConfig(true), fake, mocks.NewOtel())
	require.NoError(t, s.Initialize(ctx))

	guests := []model.Guest{{ID: "g-1", Name: "Imported", Email: "imported@example.com"}}
	bookings := []model.Booking{}
	s.Replace(ctx, guests, bookings)

	got := s.Guests(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, "Imported", got[0].Name)
	assert.Empty(t, s.Bookings(ctx))

	var snapshot model.Snapshot
	require.NoError(t, fake.Get(ctx, "crm:snapshot", &snapshot))
	assert.Len(t, snapshot.Guests, 1)
}

func TestStoreNotifications(t *testing.T) {
	ctx := context.Background()
	s := New(testConfig(false), newFakeCache(), mocks.NewOtel())
	require.NoError(t, s.Initialize(ctx))

	first := s.InsertNotification(ctx, model.Notification{
		Type:  model.NotificationTypeBooking,
		Title: "New booking",
	})
	second := s.InsertNotification(ctx, model.Notification{
		Type:  model.NotificationTypeBooking,
		Title: "Another booking",
	})

	t.Run("newest first", func(t *testing.T) {
		notifications := s.Notifications(ctx)
		require.Len(t, notifications, 2)
		assert.Equal(t, second.ID, notifications[0].ID)
		assert.Equal(t, first.ID, notifications[1].ID)
	})

	t.Run("mark read", func(t *testing.T) {
		assert.True(t, s.MarkNotificationRead(ctx, first.ID))
		assert.False(t, s.MarkNotificationRead(ctx, "missing"))

		notifications := s.Notifications(ctx)
		assert.True(t, notifications[1].Read)
		assert.False(t, notifications[0].Read)
	})
}

func TestStorePersistFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	fake := newFakeCache()
	fake.saveErr = assert.AnError

	s := New(testConfig(false), fake, mocks.NewOtel())
	require.NoError(t, s.Initialize(ctx))

	inserted := s.InsertGuest(ctx, model.Guest{Name: "Alice", Email: "alice@example.com"})

	got, ok := s.GuestByID(ctx, inserted.ID)
	require.True(t, ok)
	assert.Equal(t, "Alice", got.Name)
}
