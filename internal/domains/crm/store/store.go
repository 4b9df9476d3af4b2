package store

//go:generate go run go.uber.org/mock/mockgen -source=./store.go -destination=../mocks/store_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"larkspur/config"
	"larkspur/infras/otel"
	"larkspur/internal/domains/crm/model"
	"larkspur/shared/cache"
	"larkspur/shared/constant"
	"larkspur/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Store is the in-memory system of record for guests, bookings and
// notifications. Every mutation persists a wholesale snapshot to Redis;
// persistence failures are logged and the in-memory state stands.
type Store interface {
	Initialize(ctx context.Context) error
	Guests(ctx context.Context) []model.Guest
	GuestByID(ctx context.Context, id string) (model.Guest, bool)
	InsertGuest(ctx context.Context, guest model.Guest) model.Guest
	UpdateGuest(ctx context.Context, id string, apply func(*model.Guest)) (model.Guest, bool)
	RemoveGuest(ctx context.Context, id string) bool
	Bookings(ctx context.Context) []model.Booking
	BookingByID(ctx context.Context, id string) (model.Booking, bool)
	InsertBooking(ctx context.Context, booking model.Booking) model.Booking
	UpdateBooking(ctx context.Context, id string, apply func(*model.Booking) error) (model.Booking, bool, error)
	RemoveBooking(ctx context.Context, id string) bool
	Replace(ctx context.Context, guests []model.Guest, bookings []model.Booking)
	Notifications(ctx context.Context) []model.Notification
	InsertNotification(ctx context.Context, notification model.Notification) model.Notification
	MarkNotificationRead(ctx context.Context, id string) bool
}

type storeImpl struct {
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel

	mu            sync.RWMutex
	guests        []model.Guest
	bookings      []model.Booking
	notifications []model.Notification
}

func New(cfg *config.Config, redisCache cache.RedisCache, ot otel.Otel) Store {
	return &storeImpl{
		cfg:   cfg,
		cache: redisCache,
		otel:  ot,
	}
}

// Initialize loads the last snapshot from Redis. A missing snapshot is not an
// error: the store starts from sample records (when seeding is enabled) or
// empty.
func (s *storeImpl) Initialize(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Initialize")
	defer scope.End()
	defer scope.TraceIfError(err)

	var snapshot model.Snapshot
	err = s.cache.Get(ctx, s.cfg.CRM.SnapshotKey, &snapshot)

	switch {
	case err == nil:
		s.mu.Lock()
		s.guests = snapshot.Guests
		s.bookings = snapshot.Bookings
		s.mu.Unlock()

		log.Info().
			Int("guests", len(snapshot.Guests)).
			Int("bookings", len(snapshot.Bookings)).
			Msg("crm snapshot restored")
	case errors.Is(err, cache.Nil):
		err = nil

		if s.cfg.CRM.SeedSampleData {
			s.mu.Lock()
			s.guests, s.bookings = sampleRecords()
			s.mu.Unlock()

			s.persist(ctx)
			log.Info().Msg("crm store seeded with sample records")
		}
	default:
		return fmt.Errorf("failed to restore crm snapshot: %w", err)
	}

	var notifications []model.Notification
	err = s.cache.Get(ctx, s.cfg.CRM.NotificationKey, &notifications)

	switch {
	case err == nil:
		s.mu.Lock()
		s.notifications = notifications
		s.mu.Unlock()
	case errors.Is(err, cache.Nil):
		err = nil
	default:
		return fmt.Errorf("failed to restore crm notifications: %w", err)
	}

	return nil
}

func (s *storeImpl) Guests(ctx context.Context) []model.Guest {
	_, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Guests")
	defer scope.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	guests := make([]model.Guest, len(s.guests))
	copy(guests, s.guests)

	return guests
}

func (s *storeImpl) GuestByID(ctx context.Context, id string) (model.Guest, bool) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".GuestByID")
	defer scope.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, guest := range s.guests {
		if guest.ID == id {
			return guest, true
		}
	}

	return model.Guest{}, false
}

func (s *storeImpl) InsertGuest(ctx context.Context, guest model.Guest) model.Guest {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".InsertGuest")
	defer scope.End()

	now := timezone.Now()
	guest.ID = uuid.NewString()
	guest.CreatedAt = now
	guest.UpdatedAt = now

	s.mu.Lock()
	s.guests = append(s.guests, guest)
	s.mu.Unlock()

	s.persist(ctx)

	return guest
}

func (s *storeImpl) UpdateGuest(ctx context.Context, id string, apply func(*model.Guest)) (model.Guest, bool) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".UpdateGuest")
	defer scope.End()

	s.mu.Lock()

	for i := range s.guests {
		if s.guests[i].ID != id {
			continue
		}

		apply(&s.guests[i])
		s.guests[i].UpdatedAt = timezone.Now()
		guest := s.guests[i]
		s.mu.Unlock()

		s.persist(ctx)

		return guest, true
	}

	s.mu.Unlock()

	return model.Guest{}, false
}

func (s *storeImpl) RemoveGuest(ctx context.Context, id string) bool {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".RemoveGuest")
	defer scope.End()

	s.mu.Lock()

	for i := range s.guests {
		if s.guests[i].ID != id {
			continue
		}

		s.guests = append(s.guests[:i], s.guests[i+1:]...)
		s.mu.Unlock()

		s.persist(ctx)

		return true
	}

	s.mu.Unlock()

	return false
}

func (s *storeImpl) Bookings(ctx context.Context) []model.Booking {
	_, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Bookings")
	defer scope.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := make([]model.Booking, len(s.bookings))
	copy(bookings, s.bookings)

	return bookings
}

func (s *storeImpl) BookingByID(ctx context.Context, id string) (model.Booking, bool) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".BookingByID")
	defer scope.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, booking := range s.bookings {
		if booking.ID == id {
			return booking, true
		}
	}

	return model.Booking{}, false
}

func (s *storeImpl) InsertBooking(ctx context.Context, booking model.Booking) model.Booking {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".InsertBooking")
	defer scope.End()

	now := timezone.Now()
	booking.ID = uuid.NewString()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	s.mu.Lock()
	s.bookings = append(s.bookings, booking)
	s.mu.Unlock()

	s.persist(ctx)

	return booking
}

// UpdateBooking applies the patch under the store lock. When apply fails the
// booking is left untouched.
func (s *storeImpl) UpdateBooking(ctx context.Context, id string, apply func(*model.Booking) error) (model.Booking, bool, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".UpdateBooking")
	defer scope.End()

	s.mu.Lock()

	for i := range s.bookings {
		if s.bookings[i].ID != id {
			continue
		}

		patched := s.bookings[i]
		if err := apply(&patched); err != nil {
			s.mu.Unlock()

			return model.Booking{}, true, err
		}

		patched.UpdatedAt = timezone.Now()
		s.bookings[i] = patched
		s.mu.Unlock()

		s.persist(ctx)

		return patched, true, nil
	}

	s.mu.Unlock()

	return model.Booking{}, false, nil
}

func (s *storeImpl) RemoveBooking(ctx context.Context, id string) bool {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".RemoveBooking")
	defer scope.End()

	s.mu.Lock()

	for i := range s.bookings {
		if s.bookings[i].ID != id {
			continue
		}

		s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
		s.mu.Unlock()

		s.persist(ctx)

		return true
	}

	s.mu.Unlock()

	return false
}

// Replace swaps both collections wholesale. Used by the import operation.
func (s *storeImpl) Replace(ctx context.Context, guests []model.Guest, bookings []model.Booking) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Replace")
	defer scope.End()

	s.mu.Lock()
	s.guests = guests
	s.bookings = bookings
	s.mu.Unlock()

	s.persist(ctx)
}

func (s *storeImpl) Notifications(ctx context.Context) []model.Notification {
	_, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Notifications")
	defer scope.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	notifications := make([]model.Notification, len(s.notifications))
	copy(notifications, s.notifications)

	return notifications
}

func (s *storeImpl) InsertNotification(ctx context.Context, notification model.Notification) model.Notification {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".InsertNotification")
	defer scope.End()

	notification.ID = uuid.NewString()
	notification.Timestamp = timezone.Now()

	s.mu.Lock()
	// Newest first, matching how the admin panel renders them.
	s.notifications = append([]model.Notification{notification}, s.notifications...)
	s.mu.Unlock()

	s.persistNotifications(ctx)

	return notification
}

func (s *storeImpl) MarkNotificationRead(ctx context.Context, id string) bool {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".MarkNotificationRead")
	defer scope.End()

	s.mu.Lock()

	for i := range s.notifications {
		if s.notifications[i].ID != id {
			continue
		}

		s.notifications[i].Read = true
		s.mu.Unlock()

		s.persistNotifications(ctx)

		return true
	}

	s.mu.Unlock()

	return false
}

func (s *storeImpl) persist(ctx context.Context) {
	s.mu.RLock()
	snapshot := model.Snapshot{
		Guests:   s.guests,
		Bookings: s.bookings,
	}
	s.mu.RUnlock()

	if err := s.cache.Save(ctx, s.cfg.CRM.SnapshotKey, snapshot, 0); err != nil {
		log.Error().Err(err).Msg("failed to persist crm snapshot")
	}
}

func (s *storeImpl) persistNotifications(ctx context.Context) {
	s.mu.RLock()
	notifications := make([]model.Notification, len(s.notifications))
	copy(notifications, s.notifications)
	s.mu.RUnlock()

	if err := s.cache.Save(ctx, s.cfg.CRM.NotificationKey, notifications, 0); err != nil {
		log.Error().Err(err).Msg("failed to persist crm notifications")
	}
}

func sampleRecords() ([]model.Guest, []model.Booking) {
	now := timezone.Now()
	lastVisit := now.AddDate(0, -2, 0)

	guests := []model.Guest{
		{
			ID:    uuid.NewString(),
			Name:  "John Smith",
			Email: "john.smith@example.com",
			Phone: "+1 555 0101",
			Address: model.Address{
				Street:  "12 Harbor Lane",
				City:    "Portland",
				State:   "OR",
				Country: "USA",
				Zip:     "97201",
			},
			Preferences: model.Preferences{
				RoomType:        model.RoomTypeSuite,
				SpecialRequests: "High floor, away from the elevator",
			},
			LoyaltyPoints: 1250,
			TotalBookings: 3,
			TotalSpent:    2150,
			LastVisit:     &lastVisit,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:    uuid.NewString(),
			Name:  "Sarah Johnson",
			Email: "sarah.johnson@example.com",
			Phone: "+1 555 0102",
			Address: model.Address{
				Street:  "88 Meadow Court",
				City:    "Denver",
				State:   "CO",
				Country: "USA",
				Zip:     "80202",
			},
			Preferences: model.Preferences{
				RoomType: model.RoomTypeDeluxe,
			},
			LoyaltyPoints: 340,
			TotalBookings: 1,
			TotalSpent:    450,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}

	bookings := []model.Booking{
		{
			ID:         uuid.NewString(),
			GuestName:  guests[0].Name,
			GuestEmail: guests[0].Email,
			GuestPhone: guests[0].Phone,
			CheckIn:    now.AddDate(0, 0, 7),
			CheckOut:   now.AddDate(0, 0, 10),
			RoomType:   model.RoomTypeSuite,
			Guests:     2,
			Status:     model.BookingStatusConfirmed,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		{
			ID:              uuid.NewString(),
			GuestName:       guests[1].Name,
			GuestEmail:      guests[1].Email,
			GuestPhone:      guests[1].Phone,
			CheckIn:         now.AddDate(0, 0, 14),
			CheckOut:        now.AddDate(0, 0, 16),
			RoomType:        model.RoomTypeDeluxe,
			Guests:          2,
			Status:          model.BookingStatusPending,
			SpecialRequests: "Late arrival, around 11pm",
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}

	return guests, bookings
}
