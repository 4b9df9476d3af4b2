package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"strings"

	"larkspur/config"
	"larkspur/infras/otel"
	"larkspur/internal/domains/crm/model"
	"larkspur/internal/domains/crm/model/dto"
	"larkspur/internal/domains/crm/store"
	"larkspur/shared/constant"
	"larkspur/shared/failure"
	"larkspur/shared/pubsub"
	"larkspur/shared/timezone"
)

// CRM is the single entry point for guest and booking state. Every mutation
// funnels through here so persistence and fan-out happen consistently: the
// store snapshots to Redis, and the full collection is published on the
// matching topic.
type CRM interface {
	Initialize(ctx context.Context) error
	GetGuests(ctx context.Context) dto.GetGuestsResponse
	GetGuest(ctx context.Context, id string) (dto.GuestResponse, error)
	AddGuest(ctx context.Context, req dto.CreateGuestRequest) dto.GuestResponse
	UpdateGuest(ctx context.Context, id string, req dto.UpdateGuestRequest) (dto.GuestResponse, error)
	DeleteGuest(ctx context.Context, id string) error
	GetBookings(ctx context.Context) dto.GetBookingsResponse
	GetBooking(ctx context.Context, id string) (dto.BookingResponse, error)
	AddBooking(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	UpdateBooking(ctx context.Context, id string, req dto.UpdateBookingRequest) (dto.BookingResponse, error)
	DeleteBooking(ctx context.Context, id string) error
	GetAnalytics(ctx context.Context) dto.AnalyticsResponse
	Export(ctx context.Context) dto.ExportDocument
	Import(ctx context.Context, doc dto.ExportDocument) error
	GetNotifications(ctx context.Context) dto.GetNotificationsResponse
	MarkNotificationRead(ctx context.Context, id string) error
	Submit(ctx context.Context, req dto.BookingSubmission) (dto.SubmissionResult, error)
	RankRooms(ctx context.Context, rooms []dto.RoomSummary) dto.RankRoomsResponse
	FeaturedGuests(ctx context.Context) dto.GetFeaturedGuestsResponse
}

type serviceImpl struct {
	store store.Store
	bus   pubsub.Bus
	cfg   *config.Config
	otel  otel.Otel
}

func New(st store.Store, bus pubsub.Bus, cfg *config.Config, ot otel.Otel) CRM {
	return &serviceImpl{
		store: st,
		bus:   bus,
		cfg:   cfg,
		otel:  ot,
	}
}

func (s *serviceImpl) Initialize(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Initialize")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.store.Initialize(ctx)
}

func (s *serviceImpl) GetGuests(ctx context.Context) dto.GetGuestsResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetGuests")
	defer scope.End()

	var res dto.GetGuestsResponse
	res.FromModels(s.store.Guests(ctx))

	return res
}

func (s *serviceImpl) GetGuest(ctx context.Context, id string) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetGuest")
	defer scope.End()
	defer scope.TraceIfError(err)

	guest, found := s.store.GuestByID(ctx, id)
	if !found {
		return res, failure.NotFound(model.EntityGuest)
	}

	res.FromModel(guest)

	return res, nil
}

func (s *serviceImpl) AddGuest(ctx context.Context, req dto.CreateGuestRequest) dto.GuestResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddGuest")
	defer scope.End()

	guest := s.store.InsertGuest(ctx, req.ToModel())
	s.publishGuests(ctx)

	var res dto.GuestResponse
	res.FromModel(guest)

	return res
}

func (s *serviceImpl) UpdateGuest(ctx context.Context, id string, req dto.UpdateGuestRequest) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateGuest")
	defer scope.End()
	defer scope.TraceIfError(err)

	guest, found := s.store.UpdateGuest(ctx, id, req.Apply)
	if !found {
		return res, failure.NotFound(model.EntityGuest)
	}

	s.publishGuests(ctx)
	res.FromModel(guest)

	return res, nil
}

func (s *serviceImpl) DeleteGuest(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteGuest")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !s.store.RemoveGuest(ctx, id) {
		return failure.NotFound(model.EntityGuest)
	}

	s.publishGuests(ctx)

	return nil
}

func (s *serviceImpl) GetBookings(ctx context.Context) dto.GetBookingsResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBookings")
	defer scope.End()

	var res dto.GetBookingsResponse
	res.FromModels(s.store.Bookings(ctx))

	return res
}

func (s *serviceImpl) GetBooking(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, found := s.store.BookingByID(ctx, id)
	if !found {
		return res, failure.NotFound(model.EntityBooking)
	}

	res.FromModel(booking)

	return res, nil
}

// AddBooking inserts the booking and, when a guest matches the booking email,
// bumps that guest's totalBookings and lastVisit. This is the only place
// booking counters move; orphaned bookings simply skip the guest update.
func (s *serviceImpl) AddBooking(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := req.ToModel()
	if err != nil {
		return res, failure.BadRequest(err)
	}

	booking = s.store.InsertBooking(ctx, booking)
	s.recordGuestVisit(ctx, booking.GuestEmail)
	s.publishBookings(ctx)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) UpdateBooking(ctx context.Context, id string, req dto.UpdateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, found, err := s.store.UpdateBooking(ctx, id, req.Apply)
	if err != nil {
		return res, failure.BadRequest(err)
	}

	if !found {
		return res, failure.NotFound(model.EntityBooking)
	}

	s.publishBookings(ctx)
	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) DeleteBooking(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !s.store.RemoveBooking(ctx, id) {
		return failure.NotFound(model.EntityBooking)
	}

	s.publishBookings(ctx)

	return nil
}

func (s *serviceImpl) Export(ctx context.Context) dto.ExportDocument {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Export")
	defer scope.End()

	return dto.ExportDocument{
		Guests:   s.store.Guests(ctx),
		Bookings: s.store.Bookings(ctx),
	}
}

// Import replaces both collections wholesale; there are no merge semantics.
// Both arrays must be present, an empty array counts as present.
func (s *serviceImpl) Import(ctx context.Context, doc dto.ExportDocument) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Import")
	defer scope.End()
	defer scope.TraceIfError(err)

	if doc.Guests == nil || doc.Bookings == nil {
		return failure.BadRequestFromString("import document must contain both guests and bookings")
	}

	s.store.Replace(ctx, doc.Guests, doc.Bookings)
	s.publishGuests(ctx)
	s.publishBookings(ctx)

	return nil
}

func (s *serviceImpl) GetNotifications(ctx context.Context) dto.GetNotificationsResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetNotifications")
	defer scope.End()

	var res dto.GetNotificationsResponse
	res.FromModels(s.store.Notifications(ctx))

	return res
}

func (s *serviceImpl) MarkNotificationRead(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkNotificationRead")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !s.store.MarkNotificationRead(ctx, id) {
		return failure.NotFound(model.EntityNotification)
	}

	return nil
}

func (s *serviceImpl) recordGuestVisit(ctx context.Context, email string) {
	guest, found := s.findGuestByEmail(ctx, email)
	if !found {
		return
	}

	now := timezone.Now()
	if _, ok := s.store.UpdateGuest(ctx, guest.ID, func(g *model.Guest) {
		g.TotalBookings++
		g.LastVisit = &now
	}); ok {
		s.publishGuests(ctx)
	}
}

func (s *serviceImpl) findGuestByEmail(ctx context.Context, email string) (model.Guest, bool) {
	for _, guest := range s.store.Guests(ctx) {
		if strings.EqualFold(guest.Email, email) {
			return guest, true
		}
	}

	return model.Guest{}, false
}

func (s *serviceImpl) publishGuests(ctx context.Context) {
	s.bus.Publish(model.TopicGuests, s.store.Guests(ctx))
}

func (s *serviceImpl) publishBookings(ctx context.Context) {
	s.bus.Publish(model.TopicBookings, s.store.Bookings(ctx))
}
