package crm

import (
	"net/http"

	"larkspur/infras/otel"
	"larkspur/internal/domains/crm/model/dto"
	"larkspur/internal/domains/crm/service"
	"larkspur/shared/constant"
	"larkspur/shared/validator"
	"larkspur/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.CRM
	otel    otel.Otel
}

func New(service service.CRM, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/crm", func(routerGroup chi.Router) {
		routerGroup.Route("/guests", func(r chi.Router) {
			r.Get("/", handler.GetGuests)
			r.Post("/", handler.CreateGuest)
			r.Get("/featured", handler.GetFeaturedGuests)
			r.Get("/{id}", handler.GetGuestByID)
			r.Patch("/{id}", handler.UpdateGuest)
			r.Delete("/{id}", handler.DeleteGuest)
		})

		routerGroup.Route("/bookings", func(r chi.Router) {
			r.Get("/", handler.GetBookings)
			r.Post("/", handler.CreateBooking)
			r.Post("/submit", handler.SubmitBooking)
			r.Get("/{id}", handler.GetBookingByID)
			r.Patch("/{id}", handler.UpdateBooking)
			r.Delete("/{id}", handler.DeleteBooking)
		})

		routerGroup.Route("/notifications", func(r chi.Router) {
			r.Get("/", handler.GetNotifications)
			r.Post("/{id}/read", handler.MarkNotificationRead)
		})

		routerGroup.Get("/analytics", handler.GetAnalytics)
		routerGroup.Get("/export", handler.Export)
		routerGroup.Post("/import", handler.Import)
		routerGroup.Post("/recommendations/rooms", handler.RankRooms)
	})
}

// GetGuests retrieves all guest records.
// @Summary Get all guests
// @Description Retrieve every guest record known to the integration layer.
// @Tags CRM
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetGuestsResponse "List of guests"
// @Failure 500 {object} response.Error
// @Router /v1/crm/guests [get]
// @Security BearerAuth
func (handler *Handler) GetGuests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuests")
	defer scope.End()

	guests := handler.service.GetGuests(ctx)

	scope.AddEvent("Guests retrieved successfully")

	response.WithJSON(w, http.StatusOK, guests)
}

// CreateGuest creates a new guest record.
// @Summary Create a new guest
// @Description Create a new guest record with the provided details.
// @Tags CRM
// @Accept json
// @Produce json
// @Param request body dto.CreateGuestRequest true "Create Guest Request"
// @Success 201 {object} dto.GuestResponse "Guest created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/crm/guests [post]
// @Security BearerAuth
func (handler *Handler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGuest")
	defer scope.End()

	req := dto.CreateGuestRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	guest := handler.service.AddGuest(ctx, req)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Guest created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, guest)
}

// GetGuestByID retrieves a guest record by its ID.
// @Summary Get a guest by ID
// @Description Retrieve a guest record by its unique identifier.
// @Tags CRM
// @Accept json
// @Produce json
// @Param id path string true "Guest ID"
// @Success 200 {object} dto.GuestResponse "Guest details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/crm/guests/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetGuestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	guest, err := handler.service.GetGuest(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest retrieved successfully")

	response.WithJSON(w, http.StatusOK, guest)
}

// UpdateGuest updates an existing guest record by its ID.
// @Summary Update a guest by ID
// @Description Update the details of an existing guest record.
// @Tags CRM
// @Accept json
// @Produce json
// @Param id path string true "Guest ID"
// @Param request body dto.UpdateGuestRequest true "Update Guest Request"
// @Success 200 {object} dto.GuestResponse "Guest updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/crm/guests/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGuest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateGuestRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	guest, err := handler.service.UpdateGuest(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update guest")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Guest updated successfully by user " + user)

	response.WithJSON(w, http.StatusOK, guest)
}

// DeleteGuest deletes a guest record by its ID.
// @Summary Delete a guest by ID
// @Description Delete a guest record using its unique identifier.
// @Tags CRM
// @Accept json
// @Produce json
// @Param id path string true "Guest ID"
// @Success 200 {object} response.Message "Guest deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/crm/guests/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteGuest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteGuest(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete guest")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Guest deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Guest deleted successfully")
}

// GetFeaturedGuests retrieves guests worth featuring on the dashboard.
// @Summary Get featured guests
// @Description Retrieve VIP and recently active guests for the dashboard highlight.
// @Tags CRM
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetFeaturedGuestsResponse "Featured guests"
// @Failure 500 {object} response.Error
// @Router /v1/crm/guests/featured [get]
// @Security BearerAuth
func (handler *Handler) GetFeaturedGuests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFeaturedGuests")
	defer scope.End()

	guests := handler.service.FeaturedGuests(ctx)

	scope.AddEvent("Featured guests retrieved successfully")

	response.WithJSON(w, http.StatusOK, guests)
}

// GetBookings retrieves all booking records.
// @Summary Get all CRM bookings
// @Description Retrieve every booking record known to the integration layer.
// @Tags CRM
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetBookingsResponse "List of bookings"
// @Failure 500 {object} response.Error
// @Router /v1/crm/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	bookings := handler.service.GetBookings(ctx)

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// CreateBooking creates a new booking record.
// @Summary Create a new CRM booking
// @Description Create a new booking record and update the owning guest's stats.
// @Tags CRM
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} dto.BookingResponse "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/crm/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.AddBooking(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, booking)
}

// SubmitBooking runs the public booking wizard flow.
// @Summary Submit a booking request
// @Description Resolve the guest, create the booking, and report advisory conflicts.
// @Tags CRM
// @Accept json
// @Produce json
// @Param request body dto.BookingSubmission true "Booking Submission"
// @Success 201 {object} dto.SubmissionResult "Booking submitted successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/crm/bookings/submit [post]
func (handler *Handler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitBooking")
	defer scope.End()

	req := dto.BookingSubmission{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking submitted successfully for " + req.GuestInfo.Email)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetBookingByID retrieves a booking record by its ID.
// @Summary Get a CRM booking by ID
// @Description Retrieve a booking record by its unique identifier.
// @Tags CRM
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/crm/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.GetBooking(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateBooking updates an existing booking record by its ID.
// @Summary Update a CRM booking by ID
// @Description Update the details of an existing booking record.
// @Tags CRM
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} dto.BookingResponse "Booking updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/crm/bookings/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.UpdateBooking(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking updated successfully by user " + user)

	response.WithJSON(w, http.StatusOK, booking)
}

// DeleteBooking deletes a booking record by its ID.
// @Summary Delete a CRM booking by ID
// @Description Delete a booking record using its unique identifier.
// @Tags CRM
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/crm/bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteBooking(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking deleted successfully")
}

// GetAnalytics computes aggregate metrics over the current records.
// @Summary Get CRM analytics
// @Description Compute guest, booking, revenue, and occupancy aggregates.
// @Tags CRM
// @Accept json
// @Produce json
// @Success 200 {object} dto.AnalyticsResponse "Aggregate metrics"
// @Failure 500 {object} response.Error
// @Router /v1/crm/analytics [get]
// @Security BearerAuth
func (handler *Handler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAnalytics")
	defer scope.End()

	analytics := handler.service.GetAnalytics(ctx)

	scope.AddEvent("Analytics computed successfully")

	response.WithJSON(w, http.StatusOK, analytics)
}

// Export dumps the full guest and booking dataset.
// @Summary Export CRM data
// @Description Export every guest and booking record as a single document.
// @Tags CRM
// @Accept json
// @Produce json
// @Success 200 {object} dto.ExportDocument "Exported dataset"
// @Failure 500 {object} response.Error
// @Router /v1/crm/export [get]
// @Security BearerAuth
func (handler *Handler) Export(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Export")
	defer scope.End()

	doc := handler.service.Export(ctx)

	scope.AddEvent("Data exported successfully")

	response.WithJSON(w, http.StatusOK, doc)
}

// Import replaces the full guest and booking dataset.
// @Summary Import CRM data
// @Description Replace every guest and booking record with the provided document.
// @Tags CRM
// @Accept json
// @Produce json
// @Param request body dto.ExportDocument true "Dataset to import"
// @Success 200 {object} response.Message "Data imported successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/crm/import [post]
// @Security BearerAuth
func (handler *Handler) Import(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Import")
	defer scope.End()

	req := dto.ExportDocument{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Import(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to import data")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Data imported successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Data imported successfully")
}

// GetNotifications retrieves booking notifications, newest first.
// @Summary Get notifications
// @Description Retrieve booking notifications with an unread count.
// @Tags CRM
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetNotificationsResponse "List of notifications"
// @Failure 500 {object} response.Error
// @Router /v1/crm/notifications [get]
// @Security BearerAuth
func (handler *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNotifications")
	defer scope.End()

	notifications := handler.service.GetNotifications(ctx)

	scope.AddEvent("Notifications retrieved successfully")

	response.WithJSON(w, http.StatusOK, notifications)
}

// MarkNotificationRead marks a notification as read.
// @Summary Mark a notification as read
// @Description Mark a single notification as read by its ID.
// @Tags CRM
// @Accept json
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} response.Message "Notification marked as read"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/crm/notifications/{id}/read [post]
// @Security BearerAuth
func (handler *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkNotificationRead")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.MarkNotificationRead(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark notification as read")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Notification marked as read by user " + user)

	response.WithMessage(w, http.StatusOK, "Notification marked as read")
}

// RankRooms scores rooms against the current guest base.
// @Summary Rank rooms for the current guest base
// @Description Score the provided rooms by guest preference, loyalty, and recency.
// @Tags CRM
// @Accept json
// @Produce json
// @Param request body dto.RankRoomsRequest true "Rooms to rank"
// @Success 200 {object} dto.RankRoomsResponse "Ranked rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/crm/recommendations/rooms [post]
func (handler *Handler) RankRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RankRooms")
	defer scope.End()

	req := dto.RankRoomsRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	ranked := handler.service.RankRooms(ctx, req.Rooms)

	scope.AddEvent("Rooms ranked successfully")

	response.WithJSON(w, http.StatusOK, ranked)
}
