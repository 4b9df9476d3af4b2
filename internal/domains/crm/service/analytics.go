package service

import (
	"context"
	"math"

	"larkspur/internal/domains/crm/model"
	"larkspur/internal/domains/crm/model/dto"
	"larkspur/shared/constant"
	"larkspur/shared/timezone"
)

// roomRates is the heuristic nightly base price per room type. Revenue derived
// from it is an estimate, not ledger-accurate.
var roomRates = map[string]float64{
	model.RoomTypeStandard:     100,
	model.RoomTypeDeluxe:       150,
	model.RoomTypeSuite:        250,
	model.RoomTypePresidential: 500,
}

func roomRate(roomType string) float64 {
	if rate, ok := roomRates[roomType]; ok {
		return rate
	}

	return roomRates[model.RoomTypeStandard]
}

// GetAnalytics recomputes every figure from the live collections on each call.
func (s *serviceImpl) GetAnalytics(ctx context.Context) dto.AnalyticsResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAnalytics")
	defer scope.End()

	guests := s.store.Guests(ctx)
	bookings := s.store.Bookings(ctx)
	now := timezone.Now()

	var active int
	var revenue float64

	for _, booking := range bookings {
		if booking.Status == model.BookingStatusConfirmed || booking.Status == model.BookingStatusActive {
			active++
		}

		createdAt := timezone.ToAppTime(booking.CreatedAt)
		if createdAt.Year() == now.Year() && createdAt.Month() == now.Month() {
			revenue += roomRate(booking.RoomType) * float64(booking.Nights())
		}
	}

	var repeat int
	for _, guest := range guests {
		if guest.TotalBookings > 1 {
			repeat++
		}
	}

	occupancy := 0
	if s.cfg.CRM.Analytics.RoomInventory > 0 {
		occupancy = int(math.Round(float64(active) / float64(s.cfg.CRM.Analytics.RoomInventory) * 100))
	}

	return dto.AnalyticsResponse{
		TotalGuests:    len(guests),
		ActiveBookings: active,
		MonthlyRevenue: revenue,
		OccupancyRate:  occupancy,
		AverageRating:  s.cfg.CRM.Analytics.AverageRating,
		RepeatGuests:   repeat,
	}
}
