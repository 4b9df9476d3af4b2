package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"larkspur/internal/domains/crm/model"
	"larkspur/internal/domains/crm/model/dto"
	"larkspur/shared/constant"
	"larkspur/shared/timezone"
)

func (s *serviceImpl) isVIP(guest model.Guest) bool {
	return guest.LoyaltyPoints > s.cfg.CRM.Scoring.VIPLoyaltyPoints
}

func (s *serviceImpl) isRecent(guest model.Guest, now time.Time) bool {
	if guest.LastVisit == nil {
		return false
	}

	window := time.Duration(s.cfg.CRM.Scoring.RecentWindowDays) * constant.HoursPerDay * time.Hour

	return now.Sub(*guest.LastVisit) <= window
}

// RankRooms orders the rooms by an additive interest score over the current
// guest list: a guest whose preferred room type appears in the room title adds
// the preference weight, a VIP guest adds the loyalty weight and a recently
// seen guest adds the recency weight. Display heuristic only; the order is
// stable for identical inputs.
func (s *serviceImpl) RankRooms(ctx context.Context, rooms []dto.RoomSummary) dto.RankRoomsResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RankRooms")
	defer scope.End()

	guests := s.store.Guests(ctx)
	now := timezone.Now()

	ranked := make([]dto.RankedRoom, len(rooms))
	for i, room := range rooms {
		score := 0
		title := strings.ToLower(room.Title)

		for _, guest := range guests {
			preference := strings.ToLower(guest.Preferences.RoomType)
			if preference != "" && strings.Contains(title, preference) {
				score += s.cfg.CRM.Scoring.PreferenceWeight
			}

			if s.isVIP(guest) {
				score += s.cfg.CRM.Scoring.LoyaltyWeight
			}

			if s.isRecent(guest, now) {
				score += s.cfg.CRM.Scoring.RecencyWeight
			}
		}

		ranked[i] = dto.RankedRoom{Room: room, Score: score}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return dto.RankRoomsResponse{Rooms: ranked}
}

// FeaturedGuests picks the guests worth showcasing: VIPs and recent visitors,
// VIPs first, most recent visit breaking ties.
func (s *serviceImpl) FeaturedGuests(ctx context.Context) dto.GetFeaturedGuestsResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FeaturedGuests")
	defer scope.End()

	now := timezone.Now()

	var featured []model.Guest
	for _, guest := range s.store.Guests(ctx) {
		if s.isVIP(guest) || s.isRecent(guest, now) {
			featured = append(featured, guest)
		}
	}

	sort.SliceStable(featured, func(i, j int) bool {
		if s.isVIP(featured[i]) != s.isVIP(featured[j]) {
			return s.isVIP(featured[i])
		}

		left, right := featured[i].LastVisit, featured[j].LastVisit
		switch {
		case left == nil:
			return false
		case right == nil:
			return true
		default:
			return left.After(*right)
		}
	})

	res := dto.GetFeaturedGuestsResponse{Guests: make([]dto.FeaturedGuest, len(featured))}
	for i, guest := range featured {
		reason := "recent"
		if s.isVIP(guest) {
			reason = "vip"
		}

		res.Guests[i].Guest.FromModel(guest)
		res.Guests[i].Reason = reason
	}

	return res
}
