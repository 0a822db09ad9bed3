package queries

import (
	"context"
	"time"

	"hospedagem-api/internal/domain/booking"
	"hospedagem-api/internal/domain/room"
)

// RoomLedger pairs a room with its live bookings so the occupancy engine can
// run against hydrated domain entities. Occupancy is always derived by
// scanning bookings; nothing is cached.
type RoomLedger struct {
	Room   *room.Room
	Ledger []*booking.Booking
}

type OccupancyReadStore interface {
	// RoomsWithLedgers returns every room (optionally restricted to a group)
	// together with its bookings still holding capacity that overlap the day.
	RoomsWithLedgers(ctx context.Context, day time.Time, group *string) ([]*RoomLedger, error)
	CountExpectedCheckIns(ctx context.Context, day time.Time) (int, error)
	CountExpectedCheckOuts(ctx context.Context, day time.Time) (int, error)
	CountActiveClients(ctx context.Context, day time.Time) (int, error)
}

type OccupancyQueries interface {
	Report(ctx context.Context, day time.Time, group *string, status *booking.RoomOccupancy) ([]*RoomOccupancyView, error)
	Summary(ctx context.Context, today time.Time) (*DashboardSummary, error)
}

type occupancyQueriesImpl struct {
	store OccupancyReadStore
}

func NewOccupancyQueries(store OccupancyReadStore) OccupancyQueries {
	return &occupancyQueriesImpl{store: store}
}

func (q *occupancyQueriesImpl) Report(
	ctx context.Context,
	day time.Time,
	group *string,
	status *booking.RoomOccupancy,
) ([]*RoomOccupancyView, error) {
	ledgers, err := q.store.RoomsWithLedgers(ctx, day, group)
	if err != nil {
		return nil, err
	}

	views := make([]*RoomOccupancyView, 0, len(ledgers))
	for _, rl := range ledgers {
		view := classifyRoom(rl, day)
		if status != nil && view.Status != status.String() {
			continue
		}
		views = append(views, view)
	}
	return views, nil
}

func (q *occupancyQueriesImpl) Summary(ctx context.Context, today time.Time) (*DashboardSummary, error) {
	ledgers, err := q.store.RoomsWithLedgers(ctx, today, nil)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{TotalRooms: len(ledgers)}
	for _, rl := range ledgers {
		occ := booking.ComputeOccupancy(rl.Room.Beds(), rl.Ledger, today)
		switch occ {
		case booking.OccupancyFree:
			summary.FreeRooms++
		case booking.OccupancyPartially:
			summary.PartiallyOccupied++
		case booking.OccupancyFully:
			summary.FullyOccupied++
		}
	}

	if summary.ExpectedCheckIns, err = q.store.CountExpectedCheckIns(ctx, today); err != nil {
		return nil, err
	}
	if summary.ExpectedCheckOuts, err = q.store.CountExpectedCheckOuts(ctx, today); err != nil {
		return nil, err
	}
	if summary.ActiveClients, err = q.store.CountActiveClients(ctx, today); err != nil {
		return nil, err
	}

	return summary, nil
}

func classifyRoom(rl *RoomLedger, day time.Time) *RoomOccupancyView {
	capacity := rl.Room.Beds()
	occupied := booking.OccupiedBeds(capacity, rl.Ledger, day)

	return &RoomOccupancyView{
		RoomID:       rl.Room.ID(),
		Number:       rl.Room.Number(),
		Group:        rl.Room.Group(),
		Capacity:     capacity,
		OccupiedBeds: occupied,
		FreeBeds:     capacity - occupied,
		Status:       booking.ClassifyOccupancy(occupied, capacity).String(),
	}
}
