package queries

import (
	"context"
	"time"

	"hospedagem-api/internal/domain/booking"

	"github.com/google/uuid"
)

type RoomQueries interface {
	// List returns the catalog, optionally filtered by group. When availableOn
	// is set, each item carries whether the room still has a free bed on that
	// day and rooms without one are dropped.
	List(ctx context.Context, group *string, availableOn *time.Time) ([]*RoomListItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
}

type RoomViewRepo interface {
	FindAll(ctx context.Context, group *string) ([]*RoomView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
}

type roomQueriesImpl struct {
	repo      RoomViewRepo
	occupancy OccupancyReadStore
}

func NewRoomQueries(repo RoomViewRepo, occupancy OccupancyReadStore) RoomQueries {
	return &roomQueriesImpl{repo: repo, occupancy: occupancy}
}

func (q *roomQueriesImpl) List(ctx context.Context, group *string, availableOn *time.Time) ([]*RoomListItem, error) {
	if availableOn == nil {
		rooms, err := q.repo.FindAll(ctx, group)
		if err != nil {
			return nil, err
		}
		items := make([]*RoomListItem, len(rooms))
		for i, r := range rooms {
			items[i] = &RoomListItem{
				ID:        r.ID,
				Number:    r.Number,
				Beds:      r.Beds,
				Group:     r.Group,
				Available: true,
			}
		}
		return items, nil
	}

	ledgers, err := q.occupancy.RoomsWithLedgers(ctx, *availableOn, group)
	if err != nil {
		return nil, err
	}

	items := make([]*RoomListItem, 0, len(ledgers))
	for _, rl := range ledgers {
		occ := booking.ComputeOccupancy(rl.Room.Beds(), rl.Ledger, *availableOn)
		if occ == booking.OccupancyFully {
			continue
		}
		items = append(items, &RoomListItem{
			ID:        rl.Room.ID(),
			Number:    rl.Room.Number(),
			Beds:      rl.Room.Beds(),
			Group:     rl.Room.Group(),
			Available: true,
		})
	}
	return items, nil
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	return q.repo.FindByID(ctx, id)
}
