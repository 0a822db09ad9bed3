package readstore

import (
	"context"
	"time"

	"hospedagem-api/internal/domain/booking"
	"hospedagem-api/internal/domain/room"
	"hospedagem-api/internal/infra"
	"hospedagem-api/internal/infra/db"
	"hospedagem-api/internal/infra/repository"
	"hospedagem-api/internal/usecase/queries"

	"github.com/google/uuid"
)

// OccupancyReadStore hydrates domain entities rather than flat views: the
// occupancy numbers are always computed by the engine from the bookings, never
// aggregated in SQL, so both code paths share one definition.
type OccupancyReadStore struct {
	db db.DBTX
}

func NewOccupancyReadStore(dbtx db.DBTX) *OccupancyReadStore {
	return &OccupancyReadStore{db: dbtx}
}

func (r *OccupancyReadStore) RoomsWithLedgers(ctx context.Context, day time.Time, group *string) ([]*queries.RoomLedger, error) {
	const roomsQuery = `
		SELECT id, number, beds, room_group, created_at, updated_at
		FROM rooms
		WHERE $1::text IS NULL OR room_group = $1
		ORDER BY number`

	rows, err := r.db.Query(ctx, roomsQuery, group)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms for occupancy", err)
	}
	defer rows.Close()

	var ledgers []*queries.RoomLedger
	byRoom := make(map[uuid.UUID]*queries.RoomLedger)
	for rows.Next() {
		var (
			id                   uuid.UUID
			number, beds         int
			roomGroup            string
			createdAt, updatedAt time.Time
		)
		if err := rows.Scan(&id, &number, &beds, &roomGroup, &createdAt, &updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room for occupancy", err)
		}
		rl := &queries.RoomLedger{
			Room: room.ReconstructRoom(id, number, beds, roomGroup, createdAt, updatedAt),
		}
		ledgers = append(ledgers, rl)
		byRoom[id] = rl
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read rooms for occupancy", err)
	}

	if err := r.attachLedgers(ctx, day, group, byRoom); err != nil {
		return nil, err
	}
	return ledgers, nil
}

func (r *OccupancyReadStore) attachLedgers(ctx context.Context, day time.Time, group *string, byRoom map[uuid.UUID]*queries.RoomLedger) error {
	const query = `
		SELECT b.id, b.room_id, b.client_id, b.check_in, b.check_out, b.mode, b.beds,
		       b.status, b.checked_in, b.checked_out, b.created_at, b.updated_at
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.status IN ('reserved', 'active')
		  AND b.check_in <= $1 AND b.check_out > $1
		  AND ($2::text IS NULL OR r.room_group = $2)`

	rows, err := r.db.Query(ctx, query, day, group)
	if err != nil {
		return infra.WrapRepoErr("failed to load ledgers for occupancy", err)
	}
	defer rows.Close()

	for rows.Next() {
		entity, scanErr := repository.ScanBooking(rows)
		if scanErr != nil {
			return infra.WrapRepoErr("failed to scan ledger booking", scanErr)
		}
		if rl, ok := byRoom[entity.RoomID()]; ok {
			rl.Ledger = append(rl.Ledger, entity)
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to read ledgers for occupancy", err)
	}
	return nil
}

func (r *OccupancyReadStore) CountExpectedCheckIns(ctx context.Context, day time.Time) (int, error) {
	const query = `
		SELECT count(*) FROM bookings
		WHERE status = $1 AND check_in = $2::date`
	return r.count(ctx, query, booking.StatusReserved.String(), day)
}

func (r *OccupancyReadStore) CountExpectedCheckOuts(ctx context.Context, day time.Time) (int, error) {
	const query = `
		SELECT count(*) FROM bookings
		WHERE status = $1 AND checked_in IS NOT NULL AND check_out = $2::date`
	return r.count(ctx, query, booking.StatusActive.String(), day)
}

func (r *OccupancyReadStore) CountActiveClients(ctx context.Context, day time.Time) (int, error) {
	const query = `
		SELECT count(DISTINCT client_id) FROM bookings
		WHERE status IN ('reserved', 'active')
		  AND check_in <= $1 AND check_out > $1`

	var n int
	if err := r.db.QueryRow(ctx, query, day).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count active clients", err)
	}
	return n, nil
}

func (r *OccupancyReadStore) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count bookings", err)
	}
	return n, nil
}
