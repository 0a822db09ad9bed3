package repository

import (
	"context"
	"time"

	"hospedagem-api/internal/domain/booking"
	"hospedagem-api/internal/infra"
	"hospedagem-api/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bookingColumns = `id, room_id, client_id, check_in, check_out, mode, beds, status, checked_in, checked_out, created_at, updated_at`

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, entity *booking.Booking) (uuid.UUID, error) {
	const query = `
		INSERT INTO bookings (id, room_id, client_id, check_in, check_out, mode, beds, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		entity.ID(),
		entity.RoomID(),
		entity.ClientID(),
		entity.Period().CheckIn(),
		entity.Period().CheckOut(),
		entity.Allocation().Mode().String(),
		bedsColumn(entity.Allocation()),
		entity.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) Save(ctx context.Context, dbtx db.DBTX, entity *booking.Booking) error {
	const query = `
		UPDATE bookings
		SET status = $2, checked_in = $3, checked_out = $4, updated_at = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, entity.ID(), entity.Status().String(), entity.CheckedIn(), entity.CheckedOut())
	if err != nil {
		return infra.WrapRepoErr("failed to save booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row := dbtx.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)

	entity, err := ScanBooking(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return entity, nil
}

func (r *BookingRepository) LedgerForRoom(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID) ([]*booking.Booking, error) {
	const query = `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE room_id = $1 AND status IN ('reserved', 'active')
		ORDER BY check_in`

	rows, err := dbtx.Query(ctx, query, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load room ledger", err)
	}
	defer rows.Close()

	var ledger []*booking.Booking
	for rows.Next() {
		entity, scanErr := ScanBooking(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan room ledger", scanErr)
		}
		ledger = append(ledger, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room ledger", err)
	}
	return ledger, nil
}

func (r *BookingRepository) HasUpcomingForRoom(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID, from time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE room_id = $1 AND status IN ('reserved', 'active') AND check_out >= $2
		)`

	var exists bool
	if err := dbtx.QueryRow(ctx, query, roomID, from).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check upcoming bookings", err)
	}
	return exists, nil
}

// ScanBooking hydrates a booking entity from a row carrying bookingColumns.
// Shared with the occupancy read store, which also needs domain entities.
func ScanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, roomID, clientID  uuid.UUID
		checkIn, checkOut     time.Time
		modeStr, statusStr    string
		beds                  *int
		checkedIn, checkedOut *time.Time
		createdAt, updatedAt  time.Time
	)
	err := row.Scan(&id, &roomID, &clientID, &checkIn, &checkOut, &modeStr, &beds, &statusStr, &checkedIn, &checkedOut, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	period, err := booking.NewStayPeriod(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	mode, err := booking.NewMode(modeStr)
	if err != nil {
		return nil, err
	}

	allocation, err := booking.NewBedAllocation(mode, beds)
	if err != nil {
		return nil, err
	}

	status, err := booking.NewStatus(statusStr)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(id, roomID, clientID, period, allocation, status, checkedIn, checkedOut, createdAt, updatedAt), nil
}

func bedsColumn(allocation booking.BedAllocation) *int {
	if allocation.Mode() == booking.ModeWholeRoom {
		return nil
	}
	beds := allocation.Beds()
	return &beds
}
