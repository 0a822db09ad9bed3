package readstore

import (
	"context"

	"hospedagem-api/internal/infra"
	"hospedagem-api/internal/infra/db"
	"hospedagem-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bookingViewColumns = `
	b.id, b.room_id, r.number, b.client_id, c.name, b.mode, b.beds,
	b.check_in, b.check_out, b.status, b.checked_in, b.checked_out,
	b.created_at, b.updated_at`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindAll(ctx context.Context, filter queries.BookingFilter) ([]*queries.BookingView, error) {
	const query = `
		SELECT ` + bookingViewColumns + `
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		JOIN clients c ON c.id = b.client_id
		WHERE ($1::uuid IS NULL OR b.room_id = $1)
		  AND ($2::uuid IS NULL OR b.client_id = $2)
		  AND ($3::text IS NULL OR b.status = $3)
		ORDER BY b.check_in DESC, b.created_at DESC`

	rows, err := r.db.Query(ctx, query, filter.RoomID, filter.ClientID, filter.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		view, scanErr := scanBookingView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", scanErr)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read bookings", err)
	}
	return views, nil
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const query = `
		SELECT ` + bookingViewColumns + `
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		JOIN clients c ON c.id = b.client_id
		WHERE b.id = $1`

	view, err := scanBookingView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	view := &queries.BookingView{}
	err := row.Scan(
		&view.ID, &view.RoomID, &view.RoomNumber, &view.ClientID, &view.ClientName,
		&view.Mode, &view.Beds, &view.CheckIn, &view.CheckOut, &view.Status,
		&view.CheckedIn, &view.CheckedOut, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return view, nil
}
