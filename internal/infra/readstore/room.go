package readstore

import (
	"context"

	"hospedagem-api/internal/infra"
	"hospedagem-api/internal/infra/db"
	"hospedagem-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

func (r *RoomReadStore) FindAll(ctx context.Context, group *string) ([]*queries.RoomView, error) {
	const query = `
		SELECT id, number, beds, room_group, created_at, updated_at
		FROM rooms
		WHERE $1::text IS NULL OR room_group = $1
		ORDER BY number`

	rows, err := r.db.Query(ctx, query, group)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var views []*queries.RoomView
	for rows.Next() {
		view := &queries.RoomView{}
		if err := rows.Scan(&view.ID, &view.Number, &view.Beds, &view.Group, &view.CreatedAt, &view.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read rooms", err)
	}
	return views, nil
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	const query = `
		SELECT id, number, beds, room_group, created_at, updated_at
		FROM rooms
		WHERE id = $1`

	view := &queries.RoomView{}
	err := r.db.QueryRow(ctx, query, id).Scan(&view.ID, &view.Number, &view.Beds, &view.Group, &view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return view, nil
}
