package repository

import (
	"context"
	"time"

	"hospedagem-api/internal/domain/room"
	"hospedagem-api/internal/infra"
	"hospedagem-api/internal/infra/db"

	"github.com/google/uuid"
)

type RoomRepository struct{}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{}
}

func (r *RoomRepository) Create(ctx context.Context, dbtx db.DBTX, entity *room.Room) (uuid.UUID, error) {
	const query = `
		INSERT INTO rooms (id, number, beds, room_group)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query, entity.ID(), entity.Number(), entity.Beds(), entity.Group()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create room", err)
	}
	return id, nil
}

func (r *RoomRepository) Update(ctx context.Context, dbtx db.DBTX, entity *room.Room) error {
	const query = `
		UPDATE rooms
		SET number = $2, beds = $3, room_group = $4, updated_at = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, entity.ID(), entity.Number(), entity.Beds(), entity.Group())
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*room.Room, error) {
	return r.find(ctx, dbtx, id, false)
}

// FindByIDForUpdate locks the room row for the rest of the transaction. The
// booking admissibility check relies on this lock to serialize writers per
// room.
func (r *RoomRepository) FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*room.Room, error) {
	return r.find(ctx, dbtx, id, true)
}

func (r *RoomRepository) find(ctx context.Context, dbtx db.DBTX, id uuid.UUID, forUpdate bool) (*room.Room, error) {
	query := `
		SELECT id, number, beds, room_group, created_at, updated_at
		FROM rooms
		WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var (
		roomID               uuid.UUID
		number, beds         int
		group                string
		createdAt, updatedAt time.Time
	)
	err := dbtx.QueryRow(ctx, query, id).Scan(&roomID, &number, &beds, &group, &createdAt, &updatedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}

	return room.ReconstructRoom(roomID, number, beds, group, createdAt, updatedAt), nil
}
