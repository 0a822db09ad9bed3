package shared

import (
	"context"
	"time"

	"hospedagem-api/internal/domain/booking"
	"hospedagem-api/internal/domain/client"
	"hospedagem-api/internal/domain/room"
	"hospedagem-api/internal/domain/user"
	"hospedagem-api/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type Tx interface {
	Rooms() RoomRepository
	Clients() ClientRepository
	Bookings() BookingRepository
	Users() UserRepository
	DB() db.DBTX
}

type RoomRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, r *room.Room) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, r *room.Room) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*room.Room, error)
	// FindByIDForUpdate takes a row lock on the room so the admissibility
	// read and the booking insert are serialized per room.
	FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*room.Room, error)
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	// Save persists status and check-in/check-out stamps after a transition.
	Save(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*booking.Booking, error)
	// LedgerForRoom returns every booking of the room still holding capacity.
	LedgerForRoom(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID) ([]*booking.Booking, error)
	// HasUpcomingForRoom reports whether any live booking of the room ends on
	// or after the given day. Used by the room deletion guard.
	HasUpcomingForRoom(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID, from time.Time) (bool, error)
}

type ClientRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, c *client.Client) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, c *client.Client) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*client.Client, error)
}

type UserRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error
}
