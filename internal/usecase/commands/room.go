package commands

import (
	"context"
	"github.com/cockroachdb/errors"

	"github.com/google/uuid"

	"hospedagem-api/internal/domain/room"
	reqdto "hospedagem-api/internal/handler/dto/request"
	"hospedagem-api/internal/infra"
	"hospedagem-api/internal/pkg/clock"
	"hospedagem-api/internal/pkg/errs"
	"hospedagem-api/internal/usecase/shared"
)

var (
	ErrRoomNotFound        = errs.New("room not found")
	ErrDuplicateRoomNumber = errs.New("room number already in use")
	ErrRoomHasBookings     = errs.New("room has upcoming bookings")
	ErrRoomValidation      = errs.New("room validation failed")
	ErrRoomOperationFailed = errs.New("room operation failed")
)

type RoomCommands interface {
	Create(ctx context.Context, req reqdto.CreateRoomRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateRoomRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type roomCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRoomCommands(uow shared.UnitOfWork, clock clock.Clock) RoomCommands {
	return &roomCommandsImpl{uow: uow, clock: clock}
}

func (r *roomCommandsImpl) Create(ctx context.Context, req reqdto.CreateRoomRequest) (uuid.UUID, error) {
	entity, err := room.NewRoom(req.Number, req.Beds, req.Group)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrRoomValidation)
	}

	var id uuid.UUID
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		createdID, createErr := tx.Rooms().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			return createErr
		}
		id = createdID
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrDuplicateRoomNumber
		}
		return uuid.Nil, errs.Mark(err, ErrRoomOperationFailed)
	}

	return id, nil
}

func (r *roomCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateRoomRequest) error {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, findErr := tx.Rooms().FindByIDForUpdate(ctx, tx.DB(), id)
		if findErr != nil {
			return findErr
		}

		// Shrinking capacity under booked demand would leave the ledger
		// inconsistent, so it is blocked while live bookings remain.
		if req.Beds < entity.Beds() {
			busy, busyErr := tx.Bookings().HasUpcomingForRoom(ctx, tx.DB(), id, r.clock.Today())
			if busyErr != nil {
				return busyErr
			}
			if busy {
				return ErrRoomHasBookings
			}
		}

		if updateErr := entity.Update(req.Number, req.Beds, req.Group); updateErr != nil {
			return errs.Mark(updateErr, ErrRoomValidation)
		}

		return tx.Rooms().Update(ctx, tx.DB(), entity)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrRoomHasBookings), errors.Is(err, ErrRoomValidation):
			return err
		case infra.IsKind(err, infra.KindNotFound):
			return ErrRoomNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return ErrDuplicateRoomNumber
		default:
			return errs.Mark(err, ErrRoomOperationFailed)
		}
	}
	return nil
}

func (r *roomCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, findErr := tx.Rooms().FindByIDForUpdate(ctx, tx.DB(), id); findErr != nil {
			return findErr
		}

		busy, busyErr := tx.Bookings().HasUpcomingForRoom(ctx, tx.DB(), id, r.clock.Today())
		if busyErr != nil {
			return busyErr
		}
		if busy {
			return ErrRoomHasBookings
		}

		return tx.Rooms().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrRoomHasBookings):
			return err
		case infra.IsKind(err, infra.KindNotFound):
			return ErrRoomNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrRoomHasBookings
		default:
			return errs.Mark(err, ErrRoomOperationFailed)
		}
	}
	return nil
}
