package commands

import (
	"context"
	"github.com/cockroachdb/errors"

	"github.com/google/uuid"

	"hospedagem-api/internal/domain/booking"
	reqdto "hospedagem-api/internal/handler/dto/request"
	"hospedagem-api/internal/infra"
	"hospedagem-api/internal/pkg/clock"
	"hospedagem-api/internal/pkg/errs"
	"hospedagem-api/internal/usecase/queries"
	"hospedagem-api/internal/usecase/shared"
)

var (
	ErrBookingNotFound        = errs.New("booking not found")
	ErrBookingConflict        = errs.New("booking conflict")
	ErrInvalidBookingInput    = errs.New("invalid booking input")
	ErrPastCheckIn            = errs.New("check-in date is in the past")
	ErrInvalidTransition      = errs.New("invalid booking transition")
	ErrBookingDeleteForbidden = errs.New("booking cannot be deleted")
	ErrBookingFailed          = errs.New("booking operation failed")
)

type BookingCommands interface {
	Create(ctx context.Context, req reqdto.CreateBookingRequest) (*queries.BookingView, error)
	ApplyTransition(ctx context.Context, id uuid.UUID, t booking.Transition) (*queries.BookingView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, bookingQueries queries.BookingQueries, clock clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		clock:          clock,
	}
}

// Create runs the admissibility check and the insert inside one transaction
// holding the room row lock, so two concurrent requests for the same room
// serialize and the loser sees the winner's booking in the ledger.
func (b *bookingCommandsImpl) Create(ctx context.Context, req reqdto.CreateBookingRequest) (*queries.BookingView, error) {
	period, allocation, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingInput)
	}

	if period.CheckIn().Before(b.clock.Today()) {
		return nil, errs.Mark(booking.ErrPeriodInPast, ErrPastCheckIn)
	}

	var id uuid.UUID
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		roomEntity, findErr := tx.Rooms().FindByIDForUpdate(ctx, tx.DB(), req.RoomID)
		if findErr != nil {
			return findErr
		}

		if _, clientErr := tx.Clients().FindByID(ctx, tx.DB(), req.ClientID); clientErr != nil {
			if infra.IsKind(clientErr, infra.KindNotFound) {
				return ErrClientNotFound
			}
			return clientErr
		}

		ledger, ledgerErr := tx.Bookings().LedgerForRoom(ctx, tx.DB(), req.RoomID)
		if ledgerErr != nil {
			return ledgerErr
		}

		if admErr := booking.CheckAdmissibility(roomEntity.Beds(), period, allocation, ledger); admErr != nil {
			return errs.Mark(admErr, ErrBookingConflict)
		}

		entity := booking.NewBooking(req.RoomID, req.ClientID, period, allocation)
		createdID, createErr := tx.Bookings().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			return createErr
		}
		id = createdID
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingConflict), errors.Is(err, ErrClientNotFound):
			return nil, err
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrRoomNotFound
		default:
			return nil, errs.Mark(err, ErrBookingFailed)
		}
	}

	// Read-after-write: return the joined view from the read store
	view, err := b.bookingQueries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingFailed)
	}
	return view, nil
}

// ApplyTransition moves a booking through its lifecycle. Reinstating a
// canceled booking re-runs admissibility under the room lock because the
// capacity it once held may have been taken since.
func (b *bookingCommandsImpl) ApplyTransition(ctx context.Context, id uuid.UUID, t booking.Transition) (*queries.BookingView, error) {
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, findErr := tx.Bookings().FindByID(ctx, tx.DB(), id)
		if findErr != nil {
			return findErr
		}

		if t == booking.TransitionReinstate {
			roomEntity, lockErr := tx.Rooms().FindByIDForUpdate(ctx, tx.DB(), entity.RoomID())
			if lockErr != nil {
				return lockErr
			}
			// The canceled booking is terminal, so the ledger does not
			// contain it.
			ledger, ledgerErr := tx.Bookings().LedgerForRoom(ctx, tx.DB(), entity.RoomID())
			if ledgerErr != nil {
				return ledgerErr
			}
			if admErr := booking.CheckAdmissibility(roomEntity.Beds(), entity.Period(), entity.Allocation(), ledger); admErr != nil {
				return errs.Mark(admErr, ErrBookingConflict)
			}
		}

		if applyErr := entity.Apply(t, b.clock.Now()); applyErr != nil {
			return errs.Mark(applyErr, ErrInvalidTransition)
		}

		return tx.Bookings().Save(ctx, tx.DB(), entity)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrBookingConflict):
			return nil, err
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrBookingNotFound
		default:
			return nil, errs.Mark(err, ErrBookingFailed)
		}
	}

	view, err := b.bookingQueries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingFailed)
	}
	return view, nil
}

func (b *bookingCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, findErr := tx.Bookings().FindByID(ctx, tx.DB(), id)
		if findErr != nil {
			return findErr
		}

		if !entity.CanDelete() {
			return errs.Mark(booking.ErrDeleteNotAllowed, ErrBookingDeleteForbidden)
		}

		return tx.Bookings().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingDeleteForbidden):
			return err
		case infra.IsKind(err, infra.KindNotFound):
			return ErrBookingNotFound
		default:
			return errs.Mark(err, ErrBookingFailed)
		}
	}
	return nil
}
