package commands

import (
	"context"
	"github.com/cockroachdb/errors"

	"github.com/google/uuid"

	"hospedagem-api/internal/domain/client"
	reqdto "hospedagem-api/internal/handler/dto/request"
	"hospedagem-api/internal/infra"
	"hospedagem-api/internal/pkg/errs"
	"hospedagem-api/internal/usecase/shared"
)

var (
	ErrClientNotFound        = errs.New("client not found")
	ErrDuplicateDocument     = errs.New("document already registered")
	ErrClientHasBookings     = errs.New("client has bookings")
	ErrClientValidation      = errs.New("client validation failed")
	ErrClientOperationFailed = errs.New("client operation failed")
)

type ClientCommands interface {
	Create(ctx context.Context, req reqdto.CreateClientRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateClientRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type clientCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewClientCommands(uow shared.UnitOfWork) ClientCommands {
	return &clientCommandsImpl{uow: uow}
}

func (c *clientCommandsImpl) Create(ctx context.Context, req reqdto.CreateClientRequest) (uuid.UUID, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrClientValidation)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		createdID, createErr := tx.Clients().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			return createErr
		}
		id = createdID
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrDuplicateDocument
		}
		return uuid.Nil, errs.Mark(err, ErrClientOperationFailed)
	}

	return id, nil
}

func (c *clientCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateClientRequest) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, findErr := tx.Clients().FindByID(ctx, tx.DB(), id)
		if findErr != nil {
			return findErr
		}

		if renameErr := entity.Rename(req.Name); renameErr != nil {
			return errs.Mark(renameErr, ErrClientValidation)
		}

		phone, phoneErr := client.NewPhone(req.Phone)
		if phoneErr != nil {
			return errs.Mark(phoneErr, ErrClientValidation)
		}
		entity.UpdatePhone(phone)

		return tx.Clients().Update(ctx, tx.DB(), entity)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrClientValidation):
			return err
		case infra.IsKind(err, infra.KindNotFound):
			return ErrClientNotFound
		default:
			return errs.Mark(err, ErrClientOperationFailed)
		}
	}
	return nil
}

func (c *clientCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Clients().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrClientNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrClientHasBookings
		default:
			return errs.Mark(err, ErrClientOperationFailed)
		}
	}
	return nil
}
