package commands

import (
	"context"

	"github.com/google/uuid"

	"hospedagem-api/internal/domain/user"
	reqdto "hospedagem-api/internal/handler/dto/request"
	"hospedagem-api/internal/infra"
	"hospedagem-api/internal/pkg/errs"
	"hospedagem-api/internal/pkg/password"
	"hospedagem-api/internal/usecase/shared"
)

var (
	ErrDuplicateLogin     = errs.New("login already taken")
	ErrUserValidation     = errs.New("user validation failed")
	ErrUserCreationFailed = errs.New("user creation failed")
)

type UserCommands interface {
	Register(ctx context.Context, req reqdto.CreateUserRequest) (uuid.UUID, error)
}

type userCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewUserCommands(uow shared.UnitOfWork) UserCommands {
	return &userCommandsImpl{uow: uow}
}

func (u *userCommandsImpl) Register(ctx context.Context, req reqdto.CreateUserRequest) (uuid.UUID, error) {
	name, login, pass, role, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrUserValidation)
	}

	hash, err := password.HashPassword(pass.Value())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrUserCreationFailed)
	}

	entity := user.NewUser(name, login, hash, role)

	var id uuid.UUID
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		createdID, createErr := tx.Users().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			return createErr
		}
		id = createdID
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrDuplicateLogin
		}
		return uuid.Nil, errs.Mark(err, ErrUserCreationFailed)
	}

	return id, nil
}
