//go:build unit || e2e

package builder

import (
	"hospedagem-api/internal/domain/user"
)

type UserBuilder struct {
	Name         string
	Login        string
	PasswordHash string
	Role         string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Name:         "Ana Recepção",
		Login:        "ana.recepcao",
		PasswordHash: "hashed_password",
		Role:         "funcionario",
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) WithRole(role string) *UserBuilder {
	b.Role = role
	return b
}

func (b *UserBuilder) WithLogin(login string) *UserBuilder {
	b.Login = login
	return b
}

func (b *UserBuilder) BuildDomain() (*user.User, error) {
	name, err := user.NewName(b.Name)
	if err != nil {
		return nil, err
	}

	login, err := user.NewLogin(b.Login)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(b.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(name, login, b.PasswordHash, role), nil
}
