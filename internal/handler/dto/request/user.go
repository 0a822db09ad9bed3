package request

import (
	"hospedagem-api/internal/domain/user"
)

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,min=3,max=100"`
	Login    string `json:"login" binding:"required,min=5,max=50"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=funcionario gerente admin"`
}

func (r CreateUserRequest) ToDomain() (user.Name, user.Login, user.Password, user.Role, error) {
	name, err := user.NewName(r.Name)
	if err != nil {
		return user.Name{}, user.Login{}, user.Password{}, "", err
	}
	login, err := user.NewLogin(r.Login)
	if err != nil {
		return user.Name{}, user.Login{}, user.Password{}, "", err
	}
	pass, err := user.NewPassword(r.Password)
	if err != nil {
		return user.Name{}, user.Login{}, user.Password{}, "", err
	}
	role, err := user.NewRole(r.Role)
	if err != nil {
		return user.Name{}, user.Login{}, user.Password{}, "", err
	}
	return name, login, pass, role, nil
}
