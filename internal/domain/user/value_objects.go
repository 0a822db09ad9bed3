package user

import (
	"errors"
	"strings"
)

var (
	ErrInvalidName     = errors.New("name must be between 3 and 100 characters")
	ErrInvalidLogin    = errors.New("login must be between 5 and 50 characters")
	ErrInvalidPassword = errors.New("password must be at least 8 characters")
	ErrInvalidRole     = errors.New("invalid role")
)

const (
	MinNameLength     = 3
	MaxNameLength     = 100
	MinLoginLength    = 5
	MaxLoginLength    = 50
	MinPasswordLength = 8
)

type Name struct {
	value string
}

func NewName(value string) (Name, error) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) < MinNameLength || len(trimmed) > MaxNameLength {
		return Name{}, ErrInvalidName
	}
	return Name{value: trimmed}, nil
}

func (n Name) String() string {
	return n.value
}

type Login struct {
	value string
}

func NewLogin(value string) (Login, error) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if len(trimmed) < MinLoginLength || len(trimmed) > MaxLoginLength {
		return Login{}, ErrInvalidLogin
	}
	return Login{value: trimmed}, nil
}

func (l Login) String() string {
	return l.value
}

type Password struct {
	value string
}

func NewPassword(value string) (Password, error) {
	if len(value) < MinPasswordLength {
		return Password{}, ErrInvalidPassword
	}
	return Password{value: value}, nil
}

func (p Password) Value() string {
	return p.value
}

type Credentials struct {
	login    Login
	password Password
}

func NewCredentials(login, password string) (Credentials, error) {
	l, err := NewLogin(login)
	if err != nil {
		return Credentials{}, err
	}
	p, err := NewPassword(password)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{login: l, password: p}, nil
}

func (c Credentials) Login() Login       { return c.login }
func (c Credentials) Password() Password { return c.password }
