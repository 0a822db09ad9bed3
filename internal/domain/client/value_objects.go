package client

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidName     = errors.New("client name must be between 3 and 100 characters")
	ErrInvalidDocument = errors.New("document must be a CPF (11 digits) or CNPJ (14 digits)")
	ErrInvalidPhone    = errors.New("phone must have 10 or 11 digits")
)

const (
	MinNameLength = 3
	MaxNameLength = 100

	cpfLength  = 11
	cnpjLength = 14
)

// Document is a CPF or CNPJ, stored as bare digits. Formatting is applied on
// the way out only.
type Document struct {
	digits string
}

func NewDocument(value string) (Document, error) {
	digits := onlyDigits(value)
	if len(digits) != cpfLength && len(digits) != cnpjLength {
		return Document{}, ErrInvalidDocument
	}
	return Document{digits: digits}, nil
}

func (d Document) Digits() string {
	return d.digits
}

func (d Document) Formatted() string {
	switch len(d.digits) {
	case cpfLength:
		return fmt.Sprintf("%s.%s.%s-%s", d.digits[0:3], d.digits[3:6], d.digits[6:9], d.digits[9:11])
	case cnpjLength:
		return fmt.Sprintf("%s.%s.%s/%s-%s", d.digits[0:2], d.digits[2:5], d.digits[5:8], d.digits[8:12], d.digits[12:14])
	default:
		return d.digits
	}
}

type Phone struct {
	digits string
}

func NewPhone(value string) (Phone, error) {
	digits := onlyDigits(value)
	if len(digits) < 10 || len(digits) > 11 {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{digits: digits}, nil
}

func (p Phone) Digits() string {
	return p.digits
}

func (p Phone) Formatted() string {
	switch len(p.digits) {
	case 11:
		return fmt.Sprintf("(%s) %s-%s", p.digits[0:2], p.digits[2:7], p.digits[7:11])
	case 10:
		return fmt.Sprintf("(%s) %s-%s", p.digits[0:2], p.digits[2:6], p.digits[6:10])
	default:
		return p.digits
	}
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func validateName(name string) error {
	trimmed := trimName(name)
	if len(trimmed) < MinNameLength || len(trimmed) > MaxNameLength {
		return ErrInvalidName
	}
	return nil
}

func trimName(name string) string {
	return strings.TrimSpace(name)
}
