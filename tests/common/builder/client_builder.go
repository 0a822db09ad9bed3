//go:build unit || e2e

package builder

import (
	"hospedagem-api/internal/domain/client"
)

type ClientBuilder struct {
	Name     string
	Document string
	Phone    string
}

func NewClientBuilder() *ClientBuilder {
	return &ClientBuilder{
		Name:     "Maria Souza",
		Document: "12345678901",
		Phone:    "11987654321",
	}
}

func (b *ClientBuilder) With(mutate func(*ClientBuilder)) *ClientBuilder {
	mutate(b)
	return b
}

func (b *ClientBuilder) WithName(name string) *ClientBuilder {
	b.Name = name
	return b
}

func (b *ClientBuilder) WithDocument(document string) *ClientBuilder {
	b.Document = document
	return b
}

func (b *ClientBuilder) WithPhone(phone string) *ClientBuilder {
	b.Phone = phone
	return b
}

func (b *ClientBuilder) BuildDomain() (*client.Client, error) {
	document, err := client.NewDocument(b.Document)
	if err != nil {
		return nil, err
	}

	phone, err := client.NewPhone(b.Phone)
	if err != nil {
		return nil, err
	}

	return client.NewClient(b.Name, document, phone)
}
