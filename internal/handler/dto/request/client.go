package request

import (
	"hospedagem-api/internal/domain/client"
)

type CreateClientRequest struct {
	Name     string `json:"name" binding:"required,min=3,max=100"`
	Document string `json:"document" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
}

func (r CreateClientRequest) ToDomain() (*client.Client, error) {
	document, err := client.NewDocument(r.Document)
	if err != nil {
		return nil, err
	}
	phone, err := client.NewPhone(r.Phone)
	if err != nil {
		return nil, err
	}
	return client.NewClient(r.Name, document, phone)
}

// UpdateClientRequest cannot change the document; it is the client's identity.
type UpdateClientRequest struct {
	Name  string `json:"name" binding:"required,min=3,max=100"`
	Phone string `json:"phone" binding:"required"`
}
