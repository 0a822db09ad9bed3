package response

import (
	"time"

	"hospedagem-api/internal/usecase/queries"

	"github.com/google/uuid"
)

// ClientResponse carries document and phone in display format, e.g.
// 123.456.789-01 and (11) 98765-4321.
type ClientResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromClientView(v *queries.ClientView) *ClientResponse {
	return &ClientResponse{
		ID:        v.ID,
		Name:      v.Name,
		Document:  v.Document,
		Phone:     v.Phone,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
