package client

import (
	"time"

	"github.com/google/uuid"
)

// Client is a guest in the registry. Clients do not authenticate; they are
// referenced by bookings.
type Client struct {
	id        uuid.UUID
	name      string
	document  Document
	phone     Phone
	createdAt time.Time
	updatedAt time.Time
}

func NewClient(name string, document Document, phone Phone) (*Client, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	return &Client{
		id:       uuid.New(),
		name:     trimName(name),
		document: document,
		phone:    phone,
	}, nil
}

func ReconstructClient(
	id uuid.UUID,
	name string,
	document Document,
	phone Phone,
	createdAt, updatedAt time.Time,
) *Client {
	return &Client{
		id:        id,
		name:      name,
		document:  document,
		phone:     phone,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Rename and UpdatePhone are the only mutations; the document is the client's
// identity key and is never updated in place.
func (c *Client) Rename(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	c.name = trimName(name)
	return nil
}

func (c *Client) UpdatePhone(phone Phone) {
	c.phone = phone
}

func (c *Client) ID() uuid.UUID        { return c.id }
func (c *Client) Name() string         { return c.name }
func (c *Client) Document() Document   { return c.document }
func (c *Client) Phone() Phone         { return c.phone }
func (c *Client) CreatedAt() time.Time { return c.createdAt }
func (c *Client) UpdatedAt() time.Time { return c.updatedAt }
