package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidNumber   = errors.New("room number must be between 1 and 1000")
	ErrInvalidBedCount = errors.New("room must have between 1 and 6 beds")
	ErrInvalidGroup    = errors.New("room group must be between 3 and 50 characters")
)

const (
	MinNumber = 1
	MaxNumber = 1000

	MinBeds = 1
	MaxBeds = 6

	MinGroupLength = 3
	MaxGroupLength = 50
)

// Room is the bookable unit. Beds is the capacity the availability engine
// allocates against; Group is the wing/category name used for filtering.
type Room struct {
	id        uuid.UUID
	number    int
	beds      int
	group     string
	createdAt time.Time
	updatedAt time.Time
}

func NewRoom(number, beds int, group string) (*Room, error) {
	if err := validate(number, beds, group); err != nil {
		return nil, err
	}

	return &Room{
		id:     uuid.New(),
		number: number,
		beds:   beds,
		group:  strings.TrimSpace(group),
	}, nil
}

func ReconstructRoom(id uuid.UUID, number, beds int, group string, createdAt, updatedAt time.Time) *Room {
	return &Room{
		id:        id,
		number:    number,
		beds:      beds,
		group:     group,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Update replaces the editable attributes. Shrinking the bed count below an
// existing booking's allocation is caught at the persistence boundary, not
// here: the entity has no view of the ledger.
func (r *Room) Update(number, beds int, group string) error {
	if err := validate(number, beds, group); err != nil {
		return err
	}
	r.number = number
	r.beds = beds
	r.group = strings.TrimSpace(group)
	return nil
}

func validate(number, beds int, group string) error {
	if number < MinNumber || number > MaxNumber {
		return ErrInvalidNumber
	}
	if beds < MinBeds || beds > MaxBeds {
		return ErrInvalidBedCount
	}
	trimmed := strings.TrimSpace(group)
	if len(trimmed) < MinGroupLength || len(trimmed) > MaxGroupLength {
		return ErrInvalidGroup
	}
	return nil
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) Number() int          { return r.number }
func (r *Room) Beds() int            { return r.beds }
func (r *Room) Group() string        { return r.group }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }
