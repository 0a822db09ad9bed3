package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type RoomView struct {
	ID        uuid.UUID `json:"id"`
	Number    int       `json:"number"`
	Beds      int       `json:"beds"`
	Group     string    `json:"group"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RoomListItem carries the availability flag for the requested day.
type RoomListItem struct {
	ID        uuid.UUID `json:"id"`
	Number    int       `json:"number"`
	Beds      int       `json:"beds"`
	Group     string    `json:"group"`
	Available bool      `json:"available"`
}

type BookingView struct {
	ID         uuid.UUID  `json:"id"`
	RoomID     uuid.UUID  `json:"room_id"`
	RoomNumber int        `json:"room_number"`
	ClientID   uuid.UUID  `json:"client_id"`
	ClientName string     `json:"client_name"`
	Mode       string     `json:"mode"`
	Beds       *int       `json:"beds,omitempty"`
	CheckIn    time.Time  `json:"check_in"`
	CheckOut   time.Time  `json:"check_out"`
	Status     string     `json:"status"`
	CheckedIn  *time.Time `json:"checked_in,omitempty"`
	CheckedOut *time.Time `json:"checked_out,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// ClientView carries document and phone already formatted for display.
type ClientView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Login     string     `json:"login"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// RoomOccupancyView is one row of the occupancy report.
type RoomOccupancyView struct {
	RoomID       uuid.UUID `json:"room_id"`
	Number       int       `json:"number"`
	Group        string    `json:"group"`
	Capacity     int       `json:"capacity"`
	OccupiedBeds int       `json:"occupied_beds"`
	FreeBeds     int       `json:"free_beds"`
	Status       string    `json:"status"`
}

type DashboardSummary struct {
	TotalRooms        int `json:"total_rooms"`
	FreeRooms         int `json:"free_rooms"`
	PartiallyOccupied int `json:"partially_occupied_rooms"`
	FullyOccupied     int `json:"fully_occupied_rooms"`
	ExpectedCheckIns  int `json:"expected_check_ins"`
	ExpectedCheckOuts int `json:"expected_check_outs"`
	ActiveClients     int `json:"active_clients"`
}
